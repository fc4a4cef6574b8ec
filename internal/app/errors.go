package app

import (
	"errors"
	"fmt"
)

// ConfigError marks invalid flags or config file contents, detected before
// any sampler starts. The caller exits with status 2 rather than the
// generic status 1.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func newConfigError(format string, args ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err (or something it wraps) is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
