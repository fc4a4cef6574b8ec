package sample

import (
	"context"
	"errors"
)

// ErrPlatformUnavailable is returned when the current OS has no sampler
// implementation, so the caller can fail fast with a one-line diagnostic.
var ErrPlatformUnavailable = errors.New("sample: platform not supported")

// Callback receives one Sample per tick. It runs on the sampler's own
// goroutine, under no lock, and is expected to complete well inside one
// period.
type Callback func(Sample)

// Sampler produces one Sample per period until ctx is canceled.
type Sampler interface {
	Run(ctx context.Context, cb Callback) error
}
