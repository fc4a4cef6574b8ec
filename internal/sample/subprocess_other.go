//go:build !darwin

package sample

import (
	"context"

	"go.uber.org/zap"
)

// SubprocessSampler is unavailable outside macOS: powermetrics doesn't
// exist elsewhere. Constructing one and calling Run always reports
// ErrPlatformUnavailable.
type SubprocessSampler struct {
	IntervalMS int
	Log        *zap.SugaredLogger
}

func (SubprocessSampler) Run(ctx context.Context, cb Callback) error {
	return ErrPlatformUnavailable
}
