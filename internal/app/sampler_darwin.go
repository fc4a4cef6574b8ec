//go:build darwin

package app

import (
	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/sample"
)

// newSampler picks the platform sampler at compile time (see
// collector.ForPlatform for why GOOS is resolved with a build tag rather
// than a runtime switch). macOS drives ticks from powermetrics' own output
// cadence instead of a Go-side ticker.
func newSampler(refreshMS int, log *zap.SugaredLogger) sample.Sampler {
	return sample.SubprocessSampler{IntervalMS: refreshMS, Log: log}
}
