//go:build !darwin

package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/sample"
)

// newSampler picks the platform sampler at compile time. Linux (and every
// other non-Darwin target) polls on a plain ticker; the log handle goes
// unused here but is threaded through for signature symmetry with the
// Darwin variant, which does need it.
func newSampler(refreshMS int, _ *zap.SugaredLogger) sample.Sampler {
	return sample.PollingSampler{Period: time.Duration(refreshMS) * time.Millisecond}
}
