//go:build linux

package collector

import (
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Accel has no ANE data source on Linux; it always contributes no keys.
type Accel struct{}

func (Accel) Name() string { return "accel" }

func (Accel) Collect(sample.PlatformContext) (metric.Values, error) {
	return metric.Values{}, nil
}
