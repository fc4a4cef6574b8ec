//go:build linux

package collector

import (
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Power has no data source on Linux. It always contributes no keys rather
// than erroring, since a metric is emitted only when its source is actually
// available.
type Power struct{}

func (Power) Name() string { return "power" }

func (Power) Collect(sample.PlatformContext) (metric.Values, error) {
	return metric.Values{}, nil
}
