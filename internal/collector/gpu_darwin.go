//go:build darwin

package collector

import (
	"fmt"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// GPU reads integrated-GPU load from the powermetrics document on macOS.
// VRAM is never reported by powermetrics on Apple Silicon, so this collector
// never emits gpu.*.memory.* keys: a metric with no data source is simply
// omitted, never emitted as a zero placeholder.
type GPU struct{}

func (GPU) Name() string { return "gpu" }

func (GPU) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: gpu: unexpected context %T", raw)
	}
	if !doc.GPU.Present {
		return metric.Values{{Name: "gpu.total.count", Value: 0}}, nil
	}
	return metric.Values{
		{Name: "gpu.apple.0.compute.utilization.percent", Value: 100.0 - 100.0*doc.GPU.IdleRatio},
		{Name: "gpu.total.count", Value: 1},
	}, nil
}
