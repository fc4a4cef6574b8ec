//go:build darwin

package collector

import (
	"fmt"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Power reads the CPU/GPU/ANE/combined power rails from the powermetrics
// document, converting milliwatts to watts. It is only available on the
// macOS subprocess path.
type Power struct{}

func (Power) Name() string { return "power" }

func (Power) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: power: unexpected context %T", raw)
	}
	if !doc.Processor.HasPower {
		return metric.Values{}, nil
	}
	return metric.Values{
		{Name: "power.component.total.consumption.watts", Value: doc.Processor.CombinedPowerMW / 1000.0},
		{Name: "power.component.cpu.consumption.watts", Value: doc.Processor.CPUPowerMW / 1000.0},
		{Name: "power.component.gpu.consumption.watts", Value: doc.Processor.GPUPowerMW / 1000.0},
		{Name: "power.component.ane.consumption.watts", Value: doc.Processor.ANEPowerMW / 1000.0},
	}, nil
}
