//go:build linux

package collector

import (
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/cpu"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// CPU reads per-core percentages from gopsutil on Linux, generalized from
// the teacher's internal/system.GetCPUUsage, which only ever asked for the
// aggregate.
type CPU struct{}

func (CPU) Name() string { return "cpu" }

func (CPU) Collect(sample.PlatformContext) (metric.Values, error) {
	percents, err := cpu.Percent(0, true)
	if err != nil {
		return nil, fmt.Errorf("collector: cpu: %w", err)
	}
	out := make(metric.Values, 0, len(percents)+2)
	var total float64
	for i, p := range percents {
		out = append(out, metric.Entry{
			Name:  metric.Build("cpu", "cpu", "0", "core", strconv.Itoa(i), "utilization", "percent"),
			Value: p,
		})
		total += p
	}
	if len(percents) > 0 {
		out = append(out, metric.Entry{Name: "cpu.cpu.0.total.utilization.percent", Value: total / float64(len(percents))})
	}
	out = append(out, metric.Entry{Name: "cpu.total.count", Value: float64(len(percents))})
	return out, nil
}
