package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/mem"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Swap reads absolute swap usage in bytes, not a rate.
type Swap struct{}

func (Swap) Name() string { return "swap" }

func (Swap) Collect(sample.PlatformContext) (metric.Values, error) {
	sw, err := mem.SwapMemory()
	if err != nil {
		return nil, fmt.Errorf("collector: swap: %w", err)
	}
	used := float64(sw.Used)
	if used < 0 {
		used = 0
	}
	return metric.Values{{Name: "swap.system.used.bytes", Value: used}}, nil
}
