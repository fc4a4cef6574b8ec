package collector

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/mem"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Memory reads system virtual memory usage. It works identically on both
// platforms via gopsutil, generalized from the teacher's
// internal/system.GetMemoryUsage. On macOS gopsutil additionally populates
// Wired/Mapped from vm_stat; those extended keys are emitted only when
// present, since a metric with no value for this platform is simply left out
// rather than reported as zero.
type Memory struct{}

func (Memory) Name() string { return "memory" }

func (Memory) Collect(sample.PlatformContext) (metric.Values, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("collector: memory: %w", err)
	}
	out := metric.Values{
		{Name: "memory.system.total.used.percent", Value: vm.UsedPercent},
		{Name: "memory.system.total.used.bytes", Value: float64(vm.Used)},
	}
	if runtime.GOOS == "darwin" {
		if vm.Wired > 0 {
			out = append(out, metric.Entry{Name: "memory.system.wired.bytes", Value: float64(vm.Wired)})
		}
		if vm.Mapped > 0 {
			out = append(out, metric.Entry{Name: "memory.system.mapped.bytes", Value: float64(vm.Mapped)})
		}
	}
	return out, nil
}
