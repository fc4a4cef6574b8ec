package present

import (
	"strconv"
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
)

// GPUPresenter renders per-GPU compute utilization and, under
// load_and_vram, memory rows too. gpu.total.count is bookkeeping for the
// HTTP/CSV/Prometheus surfaces and is never a TUI row (mirrors
// cpu.total.count's treatment in CPUPresenter).
//
// GPUCollapsed hides the GPU panel entirely, consistent with power.off and
// memory's percent-only default being the terser setting.
type GPUPresenter struct{}

func (GPUPresenter) Domain() metric.Domain { return metric.DomainGPU }

func parseGPUName(name metric.Name) (vendor string, idx int, kind string, ok bool) {
	segs := name.Segments()
	if len(segs) < 4 || segs[0] != "gpu" {
		return "", 0, "", false
	}
	if segs[1] == "total" {
		return "", 0, "count", true
	}
	idx, _ = strconv.Atoi(segs[2])
	switch {
	case len(segs) == 6 && segs[3] == "compute":
		return segs[1], idx, "compute", true
	case len(segs) == 6 && segs[3] == "memory" && segs[4] == "used":
		return segs[1], idx, "memory_used", true
	case len(segs) == 6 && segs[3] == "memory" && segs[4] == "total":
		return segs[1], idx, "memory_total", true
	default:
		return "", 0, "", false
	}
}

func (GPUPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	if modes.GPU == metric.GPUCollapsed {
		return "", false
	}
	vendor, idx, kind, ok := parseGPUName(name)
	if !ok || kind == "count" {
		return "", false
	}
	label := strings.ToUpper(vendor[:1]) + vendor[1:] + " GPU " + strconv.Itoa(idx)
	switch kind {
	case "compute":
		return label, true
	case "memory_used":
		return label + " VRAM used", modes.GPU == metric.GPULoadAndVRAM
	case "memory_total":
		return label + " VRAM total", modes.GPU == metric.GPULoadAndVRAM
	default:
		return "", false
	}
}

func (GPUPresenter) Format(name metric.Name, value, _ float64) string {
	if name.Unit() == metric.UnitPercent {
		return FormatPercent(value)
	}
	return FormatBytes(value)
}

func (GPUPresenter) ScalePolicy(name metric.Name, series []float64) float64 {
	if name.Unit() == metric.UnitPercent {
		return 100
	}
	return PowerOfTenCeiling(MaxOf(series))
}

func (GPUPresenter) Indent(name metric.Name) int {
	_, _, kind, _ := parseGPUName(name)
	if kind == "compute" {
		return 0
	}
	return 1
}

func (GPUPresenter) SortKey(name metric.Name) SortKey {
	_, idx, kind, ok := parseGPUName(name)
	if !ok {
		return SortKey{}
	}
	switch kind {
	case "compute":
		return SortKey{Group: idx, Rank: RankTotal, Order: 0}
	case "memory_used":
		return SortKey{Group: idx, Rank: RankLeaf, Order: 0}
	case "memory_total":
		return SortKey{Group: idx, Rank: RankLeaf, Order: 1}
	default:
		return SortKey{}
	}
}
