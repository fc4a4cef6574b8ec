package present

import "github.com/kerlenton/system-eye/internal/metric"

// MemoryPresenter renders the aggregate used-percent row, and — under
// memory.all — the absolute-bytes breakdown including any platform-extended
// keys a collector happened to emit. A key a collector never populated for
// this platform is simply not drawn, never shown as a fabricated zero.
type MemoryPresenter struct{}

func (MemoryPresenter) Domain() metric.Domain { return metric.DomainMemory }

func (MemoryPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	switch name {
	case "memory.system.total.used.percent":
		return "Memory", true
	case "memory.system.total.used.bytes":
		return "Memory used", modes.Memory == metric.MemoryAll
	case "memory.system.wired.bytes":
		return "Memory wired", modes.Memory == metric.MemoryAll
	case "memory.system.mapped.bytes":
		return "Memory mapped", modes.Memory == metric.MemoryAll
	default:
		return "", false
	}
}

func (MemoryPresenter) Format(name metric.Name, value, _ float64) string {
	if name.Unit() == metric.UnitPercent {
		return FormatPercent(value)
	}
	return FormatBytes(value)
}

func (MemoryPresenter) ScalePolicy(name metric.Name, series []float64) float64 {
	if name.Unit() == metric.UnitPercent {
		return 100
	}
	return PowerOfTenCeiling(MaxOf(series))
}

func (MemoryPresenter) Indent(metric.Name) int { return 0 }

func (MemoryPresenter) SortKey(name metric.Name) SortKey {
	switch name {
	case "memory.system.total.used.percent":
		return SortKey{Rank: RankTotal, Order: 0}
	case "memory.system.total.used.bytes":
		return SortKey{Rank: RankLeaf, Order: 0}
	case "memory.system.wired.bytes":
		return SortKey{Rank: RankLeaf, Order: 1}
	case "memory.system.mapped.bytes":
		return SortKey{Rank: RankLeaf, Order: 2}
	default:
		return SortKey{}
	}
}
