package present

import "github.com/kerlenton/system-eye/internal/metric"

// PowerPresenter renders the combined power rail, and — under power.all —
// its per-component breakdown. power.off hides the domain entirely.
type PowerPresenter struct{}

func (PowerPresenter) Domain() metric.Domain { return metric.DomainPower }

func (PowerPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	if modes.Power == metric.PowerOff {
		return "", false
	}
	switch name {
	case "power.component.total.consumption.watts":
		return "Power", true
	case "power.component.cpu.consumption.watts":
		return "Power CPU", modes.Power == metric.PowerAll
	case "power.component.gpu.consumption.watts":
		return "Power GPU", modes.Power == metric.PowerAll
	case "power.component.ane.consumption.watts":
		return "Power ANE", modes.Power == metric.PowerAll
	default:
		return "", false
	}
}

func (PowerPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatWatts(value)
}

func (PowerPresenter) ScalePolicy(_ metric.Name, series []float64) float64 {
	return PowerOfTenCeiling(MaxOf(series))
}

func (PowerPresenter) Indent(name metric.Name) int {
	if name == "power.component.total.consumption.watts" {
		return 0
	}
	return 1
}

func (PowerPresenter) SortKey(name metric.Name) SortKey {
	switch name {
	case "power.component.total.consumption.watts":
		return SortKey{Rank: RankTotal, Order: 0}
	case "power.component.cpu.consumption.watts":
		return SortKey{Rank: RankLeaf, Order: 0}
	case "power.component.gpu.consumption.watts":
		return SortKey{Rank: RankLeaf, Order: 1}
	case "power.component.ane.consumption.watts":
		return SortKey{Rank: RankLeaf, Order: 2}
	default:
		return SortKey{}
	}
}
