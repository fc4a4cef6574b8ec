package present

import "github.com/kerlenton/system-eye/internal/metric"

// SwapPresenter renders the single swap-used-bytes row, gated by the
// generic show/hide toggle.
type SwapPresenter struct{}

func (SwapPresenter) Domain() metric.Domain { return metric.DomainSwap }

func (SwapPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	if name != "swap.system.used.bytes" {
		return "", false
	}
	return "Swap", modes.Swap == metric.ToggleShow
}

func (SwapPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatBytes(value)
}

func (SwapPresenter) ScalePolicy(_ metric.Name, series []float64) float64 {
	return PowerOfTenCeiling(MaxOf(series))
}

func (SwapPresenter) Indent(metric.Name) int { return 0 }

func (SwapPresenter) SortKey(metric.Name) SortKey { return SortKey{} }
