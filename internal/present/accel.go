package present

import "github.com/kerlenton/system-eye/internal/metric"

// AccelPresenter renders the ANE utilization row. Unlike the other domains
// it has no dedicated CLI toggle, so it is always visible whenever the
// collector emits it.
type AccelPresenter struct{}

func (AccelPresenter) Domain() metric.Domain { return metric.DomainAccel }

func (AccelPresenter) DisplayName(name metric.Name, _ Modes) (string, bool) {
	if name != "accel.ane.utilization.percent" {
		return "", false
	}
	return "ANE", true
}

func (AccelPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatPercent(value)
}

func (AccelPresenter) ScalePolicy(metric.Name, []float64) float64 { return 100 }

func (AccelPresenter) Indent(metric.Name) int { return 0 }

func (AccelPresenter) SortKey(metric.Name) SortKey { return SortKey{} }
