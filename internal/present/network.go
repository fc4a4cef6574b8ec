package present

import (
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
)

// NetworkPresenter mirrors DiskPresenter's total-then-devices shape for
// per-interface rx/tx throughput.
type NetworkPresenter struct{}

func (NetworkPresenter) Domain() metric.Domain { return metric.DomainNetwork }

func parseNetworkName(name metric.Name) (iface, direction string, isTotal bool, ok bool) {
	segs := name.Segments()
	switch {
	case len(segs) == 4 && segs[0] == "network" && segs[1] == "total":
		return "", segs[2], true, true
	case len(segs) == 5 && segs[0] == "network" && segs[1] == "interface":
		return segs[2], segs[3], false, true
	default:
		return "", "", false, false
	}
}

func (NetworkPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	if modes.Network == metric.ToggleHide {
		return "", false
	}
	iface, direction, isTotal, ok := parseNetworkName(name)
	if !ok {
		return "", false
	}
	label := "rx"
	if direction == "tx" {
		label = "tx"
	}
	if isTotal {
		return "Net " + label, true
	}
	ifaceLabel := strings.ToUpper(iface[:1]) + iface[1:]
	return "Net " + ifaceLabel + " " + label, true
}

func (NetworkPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatBytesPerSec(value)
}

func (NetworkPresenter) ScalePolicy(_ metric.Name, series []float64) float64 {
	return PowerOfTenCeiling(MaxOf(series))
}

func (NetworkPresenter) Indent(name metric.Name) int {
	_, _, isTotal, _ := parseNetworkName(name)
	if isTotal {
		return 0
	}
	return 1
}

func (NetworkPresenter) SortKey(name metric.Name) SortKey {
	_, direction, isTotal, ok := parseNetworkName(name)
	if !ok {
		return SortKey{}
	}
	order := 0
	if direction == "tx" {
		order = 1
	}
	if isTotal {
		return SortKey{Rank: RankTotal, Order: order}
	}
	return SortKey{Rank: RankLeaf, Order: order}
}
