package present

import (
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
)

// DiskPresenter renders total read/write throughput plus, indented beneath,
// one row per device. Devices arrive from the collector already sorted by
// name (internal/collector disk_linux.go), and rows sharing a SortKey are
// left in that arrival order by the renderer's stable sort, so no name is
// threaded into the key itself.
type DiskPresenter struct{}

func (DiskPresenter) Domain() metric.Domain { return metric.DomainDisk }

func parseDiskName(name metric.Name) (device, direction string, isTotal bool, ok bool) {
	segs := name.Segments()
	switch {
	case len(segs) == 4 && segs[0] == "disk" && segs[1] == "total":
		return "", segs[2], true, true
	case len(segs) == 5 && segs[0] == "disk" && segs[1] == "device":
		return segs[2], segs[3], false, true
	default:
		return "", "", false, false
	}
}

func (DiskPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	if modes.Disk == metric.ToggleHide {
		return "", false
	}
	device, direction, isTotal, ok := parseDiskName(name)
	if !ok {
		return "", false
	}
	if isTotal {
		return "Disk " + direction, true
	}
	label := strings.ToUpper(device[:1]) + device[1:]
	return "Disk " + label + " " + direction, true
}

func (DiskPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatBytesPerSec(value)
}

func (DiskPresenter) ScalePolicy(_ metric.Name, series []float64) float64 {
	return PowerOfTenCeiling(MaxOf(series))
}

func (DiskPresenter) Indent(name metric.Name) int {
	_, _, isTotal, _ := parseDiskName(name)
	if isTotal {
		return 0
	}
	return 1
}

func (DiskPresenter) SortKey(name metric.Name) SortKey {
	_, direction, isTotal, ok := parseDiskName(name)
	if !ok {
		return SortKey{}
	}
	order := 0
	if direction == "write" {
		order = 1
	}
	if isTotal {
		return SortKey{Rank: RankTotal, Order: order}
	}
	return SortKey{Rank: RankLeaf, Order: order}
}
