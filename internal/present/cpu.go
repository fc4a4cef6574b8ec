package present

import (
	"strconv"
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
)

// CPUPresenter renders per-cluster and per-core utilization rows. Cluster
// index in the standardized name is assigned at parse time in the minimum
// core-id order the cluster's cores occupy (internal/sample and
// internal/collector), so using it directly as the sort Group already
// orders clusters by the minimum core id they contain.
type CPUPresenter struct{}

func (CPUPresenter) Domain() metric.Domain { return metric.DomainCPU }

func parseCPUName(name metric.Name) (cluster string, idx, coreID int, isTotal, ok bool) {
	segs := name.Segments()
	switch {
	case len(segs) == 6 && segs[0] == "cpu" && segs[3] == "total":
		idx, _ = strconv.Atoi(segs[2])
		return segs[1], idx, 0, true, true
	case len(segs) == 7 && segs[0] == "cpu" && segs[3] == "core":
		idx, _ = strconv.Atoi(segs[2])
		coreID, _ = strconv.Atoi(segs[4])
		return segs[1], idx, coreID, false, true
	default:
		return "", 0, 0, false, false
	}
}

func cpuGroupLabel(cluster string) string {
	if cluster == "cpu" {
		return "CPU"
	}
	return strings.ToUpper(cluster[:1]) + cluster[1:]
}

func (CPUPresenter) DisplayName(name metric.Name, modes Modes) (string, bool) {
	cluster, _, coreID, isTotal, ok := parseCPUName(name)
	if !ok {
		return "", false
	}
	switch modes.CPU {
	case metric.CPUByCluster:
		if !isTotal {
			return "", false
		}
	case metric.CPUAll:
		if isTotal {
			return "", false
		}
	case metric.CPUByCore:
		// both totals and cores are visible
	}
	label := cpuGroupLabel(cluster)
	if isTotal {
		return label + " total", true
	}
	if cluster == "cpu" {
		return label + " " + strconv.Itoa(coreID), true
	}
	return label + " CPU " + strconv.Itoa(coreID), true
}

func (CPUPresenter) Format(_ metric.Name, value, _ float64) string {
	return FormatPercent(value)
}

func (CPUPresenter) ScalePolicy(metric.Name, []float64) float64 { return 100 }

func (CPUPresenter) Indent(name metric.Name) int {
	_, _, _, isTotal, _ := parseCPUName(name)
	if isTotal {
		return 0
	}
	return 1
}

func (CPUPresenter) SortKey(name metric.Name) SortKey {
	cluster, idx, coreID, isTotal, ok := parseCPUName(name)
	_ = cluster
	if !ok {
		return SortKey{}
	}
	if isTotal {
		return SortKey{Group: idx, Rank: RankTotal, Order: 0}
	}
	return SortKey{Group: idx, Rank: RankLeaf, Order: coreID}
}
