// Package prometheus exposes the store as a dynamically-labeled Prometheus
// collector. Grounded on go-ffmpeg-hls-swarm's prometheus/client_golang
// wiring style
// (NewGaugeVec/registry.MustRegister), adapted from a fixed, hand-declared
// metric set to one discovered at runtime from the store's series names —
// which is why this package builds prometheus.Desc values in Collect rather
// than pre-declaring GaugeVecs, the client_golang pattern for collectors
// whose label dimensions aren't known until a series first appears.
package prometheus

import (
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
)

// Mapped is a metric.Name translated into Prometheus's flat-name-plus-labels
// shape. LabelNames and LabelValues are parallel slices, always built in
// the same order for a given segment pattern, so repeated Collect calls
// describe the same series with the same variable-label ordering.
type Mapped struct {
	Name        string
	LabelNames  []string
	LabelValues []string
}

// Map converts a standardized dot-notation metric name into a Prometheus
// name and label set, e.g.:
//
//	cpu.performance.0.core.2.utilization.percent
//	  -> cpu_utilization_percent{cluster="performance",cluster_index="0",core="2"}
func Map(name metric.Name) Mapped {
	segs := name.Segments()
	if len(segs) == 0 {
		return Mapped{Name: string(name)}
	}
	domain := segs[0]

	switch {
	case domain == "cpu" && len(segs) == 7 && segs[3] == "core":
		return Mapped{
			Name:        "cpu_" + strings.Join(segs[5:], "_"),
			LabelNames:  []string{"cluster", "cluster_index", "core"},
			LabelValues: []string{segs[1], segs[2], segs[4]},
		}
	case domain == "cpu" && len(segs) == 6 && segs[3] == "total":
		return Mapped{
			Name:        "cpu_" + strings.Join(segs[4:], "_"),
			LabelNames:  []string{"cluster", "cluster_index"},
			LabelValues: []string{segs[1], segs[2]},
		}
	case domain == "disk" && len(segs) == 5 && segs[1] == "device":
		return Mapped{
			Name:        "disk_" + strings.Join(segs[3:], "_"),
			LabelNames:  []string{"device"},
			LabelValues: []string{segs[2]},
		}
	case domain == "network" && len(segs) == 5 && segs[1] == "interface":
		return Mapped{
			Name:        "network_" + strings.Join(segs[3:], "_"),
			LabelNames:  []string{"interface"},
			LabelValues: []string{segs[2]},
		}
	case domain == "gpu" && len(segs) >= 5 && segs[1] != "total":
		return Mapped{
			Name:        "gpu_" + strings.Join(segs[3:], "_"),
			LabelNames:  []string{"vendor", "index"},
			LabelValues: []string{segs[1], segs[2]},
		}
	default:
		return Mapped{Name: strings.Join(segs, "_")}
	}
}
