//go:build linux

package collector

import (
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/net"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Network tracks cumulative per-interface rx/tx byte counters and converts
// them to bytes/sec via a RateReader, mirroring Disk's rate-conversion
// pattern.
type Network struct {
	rr *RateReader
}

// NewNetwork creates a Network collector sharing rr for its rate conversions.
func NewNetwork(rr *RateReader) *Network { return &Network{rr: rr} }

func (*Network) Name() string { return "network" }

func (n *Network) Collect(sample.PlatformContext) (metric.Values, error) {
	counters, err := net.IOCounters(true)
	if err != nil {
		return nil, fmt.Errorf("collector: network: %w", err)
	}
	sort.Slice(counters, func(i, j int) bool { return counters[i].Name < counters[j].Name })

	out := make(metric.Values, 0, len(counters)*2+2)
	var totalRx, totalTx float64
	for _, c := range counters {
		safeName := sanitizeDeviceName(c.Name)
		rx := n.rr.Next("network.rx."+safeName, float64(c.BytesRecv))
		tx := n.rr.Next("network.tx."+safeName, float64(c.BytesSent))
		out = append(out,
			metric.Entry{Name: metric.Build("network", "interface", safeName, "rx", "bytes_per_sec"), Value: rx},
			metric.Entry{Name: metric.Build("network", "interface", safeName, "tx", "bytes_per_sec"), Value: tx},
		)
		totalRx += rx
		totalTx += tx
	}
	out = append(out,
		metric.Entry{Name: "network.total.rx.bytes_per_sec", Value: totalRx},
		metric.Entry{Name: "network.total.tx.bytes_per_sec", Value: totalTx},
	)
	return out, nil
}
