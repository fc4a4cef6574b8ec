//go:build darwin

package collector

import (
	"fmt"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Network reads already rate-converted rx/tx throughput from the
// powermetrics document, mirroring Disk's aggregate-only shape. Grounded on
// cubestat/apple_reader.py's network.ibyte_rate/obyte_rate.
type Network struct{}

func NewNetwork(*RateReader) *Network { return &Network{} }

func (*Network) Name() string { return "network" }

func (*Network) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: network: unexpected context %T", raw)
	}
	if !doc.Network.Present {
		return metric.Values{}, nil
	}
	return metric.Values{
		{Name: "network.total.rx.bytes_per_sec", Value: doc.Network.IByteRate},
		{Name: "network.total.tx.bytes_per_sec", Value: doc.Network.OByteRate},
	}, nil
}
