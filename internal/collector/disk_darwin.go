//go:build darwin

package collector

import (
	"fmt"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Disk reads already rate-converted read/write throughput from the
// powermetrics document. powermetrics reports one aggregate figure rather
// than per-device counters, so this collector only emits the totals;
// grounded on cubestat/apple_reader.py's disk.rbytes_per_s/wbytes_per_s.
type Disk struct{}

func NewDisk(*RateReader) *Disk { return &Disk{} }

func (*Disk) Name() string { return "disk" }

func (*Disk) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: disk: unexpected context %T", raw)
	}
	if !doc.Disk.Present {
		return metric.Values{}, nil
	}
	return metric.Values{
		{Name: "disk.total.read.bytes_per_sec", Value: doc.Disk.RBytesPerSec},
		{Name: "disk.total.write.bytes_per_sec", Value: doc.Disk.WBytesPerSec},
	}, nil
}
