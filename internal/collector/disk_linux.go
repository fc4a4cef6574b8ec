//go:build linux

package collector

import (
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/disk"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Disk tracks cumulative per-device read/write byte counters and converts
// them to bytes/sec via a RateReader.
type Disk struct {
	rr *RateReader
}

// NewDisk creates a Disk collector sharing rr for its rate conversions.
func NewDisk(rr *RateReader) *Disk { return &Disk{rr: rr} }

func (*Disk) Name() string { return "disk" }

func (d *Disk) Collect(sample.PlatformContext) (metric.Values, error) {
	counters, err := disk.IOCounters()
	if err != nil {
		return nil, fmt.Errorf("collector: disk: %w", err)
	}
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(metric.Values, 0, len(names)*2+2)
	var totalRead, totalWrite float64
	for _, name := range names {
		c := counters[name]
		safeName := sanitizeDeviceName(name)
		r := d.rr.Next("disk.read."+safeName, float64(c.ReadBytes))
		w := d.rr.Next("disk.write."+safeName, float64(c.WriteBytes))
		out = append(out,
			metric.Entry{Name: metric.Build("disk", "device", safeName, "read", "bytes_per_sec"), Value: r},
			metric.Entry{Name: metric.Build("disk", "device", safeName, "write", "bytes_per_sec"), Value: w},
		)
		totalRead += r
		totalWrite += w
	}
	out = append(out,
		metric.Entry{Name: "disk.total.read.bytes_per_sec", Value: totalRead},
		metric.Entry{Name: "disk.total.write.bytes_per_sec", Value: totalWrite},
	)
	return out, nil
}
