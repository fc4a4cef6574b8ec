// Package collector normalizes raw platform observations into the flat,
// dot-notation StandardMetricName namespace. One Collector
// exists per (domain, platform) pair; ForPlatform (resolved at
// compile time via build tags, since GOOS never varies at runtime for a
// given binary) returns the ordered list that runs each tick.
package collector

import (
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Collector turns one tick's raw platform context into an ordered set of
// standardized metric values. A Collector that errors contributes no
// entries this tick: the scheduler logs at WARN and moves on, it never
// aborts the loop.
type Collector interface {
	Name() string
	Collect(raw sample.PlatformContext) (metric.Values, error)
}

// CollectAll runs every collector in order, concatenating their outputs
// into one tick's ordered value list. A later duplicate name overwrites the
// earlier entry's value in place, preserving the position of first
// occurrence. A collector error is reported through onError (typically a
// WARN log) instead of stopping the remaining collectors.
func CollectAll(collectors []Collector, raw sample.PlatformContext, onError func(name string, err error)) metric.Values {
	var out metric.Values
	index := make(map[metric.Name]int)
	for _, c := range collectors {
		vals, err := c.Collect(raw)
		if err != nil {
			if onError != nil {
				onError(c.Name(), err)
			}
			continue
		}
		for _, e := range vals {
			if i, ok := index[e.Name]; ok {
				out[i].Value = e.Value
				continue
			}
			index[e.Name] = len(out)
			out = append(out, e)
		}
	}
	return out
}
