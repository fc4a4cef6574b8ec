//go:build darwin

package sample

import (
	"bytes"
	"fmt"
	"sort"

	"howett.net/plist"
)

// ParsePowerMetricsDoc decodes one powermetrics plist document into a typed
// PowerMetricsDoc. It first unmarshals into the dynamically-typed map the
// plist format naturally produces, then extracts the handful of paths the
// collectors need into fixed struct fields, so nothing downstream of this
// function ever indexes a map[string]any.
func ParsePowerMetricsDoc(raw []byte) (*PowerMetricsDoc, error) {
	var doc map[string]any
	if err := plist.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sample: decode plist: %w", err)
	}

	out := &PowerMetricsDoc{Timestamp: NowSeconds()}
	if ts, ok := asFloat(doc["timestamp"]); ok {
		out.Timestamp = ts
	}

	if proc, ok := doc["processor"].(map[string]any); ok {
		out.Processor = parseProcessor(proc)
	}
	if gpu, ok := doc["gpu"].(map[string]any); ok {
		if idle, ok := asFloat(gpu["idle_ratio"]); ok {
			out.GPU = GPUSection{IdleRatio: idle, Present: true}
		}
	}
	if nw, ok := doc["network"].(map[string]any); ok {
		ib, iok := asFloat(nw["ibyte_rate"])
		ob, ook := asFloat(nw["obyte_rate"])
		if iok || ook {
			out.Network = NetworkSection{IByteRate: ib, OByteRate: ob, Present: true}
		}
	}
	if dk, ok := doc["disk"].(map[string]any); ok {
		rb, rok := asFloat(dk["rbytes_per_s"])
		wb, wok := asFloat(dk["wbytes_per_s"])
		if rok || wok {
			out.Disk = DiskSection{RBytesPerSec: rb, WBytesPerSec: wb, Present: true}
		}
	}
	return out, nil
}

func parseProcessor(proc map[string]any) ProcessorSection {
	var p ProcessorSection
	if energy, ok := asFloat(proc["ane_energy"]); ok {
		p.ANEEnergyMJ = energy
	}
	if v, ok := asFloat(proc["cpu_power"]); ok {
		p.CPUPowerMW = v
		p.HasPower = true
	}
	if v, ok := asFloat(proc["gpu_power"]); ok {
		p.GPUPowerMW = v
		p.HasPower = true
	}
	if v, ok := asFloat(proc["ane_power"]); ok {
		p.ANEPowerMW = v
		p.HasPower = true
	}
	if v, ok := asFloat(proc["combined_power"]); ok {
		p.CombinedPowerMW = v
		p.HasPower = true
	}

	rawClusters, _ := proc["clusters"].([]any)
	for _, rc := range rawClusters {
		cm, ok := rc.(map[string]any)
		if !ok {
			continue
		}
		name, _ := cm["name"].(string)
		var cores []CPUCoreSection
		rawCPUs, _ := cm["cpus"].([]any)
		for _, rcpu := range rawCPUs {
			cpum, ok := rcpu.(map[string]any)
			if !ok {
				continue
			}
			id, _ := asFloat(cpum["cpu"])
			idle, _ := asFloat(cpum["idle_ratio"])
			cores = append(cores, CPUCoreSection{CPUID: int(id), IdleRatio: idle})
		}
		sort.Slice(cores, func(i, j int) bool { return cores[i].CPUID < cores[j].CPUID })
		p.Clusters = append(p.Clusters, ClusterSection{Name: name, CPUs: cores})
	}
	sort.Slice(p.Clusters, func(i, j int) bool { return p.Clusters[i].MinCoreID() < p.Clusters[j].MinCoreID() })
	return p
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
