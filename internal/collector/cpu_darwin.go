//go:build darwin

package collector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// CPU reads per-cluster, per-core utilization from the powermetrics
// subprocess document. Grounded on cubestat/apple_reader.py's cluster/cpu
// idle-ratio walk.
type CPU struct{}

func (CPU) Name() string { return "cpu" }

func (CPU) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: cpu: unexpected context %T", raw)
	}
	var out metric.Values
	for idx, cluster := range doc.Processor.Clusters {
		name := sanitizeDeviceName(clusterDisplayName(cluster.Name))
		var idleSum float64
		for _, c := range cluster.CPUs {
			util := 100.0 - 100.0*c.IdleRatio
			out = append(out, metric.Entry{
				Name:  metric.Build("cpu", name, strconv.Itoa(idx), "core", strconv.Itoa(c.CPUID), "utilization", "percent"),
				Value: util,
			})
			idleSum += c.IdleRatio
		}
		if len(cluster.CPUs) > 0 {
			out = append(out, metric.Entry{
				Name:  metric.Build("cpu", name, strconv.Itoa(idx), "total", "utilization", "percent"),
				Value: 100.0 - 100.0*idleSum/float64(len(cluster.CPUs)),
			})
		}
	}
	out = append(out, metric.Entry{Name: "cpu.total.count", Value: float64(doc.Processor.TotalCoreCount())})
	return out, nil
}

// clusterDisplayName strips a trailing "-cluster"/"cluster" suffix so
// powermetrics' "E-Cluster"/"P-Cluster" names read as "efficiency"/
// "performance" when lowercased.
func clusterDisplayName(raw string) string {
	n := strings.ToLower(raw)
	n = strings.TrimSuffix(n, "-cluster")
	n = strings.TrimSuffix(n, "cluster")
	switch n {
	case "e", "e-":
		return "efficiency"
	case "p", "p-":
		return "performance"
	}
	return n
}
