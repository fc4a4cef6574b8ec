package prometheus

import (
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
)

func TestMapCPUCoreMetricMatchesScenario(t *testing.T) {
	mapped := Map(metric.Name("cpu.performance.0.core.2.utilization.percent"))
	assert.Equal(t, "cpu_utilization_percent", mapped.Name)
	assert.Equal(t, []string{"cluster", "cluster_index", "core"}, mapped.LabelNames)
	assert.Equal(t, []string{"performance", "0", "2"}, mapped.LabelValues)
}

func TestMapCPUTotalMetric(t *testing.T) {
	mapped := Map(metric.Name("cpu.performance.0.total.utilization.percent"))
	assert.Equal(t, "cpu_utilization_percent", mapped.Name)
	assert.Equal(t, []string{"cluster", "cluster_index"}, mapped.LabelNames)
	assert.Equal(t, []string{"performance", "0"}, mapped.LabelValues)
}

func TestMapDiskDeviceMetric(t *testing.T) {
	mapped := Map(metric.Name("disk.device.sda.read.bytes_per_sec"))
	assert.Equal(t, "disk_read_bytes_per_sec", mapped.Name)
	assert.Equal(t, []string{"device"}, mapped.LabelNames)
	assert.Equal(t, []string{"sda"}, mapped.LabelValues)
}

func TestMapFlatMetricHasNoLabels(t *testing.T) {
	mapped := Map(metric.Name("memory.system.total.used.percent"))
	assert.Equal(t, "memory_system_total_used_percent", mapped.Name)
	assert.Empty(t, mapped.LabelNames)
}
