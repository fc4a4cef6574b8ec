package present

import (
	"sort"
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
)

func TestCPUByClusterHidesCoreRows(t *testing.T) {
	p := CPUPresenter{}
	modes := Modes{CPU: metric.CPUByCluster}

	_, ok := p.DisplayName("cpu.performance.0.total.utilization.percent", modes)
	assert.True(t, ok)

	_, ok = p.DisplayName("cpu.performance.0.core.0.utilization.percent", modes)
	assert.False(t, ok)
}

func TestCPUByCoreShowsBoth(t *testing.T) {
	p := CPUPresenter{}
	modes := Modes{CPU: metric.CPUByCore}

	_, ok := p.DisplayName("cpu.performance.0.total.utilization.percent", modes)
	assert.True(t, ok)
	_, ok = p.DisplayName("cpu.performance.0.core.0.utilization.percent", modes)
	assert.True(t, ok)
}

func TestCPUAllHidesTotals(t *testing.T) {
	p := CPUPresenter{}
	modes := Modes{CPU: metric.CPUAll}

	_, ok := p.DisplayName("cpu.performance.0.total.utilization.percent", modes)
	assert.False(t, ok)
	_, ok = p.DisplayName("cpu.performance.0.core.0.utilization.percent", modes)
	assert.True(t, ok)
}

// TestCPUDisplayOrderingScenario covers two clusters, performance (cores
// 0,1) and efficiency (cores 2,3), and checks the resulting row order under
// by_core.
func TestCPUDisplayOrderingScenario(t *testing.T) {
	p := CPUPresenter{}
	modes := Modes{CPU: metric.CPUByCore}

	names := []metric.Name{
		"cpu.performance.0.total.utilization.percent",
		"cpu.performance.0.core.0.utilization.percent",
		"cpu.performance.0.core.1.utilization.percent",
		"cpu.efficiency.1.total.utilization.percent",
		"cpu.efficiency.1.core.2.utilization.percent",
		"cpu.efficiency.1.core.3.utilization.percent",
	}

	type row struct {
		name  metric.Name
		title string
		key   SortKey
	}
	var rows []row
	for _, n := range names {
		title, ok := p.DisplayName(n, modes)
		assert.True(t, ok)
		rows = append(rows, row{name: n, title: title, key: p.SortKey(n)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].key.Less(rows[j].key) })

	var titles []string
	for _, r := range rows {
		titles = append(titles, r.title)
	}
	assert.Equal(t, []string{
		"Performance total",
		"Performance CPU 0",
		"Performance CPU 1",
		"Efficiency total",
		"Efficiency CPU 2",
		"Efficiency CPU 3",
	}, titles)
}

func TestCPUTotalCountNeverDisplayed(t *testing.T) {
	p := CPUPresenter{}
	_, ok := p.DisplayName("cpu.total.count", Modes{CPU: metric.CPUByCore})
	assert.False(t, ok)
}
