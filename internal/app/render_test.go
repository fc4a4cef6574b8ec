package app

import (
	"testing"

	"github.com/kerlenton/system-eye/internal/display"
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/present"
	"github.com/kerlenton/system-eye/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildLinesOrdersByClusterThenTotalThenCore checks CPU row ordering
// end to end, through the store and presenter registry rather than the
// presenter alone.
func TestBuildLinesOrdersByClusterThenTotalThenCore(t *testing.T) {
	st := store.New(10)
	st.Ingest(metric.Values{
		{Name: "cpu.performance.0.total.utilization.percent", Value: 10},
		{Name: "cpu.performance.0.core.0.utilization.percent", Value: 20},
		{Name: "cpu.performance.0.core.1.utilization.percent", Value: 30},
		{Name: "cpu.efficiency.1.total.utilization.percent", Value: 5},
		{Name: "cpu.efficiency.1.core.2.utilization.percent", Value: 15},
		{Name: "cpu.efficiency.1.core.3.utilization.percent", Value: 25},
	})

	state := display.New()
	state.CPU = metric.CPUByCore
	lines := BuildLines(st, present.Registry(), state, 20)

	require.Len(t, lines, 6)
	got := make([]string, len(lines))
	for i, l := range lines {
		got[i] = l.Row.Title
	}
	assert.Equal(t, []string{
		"Performance total",
		"Performance CPU 0",
		"Performance CPU 1",
		"Efficiency total",
		"Efficiency CPU 2",
		"Efficiency CPU 3",
	}, got)
}

func TestBuildLinesHidesMetricsWithoutAPresenter(t *testing.T) {
	st := store.New(10)
	st.Ingest(metric.Values{{Name: "unknown.domain.thing.count", Value: 1}})

	state := display.New()
	lines := BuildLines(st, present.Registry(), state, 20)
	assert.Empty(t, lines)
}

func TestBuildLinesCurrentValueFollowsPauseCursor(t *testing.T) {
	st := store.New(10)
	for _, v := range []float64{10, 20, 30, 40, 50} {
		st.Ingest(metric.Values{{Name: "memory.system.total.used.percent", Value: v}})
	}

	state := display.New()
	live := BuildLines(st, present.Registry(), state, 20)
	require.Len(t, live, 1)
	assert.Equal(t, "50.0%", live[0].Row.Value)

	state.ColsOff = 2
	paused := BuildLines(st, present.Registry(), state, 20)
	require.Len(t, paused, 1)
	assert.Equal(t, "30.0%", paused[0].Row.Value)
}

func TestBuildLinesRowsOffScrollsPastLeadingRows(t *testing.T) {
	st := store.New(10)
	st.Ingest(metric.Values{
		{Name: "memory.system.total.used.percent", Value: 50},
		{Name: "swap.system.used.bytes", Value: 5},
	})

	state := display.New()
	state.RowsOff = 1
	lines := BuildLines(st, present.Registry(), state, 20)
	require.Len(t, lines, 1)
	assert.Equal(t, "Swap", lines[0].Row.Title)
}
