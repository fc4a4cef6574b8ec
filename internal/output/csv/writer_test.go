package csv

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTickEmitsHeaderThenRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteTick(1750693377.593887, metric.Values{
		{Name: "memory.system.total.used.percent", Value: 78.5},
	})
	require.NoError(t, err)

	lines := splitLines(t, buf.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "timestamp,metric,value", lines[0])
	assert.Equal(t, "1750693377.593887,memory.system.total.used.percent,78.5", lines[1])
}

func TestWriteTickWritesHeaderOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteTick(1, metric.Values{{Name: "cpu.total.utilization.percent", Value: 1}}))
	require.NoError(t, w.WriteTick(2, metric.Values{{Name: "cpu.total.utilization.percent", Value: 2}}))

	lines := splitLines(t, buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, 1, strings.Count(buf.String(), "timestamp,metric,value"))
}

func TestWriteTickPreservesInsertionOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteTick(1, metric.Values{
		{Name: "gpu.total.count", Value: 1},
		{Name: "cpu.total.utilization.percent", Value: 2},
	}))

	lines := splitLines(t, buf.String())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "gpu.total.count")
	assert.Contains(t, lines[2], "cpu.total.utilization.percent")
}

func splitLines(t *testing.T, s string) []string {
	t.Helper()
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}
