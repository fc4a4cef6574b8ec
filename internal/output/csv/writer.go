// Package csv streams standardized metric ticks to a CSV sink. Grounded on
// dashboard.go's exportHistoryToCSV/readHistoryFromCSV pair, generalized
// from a fixed timestamp,cpu,mem,disk header to one row per metric per tick.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kerlenton/system-eye/internal/metric"
)

var header = []string{"timestamp", "metric", "value"}

// Writer emits one CSV row per metric value per tick, e.g.
// "1750693377.593887,memory.system.total.used.percent,78.5".
type Writer struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w. The header row is written lazily, on the first
// WriteTick call, so an empty run produces an empty file rather than a
// header with no data.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteTick emits one row per entry in values, in the order given: rows
// follow series-appearance (insertion) order — the same order
// Store.IterOrdered already returns — rather than an alphabetical resort.
// An operator tailing the CSV alongside the live chart sees the two
// describe the same underlying order.
func (cw *Writer) WriteTick(timestamp float64, values metric.Values) error {
	if !cw.wroteHeader {
		if err := cw.w.Write(header); err != nil {
			return err
		}
		cw.wroteHeader = true
	}
	ts := strconv.FormatFloat(timestamp, 'f', -1, 64)
	for _, e := range values {
		row := []string{ts, string(e.Name), strconv.FormatFloat(e.Value, 'f', -1, 64)}
		if err := cw.w.Write(row); err != nil {
			return err
		}
	}
	cw.w.Flush()
	return cw.w.Error()
}
