package app

import (
	"sort"

	"github.com/kerlenton/system-eye/internal/display"
	"github.com/kerlenton/system-eye/internal/horizon"
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/present"
	"github.com/kerlenton/system-eye/internal/store"
)

// BuildLines snapshots st and turns every currently-visible metric series
// into a horizon.Line. Domains keep the order in which the store first saw
// them; within a domain, rows are ordered by its presenter's SortKey. cols bounds how
// much history each line carries; state.ColsOff shifts the window into the
// past and state.RowsOff scrolls past the first rows entirely.
func BuildLines(st *store.Store, reg []present.Presenter, state *display.State, cols int) []horizon.Line {
	modes := state.Modes()

	type staged struct {
		row    present.Row
		domain metric.Domain
		series []float64
		scale  float64
	}
	var staging []staged
	domainPos := make(map[metric.Domain]int)

	st.IterOrdered(func(name metric.Name, r *store.Ring) {
		if _, seen := domainPos[name.Domain()]; !seen {
			domainPos[name.Domain()] = len(domainPos)
		}
		p, ok := present.ForDomain(reg, name.Domain())
		if !ok {
			return
		}
		title, ok := p.DisplayName(name, modes)
		if !ok {
			return
		}
		series, _ := r.Slice(cols, state.ColsOff)
		scale := p.ScalePolicy(name, series)
		// The annotated value tracks the right edge of the visible window:
		// the live latest sample while scrolled to offset 0, or the sample
		// frozen under the pause cursor once the user has scrolled back.
		var current float64
		if state.ColsOff > 0 {
			current, _ = r.AtOffset(state.ColsOff)
		} else {
			current, _ = r.Last()
		}
		row := present.Row{
			Name:    name,
			Title:   title,
			Value:   p.Format(name, current, scale),
			Indent:  p.Indent(name),
			SortKey: p.SortKey(name),
		}
		staging = append(staging, staged{row: row, domain: name.Domain(), series: series, scale: scale})
	})

	sort.SliceStable(staging, func(i, j int) bool {
		if di, dj := domainPos[staging[i].domain], domainPos[staging[j].domain]; di != dj {
			return di < dj
		}
		return staging[i].row.SortKey.Less(staging[j].row.SortKey)
	})

	switch {
	case state.RowsOff >= len(staging):
		staging = nil
	case state.RowsOff > 0:
		staging = staging[state.RowsOff:]
	}

	lines := make([]horizon.Line, 0, len(staging))
	for _, s := range staging {
		lines = append(lines, horizon.Line{
			Row:      s.row,
			Domain:   s.domain,
			Values:   s.series,
			ScaleMax: s.scale,
			Current:  s.row.Value,
		})
	}
	return lines
}
