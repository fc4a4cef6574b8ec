// Package horizon renders resolved metric rows into 256-color horizon
// charts, one row per two terminal lines, grounded on cubestat.py's
// Horizon.render and cubestat/colors.py's cell/colormap construction.
package horizon

import "github.com/kerlenton/system-eye/internal/metric"

// Cell is one entry in a ColorBand: the glyph and 256-color index used to
// render a given intensity step.
type Cell struct {
	Char  rune
	Color int
}

// Band is the ordered 3*N-cell sequence the renderer indexes by intensity.
type Band []Cell

// shadeChars are the sub-cell glyphs cycled within each of the band's three
// color layers, from thinnest to a full block — cubestat/colors.py's
// prepare_cells() glyph set with the leading blank dropped, since a value
// that rounds to the lowest cell should still show something.
var shadeChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// NewBand builds a 3*n cell band from three ansi256 color indices, one per
// layer, cycling shadeChars within each layer for sub-cell resolution.
func NewBand(n int, colors [3]int) Band {
	band := make(Band, 0, 3*n)
	for _, color := range colors {
		for i := 0; i < n; i++ {
			band = append(band, Cell{Char: shadeChars[i*len(shadeChars)/n], Color: color})
		}
	}
	return band
}

// N is the number of shade steps per color layer used throughout the
// renderer; 8 gives a good balance of granularity against terminal-color
// fidelity.
const N = 8

// DomainColors are the three ansi256 foreground indices used for each
// metric domain's band layers (lowest intensity first), taken verbatim
// from cubestat/colors.py's colors_ansi256 table, grouped by the same
// light_colormap families (cpu→green, memory/swap→pink, gpu/ane/power→red,
// disk/network→blue).
var DomainColors = map[metric.Domain][3]int{
	metric.DomainCPU:     {150, 107, 22},
	metric.DomainMemory:  {223, 180, 137},
	metric.DomainSwap:    {223, 180, 137},
	metric.DomainGPU:     {224, 181, 138},
	metric.DomainAccel:   {224, 181, 138},
	metric.DomainPower:   {224, 181, 138},
	metric.DomainDisk:    {189, 146, 103},
	metric.DomainNetwork: {189, 146, 103},
}

// defaultColors is used for any domain not present in DomainColors.
var defaultColors = [3]int{150, 107, 22}

// BandFor returns the color band for a metric domain.
func BandFor(d metric.Domain) Band {
	colors, ok := DomainColors[d]
	if !ok {
		colors = defaultColors
	}
	return NewBand(N, colors)
}

// Index computes the band cell for value v against scaleMax: the intensity
// index clamped to [0, 3N-1] under clamp(floor(3N*v/scale_max), 0, 3N-1).
func Index(v, scaleMax float64, n int) int {
	total := 3 * n
	if scaleMax <= 0 {
		return 0
	}
	idx := int(v / scaleMax * float64(total))
	if idx < 0 {
		idx = 0
	}
	if idx >= total {
		idx = total - 1
	}
	return idx
}

// At resolves the cell for v against scaleMax. A non-positive v resolves to
// no cell at all (ok=false), matching cubestat.py's render loop skipping
// cell_index <= 0 so a flat-zero series draws as blank rather than a
// visible low band.
func (b Band) At(v, scaleMax float64) (Cell, bool) {
	if v <= 0 {
		return Cell{}, false
	}
	n := len(b) / 3
	return b[Index(v, scaleMax, n)], true
}
