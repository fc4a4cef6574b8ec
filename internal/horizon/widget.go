package horizon

import (
	"image"

	ui "github.com/gizak/termui/v3"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/present"
)

// timelineInterval is the column spacing between ruler markers, in
// characters (cubestat.py's Horizon.timeline_interval).
const timelineInterval = 20

// Line is one fully-resolved chart row ready to draw: a presenter Row's
// metadata plus the value window and scale chosen for this frame.
type Line struct {
	Row      present.Row
	Domain   metric.Domain
	Values   []float64
	ScaleMax float64
	Current  string
}

// Widget draws a stack of horizon-chart Lines, two terminal rows per
// metric, plus a shared time ruler at the bottom. It implements
// ui.Drawable directly rather than composing termui's stock widgets,
// because no stock widget renders the packed sub-character intensity bands
// a horizon chart needs; grounded on cubestat.py's Horizon.render layout of
// a boxed title/value row over a boxed colored-chart row.
type Widget struct {
	*ui.Block

	Lines           []Line
	View            metric.ViewMode
	RefreshMS       int
	HorizontalShift int
	Selection       int // terminal column pinned by mouse click; -1 when unset
}

// NewWidget returns an empty Widget. Block's own border is disabled: each
// row draws its own box-drawing glyphs directly, matching the source's
// per-metric ╔/╚/╗/╝ framing rather than one frame around the whole panel.
func NewWidget() *Widget {
	b := ui.NewBlock()
	b.Border = false
	return &Widget{Block: b, Selection: -1}
}

func (w *Widget) Draw(buf *ui.Buffer) {
	rect := w.GetRect()
	cols, rows := rect.Dx(), rect.Dy()
	if cols < 1 || rows < 1 {
		return // terminal too small to draw anything meaningful this frame
	}

	y := 0
	for _, line := range w.Lines {
		if y+1 >= rows {
			break
		}
		w.drawLine(buf, rect, y, cols, line)
		y += 2
	}
	if w.View != metric.ViewOff && y < rows {
		w.drawRuler(buf, rect, y, cols)
	}
}

func (w *Widget) drawLine(buf *ui.Buffer, rect image.Rectangle, y, cols int, line Line) {
	indentStr := ""
	for i := 0; i < line.Row.Indent; i++ {
		indentStr += "  "
	}

	titleStr := indentStr + "╔ " + line.Row.Title // ╔
	titleLine := newFilledLine(cols, '.')
	copyInto(titleLine, 0, titleStr)

	rightBorder := " ╗" // ╗
	blankFrom := len(titleStr)
	if blankFrom > cols-len(rightBorder) {
		blankFrom = cols - len(rightBorder)
	}
	if blankFrom >= 0 {
		copyInto(titleLine, cols-len(rightBorder), rightBorder)
	}

	if w.View != metric.ViewOff {
		for ago := 0; ago < cols; ago += timelineInterval {
			w.spliceValue(titleLine, cols, ago, line)
			if w.View != metric.ViewAll {
				break
			}
		}
		if w.Selection >= 0 {
			w.spliceValue(titleLine, cols, getCol(cols, 0)-w.Selection, line)
		}
	}
	setRunes(buf, rect, y, titleLine, ui.Theme.Default)

	bottomLine := newFilledLine(cols, ' ')
	copyInto(bottomLine, 0, indentStr+"╚") // ╚
	copyInto(bottomLine, cols-2, " ╝")      // ╝
	setRunes(buf, rect, y+1, bottomLine, ui.Theme.Default)

	band := BandFor(line.Domain)
	chartStart := len(indentStr) + 1
	chartEnd := cols - 2
	n := len(line.Values)
	col := chartEnd - n
	for _, v := range line.Values {
		if col >= chartStart && col < chartEnd {
			if cell, ok := band.At(v, line.ScaleMax); ok {
				buf.SetCell(ui.NewCell(cell.Char, ui.NewStyle(ui.Color(cell.Color))), image.Pt(rect.Min.X+col, rect.Min.Y+y+1))
			}
		}
		col++
	}
}

func (w *Widget) spliceValue(line []rune, cols, ago int, l Line) {
	idx := len(l.Values) - 1 - ago
	if idx < 0 || idx >= len(l.Values) {
		return
	}
	pos := getCol(cols, ago)
	spliceLabel(line, pos, l.Current)
}

func (w *Widget) drawRuler(buf *ui.Buffer, rect image.Rectangle, y, cols int) {
	rulerLine := newFilledLine(cols, '.')
	for ago := 0; ago < cols; ago += timelineInterval {
		pos := getCol(cols, ago)
		spliceLabel(rulerLine, pos, timeLabel(w.RefreshMS, ago, w.HorizontalShift))
	}
	if w.Selection >= 0 {
		if ago := getCol(cols, 0) - w.Selection; ago >= 0 {
			spliceLabel(rulerLine, w.Selection, timeLabel(w.RefreshMS, ago, w.HorizontalShift))
		}
	}
	framed := newFilledLine(cols, ' ')
	copyInto(framed, 0, "╚ ") // ╚ + space
	for i, r := range rulerLine {
		if i+2 < cols-2 {
			framed[i+2] = r
		}
	}
	copyInto(framed, cols-2, " ╝") // ╝
	setRunes(buf, rect, y, framed, ui.Theme.Default)
}

func copyInto(line []rune, at int, s string) {
	for i, r := range s {
		if at+i < 0 || at+i >= len(line) {
			continue
		}
		line[at+i] = r
	}
}

func setRunes(buf *ui.Buffer, rect image.Rectangle, y int, line []rune, style ui.Style) {
	for x, r := range line {
		buf.SetCell(ui.NewCell(r, style), image.Pt(rect.Min.X+x, rect.Min.Y+y))
	}
}
