package horizon

import "fmt"

// getCol returns the terminal column that is `ago` sample-ticks behind the
// chart's right edge, matching cubestat.py's Horizon.get_col: the rightmost
// data column sits one cell inside the spacing-and-border margin.
func getCol(cols, ago int) int {
	return cols - 3 - ago
}

// timeLabel renders the "-N.NNs" ruler annotation for a column `ago` ticks
// into the past, given the sampling period and any accumulated pause
// offset, matching cubestat.py's vertical_time.
func timeLabel(refreshMS, ago, horizontalShift int) string {
	seconds := float64(refreshMS) * float64(ago+horizontalShift) / 1000.0
	return fmt.Sprintf("-%.2fs", seconds)
}

// spliceLabel writes label immediately followed by a '|' separator ending
// at column pos (inclusive) of line, matching cubestat.py's string-splice
// behavior in vertical_time/vertical_val: skipped entirely when there is
// not enough room to the left of pos.
func spliceLabel(line []rune, pos int, label string) {
	if pos < 0 || pos >= len(line) {
		return
	}
	start := pos - len(label)
	if start < 0 {
		return
	}
	for i, r := range label {
		line[start+i] = r
	}
	line[pos] = '|'
}

// newFilledLine allocates a rune slice of the given width, pre-filled with
// fill (cubestat.py's base_line of '.' characters).
func newFilledLine(width int, fill rune) []rune {
	line := make([]rune, width)
	for i := range line {
		line[i] = fill
	}
	return line
}
