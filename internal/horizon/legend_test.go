package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetColPlacesAgoZeroNearRightEdge(t *testing.T) {
	assert.Equal(t, 77, getCol(80, 0))
	assert.Equal(t, 67, getCol(80, 10))
}

func TestTimeLabelFormatsSeconds(t *testing.T) {
	assert.Equal(t, "-1.00s", timeLabel(1000, 1, 0))
	assert.Equal(t, "-0.00s", timeLabel(1000, 0, 0))
	assert.Equal(t, "-2.50s", timeLabel(1000, 2, 1))
}

func TestSpliceLabelWritesLabelAndSeparator(t *testing.T) {
	line := newFilledLine(20, '.')
	spliceLabel(line, 10, "-1.00s")
	assert.Equal(t, "...-1.00s|.........", string(line))
}

func TestSpliceLabelNoopsWhenOutOfRoom(t *testing.T) {
	line := newFilledLine(5, '.')
	spliceLabel(line, 2, "toolongforthis")
	assert.Equal(t, ".....", string(line))
}

func TestSpliceLabelNoopsWhenPosOutOfBounds(t *testing.T) {
	line := newFilledLine(5, '.')
	spliceLabel(line, -1, "x")
	spliceLabel(line, 10, "x")
	assert.Equal(t, ".....", string(line))
}
