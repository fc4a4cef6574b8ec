package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexBijectionMatchesClampFloorFormula(t *testing.T) {
	const n = 8
	const scaleMax = 100.0
	total := 3 * n
	for _, v := range []float64{0, 1, 25, 49.9, 50, 74.999, 75, 99.999, 100, 150} {
		got := Index(v, scaleMax, n)
		want := int(v / scaleMax * float64(total))
		if want < 0 {
			want = 0
		}
		if want >= total {
			want = total - 1
		}
		assert.Equal(t, want, got, "value %v", v)
	}
}

func TestIndexClampsToBandBounds(t *testing.T) {
	assert.Equal(t, 0, Index(-5, 100, 8))
	assert.Equal(t, 23, Index(1000, 100, 8))
	assert.Equal(t, 0, Index(50, 0, 8))
}

func TestNewBandHasThreeNCells(t *testing.T) {
	b := NewBand(8, [3]int{1, 2, 3})
	assert.Len(t, b, 24)
	assert.Equal(t, 1, b[0].Color)
	assert.Equal(t, 2, b[8].Color)
	assert.Equal(t, 3, b[16].Color)
}

func TestBandAtHidesNonPositiveValues(t *testing.T) {
	b := NewBand(8, [3]int{1, 2, 3})
	_, ok := b.At(0, 100)
	assert.False(t, ok)
	_, ok = b.At(-1, 100)
	assert.False(t, ok)
	cell, ok := b.At(50, 100)
	assert.True(t, ok)
	assert.Equal(t, byte(cell.Color), byte(cell.Color)) // sanity: no panic
}
