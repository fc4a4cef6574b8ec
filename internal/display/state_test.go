package display

import (
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
)

func TestToggleModeTwiceRestoresPreviousVisibleSet(t *testing.T) {
	s := New()
	before := s.CPU
	s.Apply(Intent{Kind: KindToggle, Hotkey: 'c'}, 0)
	assert.NotEqual(t, before, s.CPU)
	s.Apply(Intent{Kind: KindToggle, Hotkey: 'C'}, 0) // uppercase reverses
	assert.Equal(t, before, s.CPU)
}

func TestUppercaseHotkeyCyclesBackward(t *testing.T) {
	s := New()
	assert.Equal(t, metric.CPUAll, s.CPU)
	s.Apply(Intent{Kind: KindToggle, Hotkey: 'C'}, 0)
	assert.Equal(t, metric.CPUByCore, s.CPU) // wraps backward from all
}

func TestMemoryHasNoHotkey(t *testing.T) {
	assert.False(t, IsHotkey('m'))
	assert.False(t, IsHotkey('M'))
}

// TestScrollOffsetReachesZeroThenNoops checks the round-trip: cols_off
// reaches 0 after arrow_right is pressed at least as many times as its
// current value, and further presses at 0 are a no-op.
func TestScrollOffsetReachesZeroThenNoops(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Apply(Intent{Kind: KindScroll, DX: 1}, 10)
	}
	assert.Equal(t, 5, s.ColsOff)
	assert.True(t, s.Paused)

	for i := 0; i < 10; i++ {
		s.Apply(Intent{Kind: KindScroll, DX: -1}, 10)
	}
	assert.Equal(t, 0, s.ColsOff)
	assert.False(t, s.Paused)

	s.Dirty = false
	s.Apply(Intent{Kind: KindScroll, DX: -1}, 10)
	assert.Equal(t, 0, s.ColsOff)
	assert.False(t, s.Dirty)
}

func TestColsOffClampedToMax(t *testing.T) {
	s := New()
	for i := 0; i < 20; i++ {
		s.Apply(Intent{Kind: KindScroll, DX: 1}, 3)
	}
	assert.Equal(t, 3, s.ColsOff)
}

func TestResetScrollReturnsToZero(t *testing.T) {
	s := New()
	s.Apply(Intent{Kind: KindScroll, DX: 1}, 10)
	s.Apply(Intent{Kind: KindScroll, DX: 1}, 10)
	s.Apply(Intent{Kind: KindScroll, DX: 1}, 10)
	assert.Equal(t, 3, s.ColsOff)
	s.Apply(Intent{Kind: KindResetScroll}, 10)
	assert.Equal(t, 0, s.ColsOff)
	assert.False(t, s.Paused)
}

func TestRowsOffNeverNegative(t *testing.T) {
	s := New()
	s.Apply(Intent{Kind: KindScroll, DY: -1}, 10)
	assert.Equal(t, 0, s.RowsOff)
}
