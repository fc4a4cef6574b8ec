package display

import (
	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/present"
)

// State is the mutable (viewport + modes) aggregate. It is written only by
// the input handler and read only by the renderer, both on the main thread.
// State carries no lock of its own: it must only be used from that one
// goroutine.
type State struct {
	RowsOff   int
	ColsOff   int
	Selection int // terminal column pinned by a mouse click; -1 when unset

	View    metric.ViewMode
	CPU     metric.CPUMode
	GPU     metric.GPUMode
	Swap    metric.ToggleMode
	Network metric.ToggleMode
	Disk    metric.ToggleMode
	Power   metric.PowerMode
	Memory  metric.MemoryMode

	// Paused is true iff ColsOff > 0.
	Paused bool
	// Dirty marks that a render is owed before the next input wakeup times
	// out: Apply sets it whenever an intent changed the settings.
	Dirty bool
}

// New returns a State with the modes' zero values plus View defaulted to
// "one", matching cubestat.py's Horizon.__init__ initial modes dict.
func New() *State {
	return &State{View: metric.ViewOne, Selection: -1}
}

// Modes projects the mode fields callers pass to present.Presenter methods.
func (s *State) Modes() present.Modes {
	return present.Modes{
		CPU: s.CPU, GPU: s.GPU, Swap: s.Swap, Network: s.Network,
		Disk: s.Disk, Power: s.Power, Memory: s.Memory,
	}
}

// Apply mutates state in response to intent. maxColsOff bounds ColsOff to
// the number of ticks observed so far minus one, since arrow keys adjust
// (rows_off, cols_off) with clamping; only the caller knows the store's
// current depth, so it is supplied per call rather than cached.
func (s *State) Apply(intent Intent, maxColsOff int) {
	switch intent.Kind {
	case KindScroll:
		s.applyScroll(intent, maxColsOff)
	case KindResetScroll:
		if s.ColsOff > 0 {
			s.ColsOff = 0
			s.Paused = false
			s.Dirty = true
		}
	case KindToggle:
		if s.toggle(intent.Hotkey) {
			s.Dirty = true
		}
	case KindSelect:
		s.Selection = intent.Col
		s.Dirty = true
	}
}

func (s *State) applyScroll(intent Intent, maxColsOff int) {
	if intent.DY < 0 && s.RowsOff > 0 {
		s.RowsOff += intent.DY
		s.Dirty = true
	} else if intent.DY > 0 {
		s.RowsOff += intent.DY
		s.Dirty = true
	}
	switch {
	case intent.DX > 0 && s.ColsOff < maxColsOff:
		s.ColsOff++
		s.Dirty = true
	case intent.DX < 0 && s.ColsOff > 0:
		s.ColsOff--
		s.Dirty = true
	}
	s.Paused = s.ColsOff > 0
}
