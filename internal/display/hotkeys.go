package display

import "github.com/kerlenton/system-eye/internal/metric"

// modeSlot lets toggle() cycle an arbitrary mode field generically via the
// metric.Mode interface, without a type switch per hotkey.
type modeSlot struct {
	get func(*State) metric.Mode
	set func(*State, metric.Mode)
}

// hotkeyTable maps each lowercase hotkey to the mode it cycles, matching
// cubestat.py's Horizon.loop mode_keymap exactly: v/c/g/d/n/s/p. Memory has
// no runtime hotkey in the source either — it is CLI-flag only.
var hotkeyTable = map[rune]modeSlot{
	'v': {
		get: func(s *State) metric.Mode { return s.View },
		set: func(s *State, m metric.Mode) { s.View = m.(metric.ViewMode) },
	},
	'c': {
		get: func(s *State) metric.Mode { return s.CPU },
		set: func(s *State, m metric.Mode) { s.CPU = m.(metric.CPUMode) },
	},
	'g': {
		get: func(s *State) metric.Mode { return s.GPU },
		set: func(s *State, m metric.Mode) { s.GPU = m.(metric.GPUMode) },
	},
	'd': {
		get: func(s *State) metric.Mode { return s.Disk },
		set: func(s *State, m metric.Mode) { s.Disk = m.(metric.ToggleMode) },
	},
	'n': {
		get: func(s *State) metric.Mode { return s.Network },
		set: func(s *State, m metric.Mode) { s.Network = m.(metric.ToggleMode) },
	},
	's': {
		get: func(s *State) metric.Mode { return s.Swap },
		set: func(s *State, m metric.Mode) { s.Swap = m.(metric.ToggleMode) },
	},
	'p': {
		get: func(s *State) metric.Mode { return s.Power },
		set: func(s *State, m metric.Mode) { s.Power = m.(metric.PowerMode) },
	},
}

// loweredHotkey folds an uppercase letter to its lowercase table key.
func loweredHotkey(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// toggle cycles the mode bound to hotkey, forward for a lowercase key and
// backward for its uppercase form. Reports whether hotkey named a
// registered mode.
func (s *State) toggle(hotkey rune) bool {
	prev := hotkey >= 'A' && hotkey <= 'Z'
	slot, ok := hotkeyTable[loweredHotkey(hotkey)]
	if !ok {
		return false
	}
	cur := slot.get(s)
	if prev {
		slot.set(s, cur.Prev())
	} else {
		slot.set(s, cur.Next())
	}
	return true
}

// IsHotkey reports whether r (in either case) is a registered mode toggle.
func IsHotkey(r rune) bool {
	_, ok := hotkeyTable[loweredHotkey(r)]
	return ok
}
