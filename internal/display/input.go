package display

import ui "github.com/gizak/termui/v3"

// Translate converts one termui input event into an Intent, or ok=false
// when the event carries no actionable intent for this application.
func Translate(e ui.Event) (Intent, bool) {
	switch e.Type {
	case ui.KeyboardEvent:
		return translateKey(e.ID)
	case ui.MouseEvent:
		if e.ID != "<MouseLeft>" {
			return Intent{}, false
		}
		if m, ok := e.Payload.(ui.Mouse); ok {
			return Intent{Kind: KindSelect, Col: m.X}, true
		}
	}
	return Intent{}, false
}

func translateKey(id string) (Intent, bool) {
	switch id {
	case "q", "Q", "<C-c>":
		return Intent{Kind: KindQuit}, true
	case "<Up>":
		return Intent{Kind: KindScroll, DY: -1}, true
	case "<Down>":
		return Intent{Kind: KindScroll, DY: 1}, true
	case "<Left>":
		return Intent{Kind: KindScroll, DX: 1}, true
	case "<Right>":
		return Intent{Kind: KindScroll, DX: -1}, true
	case "0":
		return Intent{Kind: KindResetScroll}, true
	}
	if len(id) == 1 {
		r := rune(id[0])
		if IsHotkey(r) {
			return Intent{Kind: KindToggle, Hotkey: r}, true
		}
	}
	return Intent{}, false
}
