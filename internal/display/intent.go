// Package display owns the (viewport + modes) aggregate the renderer reads
// and the input handler writes, plus the small Intent vocabulary that
// decouples the two: a small Intent enum emitted by the input layer,
// consumed by the scheduler on the goroutine that owns the State.
package display

// Kind enumerates the actions the input layer can request.
type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindToggle
	KindScroll
	KindResetScroll
	KindSelect
)

// Intent is one input-layer event, translated from a raw terminal event
// into an action the scheduler can apply to State without either side
// knowing about the other's representation.
type Intent struct {
	Kind Kind

	// Hotkey is set for KindToggle: the raw key pressed. Lowercase cycles
	// forward (Next), uppercase cycles backward (Prev).
	Hotkey rune

	// DX, DY are set for KindScroll: DX>0 means "look further into the
	// past" (arrow_left), DX<0 "toward the present" (arrow_right); DY<0 is
	// arrow_up, DY>0 arrow_down.
	DX, DY int

	// Col is set for KindSelect: the terminal column a mouse click landed
	// on, used to pin the ruler/value annotations to that history column.
	Col int
}
