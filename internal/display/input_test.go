package display

import (
	"testing"

	ui "github.com/gizak/termui/v3"
	"github.com/stretchr/testify/assert"
)

func TestTranslateQuitKeys(t *testing.T) {
	for _, id := range []string{"q", "Q", "<C-c>"} {
		intent, ok := Translate(ui.Event{Type: ui.KeyboardEvent, ID: id})
		assert.True(t, ok)
		assert.Equal(t, KindQuit, intent.Kind)
	}
}

func TestTranslateArrowKeys(t *testing.T) {
	intent, ok := Translate(ui.Event{Type: ui.KeyboardEvent, ID: "<Left>"})
	assert.True(t, ok)
	assert.Equal(t, 1, intent.DX)

	intent, ok = Translate(ui.Event{Type: ui.KeyboardEvent, ID: "<Right>"})
	assert.True(t, ok)
	assert.Equal(t, -1, intent.DX)
}

func TestTranslateResetKey(t *testing.T) {
	intent, ok := Translate(ui.Event{Type: ui.KeyboardEvent, ID: "0"})
	assert.True(t, ok)
	assert.Equal(t, KindResetScroll, intent.Kind)
}

func TestTranslateHotkey(t *testing.T) {
	intent, ok := Translate(ui.Event{Type: ui.KeyboardEvent, ID: "c"})
	assert.True(t, ok)
	assert.Equal(t, KindToggle, intent.Kind)
	assert.Equal(t, 'c', intent.Hotkey)
}

func TestTranslateUnknownKeyIsNotOK(t *testing.T) {
	_, ok := Translate(ui.Event{Type: ui.KeyboardEvent, ID: "z"})
	assert.False(t, ok)
}

func TestTranslateMouseLeftClick(t *testing.T) {
	intent, ok := Translate(ui.Event{
		Type:    ui.MouseEvent,
		ID:      "<MouseLeft>",
		Payload: ui.Mouse{X: 42, Y: 3},
	})
	assert.True(t, ok)
	assert.Equal(t, KindSelect, intent.Kind)
	assert.Equal(t, 42, intent.Col)
}
