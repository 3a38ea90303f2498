package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakui/oak/input"
)

var teaKeyNames = map[tea.KeyType]input.Code{
	tea.KeyEnter:     input.KeyEnter,
	tea.KeyTab:       input.KeyTab,
	tea.KeyEsc:       input.KeyEscape,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeySpace:     input.KeySpace,
	tea.KeyUp:        input.KeyArrowUp,
	tea.KeyDown:      input.KeyArrowDown,
	tea.KeyLeft:      input.KeyLeft,
	tea.KeyRight:     input.KeyRight,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
	tea.KeyInsert:    input.KeyInsert,
	tea.KeyF1:        input.KeyF1,
	tea.KeyF2:        input.KeyF2,
	tea.KeyF3:        input.KeyF3,
	tea.KeyF4:        input.KeyF4,
	tea.KeyF5:        input.KeyF5,
	tea.KeyF6:        input.KeyF6,
	tea.KeyF7:        input.KeyF7,
	tea.KeyF8:        input.KeyF8,
	tea.KeyF9:        input.KeyF9,
	tea.KeyF10:       input.KeyF10,
	tea.KeyF11:       input.KeyF11,
	tea.KeyF12:       input.KeyF12,
}

// TranslateKey converts a bubbletea key message into the unified
// keyboard event model. Terminals only report presses, so the phase is
// always down. ok is false for messages with no mapping.
func TranslateKey(msg tea.KeyMsg) (input.KeyboardEvent, bool) {
	var mods input.Modifiers
	if msg.Alt {
		mods |= input.ModAlt
	}

	if code, ok := teaKeyNames[msg.Type]; ok {
		return input.KeyDown(input.Named(code), mods), true
	}

	switch {
	case msg.Type == tea.KeyShiftTab:
		return input.KeyDown(input.Named(input.KeyTab), mods|input.ModShift), true
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return input.KeyboardEvent{}, false
		}
		return input.KeyDown(input.Char(msg.Runes[0]), mods), true
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		// Control chords arrive as dedicated key types.
		r := rune('a' + (msg.Type - tea.KeyCtrlA))
		return input.KeyDown(input.Char(r), mods|input.ModCtrl), true
	}
	return input.KeyboardEvent{}, false
}

// TranslateMouse converts a bubbletea mouse message into the unified
// mouse event model, scaling cell coordinates to logical pixels. Wheel
// buttons become wheel events with unit deltas. ok is false for
// messages with no mapping.
func TranslateMouse(msg tea.MouseMsg) (input.MouseEvent, bool) {
	x := float32(msg.X * CellWidth)
	y := float32(msg.Y * CellHeight)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return input.MouseWheeled(0, -1, x, y), true
	case tea.MouseButtonWheelDown:
		return input.MouseWheeled(0, 1, x, y), true
	case tea.MouseButtonWheelLeft:
		return input.MouseWheeled(-1, 0, x, y), true
	case tea.MouseButtonWheelRight:
		return input.MouseWheeled(1, 0, x, y), true
	}

	btn, ok := translateButton(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return input.MouseEvent{}, false
		}
		return input.MouseDown(btn, x, y), true
	case tea.MouseActionRelease:
		if !ok {
			return input.MouseEvent{}, false
		}
		return input.MouseUp(btn, x, y), true
	case tea.MouseActionMotion:
		return input.MouseMoved(x, y), true
	}
	return input.MouseEvent{}, false
}

func translateButton(b tea.MouseButton) (input.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft, true
	case tea.MouseButtonRight:
		return input.ButtonRight, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	}
	return 0, false
}
