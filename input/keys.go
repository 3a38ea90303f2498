package input

import "fmt"

// Modifiers is a bitset of keyboard modifier state. The zero value
// means no modifiers held.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// HasShift reports whether Shift is held.
func (m Modifiers) HasShift() bool { return m.Has(ModShift) }

// HasCtrl reports whether Ctrl is held.
func (m Modifiers) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt reports whether Alt is held.
func (m Modifiers) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta reports whether Meta (Cmd/Win) is held.
func (m Modifiers) HasMeta() bool { return m.Has(ModMeta) }

// Code identifies a named key. Printable character keys use KeyChar
// together with Key.Rune.
type Code int

const (
	KeyChar Code = iota
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var codeNames = map[Code]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeySpace:     "Space",
	KeyArrowUp:   "Up",
	KeyArrowDown: "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyInsert:    "Insert",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// Key is a named key or a printable character key.
type Key struct {
	Code Code
	Rune rune // set when Code == KeyChar
}

// Char returns the key for a printable character.
func Char(r rune) Key { return Key{Code: KeyChar, Rune: r} }

// Named returns the key for a named code.
func Named(c Code) Key { return Key{Code: c} }

func (k Key) String() string {
	if k.Code == KeyChar {
		return string(k.Rune)
	}
	if name, ok := codeNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(k.Code))
}
