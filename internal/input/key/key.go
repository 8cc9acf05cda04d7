package key

import (
	"fmt"
)

// Key identifies a physical keyboard key.
// The zero value is KeyUnknown.
type Key uint16

const (
	// KeyUnknown represents a key the hook could not identify.
	KeyUnknown Key = iota

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Punctuation keys, named by their US position
	BackQuote
	Minus
	Equal
	LeftBracket
	RightBracket
	BackSlash
	SemiColon
	Quote
	Comma
	Dot
	Slash
	IntlBackslash

	// Whitespace and editing keys
	Space
	Tab
	Return
	Backspace
	Escape
	CapsLock

	// Arrow keys
	UpArrow
	DownArrow
	LeftArrow
	RightArrow

	// Navigation block
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	PrintScreen

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Modifier keys
	ControlLeft
	ControlRight
	ShiftLeft
	ShiftRight
	AltLeft
	AltGr
	MetaLeft
	MetaRight

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "Unknown",

	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",
	Num0: "Num0", Num1: "Num1", Num2: "Num2", Num3: "Num3", Num4: "Num4",
	Num5: "Num5", Num6: "Num6", Num7: "Num7", Num8: "Num8", Num9: "Num9",
	BackQuote:     "BackQuote",
	Minus:         "Minus",
	Equal:         "Equal",
	LeftBracket:   "LeftBracket",
	RightBracket:  "RightBracket",
	BackSlash:     "BackSlash",
	SemiColon:     "SemiColon",
	Quote:         "Quote",
	Comma:         "Comma",
	Dot:           "Dot",
	Slash:         "Slash",
	IntlBackslash: "IntlBackslash",
	Space:         "Space",
	Tab:           "Tab",
	Return:        "Return",
	Backspace:     "Backspace",
	Escape:        "Escape",
	CapsLock:      "CapsLock",
	UpArrow:       "UpArrow",
	DownArrow:     "DownArrow",
	LeftArrow:     "LeftArrow",
	RightArrow:    "RightArrow",
	Insert:        "Insert",
	Delete:        "Delete",
	Home:          "Home",
	End:           "End",
	PageUp:        "PageUp",
	PageDown:      "PageDown",
	PrintScreen:   "PrintScreen",
	F1:            "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	ControlLeft:  "ControlLeft",
	ControlRight: "ControlRight",
	ShiftLeft:    "ShiftLeft",
	ShiftRight:   "ShiftRight",
	AltLeft:      "Alt",
	AltGr:        "AltGr",
	MetaLeft:     "MetaLeft",
	MetaRight:    "MetaRight",
}

// String returns the stable name of the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsValid returns true if k is a known, non-unknown key.
func (k Key) IsValid() bool {
	return k > KeyUnknown && k < keyCount
}

// IsLetter returns true for KeyA through KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for Num0 through Num9.
func (k Key) IsDigit() bool {
	return k >= Num0 && k <= Num9
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= F1 && k <= F12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= UpArrow && k <= RightArrow
}

// IsModifierKey returns true for any physical modifier key, designated or not.
func (k Key) IsModifierKey() bool {
	return k >= ControlLeft && k <= MetaRight
}

// Letter returns the letter key for an ASCII letter of either case.
func Letter(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyUnknown, false
}

// Digit returns the digit-row key for an ASCII digit.
func Digit(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return Num0 + Key(r-'0'), true
	}
	return KeyUnknown, false
}

// FunctionKey returns the key for F1-F12 given n in 1..12.
func FunctionKey(n int) (Key, bool) {
	if n < 1 || n > 12 {
		return KeyUnknown, false
	}
	return F1 + Key(n-1), true
}

// All returns every valid key in declaration order.
func All() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
