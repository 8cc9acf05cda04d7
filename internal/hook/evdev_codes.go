package hook

import (
	"encoding/binary"

	"github.com/dshills/keyscreen/internal/input/key"
)

// Linux input event types and values.
const (
	evSyn = 0x00
	evKey = 0x01

	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// Linux key codes (linux/input-event-codes.h).
const (
	codeEsc        = 1
	code1          = 2
	code0          = 11
	codeMinus      = 12
	codeEqual      = 13
	codeBackspace  = 14
	codeTab        = 15
	codeQ          = 16
	codeW          = 17
	codeE          = 18
	codeR          = 19
	codeT          = 20
	codeY          = 21
	codeU          = 22
	codeI          = 23
	codeO          = 24
	codeP          = 25
	codeLeftBrace  = 26
	codeRightBrace = 27
	codeEnter      = 28
	codeLeftCtrl   = 29
	codeA          = 30
	codeS          = 31
	codeD          = 32
	codeF          = 33
	codeG          = 34
	codeH          = 35
	codeJ          = 36
	codeK          = 37
	codeL          = 38
	codeSemicolon  = 39
	codeApostrophe = 40
	codeGrave      = 41
	codeLeftShift  = 42
	codeBackslash  = 43
	codeZ          = 44
	codeX          = 45
	codeC          = 46
	codeV          = 47
	codeB          = 48
	codeN          = 49
	codeM          = 50
	codeComma      = 51
	codeDot        = 52
	codeSlash      = 53
	codeRightShift = 54
	codeLeftAlt    = 56
	codeSpace      = 57
	codeCapsLock   = 58
	codeF1         = 59
	codeF10        = 68
	code102nd      = 86
	codeF11        = 87
	codeF12        = 88
	codeKPEnter    = 96
	codeRightCtrl  = 97
	codeSysRq      = 99
	codeRightAlt   = 100
	codeHome       = 102
	codeUp         = 103
	codePageUp     = 104
	codeLeft       = 105
	codeRight      = 106
	codeEnd        = 107
	codeDown       = 108
	codePageDown   = 109
	codeInsert     = 110
	codeDelete     = 111
	codeLeftMeta   = 125
	codeRightMeta  = 126

	codeMax = 0x2ff
	evMax   = 0x1f
)

// evdevKeys maps Linux key codes to physical keys by US position.
var evdevKeys = func() map[uint16]key.Key {
	m := map[uint16]key.Key{
		codeEsc:        key.Escape,
		codeMinus:      key.Minus,
		codeEqual:      key.Equal,
		codeBackspace:  key.Backspace,
		codeTab:        key.Tab,
		codeLeftBrace:  key.LeftBracket,
		codeRightBrace: key.RightBracket,
		codeEnter:      key.Return,
		codeKPEnter:    key.Return,
		codeLeftCtrl:   key.ControlLeft,
		codeRightCtrl:  key.ControlRight,
		codeSemicolon:  key.SemiColon,
		codeApostrophe: key.Quote,
		codeGrave:      key.BackQuote,
		codeLeftShift:  key.ShiftLeft,
		codeRightShift: key.ShiftRight,
		codeBackslash:  key.BackSlash,
		codeComma:      key.Comma,
		codeDot:        key.Dot,
		codeSlash:      key.Slash,
		codeLeftAlt:    key.AltLeft,
		codeRightAlt:   key.AltGr,
		codeSpace:      key.Space,
		codeCapsLock:   key.CapsLock,
		code102nd:      key.IntlBackslash,
		codeF11:        key.F11,
		codeF12:        key.F12,
		codeSysRq:      key.PrintScreen,
		codeHome:       key.Home,
		codeUp:         key.UpArrow,
		codePageUp:     key.PageUp,
		codeLeft:       key.LeftArrow,
		codeRight:      key.RightArrow,
		codeEnd:        key.End,
		codeDown:       key.DownArrow,
		codePageDown:   key.PageDown,
		codeInsert:     key.Insert,
		codeDelete:     key.Delete,
		codeLeftMeta:   key.MetaLeft,
		codeRightMeta:  key.MetaRight,
	}

	letters := map[uint16]rune{
		codeQ: 'q', codeW: 'w', codeE: 'e', codeR: 'r', codeT: 't',
		codeY: 'y', codeU: 'u', codeI: 'i', codeO: 'o', codeP: 'p',
		codeA: 'a', codeS: 's', codeD: 'd', codeF: 'f', codeG: 'g',
		codeH: 'h', codeJ: 'j', codeK: 'k', codeL: 'l',
		codeZ: 'z', codeX: 'x', codeC: 'c', codeV: 'v', codeB: 'b',
		codeN: 'n', codeM: 'm',
	}
	for code, r := range letters {
		k, _ := key.Letter(r)
		m[code] = k
	}

	// Digit row runs 1..9 then 0.
	for i := 0; i < 9; i++ {
		m[uint16(code1+i)] = key.Num1 + key.Key(i)
	}
	m[code0] = key.Num0

	for i := 0; i < 10; i++ {
		m[uint16(codeF1+i)] = key.F1 + key.Key(i)
	}
	return m
}()

// KeyForCode returns the physical key for a Linux key code.
func KeyForCode(code uint16) (key.Key, bool) {
	k, ok := evdevKeys[code]
	return k, ok
}

// inputEvent is a decoded struct input_event.
type inputEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// decodeInputEvent decodes one input_event record. timevalSize is the size
// of struct timeval on the running platform (16 on 64-bit Linux).
func decodeInputEvent(buf []byte, timevalSize int) (inputEvent, bool) {
	if len(buf) < timevalSize+8 {
		return inputEvent{}, false
	}
	b := buf[timevalSize:]
	return inputEvent{
		Type:  binary.NativeEndian.Uint16(b[0:2]),
		Code:  binary.NativeEndian.Uint16(b[2:4]),
		Value: int32(binary.NativeEndian.Uint32(b[4:8])),
	}, true
}

// transitionFor converts a key event into a transition. Autorepeat counts
// as a press. Non-key events and unknown codes yield false.
func transitionFor(ev inputEvent) (key.Key, key.Direction, bool) {
	if ev.Type != evKey {
		return key.KeyUnknown, 0, false
	}
	k, ok := KeyForCode(ev.Code)
	if !ok {
		return key.KeyUnknown, 0, false
	}
	switch ev.Value {
	case valuePress, valueRepeat:
		return k, key.Pressed, true
	case valueRelease:
		return k, key.Released, true
	default:
		return key.KeyUnknown, 0, false
	}
}

func testBit(bits []byte, bit int) bool {
	idx := bit / 8
	off := bit % 8
	if idx < 0 || idx >= len(bits) {
		return false
	}
	return bits[idx]&(1<<uint(off)) != 0
}

func bitsToBytes(bits int) int {
	return (bits + 7) / 8
}
