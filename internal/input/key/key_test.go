package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUnknown, "Unknown"},
		{KeyA, "KeyA"},
		{KeyZ, "KeyZ"},
		{Num0, "Num0"},
		{BackQuote, "BackQuote"},
		{SemiColon, "SemiColon"},
		{Escape, "Escape"},
		{Return, "Return"},
		{UpArrow, "UpArrow"},
		{F1, "F1"},
		{F12, "F12"},
		{ShiftLeft, "ShiftLeft"},
		{AltGr, "AltGr"},
		{MetaLeft, "MetaLeft"},
		{Key(9999), "Key(9999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyNamesComplete(t *testing.T) {
	seen := make(map[string]Key)
	for _, k := range All() {
		name := k.String()
		if name == "" {
			t.Fatalf("key %d has no name", uint16(k))
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by both %d and %d", name, uint16(prev), uint16(k))
		}
		seen[name] = k
	}
}

func TestKeyIsValid(t *testing.T) {
	if KeyUnknown.IsValid() {
		t.Error("KeyUnknown should not be valid")
	}
	if !KeyA.IsValid() || !MetaRight.IsValid() {
		t.Error("declared keys should be valid")
	}
	if keyCount.IsValid() {
		t.Error("keyCount should not be valid")
	}
}

func TestKeyClasses(t *testing.T) {
	tests := []struct {
		key      Key
		letter   bool
		digit    bool
		function bool
		arrow    bool
		modifier bool
	}{
		{KeyA, true, false, false, false, false},
		{KeyZ, true, false, false, false, false},
		{Num5, false, true, false, false, false},
		{F7, false, false, true, false, false},
		{LeftArrow, false, false, false, true, false},
		{ControlRight, false, false, false, false, true},
		{AltGr, false, false, false, false, true},
		{Space, false, false, false, false, false},
		{KeyUnknown, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsLetter(); got != tt.letter {
				t.Errorf("IsLetter() = %v, want %v", got, tt.letter)
			}
			if got := tt.key.IsDigit(); got != tt.digit {
				t.Errorf("IsDigit() = %v, want %v", got, tt.digit)
			}
			if got := tt.key.IsFunctionKey(); got != tt.function {
				t.Errorf("IsFunctionKey() = %v, want %v", got, tt.function)
			}
			if got := tt.key.IsArrowKey(); got != tt.arrow {
				t.Errorf("IsArrowKey() = %v, want %v", got, tt.arrow)
			}
			if got := tt.key.IsModifierKey(); got != tt.modifier {
				t.Errorf("IsModifierKey() = %v, want %v", got, tt.modifier)
			}
		})
	}
}

func TestLetterDigitFunctionKey(t *testing.T) {
	if k, ok := Letter('q'); !ok || k != KeyQ {
		t.Errorf("Letter('q') = %v, %v", k, ok)
	}
	if k, ok := Letter('Y'); !ok || k != KeyY {
		t.Errorf("Letter('Y') = %v, %v", k, ok)
	}
	if _, ok := Letter('ä'); ok {
		t.Error("Letter('ä') should fail")
	}
	if k, ok := Digit('7'); !ok || k != Num7 {
		t.Errorf("Digit('7') = %v, %v", k, ok)
	}
	if _, ok := Digit('x'); ok {
		t.Error("Digit('x') should fail")
	}
	if k, ok := FunctionKey(12); !ok || k != F12 {
		t.Errorf("FunctionKey(12) = %v, %v", k, ok)
	}
	if _, ok := FunctionKey(13); ok {
		t.Error("FunctionKey(13) should fail")
	}
	if _, ok := FunctionKey(0); ok {
		t.Error("FunctionKey(0) should fail")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != int(keyCount)-1 {
		t.Fatalf("len(All()) = %d, want %d", len(all), keyCount-1)
	}
	if all[0] != KeyA {
		t.Errorf("All()[0] = %v, want KeyA", all[0])
	}
	if all[len(all)-1] != MetaRight {
		t.Errorf("last key = %v, want MetaRight", all[len(all)-1])
	}
}
