package key

import (
	"errors"
	"testing"
)

func TestParseCanonicalNames(t *testing.T) {
	for _, k := range All() {
		t.Run(k.String(), func(t *testing.T) {
			got, err := Parse(k.String())
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", k.String(), err)
			}
			if got != k {
				t.Errorf("Parse(%q) = %v, want %v", k.String(), got, k)
			}
		})
	}
}

func TestParseAliases(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"a", KeyA},
		{"Z", KeyZ},
		{"0", Num0},
		{"keya", KeyA},
		{"  Enter ", Return},
		{"esc", Escape},
		{"ESC", Escape},
		{"up", UpArrow},
		{"pgdn", PageDown},
		{"-", Minus},
		{"[", LeftBracket},
		{"'", Quote},
		{"ctrl", ControlLeft},
		{"rctrl", ControlRight},
		{"shift", ShiftLeft},
		{"altgr", AltGr},
		{"alt", AltLeft},
		{"super", MetaLeft},
		{"f5", F5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmptyName},
		{"   ", ErrEmptyName},
		{"Hyper", ErrUnknownKey},
		{"F13", ErrUnknownKey},
		{"Unknown", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("Tab"); got != Tab {
		t.Errorf("MustParse(Tab) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"ctrl", Control},
		{"Control", Control},
		{"SHIFT", Shift},
		{"alt", Alt},
		{"option", Alt},
		{"meta", Meta},
		{"super", Meta},
		{"cmd", Meta},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModifier(tt.input)
			if err != nil {
				t.Fatalf("ParseModifier(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseModifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseModifier("hyper"); !errors.Is(err, ErrUnknownMod) {
		t.Errorf("ParseModifier(hyper) error = %v, want ErrUnknownMod", err)
	}
	if _, err := ParseModifier(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("ParseModifier(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestParseModifiers(t *testing.T) {
	got, err := ParseModifiers("Ctrl+Shift")
	if err != nil {
		t.Fatalf("ParseModifiers error: %v", err)
	}
	if got != SetOf(Control, Shift) {
		t.Errorf("ParseModifiers = %v, want Control+Shift", got)
	}

	got, err = ParseModifiers("")
	if err != nil || !got.IsEmpty() {
		t.Errorf("ParseModifiers(\"\") = %v, %v", got, err)
	}

	if _, err := ParseModifiers("ctrl+bogus"); err == nil {
		t.Error("expected error for unknown modifier")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"press", Pressed},
		{"Down", Pressed},
		{"release", Released},
		{"up", Released},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseDirection("hold"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ParseDirection(hold) error = %v, want ErrUnknownAction", err)
	}
}
