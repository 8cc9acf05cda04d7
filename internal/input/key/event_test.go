package key

import (
	"testing"
	"time"
)

func TestNewTransition(t *testing.T) {
	before := time.Now()
	tr := NewTransition(KeyA, Pressed)

	if tr.Key != KeyA {
		t.Errorf("Key = %v, want KeyA", tr.Key)
	}
	if tr.Direction != Pressed {
		t.Errorf("Direction = %v, want press", tr.Direction)
	}
	if tr.Time.Before(before) {
		t.Error("Time should be set to now")
	}
}

func TestPressRelease(t *testing.T) {
	p := Press(ShiftLeft)
	if !p.IsPress() || p.IsRelease() {
		t.Error("Press should produce a press transition")
	}
	r := Release(ShiftLeft)
	if !r.IsRelease() || r.IsPress() {
		t.Error("Release should produce a release transition")
	}
}

func TestTransitionString(t *testing.T) {
	tests := []struct {
		tr   Transition
		want string
	}{
		{Press(KeyA), "press KeyA"},
		{Release(ControlLeft), "release ControlLeft"},
		{Transition{Key: Space, Direction: Direction(7)}, "Direction(7) Space"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tr.String(); got != tt.want {
				t.Errorf("Transition.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
