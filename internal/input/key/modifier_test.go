package key

import (
	"testing"
)

func TestModifierSetHas(t *testing.T) {
	tests := []struct {
		name string
		set  ModifierSet
		mod  Modifier
		want bool
	}{
		{"none has control", ModNone, Control, false},
		{"control has control", SetOf(Control), Control, true},
		{"control has shift", SetOf(Control), Shift, false},
		{"shift+alt has alt", SetOf(Shift, Alt), Alt, true},
		{"all has meta", SetOf(Control, Shift, Alt, Meta), Meta, true},
		{"invalid modifier", SetOf(Control), ModifierCount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Has(tt.mod); got != tt.want {
				t.Errorf("ModifierSet.Has() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierSetWith(t *testing.T) {
	s := ModNone.With(Control).With(Shift)
	if !s.HasAll(Control, Shift) {
		t.Error("With should add modifiers")
	}
	if s.Has(Alt) {
		t.Error("With should not add unrelated modifiers")
	}
	if s.With(ModifierCount) != s {
		t.Error("With(invalid) should be a no-op")
	}
}

func TestModifierSetWithout(t *testing.T) {
	s := SetOf(Control, Alt).Without(Control)
	if s.Has(Control) {
		t.Error("Without should remove the modifier")
	}
	if !s.Has(Alt) {
		t.Error("Without should keep other modifiers")
	}
	if !s.Without(Alt).IsEmpty() {
		t.Error("removing the last modifier should leave an empty set")
	}
}

func TestModifierSetString(t *testing.T) {
	tests := []struct {
		set  ModifierSet
		want string
	}{
		{ModNone, ""},
		{SetOf(Control), "Control"},
		{SetOf(Alt, Control), "Control+Alt"},
		{SetOf(Meta, Shift), "Shift+Meta"},
		{SetOf(Control, Shift, Alt, Meta), "Control+Shift+Alt+Meta"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Errorf("ModifierSet.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModifierSetIndicators(t *testing.T) {
	tests := []struct {
		set  ModifierSet
		want string
	}{
		{ModNone, "····"},
		{SetOf(Control), "⌃···"},
		{SetOf(Shift, Alt), "·⇧⌥·"},
		{SetOf(Meta), "···🐧"},
		{SetOf(Control, Shift, Alt, Meta), "⌃⇧⌥🐧"},
	}

	for _, tt := range tests {
		t.Run(tt.set.String(), func(t *testing.T) {
			if got := tt.set.Indicators(); got != tt.want {
				t.Errorf("ModifierSet.Indicators() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModifierString(t *testing.T) {
	for i, want := range []string{"Control", "Shift", "Alt", "Meta"} {
		if got := Modifier(i).String(); got != want {
			t.Errorf("Modifier(%d).String() = %q, want %q", i, got, want)
		}
	}
	if got := ModifierCount.String(); got != "Unknown" {
		t.Errorf("invalid modifier String() = %q, want Unknown", got)
	}
	if got := ModifierCount.Indicator(); got != '?' {
		t.Errorf("invalid modifier Indicator() = %q, want '?'", got)
	}
}

func TestModifiersOrder(t *testing.T) {
	mods := Modifiers()
	want := []Modifier{Control, Shift, Alt, Meta}
	if len(mods) != len(want) {
		t.Fatalf("len(Modifiers()) = %d, want %d", len(mods), len(want))
	}
	for i := range want {
		if mods[i] != want[i] {
			t.Errorf("Modifiers()[%d] = %v, want %v", i, mods[i], want[i])
		}
	}
}
