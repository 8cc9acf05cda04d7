package key

import "strings"

// Modifier identifies one of the four tracked modifiers.
type Modifier uint8

const (
	// Control is the Control key.
	Control Modifier = iota

	// Shift is the Shift key.
	Shift

	// Alt is the Alt key (AltGr on ISO layouts, Option on macOS).
	Alt

	// Meta is the Meta key (Super on Linux, Cmd on macOS, Win on Windows).
	Meta

	// ModifierCount is the number of tracked modifiers.
	ModifierCount
)

var modifierNames = [ModifierCount]string{"Control", "Shift", "Alt", "Meta"}

// modifierIndicators are the glyphs shown in the indicator row.
var modifierIndicators = [ModifierCount]rune{'⌃', '⇧', '⌥', '🐧'}

// Modifiers returns the tracked modifiers in indicator order.
func Modifiers() []Modifier {
	return []Modifier{Control, Shift, Alt, Meta}
}

// IsValid returns true if m is one of the four tracked modifiers.
func (m Modifier) IsValid() bool {
	return m < ModifierCount
}

// String returns the modifier name.
func (m Modifier) String() string {
	if !m.IsValid() {
		return "Unknown"
	}
	return modifierNames[m]
}

// Indicator returns the glyph used for this modifier in the indicator row.
func (m Modifier) Indicator() rune {
	if !m.IsValid() {
		return '?'
	}
	return modifierIndicators[m]
}

// ModifierSet is a set of held modifiers, one bit per Modifier.
type ModifierSet uint8

// ModNone is the empty modifier set.
const ModNone ModifierSet = 0

// SetOf builds a set from the given modifiers.
func SetOf(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s = s.With(m)
	}
	return s
}

func (m Modifier) bit() ModifierSet {
	return 1 << m
}

// Has returns true if s contains the specified modifier.
func (s ModifierSet) Has(mod Modifier) bool {
	if !mod.IsValid() {
		return false
	}
	return s&mod.bit() != 0
}

// HasAll returns true if s contains every specified modifier.
func (s ModifierSet) HasAll(mods ...Modifier) bool {
	for _, m := range mods {
		if !s.Has(m) {
			return false
		}
	}
	return true
}

// With returns a new set with the specified modifier added.
func (s ModifierSet) With(mod Modifier) ModifierSet {
	if !mod.IsValid() {
		return s
	}
	return s | mod.bit()
}

// Without returns a new set with the specified modifier removed.
func (s ModifierSet) Without(mod Modifier) ModifierSet {
	if !mod.IsValid() {
		return s
	}
	return s &^ mod.bit()
}

// IsEmpty returns true if no modifiers are set.
func (s ModifierSet) IsEmpty() bool {
	return s == ModNone
}

// String returns a human-readable representation like "Control+Alt".
func (s ModifierSet) String() string {
	if s.IsEmpty() {
		return ""
	}

	var parts []string
	for _, m := range Modifiers() {
		if s.Has(m) {
			parts = append(parts, m.String())
		}
	}
	return strings.Join(parts, "+")
}

// Indicators returns the indicator row, with '·' for each modifier not held.
func (s ModifierSet) Indicators() string {
	var b strings.Builder
	for _, m := range Modifiers() {
		if s.Has(m) {
			b.WriteRune(m.Indicator())
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}
