package keymap

import (
	"fmt"

	"github.com/dshills/keyscreen/internal/input/key"
)

// Kind discriminates the two token variants.
type Kind uint8

const (
	// KindModifierChange is a designated modifier key going up or down.
	KindModifierChange Kind = iota + 1

	// KindGlyph is text to append to the display buffer.
	KindGlyph
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindModifierChange:
		return "ModifierChange"
	case KindGlyph:
		return "Glyph"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is the display-level result of a transition.
// The zero Token has no kind and is never returned by Resolve.
type Token struct {
	kind     Kind
	modifier key.Modifier
	pressed  bool
	text     string
}

// ModifierChange creates a token reporting a modifier state change.
func ModifierChange(mod key.Modifier, pressed bool) Token {
	return Token{kind: KindModifierChange, modifier: mod, pressed: pressed}
}

// Glyph creates a token carrying display text.
func Glyph(text string) Token {
	return Token{kind: KindGlyph, text: text}
}

// Kind returns which variant the token holds.
func (t Token) Kind() Kind {
	return t.kind
}

// Modifier returns the changed modifier. Only meaningful for KindModifierChange.
func (t Token) Modifier() key.Modifier {
	return t.modifier
}

// Pressed reports the new modifier state. Only meaningful for KindModifierChange.
func (t Token) Pressed() bool {
	return t.pressed
}

// Text returns the glyph text. Empty for KindModifierChange.
func (t Token) Text() string {
	return t.text
}

// String returns a debug representation.
func (t Token) String() string {
	switch t.kind {
	case KindModifierChange:
		dir := "up"
		if t.pressed {
			dir = "down"
		}
		return fmt.Sprintf("%s %s", t.modifier, dir)
	case KindGlyph:
		return fmt.Sprintf("Glyph(%q)", t.text)
	default:
		return "Token(none)"
	}
}
