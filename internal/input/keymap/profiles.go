package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/keyscreen/internal/input/key"
)

// Built-in profile names.
const (
	ProfileVerbose = "verbose"
	ProfileCompact = "compact"
)

// DefaultProfile is used when no profile is configured.
const DefaultProfile = ProfileVerbose

var profiles = map[string]func() *Keymap{
	ProfileVerbose: profileVerbose,
	ProfileCompact: profileCompact,
}

// Lookup builds the named profile. Names are case-insensitive.
func Lookup(name string) (*Keymap, error) {
	build, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProfile, name, strings.Join(Profiles(), ", "))
	}
	return build(), nil
}

// Profiles returns the available profile names in sorted order.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// letters adds lowercase base and, for tiered profiles, uppercase Shift
// glyphs for every letter on a QWERTZ layout (Y and Z swapped).
func letters(b *builder) {
	for _, k := range key.All() {
		if !k.IsLetter() {
			continue
		}
		r := 'a' + rune(k-key.KeyA)
		switch k {
		case key.KeyY:
			r = 'z'
		case key.KeyZ:
			r = 'y'
		}
		b.base(k, string(r))
		if b.km.tiered {
			b.shift(k, strings.ToUpper(string(r)))
		}
	}
}

func digits(b *builder) {
	for r := '0'; r <= '9'; r++ {
		k, _ := key.Digit(r)
		b.base(k, string(r))
	}
}

func arrows(b *builder) {
	b.base(key.UpArrow, "↑").
		base(key.DownArrow, "↓").
		base(key.LeftArrow, "←").
		base(key.RightArrow, "→")
}

// profileVerbose is the German QWERTZ table with Shift, Alt and Shift+Alt
// forms and the modifier indicator row.
func profileVerbose() *Keymap {
	b := newBuilder(ProfileVerbose, "German QWERTZ with Shift/Alt forms and modifier indicators", 10).
		tiers().
		tieBreaks().
		indicators().
		standardModifiers()

	letters(b)
	digits(b)
	arrows(b)
	b.functionKeys()

	// Alt and Shift+Alt letter forms
	b.shiftAlt(key.KeyA, "Ä").alt(key.KeyA, "ä").
		alt(key.KeyE, "€").
		alt(key.KeyI, "∞").
		shiftAlt(key.KeyL, "Λ").alt(key.KeyL, "λ").
		shiftAlt(key.KeyO, "Ö").alt(key.KeyO, "ö").
		shiftAlt(key.KeyP, "Π").alt(key.KeyP, "π").
		alt(key.KeyQ, "@").
		alt(key.KeyS, "ß").
		shiftAlt(key.KeyU, "Ü").alt(key.KeyU, "ü")

	// Shifted digit row
	b.shift(key.Num0, "=").
		shift(key.Num1, "!").
		shift(key.Num2, "\"").alt(key.Num2, "'").
		shift(key.Num3, "§").
		shift(key.Num4, "$").
		shift(key.Num5, "%").
		shift(key.Num6, "&").
		shift(key.Num7, "/").
		shift(key.Num8, "(").
		shift(key.Num9, ")")

	// Punctuation
	b.base(key.BackQuote, "^").shift(key.BackQuote, "°").alt(key.BackQuote, "~").
		base(key.BackSlash, "/").shift(key.BackSlash, "\\").alt(key.BackSlash, "|").
		base(key.Comma, ",").shift(key.Comma, ";").
		base(key.Dot, ".").shift(key.Dot, ":").
		base(key.Equal, "`").shift(key.Equal, "´").
		base(key.LeftBracket, "[").shift(key.LeftBracket, "{").
		base(key.RightBracket, "]").shift(key.RightBracket, "}").
		base(key.Minus, "?").shift(key.Minus, "#").
		base(key.Quote, ">").shift(key.Quote, "+").
		base(key.SemiColon, "<").shift(key.SemiColon, "*").
		base(key.Slash, "-").shift(key.Slash, "_")

	// Whitespace and control keys
	b.base(key.Space, "\U000F1050").
		base(key.Tab, "⇥").
		base(key.Return, "↩").
		base(key.Backspace, "⌫").
		base(key.Escape, "⎋").
		base(key.PrintScreen, "\U000F1786")

	b.suppress(key.Control, key.Equal)

	return b.build()
}

// profileCompact shows base glyphs only and leaves more room on screen.
func profileCompact() *Keymap {
	b := newBuilder(ProfileCompact, "Base glyphs only, longer history, no indicators", 16).
		standardModifiers()

	letters(b)
	digits(b)
	arrows(b)
	b.functionKeys()

	b.base(key.Space, "␣").
		base(key.Tab, "⇥").
		base(key.Return, "↩").
		base(key.Backspace, "⌫").
		base(key.Escape, "⎋")

	return b.build()
}
