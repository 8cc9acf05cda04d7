package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptyName     = errors.New("empty key name")
	ErrUnknownKey    = errors.New("unknown key name")
	ErrUnknownMod    = errors.New("unknown modifier name")
	ErrUnknownAction = errors.New("unknown direction")
)

// keyByName maps lowercase names and aliases to keys.
var keyByName = buildKeyIndex()

func buildKeyIndex() map[string]Key {
	index := make(map[string]Key, 2*int(keyCount))
	for k := KeyA; k < keyCount; k++ {
		index[strings.ToLower(keyNames[k])] = k
	}
	for r := 'a'; r <= 'z'; r++ {
		index[string(r)] = KeyA + Key(r-'a')
	}
	for r := '0'; r <= '9'; r++ {
		index[string(r)] = Num0 + Key(r-'0')
	}

	aliases := map[string]Key{
		"grave":      BackQuote,
		"`":          BackQuote,
		"-":          Minus,
		"=":          Equal,
		"leftbrace":  LeftBracket,
		"[":          LeftBracket,
		"rightbrace": RightBracket,
		"]":          RightBracket,
		"backslash":  BackSlash,
		"semicolon":  SemiColon,
		";":          SemiColon,
		"apostrophe": Quote,
		"'":          Quote,
		",":          Comma,
		"period":     Dot,
		".":          Dot,
		"/":          Slash,
		"102nd":      IntlBackslash,
		"enter":      Return,
		"cr":         Return,
		"bs":         Backspace,
		"esc":        Escape,
		"up":         UpArrow,
		"down":       DownArrow,
		"left":       LeftArrow,
		"right":      RightArrow,
		"ins":        Insert,
		"del":        Delete,
		"pgup":       PageUp,
		"pgdn":       PageDown,
		"print":      PrintScreen,
		"sysrq":      PrintScreen,
		"ctrl":       ControlLeft,
		"control":    ControlLeft,
		"lctrl":      ControlLeft,
		"rctrl":      ControlRight,
		"shift":      ShiftLeft,
		"lshift":     ShiftLeft,
		"rshift":     ShiftRight,
		"lalt":       AltLeft,
		"ralt":       AltGr,
		"meta":       MetaLeft,
		"super":      MetaLeft,
		"win":        MetaLeft,
		"cmd":        MetaLeft,
		"rmeta":      MetaRight,
	}
	for name, k := range aliases {
		index[name] = k
	}
	return index
}

// Parse returns the key for a name or alias (case-insensitive).
//
// Supported forms:
//   - Canonical names: "KeyA", "Num1", "BackQuote", "F12", "ShiftLeft"
//   - Single characters: "a", "1", "-", "["
//   - Aliases: "enter", "esc", "up", "ctrl", "super"
func Parse(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyUnknown, ErrEmptyName
	}
	if k, ok := keyByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(name string) Key {
	k, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return k
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    Control,
	"control": Control,
	"c":       Control,
	"shift":   Shift,
	"s":       Shift,
	"alt":     Alt,
	"altgr":   Alt,
	"option":  Alt,
	"opt":     Alt,
	"a":       Alt,
	"meta":    Meta,
	"super":   Meta,
	"win":     Meta,
	"cmd":     Meta,
	"m":       Meta,
}

// ParseModifier returns the Modifier for a name (case-insensitive).
func ParseModifier(name string) (Modifier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, ErrEmptyName
	}
	if m, ok := modifierNameMap[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMod, name)
}

// ParseModifiers parses a combination like "Ctrl+Alt" into a set.
func ParseModifiers(s string) (ModifierSet, error) {
	var result ModifierSet
	if strings.TrimSpace(s) == "" {
		return result, nil
	}
	for _, part := range strings.Split(s, "+") {
		m, err := ParseModifier(part)
		if err != nil {
			return ModNone, err
		}
		result = result.With(m)
	}
	return result, nil
}

// ParseDirection parses "press"/"down" or "release"/"up".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press", "pressed", "down":
		return Pressed, nil
	case "release", "released", "up":
		return Released, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
