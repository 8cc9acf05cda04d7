package renderer

import (
	"fmt"

	"github.com/dshills/keyscreen/internal/renderer/core"
)

// Default theme colors (catppuccin mocha).
const (
	DefaultTextColor       = "#cdd6f4"
	DefaultInactiveColor   = "#45475a"
	DefaultBackgroundColor = "#11111b"
)

// inactiveBlend is how far a derived inactive color moves from the text
// color toward the background.
const inactiveBlend = 0.7

// Theme holds the overlay colors.
type Theme struct {
	Text       core.Color
	Inactive   core.Color
	Background core.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	t, _ := ParseTheme(DefaultTextColor, DefaultInactiveColor, DefaultBackgroundColor)
	return t
}

// ParseTheme builds a theme from hex colors. An empty inactive color is
// derived by blending text into background.
func ParseTheme(text, inactive, background string) (Theme, error) {
	var (
		t   Theme
		err error
	)
	if t.Text, err = core.ColorFromHex(text); err != nil {
		return Theme{}, fmt.Errorf("theme text: %w", err)
	}
	if t.Background, err = core.ColorFromHex(background); err != nil {
		return Theme{}, fmt.Errorf("theme background: %w", err)
	}
	if inactive == "" {
		t.Inactive = t.Text.Blend(t.Background, inactiveBlend)
		return t, nil
	}
	if t.Inactive, err = core.ColorFromHex(inactive); err != nil {
		return Theme{}, fmt.Errorf("theme inactive: %w", err)
	}
	return t, nil
}

// TextStyle is used for buffer glyphs and active indicators.
func (t Theme) TextStyle() core.Style {
	return core.NewStyle(t.Text, t.Background).Bold()
}

// InactiveStyle is used for indicators of released modifiers.
func (t Theme) InactiveStyle() core.Style {
	return core.NewStyle(t.Inactive, t.Background)
}

// BackgroundStyle fills empty cells.
func (t Theme) BackgroundStyle() core.Style {
	return core.NewStyle(t.Text, t.Background)
}
