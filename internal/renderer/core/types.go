// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Attribute represents text attributes.
type Attribute uint16

// Text attribute flags.
const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a 24-bit color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromColorful converts a colorful.Color, clamping to the sRGB gamut.
func ColorFromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb" or "#rgb".
func ColorFromHex(hex string) (Color, error) {
	full := expandShortHex(hex)
	if len(full) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: want #rrggbb or #rgb", hex)
	}
	c, err := colorful.Hex(full)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return ColorFromColorful(c), nil
}

func expandShortHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Colorful returns the color as a colorful.Color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the color as "#rrggbb", or "default".
func (c Color) Hex() string {
	if c.Default {
		return "default"
	}
	return c.Colorful().Hex()
}

// String returns Hex().
func (c Color) String() string {
	return c.Hex()
}

// Blend mixes c toward other in CIE-Lab space. amount is clamped to [0,1].
// Blending with the default color returns c unchanged.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		return c
	}
	switch {
	case amount <= 0:
		return c
	case amount >= 1:
		return other
	}
	return ColorFromColorful(c.Colorful().BlendLab(other.Colorful(), amount))
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewStyle creates a style with the given colors.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// Bold returns a copy of the style with bold set.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display. Zero marks the trailing half of a
	// wide character.
	Rune rune

	// Combining holds combining marks drawn over Rune.
	Combining []rune

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// Equals reports whether two cells draw the same thing.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style == other.Style &&
		slices.Equal(c.Combining, other.Combining)
}

// GraphemeCell builds a cell from one grapheme cluster.
func GraphemeCell(cluster string, style Style) Cell {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return Cell{Rune: ' ', Width: 1, Style: style}
	}
	c := Cell{Rune: runes[0], Width: StringWidth(cluster), Style: style}
	if len(runes) > 1 {
		c.Combining = runes[1:]
	}
	return c
}

// RuneWidth returns the monospace display width of a rune: 0, 1 or 2.
func RuneWidth(r rune) int {
	return uniseg.StringWidth(string(r))
}

// StringWidth returns the monospace display width of s.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}
