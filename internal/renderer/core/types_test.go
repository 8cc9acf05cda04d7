package core

import (
	"testing"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#cdd6f4", ColorFromRGB(0xcd, 0xd6, 0xf4), false},
		{"#11111b", ColorFromRGB(0x11, 0x11, 0x1b), false},
		{"#fff", ColorFromRGB(255, 255, 255), false},
		{"#000000", ColorFromRGB(0, 0, 0), false},
		{"cdd6f4", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ColorFromHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorFromRGB(0x45, 0x47, 0x5a).Hex(); got != "#45475a" {
		t.Errorf("Hex() = %q, want #45475a", got)
	}
	if got := ColorDefault.Hex(); got != "default" {
		t.Errorf("ColorDefault.Hex() = %q, want default", got)
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	mid := black.Blend(white, 0.5)
	if mid.R < 64 || mid.R > 192 || absDiff(mid.R, mid.G) > 1 || absDiff(mid.G, mid.B) > 1 {
		t.Errorf("Blend(0.5) = %v, want a neutral mid gray", mid)
	}
	if got := black.Blend(ColorDefault, 0.5); got != black {
		t.Errorf("Blend with default = %v, want unchanged", got)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'Ä', 1},
		{'⌫', 1},
		{'🐧', 2},
		{'漢', 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}

	if got := StringWidth("F1🐧"); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 3, 4, 10)
	if r.Width() != 10 || r.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("rect should not be empty")
	}
	if !(ScreenRect{Top: 5, Bottom: 5, Left: 0, Right: 3}).IsEmpty() {
		t.Error("zero-height rect should be empty")
	}
}

func TestStyle(t *testing.T) {
	s := NewStyle(ColorFromRGB(1, 2, 3), ColorDefault).Bold()
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() should set AttrBold")
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("Bold() should not set AttrDim")
	}
	if !DefaultStyle().Foreground.IsDefault() {
		t.Error("DefaultStyle foreground should be default")
	}
	c := NewStyledCell('🐧', s)
	if c.Width != 2 {
		t.Errorf("NewStyledCell width = %d, want 2", c.Width)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestGraphemeCell(t *testing.T) {
	c := GraphemeCell("é", DefaultStyle())
	if c.Rune != 'e' || len(c.Combining) != 1 || c.Combining[0] != '\u0301' {
		t.Errorf("GraphemeCell(e+acute) = %q %q, want 'e' with one mark", c.Rune, c.Combining)
	}
	if c.Width != 1 {
		t.Errorf("GraphemeCell(e+acute).Width = %d, want 1", c.Width)
	}

	wide := GraphemeCell("🐧", DefaultStyle())
	if wide.Width != 2 || wide.Combining != nil {
		t.Errorf("GraphemeCell(penguin) = %+v, want width 2 and no marks", wide)
	}

	if blank := GraphemeCell("", DefaultStyle()); blank.Rune != ' ' {
		t.Errorf("GraphemeCell(\"\").Rune = %q, want ' '", blank.Rune)
	}
}
