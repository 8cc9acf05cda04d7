package renderer

import (
	"errors"

	"github.com/dshills/keyscreen/internal/engine"
)

// Renderer errors
var (
	// ErrNotStarted is returned when rendering before Start.
	ErrNotStarted = errors.New("renderer not started")

	// ErrClosed is returned when rendering after Shutdown.
	ErrClosed = errors.New("renderer closed")
)

// Renderer consumes frames.
type Renderer interface {
	Render(frame engine.Frame) error
}

// Options configures the overlay.
type Options struct {
	// LetterSpacing is the number of blank cells between glyphs.
	LetterSpacing int

	// Theme holds the overlay colors.
	Theme Theme
}

// DefaultOptions returns the default overlay options.
func DefaultOptions() Options {
	return Options{
		LetterSpacing: 1,
		Theme:         DefaultTheme(),
	}
}
