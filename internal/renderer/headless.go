package renderer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/dshills/keyscreen/internal/engine"
)

// Headless writes one line per changed frame, e.g. "[⌃⇧··] Hallo".
type Headless struct {
	mu    sync.Mutex
	w     io.Writer
	last  string
	lines int
}

// NewHeadless creates a headless renderer writing to w.
func NewHeadless(w io.Writer) *Headless {
	return &Headless{w: w}
}

// Render writes frame when its line differs from the previous one. The
// initial blank state is not written.
func (h *Headless) Render(frame engine.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.lines == 0 && frame.Text == "" && frame.Modifiers.IsEmpty() {
		return nil
	}
	line := FormatFrame(frame)
	if h.lines > 0 && line == h.last {
		return nil
	}
	if _, err := fmt.Fprintln(h.w, line); err != nil {
		return fmt.Errorf("headless write: %w", err)
	}
	h.last = line
	h.lines++
	return nil
}

// Lines returns the number of lines written.
func (h *Headless) Lines() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lines
}

// FormatFrame renders frame as a single line.
func FormatFrame(frame engine.Frame) string {
	if !frame.Indicators {
		return frame.Text
	}
	if frame.Text == "" {
		return "[" + frame.Modifiers.Indicators() + "]"
	}
	return "[" + frame.Modifiers.Indicators() + "] " + frame.Text
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// UseHeadless reports whether output to w should use the headless
// renderer: when forced, or when w is not a terminal.
func UseHeadless(forced bool, w io.Writer) bool {
	if forced {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !IsTerminal(f)
}
