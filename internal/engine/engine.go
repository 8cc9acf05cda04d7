package engine

import (
	"github.com/dshills/keyscreen/internal/engine/buffer"
	"github.com/dshills/keyscreen/internal/engine/modifier"
	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/input/keymap"
)

// Source supplies the transitions for one frame.
type Source interface {
	Drain() []key.Transition
}

// Frame is the per-frame output consumed by the renderer.
type Frame struct {
	// Modifiers is the held modifier set after the frame's transitions.
	Modifiers key.ModifierSet

	// Text is the display buffer contents.
	Text string

	// Indicators reports whether the profile shows the indicator row.
	Indicators bool

	// IndicatorsChanged is set when a designated modifier key transitioned
	// during this frame and the profile shows indicators.
	IndicatorsChanged bool

	// Processed is the number of transitions handled this frame.
	Processed int
}

// Stats contains lifetime counters.
type Stats struct {
	Processed  uint64
	Glyphs     uint64
	Unresolved uint64
	Modifiers  uint64
	Frames     uint64
}

// Engine applies transitions to the tracker and buffer.
type Engine struct {
	keymap   *keymap.Keymap
	tracker  *modifier.Tracker
	buffer   *buffer.Buffer
	logger   Logger
	capacity int

	stats Stats
}

// New creates an engine for the given keymap. The display capacity defaults
// to the keymap's MaxChars.
func New(km *keymap.Keymap, opts ...Option) *Engine {
	e := &Engine{
		keymap:   km,
		tracker:  modifier.New(),
		logger:   nopLogger{},
		capacity: km.MaxChars(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.buffer = buffer.New(e.capacity)
	return e
}

// Keymap returns the active keymap.
func (e *Engine) Keymap() *keymap.Keymap {
	return e.keymap
}

// Process applies a single transition and returns the token it produced.
func (e *Engine) Process(t key.Transition) (keymap.Token, bool) {
	e.stats.Processed++

	if mod, ok := e.keymap.ModifierFor(t.Key); ok {
		pressed := t.IsPress()
		e.tracker.Set(mod, pressed)
		e.stats.Modifiers++
		return keymap.ModifierChange(mod, pressed), true
	}

	if !t.IsPress() {
		return keymap.Token{}, false
	}

	mods := e.tracker.Snapshot()
	tok, ok := e.keymap.Resolve(t.Key, mods)
	if !ok {
		e.stats.Unresolved++
		e.logger.Debug("no glyph for %s with modifiers [%s]", t.Key, mods)
		return keymap.Token{}, false
	}

	switch tok.Kind() {
	case keymap.KindGlyph:
		e.buffer.Append(tok.Text())
		e.stats.Glyphs++
	case keymap.KindModifierChange:
		// Resolve never yields modifier changes.
	}
	return tok, true
}

// DrainFrame processes every pending transition from src and returns the
// frame to render. It never blocks.
func (e *Engine) DrainFrame(src Source) Frame {
	frame := Frame{Indicators: e.keymap.ShowsIndicators()}

	for _, t := range src.Drain() {
		tok, ok := e.Process(t)
		frame.Processed++
		if ok && tok.Kind() == keymap.KindModifierChange && frame.Indicators {
			frame.IndicatorsChanged = true
		}
	}

	e.stats.Frames++
	frame.Modifiers = e.tracker.Snapshot()
	frame.Text = e.buffer.String()
	return frame
}

// Modifiers returns the current modifier set.
func (e *Engine) Modifiers() key.ModifierSet {
	return e.tracker.Snapshot()
}

// Text returns the display buffer contents.
func (e *Engine) Text() string {
	return e.buffer.String()
}

// Capacity returns the display buffer capacity.
func (e *Engine) Capacity() int {
	return e.buffer.Cap()
}

// ResetModifiers releases every modifier.
func (e *Engine) ResetModifiers() {
	e.tracker.Reset()
}

// Stats returns the lifetime counters.
func (e *Engine) Stats() Stats {
	return e.stats
}
