package renderer

import (
	"context"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/dshills/keyscreen/internal/engine"
	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/renderer/backend"
	"github.com/dshills/keyscreen/internal/renderer/core"
)

// KeyHandler receives key events the overlay does not handle itself.
type KeyHandler interface {
	HandleEvent(ev backend.Event) bool
}

// Overlay draws frames on a cell backend.
type Overlay struct {
	mu sync.Mutex

	backend backend.Backend
	opts    Options

	width   int
	height  int
	last    engine.Frame
	frames  uint64
	started bool
	closed  bool
}

// glyph is one grapheme cluster laid out on the text row.
type glyph struct {
	cluster string
	width   int
}

// NewOverlay creates an overlay on b. Call Start before rendering.
func NewOverlay(b backend.Backend, opts Options) *Overlay {
	if opts.LetterSpacing < 0 {
		opts.LetterSpacing = 0
	}
	return &Overlay{
		backend: b,
		opts:    opts,
	}
}

// Start initializes the backend and hides the cursor.
func (o *Overlay) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrClosed
	}
	if o.started {
		return nil
	}
	if err := o.backend.Init(); err != nil {
		return err
	}
	o.backend.HideCursor()
	o.width, o.height = o.backend.Size()
	o.started = true
	return nil
}

// Render draws frame. Every call repaints the whole screen.
func (o *Overlay) Render(frame engine.Frame) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.closed:
		return ErrClosed
	case !o.started:
		return ErrNotStarted
	}

	o.last = frame
	o.draw(frame)
	o.frames++
	return nil
}

// Resize updates the screen size and redraws the last frame.
func (o *Overlay) Resize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.width, o.height = width, height
	if o.started && !o.closed {
		o.draw(o.last)
	}
}

// Frames returns the number of rendered frames.
func (o *Overlay) Frames() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frames
}

// Shutdown restores the terminal. It is safe to call more than once.
func (o *Overlay) Shutdown() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	started := o.started
	o.mu.Unlock()

	// Wake a pump blocked in PollEvent.
	o.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	if started {
		o.backend.Shutdown()
	}
}

func (o *Overlay) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Pump reads backend events until ctx is done or the overlay shuts down.
// Ctrl+C calls cancel. Resizes redraw. Other key events go to keys, which
// may be nil.
func (o *Overlay) Pump(ctx context.Context, cancel context.CancelFunc, keys KeyHandler) {
	for {
		ev := o.backend.PollEvent()
		if ctx.Err() != nil {
			return
		}

		switch ev.Type {
		case backend.EventInterrupt:
			if o.isClosed() {
				return
			}
		case backend.EventKey:
			if ev.IsCtrlC() {
				cancel()
				return
			}
			if keys != nil {
				keys.HandleEvent(ev)
			}
		case backend.EventResize:
			o.Resize(ev.Width, ev.Height)
		}
	}
}

// draw paints frame. Caller holds mu.
func (o *Overlay) draw(frame engine.Frame) {
	theme := o.opts.Theme
	o.backend.Fill(
		core.RectFromSize(0, 0, o.height, o.width),
		core.Cell{Rune: ' ', Width: 1, Style: theme.BackgroundStyle()},
	)

	if o.height > 0 {
		o.drawText(frame.Text, o.height/2, theme.TextStyle())
	}
	if frame.Indicators && o.height > 1 {
		o.drawIndicators(frame.Modifiers, o.height-1)
	}
	o.backend.Show()
}

// drawText centers text on row y. When it does not fit, the oldest glyphs
// are cut so the newest stay visible.
func (o *Overlay) drawText(text string, y int, style core.Style) {
	glyphs := splitGlyphs(text)
	spacing := o.opts.LetterSpacing

	total := layoutWidth(glyphs, spacing)
	for len(glyphs) > 0 && total > o.width {
		glyphs = glyphs[1:]
		total = layoutWidth(glyphs, spacing)
	}
	if len(glyphs) == 0 {
		return
	}

	x := (o.width - total) / 2
	for _, g := range glyphs {
		o.backend.SetCell(x, y, core.GraphemeCell(g.cluster, style))
		x += g.width + spacing
	}
}

// drawIndicators draws one glyph per modifier, right-aligned on row y with
// a one-cell margin.
func (o *Overlay) drawIndicators(mods key.ModifierSet, y int) {
	theme := o.opts.Theme
	active := theme.TextStyle()
	inactive := theme.InactiveStyle()

	all := key.Modifiers()
	glyphs := make([]glyph, len(all))
	for i, m := range all {
		r := m.Indicator()
		glyphs[i] = glyph{cluster: string(r), width: core.RuneWidth(r)}
	}

	x := o.width - layoutWidth(glyphs, 1) - 1
	if x < 0 {
		x = 0
	}
	for i, g := range glyphs {
		style := inactive
		if mods.Has(all[i]) {
			style = active
		}
		o.backend.SetCell(x, y, core.GraphemeCell(g.cluster, style))
		x += g.width + 1
	}
}

// splitGlyphs breaks text into grapheme clusters with their cell widths.
func splitGlyphs(text string) []glyph {
	var glyphs []glyph
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if w < 1 {
			w = 1
		}
		glyphs = append(glyphs, glyph{cluster: gr.Str(), width: w})
	}
	return glyphs
}

func layoutWidth(glyphs []glyph, spacing int) int {
	if len(glyphs) == 0 {
		return 0
	}
	total := spacing * (len(glyphs) - 1)
	for _, g := range glyphs {
		total += g.width
	}
	return total
}
