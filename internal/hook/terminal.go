package hook

import (
	"context"
	"sync"

	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/input/keymap"
	"github.com/dshills/keyscreen/internal/renderer/backend"
)

// specialKeys maps terminal special keys to physical keys.
var specialKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.Escape,
	backend.KeyEnter:     key.Return,
	backend.KeyTab:       key.Tab,
	backend.KeyBackspace: key.Backspace,
	backend.KeyDelete:    key.Delete,
	backend.KeyInsert:    key.Insert,
	backend.KeyHome:      key.Home,
	backend.KeyEnd:       key.End,
	backend.KeyPageUp:    key.PageUp,
	backend.KeyPageDown:  key.PageDown,
	backend.KeyUp:        key.UpArrow,
	backend.KeyDown:      key.DownArrow,
	backend.KeyLeft:      key.LeftArrow,
	backend.KeyRight:     key.RightArrow,
	backend.KeyPrint:     key.PrintScreen,
	backend.KeyF1:        key.F1,
	backend.KeyF2:        key.F2,
	backend.KeyF3:        key.F3,
	backend.KeyF4:        key.F4,
	backend.KeyF5:        key.F5,
	backend.KeyF6:        key.F6,
	backend.KeyF7:        key.F7,
	backend.KeyF8:        key.F8,
	backend.KeyF9:        key.F9,
	backend.KeyF10:       key.F10,
	backend.KeyF11:       key.F11,
	backend.KeyF12:       key.F12,
}

// literalRunes are characters whose key shows a symbol rather than the
// character itself.
var literalRunes = map[rune]key.Key{
	' ':  key.Space,
	'\t': key.Tab,
	'\n': key.Return,
}

// lookupRune finds the position producing r.
func lookupRune(reverse map[rune]keymap.Position, r rune) (keymap.Position, bool) {
	if pos, ok := reverse[r]; ok {
		return pos, true
	}
	if k, ok := literalRunes[r]; ok {
		return keymap.Position{Key: k, Tier: keymap.TierBase}, true
	}
	return keymap.Position{}, false
}

// Terminal turns key events of the focused terminal into physical
// transitions. Terminals report characters, so each character is mapped
// back through the keymap to the key and modifiers that produce it, and
// the hook replays that chord: modifier presses, key press, key release,
// modifier releases.
type Terminal struct {
	keymap  *keymap.Keymap
	reverse map[rune]keymap.Position
	opts    options

	mu   sync.Mutex
	sink Sink
	ctx  context.Context
}

// NewTerminal creates a terminal hook for the given keymap.
func NewTerminal(km *keymap.Keymap, opts ...Option) *Terminal {
	return &Terminal{
		keymap:  km,
		reverse: km.Reverse(),
		opts:    applyOptions(opts),
	}
}

// Name returns "terminal".
func (h *Terminal) Name() string {
	return "terminal"
}

// Start records the sink. Events arrive through HandleEvent.
func (h *Terminal) Start(ctx context.Context, sink Sink) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sink = sink
	h.ctx = ctx
	return nil
}

// HandleEvent translates and delivers one terminal event. It returns false
// when the hook is not started or the event maps to no key.
func (h *Terminal) HandleEvent(ev backend.Event) bool {
	h.mu.Lock()
	sink, ctx := h.sink, h.ctx
	h.mu.Unlock()

	if sink == nil || ctx.Err() != nil {
		return false
	}

	trs := h.Translate(ev)
	if len(trs) == 0 {
		if ev.Type == backend.EventKey {
			h.opts.logger.Debug("no physical key for terminal key %d rune %q", ev.Key, ev.Rune)
		}
		return false
	}
	for _, t := range trs {
		deliver(sink, t, h.opts.logger)
	}
	return true
}

// Translate returns the synthesized transitions for ev.
func (h *Terminal) Translate(ev backend.Event) []key.Transition {
	if ev.Type != backend.EventKey {
		return nil
	}

	var (
		k    key.Key
		mods key.ModifierSet
	)

	switch {
	case ev.Key == backend.KeyRune:
		pos, ok := lookupRune(h.reverse, ev.Rune)
		if !ok {
			return nil
		}
		k, mods = pos.Key, pos.Tier.Modifiers()
		if ev.Mod.Has(backend.ModCtrl) {
			mods = mods.With(key.Control)
		}

	case ev.Key == backend.KeyCtrlSpace:
		k, mods = key.Space, key.SetOf(key.Control)

	default:
		if r, ok := ev.Key.CtrlLetter(); ok {
			pos, ok := h.reverse[r]
			if !ok {
				return nil
			}
			k, mods = pos.Key, key.SetOf(key.Control)
			break
		}
		sk, ok := specialKeys[ev.Key]
		if !ok {
			return nil
		}
		k = sk
		if ev.Mod.Has(backend.ModShift) {
			mods = mods.With(key.Shift)
		}
		if ev.Mod.Has(backend.ModCtrl) {
			mods = mods.With(key.Control)
		}
	}

	return chord(h.keymap, k, mods)
}

// chord builds the press/release sequence for k with mods held, pressing
// the keymap's designated key for each modifier.
func chord(km *keymap.Keymap, k key.Key, mods key.ModifierSet) []key.Transition {
	var held []key.Key
	for _, m := range key.Modifiers() {
		if mods.Has(m) {
			if mk := km.ModifierKey(m); mk != key.KeyUnknown {
				held = append(held, mk)
			}
		}
	}

	trs := make([]key.Transition, 0, 2+2*len(held))
	for _, mk := range held {
		trs = append(trs, key.Press(mk))
	}
	trs = append(trs, key.Press(k), key.Release(k))
	for i := len(held) - 1; i >= 0; i-- {
		trs = append(trs, key.Release(held[i]))
	}
	return trs
}
