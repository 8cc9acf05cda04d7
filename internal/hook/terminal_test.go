package hook

import (
	"context"
	"testing"

	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/input/keymap"
	"github.com/dshills/keyscreen/internal/renderer/backend"
)

func verbose(t *testing.T) *keymap.Keymap {
	t.Helper()
	km, err := keymap.Lookup(keymap.ProfileVerbose)
	if err != nil {
		t.Fatalf("Lookup(verbose): %v", err)
	}
	return km
}

func runeEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func keyEvent(k backend.Key, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, Mod: mod}
}

func TestTerminalTranslate(t *testing.T) {
	h := NewTerminal(verbose(t))

	tests := []struct {
		name string
		ev   backend.Event
		want []step
	}{
		{
			name: "lowercase letter",
			ev:   runeEvent('a'),
			want: []step{down(key.KeyA), up(key.KeyA)},
		},
		{
			name: "uppercase letter",
			ev:   runeEvent('A'),
			want: []step{down(key.ShiftLeft), down(key.KeyA), up(key.KeyA), up(key.ShiftLeft)},
		},
		{
			name: "qwertz y",
			ev:   runeEvent('y'),
			want: []step{down(key.KeyZ), up(key.KeyZ)},
		},
		{
			name: "alt glyph",
			ev:   runeEvent('@'),
			want: []step{down(key.AltGr), down(key.KeyQ), up(key.KeyQ), up(key.AltGr)},
		},
		{
			name: "shift alt glyph",
			ev:   runeEvent('\u00c4'),
			want: []step{
				down(key.ShiftLeft), down(key.AltGr),
				down(key.KeyA), up(key.KeyA),
				up(key.AltGr), up(key.ShiftLeft),
			},
		},
		{
			name: "space",
			ev:   runeEvent(' '),
			want: []step{down(key.Space), up(key.Space)},
		},
		{
			name: "enter",
			ev:   keyEvent(backend.KeyEnter, 0),
			want: []step{down(key.Return), up(key.Return)},
		},
		{
			name: "shift arrow",
			ev:   keyEvent(backend.KeyLeft, backend.ModShift),
			want: []step{down(key.ShiftLeft), down(key.LeftArrow), up(key.LeftArrow), up(key.ShiftLeft)},
		},
		{
			name: "function key",
			ev:   keyEvent(backend.KeyF5, 0),
			want: []step{down(key.F5), up(key.F5)},
		},
		{
			name: "ctrl letter uses layout",
			ev:   keyEvent(backend.KeyCtrlZ, backend.ModCtrl),
			want: []step{down(key.ControlLeft), down(key.KeyY), up(key.KeyY), up(key.ControlLeft)},
		},
		{
			name: "ctrl space",
			ev:   keyEvent(backend.KeyCtrlSpace, backend.ModCtrl),
			want: []step{down(key.ControlLeft), down(key.Space), up(key.Space), up(key.ControlLeft)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSteps(t, h.Translate(tt.ev), tt.want)
		})
	}
}

func TestTerminalTranslateIgnored(t *testing.T) {
	h := NewTerminal(verbose(t))

	events := []backend.Event{
		runeEvent('☃'),
		{Type: backend.EventResize, Width: 80, Height: 24},
		{Type: backend.EventFocus, Focused: true},
		keyEvent(backend.KeyNone, 0),
	}
	for _, ev := range events {
		if got := h.Translate(ev); len(got) != 0 {
			t.Errorf("Translate(%+v) = %v, want nothing", ev, got)
		}
	}
}

func TestTerminalCompactProfile(t *testing.T) {
	km, err := keymap.Lookup(keymap.ProfileCompact)
	if err != nil {
		t.Fatalf("Lookup(compact): %v", err)
	}
	h := NewTerminal(km)

	// The compact table has no Shift tier, so 'A' is unknown there.
	if got := h.Translate(runeEvent('A')); len(got) != 0 {
		t.Errorf("Translate('A') = %v, want nothing", got)
	}
	assertSteps(t, h.Translate(runeEvent('z')), []step{down(key.KeyY), up(key.KeyY)})
}

func TestTerminalHandleEvent(t *testing.T) {
	h := NewTerminal(verbose(t))

	if h.HandleEvent(runeEvent('a')) {
		t.Error("HandleEvent before Start should return false")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sink := &recordingSink{}
	if err := h.Start(ctx, sink); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if h.Name() != "terminal" {
		t.Errorf("Name() = %q, want terminal", h.Name())
	}

	if !h.HandleEvent(runeEvent('A')) {
		t.Fatal("HandleEvent('A') should deliver")
	}
	if h.HandleEvent(runeEvent('☃')) {
		t.Error("HandleEvent for an unmapped rune should return false")
	}
	assertSteps(t, sink.transitions(), []step{
		down(key.ShiftLeft), down(key.KeyA), up(key.KeyA), up(key.ShiftLeft),
	})

	cancel()
	if h.HandleEvent(runeEvent('a')) {
		t.Error("HandleEvent after cancel should return false")
	}
}
