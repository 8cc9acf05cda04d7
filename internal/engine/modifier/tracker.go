// Package modifier tracks which of the four modifiers are held.
package modifier

import "github.com/dshills/keyscreen/internal/input/key"

// Tracker holds one bit per modifier. Each bit reflects the most recent
// transition of that modifier's designated key; there is no press count.
//
// Tracker is not safe for concurrent use. The frame loop owns it.
type Tracker struct {
	state key.ModifierSet
}

// New creates a tracker with every modifier released.
func New() *Tracker {
	return &Tracker{}
}

// Set overwrites the bit for mod. Invalid modifiers are ignored.
func (t *Tracker) Set(mod key.Modifier, pressed bool) {
	if pressed {
		t.state = t.state.With(mod)
	} else {
		t.state = t.state.Without(mod)
	}
}

// Get reports whether mod is held.
func (t *Tracker) Get(mod key.Modifier) bool {
	return t.state.Has(mod)
}

// Snapshot returns the current set by value.
func (t *Tracker) Snapshot() key.ModifierSet {
	return t.state
}

// Reset releases every modifier.
func (t *Tracker) Reset() {
	t.state = key.ModNone
}
