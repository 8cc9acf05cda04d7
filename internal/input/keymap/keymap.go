package keymap

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/keyscreen/internal/input/key"
)

// Tier selects which glyph of a key is shown for the held modifiers.
type Tier uint8

const (
	// TierBase is used when no tier-selecting modifier is held.
	TierBase Tier = iota

	// TierShift is used when Shift is held.
	TierShift

	// TierAlt is used when Alt is held.
	TierAlt

	// TierShiftAlt is used when Shift and Alt are both held.
	TierShiftAlt

	tierCount
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierBase:
		return "Base"
	case TierShift:
		return "Shift"
	case TierAlt:
		return "Alt"
	case TierShiftAlt:
		return "ShiftAlt"
	default:
		return fmt.Sprintf("Tier(%d)", t)
	}
}

// Modifiers returns the minimal modifier set that selects this tier.
func (t Tier) Modifiers() key.ModifierSet {
	switch t {
	case TierShift:
		return key.SetOf(key.Shift)
	case TierAlt:
		return key.SetOf(key.Alt)
	case TierShiftAlt:
		return key.SetOf(key.Shift, key.Alt)
	default:
		return key.ModNone
	}
}

type entryKey struct {
	key  key.Key
	tier Tier
}

// Suppression drops every press of Key while Modifier is held.
type Suppression struct {
	Modifier key.Modifier
	Key      key.Key
}

// Position locates a glyph in the table.
type Position struct {
	Key  key.Key
	Tier Tier
}

// Keymap is an immutable glyph table for one profile.
type Keymap struct {
	name        string
	description string
	maxChars    int
	tiered      bool
	tieBreak    bool
	indicators  bool

	glyphs      map[entryKey]string
	suppress    []Suppression
	designated  map[key.Key]key.Modifier
	modifierKey [key.ModifierCount]key.Key
}

// Name returns the profile name.
func (m *Keymap) Name() string {
	return m.name
}

// Description returns a one-line description of the profile.
func (m *Keymap) Description() string {
	return m.description
}

// MaxChars returns the display buffer capacity for this profile.
func (m *Keymap) MaxChars() int {
	return m.maxChars
}

// Tiered reports whether the Shift and Alt tiers are consulted.
func (m *Keymap) Tiered() bool {
	return m.tiered
}

// TieBreak reports whether the ShiftAlt tier is consulted.
func (m *Keymap) TieBreak() bool {
	return m.tiered && m.tieBreak
}

// Tiers returns the tiers Resolve consults, in priority order.
func (m *Keymap) Tiers() []Tier {
	var tiers []Tier
	if m.TieBreak() {
		tiers = append(tiers, TierShiftAlt)
	}
	if m.tiered {
		tiers = append(tiers, TierShift, TierAlt)
	}
	return append(tiers, TierBase)
}

// ShowsIndicators reports whether modifier changes update an indicator row.
func (m *Keymap) ShowsIndicators() bool {
	return m.indicators
}

// ModifierFor returns the modifier driven by k when k is a designated
// modifier key.
func (m *Keymap) ModifierFor(k key.Key) (key.Modifier, bool) {
	mod, ok := m.designated[k]
	return mod, ok
}

// ModifierKey returns the designated key for mod.
func (m *Keymap) ModifierKey(mod key.Modifier) key.Key {
	if !mod.IsValid() {
		return key.KeyUnknown
	}
	return m.modifierKey[mod]
}

// Glyph returns the raw table entry for k at tier.
func (m *Keymap) Glyph(k key.Key, tier Tier) (string, bool) {
	g, ok := m.glyphs[entryKey{k, tier}]
	return g, ok
}

// Suppressions returns a copy of the suppression rules.
func (m *Keymap) Suppressions() []Suppression {
	out := make([]Suppression, len(m.suppress))
	copy(out, m.suppress)
	return out
}

// Suppressed reports whether a press of k is dropped under mods.
func (m *Keymap) Suppressed(k key.Key, mods key.ModifierSet) bool {
	for _, s := range m.suppress {
		if s.Key == k && mods.Has(s.Modifier) {
			return true
		}
	}
	return false
}

// Resolve maps a key press under the held modifiers to a glyph token.
// The second result is false when no token is produced: for designated
// modifier keys, suppressed combinations and keys with no matching tier.
func (m *Keymap) Resolve(k key.Key, mods key.ModifierSet) (Token, bool) {
	if _, ok := m.designated[k]; ok {
		return Token{}, false
	}
	if m.Suppressed(k, mods) {
		return Token{}, false
	}

	shift := m.tiered && mods.Has(key.Shift)
	alt := m.tiered && mods.Has(key.Alt)

	if m.tieBreak && shift && alt {
		if g, ok := m.glyphs[entryKey{k, TierShiftAlt}]; ok {
			return Glyph(g), true
		}
	}
	if shift {
		if g, ok := m.glyphs[entryKey{k, TierShift}]; ok {
			return Glyph(g), true
		}
	}
	if alt {
		if g, ok := m.glyphs[entryKey{k, TierAlt}]; ok {
			return Glyph(g), true
		}
	}
	if g, ok := m.glyphs[entryKey{k, TierBase}]; ok {
		return Glyph(g), true
	}
	return Token{}, false
}

// Len returns the number of glyph entries.
func (m *Keymap) Len() int {
	return len(m.glyphs)
}

// Keys returns every key with at least one glyph, in key order.
func (m *Keymap) Keys() []key.Key {
	seen := make(map[key.Key]bool)
	for ek := range m.glyphs {
		seen[ek.key] = true
	}
	keys := make([]key.Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Reverse builds an index from single-rune glyphs to the position that
// produces them. When several positions produce the same rune the lowest
// tier wins, then the lowest key.
func (m *Keymap) Reverse() map[rune]Position {
	index := make(map[rune]Position, len(m.glyphs))
	for ek, g := range m.glyphs {
		if utf8.RuneCountInString(g) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(g)
		pos := Position{Key: ek.key, Tier: ek.tier}
		if prev, ok := index[r]; ok && !pos.before(prev) {
			continue
		}
		index[r] = pos
	}
	return index
}

func (p Position) before(other Position) bool {
	if p.Tier != other.Tier {
		return p.Tier < other.Tier
	}
	return p.Key < other.Key
}

// Validate checks the table contract: non-empty glyphs, no glyphs on
// designated modifier keys, Shift and Alt entries only in tiered profiles,
// ShiftAlt entries only with tie-breaks enabled and a positive display
// capacity.
func (m *Keymap) Validate() error {
	var problems []string

	if m.maxChars < 1 {
		problems = append(problems, fmt.Sprintf("max chars %d < 1", m.maxChars))
	}
	for ek, g := range m.glyphs {
		if g == "" {
			problems = append(problems, fmt.Sprintf("%s/%s: empty glyph", ek.key, ek.tier))
		}
		if _, ok := m.designated[ek.key]; ok {
			problems = append(problems, fmt.Sprintf("%s/%s: modifier key has a glyph", ek.key, ek.tier))
		}
		if (ek.tier == TierShift || ek.tier == TierAlt) && !m.tiered {
			problems = append(problems, fmt.Sprintf("%s/%s: tier entry in an untiered profile", ek.key, ek.tier))
		}
		if ek.tier == TierShiftAlt && !m.TieBreak() {
			problems = append(problems, fmt.Sprintf("%s: ShiftAlt entry without tie-breaks", ek.key))
		}
		if ek.tier >= tierCount {
			problems = append(problems, fmt.Sprintf("%s: invalid tier %d", ek.key, ek.tier))
		}
	}
	if m.tieBreak && !m.tiered {
		problems = append(problems, "tie-breaks enabled without tiers")
	}
	for _, mod := range key.Modifiers() {
		if m.modifierKey[mod] == key.KeyUnknown {
			problems = append(problems, fmt.Sprintf("%s: no designated key", mod))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w %q: %s", ErrInvalidKeymap, m.name, strings.Join(problems, "; "))
}
