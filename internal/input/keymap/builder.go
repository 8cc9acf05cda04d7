package keymap

import (
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/keyscreen/internal/input/key"
)

// builder assembles a Keymap. Glyphs are NFC-normalized on insertion so a
// precomposed letter like Ä always counts as a single scalar.
type builder struct {
	km *Keymap
}

func newBuilder(name, description string, maxChars int) *builder {
	return &builder{km: &Keymap{
		name:        name,
		description: description,
		maxChars:    maxChars,
		glyphs:      make(map[entryKey]string),
		designated:  make(map[key.Key]key.Modifier),
	}}
}

func (b *builder) tiers() *builder {
	b.km.tiered = true
	return b
}

func (b *builder) tieBreaks() *builder {
	b.km.tieBreak = true
	return b
}

func (b *builder) indicators() *builder {
	b.km.indicators = true
	return b
}

func (b *builder) modifier(k key.Key, mod key.Modifier) *builder {
	b.km.designated[k] = mod
	b.km.modifierKey[mod] = k
	return b
}

// standardModifiers designates one physical key per tracked modifier.
func (b *builder) standardModifiers() *builder {
	return b.
		modifier(key.ControlLeft, key.Control).
		modifier(key.ShiftLeft, key.Shift).
		modifier(key.AltGr, key.Alt).
		modifier(key.MetaLeft, key.Meta)
}

func (b *builder) set(k key.Key, tier Tier, glyph string) *builder {
	b.km.glyphs[entryKey{k, tier}] = norm.NFC.String(glyph)
	return b
}

func (b *builder) base(k key.Key, glyph string) *builder {
	return b.set(k, TierBase, glyph)
}

func (b *builder) shift(k key.Key, glyph string) *builder {
	return b.set(k, TierShift, glyph)
}

func (b *builder) alt(k key.Key, glyph string) *builder {
	return b.set(k, TierAlt, glyph)
}

func (b *builder) shiftAlt(k key.Key, glyph string) *builder {
	return b.set(k, TierShiftAlt, glyph)
}

func (b *builder) suppress(mod key.Modifier, k key.Key) *builder {
	b.km.suppress = append(b.km.suppress, Suppression{Modifier: mod, Key: k})
	return b
}

// functionKeys maps F1-F12 to their labels.
func (b *builder) functionKeys() *builder {
	for n := 1; n <= 12; n++ {
		k, _ := key.FunctionKey(n)
		b.base(k, k.String())
	}
	return b
}

func (b *builder) build() *Keymap {
	return b.km
}
