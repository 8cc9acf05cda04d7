// Package keymap resolves physical keys into display tokens.
//
// A Keymap is a static glyph table keyed by (key, tier) plus a small set of
// suppression rules and the designated modifier keys. Resolution is pure:
// the result depends only on the key and the held modifier set.
//
// # Tiers
//
// Each key may carry up to four glyphs, one per tier. Resolve tries them in
// fixed priority and the first tier with an entry wins:
//
//	ShiftAlt  - Shift and Alt both held (profiles with tie-breaks only)
//	Shift     - Shift held
//	Alt       - Alt held
//	Base      - always
//
// Control and Meta never select a tier. Control participates only in
// suppression rules such as Control+Equal.
//
// # Profiles
//
// Two built-in profiles exist:
//
//	verbose  - German QWERTZ with Shift/Alt forms, 10 visible characters
//	compact  - base glyphs only, 16 visible characters, no indicator row
//
// # Usage
//
//	km, err := keymap.Lookup("verbose")
//	if err != nil {
//	    return err
//	}
//	if tok, ok := km.Resolve(key.KeyA, key.SetOf(key.Shift)); ok {
//	    fmt.Println(tok.Text()) // "A"
//	}
package keymap
