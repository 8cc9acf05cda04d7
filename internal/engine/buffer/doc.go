// Package buffer provides the bounded display buffer for the overlay.
//
// A Buffer holds at most Cap() Unicode scalars. Append adds every scalar of
// its argument and then evicts from the front until the length fits, so the
// newest keystrokes are always visible:
//
//	buf := buffer.New(5)
//	buf.Append("abcde")
//	buf.Append("F1")
//	buf.String() // "cdeF1"
//
// Eviction works on scalars, not tokens. A multi-scalar label such as "F10"
// may be cut so only its tail remains. Nothing ever deletes text: the
// backspace key appends its own glyph.
//
// Buffer is not safe for concurrent use. The frame loop owns it.
package buffer
