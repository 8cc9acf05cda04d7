// Package engine turns queued key transitions into display frames.
//
// The Engine owns the modifier tracker and the display buffer. Once per frame
// the application calls DrainFrame, which takes every pending transition off
// the queue and, in order:
//
//   - updates the tracker for designated modifier keys,
//   - resolves presses of other keys through the keymap and appends the glyph,
//   - ignores releases of other keys.
//
// The resulting Frame carries the modifier set and buffer text for the
// renderer.
//
// # Basic Usage
//
//	km, _ := keymap.Lookup("verbose")
//	q := queue.New()
//	e := engine.New(km)
//
//	q.Push(key.Press(key.ShiftLeft))
//	q.Push(key.Press(key.KeyA))
//	frame := e.DrainFrame(q)
//	frame.Text // "A"
//
// # Thread Safety
//
// Engine is not safe for concurrent use. Producers talk to the queue, and
// only the frame loop touches the engine.
package engine
