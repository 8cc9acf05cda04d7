// Package renderer draws engine frames.
//
// Two renderers exist:
//
//	Overlay   - a full-screen cell overlay on a backend (tcell in production)
//	Headless  - one text line per changed frame, for pipes and logs
//
// The overlay centers the display buffer on the middle row and, for
// profiles with indicators, draws the modifier row ⌃ ⇧ ⌥ 🐧 right-aligned on
// the bottom row. Cell widths come from grapheme clusters, so wide glyphs
// take two cells.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	o := renderer.NewOverlay(term, renderer.DefaultOptions())
//	if err := o.Start(); err != nil {
//		return err
//	}
//	defer o.Shutdown()
//	go o.Pump(ctx, cancel, terminalHook)
//	o.Render(eng.DrainFrame(q))
package renderer
