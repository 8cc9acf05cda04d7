// Package key provides the physical key model for the input system.
//
// This package defines the fundamental types shared by hooks, the keymap and
// the engine:
//
//   - Key: Identifies a physical key, independent of any OS code space
//   - Modifier: One of the four tracked modifiers (Control, Shift, Alt, Meta)
//   - ModifierSet: A 4-bit set of held modifiers
//   - Transition: A single press or release of a key, as observed by a hook
//
// # Key Names
//
// Every key has a stable name used in logs, replay scripts and tests:
//
//   - Letters and digits: "KeyA" ... "KeyZ", "Num0" ... "Num9"
//   - Punctuation row: "BackQuote", "Minus", "Equal", "SemiColon", "Quote", ...
//   - Specials: "Space", "Tab", "Return", "Backspace", "Escape", "F1" ... "F12"
//   - Modifier keys: "ControlLeft", "ShiftLeft", "AltGr", "MetaLeft", ...
//
// Parse accepts these names case-insensitively plus common aliases such as
// "a", "enter", "esc", "ctrl" and "super".
package key
