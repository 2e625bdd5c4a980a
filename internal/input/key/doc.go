// Package key defines the keys and modifier sets that key bindings are
// keyed by.
//
// Printable keys use their character code with letters upper-cased; other
// keys use the Keys constants. Modifier sets combine Mod flags.
//
// # Key Specifications
//
// Specifications can be written as:
//
//   - Simple keys: "a", "Z", "1", "Enter", "Escape", "Down"
//   - With modifiers: "Ctrl+Z", "Alt+F4", "Ctrl+Shift+Z"
//   - Vim-style: "<C-z>", "<A-Left>", "<C-S-z>", "<CR>", "<Esc>"
//
// FromEvent translates tcell key events from a terminal host.
package key
