// Package config loads editor settings from TOML or YAML files and applies
// them to view styles, key maps and edit models.
//
// Settings files are decoded strictly: unknown keys are reported as parse
// errors with their position when the decoder provides one. A Watcher
// reloads a settings file whenever it changes on disk.
//
// Example (TOML):
//
//	[editor]
//	tab_width = 4
//	undo_selection_history = "scroll"
//
//	[[styles]]
//	index = 32
//	font = "Fira Code"
//	size = 11
//	fore = "#202020"
//
//	[keys]
//	"Ctrl+Shift+Z" = "Redo"
package config
