// Package keymap maps (key, modifier set) pairs to editor commands.
//
// A KeyMap is ordered by key and then modifier set. Find returns CmdNone
// for an unbound pair; CmdNone is never a valid command.
//
// # Usage
//
//	km := keymap.New() // seeded with the default bindings
//	km.AssignCmdKey('Z', key.ModCtrl|key.ModShift, keymap.CmdRedo)
//	if cmd := km.Find(k, mods); cmd != keymap.CmdNone {
//	    editor.Execute(cmd)
//	}
//
// Bindings can also be given as text, the way settings files do:
//
//	err := km.Bind("Ctrl+Shift+Z", "Redo")
package keymap
