package keymap

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/dshills/hyperion/internal/input/key"
)

// Binding is one (key, modifiers) to command entry.
type Binding struct {
	Key     key.Keys
	Mods    key.Mod
	Command Command
}

// String returns the binding as "Ctrl+Z=Undo".
func (b Binding) String() string {
	return key.Format(b.Key, b.Mods) + "=" + b.Command.String()
}

// KeyMap maps (key, modifiers) to commands, ordered by key then modifiers.
type KeyMap struct {
	kmap btree.Map[uint64, Command]
}

// packs (key, mods) so integer order is key order then modifier order.
func pack(k key.Keys, mods key.Mod) uint64 {
	return uint64(uint32(k))<<32 | uint64(uint32(mods))
}

func unpack(v uint64) (key.Keys, key.Mod) {
	return key.Keys(int32(v >> 32)), key.Mod(int32(v))
}

// New creates a KeyMap seeded with the default bindings.
func New() *KeyMap {
	km := NewEmpty()
	for _, b := range defaultBindings {
		km.AssignCmdKey(b.Key, b.Mods, b.Command)
	}
	return km
}

// NewEmpty creates a KeyMap with no bindings.
func NewEmpty() *KeyMap {
	return &KeyMap{}
}

// Find returns the command bound to (k, mods), or CmdNone.
func (km *KeyMap) Find(k key.Keys, mods key.Mod) Command {
	cmd, ok := km.kmap.Get(pack(k, mods))
	if !ok {
		return CmdNone
	}
	return cmd
}

// AssignCmdKey binds (k, mods) to cmd, replacing any existing binding.
func (km *KeyMap) AssignCmdKey(k key.Keys, mods key.Mod, cmd Command) {
	km.kmap.Set(pack(k, mods), cmd)
}

// ClearCmdKey removes the binding for (k, mods).
func (km *KeyMap) ClearCmdKey(k key.Keys, mods key.Mod) {
	km.kmap.Delete(pack(k, mods))
}

// Clear removes every binding. Defaults are not restored.
func (km *KeyMap) Clear() {
	km.kmap.Clear()
}

// Len returns the number of bindings.
func (km *KeyMap) Len() int {
	return km.kmap.Len()
}

// Bindings returns every binding in (key, modifiers) order.
func (km *KeyMap) Bindings() []Binding {
	out := make([]Binding, 0, km.kmap.Len())
	km.kmap.Scan(func(packed uint64, cmd Command) bool {
		k, mods := unpack(packed)
		out = append(out, Binding{Key: k, Mods: mods, Command: cmd})
		return true
	})
	return out
}

// Bind parses spec and command name and assigns the binding.
func (km *KeyMap) Bind(spec, commandName string) error {
	k, mods, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	cmd, ok := ParseCommand(commandName)
	if !ok {
		return fmt.Errorf("binding %q: %w: %q", spec, ErrUnknownCommand, commandName)
	}
	km.AssignCmdKey(k, mods, cmd)
	return nil
}
