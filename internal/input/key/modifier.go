package key

import "strings"

// Mod is a set of modifier keys.
type Mod int

const (
	ModNorm  Mod = 0
	ModShift Mod = 1
	ModCtrl  Mod = 2
	ModAlt   Mod = 4
	ModSuper Mod = 8
	ModMeta  Mod = 16
)

// Has reports whether m contains mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// Without returns m with mod removed.
func (m Mod) Without(mod Mod) Mod {
	return m &^ mod
}

// String returns a representation like "Ctrl+Alt".
func (m Mod) String() string {
	if m == ModNorm {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ShortString returns a compact representation like "C-A".
func (m Mod) ShortString() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if m.Has(ModShift) {
		parts = append(parts, "S")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "D")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}

// modifierNameMap maps modifier names (lowercase) to Mod values.
var modifierNameMap = map[string]Mod{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"meta":    ModMeta,
}

// ModifierFromName returns the modifier for a name (case-insensitive), or
// ModNorm.
func ModifierFromName(name string) Mod {
	return modifierNameMap[strings.ToLower(strings.TrimSpace(name))]
}
