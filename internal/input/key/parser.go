package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into a key and modifier set.
func Parse(spec string) (Keys, Mod, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return KeyNone, ModNorm, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// "+" alone or as the key in "Ctrl++" is a key, not a separator.
	if i := strings.LastIndex(spec, "+"); i > 0 {
		if i == len(spec)-1 {
			if strings.HasSuffix(spec, "++") {
				return parseModifierStyle(spec[:len(spec)-2], "+")
			}
			return KeyNone, ModNorm, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
		}
		return parseModifierStyle(spec[:i], spec[i+1:])
	}

	return parseKey(spec, ModNorm)
}

// parseVimStyle parses notation like "C-s", "A-Left", "CR".
func parseVimStyle(inner string) (Keys, Mod, error) {
	parts := strings.Split(strings.TrimSpace(inner), "-")
	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "d":
			mods = mods.With(ModSuper)
		case "m":
			mods = mods.With(ModMeta)
		default:
			return KeyNone, ModNorm, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseModifierStyle parses the "Ctrl+Shift" part and the key of "Ctrl+Shift+Z".
func parseModifierStyle(modPart, keyPart string) (Keys, Mod, error) {
	var mods Mod
	for _, p := range strings.Split(modPart, "+") {
		mod := ModifierFromName(p)
		if mod == ModNorm {
			return KeyNone, ModNorm, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(keyPart, mods)
}

func parseKey(keyPart string, mods Mod) (Keys, Mod, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return KeyNone, ModNorm, ErrInvalidSpec
	}
	if k := KeyFromName(keyPart); k != KeyNone {
		return k, mods, nil
	}
	runes := []rune(keyPart)
	if len(runes) == 1 && runes[0] > ' ' && runes[0] < 0x7f {
		return FromRune(runes[0]), mods, nil
	}
	return KeyNone, ModNorm, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) (Keys, Mod) {
	k, m, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return k, m
}

// Format returns the canonical "Ctrl+Shift+Z" form, which Parse accepts.
func Format(k Keys, mods Mod) string {
	if mods == ModNorm {
		return k.String()
	}
	return mods.String() + "+" + k.String()
}
