package key

import "github.com/gdamore/tcell/v2"

// FromEvent translates a tcell key event. Control characters reported as
// KeyCtrlA..KeyCtrlZ become the letter with ModCtrl. Unknown keys give
// KeyNone.
func FromEvent(ev *tcell.EventKey) (Keys, Mod) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return KeySpace, mods
		}
		return FromRune(r), mods
	case tcell.KeyEscape:
		return KeyEscape, mods
	case tcell.KeyEnter:
		return KeyReturn, mods
	case tcell.KeyTab:
		return KeyTab, mods
	case tcell.KeyBacktab:
		return KeyTab, mods.With(ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBack, mods
	case tcell.KeyDelete:
		return KeyDelete, mods
	case tcell.KeyInsert:
		return KeyInsert, mods
	case tcell.KeyHome:
		return KeyHome, mods
	case tcell.KeyEnd:
		return KeyEnd, mods
	case tcell.KeyPgUp:
		return KeyPrior, mods
	case tcell.KeyPgDn:
		return KeyNext, mods
	case tcell.KeyUp:
		return KeyUp, mods
	case tcell.KeyDown:
		return KeyDown, mods
	case tcell.KeyLeft:
		return KeyLeft, mods
	case tcell.KeyRight:
		return KeyRight, mods
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Keys(k-tcell.KeyF1), mods
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Keys('A' + int(k-tcell.KeyCtrlA)), mods.With(ModCtrl)
	}
	return KeyNone, mods
}

// convertMod converts tcell modifiers.
func convertMod(m tcell.ModMask) Mod {
	var mods Mod
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
