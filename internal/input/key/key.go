package key

import (
	"fmt"
	"strings"
)

// Keys identifies a key. Printable keys use their upper-case character code.
type Keys int

const (
	KeyNone   Keys = 0
	KeyEscape Keys = 7
	KeyBack   Keys = 8
	KeyTab    Keys = 9
	KeyReturn Keys = 13
	KeySpace  Keys = ' '
)

const (
	KeyDown Keys = iota + 300
	KeyUp
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPrior
	KeyNext
	KeyDelete
	KeyInsert
	KeyAdd
	KeySubtract
	KeyDivide
	KeyWin
	KeyRWin
	KeyMenu
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Keys]string{
	KeyEscape:   "Escape",
	KeyBack:     "Backspace",
	KeyTab:      "Tab",
	KeyReturn:   "Enter",
	KeySpace:    "Space",
	KeyDown:     "Down",
	KeyUp:       "Up",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPrior:    "PageUp",
	KeyNext:     "PageDown",
	KeyDelete:   "Delete",
	KeyInsert:   "Insert",
	KeyAdd:      "Add",
	KeySubtract: "Subtract",
	KeyDivide:   "Divide",
	KeyWin:      "Win",
	KeyRWin:     "RWin",
	KeyMenu:     "Menu",
	KeyF1:       "F1",
	KeyF2:       "F2",
	KeyF3:       "F3",
	KeyF4:       "F4",
	KeyF5:       "F5",
	KeyF6:       "F6",
	KeyF7:       "F7",
	KeyF8:       "F8",
	KeyF9:       "F9",
	KeyF10:      "F10",
	KeyF11:      "F11",
	KeyF12:      "F12",
}

// keyNameMap maps key names (lowercase) to Keys values.
var keyNameMap = map[string]Keys{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyReturn,
	"return":    KeyReturn,
	"cr":        KeyReturn,
	"tab":       KeyTab,
	"backspace": KeyBack,
	"bs":        KeyBack,
	"space":     KeySpace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPrior,
	"pgup":      KeyPrior,
	"prior":     KeyPrior,
	"pagedown":  KeyNext,
	"pgdn":      KeyNext,
	"next":      KeyNext,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"add":       KeyAdd,
	"subtract":  KeySubtract,
	"divide":    KeyDivide,
	"win":       KeyWin,
	"rwin":      KeyRWin,
	"menu":      KeyMenu,
	"lt":        '<',
	"gt":        '>',
	"bar":       '|',
	"bslash":    '\\',
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// String returns the key name, or the character for printable keys.
func (k Keys) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > ' ' && k < 0x7f {
		return string(rune(k))
	}
	if k == KeyNone {
		return "None"
	}
	return fmt.Sprintf("Keys(%d)", int(k))
}

// IsPrintable reports whether k is a printable character key.
func (k Keys) IsPrintable() bool {
	return k >= ' ' && k < KeyDown
}

// IsNavigation reports whether k moves the caret.
func (k Keys) IsNavigation() bool {
	return k >= KeyDown && k <= KeyNext
}

// IsFunctionKey reports whether k is F1 to F12.
func (k Keys) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// FromRune returns the key for a character: letters are upper-cased.
func FromRune(r rune) Keys {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Keys(r)
}

// KeyFromName returns the key for a name (case-insensitive), or KeyNone.
func KeyFromName(name string) Keys {
	return keyNameMap[strings.ToLower(strings.TrimSpace(name))]
}
