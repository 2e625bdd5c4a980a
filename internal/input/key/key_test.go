package key

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Keys
		want string
	}{
		{KeyNone, "None"},
		{KeyDown, "Down"},
		{KeyPrior, "PageUp"},
		{KeyReturn, "Enter"},
		{KeyBack, "Backspace"},
		{KeySpace, "Space"},
		{KeyF12, "F12"},
		{'Z', "Z"},
		{'[', "["},
		{Keys(999), "Keys(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Keys(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestKeyValues(t *testing.T) {
	if KeyDown != 300 || KeyMenu != 315 {
		t.Errorf("navigation keys moved: Down=%d Menu=%d", KeyDown, KeyMenu)
	}
	if !KeyHome.IsNavigation() || KeyDelete.IsNavigation() {
		t.Error("IsNavigation wrong")
	}
	if !KeyF3.IsFunctionKey() || KeyMenu.IsFunctionKey() {
		t.Error("IsFunctionKey wrong")
	}
	if !Keys('a').IsPrintable() || KeyTab.IsPrintable() {
		t.Error("IsPrintable wrong")
	}
	if FromRune('q') != 'Q' || FromRune('7') != '7' {
		t.Error("FromRune should upper-case letters only")
	}
}

func TestModString(t *testing.T) {
	tests := []struct {
		mod   Mod
		long  string
		short string
	}{
		{ModNorm, "", ""},
		{ModCtrl, "Ctrl", "C"},
		{ModCtrl | ModShift, "Ctrl+Shift", "C-S"},
		{ModAlt | ModSuper | ModMeta, "Alt+Super+Meta", "A-D-M"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.long {
			t.Errorf("String() = %q, want %q", got, tt.long)
		}
		if got := tt.mod.ShortString(); got != tt.short {
			t.Errorf("ShortString() = %q, want %q", got, tt.short)
		}
	}
	if m := ModCtrl.With(ModAlt).Without(ModCtrl); m != ModAlt {
		t.Errorf("With/Without = %v", m)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		key  Keys
		mod  Mod
	}{
		{"a", 'A', ModNorm},
		{"Z", 'Z', ModNorm},
		{"Down", KeyDown, ModNorm},
		{"pgdn", KeyNext, ModNorm},
		{"Ctrl+Z", 'Z', ModCtrl},
		{"Ctrl+Shift+Z", 'Z', ModCtrl | ModShift},
		{"ctrl+shift+z", 'Z', ModCtrl | ModShift},
		{"Alt+Backspace", KeyBack, ModAlt},
		{"Cmd+Left", KeyLeft, ModSuper},
		{"Ctrl++", '+', ModCtrl},
		{"+", '+', ModNorm},
		{"<C-z>", 'Z', ModCtrl},
		{"<C-S-Home>", KeyHome, ModCtrl | ModShift},
		{"<CR>", KeyReturn, ModNorm},
		{"<Esc>", KeyEscape, ModNorm},
		{"<lt>", '<', ModNorm},
		{"Shift+F5", KeyF5, ModShift},
		{" Tab ", KeyTab, ModNorm},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			k, m, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if k != tt.key || m != tt.mod {
				t.Errorf("Parse(%q) = %v %v, want %v %v", tt.spec, k, m, tt.key, tt.mod)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper+Z", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"<X-z>", ErrInvalidSpec},
		{"Foo", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
	}
	for _, tt := range tests {
		if _, _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	pairs := []struct {
		key Keys
		mod Mod
	}{
		{'Z', ModCtrl | ModShift},
		{KeyDown, ModAlt},
		{KeyReturn, ModNorm},
		{'+', ModCtrl},
		{KeyPrior, ModSuper},
	}
	for _, p := range pairs {
		spec := Format(p.key, p.mod)
		k, m, err := Parse(spec)
		if err != nil || k != p.key || m != p.mod {
			t.Errorf("Parse(Format(%v, %v)) = %v %v %v", p.key, p.mod, k, m, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("Hyper+Q")
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  Keys
		mod  Mod
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 'A', ModNorm},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, ModNorm},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), 'X', ModAlt},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyReturn, ModNorm},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), KeyNext, ModNorm},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), KeyLeft, ModShift},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyF5, ModNorm},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), KeyTab, ModShift},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), 'Z', ModCtrl},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), KeyDelete, ModNorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, m := FromEvent(tt.ev)
			if k != tt.key || m != tt.mod {
				t.Errorf("FromEvent = %v %v, want %v %v", k, m, tt.key, tt.mod)
			}
		})
	}
}
