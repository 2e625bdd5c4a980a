package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/hyperion/internal/input/key"
)

func TestDefaultBindings(t *testing.T) {
	km := New()
	assert.Equal(t, len(defaultBindings), km.Len())

	tests := []struct {
		spec string
		want Command
	}{
		{"Ctrl+Z", CmdUndo},
		{"Ctrl+Shift+Z", CmdRedo},
		{"Ctrl+Y", CmdRedo},
		{"Down", CmdLineDown},
		{"Shift+Down", CmdLineDownExtend},
		{"Backspace", CmdDeleteBack},
		{"Alt+Backspace", CmdUndo},
		{"Enter", CmdNewLine},
		{"Ctrl+A", CmdSelectAll},
		{"Ctrl+Q", CmdNone},
		{"F1", CmdNone},
	}
	for _, tt := range tests {
		k, mods := key.MustParse(tt.spec)
		assert.Equal(t, tt.want, km.Find(k, mods), tt.spec)
	}
}

func TestAssignOverwrites(t *testing.T) {
	km := New()
	km.AssignCmdKey('Z', key.ModCtrl, CmdRedo)
	assert.Equal(t, CmdRedo, km.Find('Z', key.ModCtrl))
	assert.Equal(t, len(defaultBindings), km.Len())

	km.ClearCmdKey('Z', key.ModCtrl)
	assert.Equal(t, CmdNone, km.Find('Z', key.ModCtrl))
}

func TestClearDoesNotReseed(t *testing.T) {
	km := New()
	km.Clear()
	assert.Equal(t, 0, km.Len())
	for _, b := range defaultBindings {
		assert.Equal(t, CmdNone, km.Find(b.Key, b.Mods))
	}
	assert.Empty(t, km.Bindings())
}

func TestBindingsOrdered(t *testing.T) {
	km := NewEmpty()
	km.AssignCmdKey(key.KeyDown, key.ModShift, CmdLineDownExtend)
	km.AssignCmdKey('Z', key.ModCtrl|key.ModShift, CmdRedo)
	km.AssignCmdKey('Z', key.ModCtrl, CmdUndo)
	km.AssignCmdKey(key.KeyDown, key.ModNorm, CmdLineDown)

	want := []Binding{
		{'Z', key.ModCtrl, CmdUndo},
		{'Z', key.ModCtrl | key.ModShift, CmdRedo},
		{key.KeyDown, key.ModNorm, CmdLineDown},
		{key.KeyDown, key.ModShift, CmdLineDownExtend},
	}
	assert.Equal(t, want, km.Bindings())
	assert.Equal(t, "Ctrl+Z=Undo", want[0].String())
}

func TestBind(t *testing.T) {
	km := NewEmpty()
	require.NoError(t, km.Bind("Ctrl+Shift+D", "lineduplicate"))
	assert.Equal(t, CmdLineDuplicate, km.Find('D', key.ModCtrl|key.ModShift))

	assert.ErrorIs(t, km.Bind("Ctrl+D", "Explode"), ErrUnknownCommand)
	assert.ErrorIs(t, km.Bind("Hyper+D", "Undo"), key.ErrInvalidSpec)
	assert.Equal(t, 1, km.Len())
}

func TestCommandNames(t *testing.T) {
	for _, cmd := range Commands() {
		got, ok := ParseCommand(cmd.String())
		assert.True(t, ok, cmd.String())
		assert.Equal(t, cmd, got)
	}
	assert.Equal(t, "None", CmdNone.String())
	assert.Equal(t, "Command(42)", Command(42).String())
	_, ok := ParseCommand("None")
	assert.False(t, ok, "CmdNone has no name to bind")
}

func TestAssignFindProperty(t *testing.T) {
	keys := rapid.SampledFrom([]key.Keys{'A', 'Z', '1', key.KeyDown, key.KeyHome, key.KeyF5, key.KeyReturn})
	mods := rapid.SampledFrom([]key.Mod{key.ModNorm, key.ModCtrl, key.ModShift, key.ModCtrl | key.ModShift, key.ModAlt | key.ModMeta})
	cmds := rapid.SampledFrom(Commands())

	rapid.Check(t, func(t *rapid.T) {
		km := NewEmpty()
		want := map[Binding]Command{}
		n := rapid.IntRange(1, 40).Draw(t, "n")
		for range n {
			k, m, c := keys.Draw(t, "key"), mods.Draw(t, "mods"), cmds.Draw(t, "cmd")
			km.AssignCmdKey(k, m, c)
			want[Binding{Key: k, Mods: m}] = c
		}
		for b, c := range want {
			if got := km.Find(b.Key, b.Mods); got != c {
				t.Fatalf("Find(%v, %v) = %v, want %v", b.Key, b.Mods, got, c)
			}
		}
		if km.Len() != len(want) {
			t.Fatalf("Len = %d, want %d", km.Len(), len(want))
		}
		km.Clear()
		for b := range want {
			if got := km.Find(b.Key, b.Mods); got != CmdNone {
				t.Fatalf("after Clear, Find(%v, %v) = %v", b.Key, b.Mods, got)
			}
		}
	})
}
