package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[editor]
tab_width = 4
undo_selection_history = "scroll"
wrap = "word"

[[styles]]
index = 32
font = "Fira Code"
size = 11.5
fore = "#202020"

[[indicators]]
index = 8
style = "roundbox"
fill_alpha = 60

[keys]
"Ctrl+Shift+Z" = "Redo"
`

const sampleYAML = `
editor:
  tab_width: 2
  bidirectional: l2r
styles:
  - index: 40
    visible: false
elements:
  caret: "#ff0000"
`

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/settings.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = FormatFromPath("settings.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("settings.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadTOML(t *testing.T) {
	l := NewLoaderWithFS(MapFS{"settings.toml": []byte(sampleTOML)})

	s, err := l.Load("settings.toml")
	require.NoError(t, err)

	assert.Equal(t, 4, s.Editor.TabWidth)
	assert.Equal(t, "scroll", s.Editor.UndoSelectionHistory)
	require.Len(t, s.Styles, 1)
	assert.Equal(t, "Fira Code", s.Styles[0].Font)
	assert.Equal(t, 11.5, s.Styles[0].Size)
	require.Len(t, s.Indicators, 1)
	require.NotNil(t, s.Indicators[0].FillAlpha)
	assert.Equal(t, 60, *s.Indicators[0].FillAlpha)
	assert.Equal(t, "Redo", s.Keys["Ctrl+Shift+Z"])
}

func TestLoadYAML(t *testing.T) {
	l := NewLoaderWithFS(MapFS{"settings.yaml": []byte(sampleYAML)})

	s, err := l.Load("settings.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Editor.TabWidth)
	assert.Equal(t, "l2r", s.Editor.Bidirectional)
	require.Len(t, s.Styles, 1)
	require.NotNil(t, s.Styles[0].Visible)
	assert.False(t, *s.Styles[0].Visible)
	assert.Equal(t, "#ff0000", s.Elements["caret"])
}

func TestLoadMissingFile(t *testing.T) {
	s, err := NewLoaderWithFS(MapFS{}).Load("absent.toml")
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestLoadEmptyYAML(t *testing.T) {
	s, err := NewLoaderWithFS(MapFS{"empty.yaml": nil}).Load("empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, s.Styles)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		line   int
	}{
		{"toml syntax", FormatTOML, "[editor\n", 1},
		{"toml unknown key", FormatTOML, "[editor]\ntab_wdth = 4\n", 2},
		{"yaml unknown key", FormatYAML, "editor:\n  tab_wdth: 4\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("settings", tt.format, []byte(tt.data))
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "settings", pe.Path)
			if tt.line > 0 {
				assert.Equal(t, tt.line, pe.Line)
			}
			assert.Contains(t, pe.Error(), "parse error in settings")
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	inner := errors.New("bad")
	pe := &ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad", Err: inner}
	assert.Equal(t, "parse error in a.toml at line 3, column 7: bad", pe.Error())
	assert.ErrorIs(t, pe, inner)

	pe.Column = 0
	assert.Equal(t, "parse error in a.toml at line 3: bad", pe.Error())
}
