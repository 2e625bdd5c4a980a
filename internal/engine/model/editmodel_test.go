package model

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/engine/cursor"
	"github.com/dshills/hyperion/internal/engine/document"
	"github.com/dshills/hyperion/internal/engine/history"
	"github.com/dshills/hyperion/internal/log"
	"github.com/dshills/hyperion/internal/renderer/style"
)

type otherState struct {
	document.ViewStateBase
}

type panickyWatcher struct{}

func (panickyWatcher) NotifyModified(*document.Document, document.Modification) {}
func (panickyWatcher) NotifySavePoint(*document.Document, bool)                  {}
func (panickyWatcher) NotifyDeleted(*document.Document)                          { panic("watcher exploded") }

func TestNewCreatesDocument(t *testing.T) {
	m := New(nil)
	require.NotNil(t, m.Document())
	assert.Equal(t, int32(1), m.Document().RefCount())
	assert.Equal(t, 1, m.Contraction().LinesInDoc())
	assert.Equal(t, [2]buffer.Position{buffer.InvalidPosition, buffer.InvalidPosition}, m.Braces())
	assert.Equal(t, style.StyleBraceBad, m.BracesMatchStyle())
	assert.False(t, m.Hotspot().Valid())
	assert.Equal(t, buffer.InvalidPosition, m.HoverIndicatorPos())
	assert.Equal(t, WrapWidthInfinite, m.WrapWidth)
	assert.Equal(t, DefaultCaretPeriod, m.Caret.Period)
	assert.Nil(t, m.ModelState())
}

func TestNewSharesDocument(t *testing.T) {
	doc := document.New(document.WithContent("a\nb\nc"), document.WithOption(document.OptionTextLarge))
	m1 := New(doc)
	m2 := New(doc)
	assert.Equal(t, int32(2), doc.RefCount())
	assert.Equal(t, 3, m1.Contraction().LinesInDoc())
	assert.True(t, m1.Contraction().IsLarge())
	assert.NotEqual(t, m1.ID(), m2.ID())

	m1.Close()
	assert.Equal(t, int32(1), doc.RefCount())
	m1.Close()
	assert.Equal(t, int32(1), doc.RefCount(), "second close is a no-op")
	assert.True(t, m1.Closed())
	m2.Close()
	assert.Equal(t, int32(0), doc.RefCount())
}

func TestCloseDeregistersModelState(t *testing.T) {
	doc := document.New()
	doc.AddRef()
	m := New(doc, WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
	m.EnsureModelState()
	require.NotNil(t, doc.ViewState(m.ID()))

	m.Close()
	assert.Nil(t, doc.ViewState(m.ID()))
	assert.Nil(t, m.ModelState())
	assert.Equal(t, int32(1), doc.RefCount())
}

func TestCloseSwallowsPanics(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, slog.LevelDebug)
	t.Cleanup(func() { log.SetLogger(nil) })

	doc := document.New()
	doc.AddWatcher(panickyWatcher{})
	m := New(doc)

	assert.NotPanics(t, m.Close)
	assert.Contains(t, out.String(), "teardown failed")
	assert.Contains(t, out.String(), "watcher exploded")
}

func TestBidirectional(t *testing.T) {
	tests := []struct {
		name     string
		bidi     Bidirectional
		codePage int
		enabled  bool
		r2l      bool
	}{
		{"disabled utf8", BidiDisabled, document.CpUTF8, false, false},
		{"l2r utf8", BidiL2R, document.CpUTF8, true, false},
		{"r2l utf8", BidiR2L, document.CpUTF8, true, true},
		{"r2l single byte", BidiR2L, document.CpSingleByte, false, true},
		{"l2r dbcs", BidiL2R, 932, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(document.New(document.WithCodePage(tt.codePage)), WithBidirectional(tt.bidi))
			defer m.Close()
			assert.Equal(t, tt.enabled, m.BidirectionalEnabled())
			assert.Equal(t, tt.r2l, m.BidirectionalR2L())
			mode := m.CurrentSurfaceMode()
			assert.Equal(t, tt.codePage, mode.CodePage)
			assert.Equal(t, tt.r2l, mode.BidiR2L)
		})
	}
}

func TestEnsureModelState(t *testing.T) {
	t.Run("disabled does nothing", func(t *testing.T) {
		m := New(nil)
		m.EnsureModelState()
		assert.Nil(t, m.ModelState())
		assert.Equal(t, 0, m.Document().ViewStates())
	})

	t.Run("creates and registers once", func(t *testing.T) {
		m := New(nil, WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
		m.EnsureModelState()
		ms := m.ModelState()
		require.NotNil(t, ms)
		assert.Same(t, ms, m.Document().ViewState(m.ID()))

		m.EnsureModelState()
		assert.Same(t, ms, m.ModelState())
	})

	t.Run("adopts registered state", func(t *testing.T) {
		doc := document.New()
		id := document.NewViewID()
		existing := history.NewModelState()
		doc.SetViewState(id, existing)

		m := New(doc, WithViewID(id), WithUndoSelectionHistory(UndoSelectionHistoryScroll))
		m.EnsureModelState()
		assert.Same(t, existing, m.ModelState())
	})

	t.Run("replaces foreign state", func(t *testing.T) {
		doc := document.New()
		id := document.NewViewID()
		doc.SetViewState(id, &otherState{})

		m := New(doc, WithViewID(id), WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
		m.EnsureModelState()
		require.NotNil(t, m.ModelState())
		assert.Same(t, m.ModelState(), doc.ViewState(id))
	})
}

func TestChangeUndoSelectionHistory(t *testing.T) {
	m := New(nil, WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
	m.EnsureModelState()
	require.NotNil(t, m.ModelState())

	m.ChangeUndoSelectionHistory(UndoSelectionHistoryDisabled)
	assert.Nil(t, m.ModelState())
	assert.Nil(t, m.Document().ViewState(m.ID()))

	m.ChangeUndoSelectionHistory(UndoSelectionHistoryEnabled)
	assert.Nil(t, m.ModelState(), "enabling is lazy")
	m.EnsureModelState()
	assert.NotNil(t, m.ModelState())
	assert.Equal(t, "enabled", m.UndoSelectionHistory().String())
}

func TestSelectionRestoredFromHistory(t *testing.T) {
	doc := document.New()
	m := New(doc, WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
	defer m.Close()
	m.EnsureModelState()
	ms := m.ModelState()
	require.NotNil(t, ms)

	sel := cursor.NewSelectionFrom(cursor.NewCaretRange(10))
	ms.RememberSelectionForUndo(3, sel)
	ms.RememberSelectionOntoStack(4, 2)

	got := ms.SelectionFromStack(4, history.Undo)
	assert.True(t, got.Selection.Equal(sel))
	assert.Equal(t, 2, got.TopLine)
}

func TestReplaceDocument(t *testing.T) {
	first := document.New()
	m := New(first, WithUndoSelectionHistory(UndoSelectionHistoryEnabled))
	m.EnsureModelState()
	m.Sel.SetSelection(cursor.NewCaretRange(0))
	m.SetBraces(1, 2, style.StyleBraceLight)

	second := document.New(document.WithContent("x\ny"))
	m.ReplaceDocument(second)
	assert.Equal(t, int32(0), first.RefCount())
	assert.Equal(t, 0, first.ViewStates())
	assert.Same(t, second, m.Document())
	assert.Equal(t, int32(1), second.RefCount())
	assert.Equal(t, 2, m.Contraction().LinesInDoc())
	assert.Nil(t, m.ModelState())
	assert.Equal(t, buffer.InvalidPosition, m.Braces()[0])

	m.ReplaceDocument(second)
	assert.Equal(t, int32(1), second.RefCount(), "same document is a no-op")

	m.ReplaceDocument(nil)
	assert.Equal(t, int32(0), second.RefCount())
	assert.NotNil(t, m.Document())
}

func TestFoldDisplayText(t *testing.T) {
	m := New(document.New(document.WithContent("a\nb\nc")))
	m.SetDefaultFoldDisplayText("...")
	m.Contraction().SetExpanded(0, false)

	_, ok := m.GetFoldDisplayText(0)
	assert.False(t, ok, "hidden style shows nothing")

	m.FoldDisplayTextStyle = FoldDisplayTextBoxed
	text, ok := m.GetFoldDisplayText(0)
	assert.True(t, ok)
	assert.Equal(t, "...", text)

	m.Contraction().SetFoldDisplayText(0, "{3 lines}")
	text, _ = m.GetFoldDisplayText(0)
	assert.Equal(t, "{3 lines}", text)

	_, ok = m.GetFoldDisplayText(1)
	assert.False(t, ok, "expanded lines show nothing")

	m.SetDefaultFoldDisplayText("")
	m.Contraction().SetExpanded(1, false)
	_, ok = m.GetFoldDisplayText(1)
	assert.False(t, ok)
	assert.Equal(t, "", m.DefaultFoldDisplayText())
}

func TestLineEndInSelection(t *testing.T) {
	m := New(document.New(document.WithContent("ab\ncd\nef")))
	m.Sel.SetSelection(cursor.NewSelectionRange(4, 1))

	assert.Equal(t, cursor.InSelectionMain, m.LineEndInSelection(0))
	assert.Equal(t, cursor.InSelectionNone, m.LineEndInSelection(1))
}

func TestSettersReportChange(t *testing.T) {
	m := New(nil)
	assert.True(t, m.SetBraces(3, 8, style.StyleBraceLight))
	assert.False(t, m.SetBraces(3, 8, style.StyleBraceLight))
	assert.Equal(t, [2]buffer.Position{3, 8}, m.Braces())

	assert.True(t, m.SetHoverIndicatorPos(5))
	assert.False(t, m.SetHoverIndicatorPos(5))

	m.SetHotspot(buffer.NewRangeSpan(2, 6))
	assert.Equal(t, 4, m.Hotspot().Length())

	m.SetRepresentation("\t", "→")
	v, ok := m.Representation("\t")
	assert.True(t, ok)
	assert.Equal(t, "→", v)
	m.ClearRepresentation("\t")
	_, ok = m.Representation("\t")
	assert.False(t, ok)
	m.SetRepresentation("\x00", "NUL")
	m.ClearAllRepresentations()
	_, ok = m.Representation("\x00")
	assert.False(t, ok)
}

func TestParseUndoSelectionHistory(t *testing.T) {
	for _, s := range []string{"disabled", "enabled", "scroll"} {
		got, ok := ParseUndoSelectionHistory(s)
		assert.True(t, ok)
		assert.Equal(t, s, got.String())
	}
	_, ok := ParseUndoSelectionHistory("sometimes")
	assert.False(t, ok)
	assert.Equal(t, "r2l", BidiR2L.String())
}
