package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hyperion/internal/engine/buffer"
)

type recordingWatcher struct {
	mods       []Modification
	savePoints []bool
	deleted    int
}

func (w *recordingWatcher) NotifyModified(_ *Document, m Modification) {
	w.mods = append(w.mods, m)
}

func (w *recordingWatcher) NotifySavePoint(_ *Document, atSavePoint bool) {
	w.savePoints = append(w.savePoints, atSavePoint)
}

func (w *recordingWatcher) NotifyDeleted(*Document) {
	w.deleted++
}

func (w *recordingWatcher) types() []ModificationFlags {
	out := make([]ModificationFlags, len(w.mods))
	for i, m := range w.mods {
		out[i] = m.Type
	}
	return out
}

type testState struct {
	ViewStateBase
	n int
}

func TestNewDocument(t *testing.T) {
	d := New(WithContent("one\ntwo"))
	assert.Equal(t, 7, d.Length())
	assert.Equal(t, 2, d.LinesTotal())
	assert.Equal(t, 4, d.LineStart(1))
	assert.Equal(t, 3, d.LineEnd(0))
	assert.Equal(t, 1, d.LineFromPosition(5))
	assert.Equal(t, "two", d.TextRange(4, 7))
	assert.Equal(t, byte('o'), d.CharAt(0))
	assert.Equal(t, int32(0), d.RefCount())
	assert.True(t, d.IsMultiByte())
	assert.True(t, d.HasStyles())
	assert.False(t, d.IsLarge())
	assert.False(t, d.CanUndo(), "initial content is not undoable")
	assert.True(t, d.IsSavePoint())

	large := New(WithOption(OptionTextLarge|OptionStylesNone), WithCodePage(CpSingleByte))
	assert.True(t, large.IsLarge())
	assert.False(t, large.HasStyles())
	assert.False(t, large.IsMultiByte())
	assert.Equal(t, 1, large.LinesTotal())
}

func TestReferenceCounting(t *testing.T) {
	d := New()
	w := &recordingWatcher{}
	d.AddWatcher(w)
	id := NewViewID()

	assert.Equal(t, int32(1), d.AddRef())
	assert.Equal(t, int32(2), d.AddRef())
	d.SetViewState(id, &testState{n: 1})

	assert.Equal(t, int32(1), d.Release())
	assert.Equal(t, 0, w.deleted)
	assert.Equal(t, 1, d.ViewStates())

	assert.Equal(t, int32(0), d.Release())
	assert.Equal(t, 1, w.deleted)
	assert.Equal(t, 0, d.ViewStates())
}

func TestViewRegistry(t *testing.T) {
	d := New()
	a, b := NewViewID(), NewViewID()
	require.NotEqual(t, a, b)

	assert.Nil(t, d.ViewState(a))
	d.SetViewState(a, &testState{n: 7})

	st, ok := d.ViewState(a).(*testState)
	require.True(t, ok)
	assert.Equal(t, 7, st.n)
	assert.Nil(t, d.ViewState(b))

	d.SetViewState(a, nil)
	assert.Nil(t, d.ViewState(a))
}

func TestTypingCoalesces(t *testing.T) {
	d := New()
	for i, s := range []string{"a", "b", "c"} {
		_, err := d.InsertString(i, s)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, d.UndoCurrent())
	assert.Equal(t, 1, d.UndoSteps())

	assert.Equal(t, 0, d.Undo())
	assert.Equal(t, "", d.Text())
	assert.Equal(t, 0, d.UndoCurrent())

	assert.Equal(t, 3, d.Redo())
	assert.Equal(t, "abc", d.Text())
	assert.Equal(t, 1, d.UndoCurrent())
}

func TestStepBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		edits func(d *Document)
		steps int
	}{
		{
			name: "insert before previous",
			edits: func(d *Document) {
				_, _ = d.InsertString(0, "a")
				_, _ = d.InsertString(0, "b")
			},
			steps: 2,
		},
		{
			name: "multi-byte insert never coalesces",
			edits: func(d *Document) {
				_, _ = d.InsertString(0, "hello")
				_, _ = d.InsertString(5, "x")
			},
			steps: 2,
		},
		{
			name: "insert then delete",
			edits: func(d *Document) {
				_, _ = d.InsertString(0, "a")
				_ = d.DeleteChars(0, 1)
			},
			steps: 2,
		},
		{
			name: "save point splits typing",
			edits: func(d *Document) {
				_, _ = d.InsertString(0, "a")
				d.SetSavePoint()
				_, _ = d.InsertString(1, "b")
			},
			steps: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			tt.edits(d)
			assert.Equal(t, tt.steps, d.UndoCurrent())
		})
	}
}

func TestBackspaceCoalesces(t *testing.T) {
	d := New(WithContent("abcd"))
	require.NoError(t, d.DeleteChars(3, 1))
	require.NoError(t, d.DeleteChars(2, 1))
	assert.Equal(t, "ab", d.Text())
	assert.Equal(t, 1, d.UndoCurrent())

	assert.Equal(t, 4, d.Undo())
	assert.Equal(t, "abcd", d.Text())
}

func TestUndoGroups(t *testing.T) {
	d := New()
	d.BeginUndoAction()
	_, _ = d.InsertString(0, "x")
	_, _ = d.InsertString(1, "yy")
	d.BeginUndoAction()
	require.NoError(t, d.DeleteChars(0, 1))
	d.EndUndoAction()
	assert.True(t, d.InUndoAction())
	d.EndUndoAction()
	assert.False(t, d.InUndoAction())
	assert.Equal(t, 1, d.UndoCurrent())

	_, _ = d.InsertString(2, "z")
	assert.Equal(t, 2, d.UndoCurrent(), "typing after a group starts a new step")

	d.EndUndoAction()
	assert.False(t, d.InUndoAction(), "unbalanced end is ignored")

	d.Undo()
	d.Undo()
	assert.Equal(t, "", d.Text())
}

func TestTransaction(t *testing.T) {
	d := New()
	boom := errors.New("boom")
	err := d.Transaction("fill", func() error {
		_, _ = d.InsertString(0, "ab")
		_, _ = d.InsertString(2, "cd")
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "abcd", d.Text())
	assert.Equal(t, 1, d.UndoCurrent())
	assert.False(t, d.InUndoAction())

	g := d.UndoGroup("scope")
	_, _ = d.InsertString(4, "e")
	g.End()
	g.End()
	assert.False(t, d.InUndoAction())
	assert.Equal(t, 2, d.UndoCurrent())
}

func TestModificationNotifications(t *testing.T) {
	d := New()
	w := &recordingWatcher{}
	d.AddWatcher(w)
	d.AddWatcher(w)

	_, err := d.InsertString(0, "a\nb")
	require.NoError(t, err)
	require.Len(t, w.mods, 2)
	assert.Equal(t, []ModificationFlags{
		ModBeforeInsert | ModUser | ModStartAction,
		ModInsertText | ModUser | ModStartAction,
	}, w.types())
	assert.Equal(t, 1, w.mods[1].LinesAdded)
	assert.Equal(t, "a\nb", w.mods[1].Text)

	_, _ = d.InsertString(3, "c")
	assert.Equal(t, ModInsertText|ModUser|ModStartAction, w.mods[3].Type, "a multi-byte step never coalesces")

	w.mods = nil
	d.Undo()
	assert.Equal(t, []ModificationFlags{
		ModBeforeDelete | ModUndo | ModLastStepInUndoRedo,
		ModDeleteText | ModUndo | ModLastStepInUndoRedo,
	}, w.types())

	w.mods = nil
	d.Undo()
	assert.Equal(t, -1, w.mods[1].LinesAdded)

	assert.True(t, d.RemoveWatcher(w))
	assert.False(t, d.RemoveWatcher(w))
	w.mods = nil
	d.Redo()
	assert.Empty(t, w.mods)
}

func TestModificationFlagsString(t *testing.T) {
	assert.Equal(t, "InsertText|User", (ModInsertText | ModUser).String())
	assert.Equal(t, "None", ModificationFlags(0).String())
	assert.True(t, (ModUndo | ModRedo).Has(ModRedo))
	assert.False(t, ModUser.Has(ModUndo|ModRedo))
}

func TestEditAfterUndoDropsRedo(t *testing.T) {
	d := New()
	_, _ = d.InsertString(0, "a")
	d.Undo()
	require.True(t, d.CanRedo())

	_, _ = d.InsertString(0, "b")
	assert.False(t, d.CanRedo())
	assert.Equal(t, 1, d.UndoSteps())
	assert.Equal(t, buffer.InvalidPosition, d.Redo())
}

func TestSavePoint(t *testing.T) {
	d := New()
	w := &recordingWatcher{}
	d.AddWatcher(w)

	_, _ = d.InsertString(0, "a")
	assert.False(t, d.IsSavePoint())
	d.Undo()
	assert.True(t, d.IsSavePoint())
	d.Redo()
	d.SetSavePoint()
	assert.Equal(t, []bool{false, true, false, true}, w.savePoints)

	d.EmptyUndoBuffer()
	assert.True(t, d.IsSavePoint())
	assert.False(t, d.CanUndo())
}

func TestModificationErrors(t *testing.T) {
	d := New(WithContent("abc"))

	_, err := d.InsertString(4, "x")
	assert.ErrorIs(t, err, buffer.ErrPositionOutOfRange)
	assert.ErrorIs(t, d.DeleteChars(2, 5), buffer.ErrPositionOutOfRange)
	assert.ErrorIs(t, d.DeleteChars(0, -1), buffer.ErrLengthNegative)

	d.SetReadOnly(true)
	_, err = d.InsertString(0, "x")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, d.DeleteChars(0, 1), ErrReadOnly)
	assert.Equal(t, "abc", d.Text())
}

type reentrantWatcher struct {
	recordingWatcher
	err error
}

func (w *reentrantWatcher) NotifyModified(doc *Document, m Modification) {
	if m.Type.Has(ModInsertText) && w.err == nil {
		_, w.err = doc.InsertString(0, "!")
	}
}

func TestReentrantModification(t *testing.T) {
	d := New()
	w := &reentrantWatcher{}
	d.AddWatcher(w)
	_, err := d.InsertString(0, "a")
	require.NoError(t, err)
	assert.ErrorIs(t, w.err, ErrReentrantModification)
	assert.Equal(t, "a", d.Text())
}

func TestUndoCollectionOff(t *testing.T) {
	d := New(WithUndoCollection(false))
	w := &recordingWatcher{}
	d.AddWatcher(w)
	_, _ = d.InsertString(0, "a")
	assert.False(t, d.CanUndo())
	assert.False(t, w.mods[0].Type.Has(ModStartAction))

	d.SetUndoCollection(true)
	assert.True(t, d.IsCollectingUndo())
	_, _ = d.InsertString(1, "b")
	assert.True(t, d.CanUndo())
}

func TestLoader(t *testing.T) {
	l := NewLoader(OptionDefault, CpUTF8)
	done := make(chan struct {
		doc *Document
		err error
	})
	go func() {
		for _, chunk := range []string{"first\n", "second\n", "third"} {
			if err := l.AddData([]byte(chunk)); err != nil {
				done <- struct {
					doc *Document
					err error
				}{nil, err}
				return
			}
		}
		doc, err := l.ConvertToDocument()
		done <- struct {
			doc *Document
			err error
		}{doc, err}
	}()
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "first\nsecond\nthird", res.doc.Text())
	assert.Equal(t, 3, res.doc.LinesTotal())
	assert.False(t, res.doc.CanUndo())
	assert.True(t, res.doc.IsSavePoint())

	_, err := l.ConvertToDocument()
	assert.ErrorIs(t, err, ErrLoaderConsumed)
	assert.ErrorIs(t, l.AddData([]byte("x")), ErrLoaderConsumed)

	released := NewLoader(OptionTextLarge, CpUTF8)
	require.NoError(t, released.AddData([]byte("abc")))
	assert.Equal(t, 3, released.Length())
	released.Release()
	assert.ErrorIs(t, released.AddData([]byte("x")), ErrLoaderReleased)
	_, err = released.ConvertToDocument()
	assert.ErrorIs(t, err, ErrLoaderReleased)
}

func TestBraceMatch(t *testing.T) {
	d := New(WithContent("a(b[c]d)e<(>"))
	tests := []struct {
		pos  buffer.Position
		want buffer.Position
	}{
		{1, 7},
		{7, 1},
		{3, 5},
		{5, 3},
		{0, buffer.InvalidPosition},
		{10, buffer.InvalidPosition},
		{9, 11},
		{-1, buffer.InvalidPosition},
		{99, buffer.InvalidPosition},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.BraceMatch(tt.pos), "pos %d", tt.pos)
	}

	styled := New(WithContent("(a)b)"))
	styled.SetStyleFor(2, 1, 5)
	assert.Equal(t, 4, styled.BraceMatch(0), "a brace in another style is skipped")
	assert.True(t, IsBrace('{'))
	assert.False(t, IsBrace('a'))
}

func TestRangeProtected(t *testing.T) {
	d := New(WithContent("abcdef"))
	w := &recordingWatcher{}
	d.AddWatcher(w)
	assert.True(t, d.SetStyleFor(2, 2, 7))
	assert.False(t, d.SetStyleFor(2, 2, 7))
	require.Len(t, w.mods, 1)
	assert.True(t, w.mods[0].Type.Has(ModChangeStyle))

	protected := func(style byte) bool { return style == 7 }
	assert.False(t, d.RangeProtected(0, 2, protected))
	assert.True(t, d.RangeProtected(1, 3, protected))
	assert.True(t, d.RangeProtected(3, 3, protected))
	assert.False(t, d.RangeProtected(2, 2, protected))
	assert.False(t, d.RangeProtected(1, 3, nil))
}

type undoProbe struct {
	recordingWatcher
	before []int
}

func (w *undoProbe) NotifyModified(doc *Document, m Modification) {
	if m.Type.Has(ModBeforeInsert | ModBeforeDelete) {
		w.before = append(w.before, doc.UndoCurrent())
	}
}

func TestBeforeNotificationSeesPriorHistory(t *testing.T) {
	d := New()
	w := &undoProbe{}
	d.AddWatcher(w)

	_, _ = d.InsertString(0, "ab")
	_, _ = d.InsertString(2, "cd")
	d.Undo()
	require.True(t, d.CanRedo())
	_ = d.DeleteChars(0, 1)

	assert.Equal(t, []int{0, 1, 1, 1}, w.before)
	assert.False(t, d.CanRedo())
}
