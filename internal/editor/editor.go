package editor

import (
	"errors"

	"github.com/dshills/hyperion/internal/config"
	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/engine/cursor"
	"github.com/dshills/hyperion/internal/engine/document"
	"github.com/dshills/hyperion/internal/engine/history"
	"github.com/dshills/hyperion/internal/engine/model"
	"github.com/dshills/hyperion/internal/input/keymap"
	"github.com/dshills/hyperion/internal/log"
	"github.com/dshills/hyperion/internal/renderer/style"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// Editor is the host-facing state of one view.
type Editor struct {
	model   *model.EditModel
	vs      *style.ViewStyle
	keys    *keymap.KeyMap
	surface surface.Surface

	initialDoc *document.Document
	modelOpts  []model.Option

	topLine   int
	tabWidth  int
	pageLines int
	clip      string
	closed    bool
}

// New creates an editor. Without WithDocument it shows a new document.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabWidth:  DefaultTabWidth,
		pageLines: DefaultPageLines,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.vs == nil {
		e.vs = style.New()
	}
	if e.keys == nil {
		e.keys = keymap.New()
	}

	e.model = model.New(e.initialDoc, e.modelOpts...)
	e.initialDoc = nil
	e.attach()
	return e
}

func (e *Editor) attach() {
	doc := e.model.Document()
	doc.AddWatcher(e)
	e.model.EnsureModelState()
	log.Debug(log.CatEditor, "view attached", "view", e.model.ID().String(), "lines", doc.LinesTotal())
}

// Model returns the view's editing state.
func (e *Editor) Model() *model.EditModel { return e.model }

// Document returns the document shown.
func (e *Editor) Document() *document.Document { return e.model.Document() }

// ViewStyle returns the view's style table.
func (e *Editor) ViewStyle() *style.ViewStyle { return e.vs }

// KeyMap returns the view's key bindings.
func (e *Editor) KeyMap() *keymap.KeyMap { return e.keys }

// TabWidth returns the tab width in characters.
func (e *Editor) TabWidth() int { return e.tabWidth }

// SetTabWidth sets the tab width. Values below 1 are ignored.
func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

// SetPageLines sets how many lines PageUp and PageDown move.
func (e *Editor) SetPageLines(n int) {
	if n > 0 {
		e.pageLines = n
	}
}

// TopLine returns the first display line shown.
func (e *Editor) TopLine() int { return e.topLine }

// SetTopLine scrolls so that line is the first display line, clamped to
// the lines displayed.
func (e *Editor) SetTopLine(line int) {
	last := e.model.Contraction().LinesDisplayed() - 1
	e.topLine = min(max(line, 0), max(last, 0))
}

// Closed reports whether Close has been called.
func (e *Editor) Closed() bool { return e.closed }

// Close detaches from the document and releases it. Further calls do
// nothing.
func (e *Editor) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.Document().RemoveWatcher(e)
	e.model.Close()
	log.Debug(log.CatEditor, "view closed", "view", e.model.ID().String())
}

// SetDocument shows doc, or a new document when doc is nil. Selection,
// scroll position and selection history start afresh.
func (e *Editor) SetDocument(doc *document.Document) {
	old := e.Document()
	if doc != nil && doc == old && !e.closed {
		return
	}
	old.RemoveWatcher(e)
	e.model.ReplaceDocument(doc)
	e.closed = false
	e.topLine = 0
	e.attach()
}

// Refresh realises fonts for the current zoom on the editor's surface. It
// does nothing without a surface.
func (e *Editor) Refresh() {
	if e.surface == nil {
		return
	}
	e.surface.SetMode(e.model.CurrentSurfaceMode())
	e.vs.Refresh(e.surface, e.tabWidth)
}

// ApplySettings pushes s into the view. Every invalid setting is reported;
// the valid ones take effect.
func (e *Editor) ApplySettings(s *config.Settings) error {
	errView := config.ApplyViewStyle(e.vs, s)
	errKeys := config.ApplyKeyMap(e.keys, s)
	errModel := config.ApplyEditModel(e.model, s)
	if s.Editor.TabWidth > 0 {
		e.tabWidth = s.Editor.TabWidth
	}
	e.model.EnsureModelState()
	e.Refresh()

	err := errors.Join(errView, errKeys, errModel)
	if err != nil {
		log.ErrorErr(log.CatEditor, "settings partly applied", err)
	}
	return err
}

// WatchSettings applies the file at path now and whenever it changes.
// Reloads arrive on the watcher goroutine; post must run the function it is
// given on the editing goroutine.
func (e *Editor) WatchSettings(path string, post func(func()), opts ...config.WatcherOption) (*config.Watcher, error) {
	s, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	if err := e.ApplySettings(s); err != nil {
		log.Warn(log.CatEditor, "initial settings had errors", "path", path)
	}
	return config.NewWatcher(path, func(s *config.Settings) {
		post(func() {
			if e.closed {
				return
			}
			_ = e.ApplySettings(s)
		})
	}, opts...)
}

// NotifyModified keeps the view in step with the document.
func (e *Editor) NotifyModified(doc *document.Document, m document.Modification) {
	if e.closed {
		return
	}
	switch {
	case m.Type.Has(document.ModBeforeInsert | document.ModBeforeDelete):
		if m.Type.Has(document.ModStartAction) && !m.Type.Has(document.ModUndo|document.ModRedo) {
			e.rememberSelectionForStep(doc)
		}

	case m.Type.Has(document.ModInsertText | document.ModDeleteText):
		insertion := m.Type.Has(document.ModInsertText)
		e.model.Sel.MovePositions(insertion, m.Position, m.Length)
		if m.LinesAdded != 0 {
			e.linesChanged(doc, m.Position, m.LinesAdded)
		}
		if m.Type.Has(document.ModUser) {
			if ms := e.model.ModelState(); ms != nil {
				ms.RememberSelectionOntoStack(doc.UndoCurrent(), e.topLine)
			}
		}
	}
}

// NotifySavePoint is part of document.Watcher.
func (e *Editor) NotifySavePoint(_ *document.Document, atSavePoint bool) {
	log.Debug(log.CatEditor, "save point", "view", e.model.ID().String(), "at", atSavePoint)
}

// NotifyDeleted is part of document.Watcher.
func (e *Editor) NotifyDeleted(*document.Document) {
	log.Debug(log.CatEditor, "document deleted", "view", e.model.ID().String())
}

// rememberSelectionForStep notes the selection before a new undo step. A
// step after an undo discards the history that redo would have used.
func (e *Editor) rememberSelectionForStep(doc *document.Document) {
	e.model.EnsureModelState()
	ms := e.model.ModelState()
	if ms == nil {
		return
	}
	if doc.CanRedo() {
		ms.TruncateUndo(doc.UndoCurrent() + 1)
	}
	ms.RememberSelectionForUndo(doc.UndoCurrent(), e.model.Sel)
}

// linesChanged updates fold state and the top line for added or removed
// lines.
func (e *Editor) linesChanged(doc *document.Document, pos buffer.Position, added int) {
	cs := e.model.Contraction()
	line := doc.LineFromPosition(pos)
	if pos > doc.LineStart(line) {
		line++
	}
	if added > 0 {
		cs.InsertLines(line, added)
	} else {
		cs.DeleteLines(line, -added)
	}
	if cs.DisplayFromDoc(line) < e.topLine {
		e.SetTopLine(e.topLine + added)
	}
}

// Undo reverts the last step and restores the selection recorded before it.
func (e *Editor) Undo() {
	doc := e.Document()
	if e.closed || !doc.CanUndo() {
		return
	}
	ms := e.model.ModelState()
	index := doc.UndoCurrent()
	if ms != nil {
		ms.RememberSelectionForRedoOntoStack(index, e.model.Sel, e.topLine)
	}
	pos := doc.Undo()
	e.restoreSelection(ms, index, history.Undo, pos)
}

// Redo reapplies the next step and restores the selection recorded when it
// was undone.
func (e *Editor) Redo() {
	doc := e.Document()
	if e.closed || !doc.CanRedo() {
		return
	}
	ms := e.model.ModelState()
	index := doc.UndoCurrent() + 1
	pos := doc.Redo()
	e.restoreSelection(ms, index, history.Redo, pos)
}

func (e *Editor) restoreSelection(ms *history.ModelState, index int, which history.UndoRedo, pos buffer.Position) {
	if ms != nil {
		defer ms.ForgetSelectionForUndo()
		if sws := ms.SelectionFromStack(index, which); !sws.Empty() {
			e.model.Sel = sws.Selection
			if e.model.UndoSelectionHistory() == model.UndoSelectionHistoryScroll {
				e.SetTopLine(sws.TopLine)
			}
			return
		}
	}
	if pos != buffer.InvalidPosition {
		e.SetEmptySelection(pos)
	}
}

// BeginUndoAction starts a group of modifications that undo as one step.
func (e *Editor) BeginUndoAction() { e.Document().BeginUndoAction() }

// EndUndoAction closes the innermost group.
func (e *Editor) EndUndoAction() { e.Document().EndUndoAction() }

// Selection returns a copy of the current selection.
func (e *Editor) Selection() cursor.Selection { return e.model.Sel.Clone() }

// SetSelection selects from anchor to caret.
func (e *Editor) SetSelection(caret, anchor buffer.Position) {
	doc := e.Document()
	e.model.Sel.SetSelection(cursor.NewSelectionRange(doc.ClampPosition(caret), doc.ClampPosition(anchor)))
}

// SetEmptySelection places a single caret at pos.
func (e *Editor) SetEmptySelection(pos buffer.Position) {
	e.SetSelection(pos, pos)
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.SetSelection(e.Document().Length(), 0)
}

// SelectionString serialises the selection for later RestoreSelection.
func (e *Editor) SelectionString() string { return e.model.Sel.String() }

// RestoreSelection parses text from SelectionString, clamping positions to
// the document.
func (e *Editor) RestoreSelection(text string) error {
	sel, err := cursor.Parse(text)
	if err != nil {
		return err
	}
	if sel.IsZero() {
		return nil
	}
	doc := e.Document()
	for i, r := range sel.Ranges() {
		r.Caret.Position = doc.ClampPosition(r.Caret.Position)
		r.Anchor.Position = doc.ClampPosition(r.Anchor.Position)
		sel.SetRange(i, r)
	}
	e.model.Sel = sel
	return nil
}

// BraceHighlight highlights the brace at or before the main caret and its
// match. It returns the two positions, either of which may be
// buffer.InvalidPosition.
func (e *Editor) BraceHighlight() (buffer.Position, buffer.Position) {
	doc := e.Document()
	caret := e.model.Sel.MainCaret()
	pos := buffer.InvalidPosition
	switch {
	case caret < doc.Length() && document.IsBrace(doc.CharAt(caret)):
		pos = caret
	case caret > 0 && document.IsBrace(doc.CharAt(caret-1)):
		pos = caret - 1
	}
	if pos == buffer.InvalidPosition {
		e.model.SetBraces(buffer.InvalidPosition, buffer.InvalidPosition, style.StyleBraceLight)
		return buffer.InvalidPosition, buffer.InvalidPosition
	}
	match := doc.BraceMatch(pos)
	if match == buffer.InvalidPosition {
		e.model.SetBraces(pos, buffer.InvalidPosition, style.StyleBraceBad)
	} else {
		e.model.SetBraces(pos, match, style.StyleBraceLight)
	}
	return pos, match
}
