package model

import (
	"fmt"

	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/engine/contraction"
	"github.com/dshills/hyperion/internal/engine/cursor"
	"github.com/dshills/hyperion/internal/engine/document"
	"github.com/dshills/hyperion/internal/engine/history"
	"github.com/dshills/hyperion/internal/log"
	"github.com/dshills/hyperion/internal/renderer/style"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// EditModel is the editing state of one view.
type EditModel struct {
	id         document.ViewID
	doc        *document.Document
	docOptions []document.Option
	cs         *contraction.State
	closed     bool

	undoSelectionHistory UndoSelectionHistory
	modelState           *history.ModelState

	// Sel is the current selection.
	Sel   cursor.Selection
	Caret Caret

	InOverstrike         bool
	XOffset              int
	TrackLineWidth       bool
	PosDrag              cursor.SelectionPosition
	HighlightGuideColumn int
	HasFocus             bool
	PrimarySelection     bool
	IMEInteraction       IMEInteraction
	Bidirectional        Bidirectional
	FoldFlags            FoldFlag
	FoldDisplayTextStyle FoldDisplayTextStyle
	HotspotSingleLine    bool
	WrapWidth            int

	braces            [2]buffer.Position
	bracesMatchStyle  int
	hotspot           buffer.Range
	hoverIndicatorPos buffer.Position

	defaultFoldDisplayText string
	representations        map[string]string
}

// New creates an EditModel showing doc. When doc is nil a new document is
// created and owned by the model. The model takes a reference on the
// document; Close releases it.
func New(doc *document.Document, opts ...Option) *EditModel {
	m := &EditModel{
		id:                   document.NewViewID(),
		Sel:                  cursor.NewSelection(),
		Caret:                Caret{Period: DefaultCaretPeriod},
		PosDrag:              cursor.NewSelectionPosition(buffer.InvalidPosition),
		PrimarySelection:     true,
		IMEInteraction:       IMEWindowed,
		Bidirectional:        BidiDisabled,
		FoldDisplayTextStyle: FoldDisplayTextHidden,
		HotspotSingleLine:    true,
		WrapWidth:            WrapWidthInfinite,
		braces:               [2]buffer.Position{buffer.InvalidPosition, buffer.InvalidPosition},
		bracesMatchStyle:     style.StyleBraceBad,
		hotspot:              buffer.NewRange(buffer.InvalidPosition),
		hoverIndicatorPos:    buffer.InvalidPosition,
		representations:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	if doc == nil {
		doc = document.New(m.docOptions...)
	}
	m.attach(doc)
	return m
}

func (m *EditModel) attach(doc *document.Document) {
	m.doc = doc
	doc.AddRef()
	m.cs = contraction.New(doc.LinesTotal(), doc.IsLarge())
	log.Debug(log.CatModel, "document attached", "view", m.id.String(), "refs", doc.RefCount())
}

// ID returns the identity of this view in the document registry.
func (m *EditModel) ID() document.ViewID {
	return m.id
}

// Document returns the document shown.
func (m *EditModel) Document() *document.Document {
	return m.doc
}

// Contraction returns the fold state, sized to the document.
func (m *EditModel) Contraction() *contraction.State {
	return m.cs
}

// Closed reports whether Close has been called.
func (m *EditModel) Closed() bool {
	return m.closed
}

// Close removes this view's registry entry and releases the document.
// Failures are logged, never propagated. Calling Close again does nothing.
func (m *EditModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.detach()
}

func (m *EditModel) detach() {
	doc := m.doc
	m.modelState = nil
	guard("deregister view state", func() {
		doc.SetViewState(m.id, nil)
	})
	guard("release document", func() {
		doc.Release()
	})
}

// guard runs fn, logging instead of propagating a panic.
func guard(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatModel, "teardown failed", "step", step, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// ReplaceDocument switches the model to doc, or to a new document when doc
// is nil. The old document is deregistered and released first. Selection,
// fold state and selection history start afresh.
func (m *EditModel) ReplaceDocument(doc *document.Document) {
	if doc != nil && doc == m.doc && !m.closed {
		return
	}
	if !m.closed {
		m.detach()
	}
	if doc == nil {
		doc = document.New(m.docOptions...)
	}
	m.attach(doc)
	m.closed = false
	m.Sel.Clear()
	m.braces = [2]buffer.Position{buffer.InvalidPosition, buffer.InvalidPosition}
	m.hotspot = buffer.NewRange(buffer.InvalidPosition)
	m.hoverIndicatorPos = buffer.InvalidPosition
}

// BidirectionalEnabled reports whether bidirectional handling is both
// requested and possible: it needs UTF-8 text.
func (m *EditModel) BidirectionalEnabled() bool {
	return m.Bidirectional != BidiDisabled && m.doc.CodePage() == document.CpUTF8
}

// BidirectionalR2L reports whether right-to-left was requested.
func (m *EditModel) BidirectionalR2L() bool {
	return m.Bidirectional == BidiR2L
}

// CurrentSurfaceMode returns the text mode surfaces should draw in.
func (m *EditModel) CurrentSurfaceMode() surface.Mode {
	return surface.Mode{CodePage: m.doc.CodePage(), BidiR2L: m.BidirectionalR2L()}
}

// UndoSelectionHistory returns the selection history mode.
func (m *EditModel) UndoSelectionHistory() UndoSelectionHistory {
	return m.undoSelectionHistory
}

// ModelState returns the attached selection history, or nil.
func (m *EditModel) ModelState() *history.ModelState {
	return m.modelState
}

// EnsureModelState attaches a selection history if the mode allows one and
// none is attached. An entry already in the document registry for this view
// is adopted; an entry of another kind is replaced.
func (m *EditModel) EnsureModelState() {
	if m.modelState != nil || m.undoSelectionHistory == UndoSelectionHistoryDisabled {
		return
	}
	switch vs := m.doc.ViewState(m.id).(type) {
	case *history.ModelState:
		m.modelState = vs
		return
	case nil:
	default:
		log.Debug(log.CatModel, "replacing foreign view state", "view", m.id.String(), "kind", fmt.Sprintf("%T", vs))
	}
	m.modelState = history.NewModelState()
	m.doc.SetViewState(m.id, m.modelState)
}

// ChangeUndoSelectionHistory sets the mode. Disabling drops the history
// immediately; enabling takes effect at the next EnsureModelState.
func (m *EditModel) ChangeUndoSelectionHistory(opt UndoSelectionHistory) {
	m.undoSelectionHistory = opt
	if opt == UndoSelectionHistoryDisabled {
		m.modelState = nil
		m.doc.SetViewState(m.id, nil)
	}
}

// SetDefaultFoldDisplayText sets the text shown for folded blocks without
// their own text. An empty text clears it.
func (m *EditModel) SetDefaultFoldDisplayText(text string) {
	m.defaultFoldDisplayText = text
}

// DefaultFoldDisplayText returns the default fold text.
func (m *EditModel) DefaultFoldDisplayText() string {
	return m.defaultFoldDisplayText
}

// GetFoldDisplayText returns the text to show after a folded line, and
// false when none should be shown.
func (m *EditModel) GetFoldDisplayText(lineDoc buffer.Line) (string, bool) {
	if m.FoldDisplayTextStyle == FoldDisplayTextHidden || m.cs.GetExpanded(lineDoc) {
		return "", false
	}
	if text, ok := m.cs.GetFoldDisplayText(lineDoc); ok {
		return text, true
	}
	return m.defaultFoldDisplayText, m.defaultFoldDisplayText != ""
}

// LineEndInSelection reports which selection range covers the end of lineDoc.
func (m *EditModel) LineEndInSelection(lineDoc buffer.Line) cursor.InSelection {
	posAfterLineEnd := m.doc.LineStart(lineDoc + 1)
	return m.Sel.InSelectionForEOL(posAfterLineEnd)
}

// Braces returns the highlighted brace pair.
func (m *EditModel) Braces() [2]buffer.Position {
	return m.braces
}

// BracesMatchStyle returns the style used for the brace pair.
func (m *EditModel) BracesMatchStyle() int {
	return m.bracesMatchStyle
}

// SetBraces sets the highlighted brace pair and its style. It reports
// whether anything changed.
func (m *EditModel) SetBraces(a, b buffer.Position, matchStyle int) bool {
	next := [2]buffer.Position{a, b}
	if next == m.braces && matchStyle == m.bracesMatchStyle {
		return false
	}
	m.braces = next
	m.bracesMatchStyle = matchStyle
	return true
}

// Hotspot returns the active hotspot range.
func (m *EditModel) Hotspot() buffer.Range {
	return m.hotspot
}

// SetHotspot sets the active hotspot range.
func (m *EditModel) SetHotspot(r buffer.Range) {
	m.hotspot = r
}

// HoverIndicatorPos returns the position of the hovered indicator.
func (m *EditModel) HoverIndicatorPos() buffer.Position {
	return m.hoverIndicatorPos
}

// SetHoverIndicatorPos sets the hovered indicator position and reports
// whether it changed.
func (m *EditModel) SetHoverIndicatorPos(pos buffer.Position) bool {
	if pos == m.hoverIndicatorPos {
		return false
	}
	m.hoverIndicatorPos = pos
	return true
}

// SetRepresentation shows value in place of the character sequence ch.
func (m *EditModel) SetRepresentation(ch, value string) {
	m.representations[ch] = value
}

// Representation returns the replacement shown for ch.
func (m *EditModel) Representation(ch string) (string, bool) {
	v, ok := m.representations[ch]
	return v, ok
}

// ClearRepresentation removes the replacement for ch.
func (m *EditModel) ClearRepresentation(ch string) {
	delete(m.representations, ch)
}

// ClearAllRepresentations removes every replacement.
func (m *EditModel) ClearAllRepresentations() {
	clear(m.representations)
}
