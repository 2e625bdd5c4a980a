package document

import (
	"fmt"
	"sync/atomic"

	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/log"
)

// Document is shared text with undo history, watchers and a per-view
// state registry.
type Document struct {
	cb       *buffer.CellBuffer
	refCount atomic.Int32
	options  DocumentOption
	codePage int
	initial  string
	readOnly bool

	undo         *undoHistory
	wasSavePoint bool
	entered      bool

	watchers []Watcher
	views    map[ViewID]ViewState
}

// New creates a document with a reference count of zero.
func New(opts ...Option) *Document {
	d := &Document{
		codePage: CpUTF8,
		undo:     newUndoHistory(),
		views:    make(map[ViewID]ViewState),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.cb = buffer.NewCellBuffer(d.options&OptionStylesNone == 0, d.options&OptionTextLarge != 0)
	if d.initial != "" {
		// Position 0 of an empty buffer is always valid.
		_, _ = d.cb.InsertString(0, []byte(d.initial))
		d.initial = ""
	}
	d.undo.savePoint = 0
	d.wasSavePoint = true
	return d
}

func newFromBuffer(cb *buffer.CellBuffer, options DocumentOption, codePage int) *Document {
	d := &Document{
		cb:           cb,
		options:      options,
		codePage:     codePage,
		undo:         newUndoHistory(),
		views:        make(map[ViewID]ViewState),
		wasSavePoint: true,
	}
	return d
}

// AddRef takes a reference and returns the new count.
func (d *Document) AddRef() int32 {
	return d.refCount.Add(1)
}

// Release drops a reference and returns the remaining count. When the last
// reference goes, watchers are told the document is deleted and the view
// registry is cleared.
func (d *Document) Release() int32 {
	n := d.refCount.Add(-1)
	switch {
	case n == 0:
		log.Debug(log.CatDocument, "document released", "refs", n, "views", len(d.views))
		d.notifyDeleted()
		clear(d.views)
	case n < 0:
		log.Warn(log.CatDocument, "document released too often", "refs", n)
	}
	return n
}

// RefCount returns the current reference count.
func (d *Document) RefCount() int32 {
	return d.refCount.Load()
}

// Options returns the representation options.
func (d *Document) Options() DocumentOption {
	return d.options
}

// IsLarge reports whether the document was created for large text.
func (d *Document) IsLarge() bool {
	return d.cb.IsLarge()
}

// HasStyles reports whether the document stores style bytes.
func (d *Document) HasStyles() bool {
	return d.cb.HasStyles()
}

// CodePage returns the code page.
func (d *Document) CodePage() int {
	return d.codePage
}

// SetCodePage changes the code page and reports whether it changed.
func (d *Document) SetCodePage(cp int) bool {
	if d.codePage == cp {
		return false
	}
	d.codePage = cp
	return true
}

// IsMultiByte reports whether text is stored as variable-width UTF-8.
func (d *Document) IsMultiByte() bool {
	return d.codePage == CpUTF8
}

// ReadOnly reports whether modifications are refused.
func (d *Document) ReadOnly() bool {
	return d.readOnly
}

// SetReadOnly sets whether modifications are refused.
func (d *Document) SetReadOnly(readOnly bool) {
	d.readOnly = readOnly
}

// Length returns the text length in bytes.
func (d *Document) Length() buffer.Position {
	return d.cb.Length()
}

// CharAt returns the byte at pos, or 0 outside the text.
func (d *Document) CharAt(pos buffer.Position) byte {
	return d.cb.CharAt(pos)
}

// StyleAt returns the style byte at pos.
func (d *Document) StyleAt(pos buffer.Position) byte {
	return d.cb.StyleAt(pos)
}

// TextRange returns the text in [start, end).
func (d *Document) TextRange(start, end buffer.Position) string {
	return d.cb.TextRange(start, end)
}

// Text returns the whole text.
func (d *Document) Text() string {
	return d.cb.TextRange(0, d.cb.Length())
}

// LinesTotal returns the number of lines. An empty document has one.
func (d *Document) LinesTotal() buffer.Line {
	return d.cb.Lines()
}

// LineStart returns the first position of line.
func (d *Document) LineStart(line buffer.Line) buffer.Position {
	return d.cb.LineStart(line)
}

// LineEnd returns the position before the line end of line.
func (d *Document) LineEnd(line buffer.Line) buffer.Position {
	return d.cb.LineEnd(line)
}

// LineFromPosition returns the line containing pos.
func (d *Document) LineFromPosition(pos buffer.Position) buffer.Line {
	return d.cb.LineFromPosition(pos)
}

// ClampPosition limits pos to [0, Length()].
func (d *Document) ClampPosition(pos buffer.Position) buffer.Position {
	return min(max(pos, 0), d.cb.Length())
}

// SetStyleFor sets n style bytes from pos and notifies watchers if any
// changed.
func (d *Document) SetStyleFor(pos buffer.Position, n int, style byte) bool {
	if !d.cb.SetStyleFor(pos, n, style) {
		return false
	}
	d.notifyModified(Modification{Type: ModChangeStyle | ModUser, Position: pos, Length: n})
	return true
}

// RangeProtected reports whether any style byte in [start, end) satisfies
// protected.
func (d *Document) RangeProtected(start, end buffer.Position, protected func(style byte) bool) bool {
	if !d.cb.HasStyles() || protected == nil {
		return false
	}
	start = d.ClampPosition(start)
	end = d.ClampPosition(end)
	if start == end {
		// An insertion point is protected when both neighbours are.
		return start > 0 && protected(d.cb.StyleAt(start-1)) &&
			start < d.cb.Length() && protected(d.cb.StyleAt(start))
	}
	for pos := min(start, end); pos < max(start, end); pos++ {
		if protected(d.cb.StyleAt(pos)) {
			return true
		}
	}
	return false
}

// InsertString inserts text at pos as a user modification and returns the
// number of bytes inserted.
func (d *Document) InsertString(pos buffer.Position, text string) (int, error) {
	if d.readOnly {
		return 0, ErrReadOnly
	}
	if d.entered {
		return 0, ErrReentrantModification
	}
	if pos < 0 || pos > d.cb.Length() {
		return 0, fmt.Errorf("insert at %d: %w", pos, buffer.ErrPositionOutOfRange)
	}
	if text == "" {
		return 0, nil
	}
	d.entered = true
	defer func() { d.entered = false }()

	data := []byte(text)
	a := action{kind: actionInsert, position: pos, data: data, mayCoalesce: len(data) == 1}
	flags := ModUser
	if d.undo.startsStep(a) {
		flags |= ModStartAction
	}
	d.applyInsert(pos, data, flags, &a)
	d.checkSavePoint()
	return len(data), nil
}

// DeleteChars removes n bytes at pos as a user modification.
func (d *Document) DeleteChars(pos buffer.Position, n int) error {
	if d.readOnly {
		return ErrReadOnly
	}
	if d.entered {
		return ErrReentrantModification
	}
	if n < 0 {
		return fmt.Errorf("delete %d at %d: %w", n, pos, buffer.ErrLengthNegative)
	}
	if pos < 0 || pos+n > d.cb.Length() {
		return fmt.Errorf("delete %d at %d: %w", n, pos, buffer.ErrPositionOutOfRange)
	}
	if n == 0 {
		return nil
	}
	d.entered = true
	defer func() { d.entered = false }()

	data := []byte(d.cb.TextRange(pos, pos+n))
	a := action{kind: actionRemove, position: pos, data: data, mayCoalesce: n == 1}
	flags := ModUser
	if d.undo.startsStep(a) {
		flags |= ModStartAction
	}
	d.applyRemove(pos, n, flags, &a)
	d.checkSavePoint()
	return nil
}

// applyInsert performs an insertion and its notifications. Callers have
// validated pos. A non-nil rec is recorded for undo after the before
// notification.
func (d *Document) applyInsert(pos buffer.Position, data []byte, flags ModificationFlags, rec *action) {
	d.notifyModified(Modification{Type: ModBeforeInsert | flags, Position: pos, Length: len(data), Text: string(data)})
	if rec != nil {
		d.undo.record(*rec)
	}
	added, err := d.cb.InsertString(pos, data)
	if err != nil {
		log.ErrorErr(log.CatDocument, "insert failed", err, "pos", pos)
		return
	}
	d.notifyModified(Modification{Type: ModInsertText | flags, Position: pos, Length: len(data), LinesAdded: added, Text: string(data)})
}

// applyRemove performs a removal and its notifications. Callers have
// validated the span.
func (d *Document) applyRemove(pos buffer.Position, n int, flags ModificationFlags, rec *action) {
	text := d.cb.TextRange(pos, pos+n)
	d.notifyModified(Modification{Type: ModBeforeDelete | flags, Position: pos, Length: n, Text: text})
	if rec != nil {
		d.undo.record(*rec)
	}
	removed, err := d.cb.DeleteChars(pos, n)
	if err != nil {
		log.ErrorErr(log.CatDocument, "delete failed", err, "pos", pos, "length", n)
		return
	}
	d.notifyModified(Modification{Type: ModDeleteText | flags, Position: pos, Length: n, LinesAdded: -removed, Text: text})
}
