package editor

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/engine/cursor"
	"github.com/dshills/hyperion/internal/engine/document"
	"github.com/dshills/hyperion/internal/log"
)

// protected reports whether [start, end) touches a protected style.
func (e *Editor) protected(start, end buffer.Position) bool {
	if !e.vs.ProtectionActive() {
		return false
	}
	return e.Document().RangeProtected(start, end, func(st byte) bool {
		i := int(st)
		return e.vs.ValidStyle(i) && e.vs.Styles[i].IsProtected()
	})
}

// rangeOrder returns range indices by descending start so that editing one
// range never shifts the ranges still to be edited.
func (e *Editor) rangeOrder() []int {
	sel := e.model.Sel
	order := make([]int, sel.Count())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return sel.Range(b).Start().Compare(sel.Range(a).Start())
	})
	return order
}

// replaceRanges replaces every range, last first, inside one undo group
// when more than one range or a non-empty span is involved. replace gets a
// range's start and end and returns the end of the span to replace, which
// may reach past the range, and the text to put in its place. Each range
// becomes a caret after its text, or selects the text when keepSelected is
// set.
func (e *Editor) replaceRanges(name string, keepSelected bool, replace func(start, end buffer.Position) (buffer.Position, string)) error {
	if e.closed {
		return ErrClosed
	}
	type edit struct {
		index      int
		start, end buffer.Position
		text       string
	}
	var edits []edit
	for _, i := range e.rangeOrder() {
		r := e.model.Sel.Range(i)
		start := r.Start().Position
		end, text := replace(start, r.End().Position)
		if e.protected(start, end) {
			return ErrProtected
		}
		edits = append(edits, edit{i, start, end, text})
	}
	if len(edits) == 0 {
		return nil
	}

	doc := e.Document()
	if len(edits) > 1 || edits[0].end > edits[0].start {
		defer doc.UndoGroup(name).End()
	}
	defer e.model.Sel.RemoveDuplicates()
	for _, ed := range edits {
		if ed.end > ed.start {
			if err := doc.DeleteChars(ed.start, ed.end-ed.start); err != nil {
				return err
			}
		}
		n, err := doc.InsertString(ed.start, ed.text)
		if err != nil {
			return err
		}
		if keepSelected {
			e.model.Sel.SetRange(ed.index, cursor.NewSelectionRange(ed.start+n, ed.start))
		} else {
			e.model.Sel.SetRange(ed.index, cursor.NewCaretRange(ed.start+n))
		}
	}
	return nil
}

// InsertText replaces each selected range with text and leaves a caret
// after it. In overstrike mode the character after each caret is replaced
// instead of pushed along.
func (e *Editor) InsertText(text string) error {
	if text == "" {
		return nil
	}
	doc := e.Document()
	if e.model.InOverstrike && e.model.Sel.Empty() && !strings.ContainsAny(text, "\r\n") {
		defer doc.UndoGroup("overtype").End()
		return e.replaceRanges("overtype", false, func(start, end buffer.Position) (buffer.Position, string) {
			if start < doc.LineEnd(doc.LineFromPosition(start)) {
				end = start + e.nextCharLen(start)
			}
			return end, text
		})
	}
	return e.replaceRanges("insert", false, func(_, end buffer.Position) (buffer.Position, string) {
		return end, text
	})
}

// NewLine inserts a line end.
func (e *Editor) NewLine() error {
	return e.InsertText("\n")
}

// Tab inserts a tab character.
func (e *Editor) Tab() error {
	return e.InsertText("\t")
}

// deleteEach removes, for every range, the selection or else the span span
// returns for its caret. Overlapping spans are merged so that no byte is
// removed twice, and ranges left on the same caret are merged.
func (e *Editor) deleteEach(name string, span func(caret buffer.Position) (buffer.Position, buffer.Position)) error {
	if e.closed {
		return ErrClosed
	}
	type cut struct {
		start, end buffer.Position
		ranges     []int
	}
	var cuts []cut
	sel := e.model.Sel
	for i := range sel.Count() {
		r := sel.Range(i)
		start, end := r.Start().Position, r.End().Position
		if start == end {
			start, end = span(start)
		}
		if start < end {
			cuts = append(cuts, cut{start, end, []int{i}})
		}
	}
	if len(cuts) == 0 {
		return nil
	}
	slices.SortFunc(cuts, func(a, b cut) int { return cmp.Compare(a.start, b.start) })
	merged := []cut{cuts[0]}
	for _, c := range cuts[1:] {
		last := &merged[len(merged)-1]
		if c.start < last.end {
			last.end = max(last.end, c.end)
			last.ranges = append(last.ranges, c.ranges...)
			continue
		}
		merged = append(merged, c)
	}
	for _, c := range merged {
		if e.protected(c.start, c.end) {
			return ErrProtected
		}
	}

	doc := e.Document()
	if len(merged) > 1 {
		defer doc.UndoGroup(name).End()
	}
	defer e.model.Sel.RemoveDuplicates()
	for _, c := range slices.Backward(merged) {
		if err := doc.DeleteChars(c.start, c.end-c.start); err != nil {
			return err
		}
		for _, i := range c.ranges {
			e.model.Sel.SetRange(i, cursor.NewCaretRange(c.start))
		}
	}
	return nil
}

// DeleteBack removes the selection, or the character before each caret.
func (e *Editor) DeleteBack() error {
	return e.deleteEach("delete back", func(caret buffer.Position) (buffer.Position, buffer.Position) {
		return caret - e.prevCharLen(caret), caret
	})
}

// Clear removes the selection, or the character after each caret.
func (e *Editor) Clear() error {
	return e.deleteEach("clear", func(caret buffer.Position) (buffer.Position, buffer.Position) {
		return caret, caret + e.nextCharLen(caret)
	})
}

// DeleteWordLeft removes back to the start of the previous word.
func (e *Editor) DeleteWordLeft() error {
	text := e.Document().Text()
	return e.deleteEach("delete word left", func(caret buffer.Position) (buffer.Position, buffer.Position) {
		return prevWordStart(text, caret), caret
	})
}

// DeleteWordRight removes up to the start of the next word.
func (e *Editor) DeleteWordRight() error {
	text := e.Document().Text()
	return e.deleteEach("delete word right", func(caret buffer.Position) (buffer.Position, buffer.Position) {
		return caret, nextWordStart(text, caret)
	})
}

// lineSpan returns the main caret's line including its line end.
func (e *Editor) lineSpan() (buffer.Position, buffer.Position) {
	doc := e.Document()
	line := doc.LineFromPosition(e.model.Sel.MainCaret())
	return doc.LineStart(line), doc.LineStart(line + 1)
}

// LineDelete removes the main caret's line.
func (e *Editor) LineDelete() error {
	start, end := e.lineSpan()
	if start == end {
		return nil
	}
	if e.protected(start, end) {
		return ErrProtected
	}
	if err := e.Document().DeleteChars(start, end-start); err != nil {
		return err
	}
	e.SetEmptySelection(start)
	return nil
}

// LineDuplicate inserts a copy of the main caret's line below it.
func (e *Editor) LineDuplicate() error {
	doc := e.Document()
	line := doc.LineFromPosition(e.model.Sel.MainCaret())
	start, end := doc.LineStart(line), doc.LineEnd(line)
	_, err := doc.InsertString(end, "\n"+doc.TextRange(start, end))
	return err
}

// LineTranspose swaps the main caret's line with the one above.
func (e *Editor) LineTranspose() error {
	doc := e.Document()
	line := doc.LineFromPosition(e.model.Sel.MainCaret())
	if line == 0 {
		return nil
	}
	prevStart, prevEnd := doc.LineStart(line-1), doc.LineEnd(line-1)
	curStart, curEnd := doc.LineStart(line), doc.LineEnd(line)
	if e.protected(prevStart, curEnd) {
		return ErrProtected
	}
	prev := doc.TextRange(prevStart, prevEnd)
	cur := doc.TextRange(curStart, curEnd)
	sep := doc.TextRange(prevEnd, curStart)

	return doc.Transaction("transpose", func() error {
		if err := doc.DeleteChars(prevStart, curEnd-prevStart); err != nil {
			return err
		}
		_, err := doc.InsertString(prevStart, cur+sep+prev)
		return err
	})
}

// SelectionDuplicate copies the selection after itself, or duplicates the
// line when nothing is selected.
func (e *Editor) SelectionDuplicate() error {
	if e.model.Sel.Empty() {
		return e.LineDuplicate()
	}
	doc := e.Document()
	defer doc.UndoGroup("duplicate").End()
	for _, i := range e.rangeOrder() {
		r := e.model.Sel.Range(i)
		start, end := r.Start().Position, r.End().Position
		if _, err := doc.InsertString(end, doc.TextRange(start, end)); err != nil {
			return err
		}
		e.model.Sel.SetRange(i, r)
	}
	return nil
}

// ChangeCase upper- or lower-cases every selected range, keeping it
// selected.
func (e *Editor) ChangeCase(upper bool) error {
	if e.model.Sel.Empty() {
		return nil
	}
	caser := cases.Lower(language.Und)
	if upper {
		caser = cases.Upper(language.Und)
	}
	doc := e.Document()
	return e.replaceRanges("case", true, func(start, end buffer.Position) (buffer.Position, string) {
		return end, caser.String(doc.TextRange(start, end))
	})
}

// SelectedText returns the text of every range joined by line ends.
func (e *Editor) SelectedText() string {
	doc := e.Document()
	ranges := e.model.Sel.Ranges()
	slices.SortFunc(ranges, func(a, b cursor.SelectionRange) int {
		return a.Start().Compare(b.Start())
	})
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, doc.TextRange(r.Start().Position, r.End().Position))
	}
	return strings.Join(parts, "\n")
}

// Copy keeps the selected text for Paste. With nothing selected the main
// caret's line is copied.
func (e *Editor) Copy() {
	if e.model.Sel.Empty() {
		e.LineCopy()
		return
	}
	e.clip = e.SelectedText()
}

// LineCopy keeps the main caret's line for Paste.
func (e *Editor) LineCopy() {
	start, end := e.lineSpan()
	e.clip = e.Document().TextRange(start, end)
}

// Cut copies then removes the selection.
func (e *Editor) Cut() error {
	if e.model.Sel.Empty() {
		return nil
	}
	e.clip = e.SelectedText()
	return e.Clear()
}

// LineCut copies then removes the main caret's line.
func (e *Editor) LineCut() error {
	e.LineCopy()
	return e.LineDelete()
}

// Paste inserts the text kept by Copy or Cut.
func (e *Editor) Paste() error {
	if e.clip == "" {
		return nil
	}
	return e.InsertText(e.clip)
}

// Clipboard returns the text kept for Paste.
func (e *Editor) Clipboard() string { return e.clip }

// SetStyle styles n bytes from pos, for hosts that colour text.
func (e *Editor) SetStyle(pos buffer.Position, n int, st int) {
	if !e.vs.ValidStyle(st) || st > 0xff {
		log.Warn(log.CatEditor, "style out of range", "style", st)
		return
	}
	e.Document().SetStyleFor(pos, n, byte(st))
}

// prevCharLen returns the byte length of the character before pos; a CR LF
// pair counts as one.
func (e *Editor) prevCharLen(pos buffer.Position) int {
	if pos <= 0 {
		return 0
	}
	doc := e.Document()
	if pos >= 2 && doc.CharAt(pos-1) == '\n' && doc.CharAt(pos-2) == '\r' {
		return 2
	}
	if doc.CodePage() != document.CpUTF8 {
		return 1
	}
	_, size := utf8.DecodeLastRuneInString(doc.TextRange(max(pos-utf8.UTFMax, 0), pos))
	return max(size, 1)
}

// nextCharLen returns the byte length of the character at pos; a CR LF pair
// counts as one.
func (e *Editor) nextCharLen(pos buffer.Position) int {
	doc := e.Document()
	if pos >= doc.Length() {
		return 0
	}
	if doc.CharAt(pos) == '\r' && pos+1 < doc.Length() && doc.CharAt(pos+1) == '\n' {
		return 2
	}
	if doc.CodePage() != document.CpUTF8 {
		return 1
	}
	_, size := utf8.DecodeRuneInString(doc.TextRange(pos, min(pos+utf8.UTFMax, doc.Length())))
	return max(size, 1)
}
