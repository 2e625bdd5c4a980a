package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/engine/cursor"
)

// moveMain moves the main caret to pos. With extend the anchor stays;
// otherwise the selection collapses to a single caret.
func (e *Editor) moveMain(pos buffer.Position, extend bool) {
	pos = e.Document().ClampPosition(pos)
	if extend {
		r := e.model.Sel.RangeMain()
		e.model.Sel.SetRangeMain(cursor.NewSelectionRange(pos, r.Anchor.Position))
	} else {
		e.model.Sel.SetSelection(cursor.NewCaretRange(pos))
	}
	e.scrollToCaret()
}

// scrollToCaret keeps the main caret's line within the page.
func (e *Editor) scrollToCaret() {
	doc := e.Document()
	display := e.model.Contraction().DisplayFromDoc(doc.LineFromPosition(e.model.Sel.MainCaret()))
	switch {
	case display < e.topLine:
		e.SetTopLine(display)
	case display >= e.topLine+e.pageLines:
		e.SetTopLine(display - e.pageLines + 1)
	}
}

// CharLeft moves one character left. An unextended move from a selection
// goes to its start.
func (e *Editor) CharLeft(extend bool) {
	r := e.model.Sel.RangeMain()
	if !extend && !r.Empty() {
		e.moveMain(r.Start().Position, false)
		return
	}
	caret := r.Caret.Position
	e.moveMain(caret-e.prevCharLen(caret), extend)
}

// CharRight moves one character right. An unextended move from a selection
// goes to its end.
func (e *Editor) CharRight(extend bool) {
	r := e.model.Sel.RangeMain()
	if !extend && !r.Empty() {
		e.moveMain(r.End().Position, false)
		return
	}
	caret := r.Caret.Position
	e.moveMain(caret+e.nextCharLen(caret), extend)
}

// LineMove moves the caret by delta visible lines keeping its column.
func (e *Editor) LineMove(delta int, extend bool) {
	doc := e.Document()
	cs := e.model.Contraction()
	caret := e.model.Sel.MainCaret()
	line := doc.LineFromPosition(caret)
	column := caret - doc.LineStart(line)

	display := cs.DisplayFromDoc(line) + delta
	display = min(max(display, 0), max(cs.LinesDisplayed()-1, 0))
	target := cs.DocFromDisplay(display)

	pos := min(doc.LineStart(target)+column, doc.LineEnd(target))
	e.moveMain(pos, extend)
}

// PageMove moves by pages, scrolling with the caret.
func (e *Editor) PageMove(pages int, extend bool) {
	e.SetTopLine(e.topLine + pages*e.pageLines)
	e.LineMove(pages*e.pageLines, extend)
}

// Home moves to the start of the line.
func (e *Editor) Home(extend bool) {
	doc := e.Document()
	e.moveMain(doc.LineStart(doc.LineFromPosition(e.model.Sel.MainCaret())), extend)
}

// VCHome moves to the first non-blank character of the line, or to the line
// start when already there.
func (e *Editor) VCHome(extend bool) {
	doc := e.Document()
	caret := e.model.Sel.MainCaret()
	line := doc.LineFromPosition(caret)
	start, end := doc.LineStart(line), doc.LineEnd(line)
	indent := start
	for indent < end {
		if c := doc.CharAt(indent); c != ' ' && c != '\t' {
			break
		}
		indent++
	}
	if caret == indent {
		indent = start
	}
	e.moveMain(indent, extend)
}

// LineEnd moves to the end of the line, before its line end.
func (e *Editor) LineEnd(extend bool) {
	doc := e.Document()
	e.moveMain(doc.LineEnd(doc.LineFromPosition(e.model.Sel.MainCaret())), extend)
}

// DocumentStart moves to position 0.
func (e *Editor) DocumentStart(extend bool) {
	e.moveMain(0, extend)
}

// DocumentEnd moves to the end of the document.
func (e *Editor) DocumentEnd(extend bool) {
	e.moveMain(e.Document().Length(), extend)
}

// WordLeft moves to the start of the previous word.
func (e *Editor) WordLeft(extend bool) {
	e.moveMain(prevWordStart(e.Document().Text(), e.model.Sel.MainCaret()), extend)
}

// WordRight moves to the start of the next word.
func (e *Editor) WordRight(extend bool) {
	e.moveMain(nextWordStart(e.Document().Text(), e.model.Sel.MainCaret()), extend)
}

// Cancel drops additional ranges and collapses to the main caret.
func (e *Editor) Cancel() {
	e.model.Sel.SetSelection(cursor.NewCaretRange(e.model.Sel.MainCaret()))
}

// ScrollLines scrolls by delta lines without moving the caret.
func (e *Editor) ScrollLines(delta int) {
	e.SetTopLine(e.topLine + delta)
}

// nextWordStart skips the rest of the word or punctuation run at offset and
// then any white space.
func nextWordStart(text string, offset buffer.Position) buffer.Position {
	end := len(text)
	if offset >= end {
		return end
	}
	offset = max(offset, 0)

	r, _ := utf8.DecodeRuneInString(text[offset:])
	if !unicode.IsSpace(r) {
		word := isWordCharacter(r)
		for offset < end {
			r, size := utf8.DecodeRuneInString(text[offset:])
			if unicode.IsSpace(r) || isWordCharacter(r) != word {
				break
			}
			offset += size
		}
	}
	for offset < end {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	return offset
}

// prevWordStart skips white space before offset and then back to the start
// of the word or punctuation run.
func prevWordStart(text string, offset buffer.Position) buffer.Position {
	offset = min(offset, len(text))
	for offset > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:offset])
		if !unicode.IsSpace(r) {
			break
		}
		offset -= size
	}
	if offset == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(text[:offset])
	word := isWordCharacter(r)
	for offset > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:offset])
		if unicode.IsSpace(r) || isWordCharacter(r) != word {
			break
		}
		offset -= size
	}
	return offset
}

func isWordCharacter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
