// Package contraction tracks per-line fold state: which document lines are
// visible, which fold headers are expanded, how many display lines each line
// occupies and any text shown in place of a folded block.
package contraction

import (
	"slices"

	"github.com/dshills/hyperion/internal/engine/buffer"
)

type lineState struct {
	visible    bool
	expanded   bool
	height     int
	foldText   string
	hasFoldTxt bool
}

func newLineState() lineState {
	return lineState{visible: true, expanded: true, height: 1}
}

// State holds fold state for every document line.
// Until something is hidden, folded or resized the state stays "all
// visible", which lets the display/document mapping short-circuit.
type State struct {
	lines     []lineState
	large     bool
	allSimple bool
}

// New creates a state for lineCount lines, all visible and expanded.
func New(lineCount int, large bool) *State {
	s := &State{large: large}
	s.Clear(lineCount)
	return s
}

// Clear resets to lineCount visible, expanded, single-height lines.
func (s *State) Clear(lineCount int) {
	s.lines = make([]lineState, max(lineCount, 1))
	for i := range s.lines {
		s.lines[i] = newLineState()
	}
	s.allSimple = true
}

// IsLarge reports whether the state was created for a large document.
func (s *State) IsLarge() bool {
	return s.large
}

// LinesInDoc returns the number of document lines tracked.
func (s *State) LinesInDoc() int {
	return len(s.lines)
}

// LinesDisplayed returns the number of display lines.
func (s *State) LinesDisplayed() int {
	if s.allSimple {
		return len(s.lines)
	}
	n := 0
	for _, l := range s.lines {
		if l.visible {
			n += l.height
		}
	}
	return n
}

// DisplayFromDoc returns the first display line of lineDoc.
func (s *State) DisplayFromDoc(lineDoc buffer.Line) int {
	lineDoc = min(max(lineDoc, 0), len(s.lines))
	if s.allSimple {
		return lineDoc
	}
	n := 0
	for _, l := range s.lines[:lineDoc] {
		if l.visible {
			n += l.height
		}
	}
	return n
}

// DisplayLastFromDoc returns the last display line of lineDoc.
func (s *State) DisplayLastFromDoc(lineDoc buffer.Line) int {
	return s.DisplayFromDoc(lineDoc) + s.GetHeight(lineDoc) - 1
}

// DocFromDisplay returns the document line shown on lineDisplay.
func (s *State) DocFromDisplay(lineDisplay int) buffer.Line {
	if lineDisplay <= 0 {
		return 0
	}
	if s.allSimple {
		return min(lineDisplay, len(s.lines)-1)
	}
	n := 0
	for i, l := range s.lines {
		if !l.visible {
			continue
		}
		n += l.height
		if n > lineDisplay {
			return i
		}
	}
	return len(s.lines) - 1
}

// InsertLines adds lineCount lines before lineDoc.
func (s *State) InsertLines(lineDoc buffer.Line, lineCount int) {
	if lineCount <= 0 {
		return
	}
	lineDoc = min(max(lineDoc, 0), len(s.lines))
	added := make([]lineState, lineCount)
	for i := range added {
		added[i] = newLineState()
	}
	s.lines = slices.Insert(s.lines, lineDoc, added...)
}

// DeleteLines removes lineCount lines starting at lineDoc.
func (s *State) DeleteLines(lineDoc buffer.Line, lineCount int) {
	if lineCount <= 0 || lineDoc < 0 || lineDoc >= len(s.lines) {
		return
	}
	end := min(lineDoc+lineCount, len(s.lines))
	s.lines = slices.Delete(s.lines, lineDoc, end)
	if len(s.lines) == 0 {
		s.lines = []lineState{newLineState()}
	}
}

// GetVisible reports whether lineDoc is shown.
func (s *State) GetVisible(lineDoc buffer.Line) bool {
	if lineDoc < 0 || lineDoc >= len(s.lines) {
		return true
	}
	return s.lines[lineDoc].visible
}

// SetVisible shows or hides lines [lineDocStart, lineDocEnd] and reports
// whether anything changed. Line 0 is always visible.
func (s *State) SetVisible(lineDocStart, lineDocEnd buffer.Line, visible bool) bool {
	changed := false
	for line := max(lineDocStart, 1); line <= lineDocEnd && line < len(s.lines); line++ {
		if s.lines[line].visible != visible {
			s.lines[line].visible = visible
			changed = true
		}
	}
	if changed {
		s.allSimple = false
	}
	return changed
}

// HiddenLines reports whether any line is hidden.
func (s *State) HiddenLines() bool {
	for _, l := range s.lines {
		if !l.visible {
			return true
		}
	}
	return false
}

// GetExpanded reports whether the fold header at lineDoc is expanded.
func (s *State) GetExpanded(lineDoc buffer.Line) bool {
	if lineDoc < 0 || lineDoc >= len(s.lines) {
		return true
	}
	return s.lines[lineDoc].expanded
}

// SetExpanded sets the fold state of lineDoc and reports whether it changed.
func (s *State) SetExpanded(lineDoc buffer.Line, expanded bool) bool {
	if lineDoc < 0 || lineDoc >= len(s.lines) || s.lines[lineDoc].expanded == expanded {
		return false
	}
	s.lines[lineDoc].expanded = expanded
	s.allSimple = false
	return true
}

// ExpandAll expands every line and reports whether anything changed.
func (s *State) ExpandAll() bool {
	changed := false
	for i := range s.lines {
		if !s.lines[i].expanded {
			s.lines[i].expanded = true
			changed = true
		}
	}
	return changed
}

// ContractedNext returns the first contracted line at or after lineDocStart,
// or -1 when none is contracted.
func (s *State) ContractedNext(lineDocStart buffer.Line) buffer.Line {
	for line := max(lineDocStart, 0); line < len(s.lines); line++ {
		if !s.lines[line].expanded {
			return line
		}
	}
	return -1
}

// GetHeight returns the number of display lines lineDoc occupies.
func (s *State) GetHeight(lineDoc buffer.Line) int {
	if lineDoc < 0 || lineDoc >= len(s.lines) {
		return 1
	}
	return s.lines[lineDoc].height
}

// SetHeight sets the display height of lineDoc and reports whether it changed.
func (s *State) SetHeight(lineDoc buffer.Line, height int) bool {
	if lineDoc < 0 || lineDoc >= len(s.lines) || height < 1 || s.lines[lineDoc].height == height {
		return false
	}
	s.lines[lineDoc].height = height
	s.allSimple = false
	return true
}

// GetFoldDisplayText returns the text shown for a folded lineDoc and whether
// any was set.
func (s *State) GetFoldDisplayText(lineDoc buffer.Line) (string, bool) {
	if lineDoc < 0 || lineDoc >= len(s.lines) {
		return "", false
	}
	return s.lines[lineDoc].foldText, s.lines[lineDoc].hasFoldTxt
}

// SetFoldDisplayText sets the text shown for a folded lineDoc. An empty text
// clears it. Reports whether anything changed.
func (s *State) SetFoldDisplayText(lineDoc buffer.Line, text string) bool {
	if lineDoc < 0 || lineDoc >= len(s.lines) {
		return false
	}
	l := &s.lines[lineDoc]
	has := text != ""
	if l.hasFoldTxt == has && l.foldText == text {
		return false
	}
	l.foldText, l.hasFoldTxt = text, has
	return true
}
