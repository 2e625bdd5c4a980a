package cursor

import (
	"slices"

	"github.com/dshills/hyperion/internal/engine/buffer"
)

// SelectionRange is a single selected span with an anchor and a caret.
// When Anchor == Caret it represents a bare caret.
type SelectionRange struct {
	Caret  SelectionPosition
	Anchor SelectionPosition
}

// NewSelectionRange creates a range from anchor to caret.
func NewSelectionRange(caret, anchor buffer.Position) SelectionRange {
	return SelectionRange{
		Caret:  NewSelectionPosition(caret),
		Anchor: NewSelectionPosition(anchor),
	}
}

// NewCaretRange creates an empty range at pos.
func NewCaretRange(pos buffer.Position) SelectionRange {
	return NewSelectionRange(pos, pos)
}

// Empty returns true if anchor and caret coincide.
func (sr SelectionRange) Empty() bool {
	return sr.Anchor == sr.Caret
}

// Length returns the number of bytes selected, ignoring virtual space.
func (sr SelectionRange) Length() int {
	if sr.Anchor.Position > sr.Caret.Position {
		return sr.Anchor.Position - sr.Caret.Position
	}
	return sr.Caret.Position - sr.Anchor.Position
}

// Start returns the lower of anchor and caret.
func (sr SelectionRange) Start() SelectionPosition {
	if sr.Anchor.Less(sr.Caret) {
		return sr.Anchor
	}
	return sr.Caret
}

// End returns the higher of anchor and caret.
func (sr SelectionRange) End() SelectionPosition {
	if sr.Anchor.Less(sr.Caret) {
		return sr.Caret
	}
	return sr.Anchor
}

// Range returns the span from anchor to caret, keeping direction.
func (sr SelectionRange) Range() buffer.Range {
	return buffer.NewRangeSpan(sr.Anchor.Position, sr.Caret.Position)
}

// Contains reports whether pos is within the range, both ends included.
func (sr SelectionRange) Contains(pos buffer.Position) bool {
	return sr.Range().Contains(pos)
}

// ContainsCharacter reports whether the character after pos is selected.
func (sr SelectionRange) ContainsCharacter(pos buffer.Position) bool {
	return sr.Range().ContainsCharacter(pos)
}

// MoveForInsertDelete adjusts the range for a document edit. Insertions at the
// start of a non-empty range move both ends so the selected text stays selected;
// insertions at its end leave the end in place.
func (sr SelectionRange) MoveForInsertDelete(insertion bool, startChange buffer.Position, length int) SelectionRange {
	if insertion && sr.Caret != sr.Anchor {
		caretStart := sr.Caret.Position < sr.Anchor.Position
		anchorStart := sr.Anchor.Position < sr.Caret.Position
		sr.Caret = sr.Caret.MoveForInsertDelete(true, startChange, length, caretStart)
		sr.Anchor = sr.Anchor.MoveForInsertDelete(true, startChange, length, anchorStart)
		return sr
	}
	sr.Caret = sr.Caret.MoveForInsertDelete(insertion, startChange, length, insertion)
	sr.Anchor = sr.Anchor.MoveForInsertDelete(insertion, startChange, length, insertion)
	return sr
}

// SelectionType describes how ranges are interpreted.
type SelectionType int

const (
	// SelStream is a normal run of text.
	SelStream SelectionType = iota
	// SelRectangle is a rectangular block spanning lines.
	SelRectangle
	// SelLines selects whole lines.
	SelLines
	// SelThin is a zero-width rectangle.
	SelThin
)

// InSelection reports which range, if any, covers a position.
type InSelection int

const (
	InSelectionNone InSelection = iota
	InSelectionMain
	InSelectionAdditional
)

// Selection is the set of ranges selected in one view.
// The zero value has no ranges and represents "no selection recorded".
type Selection struct {
	ranges    []SelectionRange
	mainRange int
	selType   SelectionType
}

// NewSelection creates a selection with a single caret at position 0.
func NewSelection() Selection {
	return Selection{ranges: []SelectionRange{NewCaretRange(0)}}
}

// NewSelectionFrom creates a stream selection with the given ranges; the main
// range is the last one.
func NewSelectionFrom(ranges ...SelectionRange) Selection {
	if len(ranges) == 0 {
		return Selection{}
	}
	return Selection{ranges: slices.Clone(ranges), mainRange: len(ranges) - 1}
}

// Clone returns a deep copy that shares no state with s.
func (s Selection) Clone() Selection {
	s.ranges = slices.Clone(s.ranges)
	return s
}

// IsZero returns true for a selection with no ranges.
func (s Selection) IsZero() bool {
	return len(s.ranges) == 0
}

// Equal reports whether two selections have the same type, ranges and main range.
func (s Selection) Equal(other Selection) bool {
	return s.selType == other.selType &&
		s.mainRange == other.mainRange &&
		slices.Equal(s.ranges, other.ranges)
}

// Count returns the number of ranges.
func (s Selection) Count() int {
	return len(s.ranges)
}

// Main returns the index of the main range.
func (s Selection) Main() int {
	return s.mainRange
}

// Type returns the selection type.
func (s Selection) Type() SelectionType {
	return s.selType
}

// IsRectangular returns true for rectangular and thin selections.
func (s Selection) IsRectangular() bool {
	return s.selType == SelRectangle || s.selType == SelThin
}

// Range returns range i, or an empty range when i is out of bounds.
func (s Selection) Range(i int) SelectionRange {
	if i < 0 || i >= len(s.ranges) {
		return SelectionRange{}
	}
	return s.ranges[i]
}

// Ranges returns a copy of all ranges.
func (s Selection) Ranges() []SelectionRange {
	return slices.Clone(s.ranges)
}

// RangeMain returns the main range.
func (s Selection) RangeMain() SelectionRange {
	return s.Range(s.mainRange)
}

// MainCaret returns the caret position of the main range.
func (s Selection) MainCaret() buffer.Position {
	return s.RangeMain().Caret.Position
}

// MainAnchor returns the anchor position of the main range.
func (s Selection) MainAnchor() buffer.Position {
	return s.RangeMain().Anchor.Position
}

// Empty returns true if every range is a bare caret.
func (s Selection) Empty() bool {
	for _, r := range s.ranges {
		if !r.Empty() {
			return false
		}
	}
	return true
}

// Length returns the total number of selected bytes.
func (s Selection) Length() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Length()
	}
	return n
}

// SetType changes the selection type.
func (s *Selection) SetType(t SelectionType) {
	s.selType = t
}

// SetMain makes range i the main range. Out-of-range indices are ignored.
func (s *Selection) SetMain(i int) {
	if i >= 0 && i < len(s.ranges) {
		s.mainRange = i
	}
}

// SetSelection replaces every range with r.
func (s *Selection) SetSelection(r SelectionRange) {
	s.ranges = []SelectionRange{r}
	s.mainRange = 0
}

// SetRangeMain replaces the main range, creating it if needed.
func (s *Selection) SetRangeMain(r SelectionRange) {
	if len(s.ranges) == 0 {
		s.SetSelection(r)
		return
	}
	s.ranges[s.mainRange] = r
}

// SetRange replaces range i. Out-of-range indices are ignored.
func (s *Selection) SetRange(i int, r SelectionRange) {
	if i >= 0 && i < len(s.ranges) {
		s.ranges[i] = r
	}
}

// AddSelection appends r and makes it the main range.
func (s *Selection) AddSelection(r SelectionRange) {
	s.ranges = append(s.ranges, r)
	s.mainRange = len(s.ranges) - 1
}

// DropSelection removes range i. The last remaining range is never dropped.
func (s *Selection) DropSelection(i int) {
	if len(s.ranges) <= 1 || i < 0 || i >= len(s.ranges) {
		return
	}
	s.ranges = slices.Delete(s.ranges, i, i+1)
	if s.mainRange >= i && s.mainRange > 0 {
		s.mainRange--
	}
}

// RemoveDuplicates drops every range equal to an earlier one, keeping the
// main range on a surviving equal range.
func (s *Selection) RemoveDuplicates() {
	for i := 0; i < len(s.ranges); i++ {
		for j := i + 1; j < len(s.ranges); {
			if s.ranges[j] != s.ranges[i] {
				j++
				continue
			}
			s.ranges = slices.Delete(s.ranges, j, j+1)
			switch {
			case s.mainRange == j:
				s.mainRange = i
			case s.mainRange > j:
				s.mainRange--
			}
		}
	}
}

// Clear resets to a single stream caret at position 0.
func (s *Selection) Clear() {
	s.ranges = []SelectionRange{NewCaretRange(0)}
	s.mainRange = 0
	s.selType = SelStream
}

// MovePositions adjusts every range for a document edit.
func (s *Selection) MovePositions(insertion bool, startChange buffer.Position, length int) {
	for i := range s.ranges {
		s.ranges[i] = s.ranges[i].MoveForInsertDelete(insertion, startChange, length)
	}
}

// CharacterInSelection reports which range selects the character after pos.
func (s Selection) CharacterInSelection(pos buffer.Position) InSelection {
	for i, r := range s.ranges {
		if !r.Empty() && r.ContainsCharacter(pos) {
			return s.which(i)
		}
	}
	return InSelectionNone
}

// InSelectionForEOL reports which range covers the line end before pos.
func (s Selection) InSelectionForEOL(pos buffer.Position) InSelection {
	for i, r := range s.ranges {
		if !r.Empty() && pos > r.Start().Position && pos <= r.End().Position {
			return s.which(i)
		}
	}
	return InSelectionNone
}

func (s Selection) which(i int) InSelection {
	if i == s.mainRange {
		return InSelectionMain
	}
	return InSelectionAdditional
}
