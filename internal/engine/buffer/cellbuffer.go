package buffer

import "bytes"

// CellBuffer stores document text as bytes with an optional parallel style
// byte per position and a line index. Lines end with '\n'; a '\r' directly
// before the '\n' is treated as part of the line end.
type CellBuffer struct {
	substance *SplitVector[byte]
	style     *SplitVector[byte]
	lines     *Partitioning
	hasStyles bool
	large     bool
}

// NewCellBuffer creates an empty cell buffer.
func NewCellBuffer(hasStyles, large bool) *CellBuffer {
	cb := &CellBuffer{
		substance: NewSplitVector[byte](),
		lines:     NewPartitioning(),
		hasStyles: hasStyles,
		large:     large,
	}
	if hasStyles {
		cb.style = NewSplitVector[byte]()
	}
	return cb
}

// HasStyles reports whether style bytes are stored.
func (cb *CellBuffer) HasStyles() bool {
	return cb.hasStyles
}

// IsLarge reports whether the buffer was created for large documents.
func (cb *CellBuffer) IsLarge() bool {
	return cb.large
}

// Length returns the number of bytes stored.
func (cb *CellBuffer) Length() Position {
	return cb.substance.Length()
}

// CharAt returns the byte at pos, or 0 when out of range.
func (cb *CellBuffer) CharAt(pos Position) byte {
	return cb.substance.ValueAt(pos)
}

// StyleAt returns the style byte at pos, or 0 when styles are not stored.
func (cb *CellBuffer) StyleAt(pos Position) byte {
	if !cb.hasStyles {
		return 0
	}
	return cb.style.ValueAt(pos)
}

// TextRange returns the bytes in [start, end) as a string.
func (cb *CellBuffer) TextRange(start, end Position) string {
	start = max(start, 0)
	end = min(end, cb.Length())
	if end <= start {
		return ""
	}
	return string(cb.substance.Range(start, end-start))
}

// Lines returns the number of lines. An empty buffer has one line.
func (cb *CellBuffer) Lines() Line {
	return cb.lines.Partitions()
}

// LineStart returns the position of the first byte of line.
func (cb *CellBuffer) LineStart(line Line) Position {
	if line < 0 {
		return 0
	}
	if line >= cb.Lines() {
		return cb.Length()
	}
	return cb.lines.PositionFromPartition(line)
}

// LineEnd returns the position before the line end characters of line.
func (cb *CellBuffer) LineEnd(line Line) Position {
	if line >= cb.Lines()-1 {
		return cb.Length()
	}
	pos := cb.LineStart(line+1) - 1
	if pos > cb.LineStart(line) && cb.CharAt(pos-1) == '\r' {
		pos--
	}
	return pos
}

// LineFromPosition returns the line containing pos.
func (cb *CellBuffer) LineFromPosition(pos Position) Line {
	return cb.lines.PartitionFromPosition(pos)
}

// InsertString inserts text at pos and returns the number of lines added.
func (cb *CellBuffer) InsertString(pos Position, text []byte) (Line, error) {
	if pos < 0 || pos > cb.Length() {
		return 0, ErrPositionOutOfRange
	}
	if len(text) == 0 {
		return 0, nil
	}
	cb.substance.InsertFromSlice(pos, text)
	if cb.hasStyles {
		cb.style.InsertValue(pos, len(text), 0)
	}

	line := cb.lines.PartitionFromPosition(pos)
	cb.lines.InsertText(line, len(text))
	added := 0
	for i, ch := range text {
		if ch == '\n' {
			added++
			cb.lines.InsertPartition(line+added, pos+i+1)
		}
	}
	return added, nil
}

// DeleteChars removes n bytes at pos and returns the number of lines removed.
func (cb *CellBuffer) DeleteChars(pos Position, n int) (Line, error) {
	if n < 0 {
		return 0, ErrLengthNegative
	}
	if pos < 0 || pos+n > cb.Length() {
		return 0, ErrPositionOutOfRange
	}
	if n == 0 {
		return 0, nil
	}
	removed := bytes.Count(cb.substance.Range(pos, n), []byte{'\n'})
	line := cb.lines.PartitionFromPosition(pos)
	for range removed {
		cb.lines.RemovePartition(line + 1)
	}
	cb.lines.InsertText(line, -n)

	cb.substance.DeleteRange(pos, n)
	if cb.hasStyles {
		cb.style.DeleteRange(pos, n)
	}
	return removed, nil
}

// SetStyleFor sets n style bytes from pos and reports whether any changed.
func (cb *CellBuffer) SetStyleFor(pos Position, n int, style byte) bool {
	if !cb.hasStyles || pos < 0 || n <= 0 {
		return false
	}
	changed := false
	end := min(pos+n, cb.Length())
	for p := pos; p < end; p++ {
		if cb.style.ValueAt(p) != style {
			cb.style.SetValueAt(p, style)
			changed = true
		}
	}
	return changed
}
