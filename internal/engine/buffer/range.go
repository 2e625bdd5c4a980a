package buffer

import "fmt"

// Range is a span between two positions. Start may be greater than End,
// which lets a Range carry selection direction (anchor/caret order).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates an empty range at pos.
func NewRange(pos Position) Range {
	return Range{Start: pos, End: pos}
}

// NewRangeSpan creates a range from start to end, keeping their order.
func NewRangeSpan(start, end Position) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// Valid returns false if either endpoint is InvalidPosition.
func (r Range) Valid() bool {
	return r.Start != InvalidPosition && r.End != InvalidPosition
}

// Empty returns true if the range has zero length.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Length returns the distance between the endpoints regardless of direction.
func (r Range) Length() Position {
	if r.Start <= r.End {
		return r.End - r.Start
	}
	return r.Start - r.End
}

// First returns the lower endpoint.
func (r Range) First() Position {
	if r.Start <= r.End {
		return r.Start
	}
	return r.End
}

// Last returns the upper endpoint.
func (r Range) Last() Position {
	if r.Start > r.End {
		return r.Start
	}
	return r.End
}

// Contains reports whether pos lies within the range, both ends included.
func (r Range) Contains(pos Position) bool {
	if r.Start < r.End {
		return pos >= r.Start && pos <= r.End
	}
	return pos <= r.Start && pos >= r.End
}

// ContainsCharacter reports whether the character after pos is within the range.
// The upper endpoint is excluded.
func (r Range) ContainsCharacter(pos Position) bool {
	if r.Start < r.End {
		return pos >= r.Start && pos < r.End
	}
	return pos < r.Start && pos >= r.End
}

// ContainsRange reports whether both endpoints of other are contained.
func (r Range) ContainsRange(other Range) bool {
	return r.Contains(other.Start) && r.Contains(other.End)
}

// Overlaps reports whether either range contains an endpoint of the other.
func (r Range) Overlaps(other Range) bool {
	return r.Contains(other.Start) ||
		r.Contains(other.End) ||
		other.Contains(r.Start) ||
		other.Contains(r.End)
}
