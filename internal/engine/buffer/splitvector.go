package buffer

// SplitVector is a gap buffer: a slice with a movable gap that makes
// repeated edits at one location cheap.
type SplitVector[T any] struct {
	body        []T
	part1Length int
	gapLength   int
	growSize    int
}

// NewSplitVector creates an empty split vector.
func NewSplitVector[T any]() *SplitVector[T] {
	return &SplitVector[T]{growSize: 8}
}

// Length returns the number of elements, excluding the gap.
func (sv *SplitVector[T]) Length() int {
	return len(sv.body) - sv.gapLength
}

// gapTo moves the gap so that it starts at position.
func (sv *SplitVector[T]) gapTo(position int) {
	if position == sv.part1Length {
		return
	}
	if sv.gapLength > 0 {
		if position < sv.part1Length {
			// Shift [position, part1Length) to the end of the gap.
			copy(sv.body[position+sv.gapLength:], sv.body[position:sv.part1Length])
		} else {
			// Shift [part1Length+gap, position+gap) to the start of the gap.
			copy(sv.body[sv.part1Length:], sv.body[sv.part1Length+sv.gapLength:position+sv.gapLength])
		}
	}
	sv.part1Length = position
}

// roomFor ensures the gap can hold insertionLength elements.
func (sv *SplitVector[T]) roomFor(insertionLength int) {
	if sv.gapLength >= insertionLength {
		return
	}
	for sv.growSize < len(sv.body)/6 {
		sv.growSize *= 2
	}
	newSize := len(sv.body) + insertionLength + sv.growSize
	sv.reallocate(newSize)
}

func (sv *SplitVector[T]) reallocate(newSize int) {
	if newSize < len(sv.body) {
		return
	}
	// Move the gap to the end so the existing contents copy across in one piece.
	sv.gapTo(sv.Length())
	grown := make([]T, newSize)
	copy(grown, sv.body[:sv.part1Length])
	sv.gapLength += newSize - len(sv.body)
	sv.body = grown
}

// ValueAt returns the element at position, or the zero value when out of range.
func (sv *SplitVector[T]) ValueAt(position int) T {
	var zero T
	if position < 0 {
		return zero
	}
	if position < sv.part1Length {
		return sv.body[position]
	}
	if position >= sv.Length() {
		return zero
	}
	return sv.body[sv.gapLength+position]
}

// SetValueAt replaces the element at position. Out-of-range positions are ignored.
func (sv *SplitVector[T]) SetValueAt(position int, v T) {
	if position < 0 {
		return
	}
	if position < sv.part1Length {
		sv.body[position] = v
		return
	}
	if position >= sv.Length() {
		return
	}
	sv.body[sv.gapLength+position] = v
}

// Insert inserts a single element at position.
func (sv *SplitVector[T]) Insert(position int, v T) {
	if position < 0 || position > sv.Length() {
		return
	}
	sv.roomFor(1)
	sv.gapTo(position)
	sv.body[sv.part1Length] = v
	sv.part1Length++
	sv.gapLength--
}

// InsertValue inserts n copies of v at position.
func (sv *SplitVector[T]) InsertValue(position, n int, v T) {
	if n <= 0 || position < 0 || position > sv.Length() {
		return
	}
	sv.roomFor(n)
	sv.gapTo(position)
	for i := range n {
		sv.body[sv.part1Length+i] = v
	}
	sv.part1Length += n
	sv.gapLength -= n
}

// InsertFromSlice inserts all of values at position.
func (sv *SplitVector[T]) InsertFromSlice(position int, values []T) {
	if len(values) == 0 || position < 0 || position > sv.Length() {
		return
	}
	sv.roomFor(len(values))
	sv.gapTo(position)
	copy(sv.body[sv.part1Length:], values)
	sv.part1Length += len(values)
	sv.gapLength -= len(values)
}

// Delete removes the element at position.
func (sv *SplitVector[T]) Delete(position int) {
	sv.DeleteRange(position, 1)
}

// DeleteRange removes deleteLength elements starting at position.
func (sv *SplitVector[T]) DeleteRange(position, deleteLength int) {
	if position < 0 || deleteLength <= 0 || position+deleteLength > sv.Length() {
		return
	}
	if position == 0 && deleteLength == sv.Length() {
		sv.DeleteAll()
		return
	}
	sv.gapTo(position)
	sv.gapLength += deleteLength
}

// DeleteAll removes every element and releases storage.
func (sv *SplitVector[T]) DeleteAll() {
	sv.body = nil
	sv.part1Length = 0
	sv.gapLength = 0
	sv.growSize = 8
}

// Range returns a copy of rangeLength elements starting at position.
func (sv *SplitVector[T]) Range(position, rangeLength int) []T {
	if position < 0 || rangeLength <= 0 || position+rangeLength > sv.Length() {
		return nil
	}
	out := make([]T, rangeLength)
	n := 0
	if position < sv.part1Length {
		n = copy(out, sv.body[position:min(sv.part1Length, position+rangeLength)])
	}
	if n < rangeLength {
		start := sv.gapLength + position + n
		copy(out[n:], sv.body[start:start+rangeLength-n])
	}
	return out
}
