package cursor

import (
	"github.com/dshills/hyperion/internal/engine/buffer"
)

// SelectionPosition is a document position plus virtual space columns
// beyond the end of its line.
type SelectionPosition struct {
	Position     buffer.Position
	VirtualSpace int
}

// NewSelectionPosition creates a position without virtual space.
func NewSelectionPosition(pos buffer.Position) SelectionPosition {
	return SelectionPosition{Position: pos}
}

// Compare returns -1, 0 or 1 ordering by position then virtual space.
func (sp SelectionPosition) Compare(other SelectionPosition) int {
	switch {
	case sp.Position < other.Position:
		return -1
	case sp.Position > other.Position:
		return 1
	case sp.VirtualSpace < other.VirtualSpace:
		return -1
	case sp.VirtualSpace > other.VirtualSpace:
		return 1
	}
	return 0
}

// Less reports whether sp sorts before other.
func (sp SelectionPosition) Less(other SelectionPosition) bool {
	return sp.Compare(other) < 0
}

// IsValid reports whether the position is set.
func (sp SelectionPosition) IsValid() bool {
	return sp.Position != buffer.InvalidPosition
}

// MoveForInsertDelete adjusts the position for an edit of length bytes at
// startChange. Positions inside a deleted span collapse to its start. An
// insertion exactly at the position moves it only when moveForEqual is set,
// though virtual space at that point is always consumed.
func (sp SelectionPosition) MoveForInsertDelete(insertion bool, startChange buffer.Position, length int, moveForEqual bool) SelectionPosition {
	if insertion {
		if sp.Position == startChange {
			virtualLengthRemove := min(length, sp.VirtualSpace)
			sp.VirtualSpace -= virtualLengthRemove
			sp.Position += virtualLengthRemove
			if moveForEqual {
				sp.Position += length - virtualLengthRemove
			}
		} else if sp.Position > startChange {
			sp.Position += length
		}
		return sp
	}
	if sp.Position == startChange {
		sp.VirtualSpace = 0
	}
	if sp.Position > startChange {
		endDeletion := startChange + length
		if sp.Position > endDeletion {
			sp.Position -= length
		} else {
			sp.Position = startChange
			sp.VirtualSpace = 0
		}
	}
	return sp
}
