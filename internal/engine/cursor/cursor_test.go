package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRangeBasics(t *testing.T) {
	r := NewSelectionRange(3, 9)
	assert.False(t, r.Empty())
	assert.Equal(t, 6, r.Length())
	assert.Equal(t, 3, r.Start().Position)
	assert.Equal(t, 9, r.End().Position)
	assert.True(t, r.Contains(9))
	assert.False(t, r.ContainsCharacter(9))

	c := NewCaretRange(4)
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Length())
}

func TestSelectionDefaults(t *testing.T) {
	var zero Selection
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Count())

	sel := NewSelection()
	assert.False(t, sel.IsZero())
	assert.Equal(t, 1, sel.Count())
	assert.True(t, sel.Empty())
	assert.Equal(t, 0, sel.MainCaret())
}

func TestSelectionMultipleRanges(t *testing.T) {
	sel := NewSelection()
	sel.SetSelection(NewSelectionRange(5, 2))
	sel.AddSelection(NewSelectionRange(20, 10))

	assert.Equal(t, 2, sel.Count())
	assert.Equal(t, 1, sel.Main())
	assert.Equal(t, 20, sel.MainCaret())
	assert.Equal(t, 10, sel.MainAnchor())
	assert.Equal(t, 13, sel.Length())

	assert.Equal(t, InSelectionMain, sel.CharacterInSelection(15))
	assert.Equal(t, InSelectionAdditional, sel.CharacterInSelection(3))
	assert.Equal(t, InSelectionNone, sel.CharacterInSelection(20))
	assert.Equal(t, InSelectionMain, sel.InSelectionForEOL(20))

	sel.SetRange(0, NewCaretRange(4))
	sel.SetRange(7, NewCaretRange(9))
	assert.Equal(t, NewCaretRange(4), sel.Range(0))

	sel.DropSelection(0)
	assert.Equal(t, 1, sel.Count())
	assert.Equal(t, 0, sel.Main())
	assert.Equal(t, 20, sel.MainCaret())

	sel.DropSelection(0)
	assert.Equal(t, 1, sel.Count(), "last range is kept")
}

func TestSelectionRemoveDuplicates(t *testing.T) {
	sel := NewSelectionFrom(NewCaretRange(3), NewCaretRange(7), NewCaretRange(3), NewCaretRange(7), NewSelectionRange(9, 1))
	sel.SetMain(3)

	sel.RemoveDuplicates()

	assert.Equal(t, []SelectionRange{NewCaretRange(3), NewCaretRange(7), NewSelectionRange(9, 1)}, sel.Ranges())
	assert.Equal(t, 1, sel.Main(), "main moves to the surviving equal range")
	assert.Equal(t, 7, sel.MainCaret())

	sel.SetMain(2)
	sel.RemoveDuplicates()
	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, 2, sel.Main())
}

func TestSelectionCloneIsIndependent(t *testing.T) {
	sel := NewSelectionFrom(NewSelectionRange(1, 1), NewSelectionRange(8, 4))
	snap := sel.Clone()

	sel.SetRangeMain(NewCaretRange(30))
	assert.Equal(t, 8, snap.MainCaret())
	assert.True(t, snap.Equal(NewSelectionFrom(NewSelectionRange(1, 1), NewSelectionRange(8, 4))))
	assert.False(t, snap.Equal(sel))
}

func TestMovePositions(t *testing.T) {
	tests := []struct {
		name      string
		r         SelectionRange
		insertion bool
		start     int
		length    int
		want      SelectionRange
	}{
		{"insert before", NewSelectionRange(10, 5), true, 0, 3, NewSelectionRange(13, 8)},
		{"insert after", NewSelectionRange(10, 5), true, 20, 3, NewSelectionRange(10, 5)},
		{"insert at start keeps text selected", NewSelectionRange(10, 5), true, 5, 2, NewSelectionRange(12, 7)},
		{"insert at end does not grow", NewSelectionRange(10, 5), true, 10, 2, NewSelectionRange(10, 5)},
		{"insert at caret moves caret", NewCaretRange(4), true, 4, 3, NewCaretRange(7)},
		{"delete before", NewSelectionRange(10, 5), false, 0, 2, NewSelectionRange(8, 3)},
		{"delete covering", NewSelectionRange(10, 5), false, 4, 10, NewCaretRange(4)},
		{"delete inside", NewSelectionRange(10, 5), false, 6, 2, NewSelectionRange(8, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelectionFrom(tt.r)
			sel.MovePositions(tt.insertion, tt.start, tt.length)
			assert.Equal(t, tt.want, sel.RangeMain())
		})
	}
}

func TestVirtualSpaceConsumedByInsertion(t *testing.T) {
	sp := SelectionPosition{Position: 4, VirtualSpace: 3}
	got := sp.MoveForInsertDelete(true, 4, 3, false)
	assert.Equal(t, SelectionPosition{Position: 7}, got)
}

func TestSerialiseRoundTrip(t *testing.T) {
	cases := []string{"5", "2-9", "R2-9,12-19#1", "4v3", "L0-10", "T3-3v2,7#0"}
	for _, text := range cases {
		sel, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, sel.String())
	}

	zero, err := Parse("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"x", "1-", "1#3", "-1", "2v-1", "1,2#x"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrInvalidSelection, text)
	}
}
