package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRangeBasics(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		valid  bool
		empty  bool
		length Position
		first  Position
		last   Position
	}{
		{"single position", NewRange(5), true, true, 0, 5, 5},
		{"forward", NewRangeSpan(2, 7), true, false, 5, 2, 7},
		{"backward", NewRangeSpan(7, 2), true, false, 5, 2, 7},
		{"invalid start", NewRangeSpan(InvalidPosition, 3), false, false, 4, InvalidPosition, 3},
		{"invalid both", NewRange(InvalidPosition), false, true, 0, InvalidPosition, InvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.r.Valid())
			assert.Equal(t, tt.empty, tt.r.Empty())
			assert.Equal(t, tt.length, tt.r.Length())
			assert.Equal(t, tt.first, tt.r.First())
			assert.Equal(t, tt.last, tt.r.Last())
		})
	}
}

func TestRangeContains(t *testing.T) {
	forward := NewRangeSpan(10, 20)
	backward := NewRangeSpan(20, 10)

	for _, r := range []Range{forward, backward} {
		assert.False(t, r.Contains(9), "%v", r)
		assert.True(t, r.Contains(10), "%v", r)
		assert.True(t, r.Contains(15), "%v", r)
		assert.True(t, r.Contains(20), "%v", r)
		assert.False(t, r.Contains(21), "%v", r)

		assert.True(t, r.ContainsCharacter(10), "%v", r)
		assert.True(t, r.ContainsCharacter(19), "%v", r)
		assert.False(t, r.ContainsCharacter(20), "%v", r)
	}

	empty := NewRange(4)
	assert.True(t, empty.Contains(4))
	assert.False(t, empty.ContainsCharacter(4))
}

func TestRangeContainsRangeAndOverlaps(t *testing.T) {
	outer := NewRangeSpan(0, 10)

	assert.True(t, outer.ContainsRange(NewRangeSpan(2, 8)))
	assert.True(t, outer.ContainsRange(NewRangeSpan(8, 2)))
	assert.True(t, outer.ContainsRange(outer))
	assert.False(t, outer.ContainsRange(NewRangeSpan(5, 11)))

	assert.True(t, outer.Overlaps(NewRangeSpan(10, 15)), "touching endpoints overlap")
	assert.True(t, outer.Overlaps(NewRangeSpan(-5, 20)), "enclosing range overlaps")
	assert.True(t, NewRangeSpan(-5, 20).Overlaps(outer))
	assert.False(t, outer.Overlaps(NewRangeSpan(11, 15)))
}

func TestRangeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 1000).Draw(t, "a")
		b := rapid.IntRange(0, 1000).Draw(t, "b")

		r := NewRangeSpan(a, b)
		if r.Length() != NewRangeSpan(b, a).Length() {
			t.Fatalf("length not symmetric for %v", r)
		}
		if r.Empty() {
			return
		}
		if !r.Contains(r.First()) || !r.Contains(r.Last()) {
			t.Fatalf("%v does not contain its endpoints", r)
		}
		if r.ContainsCharacter(r.Last()) {
			t.Fatalf("%v contains the character at its last position", r)
		}
		if !r.ContainsRange(NewRangeSpan(r.Last(), r.First())) {
			t.Fatalf("%v does not contain its reverse", r)
		}
	})
}
