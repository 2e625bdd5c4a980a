package document

import "github.com/dshills/hyperion/internal/engine/buffer"

func braceOpposite(ch byte) (byte, int) {
	switch ch {
	case '(':
		return ')', 1
	case ')':
		return '(', -1
	case '[':
		return ']', 1
	case ']':
		return '[', -1
	case '{':
		return '}', 1
	case '}':
		return '{', -1
	case '<':
		return '>', 1
	case '>':
		return '<', -1
	}
	return 0, 0
}

// IsBrace reports whether ch is one of ()[]{}<>.
func IsBrace(ch byte) bool {
	_, dir := braceOpposite(ch)
	return dir != 0
}

// BraceMatch returns the position of the brace matching the one at pos, or
// buffer.InvalidPosition. Only braces with the same style byte take part.
func (d *Document) BraceMatch(pos buffer.Position) buffer.Position {
	if pos < 0 || pos >= d.Length() {
		return buffer.InvalidPosition
	}
	ch := d.CharAt(pos)
	match, dir := braceOpposite(ch)
	if dir == 0 {
		return buffer.InvalidPosition
	}
	style := d.StyleAt(pos)
	depth := 1
	for p := pos + dir; p >= 0 && p < d.Length(); p += dir {
		c := d.CharAt(p)
		if (c != ch && c != match) || d.StyleAt(p) != style {
			continue
		}
		if c == ch {
			depth++
		} else {
			depth--
		}
		if depth == 0 {
			return p
		}
	}
	return buffer.InvalidPosition
}
