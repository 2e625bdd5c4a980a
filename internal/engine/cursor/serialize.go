package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection indicates a malformed serialised selection.
var ErrInvalidSelection = errors.New("invalid selection text")

var typePrefixes = map[SelectionType]string{
	SelRectangle: "R",
	SelLines:     "L",
	SelThin:      "T",
}

// String serialises the selection. The zero selection serialises to "".
func (s Selection) String() string {
	if len(s.ranges) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(typePrefixes[s.selType])
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteByte(',')
		}
		writePosition(&sb, r.Anchor)
		if !r.Empty() {
			sb.WriteByte('-')
			writePosition(&sb, r.Caret)
		}
	}
	if len(s.ranges) > 1 {
		fmt.Fprintf(&sb, "#%d", s.mainRange)
	}
	return sb.String()
}

func writePosition(sb *strings.Builder, sp SelectionPosition) {
	sb.WriteString(strconv.Itoa(sp.Position))
	if sp.VirtualSpace > 0 {
		fmt.Fprintf(sb, "v%d", sp.VirtualSpace)
	}
}

// Parse reads a selection produced by Selection.String.
func Parse(text string) (Selection, error) {
	if text == "" {
		return Selection{}, nil
	}
	var sel Selection
	for t, prefix := range typePrefixes {
		if strings.HasPrefix(text, prefix) {
			sel.selType = t
			text = text[len(prefix):]
			break
		}
	}

	mainRange := 0
	if i := strings.IndexByte(text, '#'); i >= 0 {
		n, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return Selection{}, fmt.Errorf("%w: main range %q", ErrInvalidSelection, text[i+1:])
		}
		mainRange = n
		text = text[:i]
	}

	for _, part := range strings.Split(text, ",") {
		anchorText, caretText, hasCaret := strings.Cut(part, "-")
		anchor, err := parsePosition(anchorText)
		if err != nil {
			return Selection{}, err
		}
		caret := anchor
		if hasCaret {
			if caret, err = parsePosition(caretText); err != nil {
				return Selection{}, err
			}
		}
		sel.ranges = append(sel.ranges, SelectionRange{Caret: caret, Anchor: anchor})
	}

	if mainRange < 0 || mainRange >= len(sel.ranges) {
		return Selection{}, fmt.Errorf("%w: main range %d of %d", ErrInvalidSelection, mainRange, len(sel.ranges))
	}
	sel.mainRange = mainRange
	return sel, nil
}

func parsePosition(text string) (SelectionPosition, error) {
	posText, virtualText, hasVirtual := strings.Cut(text, "v")
	pos, err := strconv.Atoi(posText)
	if err != nil || pos < 0 {
		return SelectionPosition{}, fmt.Errorf("%w: position %q", ErrInvalidSelection, text)
	}
	sp := SelectionPosition{Position: pos}
	if hasVirtual {
		v, err := strconv.Atoi(virtualText)
		if err != nil || v < 0 {
			return SelectionPosition{}, fmt.Errorf("%w: virtual space %q", ErrInvalidSelection, text)
		}
		sp.VirtualSpace = v
	}
	return sp, nil
}
