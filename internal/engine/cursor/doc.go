// Package cursor provides the selection model of an editing view.
//
// A Selection holds one or more SelectionRanges. Each range has an anchor
// (where the selection started) and a caret (where typing occurs); either may
// carry virtual space past the end of a line. One range is the main range.
//
// Selections are copied by value through Clone so that undo history can keep
// snapshots without aliasing the live selection. String and Parse convert a
// selection to and from a compact text form:
//
//	"5"            caret at 5
//	"2-9"          anchor 2, caret 9
//	"R2-9,12-19#1" rectangular, two ranges, main range 1
//	"4v3"          caret at 4 with 3 columns of virtual space
//
// Selection is not safe for concurrent use.
package cursor
