package core

import (
	"fmt"
	"math"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// PRectangle is a rectangle with right and bottom exclusive.
type PRectangle struct {
	Left, Top, Right, Bottom float64
}

// NewPRectangle creates a rectangle from its edges.
func NewPRectangle(left, top, right, bottom float64) PRectangle {
	return PRectangle{Left: left, Top: top, Right: right, Bottom: bottom}
}

// FromInts creates a rectangle from integer edges.
func FromInts(left, top, right, bottom int) PRectangle {
	return PRectangle{Left: float64(left), Top: float64(top), Right: float64(right), Bottom: float64(bottom)}
}

// Width returns the width.
func (rc PRectangle) Width() float64 { return rc.Right - rc.Left }

// Height returns the height.
func (rc PRectangle) Height() float64 { return rc.Bottom - rc.Top }

// Empty reports whether the rectangle has no area.
func (rc PRectangle) Empty() bool {
	return rc.Height() <= 0 || rc.Width() <= 0
}

// Contains reports whether pt is inside.
func (rc PRectangle) Contains(pt Point) bool {
	return pt.X >= rc.Left && pt.X <= rc.Right && pt.Y >= rc.Top && pt.Y <= rc.Bottom
}

// Intersects reports whether the rectangles overlap.
func (rc PRectangle) Intersects(other PRectangle) bool {
	return rc.Right > other.Left && rc.Left < other.Right &&
		rc.Bottom > other.Top && rc.Top < other.Bottom
}

// Inset returns the rectangle shrunk by delta on every side.
func (rc PRectangle) Inset(delta float64) PRectangle {
	return PRectangle{Left: rc.Left + delta, Top: rc.Top + delta, Right: rc.Right - delta, Bottom: rc.Bottom - delta}
}

// Move returns the rectangle offset by (dx, dy).
func (rc PRectangle) Move(dx, dy float64) PRectangle {
	return PRectangle{Left: rc.Left + dx, Top: rc.Top + dy, Right: rc.Right + dx, Bottom: rc.Bottom + dy}
}

// Centre returns the middle point.
func (rc PRectangle) Centre() Point {
	return Point{X: (rc.Left + rc.Right) / 2, Y: (rc.Top + rc.Bottom) / 2}
}

// PixelAlign rounds the edges to whole pixels.
func (rc PRectangle) PixelAlign() PRectangle {
	return PRectangle{
		Left:   math.Round(rc.Left),
		Top:    math.Round(rc.Top),
		Right:  math.Round(rc.Right),
		Bottom: math.Round(rc.Bottom),
	}
}

// String formats the rectangle as its four edges.
func (rc PRectangle) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", rc.Left, rc.Top, rc.Right, rc.Bottom)
}
