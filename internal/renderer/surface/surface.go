// Package surface defines the drawing contract used by styles and
// indicators, and a terminal implementation of it backed by tcell.
package surface

import (
	"errors"

	"github.com/dshills/hyperion/internal/renderer/core"
)

// ErrInvalidFont is returned when font parameters cannot be realised.
var ErrInvalidFont = errors.New("invalid font parameters")

// Mode carries the text encoding and direction used for measuring.
type Mode struct {
	CodePage int
	BidiR2L  bool
}

// Weight values for FontParameters.
const (
	WeightNormal   = 400
	WeightSemiBold = 600
	WeightBold     = 700
)

// FontParameters describe a font to realise.
type FontParameters struct {
	FaceName     string
	Size         float64
	Weight       int
	Italic       bool
	Quality      int
	Technology   int
	CharacterSet int
	Stretch      int
	LocaleName   string
}

// Font is a realised font handle.
type Font interface {
	Parameters() FontParameters
}

// ColourStop is a position along a gradient and its colour.
type ColourStop struct {
	Position float64
	Colour   core.ColourRGBA
}

// GradientOptions selects the direction of a gradient.
type GradientOptions int

const (
	GradientTopToBottom GradientOptions = iota
	GradientLeftToRight
)

// Surface is the drawing target. Coordinates are in surface units.
// Implementations should be pointer types: style.ViewStyle reuses realised
// fonts only while it is refreshed on the same comparable surface.
type Surface interface {
	Mode() Mode
	SetMode(Mode)

	AllocateFont(FontParameters) (Font, error)
	DefaultFont() Font
	Ascent(Font) float64
	Descent(Font) float64
	InternalLeading(Font) float64
	Height(Font) float64
	AverageCharWidth(Font) float64
	WidthText(Font, string) float64

	FillRectangle(rc core.PRectangle, fill core.Fill)
	RectangleDraw(rc core.PRectangle, fs core.FillStroke)
	AlphaRectangle(rc core.PRectangle, cornerSize float64, fs core.FillStroke)
	GradientRectangle(rc core.PRectangle, stops []ColourStop, opts GradientOptions)
	PolyLine(pts []core.Point, stroke core.Stroke)
	Polygon(pts []core.Point, fs core.FillStroke)
	DrawText(rc core.PRectangle, font Font, ybase float64, text string, fore, back core.ColourRGBA)
}
