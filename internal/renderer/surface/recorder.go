package surface

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/dshills/hyperion/internal/renderer/core"
)

// Call is one drawing operation captured by a Recorder.
type Call struct {
	Op     string
	Rect   core.PRectangle
	Points []core.Point
	Fill   core.ColourRGBA
	Stroke core.ColourRGBA
	Text   string
}

type recordedFont struct {
	params FontParameters
}

func (f *recordedFont) Parameters() FontParameters { return f.params }

// Recorder is a Surface that records drawing calls instead of painting.
// Font metrics scale with the font size: ascent equals the size, descent
// is a quarter of it and every character is half the size wide.
type Recorder struct {
	Calls []Call

	// Allocated counts successful AllocateFont calls.
	Allocated int

	// RejectFaces lists face names AllocateFont refuses.
	RejectFaces []string

	mode        Mode
	defaultFont *recordedFont
}

// NewRecorder returns an empty recorder in UTF-8 mode.
func NewRecorder() *Recorder {
	return &Recorder{
		mode:        Mode{CodePage: utf8CodePage},
		defaultFont: &recordedFont{params: FontParameters{FaceName: "default", Size: 10, Weight: WeightNormal}},
	}
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Ops returns the operation names recorded so far.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (r *Recorder) Mode() Mode { return r.mode }

func (r *Recorder) SetMode(m Mode) { r.mode = m }

func (r *Recorder) AllocateFont(fp FontParameters) (Font, error) {
	if fp.Size <= 0 {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, fp.Size)
	}
	if slices.Contains(r.RejectFaces, fp.FaceName) {
		return nil, fmt.Errorf("%w: face %q", ErrInvalidFont, fp.FaceName)
	}
	r.Allocated++
	return &recordedFont{params: fp}, nil
}

func (r *Recorder) DefaultFont() Font { return r.defaultFont }

func size(f Font) float64 {
	if f == nil {
		return 10
	}
	return f.Parameters().Size
}

func (r *Recorder) Ascent(f Font) float64 { return size(f) }

func (r *Recorder) Descent(f Font) float64 { return size(f) / 4 }

func (r *Recorder) InternalLeading(f Font) float64 { return size(f) / 8 }

func (r *Recorder) Height(f Font) float64 { return r.Ascent(f) + r.Descent(f) }

func (r *Recorder) AverageCharWidth(f Font) float64 { return size(f) / 2 }

func (r *Recorder) WidthText(f Font, text string) float64 {
	n := len(text)
	if r.mode.CodePage == utf8CodePage {
		n = utf8.RuneCountInString(text)
	}
	return float64(n) * size(f) / 2
}

func (r *Recorder) FillRectangle(rc core.PRectangle, fill core.Fill) {
	r.Calls = append(r.Calls, Call{Op: "FillRectangle", Rect: rc, Fill: fill.Colour})
}

func (r *Recorder) RectangleDraw(rc core.PRectangle, fs core.FillStroke) {
	r.Calls = append(r.Calls, Call{Op: "RectangleDraw", Rect: rc, Fill: fs.Fill.Colour, Stroke: fs.Stroke.Colour})
}

func (r *Recorder) AlphaRectangle(rc core.PRectangle, _ float64, fs core.FillStroke) {
	r.Calls = append(r.Calls, Call{Op: "AlphaRectangle", Rect: rc, Fill: fs.Fill.Colour, Stroke: fs.Stroke.Colour})
}

func (r *Recorder) GradientRectangle(rc core.PRectangle, stops []ColourStop, _ GradientOptions) {
	c := Call{Op: "GradientRectangle", Rect: rc}
	if len(stops) > 0 {
		c.Fill = stops[0].Colour
		c.Stroke = stops[len(stops)-1].Colour
	}
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) PolyLine(pts []core.Point, stroke core.Stroke) {
	r.Calls = append(r.Calls, Call{Op: "PolyLine", Points: append([]core.Point(nil), pts...), Stroke: stroke.Colour})
}

func (r *Recorder) Polygon(pts []core.Point, fs core.FillStroke) {
	r.Calls = append(r.Calls, Call{Op: "Polygon", Points: append([]core.Point(nil), pts...), Fill: fs.Fill.Colour, Stroke: fs.Stroke.Colour})
}

func (r *Recorder) DrawText(rc core.PRectangle, _ Font, _ float64, text string, fore, back core.ColourRGBA) {
	r.Calls = append(r.Calls, Call{Op: "DrawText", Rect: rc, Text: text, Fill: back, Stroke: fore})
}
