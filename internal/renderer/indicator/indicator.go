// Package indicator describes text decorations such as underlines, boxes
// and squiggles, and draws them onto a surface.
package indicator

import (
	"math"

	"github.com/dshills/hyperion/internal/renderer/core"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// Style is the visual kind of an indicator.
type Style int

const (
	Plain Style = iota
	Squiggle
	TT
	Diagonal
	Strike
	Hidden
	Box
	RoundBox
	StraightBox
	Dash
	Dots
	SquiggleLow
	DotBox
	SquigglePixmap
	CompositionThick
	CompositionThin
	FullBox
	TextFore
	Point
	PointCharacter
	Gradient
	GradientCentre
	PointTop
)

var styleNames = [...]string{
	"plain", "squiggle", "tt", "diagonal", "strike", "hidden", "box", "roundbox",
	"straightbox", "dash", "dots", "squigglelow", "dotbox", "squigglepixmap",
	"compositionthick", "compositionthin", "fullbox", "textfore", "point",
	"pointcharacter", "gradient", "gradientcentre", "pointtop",
}

// String returns the lower-case name of the style.
func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseStyle looks up a style by its lower-case name.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return Plain, false
}

// State selects the variant to draw.
type State int

const (
	StateNormal State = iota
	StateHover
)

// Flag holds indicator attribute bits.
type Flag int

const (
	FlagNone Flag = 0
	// FlagValueFore takes the normal colour from the indicator value.
	FlagValueFore Flag = 0x100
)

const (
	// ValueBit marks a value as carrying a colour.
	ValueBit = 0x1000000
	// ValueMask extracts the 0xBBGGRR colour from a value.
	ValueMask = 0xFFFFFF
)

// Defaults for new indicators.
const (
	DefaultFillAlpha    = 30
	DefaultOutlineAlpha = 50
)

// StyleAndColour is one visual variant of an indicator.
type StyleAndColour struct {
	Style Style
	Fore  core.ColourRGBA
}

// Indicator is a decoration descriptor with normal and hover variants.
type Indicator struct {
	Normal       StyleAndColour
	Hover        StyleAndColour
	Under        bool
	FillAlpha    int
	OutlineAlpha int
	StrokeWidth  float64
	attributes   Flag
}

// New creates an indicator whose hover variant matches the normal one.
func New(style Style, fore core.ColourRGBA) Indicator {
	sac := StyleAndColour{Style: style, Fore: fore}
	return Indicator{
		Normal:       sac,
		Hover:        sac,
		FillAlpha:    DefaultFillAlpha,
		OutlineAlpha: DefaultOutlineAlpha,
		StrokeWidth:  1,
	}
}

// Default is a black plain underline.
func Default() Indicator {
	return New(Plain, core.ColourBlack)
}

// IsDynamic reports whether hovering changes the appearance.
func (ind Indicator) IsDynamic() bool {
	return ind.Normal != ind.Hover
}

// OverridesTextFore reports whether either variant recolours the text.
func (ind Indicator) OverridesTextFore() bool {
	return ind.Normal.Style == TextFore || ind.Hover.Style == TextFore
}

// Flags returns the indicator flags.
func (ind Indicator) Flags() Flag { return ind.attributes }

// SetFlags replaces the indicator flags.
func (ind *Indicator) SetFlags(f Flag) { ind.attributes = f }

func alpha(c core.ColourRGBA, a int) core.ColourRGBA {
	return c.WithAlpha(uint8(min(max(a, 0), core.MaxByte)))
}

// Draw paints the indicator. rc is the decorated run, rcLine the whole line
// and rcCharacter the character under point styles.
func (ind Indicator) Draw(s surface.Surface, rc, rcLine, rcCharacter core.PRectangle, state State, value int) {
	sac := ind.Normal
	if ind.attributes&FlagValueFore != 0 {
		sac.Fore = core.FromRGB(uint32(value & ValueMask))
	}
	if state == StateHover {
		sac = ind.Hover
	}

	halfWidth := ind.StrokeWidth / 2
	stroke := core.Stroke{Colour: sac.Fore, Width: ind.StrokeWidth}
	ymid := math.Floor(rc.Centre().Y)

	full := rcLine.PixelAlign()
	full.Left = math.Floor(rc.Left)
	full.Right = math.Ceil(rc.Right)

	switch sac.Style {
	case Squiggle, SquigglePixmap:
		top := math.Floor(rc.Top)
		pts := []core.Point{{X: rc.Left, Y: top}}
		y := 2.0
		x := rc.Left + 2
		for ; x < rc.Right; x += 2 {
			pts = append(pts, core.Point{X: x, Y: top + y})
			y = 2 - y
		}
		pts = append(pts, core.Point{X: rc.Right, Y: top + y})
		s.PolyLine(pts, stroke)

	case SquiggleLow:
		top := math.Floor(rc.Top)
		pts := []core.Point{{X: rc.Left, Y: top}}
		y := 0.0
		for x := rc.Left + 3; x < rc.Right-1; x += 3 {
			pts = append(pts, core.Point{X: x - 1, Y: top + y})
			y = 1 - y
			pts = append(pts, core.Point{X: x, Y: top + y})
		}
		pts = append(pts, core.Point{X: rc.Right, Y: top + y})
		s.PolyLine(pts, stroke)

	case TT:
		s.PolyLine([]core.Point{{X: rc.Left, Y: ymid}, {X: rc.Right, Y: ymid}}, stroke)
		for x := rc.Left + 2; x <= rc.Right; x += 6 {
			s.PolyLine([]core.Point{{X: x, Y: ymid}, {X: x, Y: ymid + 2}}, stroke)
		}

	case Diagonal:
		for x := rc.Left; x < rc.Right; x += 4 {
			endX, endY := x+3, rc.Top-1
			if endX > rc.Right {
				endY += endX - rc.Right
				endX = rc.Right
			}
			s.PolyLine([]core.Point{{X: x, Y: rc.Top + 2}, {X: endX, Y: endY}}, stroke)
		}

	case Strike:
		s.FillRectangle(core.NewPRectangle(rc.Left, ymid-halfWidth, rc.Right, ymid+halfWidth), core.Fill{Colour: sac.Fore})

	case Hidden, TextFore:

	case Box:
		box := full
		box.Top++
		box.Bottom = ymid + 1
		s.RectangleDraw(box, core.FillStroke{
			Fill:   core.Fill{Colour: alpha(sac.Fore, 0)},
			Stroke: core.Stroke{Colour: alpha(sac.Fore, ind.OutlineAlpha), Width: ind.StrokeWidth},
		})

	case RoundBox, StraightBox, FullBox:
		box := full
		if sac.Style != FullBox {
			box.Top++
		}
		corner := 0.0
		if sac.Style == RoundBox {
			corner = 1
		}
		s.AlphaRectangle(box, corner, core.FillStroke{
			Fill:   core.Fill{Colour: alpha(sac.Fore, ind.FillAlpha)},
			Stroke: core.Stroke{Colour: alpha(sac.Fore, ind.OutlineAlpha), Width: ind.StrokeWidth},
		})

	case Gradient, GradientCentre:
		box := full
		box.Top++
		start := alpha(sac.Fore, ind.FillAlpha)
		end := alpha(sac.Fore, 0)
		stops := []surface.ColourStop{{Position: 0, Colour: start}, {Position: 1, Colour: end}}
		if sac.Style == GradientCentre {
			stops = []surface.ColourStop{{Position: 0, Colour: end}, {Position: 0.5, Colour: start}, {Position: 1, Colour: end}}
		}
		s.GradientRectangle(box, stops, surface.GradientTopToBottom)

	case DotBox:
		box := full
		box.Top++
		s.FillRectangle(box, core.Fill{Colour: alpha(sac.Fore, ind.FillAlpha)})
		dot := alpha(sac.Fore, ind.OutlineAlpha)
		for x := box.Left; x < box.Right; x += 2 {
			s.FillRectangle(core.NewPRectangle(x, box.Top, x+1, box.Top+1), core.Fill{Colour: dot})
			s.FillRectangle(core.NewPRectangle(x, box.Bottom-1, x+1, box.Bottom), core.Fill{Colour: dot})
		}

	case Dash:
		for x := math.Floor(rc.Left); x < rc.Right; x += 7 {
			s.FillRectangle(core.NewPRectangle(x, ymid, math.Min(x+3, rc.Right), ymid+ind.StrokeWidth), core.Fill{Colour: sac.Fore})
		}

	case Dots:
		step := math.Max(ind.StrokeWidth*2, 1)
		for x := math.Floor(rc.Left); x < rc.Right; x += step {
			s.FillRectangle(core.NewPRectangle(x, ymid, x+ind.StrokeWidth, ymid+ind.StrokeWidth), core.Fill{Colour: sac.Fore})
		}

	case CompositionThick:
		s.FillRectangle(core.NewPRectangle(rc.Left+1, rcLine.Bottom-2, rc.Right-1, rcLine.Bottom), core.Fill{Colour: sac.Fore})

	case CompositionThin:
		s.FillRectangle(core.NewPRectangle(rc.Left+1, rcLine.Bottom-2, rc.Right-1, rcLine.Bottom-1), core.Fill{Colour: sac.Fore})

	case Point, PointCharacter, PointTop:
		if rcCharacter.Width() < 0.1 {
			return
		}
		h := math.Floor(rc.Height() - 1)
		x := (rcCharacter.Left + rcCharacter.Right) / 2
		if sac.Style == Point {
			x = rcCharacter.Left
		}
		ix := math.Round(x) + 0.5
		var pts []core.Point
		if sac.Style == PointTop {
			iy := math.Floor(rcLine.Top+1) + 0.5
			pts = []core.Point{{X: ix - h, Y: iy}, {X: ix + h, Y: iy}, {X: ix, Y: iy + h}}
		} else {
			iy := math.Floor(rc.Top) + 0.5
			pts = []core.Point{{X: ix - h, Y: iy + h}, {X: ix + h, Y: iy + h}, {X: ix, Y: iy}}
		}
		s.Polygon(pts, core.FillStroke{Fill: core.Fill{Colour: sac.Fore}, Stroke: core.NewStroke(sac.Fore)})

	default:
		s.PolyLine([]core.Point{{X: rc.Left, Y: ymid}, {X: rc.Right, Y: ymid}}, stroke)
	}
}
