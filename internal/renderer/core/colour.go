package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColourRGBA is a colour with alpha packed as 0xAABBGGRR.
type ColourRGBA uint32

// Colour limits.
const (
	MaxByte     = 0xff
	AlphaOpaque = 0xff
)

// Common colours.
const (
	ColourBlack ColourRGBA = 0xff000000
	ColourWhite ColourRGBA = 0xffffffff
)

// NewColourRGBA creates a colour from components.
func NewColourRGBA(r, g, b, a uint8) ColourRGBA {
	return ColourRGBA(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// NewColourRGB creates an opaque colour.
func NewColourRGB(r, g, b uint8) ColourRGBA {
	return NewColourRGBA(r, g, b, AlphaOpaque)
}

// FromRGB creates an opaque colour from a 0xBBGGRR value.
func FromRGB(rgb uint32) ColourRGBA {
	return ColourRGBA(rgb&0xffffff) | ColourRGBA(AlphaOpaque)<<24
}

// ParseColour parses "#rrggbb" or "#rrggbbaa".
func ParseColour(s string) (ColourRGBA, error) {
	if len(s) == 9 && s[0] == '#' {
		c, err := ParseColour(s[:7])
		if err != nil {
			return 0, err
		}
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return 0, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		return c.WithAlpha(a), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return NewColourRGB(r, g, b), nil
}

// R returns the red component.
func (c ColourRGBA) R() uint8 { return uint8(c) }

// G returns the green component.
func (c ColourRGBA) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ColourRGBA) B() uint8 { return uint8(c >> 16) }

// A returns the alpha component.
func (c ColourRGBA) A() uint8 { return uint8(c >> 24) }

// OpaqueRGB returns the colour value without alpha, as 0xBBGGRR.
func (c ColourRGBA) OpaqueRGB() uint32 {
	return uint32(c) & 0xffffff
}

// Opaque returns the colour with full alpha.
func (c ColourRGBA) Opaque() ColourRGBA {
	return c.WithAlpha(AlphaOpaque)
}

// WithAlpha returns the colour with alpha a.
func (c ColourRGBA) WithAlpha(a uint8) ColourRGBA {
	return ColourRGBA(c.OpaqueRGB()) | ColourRGBA(a)<<24
}

// IsOpaque reports whether alpha is full.
func (c ColourRGBA) IsOpaque() bool {
	return c.A() == AlphaOpaque
}

// GetAlpha returns alpha as a fraction.
func (c ColourRGBA) GetAlpha() float64 {
	return float64(c.A()) / MaxByte
}

func (c ColourRGBA) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R()) / MaxByte, G: float64(c.G()) / MaxByte, B: float64(c.B()) / MaxByte}
}

func fromColorful(cc colorful.Color, a uint8) ColourRGBA {
	r, g, b := cc.Clamped().RGB255()
	return NewColourRGBA(r, g, b, a)
}

// MixedWith returns the colour proportion of the way to other. Alpha mixes
// linearly too.
func (c ColourRGBA) MixedWith(other ColourRGBA, proportion float64) ColourRGBA {
	mixed := c.colorful().BlendRgb(other.colorful(), proportion)
	a := float64(c.A()) + (float64(other.A())-float64(c.A()))*proportion
	return fromColorful(mixed, uint8(a+0.5))
}

// MixedWithHalf returns the colour half way to other.
func (c ColourRGBA) MixedWithHalf(other ColourRGBA) ColourRGBA {
	return c.MixedWith(other, 0.5)
}

// Over composites c over an opaque background.
func (c ColourRGBA) Over(background ColourRGBA) ColourRGBA {
	if c.IsOpaque() {
		return c
	}
	return background.Opaque().MixedWith(c.Opaque(), c.GetAlpha())
}

// Luminance returns perceived lightness in [0, 1].
func (c ColourRGBA) Luminance() float64 {
	_, _, l := c.colorful().Hcl()
	return l
}

// String returns "#rrggbbaa".
func (c ColourRGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// Fill is a solid fill colour.
type Fill struct {
	Colour ColourRGBA
}

// Stroke is an outline colour and width.
type Stroke struct {
	Colour ColourRGBA
	Width  float64
}

// NewStroke creates a stroke of width 1.
func NewStroke(c ColourRGBA) Stroke {
	return Stroke{Colour: c, Width: 1}
}

// FillStroke pairs a fill with an outline.
type FillStroke struct {
	Fill   Fill
	Stroke Stroke
}

// NewFillStroke creates a fill with a width 1 outline.
func NewFillStroke(fill, stroke ColourRGBA) FillStroke {
	return FillStroke{Fill: Fill{Colour: fill}, Stroke: NewStroke(stroke)}
}
