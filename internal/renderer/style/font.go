package style

import (
	"cmp"
)

// FontSizeMultiplier converts points to the hundredths stored in
// FontSpecification.Size.
const FontSizeMultiplier = 100

// DefaultFontName is the face used by a fresh default style.
const DefaultFontName = "monospace"

// DefaultFontSize is the default size in points.
const DefaultFontSize = 10

// FontWeight is a CSS-like font weight.
type FontWeight int

const (
	WeightNormal   FontWeight = 400
	WeightSemiBold FontWeight = 600
	WeightBold     FontWeight = 700
)

// FontStretch is the font width class.
type FontStretch int

const (
	StretchUltraCondensed FontStretch = iota + 1
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// CharacterSet selects a legacy character set for font matching.
type CharacterSet int

const (
	CharsetANSI    CharacterSet = 0
	CharsetDefault CharacterSet = 1
)

// FontQuality controls antialiasing.
type FontQuality int

const (
	QualityDefault FontQuality = iota
	QualityNonAntialiased
	QualityAntialiased
	QualityLCDOptimized
)

// Technology selects the drawing technology fonts are realised for.
type Technology int

const (
	TechnologyDefault Technology = iota
	TechnologyDirectWrite
	TechnologyDirectWriteRetain
	TechnologyDirectWriteDC
)

// FontSpecification identifies a font. It is the key of the realised font
// cache and must stay comparable.
type FontSpecification struct {
	FontName        string
	Size            int // points * FontSizeMultiplier
	Weight          FontWeight
	Stretch         FontStretch
	Italic          bool
	CharacterSet    CharacterSet
	Quality         FontQuality
	CheckMonospaced bool
}

// NewFontSpecification returns a normal-weight specification. size is in
// hundredths of a point.
func NewFontSpecification(name string, size int) FontSpecification {
	return FontSpecification{
		FontName:     name,
		Size:         size,
		Weight:       WeightNormal,
		Stretch:      StretchNormal,
		CharacterSet: CharsetDefault,
	}
}

// Compare orders specifications by name, weight, italic, size, stretch,
// character set, quality and monospace check. Italic sorts before upright.
func (fs FontSpecification) Compare(other FontSpecification) int {
	if c := cmp.Compare(fs.FontName, other.FontName); c != 0 {
		return c
	}
	if c := cmp.Compare(fs.Weight, other.Weight); c != 0 {
		return c
	}
	if fs.Italic != other.Italic {
		if fs.Italic {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(fs.Size, other.Size); c != 0 {
		return c
	}
	if c := cmp.Compare(fs.Stretch, other.Stretch); c != 0 {
		return c
	}
	if c := cmp.Compare(fs.CharacterSet, other.CharacterSet); c != 0 {
		return c
	}
	if c := cmp.Compare(fs.Quality, other.Quality); c != 0 {
		return c
	}
	return cmp.Compare(boolRank(fs.CheckMonospaced), boolRank(other.CheckMonospaced))
}

// Less reports whether fs sorts before other.
func (fs FontSpecification) Less(other FontSpecification) bool {
	return fs.Compare(other) < 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FontMeasurements are the metrics of a realised font.
type FontMeasurements struct {
	Ascent                  float64
	Descent                 float64
	CapitalHeight           float64 // ascent minus internal leading
	AveCharWidth            float64
	MonospaceCharacterWidth float64
	SpaceWidth              float64
	MonospaceASCII          bool
	SizeZoomed              int
}

// DefaultMeasurements are used before a style has been realised.
func DefaultMeasurements() FontMeasurements {
	return FontMeasurements{
		Ascent:                  1,
		Descent:                 1,
		CapitalHeight:           1,
		AveCharWidth:            1,
		MonospaceCharacterWidth: 1,
		SpaceWidth:              1,
		SizeZoomed:              2,
	}
}

// FontSizeZoomed applies a zoom level in points to size, never going
// below two points.
func FontSizeZoomed(size, zoomLevel int) int {
	return max(size+zoomLevel*FontSizeMultiplier, 2*FontSizeMultiplier)
}
