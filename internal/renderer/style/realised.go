package style

import (
	"math"

	"github.com/dshills/hyperion/internal/log"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// asciiGraphic is every printable ASCII character, measured to detect
// monospaced fonts.
const asciiGraphic = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

const monospaceEpsilon = 0.000001

// FontRealised is a cache entry: a specification and the font realised
// for it.
type FontRealised struct {
	Spec         FontSpecification
	Measurements FontMeasurements
	Font         surface.Font
}

func lessRealised(a, b *FontRealised) bool {
	return a.Spec.Less(b.Spec)
}

// Realise allocates the font on s and measures it. When the surface
// rejects the parameters the surface default font is used instead.
func (fr *FontRealised) Realise(s surface.Surface, zoomLevel int, technology Technology, localeName string) {
	spec := fr.Spec
	sizeZoomed := FontSizeZoomed(spec.Size, zoomLevel)
	fp := surface.FontParameters{
		FaceName:     spec.FontName,
		Size:         float64(sizeZoomed) / FontSizeMultiplier,
		Weight:       int(spec.Weight),
		Italic:       spec.Italic,
		Quality:      int(spec.Quality),
		Technology:   int(technology),
		CharacterSet: int(spec.CharacterSet),
		Stretch:      int(spec.Stretch),
		LocaleName:   localeName,
	}
	font, err := s.AllocateFont(fp)
	if err != nil {
		log.Warn(log.CatStyle, "font realisation failed, using default font",
			"font", spec.FontName, "size", fp.Size, "error", err)
		font = s.DefaultFont()
	}
	fr.Font = font

	m := FontMeasurements{
		Ascent:        math.Round(s.Ascent(font)),
		Descent:       math.Round(s.Descent(font)),
		CapitalHeight: s.Ascent(font) - s.InternalLeading(font),
		AveCharWidth:  s.AverageCharWidth(font),
		SpaceWidth:    s.WidthText(font, " "),
		SizeZoomed:    sizeZoomed,
	}
	m.MonospaceCharacterWidth = m.AveCharWidth
	if spec.CheckMonospaced {
		lo, hi := math.Inf(1), 0.0
		for i := 0; i < len(asciiGraphic); i++ {
			w := s.WidthText(font, asciiGraphic[i:i+1])
			lo = math.Min(lo, w)
			hi = math.Max(hi, w)
		}
		if hi > 0 && (hi-lo)/hi < monospaceEpsilon {
			m.MonospaceASCII = true
			m.MonospaceCharacterWidth = hi
		}
	}
	fr.Measurements = m
}
