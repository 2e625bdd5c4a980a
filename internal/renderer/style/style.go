package style

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/hyperion/internal/renderer/core"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// MaxRepresentationBytes limits an invisible representation.
const MaxRepresentationBytes = 4

// CaseForce changes how the text of a style is displayed.
type CaseForce int

const (
	CaseMixed CaseForce = iota
	CaseUpper
	CaseLower
	CaseCamel
)

var caseNames = [...]string{"mixed", "upper", "lower", "camel"}

// String returns the name ParseCaseForce accepts.
func (c CaseForce) String() string {
	if c >= 0 && int(c) < len(caseNames) {
		return caseNames[c]
	}
	return "unknown"
}

// ParseCaseForce parses "mixed", "upper", "lower" or "camel".
func ParseCaseForce(s string) (CaseForce, error) {
	for i, n := range caseNames {
		if strings.EqualFold(n, s) {
			return CaseForce(i), nil
		}
	}
	return CaseMixed, fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

// Style is the font and colour used for one class of text.
type Style struct {
	FontSpecification
	FontMeasurements

	Fore       core.ColourRGBA
	Back       core.ColourRGBA
	EOLFilled  bool
	Underline  bool
	CaseForce  CaseForce
	Visible    bool
	Changeable bool
	Hotspot    bool

	invisibleRepresentation string

	// Font is the realised font, set by ViewStyle.Refresh.
	Font surface.Font
}

// NewStyle returns a visible, changeable style in black on white.
func NewStyle(fontName string) Style {
	return Style{
		FontSpecification: NewFontSpecification(fontName, DefaultFontSize*FontSizeMultiplier),
		FontMeasurements:  DefaultMeasurements(),
		Fore:              core.ColourBlack,
		Back:              core.ColourWhite,
		Visible:           true,
		Changeable:        true,
	}
}

// Copy installs a realised font and its measurements.
func (s *Style) Copy(font surface.Font, fm FontMeasurements) {
	s.Font = font
	s.FontMeasurements = fm
}

// IsProtected reports whether text in this style may not be edited.
func (s *Style) IsProtected() bool {
	return !(s.Changeable && s.Visible)
}

// InvisibleRepresentation is drawn in place of text when the style is not
// visible.
func (s *Style) InvisibleRepresentation() string {
	return s.invisibleRepresentation
}

// SetInvisibleRepresentation sets the text drawn for an invisible style.
// It fails with ErrRepresentationTooLong above MaxRepresentationBytes.
func (s *Style) SetInvisibleRepresentation(rep string) error {
	if len(rep) > MaxRepresentationBytes {
		return fmt.Errorf("%w: %d bytes", ErrRepresentationTooLong, len(rep))
	}
	s.invisibleRepresentation = rep
	return nil
}

// ApplyCase returns text as displayed under the style's case force.
func (s *Style) ApplyCase(text string) string {
	switch s.CaseForce {
	case CaseUpper:
		return cases.Upper(language.Und).String(text)
	case CaseLower:
		return cases.Lower(language.Und).String(text)
	case CaseCamel:
		return cases.Title(language.Und).String(text)
	default:
		return text
	}
}
