package style

import "github.com/dshills/hyperion/internal/renderer/core"

// Layer selects where translucent decorations are drawn.
type Layer int

const (
	LayerBase Layer = iota
	LayerUnderText
	LayerOverText
)

// MarginType is what a margin displays.
type MarginType int

const (
	MarginSymbol MarginType = iota
	MarginNumber
	MarginBack
	MarginFore
	MarginText
	MarginRText
	MarginColour
)

// CursorShape is the mouse cursor shown over a margin.
type CursorShape int

const (
	CursorNormal   CursorShape = -1
	CursorArrow    CursorShape = 2
	CursorWait     CursorShape = 4
	CursorReverse  CursorShape = 7
	CursorHand     CursorShape = 8
	CursorRevArrow CursorShape = 9
)

// MaskFolders selects the marker numbers reserved for fold margins.
const MaskFolders uint32 = 0xFE000000

// MarkerMax is the highest marker number.
const MarkerMax = 31

// MaxMargin is the highest margin index of a new ViewStyle.
const MaxMargin = 4

// MarginStyle describes one margin.
type MarginStyle struct {
	Type      MarginType
	Back      core.ColourRGBA
	Width     int
	Mask      uint32
	Sensitive bool
	Cursor    CursorShape
}

// NewMarginStyle returns an insensitive margin.
func NewMarginStyle(t MarginType, width int, mask uint32) MarginStyle {
	return MarginStyle{
		Type:   t,
		Back:   core.NewColourRGB(0xc0, 0xc0, 0xc0),
		Width:  width,
		Mask:   mask,
		Cursor: CursorReverse,
	}
}

// ShowsFolding reports whether the margin displays fold markers.
func (m MarginStyle) ShowsFolding() bool {
	return m.Mask&MaskFolders != 0
}

// MarkerSymbol is the shape of a line marker.
type MarkerSymbol int

const (
	MarkCircle MarkerSymbol = iota
	MarkRoundRect
	MarkArrow
	MarkSmallRect
	MarkShortArrow
	MarkEmpty
	MarkArrowDown
	MarkMinus
	MarkPlus
	MarkVLine
	MarkLCorner
	MarkTCorner
	MarkBoxPlus
	MarkBoxPlusConnected
	MarkBoxMinus
	MarkBoxMinusConnected
	MarkLCornerCurve
	MarkTCornerCurve
	MarkCirclePlus
	MarkCirclePlusConnected
	MarkCircleMinus
	MarkCircleMinusConnected
	MarkBackground
	MarkDotDotDot
	MarkArrows
	MarkPixmap
	MarkFullRect
	MarkLeftRect
	MarkAvailable
	MarkUnderline
	MarkRGBAImage
	MarkBookmark
	MarkVerticalBookmark
	MarkBar
)

// MarkerFlag holds marker option bits.
type MarkerFlag int

const (
	MarkerFlagNone MarkerFlag = 0
	// MarkerFlagWrapped draws the marker on every wrapped subline.
	MarkerFlagWrapped MarkerFlag = 1
)

// AlphaNoAlpha disables translucency for markers.
const AlphaNoAlpha = 256

// LineMarker is the appearance of one marker number.
type LineMarker struct {
	MarkType     MarkerSymbol
	Fore         core.ColourRGBA
	Back         core.ColourRGBA
	BackSelected core.ColourRGBA
	Layer        Layer
	Alpha        int
	StrokeWidth  float64
	Flags        MarkerFlag
}

// NewLineMarker returns a black-on-white circle.
func NewLineMarker() LineMarker {
	return LineMarker{
		MarkType:     MarkCircle,
		Fore:         core.ColourBlack,
		Back:         core.ColourWhite,
		BackSelected: core.NewColourRGB(0xff, 0, 0),
		Alpha:        AlphaNoAlpha,
		StrokeWidth:  1,
	}
}
