package style

import "github.com/dshills/hyperion/internal/renderer/core"

// Wrap is the line wrapping mode.
type Wrap int

const (
	WrapNone Wrap = iota
	WrapWord
	WrapChar
	WrapWhiteSpace
)

// WrapVisualFlag bits mark wrapped lines.
type WrapVisualFlag int

const (
	WrapFlagNone   WrapVisualFlag = 0
	WrapFlagEnd    WrapVisualFlag = 1
	WrapFlagStart  WrapVisualFlag = 2
	WrapFlagMargin WrapVisualFlag = 4
)

// WrapVisualLocation bits place the wrap flags near the text.
type WrapVisualLocation int

const (
	WrapLocationDefault     WrapVisualLocation = 0
	WrapLocationEndByText   WrapVisualLocation = 1
	WrapLocationStartByText WrapVisualLocation = 2
)

// WrapIndentMode sets the indent of wrapped sublines.
type WrapIndentMode int

const (
	WrapIndentFixed WrapIndentMode = iota
	WrapIndentSame
	WrapIndentIndent
	WrapIndentDeepIndent
)

// WrapAppearance groups the wrapping settings.
type WrapAppearance struct {
	State               Wrap
	VisualFlags         WrapVisualFlag
	VisualFlagsLocation WrapVisualLocation
	VisualStartIndent   int
	IndentMode          WrapIndentMode
}

// WhiteSpace controls visible whitespace.
type WhiteSpace int

const (
	WhiteSpaceInvisible WhiteSpace = iota
	WhiteSpaceVisibleAlways
	WhiteSpaceVisibleAfterIndent
	WhiteSpaceVisibleOnlyInIndent
)

// TabDrawMode is how visible tabs are drawn.
type TabDrawMode int

const (
	TabDrawLongArrow TabDrawMode = iota
	TabDrawStrikeOut
)

// IndentView selects indentation guides.
type IndentView int

const (
	IndentViewNone IndentView = iota
	IndentViewReal
	IndentViewLookForward
	IndentViewLookBoth
)

// CaretStyle is a caret shape with option bits.
type CaretStyle int

const (
	CaretInvisible       CaretStyle = 0
	CaretLine            CaretStyle = 1
	CaretBlock           CaretStyle = 2
	CaretOverstrikeBar   CaretStyle = 0
	CaretOverstrikeBlock CaretStyle = 0x10
	CaretCurses          CaretStyle = 0x20
	CaretInsMask         CaretStyle = 0xF
	CaretBlockAfter      CaretStyle = 0x100
)

// CaretShape is the shape actually drawn.
type CaretShape int

const (
	ShapeInvisible CaretShape = iota
	ShapeLine
	ShapeBlock
	ShapeBar
)

// CaretAppearance groups the caret settings.
type CaretAppearance struct {
	Style CaretStyle
	Width int
}

// CaretLineAppearance controls the caret line highlight.
type CaretLineAppearance struct {
	Layer      Layer
	AlwaysShow bool
	SubLine    bool
	Frame      int // non-zero draws a frame of this width
}

// SelectionAppearance controls how selections are drawn.
type SelectionAppearance struct {
	Visible   bool
	Layer     Layer
	EOLFilled bool
}

// EdgeVisualStyle is the long-line marker kind.
type EdgeVisualStyle int

const (
	EdgeNone EdgeVisualStyle = iota
	EdgeLine
	EdgeBackground
	EdgeMultiLine
)

// EdgeProperties is one long-line marker.
type EdgeProperties struct {
	Column int
	Colour core.ColourRGBA
}
