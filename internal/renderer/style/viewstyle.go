package style

import (
	"math"
	"reflect"
	"slices"
	"unique"

	"github.com/tidwall/btree"

	"github.com/dshills/hyperion/internal/renderer/core"
	"github.com/dshills/hyperion/internal/renderer/indicator"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// Predefined style indices.
const (
	StyleDefault         = 32
	StyleLineNumber      = 33
	StyleBraceLight      = 34
	StyleBraceBad        = 35
	StyleControlChar     = 36
	StyleIndentGuide     = 37
	StyleCallTip         = 38
	StyleFoldDisplayText = 39
	StyleLastPredefined  = 39
	StyleMax             = 255
)

// IndicatorMax is the highest indicator number.
const IndicatorMax = 35

// Zoom limits in points.
const (
	ZoomMin = -10
	ZoomMax = 60
)

// ViewStyle is the set of styles, indicators, markers and margins of one
// view together with the metrics derived from them.
type ViewStyle struct {
	fontNames map[unique.Handle[string]]struct{}
	fonts     *btree.BTreeG[*FontRealised]

	// realised* record what the cached fonts were realised for.
	realisedOn     surface.Surface
	realisedZoom   int
	realisedTech   Technology
	realisedLocale string

	Styles            []Style
	nextExtendedStyle int
	Markers           []LineMarker
	Indicators        []indicator.Indicator
	IndicatorsDynamic bool
	IndicatorsSetFore bool
	Technology        Technology

	LineHeight   int
	LineOverlap  int
	MaxAscent    float64
	MaxDescent   float64
	AveCharWidth float64
	SpaceWidth   float64
	TabWidth     float64

	Selection SelectionAppearance

	ControlCharSymbol int
	ControlCharWidth  float64
	HotspotUnderline  bool

	LeftMarginWidth  int
	RightMarginWidth int
	MaskInLine       uint32
	MaskDrawInText   uint32
	MaskDrawWrapped  uint32
	Margins          []MarginStyle
	FixedColumnWidth int
	MarginInside     bool
	TextStart        int
	ZoomLevel        int

	ViewWhitespace        WhiteSpace
	TabDrawMode           TabDrawMode
	WhitespaceSize        int
	ViewIndentationGuides IndentView
	ViewEOL               bool

	Caret     CaretAppearance
	CaretLine CaretLineAppearance

	SomeStylesProtected bool
	SomeStylesForceCase bool
	ExtraFontFlag       FontQuality
	ExtraAscent         int
	ExtraDescent        int

	BraceHighlightIndicatorSet bool
	BraceHighlightIndicator    int
	BraceBadLightIndicatorSet  bool
	BraceBadLightIndicator     int

	EdgeState EdgeVisualStyle
	Edge      EdgeProperties
	MultiEdge []EdgeProperties

	MarginNumberPadding  int
	CtrlCharPadding      int
	LastSegItalicsOffset int

	elementColours           map[Element]core.ColourRGBA
	elementBaseColours       map[Element]core.ColourRGBA
	elementAllowsTranslucent map[Element]struct{}

	Wrap WrapAppearance

	LocaleName string
}

// New returns a view style with StyleMax+1 default styles, the standard
// margins and the standard indicators.
func New() *ViewStyle {
	vs := &ViewStyle{
		fontNames:                make(map[unique.Handle[string]]struct{}),
		fonts:                    btree.NewBTreeGOptions(lessRealised, btree.Options{NoLocks: true}),
		nextExtendedStyle:        StyleMax + 1,
		Markers:                  make([]LineMarker, MarkerMax+1),
		Indicators:               make([]indicator.Indicator, IndicatorMax+1),
		Technology:               TechnologyDefault,
		LineHeight:               1,
		LineOverlap:              0,
		MaxAscent:                1,
		MaxDescent:               1,
		AveCharWidth:             8,
		SpaceWidth:               8,
		TabWidth:                 8 * 8,
		Selection:                SelectionAppearance{Visible: true},
		LeftMarginWidth:          1,
		RightMarginWidth:         1,
		MarginInside:             true,
		WhitespaceSize:           1,
		Caret:                    CaretAppearance{Style: CaretLine, Width: 1},
		Edge:                     EdgeProperties{Colour: core.NewColourRGB(0xc0, 0xc0, 0xc0)},
		MarginNumberPadding:      3,
		CtrlCharPadding:          3,
		LastSegItalicsOffset:     2,
		elementColours:           make(map[Element]core.ColourRGBA),
		elementBaseColours:       make(map[Element]core.ColourRGBA),
		elementAllowsTranslucent: make(map[Element]struct{}),
	}

	vs.allocStyles(StyleMax + 1)
	vs.ResetDefaultStyle()
	vs.ClearStyles()

	for i := range vs.Markers {
		vs.Markers[i] = NewLineMarker()
	}
	for i := range vs.Indicators {
		vs.Indicators[i] = indicator.Default()
	}
	vs.Indicators[0] = indicator.New(indicator.Squiggle, core.NewColourRGB(0, 0x7f, 0))
	vs.Indicators[1] = indicator.New(indicator.TT, core.NewColourRGB(0, 0, 0xff))
	vs.Indicators[2] = indicator.New(indicator.Plain, core.NewColourRGB(0xff, 0, 0))

	vs.Margins = make([]MarginStyle, MaxMargin+1)
	vs.Margins[0] = NewMarginStyle(MarginNumber, 0, 0)
	vs.Margins[1] = NewMarginStyle(MarginSymbol, 16, ^MaskFolders)
	for i := 2; i <= MaxMargin; i++ {
		vs.Margins[i] = NewMarginStyle(MarginSymbol, 0, 0)
	}

	vs.elementBaseColours[ElementSelectionBack] = core.NewColourRGB(0xc0, 0xc0, 0xc0)
	vs.elementBaseColours[ElementSelectionAdditionalBack] = core.NewColourRGB(0xd7, 0xd7, 0xd7)
	vs.elementBaseColours[ElementSelectionSecondaryBack] = core.NewColourRGB(0xb0, 0xb0, 0xb0)
	vs.elementBaseColours[ElementSelectionInactiveBack] = core.NewColourRGB(0x80, 0x80, 0x80)
	vs.elementBaseColours[ElementCaret] = core.ColourBlack
	vs.elementBaseColours[ElementCaretAdditional] = core.NewColourRGB(0x7f, 0x7f, 0x7f)
	for _, e := range []Element{
		ElementSelectionText, ElementSelectionBack,
		ElementSelectionAdditionalText, ElementSelectionAdditionalBack,
		ElementSelectionSecondaryText, ElementSelectionSecondaryBack,
		ElementSelectionInactiveText, ElementSelectionInactiveBack,
		ElementCaretLineBack, ElementWhiteSpace, ElementWhiteSpaceBack,
		ElementHotSpotActive, ElementHotSpotActiveBack, ElementFoldLine, ElementHiddenLine,
	} {
		vs.elementAllowsTranslucent[e] = struct{}{}
	}

	vs.CalculateMarginWidthAndMask()
	vs.TextStart = vs.FixedColumnWidth
	return vs
}

func (vs *ViewStyle) internFontName(name string) string {
	h := unique.Make(name)
	vs.fontNames[h] = struct{}{}
	return h.Value()
}

func (vs *ViewStyle) allocStyles(size int) {
	i := len(vs.Styles)
	if size <= i {
		return
	}
	vs.Styles = slices.Grow(vs.Styles, size-i)[:size]
	for ; i < size; i++ {
		if i != StyleDefault && len(vs.Styles) > StyleDefault && vs.Styles[StyleDefault].FontName != "" {
			vs.Styles[i] = vs.Styles[StyleDefault]
		} else {
			vs.Styles[i] = NewStyle(vs.internFontName(DefaultFontName))
		}
	}
}

// EnsureStyle grows the style table so index is valid. New styles copy the
// default style.
func (vs *ViewStyle) EnsureStyle(index int) {
	if index >= len(vs.Styles) {
		vs.allocStyles(index + 1)
	}
}

// ValidStyle reports whether index names an allocated style.
func (vs *ViewStyle) ValidStyle(index int) bool {
	return index >= 0 && index < len(vs.Styles)
}

// ResetDefaultStyle restores the default style.
func (vs *ViewStyle) ResetDefaultStyle() {
	vs.Styles[StyleDefault] = NewStyle(vs.internFontName(DefaultFontName))
}

// ClearStyles makes every style a copy of the default style, keeping the
// line number and call tip colours distinct.
func (vs *ViewStyle) ClearStyles() {
	for i := range vs.Styles {
		if i != StyleDefault {
			vs.Styles[i] = vs.Styles[StyleDefault]
		}
	}
	vs.Styles[StyleLineNumber].Back = core.NewColourRGB(0xc0, 0xc0, 0xc0)
	vs.Styles[StyleCallTip].Back = core.ColourWhite
	vs.Styles[StyleCallTip].Fore = core.NewColourRGB(0x80, 0x80, 0x80)
}

// SetStyleFontName sets the face of a style. Names are interned.
func (vs *ViewStyle) SetStyleFontName(index int, name string) {
	vs.Styles[index].FontName = vs.internFontName(name)
}

// FontNameCount is the number of distinct font names interned so far.
func (vs *ViewStyle) FontNameCount() int {
	return len(vs.fontNames)
}

// SetFontLocaleName sets the locale passed when realising fonts.
func (vs *ViewStyle) SetFontLocaleName(name string) {
	vs.LocaleName = name
}

// AllocateExtendedStyles reserves n styles above StyleMax and returns the
// first index.
func (vs *ViewStyle) AllocateExtendedStyles(n int) int {
	start := vs.nextExtendedStyle
	vs.nextExtendedStyle += n
	vs.EnsureStyle(vs.nextExtendedStyle)
	return start
}

// ReleaseAllExtendedStyles makes every extended style available again.
func (vs *ViewStyle) ReleaseAllExtendedStyles() {
	vs.nextExtendedStyle = StyleMax + 1
}

// FontCacheSize is the number of realised fonts held.
func (vs *ViewStyle) FontCacheSize() int {
	return vs.fonts.Len()
}

func (vs *ViewStyle) find(fs FontSpecification) (*FontRealised, bool) {
	return vs.fonts.Get(&FontRealised{Spec: fs})
}

// sameSurface reports whether a and b are the same surface. Surfaces of a
// type that cannot be compared never match, so their fonts are realised
// again on every Refresh.
func sameSurface(a, b surface.Surface) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Refresh realises the fonts of every style on s and recomputes the
// derived metrics. Fonts already realised for the same surface, zoom,
// technology and locale are reused; fonts no style uses any more are
// dropped. Calling Refresh again without changes has no effect.
func (vs *ViewStyle) Refresh(s surface.Surface, tabInChars int) {
	if !sameSurface(vs.realisedOn, s) || vs.realisedZoom != vs.ZoomLevel ||
		vs.realisedTech != vs.Technology || vs.realisedLocale != vs.LocaleName {
		vs.fonts.Clear()
		vs.realisedOn = s
		vs.realisedZoom = vs.ZoomLevel
		vs.realisedTech = vs.Technology
		vs.realisedLocale = vs.LocaleName
	}

	for i := range vs.Styles {
		vs.Styles[i].Quality = vs.ExtraFontFlag
	}

	used := make(map[FontSpecification]struct{}, 4)
	used[vs.Styles[StyleDefault].FontSpecification] = struct{}{}
	for i := range vs.Styles {
		used[vs.Styles[i].FontSpecification] = struct{}{}
	}

	var stale []*FontRealised
	vs.fonts.Scan(func(fr *FontRealised) bool {
		if _, ok := used[fr.Spec]; !ok {
			stale = append(stale, fr)
		}
		return true
	})
	for _, fr := range stale {
		vs.fonts.Delete(fr)
	}

	for spec := range used {
		if _, ok := vs.find(spec); ok {
			continue
		}
		fr := &FontRealised{Spec: spec}
		fr.Realise(s, vs.ZoomLevel, vs.Technology, vs.LocaleName)
		vs.fonts.Set(fr)
	}

	for i := range vs.Styles {
		fr, _ := vs.find(vs.Styles[i].FontSpecification)
		vs.Styles[i].Copy(fr.Font, fr.Measurements)
	}

	vs.IndicatorsDynamic = false
	vs.IndicatorsSetFore = false
	for _, ind := range vs.Indicators {
		vs.IndicatorsDynamic = vs.IndicatorsDynamic || ind.IsDynamic()
		vs.IndicatorsSetFore = vs.IndicatorsSetFore || ind.OverridesTextFore()
	}

	vs.MaxAscent = 1
	vs.MaxDescent = 1
	vs.fonts.Scan(func(fr *FontRealised) bool {
		vs.MaxAscent = math.Max(vs.MaxAscent, fr.Measurements.Ascent)
		vs.MaxDescent = math.Max(vs.MaxDescent, fr.Measurements.Descent)
		return true
	})
	vs.MaxAscent += float64(vs.ExtraAscent)
	vs.MaxDescent += float64(vs.ExtraDescent)
	vs.LineHeight = int(math.Round(vs.MaxAscent + vs.MaxDescent))
	vs.LineOverlap = min(max(vs.LineHeight/10, 2), vs.LineHeight)

	vs.SomeStylesProtected = false
	vs.SomeStylesForceCase = false
	for i := range vs.Styles {
		vs.SomeStylesProtected = vs.SomeStylesProtected || vs.Styles[i].IsProtected()
		vs.SomeStylesForceCase = vs.SomeStylesForceCase || vs.Styles[i].CaseForce != CaseMixed
	}

	def := &vs.Styles[StyleDefault]
	vs.AveCharWidth = def.AveCharWidth
	vs.SpaceWidth = def.SpaceWidth
	vs.TabWidth = vs.SpaceWidth * float64(tabInChars)

	vs.ControlCharWidth = 0
	if vs.ControlCharSymbol >= 32 {
		vs.ControlCharWidth = s.WidthText(vs.Styles[StyleControlChar].Font, string(rune(vs.ControlCharSymbol)))
	}

	vs.CalculateMarginWidthAndMask()
	if vs.MarginInside {
		vs.TextStart = vs.FixedColumnWidth
	} else {
		vs.TextStart = vs.LeftMarginWidth
	}
}

// CalculateMarginWidthAndMask recomputes the total margin width and the
// masks deciding where markers are drawn.
func (vs *ViewStyle) CalculateMarginWidthAndMask() {
	vs.FixedColumnWidth = 0
	if vs.MarginInside {
		vs.FixedColumnWidth = vs.LeftMarginWidth
	}
	vs.MaskInLine = 0xFFFFFFFF
	var defined uint32
	for _, m := range vs.Margins {
		vs.FixedColumnWidth += m.Width
		if m.Width > 0 {
			vs.MaskInLine &^= m.Mask
		}
		defined |= m.Mask
	}

	vs.MaskDrawInText = 0
	vs.MaskDrawWrapped = 0
	for bit, marker := range vs.Markers {
		if bit > MarkerMax {
			break
		}
		mask := uint32(1) << bit
		switch marker.MarkType {
		case MarkEmpty:
			vs.MaskInLine &^= mask
		case MarkBackground, MarkUnderline:
			vs.MaskInLine &^= mask
			vs.MaskDrawInText |= defined & mask
		}
		if marker.Flags&MarkerFlagWrapped != 0 {
			vs.MaskDrawWrapped |= mask
		}
	}
}

// ProtectionActive reports whether any style is protected.
func (vs *ViewStyle) ProtectionActive() bool {
	return vs.SomeStylesProtected
}

// ExternalMarginWidth is the width of margins drawn outside the text view.
func (vs *ViewStyle) ExternalMarginWidth() int {
	if vs.MarginInside {
		return 0
	}
	return vs.FixedColumnWidth
}

// MarginFromLocation returns the margin under pt or -1.
func (vs *ViewStyle) MarginFromLocation(pt core.Point) int {
	x := 0.0
	if !vs.MarginInside {
		x = -float64(vs.FixedColumnWidth)
	}
	for i, m := range vs.Margins {
		if pt.X >= x && pt.X < x+float64(m.Width) {
			return i
		}
		x += float64(m.Width)
	}
	return -1
}

// AddMultiEdge adds a long-line marker, keeping them ordered by column.
func (vs *ViewStyle) AddMultiEdge(column int, colour core.ColourRGBA) {
	i := slices.IndexFunc(vs.MultiEdge, func(e EdgeProperties) bool { return e.Column > column })
	if i < 0 {
		i = len(vs.MultiEdge)
	}
	vs.MultiEdge = slices.Insert(vs.MultiEdge, i, EdgeProperties{Column: column, Colour: colour})
}

// SetZoomLevel clamps and sets the zoom in points, reporting a change.
func (vs *ViewStyle) SetZoomLevel(zoom int) bool {
	zoom = min(max(zoom, ZoomMin), ZoomMax)
	if zoom == vs.ZoomLevel {
		return false
	}
	vs.ZoomLevel = zoom
	return true
}

// SetWrapState sets the wrap mode and reports whether it changed.
func (vs *ViewStyle) SetWrapState(w Wrap) bool {
	changed := vs.Wrap.State != w
	vs.Wrap.State = w
	return changed
}

// SetWrapVisualFlags sets which wrap markers are drawn and reports whether
// they changed.
func (vs *ViewStyle) SetWrapVisualFlags(f WrapVisualFlag) bool {
	changed := vs.Wrap.VisualFlags != f
	vs.Wrap.VisualFlags = f
	return changed
}

// SetWrapVisualFlagsLocation sets where wrap markers are drawn and reports
// whether it changed.
func (vs *ViewStyle) SetWrapVisualFlagsLocation(l WrapVisualLocation) bool {
	changed := vs.Wrap.VisualFlagsLocation != l
	vs.Wrap.VisualFlagsLocation = l
	return changed
}

// SetWrapVisualStartIndent sets the indent of wrapped sublines and reports
// whether it changed.
func (vs *ViewStyle) SetWrapVisualStartIndent(indent int) bool {
	changed := vs.Wrap.VisualStartIndent != indent
	vs.Wrap.VisualStartIndent = indent
	return changed
}

// SetWrapIndentMode sets how wrapped sublines are indented and reports
// whether it changed.
func (vs *ViewStyle) SetWrapIndentMode(m WrapIndentMode) bool {
	changed := vs.Wrap.IndentMode != m
	vs.Wrap.IndentMode = m
	return changed
}

// WhiteSpaceVisible reports whether whitespace is drawn, inIndent telling
// whether it is part of the line indentation.
func (vs *ViewStyle) WhiteSpaceVisible(inIndent bool) bool {
	return (!inIndent && vs.ViewWhitespace == WhiteSpaceVisibleAfterIndent) ||
		(inIndent && vs.ViewWhitespace == WhiteSpaceVisibleOnlyInIndent) ||
		vs.ViewWhitespace == WhiteSpaceVisibleAlways
}

// IsBlockCaretStyle reports whether any caret mode draws a block.
func (vs *ViewStyle) IsBlockCaretStyle() bool {
	return vs.Caret.Style&CaretInsMask == CaretBlock ||
		vs.Caret.Style&CaretOverstrikeBlock != 0 ||
		vs.Caret.Style&CaretCurses != 0
}

// IsCaretVisible reports whether a caret is drawn for the main or an
// additional selection.
func (vs *ViewStyle) IsCaretVisible(isMainSelection bool) bool {
	return vs.Caret.Width > 0 &&
		(vs.Caret.Style&CaretInsMask != CaretInvisible ||
			(vs.Caret.Style&CaretCurses != 0 && !isMainSelection))
}

// DrawCaretInsideSelection reports whether the caret covers the character
// after it rather than sitting between characters.
func (vs *ViewStyle) DrawCaretInsideSelection(inOverstrike, imeCaretBlockOverride bool) bool {
	if vs.Caret.Style&CaretBlockAfter != 0 {
		return false
	}
	return vs.Caret.Style&CaretInsMask == CaretBlock ||
		(inOverstrike && vs.Caret.Style&CaretOverstrikeBlock != 0) ||
		imeCaretBlockOverride ||
		vs.Caret.Style&CaretCurses != 0
}

// CaretShapeForMode returns the caret shape for the insert or overstrike
// mode of a main or additional selection.
func (vs *ViewStyle) CaretShapeForMode(inOverstrike, isMainSelection bool) CaretShape {
	if inOverstrike {
		if vs.Caret.Style&CaretOverstrikeBlock != 0 {
			return ShapeBlock
		}
		return ShapeBar
	}
	if vs.Caret.Style&CaretCurses != 0 && !isMainSelection {
		return ShapeBlock
	}
	ins := vs.Caret.Style & CaretInsMask
	if ins <= CaretBlock {
		return CaretShape(ins)
	}
	return ShapeLine
}
