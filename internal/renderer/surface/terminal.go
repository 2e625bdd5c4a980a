package surface

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/hyperion/internal/renderer/core"
)

// utf8CodePage is the code page identifier for UTF-8 text.
const utf8CodePage = 65001

type terminalFont struct {
	params FontParameters
}

func (f *terminalFont) Parameters() FontParameters { return f.params }

// Terminal implements Surface on a tcell screen. One unit is one cell, every
// font is one cell high and text is measured in terminal columns.
type Terminal struct {
	screen      tcell.Screen
	mode        Mode
	defaultFont *terminalFont
	mu          sync.Mutex
}

// NewTerminal wraps an initialised tcell screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		mode:   Mode{CodePage: utf8CodePage},
		defaultFont: &terminalFont{params: FontParameters{
			FaceName: "monospace",
			Size:     10,
			Weight:   WeightNormal,
		}},
	}
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Mode() Mode { return t.mode }

func (t *Terminal) SetMode(m Mode) { t.mode = m }

func (t *Terminal) AllocateFont(fp FontParameters) (Font, error) {
	if fp.Size <= 0 || math.IsNaN(fp.Size) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, fp.Size)
	}
	return &terminalFont{params: fp}, nil
}

func (t *Terminal) DefaultFont() Font { return t.defaultFont }

func (t *Terminal) Ascent(Font) float64 { return 1 }

func (t *Terminal) Descent(Font) float64 { return 0 }

func (t *Terminal) InternalLeading(Font) float64 { return 0 }

func (t *Terminal) Height(Font) float64 { return 1 }

func (t *Terminal) AverageCharWidth(Font) float64 { return 1 }

// WidthText returns the number of columns text occupies. Single-byte text
// takes one column per byte.
func (t *Terminal) WidthText(_ Font, text string) float64 {
	if t.mode.CodePage != utf8CodePage {
		return float64(len(text))
	}
	return float64(uniseg.StringWidth(text))
}

func (t *Terminal) FillRectangle(rc core.PRectangle, fill core.Fill) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.eachCell(rc, func(x, y int) { t.setBackground(x, y, fill.Colour) })
}

// RectangleDraw fills rc and colours the text of its border cells with
// the stroke.
func (t *Terminal) RectangleDraw(rc core.PRectangle, fs core.FillStroke) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.eachCell(rc, func(x, y int) { t.setBackground(x, y, fs.Fill.Colour) })
	t.strokeBorder(rc, fs.Stroke)
}

// AlphaRectangle draws like RectangleDraw; cells have no corners to round.
func (t *Terminal) AlphaRectangle(rc core.PRectangle, _ float64, fs core.FillStroke) {
	t.RectangleDraw(rc, fs)
}

func (t *Terminal) GradientRectangle(rc core.PRectangle, stops []ColourStop, opts GradientOptions) {
	if len(stops) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	left, top, right, bottom := t.cellBounds(rc)
	t.eachCell(rc, func(x, y int) {
		var frac float64
		if opts == GradientLeftToRight {
			frac = (float64(x-left) + 0.5) / float64(right-left)
		} else {
			frac = (float64(y-top) + 0.5) / float64(bottom-top)
		}
		t.setBackground(x, y, colourAt(stops, frac))
	})
}

// PolyLine colours the cells each segment crosses. Horizontal segments are
// underlined so thin rules stay visible under text.
func (t *Terminal) PolyLine(pts []core.Point, stroke core.Stroke) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		horizontal := a.Y == b.Y
		steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
		if steps == 0 {
			steps = 1
		}
		for s := 0; s < steps; s++ {
			frac := float64(s) / float64(steps)
			x := int(math.Floor(a.X + (b.X-a.X)*frac))
			y := int(math.Floor(a.Y + (b.Y-a.Y)*frac))
			t.setForeground(x, y, stroke.Colour, horizontal)
		}
	}
}

// Polygon fills the cells of the bounding box of pts.
func (t *Terminal) Polygon(pts []core.Point, fs core.FillStroke) {
	if len(pts) == 0 {
		return
	}
	rc := core.PRectangle{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		rc.Left = math.Min(rc.Left, p.X)
		rc.Top = math.Min(rc.Top, p.Y)
		rc.Right = math.Max(rc.Right, p.X)
		rc.Bottom = math.Max(rc.Bottom, p.Y)
	}
	if rc.Right == rc.Left {
		rc.Right++
	}
	if rc.Bottom == rc.Top {
		rc.Bottom++
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.eachCell(rc, func(x, y int) { t.setBackground(x, y, fs.Fill.Colour) })
}

// DrawText writes text on the row containing rc.Top starting at rc.Left,
// clipped to rc. Grapheme clusters wider than one column advance by their
// width.
func (t *Terminal) DrawText(rc core.PRectangle, font Font, _ float64, text string, fore, back core.ColourRGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()

	left, top, right, _ := t.cellBounds(rc)
	st := tcell.StyleDefault.Foreground(toTcell(fore))
	if font != nil {
		fp := font.Parameters()
		st = st.Bold(fp.Weight >= WeightSemiBold).Italic(fp.Italic)
	}

	x := left
	put := func(main rune, comb []rune, width int) bool {
		if x+width > right {
			return false
		}
		bg := back
		if !back.IsOpaque() {
			bg = back.Over(t.backgroundAt(x, top))
		}
		t.screen.SetContent(x, top, main, comb, st.Background(toTcell(bg)))
		x += width
		return true
	}

	if t.mode.CodePage != utf8CodePage {
		for i := 0; i < len(text); i++ {
			if !put(rune(text[i]), nil, 1) {
				return
			}
		}
		return
	}

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		if !put(runes[0], runes[1:], width) {
			return
		}
	}
}

// cellBounds converts rc to whole cells clipped to the screen.
func (t *Terminal) cellBounds(rc core.PRectangle) (left, top, right, bottom int) {
	w, h := t.screen.Size()
	left = max(int(math.Floor(rc.Left)), 0)
	top = max(int(math.Floor(rc.Top)), 0)
	right = min(int(math.Ceil(rc.Right)), w)
	bottom = min(int(math.Ceil(rc.Bottom)), h)
	return left, top, right, bottom
}

func (t *Terminal) eachCell(rc core.PRectangle, fn func(x, y int)) {
	left, top, right, bottom := t.cellBounds(rc)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			fn(x, y)
		}
	}
}

func (t *Terminal) strokeBorder(rc core.PRectangle, stroke core.Stroke) {
	left, top, right, bottom := t.cellBounds(rc)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if y == top || y == bottom-1 || x == left || x == right-1 {
				t.setForeground(x, y, stroke.Colour, false)
			}
		}
	}
}

func (t *Terminal) inside(x, y int) bool {
	w, h := t.screen.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

func (t *Terminal) backgroundAt(x, y int) core.ColourRGBA {
	_, _, st, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	_, bg, _ := st.Decompose()
	return fromTcell(bg)
}

func (t *Terminal) setBackground(x, y int, c core.ColourRGBA) {
	if !t.inside(x, y) {
		return
	}
	mainc, combc, st, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	if !c.IsOpaque() {
		_, bg, _ := st.Decompose()
		c = c.Over(fromTcell(bg))
	}
	if mainc == 0 {
		mainc = ' '
	}
	t.screen.SetContent(x, y, mainc, combc, st.Background(toTcell(c)))
}

func (t *Terminal) setForeground(x, y int, c core.ColourRGBA, underline bool) {
	if !t.inside(x, y) {
		return
	}
	mainc, combc, st, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	if mainc == 0 {
		mainc = ' '
	}
	st = st.Foreground(toTcell(c.Opaque()))
	if underline {
		st = st.Underline(true)
	}
	t.screen.SetContent(x, y, mainc, combc, st)
}

// colourAt interpolates stops at frac.
func colourAt(stops []ColourStop, frac float64) core.ColourRGBA {
	if frac <= stops[0].Position {
		return stops[0].Colour
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if frac <= b.Position {
			span := b.Position - a.Position
			if span <= 0 {
				return b.Colour
			}
			return a.Colour.MixedWith(b.Colour, (frac-a.Position)/span)
		}
	}
	return stops[len(stops)-1].Colour
}

func toTcell(c core.ColourRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// fromTcell maps a cell colour back to RGB; the terminal default reads as
// black.
func fromTcell(c tcell.Color) core.ColourRGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return core.NewColourRGB(0, 0, 0)
	}
	return core.NewColourRGB(uint8(r), uint8(g), uint8(b))
}
