package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hyperion/internal/renderer/core"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

var (
	red   = core.NewColourRGB(0xff, 0, 0)
	green = core.NewColourRGB(0, 0xff, 0)
	rc    = core.NewPRectangle(0, 10, 20, 14)
	line  = core.NewPRectangle(0, 0, 100, 14)
	char  = core.NewPRectangle(4, 0, 8, 14)
)

func TestDynamicAndTextFore(t *testing.T) {
	ind := New(Box, red)
	assert.False(t, ind.IsDynamic())
	assert.False(t, ind.OverridesTextFore())

	ind.Hover.Fore = green
	assert.True(t, ind.IsDynamic())

	ind.Hover.Style = TextFore
	assert.True(t, ind.OverridesTextFore())
}

func TestDefaults(t *testing.T) {
	ind := Default()
	assert.Equal(t, Plain, ind.Normal.Style)
	assert.Equal(t, DefaultFillAlpha, ind.FillAlpha)
	assert.Equal(t, DefaultOutlineAlpha, ind.OutlineAlpha)
	assert.Equal(t, 1.0, ind.StrokeWidth)
	assert.Equal(t, FlagNone, ind.Flags())

	ind.SetFlags(FlagValueFore)
	assert.Equal(t, FlagValueFore, ind.Flags())
}

func TestDrawPlain(t *testing.T) {
	r := surface.NewRecorder()
	New(Plain, red).Draw(r, rc, line, char, StateNormal, 0)

	require.Equal(t, []string{"PolyLine"}, r.Ops())
	call := r.Calls[0]
	assert.Equal(t, red, call.Stroke)
	assert.Equal(t, []core.Point{{X: 0, Y: 12}, {X: 20, Y: 12}}, call.Points)
}

func TestDrawValueFore(t *testing.T) {
	ind := New(Plain, red)
	ind.Hover = StyleAndColour{Style: Strike, Fore: green}
	ind.SetFlags(FlagValueFore)
	r := surface.NewRecorder()

	ind.Draw(r, rc, line, char, StateNormal, ValueBit|0xff0000)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, core.NewColourRGB(0, 0, 0xff), r.Calls[0].Stroke)

	r.Reset()
	ind.Draw(r, rc, line, char, StateHover, ValueBit|0xff0000)
	require.Equal(t, []string{"FillRectangle"}, r.Ops())
	assert.Equal(t, green, r.Calls[0].Fill)
}

func TestDrawNothing(t *testing.T) {
	for _, st := range []Style{Hidden, TextFore} {
		r := surface.NewRecorder()
		New(st, red).Draw(r, rc, line, char, StateNormal, 0)
		assert.Empty(t, r.Calls, st.String())
	}
}

func TestDrawBoxes(t *testing.T) {
	tests := []struct {
		style Style
		op    string
		top   float64
		fillA uint8
	}{
		{Box, "RectangleDraw", 1, 0},
		{RoundBox, "AlphaRectangle", 1, DefaultFillAlpha},
		{StraightBox, "AlphaRectangle", 1, DefaultFillAlpha},
		{FullBox, "AlphaRectangle", 0, DefaultFillAlpha},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			r := surface.NewRecorder()
			New(tt.style, red).Draw(r, rc, line, char, StateNormal, 0)

			require.Equal(t, []string{tt.op}, r.Ops())
			call := r.Calls[0]
			assert.Equal(t, tt.top, call.Rect.Top)
			assert.Equal(t, 0.0, call.Rect.Left)
			assert.Equal(t, 20.0, call.Rect.Right)
			assert.Equal(t, tt.fillA, call.Fill.A())
			assert.Equal(t, uint8(DefaultOutlineAlpha), call.Stroke.A())
		})
	}
}

func TestDrawGradients(t *testing.T) {
	r := surface.NewRecorder()
	New(Gradient, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Equal(t, []string{"GradientRectangle"}, r.Ops())
	assert.Equal(t, uint8(DefaultFillAlpha), r.Calls[0].Fill.A())
	assert.Equal(t, uint8(0), r.Calls[0].Stroke.A())

	r.Reset()
	New(GradientCentre, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, uint8(0), r.Calls[0].Fill.A())
	assert.Equal(t, uint8(0), r.Calls[0].Stroke.A())
}

func TestDrawDash(t *testing.T) {
	r := surface.NewRecorder()
	New(Dash, red).Draw(r, rc, line, char, StateNormal, 0)

	require.Len(t, r.Calls, 3)
	assert.Equal(t, 7.0, r.Calls[1].Rect.Left)
	assert.Equal(t, 17.0, r.Calls[2].Rect.Right)
}

func TestDrawComposition(t *testing.T) {
	r := surface.NewRecorder()
	New(CompositionThick, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, core.NewPRectangle(1, 12, 19, 14), r.Calls[0].Rect)

	r.Reset()
	New(CompositionThin, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, core.NewPRectangle(1, 12, 19, 13), r.Calls[0].Rect)
}

func TestDrawPoints(t *testing.T) {
	r := surface.NewRecorder()
	New(PointCharacter, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Equal(t, []string{"Polygon"}, r.Ops())
	// Apex at the character centre, on top of the run.
	assert.Equal(t, core.Point{X: 6.5, Y: 10.5}, r.Calls[0].Points[2])

	r.Reset()
	New(Point, red).Draw(r, rc, line, core.NewPRectangle(4, 0, 4, 14), StateNormal, 0)
	assert.Empty(t, r.Calls)

	r.Reset()
	New(PointTop, red).Draw(r, rc, line, char, StateNormal, 0)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, 1.5, r.Calls[0].Points[0].Y)
}

func TestDrawLines(t *testing.T) {
	for _, st := range []Style{Squiggle, SquiggleLow, SquigglePixmap, Diagonal, TT} {
		r := surface.NewRecorder()
		New(st, red).Draw(r, rc, line, char, StateNormal, 0)
		require.NotEmpty(t, r.Calls, st.String())
		for _, c := range r.Calls {
			assert.Equal(t, "PolyLine", c.Op)
			for _, p := range c.Points {
				assert.LessOrEqual(t, p.X, rc.Right, st.String())
			}
		}
	}
}

func TestDrawAllStylesHover(t *testing.T) {
	assert.NotPanics(t, func() {
		for st := Plain; st <= PointTop; st++ {
			New(st, red).Draw(surface.NewRecorder(), rc, line, char, StateHover, 0)
		}
	})
}

func TestParseStyle(t *testing.T) {
	st, ok := ParseStyle("roundbox")
	assert.True(t, ok)
	assert.Equal(t, RoundBox, st)
	_, ok = ParseStyle("sparkles")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Style(99).String())
}
