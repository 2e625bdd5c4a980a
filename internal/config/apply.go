package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/dshills/hyperion/internal/engine/model"
	"github.com/dshills/hyperion/internal/input/keymap"
	"github.com/dshills/hyperion/internal/renderer/core"
	"github.com/dshills/hyperion/internal/renderer/indicator"
	"github.com/dshills/hyperion/internal/renderer/style"
)

var wrapModes = map[string]style.Wrap{
	"none":       style.WrapNone,
	"word":       style.WrapWord,
	"char":       style.WrapChar,
	"whitespace": style.WrapWhiteSpace,
}

var whiteSpaceModes = map[string]style.WhiteSpace{
	"invisible":      style.WhiteSpaceInvisible,
	"always":         style.WhiteSpaceVisibleAlways,
	"after_indent":   style.WhiteSpaceVisibleAfterIndent,
	"only_in_indent": style.WhiteSpaceVisibleOnlyInIndent,
}

var caretStyles = map[string]style.CaretStyle{
	"invisible": style.CaretInvisible,
	"line":      style.CaretLine,
	"block":     style.CaretBlock,
	"curses":    style.CaretCurses,
}

var marginTypes = map[string]style.MarginType{
	"symbol": style.MarginSymbol,
	"number": style.MarginNumber,
	"back":   style.MarginBack,
	"fore":   style.MarginFore,
	"text":   style.MarginText,
	"rtext":  style.MarginRText,
	"colour": style.MarginColour,
}

func lookup[T any](table map[string]T, setting, value string) (T, error) {
	v, ok := table[strings.ToLower(value)]
	if !ok {
		var zero T
		return zero, invalid(setting, value)
	}
	return v, nil
}

func colour(setting, value string) (core.ColourRGBA, error) {
	c, err := core.ParseColour(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", setting, err)
	}
	return c, nil
}

// ApplyViewStyle pushes the editor, style, indicator, margin and element
// settings into vs. Every invalid setting is reported; valid ones are
// applied regardless.
func ApplyViewStyle(vs *style.ViewStyle, s *Settings) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(applyEditorView(vs, &s.Editor))
	for i := range s.Styles {
		add(applyStyle(vs, &s.Styles[i]))
	}
	for i := range s.Indicators {
		add(applyIndicator(vs, &s.Indicators[i]))
	}
	for i := range s.Margins {
		add(applyMargin(vs, &s.Margins[i]))
	}
	for _, name := range slices.Sorted(maps.Keys(s.Elements)) {
		e, ok := style.ElementFromName(name)
		if !ok {
			add(invalid("elements", name))
			continue
		}
		c, err := colour("elements."+name, s.Elements[name])
		if err != nil {
			add(err)
			continue
		}
		vs.SetElementColour(e, c)
	}

	vs.CalculateMarginWidthAndMask()
	return errors.Join(errs...)
}

func applyEditorView(vs *style.ViewStyle, e *EditorSettings) error {
	var errs []error
	if e.Wrap != "" {
		w, err := lookup(wrapModes, "editor.wrap", e.Wrap)
		errs = append(errs, err)
		if err == nil {
			vs.SetWrapState(w)
		}
	}
	if e.WhiteSpace != "" {
		ws, err := lookup(whiteSpaceModes, "editor.whitespace", e.WhiteSpace)
		errs = append(errs, err)
		if err == nil {
			vs.ViewWhitespace = ws
		}
	}
	if e.CaretStyle != "" {
		cs, err := lookup(caretStyles, "editor.caret_style", e.CaretStyle)
		errs = append(errs, err)
		if err == nil {
			vs.Caret.Style = cs
		}
	}
	if e.Zoom != 0 {
		vs.SetZoomLevel(e.Zoom)
	}
	if e.CaretWidth > 0 {
		vs.Caret.Width = e.CaretWidth
	}
	if e.ExtraAscent != 0 {
		vs.ExtraAscent = e.ExtraAscent
	}
	if e.ExtraDescent != 0 {
		vs.ExtraDescent = e.ExtraDescent
	}
	if e.ControlCharSymbol != 0 {
		vs.ControlCharSymbol = e.ControlCharSymbol
	}
	return errors.Join(errs...)
}

func applyStyle(vs *style.ViewStyle, ss *StyleSettings) error {
	if ss.Index < 0 {
		return invalid("styles.index", ss.Index)
	}
	vs.EnsureStyle(ss.Index)
	st := &vs.Styles[ss.Index]

	var errs []error
	if ss.Font != "" {
		vs.SetStyleFontName(ss.Index, ss.Font)
	}
	if ss.Size > 0 {
		st.Size = int(math.Round(ss.Size * style.FontSizeMultiplier))
	}
	switch {
	case ss.Weight > 0:
		st.Weight = style.FontWeight(ss.Weight)
	case ss.Bold:
		st.Weight = style.WeightBold
	}
	if ss.Italic {
		st.Italic = true
	}
	if ss.Fore != "" {
		c, err := colour("styles.fore", ss.Fore)
		errs = append(errs, err)
		if err == nil {
			st.Fore = c
		}
	}
	if ss.Back != "" {
		c, err := colour("styles.back", ss.Back)
		errs = append(errs, err)
		if err == nil {
			st.Back = c
		}
	}
	if ss.EOLFilled {
		st.EOLFilled = true
	}
	if ss.Underline {
		st.Underline = true
	}
	if ss.Hotspot {
		st.Hotspot = true
	}
	if ss.Case != "" {
		cf, err := style.ParseCaseForce(ss.Case)
		errs = append(errs, err)
		if err == nil {
			st.CaseForce = cf
		}
	}
	if ss.Visible != nil {
		st.Visible = *ss.Visible
	}
	if ss.Changeable != nil {
		st.Changeable = *ss.Changeable
	}
	if ss.InvisibleRepresentation != "" {
		errs = append(errs, st.SetInvisibleRepresentation(ss.InvisibleRepresentation))
	}
	return errors.Join(errs...)
}

func applyIndicator(vs *style.ViewStyle, is *IndicatorSettings) error {
	if is.Index < 0 || is.Index >= len(vs.Indicators) {
		return invalid("indicators.index", is.Index)
	}
	ind := &vs.Indicators[is.Index]

	var errs []error
	if is.Style != "" {
		st, ok := indicator.ParseStyle(strings.ToLower(is.Style))
		if ok {
			ind.Normal.Style = st
			ind.Hover.Style = st
		} else {
			errs = append(errs, invalid("indicators.style", is.Style))
		}
	}
	if is.Fore != "" {
		c, err := colour("indicators.fore", is.Fore)
		errs = append(errs, err)
		if err == nil {
			ind.Normal.Fore = c
			ind.Hover.Fore = c
		}
	}
	if is.HoverStyle != "" {
		st, ok := indicator.ParseStyle(strings.ToLower(is.HoverStyle))
		if ok {
			ind.Hover.Style = st
		} else {
			errs = append(errs, invalid("indicators.hover_style", is.HoverStyle))
		}
	}
	if is.HoverFore != "" {
		c, err := colour("indicators.hover_fore", is.HoverFore)
		errs = append(errs, err)
		if err == nil {
			ind.Hover.Fore = c
		}
	}
	if is.Under {
		ind.Under = true
	}
	if is.FillAlpha != nil {
		ind.FillAlpha = *is.FillAlpha
	}
	if is.OutlineAlpha != nil {
		ind.OutlineAlpha = *is.OutlineAlpha
	}
	if is.StrokeWidth > 0 {
		ind.StrokeWidth = is.StrokeWidth
	}
	if is.ValueFore {
		ind.SetFlags(ind.Flags() | indicator.FlagValueFore)
	}
	return errors.Join(errs...)
}

func applyMargin(vs *style.ViewStyle, ms *MarginSettings) error {
	if ms.Index < 0 || ms.Index >= len(vs.Margins) {
		return invalid("margins.index", ms.Index)
	}
	if ms.Width < 0 {
		return invalid("margins.width", ms.Width)
	}
	m := &vs.Margins[ms.Index]

	var errs []error
	if ms.Type != "" {
		t, err := lookup(marginTypes, "margins.type", ms.Type)
		errs = append(errs, err)
		if err == nil {
			m.Type = t
		}
	}
	m.Width = ms.Width
	if ms.Mask != nil {
		m.Mask = *ms.Mask
	}
	m.Sensitive = ms.Sensitive
	if ms.Back != "" {
		c, err := colour("margins.back", ms.Back)
		errs = append(errs, err)
		if err == nil {
			m.Back = c
		}
	}
	return errors.Join(errs...)
}

// ApplyKeyMap binds every key in s.Keys, in key order.
func ApplyKeyMap(km *keymap.KeyMap, s *Settings) error {
	var errs []error
	for _, spec := range slices.Sorted(maps.Keys(s.Keys)) {
		if err := km.Bind(spec, s.Keys[spec]); err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", spec, err))
		}
	}
	return errors.Join(errs...)
}

// ApplyEditModel sets the per-view editing options.
func ApplyEditModel(m *model.EditModel, s *Settings) error {
	var errs []error
	e := &s.Editor
	if e.UndoSelectionHistory != "" {
		opt, ok := model.ParseUndoSelectionHistory(strings.ToLower(e.UndoSelectionHistory))
		if ok {
			m.ChangeUndoSelectionHistory(opt)
		} else {
			errs = append(errs, invalid("editor.undo_selection_history", e.UndoSelectionHistory))
		}
	}
	if e.Bidirectional != "" {
		b, ok := model.ParseBidirectional(strings.ToLower(e.Bidirectional))
		if ok {
			m.Bidirectional = b
		} else {
			errs = append(errs, invalid("editor.bidirectional", e.Bidirectional))
		}
	}
	if e.CaretPeriodMS > 0 {
		m.Caret.Period = time.Duration(e.CaretPeriodMS) * time.Millisecond
	}
	if e.FoldDisplayText != "" {
		m.SetDefaultFoldDisplayText(e.FoldDisplayText)
	}
	return errors.Join(errs...)
}
