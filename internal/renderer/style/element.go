package style

import "github.com/dshills/hyperion/internal/renderer/core"

// Element is a themable part of the view.
type Element int

const (
	ElementList                            Element = 0
	ElementListBack                        Element = 1
	ElementListSelected                    Element = 2
	ElementListSelectedBack                Element = 3
	ElementSelectionText                   Element = 10
	ElementSelectionBack                   Element = 11
	ElementSelectionAdditionalText         Element = 12
	ElementSelectionAdditionalBack         Element = 13
	ElementSelectionSecondaryText          Element = 14
	ElementSelectionSecondaryBack          Element = 15
	ElementSelectionInactiveText           Element = 16
	ElementSelectionInactiveBack           Element = 17
	ElementSelectionInactiveAdditionalText Element = 18
	ElementSelectionInactiveAdditionalBack Element = 19
	ElementCaret                           Element = 40
	ElementCaretAdditional                 Element = 41
	ElementCaretLineBack                   Element = 50
	ElementWhiteSpace                      Element = 60
	ElementWhiteSpaceBack                  Element = 61
	ElementHotSpotActive                   Element = 70
	ElementHotSpotActiveBack               Element = 71
	ElementFoldLine                        Element = 80
	ElementHiddenLine                      Element = 81
)

var elementNames = map[string]Element{
	"list":                      ElementList,
	"list.back":                 ElementListBack,
	"list.selected":             ElementListSelected,
	"list.selected.back":        ElementListSelectedBack,
	"selection.text":            ElementSelectionText,
	"selection.back":            ElementSelectionBack,
	"selection.additional.text": ElementSelectionAdditionalText,
	"selection.additional.back": ElementSelectionAdditionalBack,
	"selection.secondary.text":  ElementSelectionSecondaryText,
	"selection.secondary.back":  ElementSelectionSecondaryBack,
	"selection.inactive.text":   ElementSelectionInactiveText,
	"selection.inactive.back":   ElementSelectionInactiveBack,
	"caret":                     ElementCaret,
	"caret.additional":          ElementCaretAdditional,
	"caret.line.back":           ElementCaretLineBack,
	"whitespace":                ElementWhiteSpace,
	"whitespace.back":           ElementWhiteSpaceBack,
	"hotspot.active":            ElementHotSpotActive,
	"hotspot.active.back":       ElementHotSpotActiveBack,
	"fold.line":                 ElementFoldLine,
	"hidden.line":               ElementHiddenLine,
}

// ElementFromName looks up an element by its dotted configuration name.
func ElementFromName(name string) (Element, bool) {
	e, ok := elementNames[name]
	return e, ok
}

// ElementColour resolves an element: explicit colour, then base colour.
// The second result is false when neither is set.
func (vs *ViewStyle) ElementColour(e Element) (core.ColourRGBA, bool) {
	if c, ok := vs.elementColours[e]; ok {
		return c, true
	}
	if c, ok := vs.elementBaseColours[e]; ok {
		return c, true
	}
	return 0, false
}

// ElementColourForced is ElementColour falling back to opaque black.
func (vs *ViewStyle) ElementColourForced(e Element) core.ColourRGBA {
	if c, ok := vs.ElementColour(e); ok {
		return c
	}
	return core.ColourBlack
}

// ElementIsSet reports whether an explicit colour is set.
func (vs *ViewStyle) ElementIsSet(e Element) bool {
	_, ok := vs.elementColours[e]
	return ok
}

// ElementAllowsTranslucent reports whether the element may be drawn with
// alpha.
func (vs *ViewStyle) ElementAllowsTranslucent(e Element) bool {
	_, ok := vs.elementAllowsTranslucent[e]
	return ok
}

// SetElementColour sets the explicit colour and reports whether it changed.
func (vs *ViewStyle) SetElementColour(e Element, c core.ColourRGBA) bool {
	old, ok := vs.elementColours[e]
	vs.elementColours[e] = c
	return !ok || old != c
}

// SetElementBase sets the base colour used when no explicit colour is set.
func (vs *ViewStyle) SetElementBase(e Element, c core.ColourRGBA) bool {
	old, ok := vs.elementBaseColours[e]
	vs.elementBaseColours[e] = c
	return !ok || old != c
}

// ResetElement clears the explicit colour, leaving the base colour.
func (vs *ViewStyle) ResetElement(e Element) bool {
	_, ok := vs.elementColours[e]
	delete(vs.elementColours, e)
	return ok
}
