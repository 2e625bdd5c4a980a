package model

import "time"

// DefaultCaretPeriod is the caret blink interval.
const DefaultCaretPeriod = 500 * time.Millisecond

// WrapWidthInfinite is the wrap width used when wrapping is off.
const WrapWidthInfinite = 0x7ffffff

// Caret is the blink state of the caret.
type Caret struct {
	Active bool
	On     bool
	Period time.Duration
}

// IMEInteraction selects how input method composition is shown.
type IMEInteraction int

const (
	IMEWindowed IMEInteraction = iota
	IMEInline
)

// Bidirectional selects bidirectional text handling.
type Bidirectional int

const (
	BidiDisabled Bidirectional = iota
	BidiL2R
	BidiR2L
)

func (b Bidirectional) String() string {
	switch b {
	case BidiL2R:
		return "l2r"
	case BidiR2L:
		return "r2l"
	}
	return "disabled"
}

// ParseBidirectional parses "disabled", "l2r" or "r2l".
func ParseBidirectional(s string) (Bidirectional, bool) {
	switch s {
	case "disabled", "":
		return BidiDisabled, true
	case "l2r":
		return BidiL2R, true
	case "r2l":
		return BidiR2L, true
	}
	return BidiDisabled, false
}

// FoldFlag controls fold line drawing.
type FoldFlag int

const (
	FoldFlagNone                 FoldFlag = 0
	FoldFlagLineBeforeExpanded   FoldFlag = 0x2
	FoldFlagLineBeforeContracted FoldFlag = 0x4
	FoldFlagLineAfterExpanded    FoldFlag = 0x8
	FoldFlagLineAfterContracted  FoldFlag = 0x10
	FoldFlagLevelNumbers         FoldFlag = 0x40
	FoldFlagLineState            FoldFlag = 0x80
)

// FoldDisplayTextStyle selects how text for folded blocks is shown.
type FoldDisplayTextStyle int

const (
	FoldDisplayTextHidden FoldDisplayTextStyle = iota
	FoldDisplayTextStandard
	FoldDisplayTextBoxed
)

// UndoSelectionHistory selects whether selections are restored on undo.
type UndoSelectionHistory int

const (
	UndoSelectionHistoryDisabled UndoSelectionHistory = iota
	UndoSelectionHistoryEnabled
	// UndoSelectionHistoryScroll also restores the scroll position.
	UndoSelectionHistoryScroll
)

func (u UndoSelectionHistory) String() string {
	switch u {
	case UndoSelectionHistoryEnabled:
		return "enabled"
	case UndoSelectionHistoryScroll:
		return "scroll"
	}
	return "disabled"
}

// ParseUndoSelectionHistory parses "disabled", "enabled" or "scroll".
func ParseUndoSelectionHistory(s string) (UndoSelectionHistory, bool) {
	switch s {
	case "disabled", "":
		return UndoSelectionHistoryDisabled, true
	case "enabled":
		return UndoSelectionHistoryEnabled, true
	case "scroll":
		return UndoSelectionHistoryScroll, true
	}
	return UndoSelectionHistoryDisabled, false
}
