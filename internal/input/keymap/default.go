package keymap

import "github.com/dshills/hyperion/internal/input/key"

const (
	norm  = key.ModNorm
	shift = key.ModShift
	ctrl  = key.ModCtrl
	alt   = key.ModAlt
	cs    = key.ModCtrl | key.ModShift
)

// defaultBindings is the table New seeds a KeyMap with.
var defaultBindings = []Binding{
	// Movement
	{key.KeyDown, norm, CmdLineDown},
	{key.KeyDown, shift, CmdLineDownExtend},
	{key.KeyDown, ctrl, CmdLineScrollDown},
	{key.KeyUp, norm, CmdLineUp},
	{key.KeyUp, shift, CmdLineUpExtend},
	{key.KeyUp, ctrl, CmdLineScrollUp},
	{key.KeyLeft, norm, CmdCharLeft},
	{key.KeyLeft, shift, CmdCharLeftExtend},
	{key.KeyLeft, ctrl, CmdWordLeft},
	{key.KeyLeft, cs, CmdWordLeftExtend},
	{key.KeyRight, norm, CmdCharRight},
	{key.KeyRight, shift, CmdCharRightExtend},
	{key.KeyRight, ctrl, CmdWordRight},
	{key.KeyRight, cs, CmdWordRightExtend},
	{key.KeyHome, norm, CmdVCHome},
	{key.KeyHome, shift, CmdVCHomeExtend},
	{key.KeyHome, ctrl, CmdDocumentStart},
	{key.KeyHome, cs, CmdDocumentStartExt},
	{key.KeyEnd, norm, CmdLineEnd},
	{key.KeyEnd, shift, CmdLineEndExtend},
	{key.KeyEnd, ctrl, CmdDocumentEnd},
	{key.KeyEnd, cs, CmdDocumentEndExtend},
	{key.KeyPrior, norm, CmdPageUp},
	{key.KeyPrior, shift, CmdPageUpExtend},
	{key.KeyNext, norm, CmdPageDown},
	{key.KeyNext, shift, CmdPageDownExtend},

	// Editing
	{key.KeyDelete, norm, CmdClear},
	{key.KeyDelete, shift, CmdCut},
	{key.KeyDelete, ctrl, CmdDelWordRight},
	{key.KeyInsert, norm, CmdEditToggleOvertype},
	{key.KeyInsert, shift, CmdPaste},
	{key.KeyInsert, ctrl, CmdCopy},
	{key.KeyEscape, norm, CmdCancel},
	{key.KeyBack, norm, CmdDeleteBack},
	{key.KeyBack, shift, CmdDeleteBack},
	{key.KeyBack, ctrl, CmdDelWordLeft},
	{key.KeyBack, alt, CmdUndo},
	{key.KeyTab, norm, CmdTab},
	{key.KeyTab, shift, CmdBackTab},
	{key.KeyReturn, norm, CmdNewLine},
	{key.KeyReturn, shift, CmdNewLine},
	{key.KeyAdd, ctrl, CmdZoomIn},
	{key.KeySubtract, ctrl, CmdZoomOut},

	// Ctrl letters
	{'Z', ctrl, CmdUndo},
	{'Y', ctrl, CmdRedo},
	{'Z', cs, CmdRedo},
	{'X', ctrl, CmdCut},
	{'C', ctrl, CmdCopy},
	{'V', ctrl, CmdPaste},
	{'A', ctrl, CmdSelectAll},
	{'L', ctrl, CmdLineCut},
	{'L', cs, CmdLineDelete},
	{'T', cs, CmdLineCopy},
	{'T', ctrl, CmdLineTranspose},
	{'D', ctrl, CmdSelectionDuplicate},
	{'U', ctrl, CmdLowerCase},
	{'U', cs, CmdUpperCase},
}
