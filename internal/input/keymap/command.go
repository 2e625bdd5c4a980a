package keymap

import (
	"strconv"
	"strings"
)

// Command identifies an editor command. The zero value means unbound.
type Command int

const CmdNone Command = 0

const (
	CmdRedo               Command = 2011
	CmdSelectAll          Command = 2013
	CmdUndo               Command = 2176
	CmdCut                Command = 2177
	CmdCopy               Command = 2178
	CmdPaste              Command = 2179
	CmdClear              Command = 2180
	CmdLineDown           Command = 2300
	CmdLineDownExtend     Command = 2301
	CmdLineUp             Command = 2302
	CmdLineUpExtend       Command = 2303
	CmdCharLeft           Command = 2304
	CmdCharLeftExtend     Command = 2305
	CmdCharRight          Command = 2306
	CmdCharRightExtend    Command = 2307
	CmdWordLeft           Command = 2308
	CmdWordLeftExtend     Command = 2309
	CmdWordRight          Command = 2310
	CmdWordRightExtend    Command = 2311
	CmdHome               Command = 2312
	CmdHomeExtend         Command = 2313
	CmdLineEnd            Command = 2314
	CmdLineEndExtend      Command = 2315
	CmdDocumentStart      Command = 2316
	CmdDocumentStartExt   Command = 2317
	CmdDocumentEnd        Command = 2318
	CmdDocumentEndExtend  Command = 2319
	CmdPageUp             Command = 2320
	CmdPageUpExtend       Command = 2321
	CmdPageDown           Command = 2322
	CmdPageDownExtend     Command = 2323
	CmdEditToggleOvertype Command = 2324
	CmdCancel             Command = 2325
	CmdDeleteBack         Command = 2326
	CmdTab                Command = 2327
	CmdBackTab            Command = 2328
	CmdNewLine            Command = 2329
	CmdVCHome             Command = 2331
	CmdVCHomeExtend       Command = 2332
	CmdZoomIn             Command = 2333
	CmdZoomOut            Command = 2334
	CmdDelWordLeft        Command = 2335
	CmdDelWordRight       Command = 2336
	CmdLineCut            Command = 2337
	CmdLineDelete         Command = 2338
	CmdLineTranspose      Command = 2339
	CmdLowerCase          Command = 2340
	CmdUpperCase          Command = 2341
	CmdLineScrollDown     Command = 2342
	CmdLineScrollUp       Command = 2343
	CmdLineDuplicate      Command = 2404
	CmdLineCopy           Command = 2455
	CmdSelectionDuplicate Command = 2469
)

var commandNames = []struct {
	cmd  Command
	name string
}{
	{CmdRedo, "Redo"},
	{CmdSelectAll, "SelectAll"},
	{CmdUndo, "Undo"},
	{CmdCut, "Cut"},
	{CmdCopy, "Copy"},
	{CmdPaste, "Paste"},
	{CmdClear, "Clear"},
	{CmdLineDown, "LineDown"},
	{CmdLineDownExtend, "LineDownExtend"},
	{CmdLineUp, "LineUp"},
	{CmdLineUpExtend, "LineUpExtend"},
	{CmdCharLeft, "CharLeft"},
	{CmdCharLeftExtend, "CharLeftExtend"},
	{CmdCharRight, "CharRight"},
	{CmdCharRightExtend, "CharRightExtend"},
	{CmdWordLeft, "WordLeft"},
	{CmdWordLeftExtend, "WordLeftExtend"},
	{CmdWordRight, "WordRight"},
	{CmdWordRightExtend, "WordRightExtend"},
	{CmdHome, "Home"},
	{CmdHomeExtend, "HomeExtend"},
	{CmdLineEnd, "LineEnd"},
	{CmdLineEndExtend, "LineEndExtend"},
	{CmdDocumentStart, "DocumentStart"},
	{CmdDocumentStartExt, "DocumentStartExtend"},
	{CmdDocumentEnd, "DocumentEnd"},
	{CmdDocumentEndExtend, "DocumentEndExtend"},
	{CmdPageUp, "PageUp"},
	{CmdPageUpExtend, "PageUpExtend"},
	{CmdPageDown, "PageDown"},
	{CmdPageDownExtend, "PageDownExtend"},
	{CmdEditToggleOvertype, "EditToggleOvertype"},
	{CmdCancel, "Cancel"},
	{CmdDeleteBack, "DeleteBack"},
	{CmdTab, "Tab"},
	{CmdBackTab, "BackTab"},
	{CmdNewLine, "NewLine"},
	{CmdVCHome, "VCHome"},
	{CmdVCHomeExtend, "VCHomeExtend"},
	{CmdZoomIn, "ZoomIn"},
	{CmdZoomOut, "ZoomOut"},
	{CmdDelWordLeft, "DelWordLeft"},
	{CmdDelWordRight, "DelWordRight"},
	{CmdLineCut, "LineCut"},
	{CmdLineDelete, "LineDelete"},
	{CmdLineTranspose, "LineTranspose"},
	{CmdLowerCase, "LowerCase"},
	{CmdUpperCase, "UpperCase"},
	{CmdLineScrollDown, "LineScrollDown"},
	{CmdLineScrollUp, "LineScrollUp"},
	{CmdLineDuplicate, "LineDuplicate"},
	{CmdLineCopy, "LineCopy"},
	{CmdSelectionDuplicate, "SelectionDuplicate"},
}

// String returns the command name.
func (c Command) String() string {
	for _, n := range commandNames {
		if n.cmd == c {
			return n.name
		}
	}
	if c == CmdNone {
		return "None"
	}
	return "Command(" + strconv.Itoa(int(c)) + ")"
}

// ParseCommand returns the command with the given name (case-insensitive).
func ParseCommand(name string) (Command, bool) {
	name = strings.TrimSpace(name)
	for _, n := range commandNames {
		if strings.EqualFold(n.name, name) {
			return n.cmd, true
		}
	}
	return CmdNone, false
}

// Commands returns every named command.
func Commands() []Command {
	out := make([]Command, len(commandNames))
	for i, n := range commandNames {
		out[i] = n.cmd
	}
	return out
}
