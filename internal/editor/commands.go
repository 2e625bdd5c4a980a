package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hyperion/internal/input/key"
	"github.com/dshills/hyperion/internal/input/keymap"
	"github.com/dshills/hyperion/internal/log"
)

// Execute runs cmd and reports whether the editor handles it.
func (e *Editor) Execute(cmd keymap.Command) (bool, error) {
	if e.closed {
		return false, ErrClosed
	}
	var err error
	switch cmd {
	case keymap.CmdUndo:
		e.Undo()
	case keymap.CmdRedo:
		e.Redo()
	case keymap.CmdSelectAll:
		e.SelectAll()
	case keymap.CmdCut:
		err = e.Cut()
	case keymap.CmdCopy:
		e.Copy()
	case keymap.CmdPaste:
		err = e.Paste()
	case keymap.CmdClear:
		err = e.Clear()
	case keymap.CmdDeleteBack:
		err = e.DeleteBack()
	case keymap.CmdDelWordLeft:
		err = e.DeleteWordLeft()
	case keymap.CmdDelWordRight:
		err = e.DeleteWordRight()
	case keymap.CmdNewLine:
		err = e.NewLine()
	case keymap.CmdTab:
		err = e.Tab()
	case keymap.CmdLineCut:
		err = e.LineCut()
	case keymap.CmdLineCopy:
		e.LineCopy()
	case keymap.CmdLineDelete:
		err = e.LineDelete()
	case keymap.CmdLineDuplicate:
		err = e.LineDuplicate()
	case keymap.CmdLineTranspose:
		err = e.LineTranspose()
	case keymap.CmdSelectionDuplicate:
		err = e.SelectionDuplicate()
	case keymap.CmdUpperCase:
		err = e.ChangeCase(true)
	case keymap.CmdLowerCase:
		err = e.ChangeCase(false)
	case keymap.CmdEditToggleOvertype:
		e.model.InOverstrike = !e.model.InOverstrike
	case keymap.CmdCancel:
		e.Cancel()
	case keymap.CmdZoomIn:
		e.zoom(1)
	case keymap.CmdZoomOut:
		e.zoom(-1)
	case keymap.CmdLineScrollDown:
		e.ScrollLines(1)
	case keymap.CmdLineScrollUp:
		e.ScrollLines(-1)
	default:
		if !e.executeMotion(cmd) {
			return false, nil
		}
	}
	if err != nil {
		log.Debug(log.CatEditor, "command failed", "command", cmd.String(), "error", err.Error())
		return true, fmt.Errorf("%s: %w", cmd, err)
	}
	e.BraceHighlight()
	return true, nil
}

func (e *Editor) executeMotion(cmd keymap.Command) bool {
	switch cmd {
	case keymap.CmdCharLeft, keymap.CmdCharLeftExtend:
		e.CharLeft(cmd == keymap.CmdCharLeftExtend)
	case keymap.CmdCharRight, keymap.CmdCharRightExtend:
		e.CharRight(cmd == keymap.CmdCharRightExtend)
	case keymap.CmdLineUp, keymap.CmdLineUpExtend:
		e.LineMove(-1, cmd == keymap.CmdLineUpExtend)
	case keymap.CmdLineDown, keymap.CmdLineDownExtend:
		e.LineMove(1, cmd == keymap.CmdLineDownExtend)
	case keymap.CmdWordLeft, keymap.CmdWordLeftExtend:
		e.WordLeft(cmd == keymap.CmdWordLeftExtend)
	case keymap.CmdWordRight, keymap.CmdWordRightExtend:
		e.WordRight(cmd == keymap.CmdWordRightExtend)
	case keymap.CmdHome, keymap.CmdHomeExtend:
		e.Home(cmd == keymap.CmdHomeExtend)
	case keymap.CmdVCHome, keymap.CmdVCHomeExtend:
		e.VCHome(cmd == keymap.CmdVCHomeExtend)
	case keymap.CmdLineEnd, keymap.CmdLineEndExtend:
		e.LineEnd(cmd == keymap.CmdLineEndExtend)
	case keymap.CmdDocumentStart, keymap.CmdDocumentStartExt:
		e.DocumentStart(cmd == keymap.CmdDocumentStartExt)
	case keymap.CmdDocumentEnd, keymap.CmdDocumentEndExtend:
		e.DocumentEnd(cmd == keymap.CmdDocumentEndExtend)
	case keymap.CmdPageUp, keymap.CmdPageUpExtend:
		e.PageMove(-1, cmd == keymap.CmdPageUpExtend)
	case keymap.CmdPageDown, keymap.CmdPageDownExtend:
		e.PageMove(1, cmd == keymap.CmdPageDownExtend)
	default:
		return false
	}
	return true
}

func (e *Editor) zoom(delta int) {
	if e.vs.SetZoomLevel(e.vs.ZoomLevel + delta) {
		e.Refresh()
	}
}

// KeyDown runs the command bound to (k, mods) and reports whether one ran.
func (e *Editor) KeyDown(k key.Keys, mods key.Mod) (bool, error) {
	cmd := e.keys.Find(k, mods)
	if cmd == keymap.CmdNone {
		return false, nil
	}
	return e.Execute(cmd)
}

// HandleKey runs the command bound to ev, or inserts its character when no
// command is bound and no Ctrl or Alt is held.
func (e *Editor) HandleKey(ev *tcell.EventKey) (bool, error) {
	k, mods := key.FromEvent(ev)
	if k != key.KeyNone {
		if handled, err := e.KeyDown(k, mods); handled || err != nil {
			return handled, err
		}
	}
	if ev.Key() != tcell.KeyRune || mods.Has(key.ModCtrl) || mods.Has(key.ModAlt) {
		return false, nil
	}
	return true, e.InsertText(string(ev.Rune()))
}
