package document

import (
	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/log"
)

type actionKind uint8

const (
	actionInsert actionKind = iota
	actionRemove
)

// action is one recorded text change.
type action struct {
	kind        actionKind
	position    buffer.Position
	data        []byte
	mayCoalesce bool
}

func (a action) end() buffer.Position {
	return a.position + len(a.data)
}

// step is the unit undone or redone at once.
type step struct {
	actions []action
}

// undoHistory records steps. current counts the applied steps; steps past
// current are the redo future.
type undoHistory struct {
	steps      []step
	current    int
	depth      int
	groupOpen  bool
	forceNew   bool
	collecting bool
	savePoint  int
}

func newUndoHistory() *undoHistory {
	return &undoHistory{collecting: true}
}

// coalesces reports whether next continues prev as typing or backspacing.
func coalesces(prev, next action) bool {
	if !prev.mayCoalesce || !next.mayCoalesce || prev.kind != next.kind {
		return false
	}
	switch next.kind {
	case actionInsert:
		return next.position == prev.end()
	case actionRemove:
		// Backspace removes just before the previous removal; delete
		// removes at the same position.
		return next.end() == prev.position || next.position == prev.position
	}
	return false
}

// startsStep reports whether recording next would open a new step.
func (uh *undoHistory) startsStep(next action) bool {
	if !uh.collecting {
		return false
	}
	if uh.depth > 0 {
		return !uh.groupOpen
	}
	if uh.forceNew || uh.current == 0 || uh.current == uh.savePoint {
		return true
	}
	last := uh.steps[uh.current-1].actions
	return !coalesces(last[len(last)-1], next)
}

// record appends a into the history.
func (uh *undoHistory) record(a action) {
	if !uh.collecting {
		return
	}
	start := uh.startsStep(a)
	uh.steps = uh.steps[:uh.current]
	if uh.savePoint > uh.current {
		uh.savePoint = -1
	}
	if start {
		uh.steps = append(uh.steps, step{actions: []action{a}})
		uh.current++
	} else {
		s := &uh.steps[uh.current-1]
		s.actions = append(s.actions, a)
	}
	if uh.depth > 0 {
		uh.groupOpen = true
	} else {
		uh.forceNew = false
	}
}

func (uh *undoHistory) begin() {
	if uh.depth == 0 {
		uh.groupOpen = false
	}
	uh.depth++
}

func (uh *undoHistory) end() {
	if uh.depth == 0 {
		return
	}
	uh.depth--
	if uh.depth == 0 {
		uh.forceNew = true
	}
}

func (uh *undoHistory) clear(atSavePoint bool) {
	uh.steps = nil
	uh.current = 0
	uh.depth = 0
	uh.groupOpen = false
	uh.forceNew = false
	uh.savePoint = -1
	if atSavePoint {
		uh.savePoint = 0
	}
}

// UndoCurrent returns the number of applied undo steps.
func (d *Document) UndoCurrent() int {
	return d.undo.current
}

// UndoSteps returns the total number of recorded steps, applied or not.
func (d *Document) UndoSteps() int {
	return len(d.undo.steps)
}

// CanUndo reports whether a step can be undone.
func (d *Document) CanUndo() bool {
	return d.undo.current > 0 && !d.readOnly
}

// CanRedo reports whether an undone step can be redone.
func (d *Document) CanRedo() bool {
	return d.undo.current < len(d.undo.steps) && !d.readOnly
}

// IsCollectingUndo reports whether modifications are recorded.
func (d *Document) IsCollectingUndo() bool {
	return d.undo.collecting
}

// SetUndoCollection turns undo recording on or off.
func (d *Document) SetUndoCollection(collect bool) {
	d.undo.collecting = collect
}

// EmptyUndoBuffer discards all undo and redo steps.
func (d *Document) EmptyUndoBuffer() {
	d.undo.clear(d.IsSavePoint())
}

// BeginUndoAction starts a group: every modification until the matching
// EndUndoAction undoes as one step. Calls nest.
func (d *Document) BeginUndoAction() {
	d.undo.begin()
}

// EndUndoAction closes the innermost group.
func (d *Document) EndUndoAction() {
	d.undo.end()
}

// InUndoAction reports whether a group is open.
func (d *Document) InUndoAction() bool {
	return d.undo.depth > 0
}

// SetSavePoint marks the current state as saved.
func (d *Document) SetSavePoint() {
	d.undo.savePoint = d.undo.current
	d.undo.forceNew = true
	d.checkSavePoint()
}

// IsSavePoint reports whether the document is unmodified since the save point.
func (d *Document) IsSavePoint() bool {
	return d.undo.savePoint == d.undo.current
}

func (d *Document) checkSavePoint() {
	at := d.IsSavePoint()
	if at != d.wasSavePoint {
		d.wasSavePoint = at
		d.notifySavePoint(at)
	}
}

// Undo reverts the last applied step and returns the position the caret
// should move to, or buffer.InvalidPosition when nothing was undone.
func (d *Document) Undo() buffer.Position {
	if !d.CanUndo() || d.entered {
		return buffer.InvalidPosition
	}
	d.entered = true
	defer func() { d.entered = false }()

	uh := d.undo
	s := uh.steps[uh.current-1]
	uh.current--
	uh.forceNew = true
	newPos := buffer.InvalidPosition
	for i := len(s.actions) - 1; i >= 0; i-- {
		a := s.actions[i]
		flags := ModUndo
		if i == 0 {
			flags |= ModLastStepInUndoRedo
		}
		if a.kind == actionInsert {
			d.applyRemove(a.position, len(a.data), flags, nil)
			newPos = a.position
		} else {
			d.applyInsert(a.position, a.data, flags, nil)
			newPos = a.end()
		}
	}
	log.Debug(log.CatDocument, "undo", "step", uh.current+1, "actions", len(s.actions))
	d.checkSavePoint()
	return newPos
}

// Redo reapplies the next undone step and returns the caret position, or
// buffer.InvalidPosition when nothing was redone.
func (d *Document) Redo() buffer.Position {
	if !d.CanRedo() || d.entered {
		return buffer.InvalidPosition
	}
	d.entered = true
	defer func() { d.entered = false }()

	uh := d.undo
	s := uh.steps[uh.current]
	uh.current++
	uh.forceNew = true
	newPos := buffer.InvalidPosition
	for i, a := range s.actions {
		flags := ModRedo
		if i == len(s.actions)-1 {
			flags |= ModLastStepInUndoRedo
		}
		if a.kind == actionInsert {
			d.applyInsert(a.position, a.data, flags, nil)
			newPos = a.end()
		} else {
			d.applyRemove(a.position, len(a.data), flags, nil)
			newPos = a.position
		}
	}
	log.Debug(log.CatDocument, "redo", "step", uh.current, "actions", len(s.actions))
	d.checkSavePoint()
	return newPos
}
