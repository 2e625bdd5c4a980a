package history

import (
	"github.com/tidwall/btree"

	"github.com/dshills/hyperion/internal/engine/cursor"
	"github.com/dshills/hyperion/internal/engine/document"
)

// UndoRedo selects one of the two stacks.
type UndoRedo int

const (
	Undo UndoRedo = iota
	Redo
)

func (ur UndoRedo) String() string {
	if ur == Redo {
		return "redo"
	}
	return "undo"
}

// noIndex marks that no selection is pending.
const noIndex = -1

// SelectionWithScroll is a recorded selection and the top visible line.
type SelectionWithScroll struct {
	Selection cursor.Selection
	TopLine   int
}

// Empty reports whether nothing was recorded.
func (s SelectionWithScroll) Empty() bool {
	return s.Selection.IsZero()
}

type selectionStack struct {
	entries      btree.Map[int, SelectionWithScroll]
	indexCurrent int
	current      cursor.Selection
}

// truncate removes every entry at or after index.
func (ss *selectionStack) truncate(index int) {
	var doomed []int
	ss.entries.Ascend(index, func(key int, _ SelectionWithScroll) bool {
		doomed = append(doomed, key)
		return true
	})
	for _, key := range doomed {
		ss.entries.Delete(key)
	}
}

// ModelState is the selection history of one view. It lives in the
// document's view registry.
type ModelState struct {
	document.ViewStateBase

	historyForUndo selectionStack
	historyForRedo selectionStack
}

// NewModelState creates an empty history.
func NewModelState() *ModelState {
	ms := &ModelState{}
	ms.historyForUndo.indexCurrent = noIndex
	ms.historyForRedo.indexCurrent = noIndex
	return ms
}

// RememberSelectionForUndo notes sel as the selection before the step that
// follows index. Nothing is stored until RememberSelectionOntoStack.
func (ms *ModelState) RememberSelectionForUndo(index int, sel cursor.Selection) {
	ms.historyForUndo.indexCurrent = index
	ms.historyForUndo.current = sel.Clone()
}

// ForgetSelectionForUndo drops the noted selection.
func (ms *ModelState) ForgetSelectionForUndo() {
	ms.historyForUndo.indexCurrent = noIndex
	ms.historyForUndo.current = cursor.Selection{}
}

// PendingIndex returns the index noted by RememberSelectionForUndo, or -1.
func (ms *ModelState) PendingIndex() int {
	return ms.historyForUndo.indexCurrent
}

// RememberSelectionOntoStack stores the noted selection at index with
// topLine. Only index == noted+1 is accepted; any other index leaves the
// stack untouched so a coalesced step keeps its first selection.
func (ms *ModelState) RememberSelectionOntoStack(index int, topLine int) bool {
	u := &ms.historyForUndo
	if u.indexCurrent < 0 || index != u.indexCurrent+1 {
		return false
	}
	u.entries.Set(index, SelectionWithScroll{Selection: u.current.Clone(), TopLine: topLine})
	return true
}

// RememberSelectionForRedoOntoStack stores sel at index on the redo stack.
func (ms *ModelState) RememberSelectionForRedoOntoStack(index int, sel cursor.Selection, topLine int) {
	ms.historyForRedo.entries.Set(index, SelectionWithScroll{Selection: sel.Clone(), TopLine: topLine})
}

// SelectionFromStack returns the entry at index on the chosen stack, or an
// empty result.
func (ms *ModelState) SelectionFromStack(index int, history UndoRedo) SelectionWithScroll {
	ss := &ms.historyForUndo
	if history == Redo {
		ss = &ms.historyForRedo
	}
	sws, ok := ss.entries.Get(index)
	if !ok {
		return SelectionWithScroll{}
	}
	sws.Selection = sws.Selection.Clone()
	return sws
}

// TruncateUndo erases entries at or after index from both stacks.
func (ms *ModelState) TruncateUndo(index int) {
	ms.historyForUndo.truncate(index)
	ms.historyForRedo.truncate(index)
}

// Indices returns the keys of the chosen stack in ascending order.
func (ms *ModelState) Indices(history UndoRedo) []int {
	if history == Redo {
		return ms.historyForRedo.entries.Keys()
	}
	return ms.historyForUndo.entries.Keys()
}

// Len returns the number of entries on the chosen stack.
func (ms *ModelState) Len(history UndoRedo) int {
	if history == Redo {
		return ms.historyForRedo.entries.Len()
	}
	return ms.historyForUndo.entries.Len()
}
