// Package history keeps per-view selection history alongside a document's
// undo steps.
//
// A ModelState holds two sparse stacks keyed by transaction index: the
// selection before each undoable step and the selection after each undone
// one. Undoing step i restores the undo entry at i; redoing it restores the
// redo entry at i.
//
// # Coalescing
//
// The selection is noted with RememberSelectionForUndo when a step starts and
// committed by RememberSelectionOntoStack once the step exists. A commit is
// only accepted at the index directly after the noted one, so typing that
// coalesces into an existing step keeps the selection from before the first
// keystroke:
//
//	ms.RememberSelectionForUndo(5, sel)  // step 6 is about to start
//	ms.RememberSelectionOntoStack(6, 10) // stored at 6
//	ms.RememberSelectionOntoStack(9, 20) // ignored, nothing noted for 8
package history
