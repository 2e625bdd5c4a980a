// Package document provides the shared, reference-counted text document
// that edit models attach to.
//
// # Ownership
//
// A Document is shared by every view showing it. Each holder calls AddRef
// when it takes a reference and Release when it drops it; the count is
// atomic so a host may hand documents between goroutines, but all text
// mutation happens on one editing goroutine.
//
// # Undo
//
// Every modification is recorded as an action. Actions are grouped into
// steps: consecutive typing or backspacing coalesces into one step, and
// BeginUndoAction/EndUndoAction force a group. UndoCurrent is the number of
// applied steps and serves as the transaction index for selection history.
//
// # View registry
//
// Views store per-view state on the document keyed by a ViewID. ViewState is
// a closed set: only types embedding ViewStateBase satisfy it.
//
// # Loading
//
// A Loader builds a document off the editing goroutine:
//
//	l := document.NewLoader(0)
//	for chunk := range chunks {
//	    if err := l.AddData(chunk); err != nil { ... }
//	}
//	doc, err := l.ConvertToDocument()
package document
