package document

import "github.com/google/uuid"

// ViewID identifies one view to the document's registry.
type ViewID = uuid.UUID

// NewViewID returns a fresh view identity.
func NewViewID() ViewID {
	return uuid.New()
}

// ViewState is per-view state stored on a document.
// Only types embedding ViewStateBase implement it.
type ViewState interface {
	viewState()
}

// ViewStateBase is embedded by every ViewState kind.
type ViewStateBase struct{}

func (ViewStateBase) viewState() {}

// ViewState returns the state registered for id, or nil.
func (d *Document) ViewState(id ViewID) ViewState {
	return d.views[id]
}

// SetViewState registers state for id. A nil state removes the entry.
func (d *Document) SetViewState(id ViewID, state ViewState) {
	if state == nil {
		delete(d.views, id)
		return
	}
	d.views[id] = state
}

// ViewStates returns the number of registered view states.
func (d *Document) ViewStates() int {
	return len(d.views)
}
