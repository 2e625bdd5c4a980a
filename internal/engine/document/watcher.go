package document

import (
	"strings"

	"github.com/dshills/hyperion/internal/engine/buffer"
)

// ModificationFlags describe a modification notification.
type ModificationFlags uint32

const (
	ModInsertText ModificationFlags = 1 << iota
	ModDeleteText
	ModChangeStyle
	ModUser
	ModUndo
	ModRedo
	ModStartAction
	ModLastStepInUndoRedo
	ModBeforeInsert
	ModBeforeDelete
)

var modNames = []struct {
	flag ModificationFlags
	name string
}{
	{ModInsertText, "InsertText"},
	{ModDeleteText, "DeleteText"},
	{ModChangeStyle, "ChangeStyle"},
	{ModUser, "User"},
	{ModUndo, "Undo"},
	{ModRedo, "Redo"},
	{ModStartAction, "StartAction"},
	{ModLastStepInUndoRedo, "LastStepInUndoRedo"},
	{ModBeforeInsert, "BeforeInsert"},
	{ModBeforeDelete, "BeforeDelete"},
}

// Has reports whether any of the given flags are set.
func (f ModificationFlags) Has(flags ModificationFlags) bool {
	return f&flags != 0
}

// String returns the set flags joined with '|'.
func (f ModificationFlags) String() string {
	var parts []string
	for _, n := range modNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// Modification describes one change to a document.
type Modification struct {
	Type       ModificationFlags
	Position   buffer.Position
	Length     int
	LinesAdded int
	Text       string
}

// Watcher receives document notifications on the editing goroutine.
type Watcher interface {
	NotifyModified(doc *Document, m Modification)
	NotifySavePoint(doc *Document, atSavePoint bool)
	NotifyDeleted(doc *Document)
}

// AddWatcher registers w. Adding the same watcher twice is a no-op.
func (d *Document) AddWatcher(w Watcher) {
	for _, existing := range d.watchers {
		if existing == w {
			return
		}
	}
	d.watchers = append(d.watchers, w)
}

// RemoveWatcher unregisters w and reports whether it was registered.
func (d *Document) RemoveWatcher(w Watcher) bool {
	for i, existing := range d.watchers {
		if existing == w {
			d.watchers = append(d.watchers[:i:i], d.watchers[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) notifyModified(m Modification) {
	for _, w := range d.watchers {
		w.NotifyModified(d, m)
	}
}

func (d *Document) notifySavePoint(atSavePoint bool) {
	for _, w := range d.watchers {
		w.NotifySavePoint(d, atSavePoint)
	}
}

func (d *Document) notifyDeleted() {
	for _, w := range d.watchers {
		w.NotifyDeleted(d)
	}
}
