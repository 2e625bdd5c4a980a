package document

import "github.com/dshills/hyperion/internal/log"

// GroupScope groups modifications into one undo step until End.
//
//	defer doc.UndoGroup("reindent").End()
type GroupScope struct {
	doc    *Document
	name   string
	active bool
}

// UndoGroup opens a group scope.
func (d *Document) UndoGroup(name string) *GroupScope {
	d.BeginUndoAction()
	return &GroupScope{doc: d, name: name, active: true}
}

// End closes the scope. Only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.doc.EndUndoAction()
		g.active = false
	}
}

// Transaction runs fn inside an undo group. Modifications made before an
// error remain applied and undo as one step.
func (d *Document) Transaction(name string, fn func() error) error {
	g := d.UndoGroup(name)
	defer g.End()
	if err := fn(); err != nil {
		log.Debug(log.CatDocument, "transaction failed", "name", name, "error", err.Error())
		return err
	}
	return nil
}
