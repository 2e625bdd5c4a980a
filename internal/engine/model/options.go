package model

import "github.com/dshills/hyperion/internal/engine/document"

// Option configures an EditModel.
type Option func(*EditModel)

// WithUndoSelectionHistory sets the selection history mode.
func WithUndoSelectionHistory(opt UndoSelectionHistory) Option {
	return func(m *EditModel) {
		m.undoSelectionHistory = opt
	}
}

// WithBidirectional requests bidirectional text handling.
func WithBidirectional(b Bidirectional) Option {
	return func(m *EditModel) {
		m.Bidirectional = b
	}
}

// WithIMEInteraction sets the input method mode.
func WithIMEInteraction(ime IMEInteraction) Option {
	return func(m *EditModel) {
		m.IMEInteraction = ime
	}
}

// WithViewID sets the identity used in the document's view registry.
func WithViewID(id document.ViewID) Option {
	return func(m *EditModel) {
		m.id = id
	}
}

// WithDocumentOptions sets the options for a document created by New when
// none is supplied.
func WithDocumentOptions(opts ...document.Option) Option {
	return func(m *EditModel) {
		m.docOptions = append(m.docOptions, opts...)
	}
}
