package document

import (
	"github.com/dshills/hyperion/internal/engine/buffer"
	"github.com/dshills/hyperion/internal/log"
)

// Loader accumulates text for a new document. It may be used from any one
// goroutine; the document it produces belongs to the editing goroutine once
// handed over.
type Loader struct {
	cb       *buffer.CellBuffer
	options  DocumentOption
	codePage int
	done     bool
	released bool
}

// NewLoader creates a loader for a document with the given options.
func NewLoader(options DocumentOption, codePage int) *Loader {
	return &Loader{
		cb:       buffer.NewCellBuffer(options&OptionStylesNone == 0, options&OptionTextLarge != 0),
		options:  options,
		codePage: codePage,
	}
}

// AddData appends data to the pending text.
func (l *Loader) AddData(data []byte) error {
	switch {
	case l.released:
		return ErrLoaderReleased
	case l.done:
		return ErrLoaderConsumed
	}
	_, err := l.cb.InsertString(l.cb.Length(), data)
	return err
}

// Length returns the number of bytes added so far.
func (l *Loader) Length() int {
	if l.cb == nil {
		return 0
	}
	return l.cb.Length()
}

// ConvertToDocument hands the accumulated text over as a new document with
// an empty undo history. The loader cannot be used afterwards.
func (l *Loader) ConvertToDocument() (*Document, error) {
	switch {
	case l.released:
		return nil, ErrLoaderReleased
	case l.done:
		return nil, ErrLoaderConsumed
	}
	l.done = true
	d := newFromBuffer(l.cb, l.options, l.codePage)
	log.Debug(log.CatDocument, "loader converted", "bytes", l.cb.Length(), "lines", l.cb.Lines())
	l.cb = nil
	return d, nil
}

// Release abandons the loader and its pending text.
func (l *Loader) Release() {
	l.released = true
	l.cb = nil
}
