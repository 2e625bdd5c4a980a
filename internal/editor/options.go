package editor

import (
	"github.com/dshills/hyperion/internal/engine/document"
	"github.com/dshills/hyperion/internal/engine/model"
	"github.com/dshills/hyperion/internal/input/keymap"
	"github.com/dshills/hyperion/internal/renderer/style"
	"github.com/dshills/hyperion/internal/renderer/surface"
)

// DefaultTabWidth is the tab width in characters.
const DefaultTabWidth = 8

// DefaultPageLines is the page size used before a host reports one.
const DefaultPageLines = 24

// Option configures an Editor.
type Option func(*Editor)

// WithDocument shows doc instead of a new document.
func WithDocument(doc *document.Document) Option {
	return func(e *Editor) {
		e.initialDoc = doc
	}
}

// WithModelOptions passes options to the EditModel.
func WithModelOptions(opts ...model.Option) Option {
	return func(e *Editor) {
		e.modelOpts = append(e.modelOpts, opts...)
	}
}

// WithViewStyle uses vs instead of a default ViewStyle.
func WithViewStyle(vs *style.ViewStyle) Option {
	return func(e *Editor) {
		e.vs = vs
	}
}

// WithKeyMap uses km instead of the default bindings.
func WithKeyMap(km *keymap.KeyMap) Option {
	return func(e *Editor) {
		e.keys = km
	}
}

// WithSurface sets the surface fonts are measured on.
func WithSurface(s surface.Surface) Option {
	return func(e *Editor) {
		e.surface = s
	}
}

// WithTabWidth sets the tab width in characters.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithPageLines sets how many lines PageUp and PageDown move.
func WithPageLines(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.pageLines = n
		}
	}
}
