package document

// DocumentOption selects the internal representation of a document.
type DocumentOption int

const (
	// OptionDefault stores styles and uses the standard index width.
	OptionDefault DocumentOption = 0

	// OptionStylesNone does not store a style byte per position.
	OptionStylesNone DocumentOption = 0x1

	// OptionTextLarge prepares the document for very large text.
	OptionTextLarge DocumentOption = 0x100
)

// Code pages understood by the document.
const (
	CpSingleByte = 0
	CpUTF8       = 65001
)

// Option configures a Document.
type Option func(*Document)

// WithOption sets the representation options.
func WithOption(opt DocumentOption) Option {
	return func(d *Document) {
		d.options = opt
	}
}

// WithCodePage sets the code page. The default is CpUTF8.
func WithCodePage(cp int) Option {
	return func(d *Document) {
		d.codePage = cp
	}
}

// WithContent sets the initial text. It is not recorded for undo.
func WithContent(text string) Option {
	return func(d *Document) {
		d.initial = text
	}
}

// WithUndoCollection sets whether modifications are recorded for undo.
func WithUndoCollection(collect bool) Option {
	return func(d *Document) {
		d.undo.collecting = collect
	}
}
