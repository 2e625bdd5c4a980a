// Package model holds the editing state of one view: the document it shows,
// its selection and caret, fold state and the optional selection history
// shared through the document's view registry.
package model
