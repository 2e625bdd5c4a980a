package document

import "errors"

// Errors returned by document operations.
var (
	// ErrReadOnly indicates a modification of a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrReentrantModification indicates a watcher tried to modify the
	// document while a modification was being notified.
	ErrReentrantModification = errors.New("modification during notification")

	// ErrLoaderConsumed indicates the loader already produced its document.
	ErrLoaderConsumed = errors.New("loader already converted")

	// ErrLoaderReleased indicates the loader was released.
	ErrLoaderReleased = errors.New("loader released")
)
