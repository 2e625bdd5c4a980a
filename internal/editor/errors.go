package editor

import "errors"

var (
	// ErrProtected indicates an edit touching text in a protected style.
	ErrProtected = errors.New("text is protected")

	// ErrClosed indicates use of a closed editor.
	ErrClosed = errors.New("editor is closed")
)
