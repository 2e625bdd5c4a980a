package keymap

import "errors"

// ErrUnknownCommand indicates a command name that is not defined.
var ErrUnknownCommand = errors.New("unknown command")
