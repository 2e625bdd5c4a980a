package buffer

// Position is a byte position in the document.
type Position = int

// Line is a 0-indexed document line number.
type Line = int

// InvalidPosition marks an unset or absent position.
const InvalidPosition Position = -1
