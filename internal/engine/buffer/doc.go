// Package buffer provides the storage primitives the document is built on.
//
// The package offers:
//   - Position and Range: byte positions and direction-agnostic spans
//   - SplitVector: a generic gap buffer
//   - Partitioning: ordered partition starts used as a line index
//   - CellBuffer: text bytes, per-byte style bytes and the line index
//
// None of the types lock; callers serialise access on the editing goroutine.
package buffer
