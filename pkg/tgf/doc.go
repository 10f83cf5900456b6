// Package tgf serializes graphs to and from the Trivial Graph Format.
//
// TGF is a line-oriented text format with three parts: a vertex section,
// a "#" separator, and an edge section.
//
//	1 Moscow
//	2 Vladimir
//	#
//	1 2 180
//
// Vertex lines carry a file-local integer index and a label; edge lines
// carry two indices and a label. Indices exist only inside the document:
// on parse they are resolved back to content-derived vertex IDs, so a
// round trip preserves graph identity even though the numbering may differ.
//
// Labels are generic. A [LabelCodec] pairs a parse function with a format
// function; the two must be symmetric for the round trip to be lossless.
//
// Parsing is strict and line-numbered: the first malformed line aborts
// with a typed error carrying its 1-based line number (see [ParseIntError],
// [VerticesNotDefinedError] and friends). There is no multi-error
// collection or partial recovery.
package tgf
