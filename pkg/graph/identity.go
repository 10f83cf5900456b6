package graph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// VertexID is an opaque 64-bit handle derived from a vertex's content.
// Equal content always yields the same ID across calls, processes, and
// serialize/parse round-trips. Distinct contents are expected, but not
// guaranteed, to yield distinct IDs: a hash collision is an accepted,
// undetected risk at the target graph sizes.
type VertexID uint64

// HashFunc derives the VertexID for a vertex value. Implementations must be
// pure and deterministic; the graph calls it on every AddVertex and callers
// use it to resolve vertices by content.
type HashFunc[V any] func(V) VertexID

// StringHash derives a VertexID from a string using xxHash64.
// xxHash is a fixed, unseeded algorithm, so the mapping is stable across
// process runs.
func StringHash(s string) VertexID {
	return VertexID(xxhash.Sum64String(s))
}

// HashText derives a VertexID from any value through its canonical text
// form. The value's String output must itself be deterministic.
func HashText[V fmt.Stringer](v V) VertexID {
	return StringHash(v.String())
}
