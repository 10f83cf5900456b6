package graph

import "errors"

var (
	// ErrVertexExists is returned by [Graph.AddVertex] when a vertex with
	// the same derived ID is already present. Because IDs are
	// content-addressed, this usually means the same value was added twice.
	ErrVertexExists = errors.New("vertex already exists in the graph")

	// ErrVertexNotFound is returned when an operation references a vertex
	// ID that is not present in the graph. Traversals also return it when
	// the source vertex is absent.
	ErrVertexNotFound = errors.New("vertex does not exist in the graph")

	// ErrEdgeNotFound is returned when no edge connects the two requested
	// vertices in the given direction.
	ErrEdgeNotFound = errors.New("edge does not exist between the two vertices")
)
