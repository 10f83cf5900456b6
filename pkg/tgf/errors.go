package tgf

import "fmt"

// VertexDefinitionError reports a structurally malformed line in the
// vertex section, such as a blank line.
type VertexDefinitionError struct {
	Line int
}

func (e *VertexDefinitionError) Error() string {
	return fmt.Sprintf("incorrect vertex definition at line %d", e.Line)
}

// EdgeDefinitionError reports a structurally malformed line in the edge
// section: fewer than two index tokens, or a blank line.
type EdgeDefinitionError struct {
	Line int
}

func (e *EdgeDefinitionError) Error() string {
	return fmt.Sprintf("incorrect edge definition at line %d", e.Line)
}

// VertexAlreadyDefinedError reports a vertex line reusing a file-local
// index that an earlier line already defined.
type VertexAlreadyDefinedError struct {
	Index int
	Line  int
}

func (e *VertexAlreadyDefinedError) Error() string {
	return fmt.Sprintf("vertex with index %d already defined, check line %d", e.Index, e.Line)
}

// VerticesNotDefinedError reports an edge line referencing at least one
// file-local index with no preceding vertex definition.
type VerticesNotDefinedError struct {
	From int
	To   int
	Line int
}

func (e *VerticesNotDefinedError) Error() string {
	return fmt.Sprintf("failed to join vertices with indices %d, %d because they are not defined at line %d", e.From, e.To, e.Line)
}

// ParseIntError reports an index token that is not a non-negative integer.
type ParseIntError struct {
	Line int
}

func (e *ParseIntError) Error() string {
	return fmt.Sprintf("failed to parse index of the vertex or edge at line %d", e.Line)
}

// ParseLabelError reports a label that the configured LabelCodec rejected.
type ParseLabelError struct {
	Line int
}

func (e *ParseLabelError) Error() string {
	return fmt.Sprintf("failed to parse label data of the vertex or edge at line %d", e.Line)
}

// GraphError wraps a graph operation error surfaced while applying a
// parsed line to the store, e.g. graph.ErrVertexExists for a duplicate
// vertex value (or a hash collision masquerading as one).
type GraphError struct {
	Err  error
	Line int
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph operation failed at line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying graph operation error for errors.Is.
func (e *GraphError) Unwrap() error { return e.Err }
