package graph

import "slices"

// Edge is a directed connection between two vertices, carrying a label.
// Edges live in the outgoing set of their From vertex; two edges with
// identical (From, To, Label) collapse to one, while parallel edges with
// different labels are both retained.
type Edge[E comparable] struct {
	From  VertexID
	To    VertexID
	Label E
}

// Neighbor is one resolved outgoing connection: the adjacent vertex's value
// and the label of the edge leading to it.
type Neighbor[V, E comparable] struct {
	Value V
	Label E
}

// VertexInfo is a vertex value paired with its resolved outgoing neighbors
// in edge insertion order. It is the unit of work passed to traversal
// visitors.
type VertexInfo[V, E comparable] struct {
	Value     V
	Neighbors []Neighbor[V, E]
}

// EdgeInfo is a fully resolved edge: both endpoint values and the label.
type EdgeInfo[V, E comparable] struct {
	From  V
	To    V
	Label E
}

// Graph is a directed, labeled multigraph with content-addressed vertices.
//
// The zero value is not usable - use [New] to create an instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph[V, E comparable] struct {
	hash   HashFunc[V]
	order  []VertexID                // vertex insertion order
	out    map[VertexID][]Edge[E]    // per-vertex outgoing edge set, insertion order
	values map[VertexID]V
}

// New creates an empty graph whose vertex identity is derived by hash.
// For string-valued vertices, pass [StringHash].
func New[V, E comparable](hash HashFunc[V]) *Graph[V, E] {
	return &Graph[V, E]{
		hash:   hash,
		out:    make(map[VertexID][]Edge[E]),
		values: make(map[VertexID]V),
	}
}

// VertexIDOf derives the ID the given value would have in this graph.
// It does not consult the graph: the ID exists whether or not the vertex
// has been added.
func (g *Graph[V, E]) VertexIDOf(v V) VertexID {
	return g.hash(v)
}

// AddVertex inserts a vertex and returns its derived ID.
// Returns ErrVertexExists if a vertex with the same ID is already present.
func (g *Graph[V, E]) AddVertex(v V) (VertexID, error) {
	id := g.hash(v)
	if _, exists := g.out[id]; exists {
		return 0, ErrVertexExists
	}
	g.order = append(g.order, id)
	g.out[id] = nil
	g.values[id] = v
	return id, nil
}

// Vertex returns the value stored at id.
// Returns ErrVertexNotFound if the vertex is not present.
func (g *Graph[V, E]) Vertex(id VertexID) (V, error) {
	v, ok := g.values[id]
	if !ok {
		var zero V
		return zero, ErrVertexNotFound
	}
	return v, nil
}

// HasVertex reports whether a vertex with the given ID is present.
func (g *Graph[V, E]) HasVertex(id VertexID) bool {
	_, ok := g.out[id]
	return ok
}

// RemoveVertex deletes the vertex and every edge referencing it: incoming
// edges are found by scanning all other vertices' outgoing sets (O(V·E)
// worst case, acceptable at the target graph sizes), the outgoing set is
// dropped wholesale. Returns ErrVertexNotFound if the vertex is not present.
func (g *Graph[V, E]) RemoveVertex(id VertexID) error {
	if _, ok := g.values[id]; !ok {
		return ErrVertexNotFound
	}

	// Parallel incoming edges are all dropped, not just the first match.
	for _, other := range g.order {
		g.out[other] = slices.DeleteFunc(g.out[other], func(e Edge[E]) bool { return e.To == id })
	}

	g.order = slices.DeleteFunc(g.order, func(v VertexID) bool { return v == id })
	delete(g.out, id)
	delete(g.values, id)
	return nil
}

// AddEdge inserts a directed edge from → to with the given label.
// Both endpoints must already exist; otherwise ErrVertexNotFound is
// returned and the graph is unchanged. Adding an identical (from, to,
// label) triple twice is a no-op.
func (g *Graph[V, E]) AddEdge(from, to VertexID, label E) error {
	if _, ok := g.out[to]; !ok {
		return ErrVertexNotFound
	}
	edges, ok := g.out[from]
	if !ok {
		return ErrVertexNotFound
	}

	e := Edge[E]{From: from, To: to, Label: label}
	if slices.Contains(edges, e) {
		return nil
	}
	g.out[from] = append(edges, e)
	return nil
}

// EdgeOf returns the first edge from → to in insertion order.
// If parallel edges exist only the first is returned.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph[V, E]) EdgeOf(from, to VertexID) (Edge[E], error) {
	for _, e := range g.out[from] {
		if e.To == to {
			return e, nil
		}
	}
	return Edge[E]{}, ErrEdgeNotFound
}

// EdgeLabel returns the label of the first edge from → to.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph[V, E]) EdgeLabel(from, to VertexID) (E, error) {
	e, err := g.EdgeOf(from, to)
	if err != nil {
		var zero E
		return zero, err
	}
	return e.Label, nil
}

// RemoveEdge deletes the first edge from → to in insertion order.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph[V, E]) RemoveEdge(from, to VertexID) error {
	edges := g.out[from]
	for i, e := range edges {
		if e.To == to {
			g.out[from] = slices.Delete(edges, i, i+1)
			return nil
		}
	}
	return ErrEdgeNotFound
}

// VertexIDs returns a copy of all vertex IDs in insertion order.
func (g *Graph[V, E]) VertexIDs() []VertexID {
	return slices.Clone(g.order)
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V, E]) VertexCount() int { return len(g.order) }

// EdgeCount returns the total number of edges, summed over all outgoing
// sets. O(V).
func (g *Graph[V, E]) EdgeCount() int {
	count := 0
	for _, edges := range g.out {
		count += len(edges)
	}
	return count
}

// Vertices returns every vertex with its resolved neighbors, in vertex
// insertion order. An edge referencing a vertex that is no longer present
// surfaces ErrVertexNotFound; that indicates internal corruption and should
// not occur through the public API.
func (g *Graph[V, E]) Vertices() ([]VertexInfo[V, E], error) {
	infos := make([]VertexInfo[V, E], 0, len(g.order))
	for _, id := range g.order {
		info, err := g.Info(id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Edges returns every edge with resolved endpoint values, in
// vertex-then-edge insertion order.
func (g *Graph[V, E]) Edges() ([]EdgeInfo[V, E], error) {
	var infos []EdgeInfo[V, E]
	for _, id := range g.order {
		for _, e := range g.out[id] {
			from, err := g.Vertex(e.From)
			if err != nil {
				return nil, err
			}
			to, err := g.Vertex(e.To)
			if err != nil {
				return nil, err
			}
			infos = append(infos, EdgeInfo[V, E]{From: from, To: to, Label: e.Label})
		}
	}
	return infos, nil
}

// Info returns the value of one vertex plus its resolved outgoing
// neighbors in edge insertion order.
// Returns ErrVertexNotFound if the vertex (or, defensively, one of its
// neighbors) is not present.
func (g *Graph[V, E]) Info(id VertexID) (VertexInfo[V, E], error) {
	v, err := g.Vertex(id)
	if err != nil {
		return VertexInfo[V, E]{}, err
	}

	edges := g.out[id]
	neighbors := make([]Neighbor[V, E], 0, len(edges))
	for _, e := range edges {
		nv, err := g.Vertex(e.To)
		if err != nil {
			return VertexInfo[V, E]{}, err
		}
		neighbors = append(neighbors, Neighbor[V, E]{Value: nv, Label: e.Label})
	}
	return VertexInfo[V, E]{Value: v, Neighbors: neighbors}, nil
}
