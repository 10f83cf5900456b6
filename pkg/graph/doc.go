// Package graph provides a generic directed, labeled multigraph with
// content-addressed vertex identity and deterministic iteration order.
//
// Vertices are identified by a [VertexID] derived from the vertex value via
// a [HashFunc], never assigned sequentially. Two vertices with equal content
// always map to the same ID, which makes duplicate detection and
// re-resolution after deserialization possible without any side table.
//
// Both the vertex set and each vertex's outgoing edge set preserve insertion
// order. This is observable behavior: serialization (see the tgf package)
// and BFS/DFS visit order depend on it.
//
// A Graph is not safe for concurrent use. Callers that share an instance
// across goroutines must provide their own exclusion; iteration is
// invalidated by concurrent mutation.
//
// # Example
//
//	g := graph.New[string, string](graph.StringHash)
//	moscow, _ := g.AddVertex("Moscow")
//	vladimir, _ := g.AddVertex("Vladimir")
//	_ = g.AddEdge(moscow, vladimir, "180")
//
//	_ = g.BFS(moscow, func(v string, adj []graph.Neighbor[string, string]) {
//	    fmt.Println(v, adj)
//	})
package graph
