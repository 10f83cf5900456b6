package graph_test

import (
	"fmt"

	"github.com/mkessler/tgraph/pkg/graph"
)

func Example() {
	g := graph.New[string, string](graph.StringHash)

	moscow, _ := g.AddVertex("Moscow")
	vladimir, _ := g.AddVertex("Vladimir")
	yaroslavl, _ := g.AddVertex("Yaroslavl")

	_ = g.AddEdge(moscow, vladimir, "180")
	_ = g.AddEdge(moscow, yaroslavl, "250")

	_ = g.BFS(moscow, func(v string, adj []graph.Neighbor[string, string]) {
		fmt.Printf("%s (%d outgoing)\n", v, len(adj))
	})

	// Output:
	// Moscow (2 outgoing)
	// Vladimir (0 outgoing)
	// Yaroslavl (0 outgoing)
}

func ExampleGraph_DFS() {
	g := graph.New[string, string](graph.StringHash)

	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	c, _ := g.AddVertex("c")
	_ = g.AddEdge(a, b, "1")
	_ = g.AddEdge(a, c, "2")

	// The stack pops the last-listed neighbor first.
	_ = g.DFS(a, func(v string, _ []graph.Neighbor[string, string]) {
		fmt.Println(v)
	})

	// Output:
	// a
	// c
	// b
}
