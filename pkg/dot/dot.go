// Package dot converts graphs to Graphviz DOT and renders them to SVG or
// PNG. DOT output is write-only presentation; TGF remains the only
// persistence format.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mkessler/tgraph/pkg/graph"
)

// Marshal converts a graph to DOT. Vertex and edge labels are rendered
// through the given format functions; vertices appear in insertion order so
// the output is deterministic.
func Marshal[V, E comparable](g *graph.Graph[V, E], formatVertex func(V) string, formatEdge func(E) string) (string, error) {
	vertices, err := g.Vertices()
	if err != nil {
		return "", err
	}
	edges, err := g.Edges()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, info := range vertices {
		fmt.Fprintf(&buf, "  %q;\n", formatVertex(info.Value))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", formatVertex(e.From), formatVertex(e.To), formatEdge(e.Label))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT document to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT document to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
