package tgf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mkessler/tgraph/pkg/graph"
)

// Codec marshals and unmarshals graphs in Trivial Graph Format. It bundles
// the hash used for vertex identity with the label codecs for both the
// vertex and edge types; the same codec instance round-trips a graph.
type Codec[V, E comparable] struct {
	hash   graph.HashFunc[V]
	vertex LabelCodec[V]
	edge   LabelCodec[E]
}

// NewCodec creates a codec from a vertex hash and the two label codecs.
func NewCodec[V, E comparable](hash graph.HashFunc[V], vertex LabelCodec[V], edge LabelCodec[E]) *Codec[V, E] {
	return &Codec[V, E]{hash: hash, vertex: vertex, edge: edge}
}

// StringsCodec returns a codec for Graph[string, string] hashed with
// [graph.StringHash]. This is the configuration the tgraph CLI uses.
func StringsCodec() *Codec[string, string] {
	return NewCodec(graph.StringHash, Strings(), Strings())
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal serializes a graph to TGF bytes. Vertices are numbered 1..n in
// insertion order; edges follow in vertex-then-edge insertion order with
// endpoint numbers re-derived through the identity hash.
func (c *Codec[V, E]) Marshal(g *graph.Graph[V, E]) ([]byte, error) {
	var buf bytes.Buffer

	numbers := make(map[graph.VertexID]int, g.VertexCount())
	for n, id := range g.VertexIDs() {
		v, err := g.Vertex(id)
		if err != nil {
			// Defensive: a vertex without data cannot be written, but its
			// sequence number stays assigned.
			continue
		}
		numbers[id] = n + 1
		fmt.Fprintf(&buf, "%d %s\n", n+1, c.vertex.Format(v))
	}

	buf.WriteString("#\n")

	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		from, okFrom := numbers[c.hash(e.From)]
		to, okTo := numbers[c.hash(e.To)]
		if okFrom && okTo {
			fmt.Fprintf(&buf, "%d %d %s\n", from, to, c.edge.Format(e.Label))
		}
	}

	return buf.Bytes(), nil
}

// Encode writes the graph as TGF to w.
func (c *Codec[V, E]) Encode(w io.Writer, g *graph.Graph[V, E]) error {
	data, err := c.Marshal(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the graph as a TGF file.
// The file is created with 0644 permissions.
func (c *Codec[V, E]) WriteFile(g *graph.Graph[V, E], path string) error {
	data, err := c.Marshal(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// Parsing
// =============================================================================

// parserMode tracks which TGF section the scanner is in. The first
// "#"-prefixed line switches permanently from vertex to edge definitions.
type parserMode int

const (
	vertexDefinitions parserMode = iota
	edgeDefinitions
)

// Unmarshal parses TGF bytes into a new graph. Parsing aborts at the first
// malformed line with one of the typed errors in this package, each
// carrying the 1-based line number.
func (c *Codec[V, E]) Unmarshal(data []byte) (*graph.Graph[V, E], error) {
	g := graph.New[V, E](c.hash)
	byIndex := make(map[int]graph.VertexID)

	mode := vertexDefinitions
	line := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line++
		text := scanner.Text()

		// A "#" line flips to edge definitions and is otherwise not
		// interpreted; later "#" lines are skipped the same way.
		if strings.HasPrefix(text, "#") {
			mode = edgeDefinitions
			continue
		}

		switch mode {
		case vertexDefinitions:
			if err := c.parseVertexLine(g, byIndex, text, line); err != nil {
				return nil, err
			}
		case edgeDefinitions:
			if err := c.parseEdgeLine(g, byIndex, text, line); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// Decode parses TGF from r into a new graph.
func (c *Codec[V, E]) Decode(r io.Reader) (*graph.Graph[V, E], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.Unmarshal(data)
}

// ReadFile reads a TGF file into a new graph.
func (c *Codec[V, E]) ReadFile(path string) (*graph.Graph[V, E], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c.Unmarshal(data)
}

// parseVertexLine handles one "<index> <label>" line.
func (c *Codec[V, E]) parseVertexLine(g *graph.Graph[V, E], byIndex map[int]graph.VertexID, text string, line int) error {
	token, rest := nextToken(text)
	if token == "" {
		return &VertexDefinitionError{Line: line}
	}
	index, err := parseIndex(token, line)
	if err != nil {
		return err
	}
	label, err := c.vertex.Parse(rest)
	if err != nil {
		return &ParseLabelError{Line: line}
	}

	id, err := g.AddVertex(label)
	if err != nil {
		return &GraphError{Err: err, Line: line}
	}
	if _, defined := byIndex[index]; defined {
		return &VertexAlreadyDefinedError{Index: index, Line: line}
	}
	byIndex[index] = id
	return nil
}

// parseEdgeLine handles one "<from> <to> <label>" line.
func (c *Codec[V, E]) parseEdgeLine(g *graph.Graph[V, E], byIndex map[int]graph.VertexID, text string, line int) error {
	fromToken, rest := nextToken(text)
	toToken, rest := nextToken(rest)
	if fromToken == "" || toToken == "" {
		return &EdgeDefinitionError{Line: line}
	}

	fromIndex, err := parseIndex(fromToken, line)
	if err != nil {
		return err
	}
	toIndex, err := parseIndex(toToken, line)
	if err != nil {
		return err
	}
	label, err := c.edge.Parse(rest)
	if err != nil {
		return &ParseLabelError{Line: line}
	}

	from, okFrom := byIndex[fromIndex]
	to, okTo := byIndex[toIndex]
	if !okFrom || !okTo {
		return &VerticesNotDefinedError{From: fromIndex, To: toIndex, Line: line}
	}

	if err := g.AddEdge(from, to, label); err != nil {
		return &GraphError{Err: err, Line: line}
	}
	return nil
}

// parseIndex parses a file-local vertex index: a non-negative base-10
// integer.
func parseIndex(s string, line int) (int, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, &ParseIntError{Line: line}
	}
	return int(n), nil
}

// nextToken splits off the first whitespace-delimited token. The rest is
// the remainder after the first whitespace run, preserved verbatim so
// labels keep their internal spacing.
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return "", ""
	}
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
