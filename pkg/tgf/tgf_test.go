package tgf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkessler/tgraph/pkg/graph"
)

const moscowTGF = "1 Moscow\n" +
	"2 Vladimir\n" +
	"3 Yaroslavl\n" +
	"4 Novgorod\n" +
	"5 Vologda\n" +
	"#\n" +
	"1 2 180\n" +
	"1 3 250\n" +
	"2 4 225\n" +
	"3 5 175\n"

func TestMarshal(t *testing.T) {
	c := StringsCodec()
	g := graph.New[string, string](graph.StringHash)

	moscow, _ := g.AddVertex("Moscow")
	vladimir, _ := g.AddVertex("Vladimir")
	yaroslavl, _ := g.AddVertex("Yaroslavl")
	novgorod, _ := g.AddVertex("Novgorod")
	vologda, _ := g.AddVertex("Vologda")
	g.AddEdge(moscow, vladimir, "180")
	g.AddEdge(moscow, yaroslavl, "250")
	g.AddEdge(vladimir, novgorod, "225")
	g.AddEdge(yaroslavl, vologda, "175")

	data, err := c.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != moscowTGF {
		t.Errorf("Marshal =\n%s\nwant\n%s", data, moscowTGF)
	}
}

func TestUnmarshal(t *testing.T) {
	c := StringsCodec()

	g, err := c.Unmarshal([]byte(moscowTGF))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := g.VertexCount(); got != 5 {
		t.Errorf("VertexCount = %d, want 5", got)
	}
	if got := g.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount = %d, want 4", got)
	}

	moscow := g.VertexIDOf("Moscow")
	vladimir := g.VertexIDOf("Vladimir")
	label, err := g.EdgeLabel(moscow, vladimir)
	if err != nil {
		t.Fatalf("EdgeLabel: %v", err)
	}
	if label != "180" {
		t.Errorf("EdgeLabel = %q, want 180", label)
	}
}

func TestRoundTrip(t *testing.T) {
	c := StringsCodec()

	g, err := c.Unmarshal([]byte(moscowTGF))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	data, err := c.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != moscowTGF {
		t.Errorf("round trip changed the document:\n%s", data)
	}
}

func TestUnmarshalLabelsKeepSpacing(t *testing.T) {
	c := StringsCodec()

	doc := "1 First node\n2 Second  node\n#\n1 2 Edge between the two\n"
	g, err := c.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	first := g.VertexIDOf("First node")
	second := g.VertexIDOf("Second  node")
	label, err := g.EdgeLabel(first, second)
	if err != nil {
		t.Fatalf("EdgeLabel: %v", err)
	}
	if label != "Edge between the two" {
		t.Errorf("EdgeLabel = %q", label)
	}
}

func TestUnmarshalLaterSeparatorIgnored(t *testing.T) {
	c := StringsCodec()

	// A second "#" line inside the edge section is skipped, it does not
	// switch modes back or fail parsing.
	doc := "1 a\n2 b\n#\n1 2 x\n#\n2 1 y\n"
	g, err := c.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want 2", got)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	c := StringsCodec()

	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, err error)
	}{
		{
			name: "BlankVertexLine",
			doc:  "1 a\n\n#\n",
			check: func(t *testing.T, err error) {
				var e *VertexDefinitionError
				if !errors.As(err, &e) || e.Line != 2 {
					t.Errorf("err = %v, want VertexDefinitionError at line 2", err)
				}
			},
		},
		{
			name: "BlankEdgeLine",
			doc:  "1 a\n#\n\n",
			check: func(t *testing.T, err error) {
				var e *EdgeDefinitionError
				if !errors.As(err, &e) || e.Line != 3 {
					t.Errorf("err = %v, want EdgeDefinitionError at line 3", err)
				}
			},
		},
		{
			name: "EdgeMissingSecondIndex",
			doc:  "1 a\n2 b\n#\n1\n",
			check: func(t *testing.T, err error) {
				var e *EdgeDefinitionError
				if !errors.As(err, &e) || e.Line != 4 {
					t.Errorf("err = %v, want EdgeDefinitionError at line 4", err)
				}
			},
		},
		{
			name: "VertexIndexNotInteger",
			doc:  "1 a\nx b\n#\n",
			check: func(t *testing.T, err error) {
				var e *ParseIntError
				if !errors.As(err, &e) || e.Line != 2 {
					t.Errorf("err = %v, want ParseIntError at line 2", err)
				}
			},
		},
		{
			name: "NegativeIndexRejected",
			doc:  "-1 a\n#\n",
			check: func(t *testing.T, err error) {
				var e *ParseIntError
				if !errors.As(err, &e) || e.Line != 1 {
					t.Errorf("err = %v, want ParseIntError at line 1", err)
				}
			},
		},
		{
			name: "EdgeIndexNotInteger",
			doc:  "1 a\n2 b\n#\n1 x lbl\n",
			check: func(t *testing.T, err error) {
				var e *ParseIntError
				if !errors.As(err, &e) || e.Line != 4 {
					t.Errorf("err = %v, want ParseIntError at line 4", err)
				}
			},
		},
		{
			name: "VertexIndexReused",
			doc:  "1 a\n1 b\n#\n",
			check: func(t *testing.T, err error) {
				var e *VertexAlreadyDefinedError
				if !errors.As(err, &e) || e.Index != 1 || e.Line != 2 {
					t.Errorf("err = %v, want VertexAlreadyDefinedError{1, 2}", err)
				}
			},
		},
		{
			name: "DuplicateVertexValue",
			doc:  "1 a\n2 a\n#\n",
			check: func(t *testing.T, err error) {
				var e *GraphError
				if !errors.As(err, &e) || e.Line != 2 {
					t.Fatalf("err = %v, want GraphError at line 2", err)
				}
				if !errors.Is(err, graph.ErrVertexExists) {
					t.Errorf("err = %v, want wrapped ErrVertexExists", err)
				}
			},
		},
		{
			name: "EdgeReferencesUndefinedIndex",
			doc:  "1 a\n2 b\n#\n1 2 x\n1 7 y\n",
			check: func(t *testing.T, err error) {
				var e *VerticesNotDefinedError
				if !errors.As(err, &e) || e.From != 1 || e.To != 7 || e.Line != 5 {
					t.Errorf("err = %v, want VerticesNotDefinedError{1, 7, 5}", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Unmarshal([]byte(tt.doc))
			if err == nil {
				t.Fatal("Unmarshal succeeded, want error")
			}
			tt.check(t, err)
		})
	}
}

func TestIntLabels(t *testing.T) {
	c := NewCodec(graph.StringHash, Strings(), Ints())

	g, err := c.Unmarshal([]byte("1 Moscow\n2 Vladimir\n#\n1 2 180\n"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	label, err := g.EdgeLabel(g.VertexIDOf("Moscow"), g.VertexIDOf("Vladimir"))
	if err != nil {
		t.Fatalf("EdgeLabel: %v", err)
	}
	if label != 180 {
		t.Errorf("EdgeLabel = %d, want 180", label)
	}

	_, err = c.Unmarshal([]byte("1 Moscow\n2 Vladimir\n#\n1 2 fast\n"))
	var e *ParseLabelError
	if !errors.As(err, &e) || e.Line != 4 {
		t.Errorf("err = %v, want ParseLabelError at line 4", err)
	}
}

func TestFileHelpers(t *testing.T) {
	c := StringsCodec()
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.tgf")

	g, err := c.Unmarshal([]byte(moscowTGF))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := c.WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != moscowTGF {
		t.Errorf("file content =\n%s", data)
	}

	back, err := c.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if back.VertexCount() != 5 || back.EdgeCount() != 4 {
		t.Errorf("reloaded graph = %d vertices, %d edges", back.VertexCount(), back.EdgeCount())
	}

	_, err = c.ReadFile(filepath.Join(dir, "missing.tgf"))
	if err == nil || !strings.Contains(err.Error(), "read ") {
		t.Errorf("missing file err = %v, want read wrap", err)
	}
}

func TestDecodeEncode(t *testing.T) {
	c := StringsCodec()

	g, err := c.Decode(strings.NewReader(moscowTGF))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf strings.Builder
	if err := c.Encode(&buf, g); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != moscowTGF {
		t.Errorf("Encode =\n%s", buf.String())
	}
}
