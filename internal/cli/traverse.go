package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkessler/tgraph/pkg/graph"
	"github.com/mkessler/tgraph/pkg/tgf"
)

// algorithm selects the traversal strategy.
type algorithm string

const (
	algorithmBFS algorithm = "bfs"
	algorithmDFS algorithm = "dfs"
)

// parseAlgorithm validates a user-supplied algorithm name.
func parseAlgorithm(s string) (algorithm, error) {
	switch strings.ToLower(s) {
	case "bfs":
		return algorithmBFS, nil
	case "dfs":
		return algorithmDFS, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q, only bfs and dfs are available", s)
	}
}

// traverseCommand creates the traverse command.
func (c *CLI) traverseCommand() *cobra.Command {
	var (
		algorithmStr string
		start        string
	)

	cmd := &cobra.Command{
		Use:   "traverse [file.tgf]",
		Short: "Walk a graph breadth- or depth-first from a start vertex",
		Long: `Walk a graph breadth- or depth-first from a start vertex.

The file is parsed as Trivial Graph Format. The start vertex is named by
its value, not its file-local index; it must exist in the graph. The walk
prints each visited vertex with its outgoing neighbors, in visit order.

The default algorithm comes from the config file (bfs if unset).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithmStr == "" {
				algorithmStr = c.Config().Algorithm
			}
			algo, err := parseAlgorithm(algorithmStr)
			if err != nil {
				return err
			}
			return c.runTraverse(args[0], algo, start)
		},
	}

	cmd.Flags().StringVarP(&algorithmStr, "algorithm", "a", "", "traversal algorithm: bfs or dfs")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex value (required)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// runTraverse parses the file, prints the adjacency listing, then the
// numbered visit log of the chosen walk.
func (c *CLI) runTraverse(path string, algo algorithm, start string) error {
	p := newProgress(c.Logger)
	g, err := tgf.StringsCodec().ReadFile(path)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("parsed %s: %d vertices, %d edges", path, g.VertexCount(), g.EdgeCount()))

	// The start vertex is resolved by content; the hash alone proves
	// nothing, so confirm it is actually present.
	source := g.VertexIDOf(start)
	if _, err := g.Vertex(source); err != nil {
		return fmt.Errorf("start vertex %q in %s: %w", start, path, err)
	}

	printHeading("Vertices traversal...")
	if err := printListing(g); err != nil {
		return err
	}

	printHeading("Applying %q algorithm to this graph...", strings.ToUpper(string(algo)))

	var visited []string
	visit := func(v string, adj []graph.Neighbor[string, string]) {
		visited = append(visited, styleVertex.Render(v)+": "+styleNeighbor.Render(formatNeighbors(adj)))
	}

	switch algo {
	case algorithmBFS:
		err = g.BFS(source, visit)
	case algorithmDFS:
		err = g.DFS(source, visit)
	}
	if err != nil {
		return err
	}

	for i, line := range visited {
		fmt.Printf("%d. %s\n", i+1, line)
	}
	return nil
}

// printListing prints every vertex with its outgoing neighbors.
func printListing(g *graph.Graph[string, string]) error {
	infos, err := g.Vertices()
	if err != nil {
		return err
	}
	for _, info := range infos {
		fmt.Println("- " + styleVertex.Render(info.Value))
		for _, n := range info.Neighbors {
			fmt.Println("  " + styleNeighbor.Render(fmt.Sprintf("%s (%s)", n.Value, n.Label)))
		}
	}
	return nil
}

// formatNeighbors renders a neighbor list as "Vladimir (180), Yaroslavl (250)".
func formatNeighbors(adj []graph.Neighbor[string, string]) string {
	if len(adj) == 0 {
		return "[]"
	}
	parts := make([]string, len(adj))
	for i, n := range adj {
		parts[i] = fmt.Sprintf("%s (%s)", n.Value, n.Label)
	}
	return strings.Join(parts, ", ")
}
