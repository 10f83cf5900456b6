package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkessler/tgraph/pkg/tgf"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file.tgf]",
		Short: "List a graph's vertices, edges, and counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(args[0])
		},
	}
	return cmd
}

// runShow parses the file and prints the adjacency listing with totals.
func (c *CLI) runShow(path string) error {
	p := newProgress(c.Logger)
	g, err := tgf.StringsCodec().ReadFile(path)
	if err != nil {
		return err
	}
	p.done("parsed " + path)

	printHeading("%s", path)
	if err := printListing(g); err != nil {
		return err
	}
	printStats(g.VertexCount(), g.EdgeCount())
	return nil
}
