package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkessler/tgraph/pkg/cache"
	"github.com/mkessler/tgraph/pkg/dot"
	"github.com/mkessler/tgraph/pkg/tgf"
)

// Export formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// validateFormat checks an export format name.
func validateFormat(format string) error {
	switch format {
	case formatSVG, formatPNG, formatDOT:
		return nil
	default:
		return fmt.Errorf("unknown format %q, available: svg, png, dot", format)
	}
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output  string
		format  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "export [file.tgf]",
		Short: "Export a graph as a Graphviz drawing",
		Long: `Export a graph as a Graphviz drawing.

The TGF file is converted to DOT and rendered with Graphviz. Rendered
artifacts are cached under ~/.cache/tgraph keyed by the input's content,
so re-exporting an unchanged file is instant.

The default format comes from the config file (svg if unset).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.Config().Format
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args[0], format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg, png, or dot")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runExport converts the file to DOT and, unless the format is dot itself,
// renders it through Graphviz with the artifact cache in front.
func (c *CLI) runExport(ctx context.Context, input, format, output string, noCache bool) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	g, err := tgf.StringsCodec().Unmarshal(raw)
	if err != nil {
		return err
	}

	identity := func(s string) string { return s }
	dotSrc, err := dot.Marshal(g, identity, identity)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".tgf") + "." + format
	}

	if format == formatDOT {
		if err := os.WriteFile(output, []byte(dotSrc), 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Exported DOT")
		printFile(output)
		return nil
	}

	store, err := newExportCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.ExportKey(raw, format)
	artifact, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("cache lookup failed", "err", err)
	}

	if !hit {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
		spinner.Start()

		artifact, err = renderArtifact(ctx, dotSrc, format)
		if err != nil {
			spinner.StopWithError("Export failed")
			return err
		}
		spinner.Stop()

		if err := store.Set(ctx, key, artifact, 0); err != nil {
			c.Logger.Warn("cache write failed", "err", err)
		}
	}

	if err := os.WriteFile(output, artifact, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Exported %s", strings.ToUpper(format))
	printFile(output)
	printCacheStatus(hit)
	return nil
}

// renderArtifact renders DOT to the requested raster/vector format.
func renderArtifact(ctx context.Context, dotSrc, format string) ([]byte, error) {
	switch format {
	case formatSVG:
		return dot.RenderSVG(ctx, dotSrc)
	case formatPNG:
		return dot.RenderPNG(ctx, dotSrc)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
