// Package cli implements the tgraph command-line interface.
//
// tgraph reads graphs in Trivial Graph Format and offers three views on
// them: a plain listing (show), a BFS/DFS walk from a chosen start vertex
// (traverse), and a Graphviz export (export). The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// All presentation lives here; the pkg/graph and pkg/tgf packages never
// print or log, they only return errors.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkessler/tgraph/pkg/buildinfo"
	"github.com/mkessler/tgraph/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "tgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config     Config
	configOnce bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tgraph explores graphs stored in Trivial Graph Format",
		Long:         `tgraph is a CLI tool for working with directed graphs in Trivial Graph Format (TGF): listing their structure, walking them breadth- or depth-first, and exporting them as Graphviz drawings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.showCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Config returns the loaded configuration, reading the config file on
// first use. A missing file yields the built-in defaults.
func (c *CLI) Config() Config {
	if !c.configOnce {
		c.config = loadConfig(c.Logger)
		c.configOnce = true
	}
	return c.config
}

// newExportCache returns the artifact cache for the export command.
func newExportCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
