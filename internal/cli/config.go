package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds user defaults read from the config file. Flags always win
// over the file, the file wins over the built-in defaults.
type Config struct {
	// Algorithm is the default traversal algorithm: "bfs" or "dfs".
	Algorithm string `toml:"algorithm"`

	// Format is the default export format: "svg", "png", or "dot".
	Format string `toml:"format"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Algorithm: "bfs",
		Format:    "svg",
	}
}

// loadConfig reads the config file if present and overlays it on the
// defaults. A missing file is normal; a malformed one is logged and
// ignored rather than blocking the command.
func loadConfig(logger *log.Logger) Config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logger.Warn("ignoring malformed config file", "path", path, "err", err)
		return defaultConfig()
	}
	logger.Debug("loaded config", "path", path)
	return cfg
}

// configPath returns the config file location using XDG standard
// (~/.config/tgraph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
