package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Algorithm != "bfs" {
		t.Errorf("Algorithm = %q, want bfs", cfg.Algorithm)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}
}

func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	appDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	cfg := c.Config()
	if cfg != defaultConfig() {
		t.Errorf("missing file: got %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	writeConfigFile(t, "algorithm = \"dfs\"\nformat = \"png\"\n")

	c := New(io.Discard, LogInfo)
	cfg := c.Config()
	if cfg.Algorithm != "dfs" {
		t.Errorf("Algorithm = %q, want dfs", cfg.Algorithm)
	}
	if cfg.Format != "png" {
		t.Errorf("Format = %q, want png", cfg.Format)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	writeConfigFile(t, "algorithm = \"dfs\"\n")

	c := New(io.Discard, LogInfo)
	cfg := c.Config()
	if cfg.Algorithm != "dfs" {
		t.Errorf("Algorithm = %q, want dfs", cfg.Algorithm)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg default", cfg.Format)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	writeConfigFile(t, "algorithm = [not toml")

	c := New(io.Discard, LogInfo)
	cfg := c.Config()
	if cfg != defaultConfig() {
		t.Errorf("malformed file: got %+v, want defaults", cfg)
	}
}

func TestConfigLoadedOnce(t *testing.T) {
	writeConfigFile(t, "algorithm = \"dfs\"\n")

	c := New(io.Discard, LogInfo)
	first := c.Config()

	// A later change to the file must not affect the cached config.
	writeConfigFile(t, "algorithm = \"bfs\"\n")
	if second := c.Config(); second != first {
		t.Errorf("config reloaded: %+v != %+v", second, first)
	}
}
