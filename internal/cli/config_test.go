package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path", func(t *testing.T) {
		cfg, err := LoadConfig("", true)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "nope.toml"), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.toml")
		require.NoError(t, os.WriteFile(path, []byte("graph = \"random\"\nn = 12\np = 0.5\nmax_distance = 30\n"), 0o644))

		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)

		want := DefaultConfig()
		want.Graph, want.N, want.P, want.MaxDistance = "random", 12, 0.5, 30
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("min_weight = 9\nmax_weight = 1\n"), 0o644))
		_, err := LoadConfig(path, true)
		assert.ErrorContains(t, err, "invalid weight range")
	})
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"graph":        func(c *Config) { c.Graph = "torus" },
		"frontier":     func(c *Config) { c.Frontier = "pairing" },
		"weights":      func(c *Config) { c.MinWeight = -1 },
		"max distance": func(c *Config) { c.MaxDistance = -2 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigMerge(t *testing.T) {
	file := DefaultConfig()
	file.Target, file.Seed = 8, 7

	flags := DefaultConfig()
	flags.Target, flags.Source = 3, 2

	got := flags.merge(file, func(name string) bool { return name == "target" })
	assert.Equal(t, 3, got.Target, "changed flag wins")
	assert.Equal(t, 0, got.Source, "unchanged flag keeps file value")
	assert.Equal(t, int64(7), got.Seed)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "algos", "config.toml"), defaultConfigPath())
}
