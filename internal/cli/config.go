package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Canx/algos/dijkstra"
)

// Graph kinds accepted by the route command.
const (
	graphClassic = "classic"
	graphGrid    = "grid"
	graphRandom  = "random"
)

// noCap disables the distance cap.
const noCap = -1

// Config holds the defaults of the route command. Every field maps to a flag
// of the same name (underscores become dashes).
type Config struct {
	Source      int     `toml:"source"`
	Target      int     `toml:"target"`
	Graph       string  `toml:"graph"`
	Frontier    string  `toml:"frontier"`
	N           int     `toml:"n"`
	P           float64 `toml:"p"`
	Seed        int64   `toml:"seed"`
	MaxDistance int64   `toml:"max_distance"`
	MinWeight   int64   `toml:"min_weight"`
	MaxWeight   int64   `toml:"max_weight"`
}

// DefaultConfig reproduces the classic run: from 0 to 4 on the 9-vertex graph.
func DefaultConfig() Config {
	return Config{
		Source:      0,
		Target:      4,
		Graph:       graphClassic,
		Frontier:    dijkstra.BinaryHeap.String(),
		N:           5,
		P:           0.3,
		Seed:        42,
		MaxDistance: noCap,
		MinWeight:   1,
		MaxWeight:   9,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A missing file is
// not an error unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that the libraries would otherwise reject with
// a panic or a less specific error.
func (c Config) Validate() error {
	switch c.Graph {
	case graphClassic, graphGrid, graphRandom:
	default:
		return fmt.Errorf("unknown graph %q (want classic, grid or random)", c.Graph)
	}
	if _, err := dijkstra.ParseFrontierKind(c.Frontier); err != nil {
		return err
	}
	if c.MinWeight < 0 || c.MaxWeight < c.MinWeight {
		return fmt.Errorf("invalid weight range [%d,%d]", c.MinWeight, c.MaxWeight)
	}
	if c.MaxDistance < noCap {
		return fmt.Errorf("max distance must be ≥ 0 or %d for none, got %d", noCap, c.MaxDistance)
	}
	return nil
}

// merge returns base with every field whose flag was set on the command line
// replaced by the value from c.
func (c Config) merge(base Config, changed func(name string) bool) Config {
	out := base
	if changed("source") {
		out.Source = c.Source
	}
	if changed("target") {
		out.Target = c.Target
	}
	if changed("graph") {
		out.Graph = c.Graph
	}
	if changed("frontier") {
		out.Frontier = c.Frontier
	}
	if changed("n") {
		out.N = c.N
	}
	if changed("p") {
		out.P = c.P
	}
	if changed("seed") {
		out.Seed = c.Seed
	}
	if changed("max-distance") {
		out.MaxDistance = c.MaxDistance
	}
	if changed("min-weight") {
		out.MinWeight = c.MinWeight
	}
	if changed("max-weight") {
		out.MaxWeight = c.MaxWeight
	}
	return out
}

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/algos/config.toml), or "" when no home directory is known.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
