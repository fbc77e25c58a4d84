package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates pathviz configuration values.
type Config struct {
	Grid    GridConfig
	Search  SearchConfig
	Replay  ReplayConfig
	Logging LoggingConfig
}

// GridConfig selects the grid to search: a YAML layout file, or a blank
// grid of the given size when LayoutPath is empty.
type GridConfig struct {
	LayoutPath string
	Topology   string // square|hexagon
	Width      int
	Height     int
	Weighted   bool
}

// SearchConfig names the algorithm to run.
type SearchConfig struct {
	Algorithm string // bfs|dfs|dijkstra|gbfs|astar
}

// ReplayConfig controls the terminal animation.
type ReplayConfig struct {
	Animate      bool
	VisitedDelay time.Duration
	PathDelay    time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Component     string // attached to every record as "component"
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultTopology      = "square"
	defaultAlgorithm     = "astar"
	defaultWidth         = 40
	defaultHeight        = 20
	defaultVisitedDelay  = 100 * time.Millisecond
	defaultPathDelay     = 40 * time.Millisecond
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultComponent     = "pathviz"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Grid: GridConfig{
			LayoutPath: os.Getenv("PATHVIZ_LAYOUT"),
			Topology:   valueOrDefault("PATHVIZ_TOPOLOGY", defaultTopology),
			Weighted:   parseBoolWithDefault("PATHVIZ_WEIGHTED", false),
		},
		Search: SearchConfig{
			Algorithm: valueOrDefault("PATHVIZ_ALGORITHM", defaultAlgorithm),
		},
		Replay: ReplayConfig{
			Animate:      parseBoolWithDefault("PATHVIZ_ANIMATE", true),
			VisitedDelay: defaultVisitedDelay,
			PathDelay:    defaultPathDelay,
		},
		Logging: LoggingConfig{
			Component:     defaultComponent,
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	var err error
	if cfg.Grid.Width, err = parseSize("PATHVIZ_WIDTH", defaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Grid.Height, err = parseSize("PATHVIZ_HEIGHT", defaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.Replay.VisitedDelay, err = parseDelay("PATHVIZ_STEP_DELAY", defaultVisitedDelay); err != nil {
		return Config{}, err
	}
	if cfg.Replay.PathDelay, err = parseDelay("PATHVIZ_PATH_DELAY", defaultPathDelay); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseSize(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n < 1 {
			return 0, fmt.Errorf("%s %d must be at least 1", key, n)
		}
		return n, nil
	}
	return fallback, nil
}

func parseDelay(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%s %v must be positive", key, d)
		}
		return d, nil
	}
	return fallback, nil
}
