package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PATHVIZ_LAYOUT", "PATHVIZ_TOPOLOGY", "PATHVIZ_ALGORITHM", "PATHVIZ_WIDTH",
		"PATHVIZ_HEIGHT", "PATHVIZ_WEIGHTED", "PATHVIZ_ANIMATE", "PATHVIZ_STEP_DELAY",
		"PATHVIZ_PATH_DELAY", "LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GridConfig{Topology: "square", Width: 40, Height: 20}, cfg.Grid)
	assert.Equal(t, "astar", cfg.Search.Algorithm)
	assert.Equal(t, ReplayConfig{Animate: true, VisitedDelay: 100 * time.Millisecond, PathDelay: 40 * time.Millisecond}, cfg.Replay)
	assert.Equal(t, "pathviz", cfg.Logging.Component)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PATHVIZ_LAYOUT", "maze.yaml")
	t.Setenv("PATHVIZ_TOPOLOGY", "hexagon")
	t.Setenv("PATHVIZ_ALGORITHM", "dfs")
	t.Setenv("PATHVIZ_WIDTH", "12")
	t.Setenv("PATHVIZ_HEIGHT", "7")
	t.Setenv("PATHVIZ_WEIGHTED", "true")
	t.Setenv("PATHVIZ_ANIMATE", "false")
	t.Setenv("PATHVIZ_STEP_DELAY", "5ms")
	t.Setenv("PATHVIZ_PATH_DELAY", "2ms")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GridConfig{LayoutPath: "maze.yaml", Topology: "hexagon", Width: 12, Height: 7, Weighted: true}, cfg.Grid)
	assert.Equal(t, "dfs", cfg.Search.Algorithm)
	assert.False(t, cfg.Replay.Animate)
	assert.Equal(t, 5*time.Millisecond, cfg.Replay.VisitedDelay)
	assert.Equal(t, 2*time.Millisecond, cfg.Replay.PathDelay)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PATHVIZ_WIDTH":      "wide",
		"PATHVIZ_HEIGHT":     "0",
		"PATHVIZ_STEP_DELAY": "soon",
		"PATHVIZ_PATH_DELAY": "-1s",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseBoolWithDefault_Garbage(t *testing.T) {
	t.Setenv("PATHVIZ_ANIMATE", "maybe")
	assert.True(t, parseBoolWithDefault("PATHVIZ_ANIMATE", true))
}
