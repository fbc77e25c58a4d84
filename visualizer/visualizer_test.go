package visualizer_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/visualizer"
)

var fast = visualizer.Delays{Visited: time.Millisecond, Path: time.Millisecond}

func corridor(t *testing.T) *layout.Grid {
	t.Helper()
	grid, err := layout.Parse(`
S # .
. # 2
. . G
`, gridgraph.Square, true).Build()
	require.NoError(t, err)
	return grid
}

func TestBoard_Initial(t *testing.T) {
	b := visualizer.NewBoard(corridor(t))

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))
	assert.Equal(t, "S # .\n. # ~\n. . G\n", buf.String())

	st, ok := b.State(gridgraph.Coord{X: 2, Y: 1})
	require.True(t, ok)
	assert.Equal(t, visualizer.Weighted, st)
	_, ok = b.State(gridgraph.Coord{X: 3, Y: 0})
	assert.False(t, ok)
}

func TestBoard_ApplyKeepsEndpointsAndWalls(t *testing.T) {
	grid := corridor(t)
	b := visualizer.NewBoard(grid)

	assert.False(t, b.Apply(visualizer.Step{Coord: grid.Start, State: visualizer.Visited}))
	assert.False(t, b.Apply(visualizer.Step{Coord: grid.Goal, State: visualizer.Path}))
	assert.False(t, b.Apply(visualizer.Step{Coord: gridgraph.Coord{X: 1, Y: 0}, State: visualizer.Visited}))
	assert.False(t, b.Apply(visualizer.Step{Coord: gridgraph.Coord{X: 7, Y: 7}, State: visualizer.Visited}))

	c := gridgraph.Coord{X: 0, Y: 1}
	assert.True(t, b.Apply(visualizer.Step{Coord: c, State: visualizer.Visited}))
	assert.False(t, b.Apply(visualizer.Step{Coord: c, State: visualizer.Visited}))
	assert.True(t, b.Apply(visualizer.Step{Coord: c, State: visualizer.Path}))

	b.Reset()
	st, _ := b.State(c)
	assert.Equal(t, visualizer.Unvisited, st)
}

func TestBoard_ResetFollowsEdits(t *testing.T) {
	grid := corridor(t)
	b := visualizer.NewBoard(grid)

	require.NoError(t, grid.ToggleWall(gridgraph.Coord{X: 0, Y: 2}))
	require.NoError(t, grid.MoveGoal(gridgraph.Coord{X: 2, Y: 0}))
	b.Reset()

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))
	assert.Equal(t, "S # G\n. # ~\n# . .\n", buf.String())
}

func TestBoard_RenderHex(t *testing.T) {
	grid, err := layout.Blank(3, 2, gridgraph.WithTopology(gridgraph.Hexagon))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, visualizer.NewBoard(grid).Render(&buf))
	assert.Equal(t, ". . .\n S . G\n", buf.String())
}

func TestPlan(t *testing.T) {
	assert.Nil(t, visualizer.Plan(nil))

	res := &search.Result{
		Visited: []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Path:    []gridgraph.Coord{{X: 1, Y: 0}},
	}
	steps := visualizer.Plan(res)
	require.Len(t, steps, 3)
	assert.Equal(t, visualizer.Visited, steps[0].State)
	assert.Equal(t, visualizer.Visited, steps[1].State)
	assert.Equal(t, visualizer.Step{Coord: gridgraph.Coord{X: 1, Y: 0}, State: visualizer.Path}, steps[2])

	unreachable := &search.Result{Visited: []gridgraph.Coord{{X: 0, Y: 0}}, Path: []gridgraph.Coord{}}
	assert.Len(t, visualizer.Plan(unreachable), 1)
}

func TestSession_PlayReplaysSearch(t *testing.T) {
	grid := corridor(t)
	res, err := search.BFS(grid.Graph, grid.Start, grid.Goal)
	require.NoError(t, err)

	b := visualizer.NewBoard(grid)
	steps := visualizer.Plan(res)
	var frames int
	var s visualizer.Session
	require.NoError(t, s.Play(context.Background(), b, steps, fast, func(visualizer.Step) { frames++ }))
	assert.Equal(t, len(steps), frames)
	assert.False(t, s.Running())

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))
	assert.Equal(t, "S # .\n* # ~\n* * G\n", buf.String())
}

func TestSession_BeginTwice(t *testing.T) {
	var s visualizer.Session
	require.NoError(t, s.Begin())
	assert.True(t, s.Running())
	assert.ErrorIs(t, s.Begin(), visualizer.ErrAlreadyRunning)
	s.End()
	assert.False(t, s.Running())
	assert.NoError(t, s.Begin())
	s.End()
	s.End()
}

func TestSession_PlayWhileBusy(t *testing.T) {
	grid := corridor(t)
	b := visualizer.NewBoard(grid)
	steps := []visualizer.Step{
		{Coord: gridgraph.Coord{X: 0, Y: 1}, State: visualizer.Visited},
		{Coord: gridgraph.Coord{X: 0, Y: 2}, State: visualizer.Visited},
	}

	var s visualizer.Session
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Play(ctx, b, steps, visualizer.Delays{Visited: time.Hour, Path: time.Hour}, nil)
	}()

	require.Eventually(t, s.Running, time.Second, time.Millisecond)
	assert.ErrorIs(t, s.Play(context.Background(), b, steps, fast, nil), visualizer.ErrAlreadyRunning)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, s.Running())
}

func TestSession_PlayErrors(t *testing.T) {
	b := visualizer.NewBoard(corridor(t))
	var s visualizer.Session

	err := s.Play(context.Background(), b, nil, visualizer.Delays{Visited: 0, Path: time.Millisecond}, nil)
	assert.ErrorIs(t, err, visualizer.ErrBadDelay)
	err = s.Play(context.Background(), b, nil, visualizer.Delays{Visited: time.Millisecond, Path: -1}, nil)
	assert.ErrorIs(t, err, visualizer.ErrBadDelay)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Play(ctx, b, nil, fast, nil), context.Canceled)

	assert.NoError(t, s.Play(context.Background(), b, nil, fast, nil))
	assert.Equal(t, 100*time.Millisecond, visualizer.DefaultDelays().Visited)
	assert.Equal(t, 40*time.Millisecond, visualizer.DefaultDelays().Path)
}

func TestTileState_Glyph(t *testing.T) {
	assert.Equal(t, '*', visualizer.Path.Glyph())
	assert.Equal(t, '?', visualizer.TileState(42).Glyph())
}
