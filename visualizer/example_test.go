package visualizer_test

import (
	"context"
	"os"
	"time"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/visualizer"
)

// ExampleSession_Play replays an A* run and draws the final board.
func ExampleSession_Play() {
	grid, _ := layout.Parse(`
S . . .
# # # .
G . . .
`, gridgraph.Square, false).Build()
	res, _ := search.Run(search.AlgorithmAStar, grid.Graph, grid.Start, grid.Goal)

	board := visualizer.NewBoard(grid)
	var s visualizer.Session
	d := visualizer.Delays{Visited: time.Microsecond, Path: time.Microsecond}
	_ = s.Play(context.Background(), board, visualizer.Plan(res), d, nil)
	_ = board.Render(os.Stdout)
	// Output:
	// S * * *
	// # # # *
	// G * * *
}
