package visualizer_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/visualizer"
)

func BenchmarkBoard_ApplyRender(b *testing.B) {
	grid, err := layout.Blank(80, 40)
	if err != nil {
		b.Fatal(err)
	}
	res, err := search.BFS(grid.Graph, grid.Start, grid.Goal)
	if err != nil {
		b.Fatal(err)
	}
	steps := visualizer.Plan(res)
	board := visualizer.NewBoard(grid)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Reset()
		for _, s := range steps {
			board.Apply(s)
		}
		_ = board.Render(io.Discard)
	}
}
