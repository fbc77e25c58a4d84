package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
)

// benchGrid builds an n×n square grid with ~20% walls, corners kept open.
func benchGrid(b *testing.B, n int) *gridgraph.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for _, c := range g.Coords() {
		if rng.Intn(5) == 0 {
			_ = g.SetWall(c, true)
		}
	}
	_ = g.SetWall(gridgraph.Coord{}, false)
	_ = g.SetWall(gridgraph.Coord{X: n - 1, Y: n - 1}, false)
	return g
}

// BenchmarkBFS measures BFS corner to corner on a 100×100 grid.
func BenchmarkBFS(b *testing.B) {
	g := benchGrid(b, 100)
	goal := gridgraph.Coord{X: 99, Y: 99}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.BFS(g, gridgraph.Coord{}, goal)
	}
}

// BenchmarkAStar measures A* with the Manhattan heuristic on a 60×60 grid.
// The linear-scan frontier makes this O(n²) in frontier size.
func BenchmarkAStar(b *testing.B) {
	g := benchGrid(b, 60)
	goal := gridgraph.Coord{X: 59, Y: 59}
	h := search.WithHeuristic(gridgraph.Manhattan)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(g, gridgraph.Coord{}, goal, h)
	}
}
