package search

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/ledger"
)

// Dijkstra runs uniform-cost search: the frontier is ordered by the cost
// accumulated from start, and a neighbor is (re)admitted whenever a strictly
// cheaper route to it is found. With non-negative tile weights Result.Cost
// is the minimum over all routes.
//
// Entries left behind by a cheaper re-admission are skipped when popped, so
// each tile appears in Visited at most once.
//
// Complexity: O((W·H)²) time with the linear-scan frontier, O(W·H) memory.
func Dijkstra(g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, goal, false, func(n int) border {
		return ranked{pq: frontier.NewPriorityQueue[gridgraph.Coord](n)}
	}, opts)
	if err != nil {
		return nil, err
	}
	w.costSoFar = ledger.New[float64](g.Width * g.Height)
	w.trackClosed()

	zero := func(gridgraph.Coord) float64 { return 0 }
	return w.run(func(w *walker, current gridgraph.Coord, next gridgraph.Node) {
		w.relax(current, next, zero)
	}), nil
}
