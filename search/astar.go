package search

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/ledger"
)

// AStar orders the frontier by cost-so-far plus the heuristic estimate to
// goal, admitting a neighbor on first discovery or on a strictly cheaper
// route. With an admissible heuristic the Path cost equals Dijkstra's; with
// a consistent one no tile is expanded twice.
//
// Returns ErrHeuristicRequired when no WithHeuristic option is given.
func AStar(g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, goal, true, func(n int) border {
		return ranked{pq: frontier.NewPriorityQueue[gridgraph.Coord](n)}
	}, opts)
	if err != nil {
		return nil, err
	}
	w.costSoFar = ledger.New[float64](g.Width * g.Height)
	w.trackClosed()

	h := w.opts.Heuristic
	estimate := func(c gridgraph.Coord) float64 { return h(c, goal) }
	return w.run(func(w *walker, current gridgraph.Coord, next gridgraph.Node) {
		w.relax(current, next, estimate)
	}), nil
}
