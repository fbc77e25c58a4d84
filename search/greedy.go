package search

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// GreedyBestFirst always expands the tile that looks closest to goal by the
// heuristic alone, ignoring the cost already paid. A neighbor is admitted
// only the first time it is discovered. Fast, but Path is not guaranteed
// to be shortest.
//
// Returns ErrHeuristicRequired when no WithHeuristic option is given.
func GreedyBestFirst(g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, goal, true, func(n int) border {
		return ranked{pq: frontier.NewPriorityQueue[gridgraph.Coord](n)}
	}, opts)
	if err != nil {
		return nil, err
	}
	h := w.opts.Heuristic

	return w.run(func(w *walker, current gridgraph.Coord, next gridgraph.Node) {
		if w.cameFrom.Contains(next.Coord) {
			return
		}
		w.cameFrom.Set(next.Coord, Link{From: current})
		w.enqueue(next.Coord, h(next.Coord, goal))
	}), nil
}
