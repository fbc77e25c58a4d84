package search

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// BFS runs breadth-first search from start until goal leaves the queue.
// A neighbor is admitted the first time it is discovered, so on an
// unweighted graph Path has the minimum number of steps.
//
// Returns ErrNilGraph, ErrStartOutOfBounds, ErrGoalOutOfBounds or
// ErrStartBlocked for invalid input. An unreachable goal is not an error:
// Visited holds every reachable tile and Path is empty.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func BFS(g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, goal, false, func(n int) border {
		return fifo{q: frontier.NewQueue[gridgraph.Coord](n)}
	}, opts)
	if err != nil {
		return nil, err
	}

	return w.run(func(w *walker, current gridgraph.Coord, next gridgraph.Node) {
		if w.cameFrom.Contains(next.Coord) {
			return
		}
		w.enqueue(next.Coord, 0)
		w.cameFrom.Set(next.Coord, Link{From: current})
	}), nil
}
