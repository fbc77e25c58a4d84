package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// DFS runs depth-first search from start with an explicit stack.
// A neighbor is pushed whenever it has not been expanded yet, and its
// predecessor is overwritten by the latest push. A tile pushed several
// times before its first expansion is expanded again on each later pop,
// so Visited may repeat tiles; every entry is one popped frontier element.
//
// The resulting Path is a valid walk but usually not a shortest one.
//
// Complexity: O(W·H·d) time, O(W·H·d) memory for the stack.
func DFS(g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, goal, false, func(n int) border {
		return lifo{s: frontier.NewStack[gridgraph.Coord](n)}
	}, opts)
	if err != nil {
		return nil, err
	}

	expanded := mapset.New[gridgraph.Coord]()
	onVisit := w.opts.OnVisit
	w.opts.OnVisit = func(c gridgraph.Coord) {
		expanded.Put(c)
		onVisit(c)
	}

	return w.run(func(w *walker, current gridgraph.Coord, next gridgraph.Node) {
		if expanded.Has(next.Coord) {
			return
		}
		w.enqueue(next.Coord, 0)
		w.cameFrom.Set(next.Coord, Link{From: current})
	}), nil
}
