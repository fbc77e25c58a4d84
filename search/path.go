package search

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/ledger"
)

// Reconstruct follows predecessor links from goal back to start and returns
// the route in start→goal order, excluding start and including goal.
//
// The result is empty, never nil, when:
//   - goal equals start;
//   - goal has no recorded predecessor (unreachable goal);
//   - the chain hits a Root or a missing link before start, or runs longer
//     than the ledger has entries (a corrupt ledger cannot loop forever).
func Reconstruct(cameFrom *ledger.Ledger[Link], start, goal gridgraph.Coord) []gridgraph.Coord {
	if !cameFrom.Contains(goal) {
		return []gridgraph.Coord{}
	}
	path := make([]gridgraph.Coord, 0)
	for cur := goal; cur != start; {
		if len(path) >= cameFrom.Len() {
			return []gridgraph.Coord{}
		}
		path = append(path, cur)
		link, ok := cameFrom.Get(cur)
		if !ok || link.Root {
			return []gridgraph.Coord{}
		}
		cur = link.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost sums Graph.Cost over the steps start→path[0]→…→path[n-1].
// An empty path costs 0.
func PathCost(g *gridgraph.Graph, start gridgraph.Coord, path []gridgraph.Coord) float64 {
	total := 0.0
	prev := start
	for _, c := range path {
		total += g.Cost(prev, c)
		prev = c
	}
	return total
}
