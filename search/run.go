package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Run dispatches to the search named by alg. For GreedyBestFirst and AStar
// without a WithHeuristic option, the graph topology's own heuristic is
// used (Manhattan for Square, HexDistance for Hexagon).
func Run(alg Algorithm, g *gridgraph.Graph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	if alg.Informed() && g != nil {
		probe := DefaultOptions()
		for _, opt := range opts {
			opt(&probe)
		}
		if probe.Heuristic == nil {
			opts = append(opts[:len(opts):len(opts)], WithHeuristic(g.Topology().Heuristic()))
		}
	}

	switch alg {
	case AlgorithmBFS:
		return BFS(g, start, goal, opts...)
	case AlgorithmDFS:
		return DFS(g, start, goal, opts...)
	case AlgorithmDijkstra:
		return Dijkstra(g, start, goal, opts...)
	case AlgorithmGreedy:
		return GreedyBestFirst(g, start, goal, opts...)
	case AlgorithmAStar:
		return AStar(g, start, goal, opts...)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
