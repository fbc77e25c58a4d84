// Package search defines the result, option and error types shared by the
// five grid searches.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Sentinel errors for search preconditions. Each is returned wrapped with
// the offending coordinate where one exists; test with errors.Is.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrStartOutOfBounds is returned when start lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start outside grid")

	// ErrGoalOutOfBounds is returned when goal lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal outside grid")

	// ErrStartBlocked is returned when start is a wall.
	ErrStartBlocked = errors.New("search: start is a wall")

	// ErrHeuristicRequired is returned when GreedyBestFirst or AStar run
	// without WithHeuristic.
	ErrHeuristicRequired = errors.New("search: heuristic required")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for names or
	// values outside the five supported algorithms.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Result is the outcome of one search run.
//
//   - Visited: tiles in the order they left the frontier, one entry per
//     expansion. Always starts with the start tile.
//   - Path: tiles from start to goal, excluding start and including goal.
//     Empty when goal is unreachable or equals start.
//   - Cost: total Graph.Cost along Path (0 when Path is empty).
//   - Reached: whether goal left the frontier.
type Result struct {
	Visited []gridgraph.Coord
	Path    []gridgraph.Coord
	Cost    float64
	Reached bool
}

// Found reports whether goal was reached. When start equals goal this is
// true while Path stays empty.
func (r *Result) Found() bool {
	return r.Reached
}

// Link is a predecessor ledger entry: the tile From which this tile was
// reached, or Root for the start tile, which has no predecessor.
type Link struct {
	From gridgraph.Coord
	Root bool
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the heuristic and observation hooks of a search.
type Options struct {
	// Heuristic estimates remaining cost to goal. Required by
	// GreedyBestFirst and AStar, ignored by the others.
	Heuristic gridgraph.Heuristic

	// OnVisit is called each time a tile leaves the frontier, right after
	// it is appended to Result.Visited.
	OnVisit func(c gridgraph.Coord)

	// OnEnqueue is called each time a tile enters the frontier, with its
	// priority (0 for BFS and DFS).
	OnEnqueue func(c gridgraph.Coord, priority float64)
}

// DefaultOptions returns Options with no heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		OnVisit:   func(gridgraph.Coord) {},
		OnEnqueue: func(gridgraph.Coord, float64) {},
	}
}

// WithHeuristic sets the remaining-cost estimate used by GreedyBestFirst
// and AStar. Admissibility is the caller's responsibility.
func WithHeuristic(h gridgraph.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit registers a callback run on every expansion.
func WithOnVisit(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every frontier insertion.
func WithOnEnqueue(fn func(c gridgraph.Coord, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Algorithm names one of the five searches.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmDFS
	AlgorithmDijkstra
	AlgorithmGreedy
	AlgorithmAStar
)

var algorithmNames = [...]string{
	AlgorithmBFS:      "bfs",
	AlgorithmDFS:      "dfs",
	AlgorithmDijkstra: "dijkstra",
	AlgorithmGreedy:   "gbfs",
	AlgorithmAStar:    "astar",
}

// String returns the short name: bfs, dfs, dijkstra, gbfs or astar.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Informed reports whether a needs a heuristic.
func (a Algorithm) Informed() bool {
	return a == AlgorithmGreedy || a == AlgorithmAStar
}

// ParseAlgorithm maps a short name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for k, n := range algorithmNames {
		if n == name {
			return Algorithm(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms lists the five searches in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for k := range algorithmNames {
		out[k] = Algorithm(k)
	}
	return out
}
