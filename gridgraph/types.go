// Package gridgraph defines the coordinate, node and topology types
// shared by every search in github.com/katalvlaran/pathgrid.
package gridgraph

import "fmt"

// Coord addresses one tile. Two coordinates are the same tile iff both
// fields match, so Coord is safe to use as a map key.
//
// On Square grids X is the column and Y the row. On Hexagon grids X and Y
// are the axial q and r.
type Coord struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Node is a tile of the graph: its coordinate plus editor state.
type Node struct {
	Coord
	Walkable bool    // false for walls
	Weight   float64 // extra cost to enter this tile, ≥ 0
}

// Heuristic estimates the remaining cost between two coordinates.
// It must return a non-negative number.
type Heuristic func(a, b Coord) float64

// Topology selects how tiles touch each other.
type Topology int

const (
	// Square is the 4-directional grid: E, W, S, N.
	Square Topology = iota
	// Hexagon is the 6-directional axial grid.
	Hexagon
)

// Option configures a Graph at construction time.
type Option func(*Options)

// Options holds construction parameters for a Graph.
type Options struct {
	// Topology picks the neighbor rule. Default Square.
	Topology Topology
	// Weighted makes Cost add the destination tile's Weight to the unit step.
	Weighted bool
}

// DefaultOptions returns Options for an unweighted Square grid.
func DefaultOptions() Options {
	return Options{
		Topology: Square,
		Weighted: false,
	}
}

// WithTopology selects the grid topology.
func WithTopology(t Topology) Option {
	return func(o *Options) {
		o.Topology = t
	}
}

// WithWeights enables weighted tiles: entering a tile costs 1 + its Weight.
func WithWeights() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}

// Graph is a rectangular table of nodes plus the topology that links them.
// Storage is column-major: nodes[i][j] for i in [0,Width), j in [0,Height).
//
// A Graph is read-only while a search runs; the editor methods (SetWall,
// SetWeight, ClearWalls, ClearWeights) must only be called between searches.
type Graph struct {
	Width, Height int
	topology      Topology
	weighted      bool
	nodes         [][]Node
}
