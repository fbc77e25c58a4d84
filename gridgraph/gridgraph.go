// Package gridgraph turns a rectangular table of tiles into a graph.
// It supports:
//
//   - Square (4-neighbor) or Hexagon (6-neighbor, axial) topology
//   - Walls (non-walkable tiles) and weighted tiles
//   - Neighbor lookup, edge cost and coordinate equality for searches
//   - Reachable regions and minimal wall breaching
package gridgraph

import (
	"fmt"
	"math"
)

// New constructs a width×height Graph with every tile walkable and weight 0.
// Tile coordinates follow the topology: (i, j) for Square, axial (q, r) for
// Hexagon, where (i, j) is the storage slot.
// Returns ErrEmptyGrid or ErrUnknownTopology for invalid input.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Topology.Valid() {
		return nil, ErrUnknownTopology
	}
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	g := &Graph{
		Width:    width,
		Height:   height,
		topology: o.Topology,
		weighted: o.Weighted,
		nodes:    make([][]Node, width),
	}
	for i := 0; i < width; i++ {
		g.nodes[i] = make([]Node, height)
		for j := 0; j < height; j++ {
			g.nodes[i][j] = Node{Coord: g.CoordAt(i, j), Walkable: true}
		}
	}

	return g, nil
}

// FromNodes builds a Graph from an externally maintained column-major table
// nodes[i][j]. It deep-copies the input so later edits to nodes do not leak
// into the graph.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownTopology,
// ErrCoordMismatch or ErrNegativeWeight.
// Complexity: O(W×H).
func FromNodes(nodes [][]Node, opts ...Option) (*Graph, error) {
	if len(nodes) == 0 || len(nodes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(nodes), len(nodes[0])
	for _, col := range nodes {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			n := nodes[i][j]
			if want := g.CoordAt(i, j); n.Coord != want {
				return nil, fmt.Errorf("%w: slot [%d][%d] holds %v, want %v", ErrCoordMismatch, i, j, n.Coord, want)
			}
			if !validWeight(n.Weight) {
				return nil, fmt.Errorf("%w: %v has weight %g", ErrNegativeWeight, n.Coord, n.Weight)
			}
			g.nodes[i][j] = n
		}
	}

	return g, nil
}

// Topology returns the neighbor rule fixed at construction.
func (g *Graph) Topology() Topology {
	return g.topology
}

// Weighted reports whether Cost adds tile weights.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// CoordAt maps storage slot (i, j) to the tile coordinate. It is the
// inverse of Index and does not check bounds.
func (g *Graph) CoordAt(i, j int) Coord {
	if g.topology == Hexagon {
		q, r := IndexToAxial(i, j)
		return Coord{X: q, Y: r}
	}
	return Coord{X: i, Y: j}
}

// Index maps a tile coordinate to its storage slot (i, j).
// The result may be out of bounds; check with InBounds.
// Complexity: O(1).
func (g *Graph) Index(c Coord) (i, j int) {
	if g.topology == Hexagon {
		return AxialToIndex(c.X, c.Y)
	}
	return c.X, c.Y
}

// InBounds reports whether slot (i, j) lies within the table.
// Both topologies share this rectangular check.
// Complexity: O(1).
func (g *Graph) InBounds(i, j int) bool {
	return i >= 0 && i < g.Width && j >= 0 && j < g.Height
}

// Contains reports whether coordinate c addresses a tile of g.
func (g *Graph) Contains(c Coord) bool {
	return g.InBounds(g.Index(c))
}

// Node returns the tile at c, or false if c is outside the grid.
func (g *Graph) Node(c Coord) (Node, bool) {
	i, j := g.Index(c)
	if !g.InBounds(i, j) {
		return Node{}, false
	}
	return g.nodes[i][j], true
}

// Neighbors returns the walkable, in-bounds neighbors of c in the
// topology's fixed direction order. Out-of-bounds candidates are dropped,
// never reported as errors.
// Complexity: O(d), d = 4 or 6.
func (g *Graph) Neighbors(c Coord) []Node {
	cands := g.topology.Candidates(c)
	out := make([]Node, 0, len(cands))
	for _, nc := range cands {
		i, j := g.Index(nc)
		if !g.InBounds(i, j) {
			continue
		}
		if n := g.nodes[i][j]; n.Walkable {
			out = append(out, n)
		}
	}
	return out
}

// Cost returns the price of stepping from one tile into its neighbor:
// a unit step, plus the destination's Weight when the graph is weighted.
// The cost belongs to the destination, so Cost(a,b) and Cost(b,a) may
// differ. A destination outside the grid costs +Inf.
func (g *Graph) Cost(from, to Coord) float64 {
	n, ok := g.Node(to)
	if !ok {
		return math.Inf(1)
	}
	if g.weighted {
		return 1 + n.Weight
	}
	return 1
}

// AreEqual reports whether a and b address the same tile.
func (g *Graph) AreEqual(a, b Coord) bool {
	return a == b
}

// Coords lists every tile coordinate in storage order (column by column).
func (g *Graph) Coords() []Coord {
	out := make([]Coord, 0, g.Width*g.Height)
	for i := 0; i < g.Width; i++ {
		for j := 0; j < g.Height; j++ {
			out = append(out, g.nodes[i][j].Coord)
		}
	}
	return out
}

// SetWall marks c as a wall (true) or open tile (false).
func (g *Graph) SetWall(c Coord, wall bool) error {
	i, j := g.Index(c)
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.nodes[i][j].Walkable = !wall
	return nil
}

// SetWeight sets the extra entry cost of c.
func (g *Graph) SetWeight(c Coord, w float64) error {
	if !validWeight(w) {
		return fmt.Errorf("%w: %v has weight %g", ErrNegativeWeight, c, w)
	}
	i, j := g.Index(c)
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.nodes[i][j].Weight = w
	return nil
}

// ClearWalls makes every tile walkable again.
func (g *Graph) ClearWalls() {
	for i := range g.nodes {
		for j := range g.nodes[i] {
			g.nodes[i][j].Walkable = true
		}
	}
}

// ClearWeights resets every tile weight to zero.
func (g *Graph) ClearWeights() {
	for i := range g.nodes {
		for j := range g.nodes[i] {
			g.nodes[i][j].Weight = 0
		}
	}
}

// flat maps slot (i, j) to a row-major index: j*Width + i.
func (g *Graph) flat(i, j int) int {
	return j*g.Width + i
}

// slot converts a row-major index back to (i, j).
func (g *Graph) slot(idx int) (i, j int) {
	return idx % g.Width, idx / g.Width
}

// validWeight rejects negative and NaN weights. NaN compares false against
// every cost, which would let a search reopen tiles without end.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w)
}
