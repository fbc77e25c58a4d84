package gridgraph

import "math"

// topologySpec is the per-tag function table: the fixed direction list and
// the heuristic matching the topology's metric.
type topologySpec struct {
	name       string
	directions []Coord
	heuristic  Heuristic
}

var topologies = [...]topologySpec{
	Square: {
		name:       "square",
		directions: []Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		heuristic:  Manhattan,
	},
	Hexagon: {
		name:       "hexagon",
		directions: []Coord{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}},
		heuristic:  HexDistance,
	},
}

// Valid reports whether t is a known topology.
func (t Topology) Valid() bool {
	return t >= 0 && int(t) < len(topologies)
}

// String returns "square" or "hexagon".
func (t Topology) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return topologies[t].name
}

// ParseTopology maps "square" / "hexagon" (also "hex") to a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "square", "":
		return Square, nil
	case "hexagon", "hex":
		return Hexagon, nil
	}
	return 0, ErrUnknownTopology
}

// Directions returns the topology's direction offsets in their fixed order,
// or nil for an unknown topology. The returned slice must not be modified.
func (t Topology) Directions() []Coord {
	if !t.Valid() {
		return nil
	}
	return topologies[t].directions
}

// Heuristic returns the distance heuristic suited to t:
// Manhattan for Square, HexDistance for Hexagon.
// Unknown topologies have no heuristic and return nil.
func (t Topology) Heuristic() Heuristic {
	if !t.Valid() {
		return nil
	}
	return topologies[t].heuristic
}

// Candidates lists the neighbor coordinates of c before any bounds or
// walkability filtering. Pure function of c and t.
func (t Topology) Candidates(c Coord) []Coord {
	dirs := t.Directions()
	out := make([]Coord, len(dirs))
	for k, d := range dirs {
		out[k] = Coord{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return out
}

// AxialToIndex converts axial (q, r) to the dense array index (i, j):
// i = q + floor(r/2), j = r.
func AxialToIndex(q, r int) (i, j int) {
	return q + floorHalf(r), r
}

// IndexToAxial is the inverse of AxialToIndex: q = i - floor(j/2), r = j.
func IndexToAxial(i, j int) (q, r int) {
	return i - floorHalf(j), j
}

// floorHalf is floor(v/2), also for negative v (arithmetic shift).
func floorHalf(v int) int {
	return v >> 1
}

// Manhattan is |ax-bx| + |ay-by|, admissible and consistent on unit-cost
// square grids.
func Manhattan(a, b Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// HexDistance is the axial hex distance
// (|aq-bq| + |aq+ar-bq-br| + |ar-br|) / 2.
func HexDistance(a, b Coord) float64 {
	dq := math.Abs(float64(a.X - b.X))
	ds := math.Abs(float64(a.X + a.Y - b.X - b.Y))
	dr := math.Abs(float64(a.Y - b.Y))
	return (dq + ds + dr) / 2
}
