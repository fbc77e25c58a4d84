// Package gridgraph treats a rectangular table of tiles as a graph for
// grid pathfinding.
//
// What:
//
//   - Graph wraps a column-major [width][height] table of Nodes.
//   - Each Node is walkable or a wall and carries a non-negative Weight.
//   - Topology is a tagged variant, Square or Hexagon, backed by a function
//     table of direction offsets and a matching heuristic.
//   - Neighbors, Cost and AreEqual are the three queries every search needs.
//
// Coordinates:
//
//   - Square: Coord{X: column, Y: row}, identical to the storage slot.
//   - Hexagon: Coord{X: q, Y: r} in axial form; the slot is
//     i = q + floor(r/2), j = r (see AxialToIndex).
//
// Cost convention:
//
//	Cost(from, to) = 1                 (unweighted graph)
//	Cost(from, to) = 1 + Weight(to)    (WithWeights)
//
//	The cost belongs to the destination tile, so edges are not symmetric
//	once weights differ. Dijkstra and A* stay optimal under this rule
//	because every step cost is still ≥ 1.
//
// Complexity:
//
//   - Neighbors, Cost, Node, Contains: O(1) (d ≤ 6).
//   - Reachable, Regions, BreachWalls: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrNonRectangular: columns of differing lengths in FromNodes.
//   - ErrUnknownTopology: topology outside {Square, Hexagon}.
//   - ErrCoordMismatch: a node's coordinate does not match its slot.
//   - ErrNegativeWeight: negative tile weight.
//   - ErrOutOfBounds: edit or breach outside the grid.
package gridgraph
