package gridgraph

// Reachable returns every walkable tile connected to from, in BFS order,
// starting with from itself. A wall or out-of-bounds from yields nil.
//
// Time:   O(W·H·d), where d = 4 or 6.
// Memory: O(W·H) for seen flags and output.
func (g *Graph) Reachable(from Coord) []Coord {
	n, ok := g.Node(from)
	if !ok || !n.Walkable {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	return g.flood(from, seen)
}

// Regions finds all connected regions of walkable tiles.
// Regions are ordered by their first tile in storage order; tiles within a
// region are in BFS order.
//
// Time:   O(W·H·d). Memory: O(W·H).
func (g *Graph) Regions() [][]Coord {
	seen := make([]bool, g.Width*g.Height)
	var regions [][]Coord
	for i := 0; i < g.Width; i++ {
		for j := 0; j < g.Height; j++ {
			n := g.nodes[i][j]
			if !n.Walkable || seen[g.flat(i, j)] {
				continue
			}
			regions = append(regions, g.flood(n.Coord, seen))
		}
	}
	return regions
}

// flood collects the region around a walkable start, marking seen as it goes.
func (g *Graph) flood(start Coord, seen []bool) []Coord {
	si, sj := g.Index(start)
	seen[g.flat(si, sj)] = true
	queue := []Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.Neighbors(queue[qi]) {
			ni, nj := g.Index(nb.Coord)
			if k := g.flat(ni, nj); !seen[k] {
				seen[k] = true
				queue = append(queue, nb.Coord)
			}
		}
	}
	return queue
}
