package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachWalls finds a route from start to goal when walls may be knocked
// down, minimizing the number of walls removed. Each wall entered costs 1,
// open tiles cost 0. Returns the route (start and goal included) and the
// number of walls on it; 0 means goal is already reachable.
//
// Behavior:
//  1. Validate both endpoints are inside the grid (ErrOutOfBounds).
//  2. 0–1 BFS from start over all in-bounds tiles:
//     • stepping onto an open tile → cost 0, pushed to the front
//     • stepping onto a wall       → cost 1, pushed to the back
//  3. Stop when goal is dequeued.
//  4. Reconstruct the route via predecessor indices.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Graph) BreachWalls(start, goal Coord) (route []Coord, walls int, err error) {
	if !g.Contains(start) {
		return nil, 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return nil, 0, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	N := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for k := range dist {
		dist[k] = inf
		prev[k] = -1
	}

	si, sj := g.Index(start)
	src := g.flat(si, sj)
	gi, gj := g.Index(goal)
	dst := g.flat(gi, gj)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, N)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ui, uj := g.slot(u)
		for _, c := range g.topology.Candidates(g.nodes[ui][uj].Coord) {
			vi, vj := g.Index(c)
			if !g.InBounds(vi, vj) {
				continue
			}
			v := g.flat(vi, vj)
			step := 0
			if !g.nodes[vi][vj].Walkable {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		i, j := g.slot(at)
		route = append(route, g.nodes[i][j].Coord)
	}
	for l, r := 0, len(route)-1; l < r; l, r = l+1, r-1 {
		route[l], route[r] = route[r], route[l]
	}
	return route, dist[dst], nil
}
