// Package search runs frontier-driven pathfinding over a gridgraph.Graph:
// breadth-first, depth-first, Dijkstra, greedy best-first and A*.
//
// What
//
//   - All five share one state machine and differ only in frontier
//     discipline, what drives priority and whether cost is accumulated:
//
//     Algorithm  Frontier       Admits neighbor when            Priority
//     BFS        Queue          no predecessor recorded         -
//     DFS        Stack          not expanded yet                -
//     Dijkstra   PriorityQueue  no cost yet or cheaper route    cost
//     Greedy     PriorityQueue  no predecessor recorded         h(next, goal)
//     AStar      PriorityQueue  no cost yet or cheaper route    cost + h(next, goal)
//
//   - Each run returns a Result: Visited (expansion order, for replay),
//     Path (start excluded, goal included), Cost and Reached.
//
//   - Hooks WithOnVisit and WithOnEnqueue observe the run as it happens.
//
// Determinism
//
//	Neighbors come in the topology's fixed direction order and the priority
//	frontier breaks ties by insertion order, so identical inputs always
//	produce identical Visited and Path sequences.
//
// Unreachable goal
//
//	Not an error. The frontier empties, Visited holds every reachable tile,
//	Path is empty and Reached is false. Path reconstruction checks for the
//	missing predecessor instead of walking an absent chain.
//
// Concurrency
//
//	Each call owns its frontier and ledgers and runs to completion; searches
//	on different graphs may run in parallel. The graph must not be edited
//	while a search over it is running.
//
// Errors
//
//   - ErrNilGraph            if the graph pointer is nil.
//   - ErrStartOutOfBounds    if start is outside the grid.
//   - ErrGoalOutOfBounds     if goal is outside the grid.
//   - ErrStartBlocked        if start is a wall.
//   - ErrHeuristicRequired   if GreedyBestFirst or AStar has no heuristic.
//   - ErrUnknownAlgorithm    from ParseAlgorithm and Run.
//
// Usage
//
//	res, err := search.AStar(g, start, goal,
//	    search.WithHeuristic(gridgraph.Manhattan),
//	    search.WithOnVisit(func(c gridgraph.Coord) { /* ... */ }),
//	)
package search
