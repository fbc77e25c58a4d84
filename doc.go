// Package pathgrid is a pathfinding playground for tile grids: build a
// square or hex map with walls and heavy tiles, run a classic search over
// it, and replay what the search looked at.
//
// What is inside?
//
//	gridgraph/    Graph over a tile table: topology, neighbors, edge cost,
//	              heuristics, reachable regions, wall breaching
//	frontier/     Queue, Stack and a linear-scan PriorityQueue
//	ledger/       coordinate-keyed predecessor and cost tables
//	search/       BFS, DFS, Dijkstra, Greedy Best-First, A*; Run by name
//	layout/       ASCII / YAML grid files and editor moves
//	visualizer/   board states, replay plan, timed Session playback
//	cmd/pathviz   terminal demo wiring all of the above
//
// Every search returns the same Result: the tiles in the order they were
// expanded, the path from start to goal, and its cost. Hooks (OnVisit,
// OnEnqueue) let callers observe a run as it happens.
//
// Quick ASCII example (S start, G goal, # wall):
//
//	S . # .
//	. . # .
//	. . . G
//
//	grid, _ := layout.Parse(text, gridgraph.Square, false).Build()
//	res, _ := search.Run(search.AlgorithmAStar, grid.Graph, grid.Start, grid.Goal)
//
//	go get github.com/katalvlaran/pathgrid
package pathgrid
