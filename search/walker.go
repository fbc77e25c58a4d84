package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/ledger"
)

// border is the frontier discipline a walker draws from.
type border interface {
	push(c gridgraph.Coord, priority float64)
	pop() (gridgraph.Coord, bool)
}

type fifo struct {
	q *frontier.Queue[gridgraph.Coord]
}

func (f fifo) push(c gridgraph.Coord, _ float64) { f.q.Enqueue(c) }
func (f fifo) pop() (gridgraph.Coord, bool)      { return f.q.Dequeue() }

type lifo struct {
	s *frontier.Stack[gridgraph.Coord]
}

func (l lifo) push(c gridgraph.Coord, _ float64) { l.s.Push(c) }
func (l lifo) pop() (gridgraph.Coord, bool)      { return l.s.Pop() }

type ranked struct {
	pq *frontier.PriorityQueue[gridgraph.Coord]
}

func (r ranked) push(c gridgraph.Coord, p float64) { r.pq.Enqueue(c, p) }
func (r ranked) pop() (gridgraph.Coord, bool)      { return r.pq.Dequeue() }

// admitFunc decides, for one neighbor of current, whether it enters the
// frontier, updating the ledgers when it does.
type admitFunc func(w *walker, current gridgraph.Coord, next gridgraph.Node)

// walker holds the mutable state of a single search run. Nothing in it
// outlives the call.
type walker struct {
	graph       *gridgraph.Graph
	start, goal gridgraph.Coord
	opts        Options
	border      border
	cameFrom    *ledger.Ledger[Link]
	costSoFar   *ledger.Ledger[float64]
	// closed, when non-nil, drops stale frontier entries of tiles already
	// expanded at their current cost.
	closed *mapset.Set[gridgraph.Coord]
	res    *Result
}

// prepare validates the inputs and builds a walker around b.
func prepare(g *gridgraph.Graph, start, goal gridgraph.Coord, informed bool, b func(n int) border, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if informed && o.Heuristic == nil {
		return nil, ErrHeuristicRequired
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if n, _ := g.Node(start); !n.Walkable {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	n := g.Width * g.Height
	return &walker{
		graph:    g,
		start:    start,
		goal:     goal,
		opts:     o,
		border:   b(n),
		cameFrom: ledger.New[Link](n),
		res: &Result{
			Visited: make([]gridgraph.Coord, 0, n),
		},
	}, nil
}

// trackClosed enables stale-entry skipping for priority frontiers.
func (w *walker) trackClosed() {
	closed := mapset.New[gridgraph.Coord]()
	w.closed = &closed
}

// enqueue inserts c into the frontier and fires OnEnqueue.
func (w *walker) enqueue(c gridgraph.Coord, priority float64) {
	w.border.push(c, priority)
	w.opts.OnEnqueue(c, priority)
}

// run drives the shared state machine:
//  1. seed the frontier with start, predecessor Root, cost 0 if tracked;
//  2. pop, record in Visited, stop on goal;
//  3. otherwise offer every walkable neighbor to admit;
//  4. rebuild the path from the predecessor ledger.
func (w *walker) run(admit admitFunc) *Result {
	w.cameFrom.Set(w.start, Link{Root: true})
	if w.costSoFar != nil {
		w.costSoFar.Set(w.start, 0)
	}
	w.enqueue(w.start, 0)

	for {
		current, ok := w.border.pop()
		if !ok {
			break
		}
		if w.closed != nil {
			if w.closed.Has(current) {
				continue
			}
			w.closed.Put(current)
		}
		w.res.Visited = append(w.res.Visited, current)
		w.opts.OnVisit(current)

		if w.graph.AreEqual(current, w.goal) {
			w.res.Reached = true
			break
		}
		for _, next := range w.graph.Neighbors(current) {
			admit(w, current, next)
		}
	}

	w.res.Path = Reconstruct(w.cameFrom, w.start, w.goal)
	w.res.Cost = PathCost(w.graph, w.start, w.res.Path)
	return w.res
}

// relax is the cost-tracking admission shared by Dijkstra and A*: admit next
// when it has no recorded cost or the route through current is cheaper.
// A cheaper route reopens a tile that was already expanded.
func (w *walker) relax(current gridgraph.Coord, next gridgraph.Node, estimate func(gridgraph.Coord) float64) {
	base, _ := w.costSoFar.Get(current)
	newCost := base + w.graph.Cost(current, next.Coord)
	if old, seen := w.costSoFar.Get(next.Coord); seen && newCost >= old {
		return
	}
	w.costSoFar.Set(next.Coord, newCost)
	w.cameFrom.Set(next.Coord, Link{From: current})
	w.closed.Remove(next.Coord)
	w.enqueue(next.Coord, newCost+estimate(next.Coord))
}
