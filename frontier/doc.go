// Package frontier provides the three frontier disciplines used by the
// grid searches: a FIFO Queue (breadth-first), a LIFO Stack (depth-first)
// and a min-PriorityQueue (Dijkstra, greedy best-first, A*).
//
// All three report emptiness through a second boolean result instead of a
// nil sentinel, so the zero value of T is never confused with "empty".
//
// PriorityQueue deliberately selects by full linear scan: among elements of
// equal minimal priority the earliest inserted wins. Search traces depend on
// that tie-break, which a binary heap does not preserve.
//
// Complexity:
//
//   - Queue:  Enqueue O(1) amortized, Dequeue O(1) amortized.
//   - Stack:  Push O(1) amortized, Pop O(1).
//   - PriorityQueue: Enqueue O(1) amortized, Dequeue O(n).
//
// None of the types are safe for concurrent use; each search owns its own.
package frontier
