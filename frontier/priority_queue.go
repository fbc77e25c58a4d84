package frontier

// element pairs an item with its priority; smaller is served first.
type element[T any] struct {
	item     T
	priority float64
}

// PriorityQueue is an unordered collection served by minimum priority.
// Ties go to the earliest inserted element.
// The zero value is an empty queue ready to use.
type PriorityQueue[T any] struct {
	elements []element[T]
}

// NewPriorityQueue returns an empty PriorityQueue with room for capacity items.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{elements: make([]element[T], 0, capacity)}
}

// Enqueue adds item with the given priority. Duplicates are allowed;
// a later, cheaper entry for the same item does not replace the old one.
func (pq *PriorityQueue[T]) Enqueue(item T, priority float64) {
	pq.elements = append(pq.elements, element[T]{item: item, priority: priority})
}

// Dequeue scans every element, removes the first one holding the minimal
// priority and returns its item. ok is false when the queue is empty.
// Complexity: O(n).
func (pq *PriorityQueue[T]) Dequeue() (item T, ok bool) {
	if len(pq.elements) == 0 {
		return item, false
	}
	best := 0
	for k := 1; k < len(pq.elements); k++ {
		// strict < keeps the earliest element on ties
		if pq.elements[k].priority < pq.elements[best].priority {
			best = k
		}
	}
	item = pq.elements[best].item
	// order-preserving removal keeps insertion order meaningful for ties
	copy(pq.elements[best:], pq.elements[best+1:])
	pq.elements[len(pq.elements)-1] = element[T]{}
	pq.elements = pq.elements[:len(pq.elements)-1]
	return item, true
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.elements) }

// IsEmpty reports whether no elements remain.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.elements) == 0 }
