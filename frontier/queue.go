package frontier

// Queue is a first-in, first-out frontier.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends item at the back.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the oldest item.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether no items remain.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
