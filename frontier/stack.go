package frontier

// Stack is a last-in, first-out frontier.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push puts item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}
	item = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether no items remain.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
