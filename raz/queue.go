package raz

// Queue is a FIFO built on a Vector. Pop shifts the remaining elements left,
// so it costs O(n). The zero value is an empty queue ready to use.
type Queue[T any] struct {
	data Vector[T]
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{data: *NewVector[T]()}
}

// Push appends x at the back.
func (q *Queue[T]) Push(x T) { q.data.Push(x) }

// Pop removes the front element, or returns ErrEmptyContainer.
func (q *Queue[T]) Pop() error {
	if q.data.Empty() {
		return ErrEmptyContainer
	}
	s := q.data.Slice()
	copy(s, s[1:])
	return q.data.Pop()
}

// Front returns the oldest element, or ErrEmptyContainer.
func (q *Queue[T]) Front() (T, error) { return q.data.Front() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.data.Len() }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.data.Empty() }

// Stack is a LIFO built on a Vector. The zero value is an empty stack.
type Stack[T any] struct {
	data Vector[T]
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{data: *NewVector[T]()}
}

// Push puts x on top.
func (s *Stack[T]) Push(x T) { s.data.Push(x) }

// Pop removes the top element, or returns ErrEmptyContainer.
func (s *Stack[T]) Pop() error { return s.data.Pop() }

// Top returns the newest element, or ErrEmptyContainer.
func (s *Stack[T]) Top() (T, error) { return s.data.Back() }

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.data.Len() }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.data.Empty() }
