// Package stack implements a stack with a fixed capacity.
package stack

// Stack is a last-in, first-out stack holding at most a fixed number of
// elements. Its storage is allocated once, when the stack is created.
type Stack[T any] struct {
	buf []T
}

// New creates a stack that holds up to max elements. Panics if max is
// negative.
func New[T any](max int) *Stack[T] {
	if max < 0 {
		panic("stack: negative capacity")
	}
	return &Stack[T]{buf: make([]T, 0, max)}
}

// Push adds v to the top of the stack. If the stack is full, v is dropped and
// the result is false.
func (s *Stack[T]) Push(v T) bool {
	if len(s.buf) == cap(s.buf) {
		return false
	}
	s.buf = append(s.buf, v)
	return true
}

// Pop removes and returns the top of the stack. The second result is false if
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.buf) == 0 {
		return zero, false
	}
	v := s.buf[len(s.buf)-1]
	// Clear the slot so the stack doesn't keep v alive.
	s.buf[len(s.buf)-1] = zero
	s.buf = s.buf[:len(s.buf)-1]
	return v, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.buf) == 0 {
		var zero T
		return zero, false
	}
	return s.buf[len(s.buf)-1], true
}

func (s *Stack[T]) Len() int      { return len(s.buf) }
func (s *Stack[T]) Cap() int      { return cap(s.buf) }
func (s *Stack[T]) IsEmpty() bool { return len(s.buf) == 0 }

// Items returns the elements of the stack, bottom first. The result aliases
// the stack's storage until the next Push or Pop.
func (s *Stack[T]) Items() []T {
	return s.buf[:len(s.buf):len(s.buf)]
}
