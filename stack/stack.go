package stack

// Stack is a logical stack over reusable storage. The zero value is an
// empty, ready-to-use stack. Misuse (Top of an empty stack, Pop below
// zero) panics; these are programmer errors, never data-driven.
type Stack[T any] struct {
	items []T
	size  int
}

// Len returns the number of live elements.
func (s *Stack[T]) Len() int { return s.size }

// Empty reports whether the stack holds no live elements.
func (s *Stack[T]) Empty() bool { return s.size == 0 }

// Push grows the stack by one and returns a pointer to the new top.
// The element retains whatever a previous occupant left; the caller
// must overwrite every field it relies on.
func (s *Stack[T]) Push() *T {
	if s.size == len(s.items) {
		var zero T
		s.items = append(s.items, zero)
	}
	s.size++
	return &s.items[s.size-1]
}

// Pop removes the top element. Its storage is retained for reuse.
func (s *Stack[T]) Pop() {
	if s.size == 0 {
		panic("stack: pop of empty stack")
	}
	s.size--
}

// Top returns a pointer to the top element.
func (s *Stack[T]) Top() *T {
	if s.size == 0 {
		panic("stack: top of empty stack")
	}
	return &s.items[s.size-1]
}

// OneBelowTop returns a pointer to the element directly below the top.
func (s *Stack[T]) OneBelowTop() *T {
	if s.size < 2 {
		panic("stack: one-below-top needs at least two elements")
	}
	return &s.items[s.size-2]
}

// At returns a pointer to the i-th element from the bottom (0-based).
func (s *Stack[T]) At(i int) *T {
	if i < 0 || i >= s.size {
		panic("stack: index out of range")
	}
	return &s.items[i]
}

// Clear empties the stack, retaining all storage.
func (s *Stack[T]) Clear() { s.size = 0 }
