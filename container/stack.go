package container

// Stack is a bounded last-in-first-out store backed by a fixed array.
type Stack[T any] struct {
	items []T
	top   int // number of stored items, items[top-1] is the top
}

func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		panic("stack capacity cannot be negative")
	}
	return &Stack[T]{items: make([]T, capacity)}
}

func (s *Stack[T]) Push(item T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.items[s.top] = item
	s.top++
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	s.top--
	item := s.items[s.top]
	s.items[s.top] = zero // drop the reference
	return item, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[s.top-1], nil
}

func (s *Stack[T]) Insert(item T) error { return s.Push(item) }
func (s *Stack[T]) Remove() (T, error)  { return s.Pop() }

func (s *Stack[T]) Len() int      { return s.top }
func (s *Stack[T]) Cap() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return s.top == 0 }
func (s *Stack[T]) IsFull() bool  { return s.top == len(s.items) }

func (s *Stack[T]) Clear() {
	var zero T
	for i := 0; i < s.top; i++ {
		s.items[i] = zero
	}
	s.top = 0
}

// Items lists the stack from top to bottom.
func (s *Stack[T]) Items() []T {
	out := make([]T, 0, s.top)
	for i := s.top - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}
