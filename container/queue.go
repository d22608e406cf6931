package container

// Queue is a bounded first-in-first-out circular buffer.
type Queue[T any] struct {
	items  []T
	front  int
	rear   int // next free slot
	length int
}

func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		panic("queue capacity cannot be negative")
	}
	return &Queue[T]{items: make([]T, capacity)}
}

func (q *Queue[T]) Append(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.items[q.rear] = item
	q.rear = (q.rear + 1) % len(q.items)
	q.length++
	return nil
}

func (q *Queue[T]) Serve() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	item := q.items[q.front]
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.length--
	return item, nil
}

func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.front], nil
}

func (q *Queue[T]) Insert(item T) error { return q.Append(item) }
func (q *Queue[T]) Remove() (T, error)  { return q.Serve() }

func (q *Queue[T]) Len() int      { return q.length }
func (q *Queue[T]) Cap() int      { return len(q.items) }
func (q *Queue[T]) IsEmpty() bool { return q.length == 0 }
func (q *Queue[T]) IsFull() bool  { return q.length == len(q.items) }

func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.front, q.rear, q.length = 0, 0, 0
}

// Items lists the queue from front to rear.
func (q *Queue[T]) Items() []T {
	out := make([]T, 0, q.length)
	for i := 0; i < q.length; i++ {
		out = append(out, q.items[(q.front+i)%len(q.items)])
	}
	return out
}
