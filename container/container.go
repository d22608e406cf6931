package container

import "errors"

var (
	ErrFull  = errors.New("container is full")
	ErrEmpty = errors.New("container is empty")
)

// Sequential is the vocabulary shared by the bounded stack and queue. Insert
// and Remove map to Push/Pop on a Stack and Append/Serve on a Queue.
type Sequential[T any] interface {
	Insert(item T) error
	Remove() (T, error)
	Peek() (T, error)
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
	Clear()
	// Items returns the stored items in the order Remove would yield them
	Items() []T
}
