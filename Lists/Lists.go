package Lists

import "fmt"

// NotFound is returned by value lookups that fail.
const NotFound = -1

// List is an ordered sequence addressed by position.
// Positional receivers fail with *IndexOutOfRangeError when the index is outside [0, Size()) for reads and removals,
// or outside [0, Size()] for insertions. Nothing is clamped.
type List[T any] interface {
	//Size of the list.
	Size() int
	//Find the index of the first element equal to v, NotFound if absent.
	Find(v T) int
	//ValueAt index i.
	ValueAt(i int) (T, error)
	InsertHead(v T)
	InsertTail(v T)
	//InsertAt puts v at index i, shifting the element at i and everything after it by one.
	InsertAt(v T, i int) error
	RemoveHead() (T, error)
	RemoveTail() (T, error)
	RemoveAt(i int) (T, error)
	//AppendTo appends every element to dst in order.
	AppendTo(dst []T) []T
	//Clear the list.
	Clear()
	//String gives one "node <i>: <v>" line per element.
	String() string
}

type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}
