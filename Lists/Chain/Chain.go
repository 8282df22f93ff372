package Chain

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/chain-table/Lists"
	"golang.org/x/exp/constraints"
)

// Chain is a doubly linked list whose nodes live in a slice and link to each other by index.
// Slot 0 of the slice is a sentinel: its next is the head and its prev is the tail, so an empty Chain
// has both pointing back at 0. Removing and clearing never recurse, and freed slots are reused.
// S bounds the number of slots; a Chain[T, uint8] holds at most 255 elements and panics beyond that.
// The zero value is an empty Chain ready to use. Not safe for concurrent use.
type Chain[T comparable, S constraints.Unsigned] struct {
	ns   []node[T, S]
	free S
	sz   int
}

// New Chain with room for hint elements before the arena grows.
func New[T comparable, S constraints.Unsigned](hint int) *Chain[T, S] {
	return &Chain[T, S]{ns: make([]node[T, S], 1, hint+1)}
}

func (u *Chain[T, S]) head() S {
	if len(u.ns) == 0 {
		return 0
	}
	return u.ns[0].next
}

func (u *Chain[T, S]) tail() S {
	if len(u.ns) == 0 {
		return 0
	}
	return u.ns[0].prev
}

func (u *Chain[T, S]) Size() int {
	return u.sz
}

// locate the slot at index i, walking from whichever end is closer.
func (u *Chain[T, S]) locate(i int) (S, error) {
	if i < 0 || i >= u.sz {
		return 0, &Lists.IndexOutOfRangeError{Index: i, Size: u.sz}
	}
	var cur S
	if i <= u.sz/2 {
		cur = u.head()
		for j := 0; j < i; j++ {
			cur = u.ns[cur].next
		}
	} else {
		cur = u.tail()
		for j := u.sz - 1; j > i; j-- {
			cur = u.ns[cur].prev
		}
	}
	return cur, nil
}

// Find returns the index of the first element equal to v, or Lists.NotFound.
func (u *Chain[T, S]) Find(v T) int {
	i := 0
	for cur := u.head(); cur != 0; cur = u.ns[cur].next {
		if u.ns[cur].v == v {
			return i
		}
		i++
	}
	return Lists.NotFound
}

func (u *Chain[T, S]) ValueAt(i int) (v T, err error) {
	var cur S
	if cur, err = u.locate(i); err == nil {
		v = u.ns[cur].v
	}
	return
}

// insertBetween puts v between the adjacent slots a and b.
func (u *Chain[T, S]) insertBetween(v T, a, b S) {
	n := u.alloc(v)
	u.join(a, n)
	u.join(n, b)
	u.sz++
}

func (u *Chain[T, S]) InsertHead(v T) {
	u.insertBetween(v, 0, u.head())
}

func (u *Chain[T, S]) InsertTail(v T) {
	u.insertBetween(v, u.tail(), 0)
}

// InsertAt index i. i == Size() appends.
func (u *Chain[T, S]) InsertAt(v T, i int) error {
	if i == 0 {
		u.InsertHead(v)
	} else if i == u.sz {
		u.InsertTail(v)
	} else {
		cur, err := u.locate(i)
		if err != nil {
			return err
		}
		u.insertBetween(v, u.ns[cur].prev, cur)
	}
	return nil
}

// unlink splices slot i out and frees it.
func (u *Chain[T, S]) unlink(i S) T {
	u.join(u.ns[i].prev, u.ns[i].next)
	u.sz--
	return u.release(i)
}

func (u *Chain[T, S]) RemoveHead() (v T, err error) {
	if u.sz == 0 {
		return v, &Lists.IndexOutOfRangeError{Index: 0, Size: 0}
	}
	return u.unlink(u.head()), nil
}

func (u *Chain[T, S]) RemoveTail() (v T, err error) {
	if u.sz == 0 {
		return v, &Lists.IndexOutOfRangeError{Index: -1, Size: 0}
	}
	return u.unlink(u.tail()), nil
}

func (u *Chain[T, S]) RemoveAt(i int) (v T, err error) {
	switch i {
	case 0:
		return u.RemoveHead()
	case u.sz - 1:
		return u.RemoveTail()
	}
	var cur S
	if cur, err = u.locate(i); err == nil {
		v = u.unlink(cur)
	}
	return
}

// AppendTo appends the elements to dst in order, walking the chain once.
func (u *Chain[T, S]) AppendTo(dst []T) []T {
	for cur := u.head(); cur != 0; cur = u.ns[cur].next {
		dst = append(dst, u.ns[cur].v)
	}
	return dst
}

// Clear drops every element. The arena keeps its capacity.
func (u *Chain[T, S]) Clear() {
	if len(u.ns) > 0 {
		clear(u.ns)
		u.ns = u.ns[:1]
	}
	u.free, u.sz = 0, 0
}

func (u *Chain[T, S]) String() string {
	var sb strings.Builder
	i := 0
	for cur := u.head(); cur != 0; cur = u.ns[cur].next {
		fmt.Fprintf(&sb, "node %d: %v\n", i, u.ns[cur].v)
		i++
	}
	return sb.String()
}

// Corrupt reports whether the links disagree with each other or with Size.
// Walking forward from the head and backward from the tail must each visit exactly Size nodes,
// and every next must be mirrored by a prev.
func (u *Chain[T, S]) Corrupt() bool {
	if len(u.ns) == 0 {
		return u.sz != 0
	}
	if (u.sz == 0) != (u.head() == 0) || (u.sz == 0) != (u.tail() == 0) {
		return true
	}
	if u.sz == 1 && u.head() != u.tail() {
		return true
	}
	n := 0
	for cur := S(0); ; {
		nx := u.ns[cur].next
		if int(nx) >= len(u.ns) || u.ns[nx].prev != cur {
			return true
		}
		if cur = nx; cur == 0 {
			break
		}
		if n++; n > u.sz {
			return true
		}
	}
	if n != u.sz {
		return true
	}
	n = 0
	for cur := u.tail(); cur != 0; cur = u.ns[cur].prev {
		if n++; n > u.sz {
			return true
		}
	}
	return n != u.sz
}

var _ Lists.List[int] = (*Chain[int, uint32])(nil)
