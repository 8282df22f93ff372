package Chain

import "golang.org/x/exp/constraints"

// A node in the Chain. prev and next are slots in the arena, slot 0 being the loopback nil.
// A free node uses next to point at the following free slot.
type node[T any, S constraints.Unsigned] struct {
	v          T
	prev, next S
}

// join links a before b. Both directions are always written together.
func (u *Chain[T, S]) join(a, b S) {
	u.ns[a].next = b
	u.ns[b].prev = a
}

// alloc gets a slot holding v, reusing freed slots first.
func (u *Chain[T, S]) alloc(v T) S {
	if len(u.ns) == 0 {
		u.ns = make([]node[T, S], 1, 4)
	}
	if i := u.free; i != 0 {
		u.free = u.ns[i].next
		u.ns[i] = node[T, S]{v: v}
		return i
	}
	if uint64(len(u.ns)) > uint64(^S(0)) {
		panic("Chain: index type exhausted")
	}
	u.ns = append(u.ns, node[T, S]{v: v})
	return S(len(u.ns) - 1)
}

// release adds slot i to the free list and returns its value.
func (u *Chain[T, S]) release(i S) T {
	v := u.ns[i].v
	u.ns[i] = node[T, S]{next: u.free}
	u.free = i
	return v
}
