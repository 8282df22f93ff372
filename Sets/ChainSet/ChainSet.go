package ChainSet

import (
	"fmt"
	"io"
	"strings"

	Chain_Table "github.com/g-m-twostay/chain-table"
	"github.com/g-m-twostay/chain-table/Lists"
	"github.com/g-m-twostay/chain-table/Lists/Chain"
	"github.com/g-m-twostay/chain-table/Sets"
)

// MaxPerLine is the number of elements printed per "hash <i>:" line.
const MaxPerLine = 8

// ChainSet is a hash set resolving collisions by chaining. Bucket i holds, in a Chain, every element whose hash
// mod TableSize() is i. The bucket count grows to 2n+1 when Size() would exceed it and shrinks to (n-1)/2 when
// Size() falls to n/2 or below, so starting from empty it walks through 0, 1, 3, 7, 15, ...
// The zero value isn't usable, create it with New. Not safe for concurrent use.
type ChainSet[E comparable] struct {
	bkts   []Chain.Chain[E, uint32]
	hasher func(E) uint32
	sz     int
}

// New ChainSet of type E hashing with hasher. Equal elements must hash equally.
func New[E comparable](hasher func(E) uint32) *ChainSet[E] {
	return &ChainSet[E]{hasher: hasher}
}

// NewHashable ChainSet of elements that hash themselves.
func NewHashable[E Chain_Table.Hashable]() *ChainSet[E] {
	return New[E](func(e E) uint32 { return e.Hash() })
}

// NewString ChainSet hashing the bytes of each string with the zero Hasher.
func NewString() *ChainSet[string] {
	return New[string](Chain_Table.Hasher(0).HashString)
}

func (u *ChainSet[E]) mod(e E) int {
	return int(u.hasher(e) % uint32(len(u.bkts)))
}

// rehash moves every element into a new array of n buckets. Elements leave each old bucket from the head and
// join the new ones at the tail, so elements sharing a new bucket keep their relative order.
func (u *ChainSet[E]) rehash(n int) {
	old := u.bkts
	u.bkts = make([]Chain.Chain[E, uint32], n)
	if n == 0 { // only reached once the set is empty.
		return
	}
	for i := range old {
		for old[i].Size() > 0 {
			e, err := old[i].RemoveHead()
			if err != nil {
				panic(err)
			}
			u.bkts[u.mod(e)].InsertTail(e)
		}
	}
}

// Size of the set.
func (u *ChainSet[E]) Size() int {
	return u.sz
}

// TableSize is the number of buckets.
func (u *ChainSet[E]) TableSize() int {
	return len(u.bkts)
}

// Find e in its bucket. Returns the index of e inside that bucket, or Lists.NotFound.
func (u *ChainSet[E]) Find(e E) int {
	if len(u.bkts) == 0 {
		return Lists.NotFound
	}
	return u.bkts[u.mod(e)].Find(e)
}

// Has e in the set.
func (u *ChainSet[E]) Has(e E) bool {
	return u.Find(e) != Lists.NotFound
}

// Insert e at the tail of its bucket, growing first if needed. Inserting a present element does nothing.
func (u *ChainSet[E]) Insert(e E) bool {
	if u.Has(e) {
		return false
	}
	u.sz++
	if u.sz > len(u.bkts) {
		u.rehash(len(u.bkts)<<1 | 1)
	}
	u.bkts[u.mod(e)].InsertTail(e)
	return true
}

// Remove e, shrinking afterwards if needed. Removing an absent element does nothing.
func (u *ChainSet[E]) Remove(e E) bool {
	if len(u.bkts) == 0 {
		return false
	}
	b := &u.bkts[u.mod(e)]
	i := b.Find(e)
	if i == Lists.NotFound {
		return false
	}
	if _, err := b.RemoveAt(i); err != nil {
		panic(err)
	}
	u.sz--
	if u.sz <= len(u.bkts)>>1 {
		u.rehash((len(u.bkts) - 1) >> 1)
	}
	return true
}

// Clear drops every element and bucket.
func (u *ChainSet[E]) Clear() {
	u.bkts, u.sz = nil, 0
}

// String dumps the buckets in order. Each bucket starts a new line with "hash <i>:" followed by up to MaxPerLine
// elements, and repeats the label for every further MaxPerLine elements. An empty bucket still gets its label.
// Every line is preceded by a newline and the dump ends with one.
func (u *ChainSet[E]) String() string {
	var sb strings.Builder
	var vs []E
	for i := range u.bkts {
		vs = u.bkts[i].AppendTo(vs[:0])
		for j := 0; ; {
			fmt.Fprintf(&sb, "\nhash %d:", i)
			for k := 0; k < MaxPerLine && j < len(vs); k++ {
				fmt.Fprintf(&sb, " %v", vs[j])
				j++
			}
			if j >= len(vs) {
				break
			}
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// WriteTo writes String() to w.
func (u *ChainSet[E]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, u.String())
	return int64(n), err
}

// Corrupt reports whether some element sits in the wrong bucket, a bucket is corrupt, or Size disagrees with the buckets.
func (u *ChainSet[E]) Corrupt() bool {
	n := 0
	for i := range u.bkts {
		b := &u.bkts[i]
		if b.Corrupt() {
			return true
		}
		for _, e := range b.AppendTo(nil) {
			if u.mod(e) != i {
				return true
			}
		}
		n += b.Size()
	}
	return n != u.sz
}

var _ Sets.Set[int] = (*ChainSet[int])(nil)
