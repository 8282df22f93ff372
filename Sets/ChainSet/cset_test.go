package ChainSet

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	Chain_Table "github.com/g-m-twostay/chain-table"
	"github.com/g-m-twostay/chain-table/Lists"
	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
)

var _R = rand.New(rand.NewSource(0))

func hashInt(x int) uint32 {
	return Chain_Table.Hasher(0).HashInt(x)
}

func TestChainSet_All(t *testing.T) {
	S := New[int](hashInt)
	for i := 0; i < 100; i++ {
		if !S.Insert(i) {
			t.Error("wrong insert 1")
		}
		if S.Insert(i) {
			t.Error("wrong insert 2")
		}
	}
	if S.Size() != 100 {
		t.Errorf("size is %d, want 100", S.Size())
	}
	for i := 0; i < 100; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 50; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 50; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 50 || S.Corrupt() {
		t.Errorf("size is %d, corrupt: %t", S.Size(), S.Corrupt())
	}
}

func TestChainSet_Empty(t *testing.T) {
	S := NewString()
	if S.Find("x") != Lists.NotFound || S.Remove("x") || S.TableSize() != 0 {
		t.Error("empty set misbehaves")
	}
	if S.String() != "\n" {
		t.Errorf("empty dump is %q", S.String())
	}
	S.Insert("x")
	S.Clear()
	if S.Size() != 0 || S.TableSize() != 0 || S.Has("x") || S.String() != "\n" {
		t.Error("cleared set isn't empty")
	}
	S.Clear()
	if !S.Insert("x") || !S.Has("x") {
		t.Error("set unusable after Clear")
	}
}

func TestChainSet_Growth(t *testing.T) {
	S := New[int](hashInt)
	want := []int{1, 3, 3, 7, 7, 7, 7, 15, 15}
	var got []int
	for i := range want {
		S.Insert(i)
		got = append(got, S.TableSize())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table sizes on insert (-want +got):\n%s", diff)
	}
	want = []int{15, 7, 7, 7, 7, 3, 3, 1, 0}
	got = got[:0]
	for i := range want {
		S.Remove(i)
		got = append(got, S.TableSize())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table sizes on remove (-want +got):\n%s", diff)
	}
}

func TestChainSet_Script(t *testing.T) {
	S := NewString()
	S.Insert("cat")
	S.Insert("dog")
	if !S.Has("cat") {
		t.Error("cat not found")
	}
	S.Remove("cat")
	if S.Has("cat") {
		t.Error("cat still found")
	}
	if want := "\nhash 0: dog\n"; S.String() != want {
		t.Errorf("dump is %q, want %q", S.String(), want)
	}
}

func TestChainSet_Wrap(t *testing.T) {
	S := New[int](func(int) uint32 { return 0 })
	for i := range 9 {
		S.Insert(i)
	}
	var sb strings.Builder
	sb.WriteString("\nhash 0: 0 1 2 3 4 5 6 7\nhash 0: 8")
	for i := 1; i < S.TableSize(); i++ {
		fmt.Fprintf(&sb, "\nhash %d:", i)
	}
	sb.WriteString("\n")
	if diff := cmp.Diff(sb.String(), S.String()); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
	var w strings.Builder
	if n, err := S.WriteTo(&w); err != nil || int(n) != w.Len() || w.String() != S.String() {
		t.Errorf("WriteTo wrote %d bytes, %v", n, err)
	}
	if i := S.Find(8); i != 8 {
		t.Errorf("Find(8) = %d, want 8", i)
	}
}

type point struct{ x, y int8 }

func (p point) Hash() uint32 {
	return Chain_Table.Hasher(0).HashBytes([]byte{byte(p.x), byte(p.y)})
}

func TestChainSet_Hashable(t *testing.T) {
	S := NewHashable[point]()
	for x := int8(-4); x < 4; x++ {
		for y := int8(-4); y < 4; y++ {
			S.Insert(point{x, y})
		}
	}
	if S.Size() != 64 || !S.Has(point{-4, 3}) || S.Has(point{4, 4}) || S.Corrupt() {
		t.Error("wrong hashable set")
	}
	T := NewHashable[Chain_Table.Text]()
	T.Insert("abc")
	if T.String() != "\nhash 0: abc\n" {
		t.Errorf("dump is %q", T.String())
	}
}

const (
	tOpsN     = 40000
	tValRange = 300
)

// TestChainSet_Model runs random operations against a btree holding the same elements.
func TestChainSet_Model(t *testing.T) {
	S := NewString()
	M := btree.NewOrderedG[string](8)
	for n := range tOpsN {
		v := fmt.Sprint(_R.Intn(tValRange))
		switch op := _R.Intn(100); {
		case op < 50:
			_, had := M.ReplaceOrInsert(v)
			if S.Insert(v) == had {
				t.Fatalf("op %d: Insert(%s) disagrees with model", n, v)
			}
			if S.Size() > S.TableSize() {
				t.Fatalf("op %d: size %d exceeds table size %d", n, S.Size(), S.TableSize())
			}
		case op < 95:
			_, had := M.Delete(v)
			if S.Remove(v) != had {
				t.Fatalf("op %d: Remove(%s) disagrees with model", n, v)
			}
			if S.TableSize() != 0 && S.Size() <= S.TableSize()/2 {
				t.Fatalf("op %d: size %d too small for table size %d", n, S.Size(), S.TableSize())
			}
		case op < 99:
			if S.Has(v) != M.Has(v) {
				t.Fatalf("op %d: Has(%s) disagrees with model", n, v)
			}
		default:
			S.Clear()
			M.Clear(false)
		}
		if S.Size() != M.Len() {
			t.Fatalf("op %d: size is %d, want %d", n, S.Size(), M.Len())
		}
	}
	for i := range tValRange {
		if v := fmt.Sprint(i); S.Has(v) != M.Has(v) {
			t.Errorf("Has(%s) = %t, model has %t", v, S.Has(v), M.Has(v))
		}
	}
	if S.Corrupt() {
		t.Error("set is corrupt")
	}
}

func TestChainSet_RoundTrip(t *testing.T) {
	S := NewString()
	for i := range 40 {
		S.Insert(fmt.Sprint(i))
	}
	for i := range 40 {
		v := fmt.Sprint("x", i)
		before := S.Size()
		S.Insert(v)
		S.Remove(v)
		if S.Size() != before || S.Has(v) {
			t.Fatalf("insert then remove of %s changed the set", v)
		}
	}
}

func TestChainSet_WrapLong(t *testing.T) {
	S := New[int](func(int) uint32 { return 0 })
	for i := range 20 {
		S.Insert(i)
	}
	want := "\nhash 0: 0 1 2 3 4 5 6 7\nhash 0: 8 9 10 11 12 13 14 15\nhash 0: 16 17 18 19\nhash 1:"
	if got := S.String(); !strings.HasPrefix(got, want) {
		t.Errorf("dump is %q, want it to start with %q", got, want)
	}
	if S.Corrupt() {
		t.Error("set is corrupt")
	}
}

func TestChainSet_SignedBytes(t *testing.T) {
	S := NewString()
	S.Insert("a")
	S.Insert("é")
	S.Insert("b")
	// 97, 4294965318 and 98 mod 3 put a in 1, é in 0 and b in 2.
	if want := "\nhash 0: é\nhash 1: a\nhash 2: b\n"; S.String() != want {
		t.Errorf("dump is %q, want %q", S.String(), want)
	}
}
