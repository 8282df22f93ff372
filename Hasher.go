package Chain_Table

import "strconv"

// Distribute is the multiplier of the polynomial rolling hash.
const Distribute uint32 = 31

// Hasher is the starting value of the rolling hash. The zero Hasher gives the canonical hash used by the tables,
// for which Hasher(0).HashString("abc") == 96354. All arithmetic wraps at 2^32.
// Each byte is taken as a signed char, so bytes from 0x80 up add their sign extended value: "é" hashes to 4294965318.
type Hasher uint32

// HashBytes hashes the given byte slice as h = h*31 + int8(b) for each byte.
func (u Hasher) HashBytes(b []byte) uint32 {
	h := uint32(u)
	for _, c := range b {
		h = h*Distribute + unit(c)
	}
	return h
}

// HashString directly hashes a string, it's the same as HashBytes([]byte(v)) without the copy.
func (u Hasher) HashString(v string) uint32 {
	h := uint32(u)
	for i := 0; i < len(v); i++ {
		h = h*Distribute + unit(v[i])
	}
	return h
}

// unit sign extends c.
func unit(c byte) uint32 {
	return uint32(int32(int8(c)))
}

// HashInt hashes the decimal text of v.
func (u Hasher) HashInt(v int) uint32 {
	var buf [20]byte
	return u.HashBytes(strconv.AppendInt(buf[:0], int64(v), 10))
}

// Hashable elements know their own hash. Equal elements must have equal hashes.
type Hashable interface {
	comparable
	Hash() uint32
}

// Text is a string element hashed with the zero Hasher.
type Text string

func (t Text) Hash() uint32 {
	return Hasher(0).HashString(string(t))
}

func (t Text) String() string {
	return string(t)
}
