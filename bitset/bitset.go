package bitset

import "math/bits"

const wordBits = 64

// Dense is a fixed-length bitset over [0, n). The zero value is unusable;
// construct with New. All binary operations require equal lengths and
// panic otherwise (programmer error, never user input).
type Dense struct {
	n     int
	words []uint64
}

// New returns an all-zero bitset of length n.
func New(n int) *Dense {
	if n < 0 {
		panic("bitset: negative length")
	}
	return &Dense{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the fixed length n.
func (d *Dense) Len() int { return d.n }

func (d *Dense) check(i int) {
	if i < 0 || i >= d.n {
		panic("bitset: index out of range")
	}
}

func (d *Dense) checkSame(o *Dense) {
	if d.n != o.n {
		panic("bitset: length mismatch")
	}
}

// Set sets bit i.
func (d *Dense) Set(i int) {
	d.check(i)
	d.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Clear clears bit i.
func (d *Dense) Clear(i int) {
	d.check(i)
	d.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// Test reports whether bit i is set.
func (d *Dense) Test(i int) bool {
	d.check(i)
	return d.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Count returns the number of set bits.
func (d *Dense) Count() int {
	total := 0
	for _, w := range d.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Any reports whether at least one bit is set.
func (d *Dense) Any() bool {
	for _, w := range d.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (d *Dense) None() bool { return !d.Any() }

// FirstSet returns the lowest set bit, or false if the set is empty.
func (d *Dense) FirstSet() (int, bool) {
	for wi, w := range d.words {
		if w != 0 {
			return wi*wordBits + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// NextSet returns the lowest set bit strictly greater than i,
// or false if there is none.
func (d *Dense) NextSet(i int) (int, bool) {
	i++
	if i >= d.n {
		return 0, false
	}
	wi := i / wordBits
	w := d.words[wi] >> (uint(i) % wordBits)
	if w != 0 {
		return i + bits.TrailingZeros64(w), true
	}
	for wi++; wi < len(d.words); wi++ {
		if d.words[wi] != 0 {
			return wi*wordBits + bits.TrailingZeros64(d.words[wi]), true
		}
	}
	return 0, false
}

// Single returns the only member if exactly one bit is set.
func (d *Dense) Single() (int, bool) {
	first, ok := d.FirstSet()
	if !ok {
		return 0, false
	}
	if _, more := d.NextSet(first); more {
		return 0, false
	}
	return first, true
}

// IntersectWith replaces d with d ∩ o.
func (d *Dense) IntersectWith(o *Dense) {
	d.checkSame(o)
	for i := range d.words {
		d.words[i] &= o.words[i]
	}
}

// DiffWith replaces d with d \ o.
func (d *Dense) DiffWith(o *Dense) {
	d.checkSame(o)
	for i := range d.words {
		d.words[i] &^= o.words[i]
	}
}

// UnionWith replaces d with d ∪ o.
func (d *Dense) UnionWith(o *Dense) {
	d.checkSame(o)
	for i := range d.words {
		d.words[i] |= o.words[i]
	}
}

// IsSubsetOf reports whether every member of d is in o.
func (d *Dense) IsSubsetOf(o *Dense) bool {
	d.checkSame(o)
	for i := range d.words {
		if d.words[i]&^o.words[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports element-wise equality.
func (d *Dense) Equal(o *Dense) bool {
	if d.n != o.n {
		return false
	}
	for i := range d.words {
		if d.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// CopyFrom overwrites d with the contents of o.
func (d *Dense) CopyFrom(o *Dense) {
	d.checkSame(o)
	copy(d.words, o.words)
}

// Clone returns a fresh copy of d.
func (d *Dense) Clone() *Dense {
	c := New(d.n)
	copy(c.words, d.words)
	return c
}

// ClearAll zeroes every bit, keeping the backing storage.
func (d *Dense) ClearAll() {
	for i := range d.words {
		d.words[i] = 0
	}
}

// Swap exchanges contents with o in O(1), without copying words.
func (d *Dense) Swap(o *Dense) {
	d.checkSame(o)
	d.words, o.words = o.words, d.words
}

// Members appends all set bits, ascending, to dst and returns it.
func (d *Dense) Members(dst []int) []int {
	for i, ok := d.FirstSet(); ok; i, ok = d.NextSet(i) {
		dst = append(dst, i)
	}
	return dst
}

// BitLength returns the number of bits needed to represent x;
// BitLength(0) == 0, and for x > 0, x >> (BitLength(x)-1) == 1.
func BitLength(x uint64) int { return bits.Len64(x) }

// RightmostZeroBits returns the number of trailing zero bits of x;
// RightmostZeroBits(0) == 64.
func RightmostZeroBits(x uint64) int { return bits.TrailingZeros64(x) }
