package structs

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// BitArray is a packed vector of bits. Bit 0 is the leftmost bit of String and
// the most significant bit of Int, so the integer operators treat a BitArray
// the way the string "1011" reads in base 2.
// Bits past n in the last word are always zero.
type BitArray struct {
	bits []uint
	n    int
}

// New returns a BitArray of size zero bits.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, wordsFor(size)), n: size}
}

// FromBools packs bs.
func FromBools(bs ...bool) BitArray {
	u := New(len(bs))
	for i, b := range bs {
		if b {
			u.Up(i)
		}
	}
	return u
}

// Parse reads a string of '0' and '1'.
func Parse(s string) (BitArray, error) {
	u := New(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			u.Up(i)
		case '0':
		default:
			return BitArray{}, fmt.Errorf("invalid bit %q at %d", s[i], i)
		}
	}
	return u, nil
}

func wordsFor(n int) int {
	return (n + bits.UintSize - 1) / bits.UintSize
}

func (u BitArray) Len() int {
	return u.n
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

func (u BitArray) Set(i int, b bool) {
	if b {
		u.Up(i)
	} else {
		u.Down(i)
	}
}

// Append b at the end, growing the array.
func (u *BitArray) Append(b bool) {
	if u.n == len(u.bits)*bits.UintSize {
		u.bits = append(u.bits, 0)
	}
	u.n++
	u.Set(u.n-1, b)
}

func (u *BitArray) Extend(bs ...bool) {
	for _, b := range bs {
		u.Append(b)
	}
}

// Insert b at index i, shifting the bits at and after i to the right.
// Time: O(n)
func (u *BitArray) Insert(i int, b bool) {
	u.Append(false)
	for j := u.n - 1; j > i; j-- {
		u.Set(j, u.Get(j-1))
	}
	u.Set(i, b)
}

// Not returns a new BitArray with every bit flipped.
func (u BitArray) Not() BitArray {
	r := New(u.n)
	for i, w := range u.bits {
		r.bits[i] = ^w
	}
	r.trim()
	return r
}

// trim zeroes the bits past n.
func (u BitArray) trim() {
	if rem := u.n % bits.UintSize; rem != 0 {
		u.bits[len(u.bits)-1] &= 1<<rem - 1
	}
}

// combine applies op to the integer values of u and o. The shorter operand is
// left padded with zeros, the result is as wide as the wider one.
func (u BitArray) combine(o BitArray, op func(a, b uint) uint) BitArray {
	if u.n == o.n {
		r := New(u.n)
		for i := range r.bits {
			r.bits[i] = op(u.bits[i], o.bits[i])
		}
		r.trim()
		return r
	}
	n := max(u.n, o.n)
	r := New(n)
	du, do := n-u.n, n-o.n
	for i := range n {
		var a, b uint
		if i >= du && u.Get(i-du) {
			a = 1
		}
		if i >= do && o.Get(i-do) {
			b = 1
		}
		if op(a, b)&1 == 1 {
			r.Up(i)
		}
	}
	return r
}

func (u BitArray) Or(o BitArray) BitArray {
	return u.combine(o, func(a, b uint) uint { return a | b })
}

func (u BitArray) And(o BitArray) BitArray {
	return u.combine(o, func(a, b uint) uint { return a & b })
}

func (u BitArray) Xor(o BitArray) BitArray {
	return u.combine(o, func(a, b uint) uint { return a ^ b })
}

// RotateLeft returns a copy rotated k bits to the left: the bit at index k
// moves to index 0. A negative k rotates to the right.
func (u BitArray) RotateLeft(k int) BitArray {
	r := New(u.n)
	if u.n == 0 {
		return r
	}
	k %= u.n
	if k < 0 {
		k += u.n
	}
	for i := range u.n {
		if u.Get((i + k) % u.n) {
			r.Up(i)
		}
	}
	return r
}

// RotateRight is RotateLeft(-k).
func (u BitArray) RotateRight(k int) BitArray {
	return u.RotateLeft(-k)
}

// Int returns the unsigned integer the bits spell.
func (u BitArray) Int() *big.Int {
	r := new(big.Int)
	for i := range u.n {
		r.Lsh(r, 1)
		if u.Get(i) {
			r.SetBit(r, 0, 1)
		}
	}
	return r
}

// OverflowError is returned when a BitArray doesn't fit the requested integer.
type OverflowError struct {
	Len int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bit array of value wider than 64 bits (%d bits)", e.Len)
}

// Uint64 returns the integer value, or an *OverflowError if it needs more than
// 64 bits. Leading zeros don't count.
func (u BitArray) Uint64() (uint64, error) {
	v := u.Int()
	if v.BitLen() > 64 {
		return 0, &OverflowError{Len: v.BitLen()}
	}
	return v.Uint64(), nil
}

// Bool is true if any bit is set.
func (u BitArray) Bool() bool {
	for _, w := range u.bits {
		if w != 0 {
			return true
		}
	}
	return false
}

// Count the set bits.
func (u BitArray) Count() int {
	c := 0
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return c
}

// Equal compares integer values, so leading zeros are ignored.
func (u BitArray) Equal(o BitArray) bool {
	return u.Int().Cmp(o.Int()) == 0
}

func (u BitArray) String() string {
	var sb strings.Builder
	sb.Grow(u.n)
	for i := range u.n {
		if u.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
