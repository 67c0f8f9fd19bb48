// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fastrand

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"math/bits"
	"time"
)

// The bounded integer methods reduce a raw fixed-width draw into [0,n)
// with the multiply-high technique: the draw and n are treated as
// fixed-point fractions and the high half of their double-width product
// is uniform over [0,n) with bias bounded by 2^-width.  No rejection
// loop is used, so every call performs exactly one draw and is O(1).
// Power-of-two bounds reduce to a mask of the raw draw, which is
// exactly unbiased.
//
// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction

// Uint32N returns a uniform random uint32 in [0,n).
// Panics if n == 0.
func (p *PRNG) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("fastrand: invalid range for Uint32N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return p.Uint32() & (n - 1)
	}
	return uint32(uint64(p.Uint32()) * uint64(n) >> 32)
}

// Uint64N returns a uniform random uint64 in [0,n).
// Panics if n == 0.
func (p *PRNG) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("fastrand: invalid range for Uint64N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return p.Uint64() & (n - 1)
	}
	hi, _ := bits.Mul64(p.Uint64(), n)
	return hi
}

// Uint128N returns a uniform random 128-bit value in [0,n) where both
// the bound and the result are (hi, lo) pairs of 64-bit words.
// Panics if n == 0.
func (p *PRNG) Uint128N(nhi, nlo uint64) (hi, lo uint64) {
	if nhi == 0 && nlo == 0 {
		panic("fastrand: invalid range for Uint128N")
	}
	xhi, xlo := p.Uint128()
	if nlo == 0 && nhi&(nhi-1) == 0 { // 2^k for k >= 64
		return xhi & (nhi - 1), xlo
	}
	if nhi == 0 && nlo&(nlo-1) == 0 { // 2^k for k < 64
		return 0, xlo & (nlo - 1)
	}
	return mulHigh128(xhi, xlo, nhi, nlo)
}

// mulHigh128 returns the high 128 bits of the 256-bit product of the
// 128-bit values (ahi, alo) and (bhi, blo).
func mulHigh128(ahi, alo, bhi, blo uint64) (hi, lo uint64) {
	p0hi, _ := bits.Mul64(alo, blo)    // bits 0..127
	p1hi, p1lo := bits.Mul64(ahi, blo) // bits 64..191
	p2hi, p2lo := bits.Mul64(alo, bhi) // bits 64..191
	p3hi, p3lo := bits.Mul64(ahi, bhi) // bits 128..255

	// Sum the 64..127 column; only its carries reach the result.
	mid, c1 := bits.Add64(p0hi, p1lo, 0)
	_, c2 := bits.Add64(mid, p2lo, 0)

	// Sum the 128..191 column.
	lo, c3 := bits.Add64(p1hi, p2hi, c1)
	lo, c4 := bits.Add64(lo, p3lo, c2)

	hi = p3hi + c3 + c4
	return hi, lo
}

// UintN returns a uniform random uint in [0,n).
// Panics if n == 0.
func (p *PRNG) UintN(n uint) uint {
	if n == 0 {
		panic("fastrand: invalid range for UintN")
	}
	return uint(p.Uint64N(uint64(n)))
}

// IntN returns a uniform random int in [0,n).
// Panics if n <= 0.
func (p *PRNG) IntN(n int) int {
	if n <= 0 {
		panic("fastrand: invalid range for IntN")
	}
	return int(p.Uint64N(uint64(n)))
}

// Int32N returns a uniform random int32 in [0,n).
// Panics if n <= 0.
func (p *PRNG) Int32N(n int32) int32 {
	if n <= 0 {
		panic("fastrand: invalid range for Int32N")
	}
	return int32(p.Uint32N(uint32(n)))
}

// Int64N returns a uniform random int64 in [0,n).
// Panics if n <= 0.
func (p *PRNG) Int64N(n int64) int64 {
	if n <= 0 {
		panic("fastrand: invalid range for Int64N")
	}
	return int64(p.Uint64N(uint64(n)))
}

// Uint8 returns a uniform random uint8.
func (p *PRNG) Uint8() uint8 { return uint8(p.Uint32()) }

// Uint16 returns a uniform random uint16.
func (p *PRNG) Uint16() uint16 { return uint16(p.Uint32()) }

// Uint returns a uniform random uint over its full range.
func (p *PRNG) Uint() uint { return uint(p.Uint64()) }

// Int8 returns a uniform random int8 over its full range, negative
// values included.
func (p *PRNG) Int8() int8 { return int8(p.Uint32()) }

// Int16 returns a uniform random int16 over its full range.
func (p *PRNG) Int16() int16 { return int16(p.Uint32()) }

// Int32 returns a uniform random int32 over its full range.
func (p *PRNG) Int32() int32 { return int32(p.Uint32()) }

// Int64 returns a uniform random int64 over its full range.
func (p *PRNG) Int64() int64 { return int64(p.Uint64()) }

// Int returns a uniform random int over its full range.
func (p *PRNG) Int() int { return int(p.Uint64()) }

// Int128 returns a uniform random 128-bit value reinterpreted as a
// signed (hi, lo) pair: hi carries the sign, lo the low 64 bits.
func (p *PRNG) Int128() (hi int64, lo uint64) {
	uhi, ulo := p.Uint128()
	return int64(uhi), ulo
}

// The Range methods sample the half-open range [low, high): the low
// bound is inclusive and the high bound exclusive.  The range width is
// computed by modular subtraction in the unsigned counterpart of the
// type, so ranges spanning zero work for the signed variants.  Each
// panics if low >= high.

// Uint8Range returns a uniform random uint8 in [low, high).
func (p *PRNG) Uint8Range(low, high uint8) uint8 {
	if low >= high {
		panic("fastrand: empty range for Uint8Range")
	}
	return low + uint8(p.Uint32N(uint32(high-low)))
}

// Uint16Range returns a uniform random uint16 in [low, high).
func (p *PRNG) Uint16Range(low, high uint16) uint16 {
	if low >= high {
		panic("fastrand: empty range for Uint16Range")
	}
	return low + uint16(p.Uint32N(uint32(high-low)))
}

// Uint32Range returns a uniform random uint32 in [low, high).
func (p *PRNG) Uint32Range(low, high uint32) uint32 {
	if low >= high {
		panic("fastrand: empty range for Uint32Range")
	}
	return low + p.Uint32N(high-low)
}

// Uint64Range returns a uniform random uint64 in [low, high).
func (p *PRNG) Uint64Range(low, high uint64) uint64 {
	if low >= high {
		panic("fastrand: empty range for Uint64Range")
	}
	return low + p.Uint64N(high-low)
}

// UintRange returns a uniform random uint in [low, high).
func (p *PRNG) UintRange(low, high uint) uint {
	if low >= high {
		panic("fastrand: empty range for UintRange")
	}
	return low + uint(p.Uint64N(uint64(high-low)))
}

// Int8Range returns a uniform random int8 in [low, high).
func (p *PRNG) Int8Range(low, high int8) int8 {
	if low >= high {
		panic("fastrand: empty range for Int8Range")
	}
	return low + int8(p.Uint32N(uint32(uint8(high)-uint8(low))))
}

// Int16Range returns a uniform random int16 in [low, high).
func (p *PRNG) Int16Range(low, high int16) int16 {
	if low >= high {
		panic("fastrand: empty range for Int16Range")
	}
	return low + int16(p.Uint32N(uint32(uint16(high)-uint16(low))))
}

// Int32Range returns a uniform random int32 in [low, high).
func (p *PRNG) Int32Range(low, high int32) int32 {
	if low >= high {
		panic("fastrand: empty range for Int32Range")
	}
	return low + int32(p.Uint32N(uint32(high)-uint32(low)))
}

// Int64Range returns a uniform random int64 in [low, high).
func (p *PRNG) Int64Range(low, high int64) int64 {
	if low >= high {
		panic("fastrand: empty range for Int64Range")
	}
	return low + int64(p.Uint64N(uint64(high)-uint64(low)))
}

// IntRange returns a uniform random int in [low, high).
func (p *PRNG) IntRange(low, high int) int {
	if low >= high {
		panic("fastrand: empty range for IntRange")
	}
	return low + int(p.Uint64N(uint64(high)-uint64(low)))
}

// Float64 returns a uniform random float64 in [0,1) with 53 bits of
// precision: a 53-bit integer draw divided by 2^53.
func (p *PRNG) Float64() float64 {
	return float64(p.Uint64()>>11) / (1 << 53)
}

// Float32 returns a uniform random float32 in [0,1) with 24 bits of
// precision.
func (p *PRNG) Float32() float32 {
	return float32(p.Uint32()>>8) / (1 << 24)
}

// Float64Range returns a uniform random float64 in [low, high) by
// affine rescale of a [0,1) draw.  Results at the extreme top of the
// range are subject to floating-point rounding.  Panics unless
// low < high.
func (p *PRNG) Float64Range(low, high float64) float64 {
	if !(low < high) {
		panic("fastrand: empty range for Float64Range")
	}
	return low + p.Float64()*(high-low)
}

// Float32Range returns a uniform random float32 in [low, high).
// Panics unless low < high.
func (p *PRNG) Float32Range(low, high float32) float32 {
	if !(low < high) {
		panic("fastrand: empty range for Float32Range")
	}
	return low + p.Float32()*(high-low)
}

// Bool returns a random bool with equal probability of either value.
func (p *PRNG) Bool() bool {
	return p.Uint32()&1 == 1
}

const (
	surrogateMin = 0xd800
	surrogateLen = 0x800
	maxScalar    = 0x10ffff

	// numScalars counts the valid Unicode scalar values: all code
	// points except the surrogate block.
	numScalars = maxScalar + 1 - surrogateLen
)

// Rune returns a uniform random Unicode scalar value: a rune in
// [0, 0x10FFFF] excluding the surrogate range U+D800 through U+DFFF.
func (p *PRNG) Rune() rune {
	v := p.Uint32N(numScalars)
	if v >= surrogateMin {
		v += surrogateLen
	}
	return rune(v)
}

// RuneRange returns a uniform random Unicode scalar value in the
// half-open range [low, high), never producing a surrogate code point.
// Panics if the range is empty, malformed, or contains only surrogates.
func (p *PRNG) RuneRange(low, high rune) rune {
	if low < 0 || high > maxScalar+1 || low >= high {
		panic("fastrand: empty range for RuneRange")
	}

	// Clamp bounds that start or end inside the surrogate block to its
	// edges so the sampled domain contains only scalar values.
	start := uint32(low)
	if start >= surrogateMin && start < surrogateMin+surrogateLen {
		start = surrogateMin + surrogateLen
	}
	end := uint32(high)
	if end > surrogateMin && end <= surrogateMin+surrogateLen {
		end = surrogateMin
	}
	if start >= end {
		panic("fastrand: empty range for RuneRange")
	}

	count := end - start
	if start < surrogateMin && end > surrogateMin {
		count -= surrogateLen
	}

	v := start + p.Uint32N(count)
	if start < surrogateMin && v >= surrogateMin {
		v += surrogateLen
	}
	return rune(v)
}

const (
	alphanumericChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabeticChars   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Alphanumeric returns a random ASCII character from the 62-symbol
// alphabet [0-9a-zA-Z].
func (p *PRNG) Alphanumeric() byte {
	return alphanumericChars[p.Uint32N(uint32(len(alphanumericChars)))]
}

// Alphabetic returns a random ASCII character in the ranges a-z and A-Z.
func (p *PRNG) Alphabetic() byte {
	return alphabeticChars[p.Uint32N(uint32(len(alphabeticChars)))]
}

// Lowercase returns a random ASCII character in the range a-z.
func (p *PRNG) Lowercase() byte {
	return 'a' + byte(p.Uint32N(26))
}

// Uppercase returns a random ASCII character in the range A-Z.
func (p *PRNG) Uppercase() byte {
	return 'A' + byte(p.Uint32N(26))
}

// Digit returns a random digit in the given base as an ASCII character
// in the ranges 0-9 and a-z.  Panics unless 1 <= base <= 36.
func (p *PRNG) Digit(base int) byte {
	if base < 1 || base > 36 {
		panic("fastrand: invalid base for Digit")
	}
	d := byte(p.Uint32N(uint32(base)))
	if d < 10 {
		return '0' + d
	}
	return 'a' + d - 10
}

// Read fills b with random bytes generated eight at a time from the
// output stream.  It never errors, always returning len(b) and nil, and
// makes *PRNG usable anywhere an io.Reader of random bytes is expected.
func (p *PRNG) Read(b []byte) (int, error) {
	n := len(b)
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, p.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], p.Uint64())
		copy(b, tail[:])
	}
	return n, nil
}

// Duration returns a random duration in [0,n).
// Panics if n <= 0.
func (p *PRNG) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("fastrand: invalid range for Duration")
	}
	return time.Duration(p.Uint64N(uint64(n)))
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func (p *PRNG) BigInt(max *big.Int) *big.Int {
	// Will never error with our reader.
	n, _ := rand.Int(p, max)
	return n
}

// Shuffle randomizes the order of n elements by swapping the elements
// at indexes i and j.  It is a single Fisher-Yates pass over the
// sequence: each of the n! orderings is equally likely, in O(n) swaps
// with no auxiliary storage.
// Panics if n < 0.
func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("fastrand: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := int(p.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
