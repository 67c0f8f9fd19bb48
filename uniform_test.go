// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fastrand

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"
	"time"
	"unicode/utf8"
)

// assertPanics asserts fn panics when called.
func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestBoundedGolden ensures the multiply-high reduction produces the
// exact values implied by the fixed generator constants.
func TestBoundedGolden(t *testing.T) {
	if got := NewSeeded(7).Uint32N(1000); got != 414 {
		t.Fatalf("Uint32N(1000): got %d, want 414", got)
	}
	if got := NewSeeded(7).Uint64N(1000); got != 414 {
		t.Fatalf("Uint64N(1000): got %d, want 414", got)
	}
	if hi, lo := NewSeeded(7).Uint128N(0, 1000); hi != 0 || lo != 414 {
		t.Fatalf("Uint128N(0, 1000): got (%d, %d), want (0, 414)", hi, lo)
	}
}

// TestPowerOfTwoMask ensures sampling a power-of-two-sized range is
// exactly the raw output masked with range-1, the documented fast path.
func TestPowerOfTwoMask(t *testing.T) {
	pow2 := []uint64{1, 2, 8, 64, 1 << 16, 1 << 31, 1 << 32, 1 << 63}
	seeds := []uint64{0, 7, 42, 0xfeedface}

	for _, seed := range seeds {
		for _, n := range pow2 {
			if n <= math.MaxUint32 {
				n32 := uint32(n)
				got := NewSeeded(seed).Uint32N(n32)
				want := NewSeeded(seed).Uint32() & (n32 - 1)
				if got != want {
					t.Fatalf("seed %d: Uint32N(%d) = %d, want masked %d",
						seed, n32, got, want)
				}
			}

			got := NewSeeded(seed).Uint64N(n)
			want := NewSeeded(seed).Uint64() & (n - 1)
			if got != want {
				t.Fatalf("seed %d: Uint64N(%d) = %d, want masked %d",
					seed, n, got, want)
			}
		}

		// 128-bit power of two in the high word.
		gotHi, gotLo := NewSeeded(seed).Uint128N(1<<10, 0)
		wantHi, wantLo := NewSeeded(seed).Uint128()
		wantHi &= 1<<10 - 1
		if gotHi != wantHi || gotLo != wantLo {
			t.Fatalf("seed %d: Uint128N(2^74) = (%#x, %#x), want (%#x, %#x)",
				seed, gotHi, gotLo, wantHi, wantLo)
		}
	}
}

// TestBoundedContainment ensures bounded draws never escape their
// half-open range across a variety of range shapes, including ranges
// spanning zero and ranges at the extremes of each type.
func TestBoundedContainment(t *testing.T) {
	const draws = 10000
	rng := NewSeeded(99)

	t.Run("Int64Range", func(t *testing.T) {
		ranges := [][2]int64{
			{0, 1}, {-1, 1}, {-1000, 1000}, {math.MinInt64, 0},
			{0, math.MaxInt64}, {math.MinInt64, math.MaxInt64},
			{-3, -2}, {1 << 40, 1<<40 + 17},
		}
		for _, r := range ranges {
			for i := 0; i < draws; i++ {
				v := rng.Int64Range(r[0], r[1])
				if v < r[0] || v >= r[1] {
					t.Fatalf("Int64Range(%d, %d) = %d out of range",
						r[0], r[1], v)
				}
			}
		}
	})

	t.Run("Uint64Range", func(t *testing.T) {
		ranges := [][2]uint64{
			{0, 1}, {0, 1000}, {500, 501}, {1 << 63, math.MaxUint64},
			{0, math.MaxUint64},
		}
		for _, r := range ranges {
			for i := 0; i < draws; i++ {
				v := rng.Uint64Range(r[0], r[1])
				if v < r[0] || v >= r[1] {
					t.Fatalf("Uint64Range(%d, %d) = %d out of range",
						r[0], r[1], v)
				}
			}
		}
	})

	t.Run("Int8Range", func(t *testing.T) {
		ranges := [][2]int8{
			{-128, 127}, {-128, -120}, {120, 127}, {-1, 2},
		}
		for _, r := range ranges {
			for i := 0; i < draws; i++ {
				v := rng.Int8Range(r[0], r[1])
				if v < r[0] || v >= r[1] {
					t.Fatalf("Int8Range(%d, %d) = %d out of range",
						r[0], r[1], v)
				}
			}
		}
	})

	t.Run("Uint16Range", func(t *testing.T) {
		for i := 0; i < draws; i++ {
			v := rng.Uint16Range(1000, 2000)
			if v < 1000 || v >= 2000 {
				t.Fatalf("Uint16Range(1000, 2000) = %d out of range", v)
			}
		}
	})

	t.Run("N", func(t *testing.T) {
		for i := 0; i < draws; i++ {
			if v := rng.Uint32N(3); v >= 3 {
				t.Fatalf("Uint32N(3) = %d out of range", v)
			}
			if v := rng.IntN(11); v < 0 || v >= 11 {
				t.Fatalf("IntN(11) = %d out of range", v)
			}
			if v := rng.Int64N(1 << 40); v < 0 || v >= 1<<40 {
				t.Fatalf("Int64N(2^40) = %d out of range", v)
			}
			if hi, lo := rng.Uint128N(3, 5); hi > 3 || (hi == 3 && lo >= 5) {
				t.Fatalf("Uint128N(3, 5) = (%d, %d) out of range", hi, lo)
			}
		}
	})
}

// TestChiSquareUniform draws 100000 bounded values with a fixed seed
// and checks the chi-square statistic of the bucket counts against the
// uniform distribution.  The thresholds sit above the 0.999 quantile of
// the respective chi-square distributions, so an implementation drift
// that skews the reduction fails loudly while the fixed seed keeps the
// test deterministic.
func TestChiSquareUniform(t *testing.T) {
	const draws = 100000

	tests := []struct {
		name    string
		buckets uint32
		max     float64 // reject above this statistic
		sample  func(*PRNG) uint32
	}{
		{
			name:    "Uint32N multiply-high",
			buckets: 100,
			max:     149, // df=99
			sample:  func(p *PRNG) uint32 { return p.Uint32N(100) },
		},
		{
			name:    "Uint32N mask",
			buckets: 64,
			max:     104, // df=63
			sample:  func(p *PRNG) uint32 { return p.Uint32N(64) },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rng := NewSeeded(7)
			counts := make([]int, test.buckets)
			for i := 0; i < draws; i++ {
				counts[test.sample(rng)]++
			}

			expected := float64(draws) / float64(test.buckets)
			var chi2 float64
			for _, c := range counts {
				d := float64(c) - expected
				chi2 += d * d / expected
			}
			if chi2 > test.max {
				t.Fatalf("chi-square %.2f exceeds %.2f", chi2, test.max)
			}
		})
	}
}

// TestEmptyRangePanics ensures every sampling operation rejects an
// empty or malformed range by panicking rather than returning any
// value.
func TestEmptyRangePanics(t *testing.T) {
	rng := NewSeeded(1)

	tests := []struct {
		name string
		fn   func()
	}{
		{"Uint32N zero", func() { rng.Uint32N(0) }},
		{"Uint64N zero", func() { rng.Uint64N(0) }},
		{"Uint128N zero", func() { rng.Uint128N(0, 0) }},
		{"UintN zero", func() { rng.UintN(0) }},
		{"IntN zero", func() { rng.IntN(0) }},
		{"IntN negative", func() { rng.IntN(-5) }},
		{"Int32N zero", func() { rng.Int32N(0) }},
		{"Int64N negative", func() { rng.Int64N(-1) }},
		{"IntRange empty", func() { rng.IntRange(5, 5) }},
		{"IntRange inverted", func() { rng.IntRange(6, 5) }},
		{"Uint8Range empty", func() { rng.Uint8Range(200, 200) }},
		{"Int64Range inverted", func() { rng.Int64Range(1, -1) }},
		{"Float64Range empty", func() { rng.Float64Range(1, 1) }},
		{"Float32Range inverted", func() { rng.Float32Range(2, 1) }},
		{"Float64Range NaN", func() { rng.Float64Range(math.NaN(), 1) }},
		{"RuneRange inverted", func() { rng.RuneRange('z', 'a') }},
		{"RuneRange surrogates only", func() { rng.RuneRange(0xd800, 0xe000) }},
		{"RuneRange negative", func() { rng.RuneRange(-1, 'a') }},
		{"Digit base zero", func() { rng.Digit(0) }},
		{"Digit base too large", func() { rng.Digit(37) }},
		{"Duration zero", func() { rng.Duration(0) }},
		{"Shuffle negative", func() { rng.Shuffle(-1, func(i, j int) {}) }},
	}

	for _, test := range tests {
		assertPanics(t, test.name, test.fn)
	}
}

// TestFloatBounds ensures float draws stay in their documented ranges.
func TestFloatBounds(t *testing.T) {
	rng := NewSeeded(3)
	for i := 0; i < 10000; i++ {
		if f := rng.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
		if f := rng.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v out of [0,1)", f)
		}
		if f := rng.Float64Range(-2.5, 7.25); f < -2.5 || f >= 7.25 {
			t.Fatalf("Float64Range(-2.5, 7.25) = %v out of range", f)
		}
		if f := rng.Float32Range(100, 200); f < 100 || f >= 200 {
			t.Fatalf("Float32Range(100, 200) = %v out of range", f)
		}
	}
}

// TestRune ensures rune draws are valid Unicode scalar values and
// respect requested ranges, including ranges overlapping the surrogate
// block.
func TestRune(t *testing.T) {
	rng := NewSeeded(11)

	isSurrogate := func(r rune) bool {
		return r >= 0xd800 && r < 0xe000
	}

	for i := 0; i < 10000; i++ {
		r := rng.Rune()
		if !utf8.ValidRune(r) || isSurrogate(r) {
			t.Fatalf("Rune() = %U invalid", r)
		}
	}

	// Range fully below the surrogate block.
	for i := 0; i < 1000; i++ {
		r := rng.RuneRange('a', 'z'+1)
		if r < 'a' || r > 'z' {
			t.Fatalf("RuneRange('a', '{') = %U out of range", r)
		}
	}

	// Range spanning the surrogate block must skip it entirely while
	// still producing values on both sides.
	var below, above bool
	for i := 0; i < 10000; i++ {
		r := rng.RuneRange(0x20, 0x10000)
		if r < 0x20 || r >= 0x10000 || isSurrogate(r) {
			t.Fatalf("RuneRange(0x20, 0x10000) = %U invalid", r)
		}
		if r < 0xd800 {
			below = true
		}
		if r >= 0xe000 {
			above = true
		}
	}
	if !below || !above {
		t.Fatalf("RuneRange never produced values on both sides of the "+
			"surrogate block: below=%v above=%v", below, above)
	}

	// Range starting inside the surrogate block clamps to its end.
	for i := 0; i < 1000; i++ {
		r := rng.RuneRange(0xd900, 0xe010)
		if r < 0xe000 || r >= 0xe010 {
			t.Fatalf("RuneRange(0xd900, 0xe010) = %U out of range", r)
		}
	}
}

// TestAlphabets ensures the character generators only emit characters
// from their documented alphabets.
func TestAlphabets(t *testing.T) {
	rng := NewSeeded(13)

	tests := []struct {
		name string
		gen  func() byte
		ok   func(byte) bool
	}{
		{
			name: "Alphanumeric",
			gen:  rng.Alphanumeric,
			ok: func(c byte) bool {
				return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' ||
					c >= 'A' && c <= 'Z'
			},
		},
		{
			name: "Alphabetic",
			gen:  rng.Alphabetic,
			ok: func(c byte) bool {
				return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
			},
		},
		{
			name: "Lowercase",
			gen:  rng.Lowercase,
			ok:   func(c byte) bool { return c >= 'a' && c <= 'z' },
		},
		{
			name: "Uppercase",
			gen:  rng.Uppercase,
			ok:   func(c byte) bool { return c >= 'A' && c <= 'Z' },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				if c := test.gen(); !test.ok(c) {
					t.Fatalf("got %q outside alphabet", c)
				}
			}
		})
	}
}

// TestDigit ensures digits honor their base across all valid bases.
func TestDigit(t *testing.T) {
	rng := NewSeeded(17)
	for base := 1; base <= 36; base++ {
		for i := 0; i < 100; i++ {
			c := rng.Digit(base)
			var v int
			switch {
			case c >= '0' && c <= '9':
				v = int(c - '0')
			case c >= 'a' && c <= 'z':
				v = int(c-'a') + 10
			default:
				t.Fatalf("base %d: got %q outside digit alphabet", base, c)
			}
			if v >= base {
				t.Fatalf("base %d: digit %q has value %d", base, c, v)
			}
		}
	}
}

// TestRead ensures Read fills buffers of any length deterministically
// from the 64-bit output stream.
func TestRead(t *testing.T) {
	lens := []int{0, 1, 7, 8, 9, 16, 32, 33}
	for _, n := range lens {
		rng := NewSeeded(7)
		b := make([]byte, n)
		got, err := rng.Read(b)
		if err != nil {
			t.Fatalf("len %d: unexpected error: %v", n, err)
		}
		if got != n {
			t.Fatalf("len %d: Read returned %d", n, got)
		}

		// Reconstruct the expected bytes from raw 64-bit draws.
		twin := NewSeeded(7)
		want := make([]byte, (n+7)/8*8)
		for i := 0; i < len(want); i += 8 {
			binary.LittleEndian.PutUint64(want[i:], twin.Uint64())
		}
		for i := range b {
			if b[i] != want[i] {
				t.Fatalf("len %d: byte %d = %#02x, want %#02x", n, i,
					b[i], want[i])
			}
		}
	}
}

// TestDuration ensures random durations stay within [0,n).
func TestDuration(t *testing.T) {
	rng := NewSeeded(19)
	for i := 0; i < 1000; i++ {
		d := rng.Duration(time.Hour)
		if d < 0 || d >= time.Hour {
			t.Fatalf("Duration(1h) = %v out of range", d)
		}
	}
}

// TestBigInt ensures random big integers stay within [0,max).
func TestBigInt(t *testing.T) {
	rng := NewSeeded(23)
	max := big.NewInt(1000)
	for i := 0; i < 1000; i++ {
		n := rng.BigInt(max)
		if n.Sign() < 0 || n.Cmp(max) >= 0 {
			t.Fatalf("BigInt(1000) = %v out of range", n)
		}
	}
}

// TestBool ensures Bool eventually produces both values and follows
// the documented low-bit convention.
func TestBool(t *testing.T) {
	rng := NewSeeded(7)
	twin := NewSeeded(7)
	for i := 0; i < 100; i++ {
		if got, want := rng.Bool(), twin.Uint32()&1 == 1; got != want {
			t.Fatalf("draw %d: Bool() = %v, want %v", i, got, want)
		}
	}

	rng = NewSeeded(29)
	var sawTrue, sawFalse bool
	for i := 0; i < 100 && !(sawTrue && sawFalse); i++ {
		if rng.Bool() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Fatal("Bool never produced both values in 100 draws")
	}
}
