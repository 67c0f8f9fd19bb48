// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fastrand

import (
	"io"
	"math/big"
	"sync"
	"time"
)

// lockingPRNG wraps a PRNG with a mutex so the process-wide default can
// be used concurrently.  Explicitly constructed generators avoid this
// locking overhead entirely.
type lockingPRNG struct {
	mu sync.Mutex
	*PRNG
}

var (
	defaultOnce sync.Once
	defaultPRNG *lockingPRNG
)

// defaultRng returns the process-wide default generator, creating it
// with a seed drawn from operating system entropy on first use.
func defaultRng() *lockingPRNG {
	defaultOnce.Do(func() {
		defaultPRNG = &lockingPRNG{PRNG: New()}
	})
	return defaultPRNG
}

func (p *lockingPRNG) Read(b []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Read(b)
}

// Reader returns the default generator as an io.Reader of random bytes.
// The returned Reader is safe for concurrent access.
func Reader() io.Reader {
	return defaultRng()
}

// Seed reinitializes the default generator deterministically from seed,
// discarding its prior state.  Generators already constructed
// explicitly are unaffected.
func Seed(seed uint64) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.PRNG.Seed(seed)
}

// GetSeed returns the seed the default generator was last initialized
// with, whether supplied via Seed or drawn from system entropy.
func GetSeed() uint64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.GetSeed()
}

// Fork derives an independent generator from the default generator's
// output stream, advancing the default as a side effect.
func Fork() *PRNG {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Fork()
}

// Read fills b with random bytes obtained from the default generator.
// It never errors.
func Read(b []byte) (int, error) {
	// Mutex is acquired by (*lockingPRNG).Read.
	return defaultRng().Read(b)
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint32()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint64()
}

// Uint128 returns a uniform random 128-bit value as a pair of 64-bit
// words, high word first.
func Uint128() (hi, lo uint64) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint128()
}

// Uint8 returns a uniform random uint8.
func Uint8() uint8 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint8()
}

// Uint16 returns a uniform random uint16.
func Uint16() uint16 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint16()
}

// Uint returns a uniform random uint.
func Uint() uint {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint()
}

// Int8 returns a uniform random int8 over its full range.
func Int8() int8 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int8()
}

// Int16 returns a uniform random int16 over its full range.
func Int16() int16 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int16()
}

// Int32 returns a uniform random int32 over its full range.
func Int32() int32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int32()
}

// Int64 returns a uniform random int64 over its full range.
func Int64() int64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int64()
}

// Int returns a uniform random int over its full range.
func Int() int {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int()
}

// Int128 returns a uniform random 128-bit value reinterpreted as a
// signed (hi, lo) pair.
func Int128() (hi int64, lo uint64) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int128()
}

// Uint32N returns a uniform random uint32 in [0,n).
// Panics if n == 0.
func Uint32N(n uint32) uint32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint32N(n)
}

// Uint64N returns a uniform random uint64 in [0,n).
// Panics if n == 0.
func Uint64N(n uint64) uint64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint64N(n)
}

// Uint128N returns a uniform random 128-bit value in [0,n) where both
// the bound and the result are (hi, lo) pairs of 64-bit words.
// Panics if n == 0.
func Uint128N(nhi, nlo uint64) (hi, lo uint64) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint128N(nhi, nlo)
}

// UintN returns a uniform random uint in [0,n).
// Panics if n == 0.
func UintN(n uint) uint {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.UintN(n)
}

// IntN returns a uniform random int in [0,n).
// Panics if n <= 0.
func IntN(n int) int {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.IntN(n)
}

// Int32N returns a uniform random int32 in [0,n).
// Panics if n <= 0.
func Int32N(n int32) int32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int32N(n)
}

// Int64N returns a uniform random int64 in [0,n).
// Panics if n <= 0.
func Int64N(n int64) int64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int64N(n)
}

// Uint8Range returns a uniform random uint8 in [low, high).
// Panics if low >= high.
func Uint8Range(low, high uint8) uint8 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint8Range(low, high)
}

// Uint16Range returns a uniform random uint16 in [low, high).
// Panics if low >= high.
func Uint16Range(low, high uint16) uint16 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint16Range(low, high)
}

// Uint32Range returns a uniform random uint32 in [low, high).
// Panics if low >= high.
func Uint32Range(low, high uint32) uint32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint32Range(low, high)
}

// Uint64Range returns a uniform random uint64 in [low, high).
// Panics if low >= high.
func Uint64Range(low, high uint64) uint64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uint64Range(low, high)
}

// UintRange returns a uniform random uint in [low, high).
// Panics if low >= high.
func UintRange(low, high uint) uint {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.UintRange(low, high)
}

// Int8Range returns a uniform random int8 in [low, high).
// Panics if low >= high.
func Int8Range(low, high int8) int8 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int8Range(low, high)
}

// Int16Range returns a uniform random int16 in [low, high).
// Panics if low >= high.
func Int16Range(low, high int16) int16 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int16Range(low, high)
}

// Int32Range returns a uniform random int32 in [low, high).
// Panics if low >= high.
func Int32Range(low, high int32) int32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int32Range(low, high)
}

// Int64Range returns a uniform random int64 in [low, high).
// Panics if low >= high.
func Int64Range(low, high int64) int64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Int64Range(low, high)
}

// IntRange returns a uniform random int in [low, high).
// Panics if low >= high.
func IntRange(low, high int) int {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.IntRange(low, high)
}

// Float64 returns a uniform random float64 in [0,1).
func Float64() float64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Float64()
}

// Float32 returns a uniform random float32 in [0,1).
func Float32() float32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Float32()
}

// Float64Range returns a uniform random float64 in [low, high).
// Panics unless low < high.
func Float64Range(low, high float64) float64 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Float64Range(low, high)
}

// Float32Range returns a uniform random float32 in [low, high).
// Panics unless low < high.
func Float32Range(low, high float32) float32 {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Float32Range(low, high)
}

// Bool returns a random bool with equal probability of either value.
func Bool() bool {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Bool()
}

// Rune returns a uniform random Unicode scalar value, excluding
// surrogate code points.
func Rune() rune {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Rune()
}

// RuneRange returns a uniform random Unicode scalar value in
// [low, high), never producing a surrogate code point.
// Panics if the range contains no scalar values.
func RuneRange(low, high rune) rune {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.RuneRange(low, high)
}

// Alphanumeric returns a random ASCII character from the 62-symbol
// alphabet [0-9a-zA-Z].
func Alphanumeric() byte {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Alphanumeric()
}

// Alphabetic returns a random ASCII character in the ranges a-z and A-Z.
func Alphabetic() byte {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Alphabetic()
}

// Lowercase returns a random ASCII character in the range a-z.
func Lowercase() byte {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Lowercase()
}

// Uppercase returns a random ASCII character in the range A-Z.
func Uppercase() byte {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Uppercase()
}

// Digit returns a random digit in the given base as an ASCII character
// in the ranges 0-9 and a-z.  Panics unless 1 <= base <= 36.
func Digit(base int) byte {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Digit(base)
}

// Duration returns a random duration in [0,n).
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Duration(n)
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func BigInt(max *big.Int) *big.Int {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.BigInt(max)
}

// Shuffle randomizes the order of n elements by swapping the elements
// at indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.PRNG.Shuffle(n, swap)
}

// ShuffleSlice randomizes the order of all elements in s.
func ShuffleSlice[T any](s []T) {
	p := defaultRng()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.PRNG.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
