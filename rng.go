// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fastrand

import (
	"math/bits"
)

const (
	// mul is the 64-bit LCG multiplier from the PCG reference parameter
	// set.  The same parameter set is used for every output width so that
	// wider values composed from 32-bit draws remain consistent.
	mul = 6364136223846793005

	// defaultStream selects the additive increment of the state update.
	// The derived increment (defaultStream<<1)|1 is the PCG reference
	// default sequence constant 0xda3e39cb94b95bdb.
	defaultStream = 0x6d1f1ce5ca5caded
)

// PRNG is a pseudorandom number generator implementing PCG XSH RR 64/32:
// a 64-bit linear congruential state update whose previous state is
// permuted into each output word by an xorshift followed by a
// data-dependent rotate.  The sequence has a full 2^64 period for any
// stream and is deterministic for a given seed.
//
// PRNG is NOT cryptographically secure and must never be used where an
// adversary observing outputs is a concern.
//
// PRNG methods are not safe for concurrent access.  Callers sharing an
// instance across goroutines must provide their own synchronization, or
// use the package-level functions which operate on an internally locked
// default instance.
type PRNG struct {
	state uint64
	inc   uint64 // always odd
	seed  uint64 // last supplied seed, for GetSeed
}

// New returns a PRNG seeded from the operating system entropy source.
// It panics if the entropy source fails on its first read; it can never
// panic afterwards.
func New() *PRNG {
	return NewSeeded(entropySeed())
}

// NewSeeded returns a PRNG deterministically initialized with seed on
// the default stream.  Generators created with equal seeds produce
// identical output sequences for identical sequences of operations.
func NewSeeded(seed uint64) *PRNG {
	p := new(PRNG)
	p.Seed(seed)
	return p
}

// NewSeededStream returns a PRNG deterministically initialized with
// seed on the numbered stream.  Distinct streams share the multiplier
// constant yet produce decorrelated output sequences for the same seed.
func NewSeededStream(seed, stream uint64) *PRNG {
	p := new(PRNG)
	p.SeedStream(seed, stream)
	return p
}

// Seed discards all generator state and reinitializes it from seed on
// the default stream, as if the generator had just been created by
// NewSeeded.  The supplied value is recorded and later reported by
// GetSeed.
func (p *PRNG) Seed(seed uint64) {
	p.SeedStream(seed, defaultStream)
}

// SeedStream discards all generator state and reinitializes it from
// seed on the numbered stream.  Only the low 63 bits of stream select
// the sequence; the derived increment is always forced odd to preserve
// the full 2^64 period.
func (p *PRNG) SeedStream(seed, stream uint64) {
	// Two advances around the seed addition decorrelate the output
	// sequences of nearby seeds.
	p.seed = seed
	p.inc = stream<<1 | 1
	p.state = 0
	p.next32()
	p.state += seed
	p.next32()
}

// GetSeed returns the seed the generator was last initialized with,
// whether supplied explicitly or drawn from the entropy source.  The
// value is reproducibility bookkeeping only: it does not track state
// mutated by later draws and cannot resume a generator mid-sequence.
func (p *PRNG) GetSeed() uint64 {
	return p.seed
}

// Fork derives an independent child generator by drawing a fresh seed
// from the parent's output stream.  The parent state advances as a side
// effect, so consecutive forks of the same parent yield decorrelated
// children.
func (p *PRNG) Fork() *PRNG {
	return NewSeeded(p.Uint64())
}

// next32 advances the LCG state and permutes the prior state into a
// 32-bit output word.  The rotate count comes from the top bits of the
// prior state, making every output bit depend on the entire 64 bits of
// state.  The rotate must be a fixed-width unsigned rotate; RotateLeft32
// with a negated count performs the required rotate-right for any count
// including zero.
func (p *PRNG) next32() uint32 {
	s0 := p.state
	p.state = s0*mul + p.inc
	xorshifted := uint32(((s0 >> 18) ^ s0) >> 27)
	return bits.RotateLeft32(xorshifted, -int(s0>>59))
}

// Uint32 returns a uniform random uint32.
func (p *PRNG) Uint32() uint32 {
	return p.next32()
}

// Uint64 returns a uniform random uint64 composed from two sequential
// 32-bit draws, high word first.
func (p *PRNG) Uint64() uint64 {
	hi := uint64(p.next32())
	lo := uint64(p.next32())
	return hi<<32 | lo
}

// Uint128 returns a uniform random 128-bit value as a pair of 64-bit
// words, high word first.
func (p *PRNG) Uint128() (hi, lo uint64) {
	hi = p.Uint64()
	lo = p.Uint64()
	return hi, lo
}
