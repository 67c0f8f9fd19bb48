// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fastrand implements a fast, non-cryptographic pseudorandom
// number generator based on PCG XSH RR 64/32.  The generator can be
// used to obtain random booleans, integers of every width in a full or
// limited range, floats, characters, and bytes, as well as to shuffle
// sequences in place.
//
// Generators are deterministic for a given seed, may be forked into
// decorrelated children, and report the seed they were created with for
// reproducibility bookkeeping.  Individual PRNG instances are not safe
// for concurrent access.  The package-level functions mirror every PRNG
// method on an internally locked default instance that is lazily seeded
// from operating system entropy on first use.
//
// This package trades cryptographic unpredictability for speed and must
// never be used for security-sensitive purposes; use crypto/rand
// instead.
package fastrand
