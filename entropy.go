// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fastrand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// maxSeedDraws bounds the number of 64-bit seeds served between rekeys
// of the seed source keystream.
const maxSeedDraws = 1 << 20

// seedSource expands a single operating system entropy read into a
// stream of 64-bit generator seeds using a ChaCha20 keystream, so that
// constructing a nondeterministically seeded generator costs one
// keystream read rather than one kernel call.  seedSource is safe for
// concurrent access.
type seedSource struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	draws  int
	key    [chacha20.KeySize]byte
}

var entropy seedSource

// rekey keys the keystream from fresh OS entropy, mixed with the
// existing keystream when one is already running.  Only the very first
// keying can return an error; later OS read failures fall back to the
// entropy still held in the prior keystream.
func (s *seedSource) rekey() error {
	_, err := cryptorand.Read(s.key[:])
	if err != nil && s.cipher == nil {
		return err
	}
	if s.cipher != nil {
		s.cipher.XORKeyStream(s.key[:], s.key[:])
	}

	// never errors with correct key and nonce sizes
	var nonce [chacha20.NonceSize]byte
	cipher, _ := chacha20.NewUnauthenticatedCipher(s.key[:], nonce[:])
	s.cipher = cipher
	s.draws = 0
	log.Debugf("Seed source keyed from system entropy")
	return nil
}

// seed64 returns the next 64-bit seed from the keystream, keying it on
// first use.  It panics if the first keying fails.
func (s *seedSource) seed64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cipher == nil || s.draws >= maxSeedDraws {
		if err := s.rekey(); err != nil {
			panic("fastrand: system entropy unavailable: " + err.Error())
		}
	}

	var b [8]byte
	s.cipher.XORKeyStream(b[:], b[:])
	s.draws++
	return binary.LittleEndian.Uint64(b[:])
}

// entropySeed returns a fresh 64-bit seed sourced from the operating
// system entropy expander.
func entropySeed() uint64 {
	return entropy.seed64()
}
