package random

import (
	crypto_rand "crypto/rand"
)

// EntropySource supplies high quality random data for seeding bit
// generators. Implementations may be slow (e.g., blocking on operating
// system entropy), which is acceptable because a seed source only reads
// from it once, at construction time.
//
// Unlike most random data generators in this package, failures are
// reported to the caller instead of causing a panic, so that a process
// can fail its startup cleanly when entropy is unavailable.
type EntropySource interface {
	Read(p []byte) (int, error)
}

type cryptoEntropySource struct{}

func (cryptoEntropySource) Read(p []byte) (int, error) {
	return crypto_rand.Read(p)
}

// CryptoEntropySource is an EntropySource that is backed by the
// operating system's cryptographically secure random number generator.
var CryptoEntropySource EntropySource = cryptoEntropySource{}
