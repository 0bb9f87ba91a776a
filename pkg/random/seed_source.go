package random

import (
	"context"
)

// SeedSource vends 64-bit seed values that are suitable for
// initializing pseudo-random number generators elsewhere in a process.
// Seeds are derived from a cryptographically secure entropy source at
// construction time, so that independently seeded generators do not
// correlate, while individual calls remain cheap.
//
// Implementations are safe to use from an arbitrary number of
// goroutines. Values returned by GetSeed() are not suitable for
// security sensitive purposes, such as generating session tokens.
type SeedSource interface {
	// Obtain a single seed value. This call may block while other
	// callers are drawing seeds. Blocking is interrupted when the
	// provided context is canceled.
	GetSeed(ctx context.Context) (uint64, error)
}
