package random

import (
	"context"
	"math/rand/v2"
)

// SingleThreadedGenerator is a pseudo-random number generator that
// cannot be used concurrently. This interface is a subset of Go's
// rand.Rand.
type SingleThreadedGenerator interface {
	// Generates a number in range [0.0, 1.0).
	Float64() float64
	// Generates a number in range [0, n), where n is of type int64.
	Int64N(n int64) int64
	// Generates a number in range [0, n), where n is of type int.
	IntN(n int) int
	// Shuffle the elements in a list.
	Shuffle(n int, swap func(i, j int))
	// Generates an arbitrary 32-bit integer value.
	Uint32() uint32
	// Generates an arbitrary 64-bit integer value.
	Uint64() uint64
}

var _ SingleThreadedGenerator = (*rand.Rand)(nil)

// NewSeededSingleThreadedGenerator creates a SingleThreadedGenerator
// that is backed by the PCG algorithm, initialized with two seeds
// drawn from the provided seed source. This is the intended way of
// creating large numbers of generators (e.g., one per worker) without
// repeatedly reading from the operating system's entropy source.
func NewSeededSingleThreadedGenerator(ctx context.Context, seedSource SeedSource) (SingleThreadedGenerator, error) {
	seed1, err := seedSource.GetSeed(ctx)
	if err != nil {
		return nil, err
	}
	seed2, err := seedSource.GetSeed(ctx)
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(seed1, seed2)), nil
}
