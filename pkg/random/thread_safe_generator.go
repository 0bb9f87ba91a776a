package random

import (
	"context"
	"sync"
)

// ThreadSafeGenerator is identical to SingleThreadedGenerator, except
// that it is safe to use from within multiple goroutines without
// additional locking. These generators may be slower than their
// single-threaded counterparts.
type ThreadSafeGenerator interface {
	SingleThreadedGenerator

	IsThreadSafe()
}

type lockedThreadSafeGenerator struct {
	lock sync.Mutex
	base SingleThreadedGenerator
}

// NewSeededThreadSafeGenerator creates a ThreadSafeGenerator that is
// seeded from the provided seed source. Thread safety is obtained by
// serializing all calls against a single underlying generator, which
// is appropriate for generators that are shared, but not heavily
// contended. Heavily contended callers should prefer creating one
// SingleThreadedGenerator per goroutine instead.
func NewSeededThreadSafeGenerator(ctx context.Context, seedSource SeedSource) (ThreadSafeGenerator, error) {
	base, err := NewSeededSingleThreadedGenerator(ctx, seedSource)
	if err != nil {
		return nil, err
	}
	return &lockedThreadSafeGenerator{base: base}, nil
}

func (g *lockedThreadSafeGenerator) IsThreadSafe() {}

func (g *lockedThreadSafeGenerator) Float64() float64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Float64()
}

func (g *lockedThreadSafeGenerator) Int64N(n int64) int64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Int64N(n)
}

func (g *lockedThreadSafeGenerator) IntN(n int) int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.IntN(n)
}

func (g *lockedThreadSafeGenerator) Shuffle(n int, swap func(i, j int)) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.base.Shuffle(n, swap)
}

func (g *lockedThreadSafeGenerator) Uint32() uint32 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint32()
}

func (g *lockedThreadSafeGenerator) Uint64() uint64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint64()
}
