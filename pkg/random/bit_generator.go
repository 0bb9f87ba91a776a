package random

import (
	"github.com/lazybeaver/xorshift"
)

// BitGenerator is a deterministic pseudo-random number generator that,
// for a given seed, yields a repeatable stream of 64-bit values. Every
// call advances the generator's internal state. Bit generators provide
// no internal locking; at most one caller may advance a given instance
// at a time.
type BitGenerator interface {
	Uint64() uint64
}

// BitGeneratorFactory creates a BitGenerator whose output stream is
// fully determined by the provided seed.
type BitGeneratorFactory func(seed uint64) BitGenerator

type xorShiftBitGenerator struct {
	sequence xorshift.XorShift
}

// NewXorShift64StarBitGenerator creates a BitGenerator that is backed
// by the xorshift64* algorithm.
func NewXorShift64StarBitGenerator(seed uint64) BitGenerator {
	if seed == 0 {
		// xorshift64* has a fixed point at zero.
		seed = 1
	}
	return &xorShiftBitGenerator{
		sequence: xorshift.NewXorShift64Star(seed),
	}
}

func (bg *xorShiftBitGenerator) Uint64() uint64 {
	return bg.sequence.Next()
}
