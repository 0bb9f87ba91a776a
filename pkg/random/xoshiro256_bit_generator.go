package random

import (
	"math/bits"
)

type xoshiro256StarStarBitGenerator struct {
	state [4]uint64
}

// NewXoshiro256StarStarBitGenerator creates a BitGenerator that is
// backed by the xoshiro256** algorithm. The 256 bits of internal state
// are expanded from the seed using splitmix64, as recommended by the
// algorithm's authors. This guarantees a nonzero state for every seed.
//
// https://prng.di.unimi.it/xoshiro256starstar.c
func NewXoshiro256StarStarBitGenerator(seed uint64) BitGenerator {
	bg := &xoshiro256StarStarBitGenerator{}
	for i := range bg.state {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		bg.state[i] = z ^ (z >> 31)
	}
	return bg
}

func (bg *xoshiro256StarStarBitGenerator) Uint64() uint64 {
	result := bits.RotateLeft64(bg.state[1]*5, 7) * 9

	t := bg.state[1] << 17
	bg.state[2] ^= bg.state[0]
	bg.state[3] ^= bg.state[1]
	bg.state[1] ^= bg.state[2]
	bg.state[0] ^= bg.state[3]
	bg.state[2] ^= t
	bg.state[3] = bits.RotateLeft64(bg.state[3], 45)

	return result
}
