package util

import (
	"math/bits"
)

// RoundUpToPowerOfTwo computes the smallest power of two that is
// greater than or equal to v. The result is unspecified for values
// above 2^63, as the next power of two does not fit in 64 bits.
func RoundUpToPowerOfTwo(v uint64) uint64 {
	if v < 2 {
		return 1
	}
	return uint64(1) << bits.Len64(v-1)
}
