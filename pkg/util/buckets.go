package util

import (
	"fmt"
	"math"
	"strconv"
)

func getBucketBoundary(significand string, exponent int) float64 {
	v, err := strconv.ParseFloat(fmt.Sprintf("%se%d", significand, exponent), 64)
	if err != nil {
		panic(fmt.Sprintf("Failed to compute bucket boundary: %s", err))
	}
	return v
}

// DecimalExponentialBuckets generates a series of exponential bucket
// boundaries that can be used for Prometheus histogram objects. Instead
// of using powers of 2, this function uses 10^(1/m) as the exponent,
// which has the advantage of yielding round numbers at every power of
// ten.
//
// Boundaries are first computed as five digit accurate strings and then
// parsed with strconv.ParseFloat(), so that metric label names remain
// short and unaffected by the precision of math libraries and hardware
// floating point units.
func DecimalExponentialBuckets(lowestPowerOf10, powersOf10, stepsInBetween int) []float64 {
	boundaries := make([]string, 0, stepsInBetween+1)
	for i := 0; i <= stepsInBetween; i++ {
		boundaries = append(
			boundaries,
			fmt.Sprintf("%f", math.Pow(10.0, float64(i)/float64(stepsInBetween+1)))[:6])
	}

	buckets := make([]float64, 0, powersOf10*len(boundaries)+1)
	for i := 0; i < powersOf10; i++ {
		for _, boundary := range boundaries {
			buckets = append(buckets, getBucketBoundary(boundary, lowestPowerOf10+i))
		}
	}
	return append(buckets, getBucketBoundary("1", lowestPowerOf10+powersOf10))
}
