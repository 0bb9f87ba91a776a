package random_test

import (
	"context"
	"testing"

	"github.com/buildbarn/go-seedbank/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestSingleThreadedGenerator(t *testing.T) {
	ctx := context.Background()
	seedSource, err := random.NewSeedSource()
	require.NoError(t, err)
	seededSingleThreaded, err := random.NewSeededSingleThreadedGenerator(ctx, seedSource)
	require.NoError(t, err)
	seededThreadSafe, err := random.NewSeededThreadSafeGenerator(ctx, seedSource)
	require.NoError(t, err)

	for name, generator := range map[string]random.SingleThreadedGenerator{
		"SeededSingleThreaded": seededSingleThreaded,
		"SeededThreadSafe":     seededThreadSafe,
		"FastThreadSafe":       random.FastThreadSafeGenerator,
	} {
		t.Run(name, func(t *testing.T) {
			t.Run("Float64", func(t *testing.T) {
				for i := 0; i < 100; i++ {
					v := generator.Float64()
					require.LessOrEqual(t, 0.0, v)
					require.Greater(t, 1.0, v)
				}
			})

			t.Run("Int64N", func(t *testing.T) {
				for i := 0; i < 100; i++ {
					v := generator.Int64N(72057594037927936)
					require.LessOrEqual(t, int64(0), v)
					require.Greater(t, int64(72057594037927936), v)
				}
			})

			t.Run("IntN", func(t *testing.T) {
				for i := 0; i < 100; i++ {
					v := generator.IntN(42)
					require.LessOrEqual(t, 0, v)
					require.Greater(t, 42, v)
				}
			})

			t.Run("Shuffle", func(t *testing.T) {
				called := false
				for !called {
					generator.Shuffle(100, func(i, j int) {
						called = true
					})
				}
			})

			t.Run("Uint64", func(t *testing.T) {
				generator.Uint64()
			})
		})
	}
}
