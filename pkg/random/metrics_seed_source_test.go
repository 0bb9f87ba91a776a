package random_test

import (
	"context"
	"testing"

	"github.com/buildbarn/go-seedbank/pkg/clock"
	"github.com/buildbarn/go-seedbank/pkg/random"
	"github.com/buildbarn/go-seedbank/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type staticSeedSource struct {
	seed uint64
	err  error
}

func (ss *staticSeedSource) GetSeed(ctx context.Context) (uint64, error) {
	return ss.seed, ss.err
}

func TestMetricsSeedSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		seedSource := random.NewMetricsSeedSource(
			&staticSeedSource{seed: 0xdeadbeef},
			clock.SystemClock,
			"success")
		seed, err := seedSource.GetSeed(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(0xdeadbeef), seed)
	})

	t.Run("Failure", func(t *testing.T) {
		seedSource := random.NewMetricsSeedSource(
			&staticSeedSource{err: status.Error(codes.Canceled, "context canceled")},
			clock.SystemClock,
			"failure")
		_, err := seedSource.GetSeed(ctx)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Canceled, "context canceled"),
			err)
	})
}
