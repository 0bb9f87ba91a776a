package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/buildbarn/go-seedbank/pkg/random"
	"github.com/buildbarn/go-seedbank/pkg/util"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// seed_dump: Draw a number of seed values from a banked seed source
// and write them to standard output, one hexadecimal value per line.
//
// Next to being a way to inspect seed output, drawing with a
// configurable number of goroutines makes this tool a simple smoke
// tester for contention on the admission gate.

type applicationConfiguration struct {
	// Lower bound on the number of bank slots. Rounded up to the
	// nearest power of two. Defaults to the number of CPUs.
	MinimumConcurrencyLevel int `json:"minimumConcurrencyLevel"`
	// Total number of seeds to emit.
	SeedCount int `json:"seedCount"`
	// Number of goroutines used to draw seeds.
	DrawConcurrency int `json:"drawConcurrency"`
	// Bit generator algorithm: "xoshiro256starstar" (default) or
	// "xorshift64star".
	BitGeneratorAlgorithm string `json:"bitGeneratorAlgorithm"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal("Fatal error: ", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) != 2 {
		return status.Error(codes.InvalidArgument, "Usage: seed_dump seed_dump.jsonnet")
	}
	var configuration applicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
		return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
	}
	if configuration.SeedCount < 1 {
		return status.Error(codes.InvalidArgument, "Seed count must be at least one")
	}
	drawConcurrency := configuration.DrawConcurrency
	if drawConcurrency < 1 {
		drawConcurrency = 1
	}

	var bitGeneratorFactory random.BitGeneratorFactory
	switch configuration.BitGeneratorAlgorithm {
	case "", "xoshiro256starstar":
		bitGeneratorFactory = random.NewXoshiro256StarStarBitGenerator
	case "xorshift64star":
		bitGeneratorFactory = random.NewXorShift64StarBitGenerator
	default:
		return status.Errorf(codes.InvalidArgument, "Unknown bit generator algorithm %#v", configuration.BitGeneratorAlgorithm)
	}

	minimumConcurrencyLevel := configuration.MinimumConcurrencyLevel
	if minimumConcurrencyLevel == 0 {
		minimumConcurrencyLevel = runtime.NumCPU()
	}
	seedSource, err := random.NewBankedSeedSource(
		minimumConcurrencyLevel,
		random.CryptoEntropySource,
		bitGeneratorFactory)
	if err != nil {
		return util.StatusWrap(err, "Failed to create seed source")
	}
	return dumpSeeds(ctx, seedSource, configuration.SeedCount, drawConcurrency)
}

func dumpSeeds(ctx context.Context, seedSource random.SeedSource, seedCount, drawConcurrency int) error {
	seedsPerGoroutine := (seedCount + drawConcurrency - 1) / drawConcurrency
	seeds := make([][]uint64, drawConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)
	remaining := seedCount
	for i := 0; i < drawConcurrency; i++ {
		count := seedsPerGoroutine
		if count > remaining {
			count = remaining
		}
		remaining -= count
		seeds[i] = make([]uint64, 0, count)
		group.Go(func() error {
			for j := 0; j < count; j++ {
				seed, err := seedSource.GetSeed(groupCtx)
				if err != nil {
					return util.StatusWrap(err, "Failed to obtain seed")
				}
				seeds[i] = append(seeds[i], seed)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, drawn := range seeds {
		for _, seed := range drawn {
			fmt.Printf("%016x\n", seed)
		}
	}
	return nil
}
