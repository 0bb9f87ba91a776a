package random

import (
	"context"
	"encoding/binary"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/buildbarn/go-seedbank/pkg/util"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type bankedSeedSource struct {
	gate          *semaphore.Weighted
	rotation      atomic.Uint64
	indexMask     uint64
	bitGenerators []BitGenerator
}

// NewBankedSeedSource creates a SeedSource that is backed by a bank of
// independently seeded bit generators. The bank contains the smallest
// power of two number of generators that is at least
// minimumConcurrencyLevel, each seeded with eight bytes drawn from the
// entropy source. All seed material is requested in a single read, as
// the entropy source may be slow.
//
// Admission to the bank is bounded by a semaphore with
// minimumConcurrencyLevel permits. Because the permit count never
// exceeds the bank size, and indices are handed out through an atomic
// round-robin counter, at most one caller advances a given bit
// generator at a time. Bit generators may therefore be used without
// any per-slot locking. Implementations that change the permit count
// must keep it less than or equal to the bank size to preserve this
// property.
func NewBankedSeedSource(minimumConcurrencyLevel int, entropySource EntropySource, bitGeneratorFactory BitGeneratorFactory) (SeedSource, error) {
	if minimumConcurrencyLevel < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "Minimum concurrency level %d is below one", minimumConcurrencyLevel)
	}
	concurrencyLevel := util.RoundUpToPowerOfTwo(uint64(minimumConcurrencyLevel))

	seedData := make([]byte, concurrencyLevel*8)
	if _, err := io.ReadFull(entropySource, seedData); err != nil {
		return nil, util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to obtain %d bytes of entropy for seeding the generator bank", len(seedData))
	}
	bitGenerators := make([]BitGenerator, 0, concurrencyLevel)
	for i := uint64(0); i < concurrencyLevel; i++ {
		bitGenerators = append(
			bitGenerators,
			bitGeneratorFactory(binary.LittleEndian.Uint64(seedData[i*8:])))
	}

	return &bankedSeedSource{
		gate:          semaphore.NewWeighted(int64(minimumConcurrencyLevel)),
		indexMask:     concurrencyLevel - 1,
		bitGenerators: bitGenerators,
	}, nil
}

// NewSeedSource creates a SeedSource with the default configuration:
// one bank slot per available CPU (rounded up to a power of two),
// entropy drawn from the operating system and xoshiro256** as the bit
// generator algorithm.
func NewSeedSource() (SeedSource, error) {
	return NewBankedSeedSource(
		runtime.NumCPU(),
		CryptoEntropySource,
		NewXoshiro256StarStarBitGenerator)
}

func (ss *bankedSeedSource) GetSeed(ctx context.Context) (uint64, error) {
	if err := util.AcquireSemaphore(ctx, ss.gate, 1); err != nil {
		return 0, err
	}
	defer ss.gate.Release(1)

	// The mask folds the counter into the bank without any
	// discontinuity at the point of integer overflow, as the bank
	// size is a power of two.
	index := (ss.rotation.Add(1) - 1) & ss.indexMask
	return ss.bitGenerators[index].Uint64(), nil
}
