package util_test

import (
	"testing"

	"github.com/buildbarn/go-seedbank/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestRoundUpToPowerOfTwo(t *testing.T) {
	for _, entry := range []struct {
		input uint64
		want  uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{63, 64},
		{64, 64},
		{65, 128},
		{1 << 32, 1 << 32},
		{(1 << 32) + 1, 1 << 33},
		{(1 << 62) + 1, 1 << 63},
		{1 << 63, 1 << 63},
	} {
		require.Equal(t, entry.want, util.RoundUpToPowerOfTwo(entry.input), "input %d", entry.input)
	}
}
