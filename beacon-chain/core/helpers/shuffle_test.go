package helpers

import (
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestShuffledIndex(t *testing.T) {
	var list []uint64
	listSize := uint64(399)
	for i := uint64(0); i < listSize; i++ {
		list = append(list, i)
	}
	shuffledList := make([]uint64, listSize)
	unShuffledList := make([]uint64, listSize)
	seed := [32]byte{123, 42}
	for i := uint64(0); i < listSize; i++ {
		si, err := ShuffledIndex(i, listSize, seed)
		assert.NoError(t, err)
		shuffledList[si] = list[i]
	}
	for i := uint64(0); i < listSize; i++ {
		ui, err := UnShuffledIndex(i, listSize, seed)
		assert.NoError(t, err)
		unShuffledList[ui] = shuffledList[i]
	}

	assert.DeepEqual(t, list, unShuffledList)
}

func TestShuffledIndex_IsPermutation(t *testing.T) {
	listSize := uint64(64)
	seed := [32]byte{1, 128, 12}
	seen := make(map[uint64]bool, listSize)
	for i := uint64(0); i < listSize; i++ {
		si, err := ShuffledIndex(i, listSize, seed)
		require.NoError(t, err)
		require.Equal(t, true, si < listSize)
		seen[si] = true
	}
	assert.Equal(t, int(listSize), len(seen))
}

func TestComputeShuffledIndex_OutOfBounds(t *testing.T) {
	_, err := ComputeShuffledIndex(5, 5, [32]byte{}, true)
	assert.ErrorContains(t, "out of bounds", err)
}

func BenchmarkComputeShuffledIndex(b *testing.B) {
	seed := [32]byte{123, 42}
	for n := 0; n < b.N; n++ {
		for i := uint64(0); i < 100; i++ {
			_, err := ComputeShuffledIndex(i, 100, seed, true)
			require.NoError(b, err)
		}
	}
}
