package hash_test

import (
	"encoding/hex"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestHash(t *testing.T) {
	// Hash of two zero chunks, the first non-trivial zero hash.
	want, err := hex.DecodeString("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	require.NoError(t, err)
	got := hash.Hash(make([]byte, 64))
	assert.DeepEqual(t, want, got[:])
}

func TestHash_MatchesCustomHasher(t *testing.T) {
	hasher := hash.CustomSHA256Hasher()
	fuzzer := fuzz.NewWithSeed(0)
	for i := 0; i < 1000; i++ {
		var data []byte
		fuzzer.Fuzz(&data)
		assert.Equal(t, hash.Hash(data), hasher(data))
	}
}
