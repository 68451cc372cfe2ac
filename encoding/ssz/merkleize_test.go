package ssz_test

import (
	"encoding/hex"
	"testing"

	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/ssz"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestUint64Root(t *testing.T) {
	uintVal := uint64(1234567890)
	expected := [32]byte{210, 2, 150, 73, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	result := ssz.Uint64Root(uintVal)
	assert.Equal(t, expected, result)
}

func TestDepth(t *testing.T) {
	tests := []struct {
		in  uint64
		out uint8
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
		{fieldparams.ValidatorRegistryLimit, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, ssz.Depth(tt.in))
	}
}

func TestMerkleizeVector(t *testing.T) {
	assert.Equal(t, trie.ZeroHashes[3], ssz.MerkleizeVector(nil, 8))

	a := hash.Hash([]byte("a"))
	b := hash.Hash([]byte("b"))
	c := hash.Hash([]byte("c"))
	ab := hash.Hash(append(a[:], b[:]...))
	c0 := hash.Hash(append(c[:], trie.ZeroHashes[0][:]...))
	want := hash.Hash(append(ab[:], c0[:]...))
	assert.Equal(t, want, ssz.MerkleizeVector([][32]byte{a, b, c}, 4))
}

func TestMerkleizeListSSZ_MatchesContainerRoot(t *testing.T) {
	// A two element list of checkpoints with a limit of four.
	cps := []*ethpb.Checkpoint{{Epoch: 1}, {Epoch: 2, Root: [32]byte{'a'}}}
	r0, err := cps[0].HashTreeRoot()
	require.NoError(t, err)
	r1, err := cps[1].HashTreeRoot()
	require.NoError(t, err)
	left := hash.Hash(append(r0[:], r1[:]...))
	body := hash.Hash(append(left[:], trie.ZeroHashes[1][:]...))
	want := ssz.MixInLength(body, 2)

	got, err := ssz.MerkleizeListSSZ(cps, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMerkleizeListSSZ_Empty(t *testing.T) {
	got, err := ssz.MerkleizeListSSZ([]*ethpb.Validator{}, 4)
	require.NoError(t, err)
	// Root of four zero chunks mixed with a zero length.
	assert.Equal(t, "28ba1834a3a7b657460ce79fa3a1d909ab8828fd557659d4d0554a9bdbc0ec30", hex.EncodeToString(got[:]))
}
