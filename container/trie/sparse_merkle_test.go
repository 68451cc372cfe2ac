package trie_test

import (
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestMarshalDepositWithProof(t *testing.T) {
	items := [][]byte{
		[]byte("A"),
		[]byte("BB"),
		[]byte("CCC"),
		[]byte("DDDD"),
		[]byte("EEEEE"),
		[]byte("FFFFFF"),
		[]byte("GGGGGGG"),
	}
	m, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
	require.NoError(t, err)
	proof, err := m.MerkleProof(2)
	require.NoError(t, err)
	assert.Equal(t, len(proof), int(params.BeaconConfig().DepositContractTreeDepth)+1)
	root, err := m.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, true, trie.VerifyMerkleProofWithDepth(root[:], items[2], 2, proof, params.BeaconConfig().DepositContractTreeDepth))
}

func TestNewTrie_EmptyDepositRoot(t *testing.T) {
	m, err := trie.NewTrie(params.BeaconConfig().DepositContractTreeDepth)
	require.NoError(t, err)
	root, err := m.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, "d70a234731285c6804c2a4f56711ddb8c82c99740f207854891028af34e27e5e", hex.EncodeToString(root[:]))
	assert.Equal(t, 0, m.NumOfItems())
}

func TestGenerateTrieFromItems_NoItemsProvided(t *testing.T) {
	_, err := trie.GenerateTrieFromItems(nil, params.BeaconConfig().DepositContractTreeDepth)
	assert.ErrorContains(t, "no items provided", err)
}

func TestGenerateTrieFromItems_DepthTooLarge(t *testing.T) {
	_, err := trie.GenerateTrieFromItems([][]byte{{1}}, 64)
	assert.ErrorContains(t, "depth exceeds 64", err)
}

func TestMerkleTrie_VerifyMerkleProofWithDepth(t *testing.T) {
	items := [][]byte{
		[]byte("A"),
		[]byte("B"),
		[]byte("C"),
		[]byte("D"),
		[]byte("E"),
		[]byte("F"),
		[]byte("G"),
		[]byte("H"),
	}
	depth := params.BeaconConfig().DepositContractTreeDepth
	m, err := trie.GenerateTrieFromItems(items, depth)
	require.NoError(t, err)
	proof, err := m.MerkleProof(0)
	require.NoError(t, err)
	require.Equal(t, int(depth)+1, len(proof))
	root, err := m.HashTreeRoot()
	require.NoError(t, err)
	if ok := trie.VerifyMerkleProofWithDepth(root[:], items[0], 0, proof, depth); !ok {
		t.Error("First Merkle proof did not verify")
	}
	proof, err = m.MerkleProof(3)
	require.NoError(t, err)
	require.Equal(t, true, trie.VerifyMerkleProofWithDepth(root[:], items[3], 3, proof, depth))
	require.Equal(t, false, trie.VerifyMerkleProofWithDepth(root[:], []byte("buzz"), 3, proof, depth))
	require.Equal(t, false, trie.VerifyMerkleProofWithDepth(root[:], items[3], 4, proof, depth))
	require.Equal(t, false, trie.VerifyMerkleProofWithDepth(root[:], items[3], 3, proof[1:], depth))
}

func TestMerkleTrie_VerifyMerkleProof(t *testing.T) {
	items := [][]byte{
		[]byte("A"),
		[]byte("B"),
		[]byte("C"),
		[]byte("D"),
	}
	m, err := trie.GenerateTrieFromItems(items, 2)
	require.NoError(t, err)
	proof, err := m.MerkleProof(1)
	require.NoError(t, err)
	root, err := m.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, true, trie.VerifyMerkleProof(root[:], items[1], 1, proof))
	assert.Equal(t, false, trie.VerifyMerkleProof(root[:], items[1], 1, nil))
}

func TestMerkleTrie_MerkleProofOutOfRange(t *testing.T) {
	h := hash.Hash([]byte("hi"))
	m, err := trie.GenerateTrieFromItems([][]byte{h[:]}, 4)
	require.NoError(t, err)
	_, err = m.MerkleProof(-1)
	assert.ErrorContains(t, "merkle index is negative", err)
	_, err = m.MerkleProof(2)
	assert.ErrorContains(t, "merkle index out of range", err)
}

func TestMerkleTrie_Insert(t *testing.T) {
	depth := params.BeaconConfig().DepositContractTreeDepth
	items := [][]byte{{1}, {2}, {3}, {4}}
	m, err := trie.GenerateTrieFromItems(items, depth)
	require.NoError(t, err)
	proof, err := m.MerkleProof(0)
	require.NoError(t, err)
	root, err := m.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, true, trie.VerifyMerkleProofWithDepth(root[:], items[0], 0, proof, depth))

	require.NoError(t, m.Insert([]byte{5}, 4))
	proof, err = m.MerkleProof(4)
	require.NoError(t, err)
	root, err = m.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, true, trie.VerifyMerkleProofWithDepth(root[:], []byte{5}, 4, proof, depth))

	// Inserting incrementally matches building from the full item set.
	all, err := trie.GenerateTrieFromItems([][]byte{{1}, {2}, {3}, {4}, {5}}, depth)
	require.NoError(t, err)
	allRoot, err := all.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, allRoot, root)

	assert.ErrorContains(t, "negative index", m.Insert([]byte{6}, -1))
}

func TestMerkleTrie_InsertBeyondDepth(t *testing.T) {
	m, err := trie.GenerateTrieFromItems([][]byte{{1}}, 2)
	require.NoError(t, err)
	assert.ErrorContains(t, "does not fit", m.Insert([]byte{2}, 4))
}

func TestCopy_OK(t *testing.T) {
	items := [][]byte{
		[]byte("A"),
		[]byte("BB"),
		[]byte("CCC"),
	}
	source, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
	require.NoError(t, err)
	copiedTrie := source.Copy()

	if copiedTrie == source {
		t.Errorf("Original trie returned.")
	}
	a, err := copiedTrie.HashTreeRoot()
	require.NoError(t, err)
	b, err := source.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, a, b)

	require.NoError(t, copiedTrie.Insert([]byte("DDDD"), 3))
	c, err := source.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, b, c)
	assert.Equal(t, 3, source.NumOfItems())
	assert.Equal(t, 4, copiedTrie.NumOfItems())
}

func BenchmarkGenerateTrieFromItems(b *testing.B) {
	items := [][]byte{
		[]byte("A"),
		[]byte("BB"),
		[]byte("CCC"),
		[]byte("DDDD"),
		[]byte("EEEEE"),
		[]byte("FFFFFF"),
		[]byte("GGGGGGG"),
	}
	for i := 0; i < b.N; i++ {
		_, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
		require.NoError(b, err, "Could not generate Merkle trie from items")
	}
}

func BenchmarkInsertTrie_Optimized(b *testing.B) {
	b.StopTimer()
	numDeposits := 16000
	items := make([][]byte, numDeposits)
	for i := 0; i < numDeposits; i++ {
		someRoot := hash.Hash([]byte(strconv.Itoa(i)))
		items[i] = someRoot[:]
	}
	tr, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
	require.NoError(b, err)

	someItem := hash.Hash([]byte("hello-world"))
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		require.NoError(b, tr.Insert(someItem[:], i%numDeposits))
	}
}
