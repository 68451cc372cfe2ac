package trie

import "github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"

// ZeroHashes is a precomputed table of the roots of empty subtrees, indexed
// by subtree depth.
var ZeroHashes [100][32]byte

func init() {
	for i := 1; i < len(ZeroHashes); i++ {
		ZeroHashes[i] = hash.Hash(append(ZeroHashes[i-1][:], ZeroHashes[i-1][:]...))
	}
}
