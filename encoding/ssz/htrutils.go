package ssz

import (
	"encoding/binary"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
)

// Uint64Root computes the HashTreeRoot Merkleization of
// a simple uint64 value according to the Ethereum
// Simple Serialize specification.
func Uint64Root(val uint64) [32]byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, val)
	root := bytesutil.ToBytes32(buf)
	return root
}

// MixInLength takes a root and a length and mixes the little endian length
// into the root, as done for the roots of SSZ lists.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var chunks [64]byte
	copy(chunks[:32], root[:])
	binary.LittleEndian.PutUint64(chunks[32:40], length)
	return hash.Hash(chunks[:])
}
