package blst_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls/blst"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls/common"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestPublicKeyFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{
			name: "Nil",
			err:  errors.New("public key must be 48 bytes"),
		},
		{
			name:  "Empty",
			input: []byte{},
			err:   errors.New("public key must be 48 bytes"),
		},
		{
			name:  "Short",
			input: []byte{0x01, 0x02, 0x03},
			err:   errors.New("public key must be 48 bytes"),
		},
		{
			name:  "Long",
			input: make([]byte, 49),
			err:   errors.New("public key must be 48 bytes"),
		},
		{
			name:  "Bad",
			input: bytes.Repeat([]byte{0x01}, 48),
			err:   errors.New("could not unmarshal bytes into public key"),
		},
		{
			name:  "Infinite",
			input: common.InfinitePublicKey[:],
			err:   common.ErrInfinitePubKey,
		},
		{
			name:  "Good",
			input: []byte{0xa9, 0x9a, 0x76, 0xed, 0x77, 0x96, 0xf7, 0xbe, 0x22, 0xd5, 0xb7, 0xe8, 0x5d, 0xee, 0xb7, 0xc5, 0x67, 0x7e, 0x88, 0xe5, 0x11, 0xe0, 0xb3, 0x37, 0x61, 0x8f, 0x8c, 0x4e, 0xb6, 0x13, 0x49, 0xb4, 0xbf, 0x2d, 0x15, 0x3f, 0x64, 0x9f, 0x7b, 0x53, 0x35, 0x9f, 0xe8, 0xb9, 0x4a, 0x38, 0xe4, 0x4c},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := blst.PublicKeyFromBytes(test.input)
			if test.err != nil {
				assert.ErrorContains(t, test.err.Error(), err)
			} else {
				assert.NoError(t, err)
				assert.DeepEqual(t, 0, bytes.Compare(res.Marshal(), test.input))
			}
		})
	}
}

func TestPublicKey_Copy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyA := priv.PublicKey()
	pubkeyBytes := pubkeyA.Marshal()

	pubkeyB := pubkeyA.Copy()
	priv2, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyB.Aggregate(priv2.PublicKey())
	require.DeepEqual(t, pubkeyA.Marshal(), pubkeyBytes, "Pubkey was mutated after copy")
}

func TestPublicKey_Equals(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub, err := blst.PublicKeyFromBytes(priv.PublicKey().Marshal())
	require.NoError(t, err)
	assert.Equal(t, true, pub.Equals(priv.PublicKey()))
	priv2, err := blst.RandKey()
	require.NoError(t, err)
	assert.Equal(t, false, pub.Equals(priv2.PublicKey()))
}

func TestPublicKeyFromBytes_CachedCopy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	raw := priv.PublicKey().Marshal()
	first, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	priv2, err := blst.RandKey()
	require.NoError(t, err)
	first.Aggregate(priv2.PublicKey())

	second, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.DeepEqual(t, raw, second.Marshal())
}

func TestAggregatePublicKeys(t *testing.T) {
	var raw [][]byte
	var agg common.PublicKey
	for i := 0; i < 4; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		raw = append(raw, priv.PublicKey().Marshal())
		if agg == nil {
			agg = priv.PublicKey().Copy()
		} else {
			agg = agg.Aggregate(priv.PublicKey())
		}
	}
	res, err := blst.AggregatePublicKeys(raw)
	require.NoError(t, err)
	assert.DeepEqual(t, agg.Marshal(), res.Marshal())
}
