package corpus_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		label string
		want  corpus.Kind
	}{
		{label: "VoluntaryExit", want: corpus.VoluntaryExit},
		{label: "blockheader", want: corpus.BlockHeader},
		{label: "ATTESTERSLASHING", want: corpus.AttesterSlashing},
		{label: "Deposit", want: corpus.Deposit},
		{label: "randao", want: corpus.Randao},
		{label: "Transfer", want: corpus.Transfer},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			k, err := corpus.ParseKind(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}
	_, err := corpus.ParseKind("Block")
	assert.ErrorContains(t, `unknown operation kind "Block"`, err)
}

func TestKind_String(t *testing.T) {
	for _, k := range corpus.AllKinds {
		parsed, err := corpus.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Kind(9)", corpus.Kind(9).String())
}

func TestNewObject(t *testing.T) {
	obj, err := corpus.NewObject(corpus.Randao)
	require.NoError(t, err)
	_, ok := obj.(*ethpb.SignedBeaconBlock)
	assert.Equal(t, true, ok)

	_, err = corpus.NewObject(corpus.Kind(-1))
	assert.ErrorContains(t, "unknown operation kind", err)
}

func TestDecode_Truncated(t *testing.T) {
	g, _ := newGenerator(t)
	for _, k := range corpus.AllKinds {
		op, err := g.Generate(context.Background(), k)
		require.NoError(t, err)
		enc, err := op.Encode()
		require.NoError(t, err)
		_, err = corpus.Decode(k, enc[:len(enc)-1])
		assert.ErrorContains(t, "could not decode "+k.String(), err)
	}
}

func TestOperation_EncodeNil(t *testing.T) {
	var op *corpus.Operation
	_, err := op.Encode()
	assert.ErrorContains(t, "nil operation", err)
	_, err = (&corpus.Operation{Kind: corpus.Deposit}).Encode()
	assert.ErrorContains(t, "nil operation", err)
}

func TestBuild_ReturnsIndependentCopy(t *testing.T) {
	b := corpus.NewVoluntaryExitBuilder(5, 3)
	op := b.Build()
	op.Object.(*ethpb.SignedVoluntaryExit).Exit.Epoch = 7
	assert.Equal(t, primitives.Epoch(5), b.Build().Object.(*ethpb.SignedVoluntaryExit).Exit.Epoch)
}
