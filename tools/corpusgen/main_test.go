package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func run(t *testing.T, args ...string) string {
	out := new(bytes.Buffer)
	require.NoError(t, newApp(out).Run(append([]string{"corpusgen"}, args...)))
	return out.String()
}

func TestGenerate_AllKinds(t *testing.T) {
	out := run(t, "generate")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, len(corpus.AllKinds), len(lines))
	for i, k := range corpus.AllKinds {
		assert.Equal(t, true, strings.HasPrefix(lines[i], k.String()+" "))
	}
}

func TestGenerate_FromFixtureFiles(t *testing.T) {
	dir := t.TempDir()
	run(t, "fixtures", "--out-dir", dir, "--snappy")
	corpusDir := t.TempDir()
	out := run(t, "generate",
		"--kind", "deposit", "--kind", "transfer",
		"--state-file", filepath.Join(dir, "state"+fuzztesting.SnappySuffix),
		"--keypairs-file", filepath.Join(dir, fuzztesting.KeypairsFileName),
		"--corpus-dir", corpusDir,
	)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, 2, len(lines))
	assert.Equal(t, true, strings.HasPrefix(lines[0], "Deposit "))
	assert.Equal(t, true, strings.HasPrefix(lines[1], "Transfer "))

	files, err := filepath.Glob(filepath.Join(corpusDir, "*", "*"))
	require.NoError(t, err)
	assert.Equal(t, 2, len(files))
}

func TestPrettyAndVerify(t *testing.T) {
	line := strings.TrimSpace(run(t, "generate", "--kind", "VoluntaryExit"))
	hexEntry := strings.TrimPrefix(line, "VoluntaryExit ")

	out := run(t, "pretty", "--kind", "VoluntaryExit", "--hex", hexEntry)
	assert.Equal(t, true, strings.Contains(out, "ValidatorIndex"))

	out = run(t, "verify", "--kind", "voluntaryexit", "--hex", "0x"+hexEntry)
	assert.Equal(t, "VoluntaryExit entry of 112 bytes round trips\n", out)
}

func TestVerify_BadHex(t *testing.T) {
	err := newApp(new(bytes.Buffer)).Run([]string{"corpusgen", "verify", "--kind", "Deposit", "--hex", "zz"})
	assert.ErrorContains(t, "could not decode hex", err)
}

func TestGenerate_UnknownKind(t *testing.T) {
	err := newApp(new(bytes.Buffer)).Run([]string{"corpusgen", "generate", "--kind", "Block"})
	assert.ErrorContains(t, "unknown operation kind", err)
}

func TestBefore_BadVerbosity(t *testing.T) {
	err := newApp(new(bytes.Buffer)).Run([]string{"corpusgen", "--verbosity", "loud", "generate"})
	assert.NotNil(t, err)
}

func TestLoadInputs_StateFileWithoutKeypairs(t *testing.T) {
	_, _, err := loadInputs(context.Background(), corpus.DefaultConfig(), "state.ssz", "")
	assert.ErrorContains(t, "must be given together", err)
}

func TestVerifyRoundTrip_Mismatch(t *testing.T) {
	op := &corpus.Operation{
		Kind:   corpus.VoluntaryExit,
		Object: &ethpb.SignedVoluntaryExit{Exit: &ethpb.VoluntaryExit{Epoch: 3}},
	}
	enc, err := op.Encode()
	require.NoError(t, err)
	enc[0] = 4
	err = verifyRoundTrip(op, enc)
	assert.ErrorContains(t, "does not round trip", err)
}
