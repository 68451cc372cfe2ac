package testing

import (
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// SnappySuffix marks state fixtures stored with snappy block compression.
const SnappySuffix = ".ssz_snappy"

// LoadState reads an SSZ encoded beacon state fixture. Files ending in
// .ssz_snappy are snappy decompressed first.
func LoadState(path string) (*ethpb.BeaconState, error) {
	enc, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "could not read state file %s", path)
	}
	if strings.HasSuffix(path, SnappySuffix) {
		enc, err = snappy.Decode(nil /*dst*/, enc)
		if err != nil {
			return nil, errors.Wrapf(err, "could not snappy decode state file %s", path)
		}
	}
	st := &ethpb.BeaconState{}
	if err := st.UnmarshalSSZ(enc); err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal state file %s", path)
	}
	log.WithField("slot", st.Slot).WithField("validators", len(st.Validators)).Debug("Loaded state fixture")
	return st, nil
}

// WriteState writes st as SSZ, snappy compressed when path ends in .ssz_snappy.
func WriteState(path string, st *ethpb.BeaconState) error {
	enc, err := st.MarshalSSZ()
	if err != nil {
		return errors.Wrap(err, "could not marshal state")
	}
	if strings.HasSuffix(path, SnappySuffix) {
		enc = snappy.Encode(nil /*dst*/, enc)
	}
	return os.WriteFile(path, enc, 0600)
}
