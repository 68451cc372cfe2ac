// Package testing loads and writes the fixtures the corpus generator starts
// from: a pre-built beacon state and the deterministic validator keypairs.
package testing

import (
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"gopkg.in/yaml.v2"
)

// ErrNotEnoughKeypairs is returned when a keypair fixture holds fewer keys
// than the generator needs.
var ErrNotEnoughKeypairs = errors.New("not enough keypairs in fixture")

// Keypair is a validator secret key along with its public key. The position
// of a keypair in a fixture is the index of the validator it belongs to.
type Keypair struct {
	SecretKey bls.SecretKey
	PublicKey bls.PublicKey
}

type keypairYaml struct {
	Privkey string `yaml:"privkey"`
	Pubkey  string `yaml:"pubkey,omitempty"`
}

// LoadKeypairs reads a YAML keypair fixture from disk.
func LoadKeypairs(path string) ([]*Keypair, error) {
	enc, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "could not read keypairs file %s", path)
	}
	kps, err := ParseKeypairs(enc)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse keypairs file %s", path)
	}
	log.WithField("count", len(kps)).Debug("Loaded keypairs")
	return kps, nil
}

// ParseKeypairs decodes a YAML list of 0x-prefixed secret keys. When a public
// key is present it has to match the one derived from the secret key.
func ParseKeypairs(enc []byte) ([]*Keypair, error) {
	var entries []keypairYaml
	if err := yaml.Unmarshal(enc, &entries); err != nil {
		return nil, err
	}
	kps := make([]*Keypair, len(entries))
	for i, entry := range entries {
		raw, err := hexutil.Decode(entry.Privkey)
		if err != nil {
			return nil, errors.Wrapf(err, "keypair %d", i)
		}
		sk, err := bls.SecretKeyFromBytes(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "keypair %d", i)
		}
		pk := sk.PublicKey()
		if entry.Pubkey != "" {
			want, err := hexutil.Decode(entry.Pubkey)
			if err != nil {
				return nil, errors.Wrapf(err, "keypair %d", i)
			}
			if hexutil.Encode(pk.Marshal()) != hexutil.Encode(want) {
				return nil, errors.Errorf("keypair %d: public key %s does not match secret key", i, entry.Pubkey)
			}
		}
		kps[i] = &Keypair{SecretKey: sk, PublicKey: pk}
	}
	return kps, nil
}

// MarshalKeypairs encodes keypairs in the fixture format read by ParseKeypairs.
func MarshalKeypairs(kps []*Keypair) ([]byte, error) {
	entries := make([]keypairYaml, len(kps))
	for i, kp := range kps {
		if kp == nil || kp.SecretKey == nil {
			return nil, errors.Errorf("keypair %d is empty", i)
		}
		entries[i] = keypairYaml{
			Privkey: hexutil.Encode(kp.SecretKey.Marshal()),
			Pubkey:  hexutil.Encode(kp.SecretKey.PublicKey().Marshal()),
		}
	}
	return yaml.Marshal(entries)
}

// WriteKeypairs writes keypairs to a YAML fixture file.
func WriteKeypairs(path string, kps []*Keypair) error {
	enc, err := MarshalKeypairs(kps)
	if err != nil {
		return err
	}
	return os.WriteFile(path, enc, 0600)
}

// RequireKeypairs checks that kps covers n validator indices.
func RequireKeypairs(kps []*Keypair, n int) error {
	if len(kps) < n {
		return errors.Wrapf(ErrNotEnoughKeypairs, "have %d, need %d", len(kps), n)
	}
	return nil
}

// KeypairsFromKeys pairs each secret key with its public key.
func KeypairsFromKeys(sks []bls.SecretKey) []*Keypair {
	kps := make([]*Keypair, len(sks))
	for i, sk := range sks {
		kps[i] = &Keypair{SecretKey: sk, PublicKey: sk.PublicKey()}
	}
	return kps
}
