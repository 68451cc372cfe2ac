package blocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/ssz"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"go.opencensus.io/trace"
)

// ProcessRandao checks the block proposer's
// randao commitment and generates a new randao mix to update
// in the beacon state's latest randao mixes slice.
//
// Spec pseudocode definition:
//
//	def process_randao(state: BeaconState, body: BeaconBlockBody) -> None:
//	  epoch = get_current_epoch(state)
//	  # Verify RANDAO reveal
//	  proposer = state.validators[get_beacon_proposer_index(state)]
//	  signing_root = compute_signing_root(epoch, get_domain(state, DOMAIN_RANDAO))
//	  assert bls.Verify(proposer.pubkey, signing_root, body.randao_reveal)
//	  # Mix in RANDAO reveal
//	  mix = xor(get_randao_mix(state, epoch), hash(body.randao_reveal))
//	  state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR] = mix
func ProcessRandao(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	b *ethpb.SignedBeaconBlock,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessRandao")
	defer span.End()

	if err := VerifyNilBeaconBlock(b); err != nil {
		return nil, err
	}
	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	body := b.Block.Body
	buf, proposerPub, domain, err := randaoSigningData(beaconState)
	if err != nil {
		return nil, err
	}
	if err := verifyRandaoReveal(buf, proposerPub, body.RandaoReveal[:], domain); err != nil {
		return nil, errors.Wrap(err, "could not verify block randao")
	}

	beaconState, err = ProcessRandaoNoVerify(ctx, beaconState, body.RandaoReveal[:])
	if err != nil {
		return nil, errors.Wrap(err, "could not process randao")
	}
	return beaconState, nil
}

// ProcessRandaoNoVerify generates a new randao mix to update
// in the beacon state's latest randao mixes slice.
//
// Spec pseudocode definition:
//
//	# Mix it in
//	state.latest_randao_mixes[get_current_epoch(state) % LATEST_RANDAO_MIXES_LENGTH] = (
//	    xor(get_randao_mix(state, get_current_epoch(state)),
//	        hash(body.randao_reveal))
//	)
func ProcessRandaoNoVerify(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	randaoReveal []byte,
) (*ethpb.BeaconState, error) {
	_, span := trace.StartSpan(ctx, "core.ProcessRandaoNoVerify")
	defer span.End()

	currentEpoch := helpers.CurrentEpoch(beaconState)
	// If block randao passed verification, we XOR the state's latest randao mix with the block's
	// randao and update the state's corresponding latest randao mix value.
	latestMixesLength := params.BeaconConfig().EpochsPerHistoricalVector
	latestMixSlice := helpers.RandaoMix(beaconState, currentEpoch)
	blockRandaoReveal := hash.Hash(randaoReveal)
	beaconState.RandaoMixes[uint64(currentEpoch%latestMixesLength)%uint64(len(beaconState.RandaoMixes))] = bytesutil.Xor32(latestMixSlice, blockRandaoReveal)
	return beaconState, nil
}

// randaoSigningData returns the data needed to verify the reveal of the current proposer.
func randaoSigningData(beaconState *ethpb.BeaconState) ([32]byte, []byte, []byte, error) {
	proposerIdx, err := helpers.BeaconProposerIndex(beaconState)
	if err != nil {
		return [32]byte{}, nil, nil, errors.Wrap(err, "could not get beacon proposer index")
	}
	proposer, err := validatorAtIndex(beaconState, uint64(proposerIdx))
	if err != nil {
		return [32]byte{}, nil, nil, err
	}

	currentEpoch := helpers.CurrentEpoch(beaconState)
	domain, err := signing.CurrentDomain(beaconState, params.BeaconConfig().DomainRandao)
	if err != nil {
		return [32]byte{}, nil, nil, err
	}
	return ssz.Uint64Root(uint64(currentEpoch)), proposer.PublicKey[:], domain, nil
}

func verifyRandaoReveal(epochRoot [32]byte, pub, reveal, domain []byte) error {
	publicKey, err := bls.PublicKeyFromBytes(pub)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to public key")
	}
	sig, err := bls.SignatureFromBytes(reveal)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to signature")
	}
	root, err := signing.ComputeSigningRootForRoot(epochRoot, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !sig.Verify(publicKey, root[:]) {
		return signing.ErrSigFailedToVerify
	}
	return nil
}
