package interop

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/ssz"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "interop")

// MockEth1BlockHash is the eth1 block hash the interop genesis is anchored to.
var MockEth1BlockHash = bytesutil.ToBytes32([]byte{
	66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66,
	66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66, 66,
})

// GenerateGenesisState deterministically given a genesis time and number of validators.
// If a genesis time of 0 is supplied it is set to the current time.
func GenerateGenesisState(ctx context.Context, genesisTime, numValidators uint64) (*ethpb.BeaconState, []*ethpb.Deposit, error) {
	privKeys, pubKeys, err := DeterministicallyGenerateKeys(0 /*startIndex*/, numValidators)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not deterministically generate keys for %d validators", numValidators)
	}
	depositDataItems, depositDataRoots, err := DepositDataFromKeys(privKeys, pubKeys)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not generate deposit data from keys")
	}
	t, err := trie.GenerateTrieFromItems(depositDataRoots, params.BeaconConfig().DepositContractTreeDepth)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not generate Merkle trie for deposit proofs")
	}
	deposits, err := GenerateDepositsFromData(depositDataItems, t)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not generate deposits from the deposit data provided")
	}
	root, err := t.HashTreeRoot()
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not hash tree root of deposit trie")
	}
	beaconState, err := GenesisBeaconState(ctx, deposits, genesisTime, &ethpb.Eth1Data{
		DepositRoot:  root,
		DepositCount: uint64(len(deposits)),
		BlockHash:    MockEth1BlockHash,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not generate genesis state")
	}
	log.WithField("numValidators", numValidators).Debug("Generated interop genesis state")
	return beaconState, deposits, nil
}

// GenesisBeaconState gets called when MinGenesisActiveValidatorCount count of
// full deposits were made to the deposit contract and the ChainStart log gets emitted.
//
// Spec pseudocode definition:
//
//	def initialize_beacon_state_from_eth1(eth1_block_hash: Bytes32,
//	                                    eth1_timestamp: uint64,
//	                                    deposits: Sequence[Deposit]) -> BeaconState:
//	  state = BeaconState(
//	      genesis_time=eth1_timestamp + GENESIS_DELAY,
//	      eth1_data=Eth1Data(block_hash=eth1_block_hash, deposit_count=len(deposits)),
//	      latest_block_header=BeaconBlockHeader(body_root=hash_tree_root(BeaconBlockBody())),
//	      randao_mixes=[eth1_block_hash] * EPOCHS_PER_HISTORICAL_VECTOR,  # Seed RANDAO with Eth1 entropy
//	  )
//
//	  # Process deposits
//	  for index, deposit in enumerate(deposits):
//	      process_deposit(state, deposit)
//
//	  # Process activations
//	  for index, validator in enumerate(state.validators):
//	      if validator.effective_balance == MAX_EFFECTIVE_BALANCE:
//	          validator.activation_eligibility_epoch = GENESIS_EPOCH
//	          validator.activation_epoch = GENESIS_EPOCH
//
//	  # Set genesis validators root for domain separation and chain versioning
//	  state.genesis_validators_root = hash_tree_root(state.validators)
//
//	  return state
func GenesisBeaconState(ctx context.Context, deposits []*ethpb.Deposit, genesisTime uint64, eth1Data *ethpb.Eth1Data) (*ethpb.BeaconState, error) {
	if eth1Data == nil {
		return nil, errors.New("no eth1data provided for genesis state")
	}
	bodyRoot, err := (&ethpb.BeaconBlockBody{Eth1Data: &ethpb.Eth1Data{}}).HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash tree root empty block body")
	}
	genesisForkVersion := bytesutil.ToBytes4(params.BeaconConfig().GenesisForkVersion)
	st := &ethpb.BeaconState{
		GenesisTime: genesisTime,
		Slot:        params.BeaconConfig().GenesisSlot,
		Fork: &ethpb.Fork{
			PreviousVersion: genesisForkVersion,
			CurrentVersion:  genesisForkVersion,
			Epoch:           params.BeaconConfig().GenesisEpoch,
		},
		LatestBlockHeader: &ethpb.BeaconBlockHeader{BodyRoot: bodyRoot},
		Eth1Data:          eth1Data.Copy(),
		Validators:        []*ethpb.Validator{},
		Balances:          []uint64{},
	}
	for i := range st.RandaoMixes {
		st.RandaoMixes[i] = eth1Data.BlockHash
	}

	for i, deposit := range deposits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st, err = blocks.ProcessDeposit(st, deposit, true)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process genesis deposit %d", i)
		}
	}

	for _, v := range st.Validators {
		if v.EffectiveBalance == params.BeaconConfig().MaxEffectiveBalance {
			v.ActivationEligibilityEpoch = params.BeaconConfig().GenesisEpoch
			v.ActivationEpoch = params.BeaconConfig().GenesisEpoch
		}
	}

	st.GenesisValidatorsRoot, err = ssz.MerkleizeListSSZ(st.Validators, params.BeaconConfig().ValidatorRegistryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash tree root genesis validators")
	}
	return st, nil
}

// GenerateDepositsFromData a list of deposit items by creating proofs for each of them from a sparse Merkle trie.
func GenerateDepositsFromData(depositDataItems []*ethpb.DepositData, trie *trie.SparseMerkleTrie) ([]*ethpb.Deposit, error) {
	deposits := make([]*ethpb.Deposit, len(depositDataItems))
	for i, item := range depositDataItems {
		proof, err := trie.MerkleProof(i)
		if err != nil {
			return nil, errors.Wrapf(err, "could not generate proof for deposit %d", i)
		}
		deposit := &ethpb.Deposit{
			Index: uint64(i),
			Data:  item,
		}
		for j := range deposit.Proof {
			copy(deposit.Proof[j][:], proof[j])
		}
		deposits[i] = deposit
	}
	return deposits, nil
}

// DepositDataFromKeys generates a list of deposit data items from a set of BLS validator keys.
func DepositDataFromKeys(privKeys []bls.SecretKey, pubKeys []bls.PublicKey) ([]*ethpb.DepositData, [][]byte, error) {
	if len(privKeys) != len(pubKeys) {
		return nil, nil, errors.Errorf("got %d private keys and %d public keys", len(privKeys), len(pubKeys))
	}
	dataRoots := make([][]byte, len(privKeys))
	depositDataItems := make([]*ethpb.DepositData, len(privKeys))
	for i := 0; i < len(privKeys); i++ {
		data, err := createDepositData(privKeys[i], pubKeys[i], params.BeaconConfig().MaxEffectiveBalance)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not create deposit data for key: %#x", privKeys[i].Marshal())
		}
		h, err := data.HashTreeRoot()
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not hash tree root deposit data item")
		}
		dataRoots[i] = h[:]
		depositDataItems[i] = data
	}
	return depositDataItems, dataRoots, nil
}

// Generates a deposit data item from BLS keys and signs the hash tree root of the data.
func createDepositData(privKey bls.SecretKey, pubKey bls.PublicKey, amount uint64) (*ethpb.DepositData, error) {
	depositMessage := &ethpb.DepositMessage{
		PublicKey:             bytesutil.ToBytes48(pubKey.Marshal()),
		WithdrawalCredentials: WithdrawalCredentialsHash(pubKey.Marshal()),
		Amount:                amount,
	}
	domain, err := signing.ComputeDomain(params.BeaconConfig().DomainDeposit, nil, nil)
	if err != nil {
		return nil, err
	}
	root, err := signing.ComputeSigningRoot(depositMessage, domain)
	if err != nil {
		return nil, err
	}
	return &ethpb.DepositData{
		PublicKey:             depositMessage.PublicKey,
		WithdrawalCredentials: depositMessage.WithdrawalCredentials,
		Amount:                depositMessage.Amount,
		Signature:             bytesutil.ToBytes96(privKey.Sign(root[:]).Marshal()),
	}, nil
}

// WithdrawalCredentialsHash forms a 32 byte hash of the withdrawal public
// address.
//
// The specification is as follows:
//
//	withdrawal_credentials[:1] == BLS_WITHDRAWAL_PREFIX_BYTE
//	withdrawal_credentials[1:] == hash(withdrawal_pubkey)[1:]
//
// where withdrawal_credentials is of type bytes32.
func WithdrawalCredentialsHash(pubKey []byte) [32]byte {
	h := hash.Hash(pubKey)
	h[0] = params.BeaconConfig().BLSWithdrawalPrefixByte
	return h
}
