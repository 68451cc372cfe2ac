package eth

import (
	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
)

// BeaconBlockHeader summarizes a block by the root of its body.
type BeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// BeaconBlockBody carries the operations of a block.
type BeaconBlockBody struct {
	RandaoReveal      [96]byte
	Eth1Data          *Eth1Data
	Graffiti          [32]byte
	AttesterSlashings []*AttesterSlashing
	Deposits          []*Deposit
	VoluntaryExits    []*SignedVoluntaryExit
	Transfers         []*SignedTransfer
}

// BeaconBlock is an unsigned beacon block.
type BeaconBlock struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	Body          *BeaconBlockBody
}

// SignedBeaconBlock is a beacon block with the proposer signature.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature [96]byte
}

// DepositMessage is the signed portion of a deposit.
type DepositMessage struct {
	PublicKey             [48]byte
	WithdrawalCredentials [32]byte
	Amount                uint64
}

// DepositData is a deposit message together with its proof of possession.
type DepositData struct {
	PublicKey             [48]byte
	WithdrawalCredentials [32]byte
	Amount                uint64
	Signature             [96]byte
}

// Deposit is a deposit contract entry with its merkle branch and index.
type Deposit struct {
	Proof [fieldparams.DepositProofLength][32]byte
	Index uint64
	Data  *DepositData
}

// VoluntaryExit is a validator's request to leave the registry.
type VoluntaryExit struct {
	Epoch          primitives.Epoch
	ValidatorIndex primitives.ValidatorIndex
}

// SignedVoluntaryExit is a voluntary exit signed by the exiting validator.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit
	Signature [96]byte
}

// Transfer moves balance between two validators.
type Transfer struct {
	Sender    primitives.ValidatorIndex
	Recipient primitives.ValidatorIndex
	Amount    uint64
	Fee       uint64
	Slot      primitives.Slot
	Pubkey    [48]byte
}

// SignedTransfer is a transfer signed by the key behind the sender's
// withdrawal credentials.
type SignedTransfer struct {
	Transfer  *Transfer
	Signature [96]byte
}
