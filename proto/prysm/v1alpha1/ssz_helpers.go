package eth

import (
	"errors"

	ssz "github.com/ferranbt/fastssz"
)

var errInvalidBool = errors.New("ssz: invalid boolean encoding")

func marshalBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func unmarshalBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errInvalidBool
	}
}

// divideList returns the element count of a list of fixed size items.
func divideList(length, itemSize, maxItems int) (int, error) {
	if length%itemSize != 0 {
		return 0, ssz.ErrSize
	}
	num := length / itemSize
	if num > maxItems {
		return 0, ssz.ErrIncorrectListSize
	}
	return num, nil
}

// unmarshalDynamicList walks the offset table of a list of variable size
// items and hands each item's bytes to fn.
func unmarshalDynamicList(buf []byte, maxItems int, fn func(indx int, buf []byte) error) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	if len(buf) < 4 {
		return 0, ssz.ErrOffset
	}
	first := ssz.ReadOffset(buf[0:4])
	if first%4 != 0 || first == 0 || first > uint64(len(buf)) {
		return 0, ssz.ErrOffset
	}
	num := int(first / 4)
	if num > maxItems {
		return 0, ssz.ErrIncorrectListSize
	}
	offsets := make([]uint64, num+1)
	offsets[0] = first
	for i := 1; i < num; i++ {
		offsets[i] = ssz.ReadOffset(buf[i*4 : (i+1)*4])
		if offsets[i] < offsets[i-1] || offsets[i] > uint64(len(buf)) {
			return 0, ssz.ErrOffset
		}
	}
	offsets[num] = uint64(len(buf))
	for i := 0; i < num; i++ {
		if err := fn(i, buf[offsets[i]:offsets[i+1]]); err != nil {
			return 0, err
		}
	}
	return num, nil
}

// packedUint64Limit converts a list limit in uint64 items to a chunk limit.
func packedUint64Limit(maxItems uint64) uint64 {
	return (maxItems*8 + 31) / 32
}

func orEmptyAttestationData(v *AttestationData) *AttestationData {
	if v == nil {
		return new(AttestationData)
	}
	return v
}

func orEmptyAttesterSlashing(v *AttesterSlashing) *AttesterSlashing {
	if v == nil {
		return new(AttesterSlashing)
	}
	return v
}

func orEmptyBeaconBlock(v *BeaconBlock) *BeaconBlock {
	if v == nil {
		return new(BeaconBlock)
	}
	return v
}

func orEmptyBeaconBlockBody(v *BeaconBlockBody) *BeaconBlockBody {
	if v == nil {
		return new(BeaconBlockBody)
	}
	return v
}

func orEmptyBeaconBlockHeader(v *BeaconBlockHeader) *BeaconBlockHeader {
	if v == nil {
		return new(BeaconBlockHeader)
	}
	return v
}

func orEmptyCheckpoint(v *Checkpoint) *Checkpoint {
	if v == nil {
		return new(Checkpoint)
	}
	return v
}

func orEmptyDeposit(v *Deposit) *Deposit {
	if v == nil {
		return new(Deposit)
	}
	return v
}

func orEmptyDepositData(v *DepositData) *DepositData {
	if v == nil {
		return new(DepositData)
	}
	return v
}

func orEmptyEth1Data(v *Eth1Data) *Eth1Data {
	if v == nil {
		return new(Eth1Data)
	}
	return v
}

func orEmptyFork(v *Fork) *Fork {
	if v == nil {
		return new(Fork)
	}
	return v
}

func orEmptyIndexedAttestation(v *IndexedAttestation) *IndexedAttestation {
	if v == nil {
		return new(IndexedAttestation)
	}
	return v
}

func orEmptySignedTransfer(v *SignedTransfer) *SignedTransfer {
	if v == nil {
		return new(SignedTransfer)
	}
	return v
}

func orEmptySignedVoluntaryExit(v *SignedVoluntaryExit) *SignedVoluntaryExit {
	if v == nil {
		return new(SignedVoluntaryExit)
	}
	return v
}

func orEmptyTransfer(v *Transfer) *Transfer {
	if v == nil {
		return new(Transfer)
	}
	return v
}

func orEmptyValidator(v *Validator) *Validator {
	if v == nil {
		return new(Validator)
	}
	return v
}

func orEmptyVoluntaryExit(v *VoluntaryExit) *VoluntaryExit {
	if v == nil {
		return new(VoluntaryExit)
	}
	return v
}
