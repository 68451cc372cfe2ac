// Package corpus synthesizes valid beacon chain operations, checks them
// against the state transition and emits their SSZ encoding as seed inputs
// for fuzzers.
package corpus

import (
	"fmt"
	"strings"

	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// Kind identifies one of the operations the generator produces.
type Kind int

const (
	VoluntaryExit Kind = iota
	BlockHeader
	AttesterSlashing
	Deposit
	Randao
	Transfer
)

// AllKinds lists every kind in generation order.
var AllKinds = []Kind{VoluntaryExit, BlockHeader, AttesterSlashing, Deposit, Randao, Transfer}

// String returns the label written in front of each emitted corpus entry.
func (k Kind) String() string {
	switch k {
	case VoluntaryExit:
		return "VoluntaryExit"
	case BlockHeader:
		return "BlockHeader"
	case AttesterSlashing:
		return "AttesterSlashing"
	case Deposit:
		return "Deposit"
	case Randao:
		return "Randao"
	case Transfer:
		return "Transfer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a label, case insensitive, into its kind.
func ParseKind(label string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(k.String(), label) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown operation kind %q", label)
}

// Object is an SSZ encodable protocol object.
type Object interface {
	ssz.Marshaler
	ssz.Unmarshaler
	ssz.HashRoot
}

// Operation is a built and signed protocol object tagged with its kind.
type Operation struct {
	Kind   Kind
	Object Object
}

// NewObject returns an empty object of the type carried by operations of kind k.
func NewObject(k Kind) (Object, error) {
	switch k {
	case VoluntaryExit:
		return &ethpb.SignedVoluntaryExit{}, nil
	case BlockHeader, Randao:
		return &ethpb.SignedBeaconBlock{}, nil
	case AttesterSlashing:
		return &ethpb.AttesterSlashing{}, nil
	case Deposit:
		return &ethpb.Deposit{}, nil
	case Transfer:
		return &ethpb.SignedTransfer{}, nil
	default:
		return nil, fmt.Errorf("unknown operation kind %d", int(k))
	}
}

// Decode unmarshals enc into an operation of kind k.
func Decode(k Kind, enc []byte) (*Operation, error) {
	obj, err := NewObject(k)
	if err != nil {
		return nil, err
	}
	if err := obj.UnmarshalSSZ(enc); err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", k)
	}
	return &Operation{Kind: k, Object: obj}, nil
}

// Encode returns the SSZ encoding of the operation.
func (o *Operation) Encode() ([]byte, error) {
	if o == nil || o.Object == nil {
		return nil, errors.New("nil operation")
	}
	return o.Object.MarshalSSZ()
}

func (o *Operation) voluntaryExit() (*ethpb.SignedVoluntaryExit, bool) {
	obj, ok := o.Object.(*ethpb.SignedVoluntaryExit)
	return obj, ok
}

func (o *Operation) block() (*ethpb.SignedBeaconBlock, bool) {
	obj, ok := o.Object.(*ethpb.SignedBeaconBlock)
	return obj, ok
}

func (o *Operation) attesterSlashing() (*ethpb.AttesterSlashing, bool) {
	obj, ok := o.Object.(*ethpb.AttesterSlashing)
	return obj, ok
}

func (o *Operation) deposit() (*ethpb.Deposit, bool) {
	obj, ok := o.Object.(*ethpb.Deposit)
	return obj, ok
}

func (o *Operation) transfer() (*ethpb.SignedTransfer, bool) {
	obj, ok := o.Object.(*ethpb.SignedTransfer)
	return obj, ok
}
