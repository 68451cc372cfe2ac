package eth

// Copier is implemented by every object that can produce an independent deep copy.
type Copier[T any] interface {
	Copy() T
}

// Copy returns a deep copy of the fork.
func (f *Fork) Copy() *Fork {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

// Copy returns a deep copy of the validator.
func (v *Validator) Copy() *Validator {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// Copy returns a deep copy of the eth1 data.
func (e *Eth1Data) Copy() *Eth1Data {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// Copy returns a deep copy of the block header.
func (b *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

// Copy returns a deep copy of the checkpoint.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Copy returns a deep copy of the attestation data.
func (a *AttestationData) Copy() *AttestationData {
	if a == nil {
		return nil
	}
	return &AttestationData{
		Slot:            a.Slot,
		CommitteeIndex:  a.CommitteeIndex,
		BeaconBlockRoot: a.BeaconBlockRoot,
		Source:          a.Source.Copy(),
		Target:          a.Target.Copy(),
	}
}

// Copy returns a deep copy of the indexed attestation.
func (i *IndexedAttestation) Copy() *IndexedAttestation {
	if i == nil {
		return nil
	}
	return &IndexedAttestation{
		AttestingIndices: copyUint64s(i.AttestingIndices),
		Data:             i.Data.Copy(),
		Signature:        i.Signature,
	}
}

// Copy returns a deep copy of the attester slashing.
func (a *AttesterSlashing) Copy() *AttesterSlashing {
	if a == nil {
		return nil
	}
	return &AttesterSlashing{
		Attestation_1: a.Attestation_1.Copy(),
		Attestation_2: a.Attestation_2.Copy(),
	}
}

// Copy returns a deep copy of the deposit data.
func (d *DepositData) Copy() *DepositData {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

// Copy returns a deep copy of the deposit.
func (d *Deposit) Copy() *Deposit {
	if d == nil {
		return nil
	}
	return &Deposit{
		Proof: d.Proof,
		Index: d.Index,
		Data:  d.Data.Copy(),
	}
}

// Copy returns a deep copy of the voluntary exit.
func (v *VoluntaryExit) Copy() *VoluntaryExit {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// Copy returns a deep copy of the signed voluntary exit.
func (s *SignedVoluntaryExit) Copy() *SignedVoluntaryExit {
	if s == nil {
		return nil
	}
	return &SignedVoluntaryExit{
		Exit:      s.Exit.Copy(),
		Signature: s.Signature,
	}
}

// Copy returns a deep copy of the transfer.
func (t *Transfer) Copy() *Transfer {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// Copy returns a deep copy of the signed transfer.
func (s *SignedTransfer) Copy() *SignedTransfer {
	if s == nil {
		return nil
	}
	return &SignedTransfer{
		Transfer:  s.Transfer.Copy(),
		Signature: s.Signature,
	}
}

// Copy returns a deep copy of the block body.
func (b *BeaconBlockBody) Copy() *BeaconBlockBody {
	if b == nil {
		return nil
	}
	return &BeaconBlockBody{
		RandaoReveal:      b.RandaoReveal,
		Eth1Data:          b.Eth1Data.Copy(),
		Graffiti:          b.Graffiti,
		AttesterSlashings: copySlice(b.AttesterSlashings),
		Deposits:          copySlice(b.Deposits),
		VoluntaryExits:    copySlice(b.VoluntaryExits),
		Transfers:         copySlice(b.Transfers),
	}
}

// Copy returns a deep copy of the block.
func (b *BeaconBlock) Copy() *BeaconBlock {
	if b == nil {
		return nil
	}
	return &BeaconBlock{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		StateRoot:     b.StateRoot,
		Body:          b.Body.Copy(),
	}
}

// Copy returns a deep copy of the signed block.
func (s *SignedBeaconBlock) Copy() *SignedBeaconBlock {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlock{
		Block:     s.Block.Copy(),
		Signature: s.Signature,
	}
}

// Copy returns a deep copy of the beacon state. Fixed size vectors are
// arrays and copy by value.
func (b *BeaconState) Copy() *BeaconState {
	if b == nil {
		return nil
	}
	return &BeaconState{
		GenesisTime:           b.GenesisTime,
		GenesisValidatorsRoot: b.GenesisValidatorsRoot,
		Slot:                  b.Slot,
		Fork:                  b.Fork.Copy(),
		LatestBlockHeader:     b.LatestBlockHeader.Copy(),
		BlockRoots:            b.BlockRoots,
		StateRoots:            b.StateRoots,
		Eth1Data:              b.Eth1Data.Copy(),
		Eth1DepositIndex:      b.Eth1DepositIndex,
		Validators:            copySlice(b.Validators),
		Balances:              copyUint64s(b.Balances),
		RandaoMixes:           b.RandaoMixes,
		Slashings:             b.Slashings,
	}
}

func copySlice[T Copier[T]](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	for i := range src {
		dst[i] = src[i].Copy()
	}
	return dst
}

func copyUint64s(src []uint64) []uint64 {
	if src == nil {
		return nil
	}
	dst := make([]uint64, len(src))
	copy(dst, src)
	return dst
}
