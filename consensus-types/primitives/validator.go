package primitives

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// Gwei is the denomination of validator balances.
type Gwei uint64

// DomainType is the 4 byte tag mixed into signed messages.
type DomainType [4]byte
