package field_params

const (
	Preset                    = "minimal"
	BlockRootsLength          = 64            // SLOTS_PER_HISTORICAL_ROOT
	StateRootsLength          = 64            // SLOTS_PER_HISTORICAL_ROOT
	RandaoMixesLength         = 64            // EPOCHS_PER_HISTORICAL_VECTOR
	ValidatorRegistryLimit    = 1099511627776 // VALIDATOR_REGISTRY_LIMIT
	SlashingsLength           = 64            // EPOCHS_PER_SLASHINGS_VECTOR
	RootLength                = 32            // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength        = 96            // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength           = 48            // BLSPubkeyLength defines the byte length of a BLSPubkey.
	BLSSecretKeyLength        = 32            // BLSSecretKeyLength defines the byte length of a BLS secret key.
	VersionLength             = 4             // VersionLength defines the byte length of a fork version number.
	DomainLength              = 32            // DomainLength defines the byte length of a signature domain.
	GraffitiLength            = 32            // GraffitiLength defines the byte length of block graffiti.
	DepositProofLength        = 33            // DEPOSIT_CONTRACT_TREE_DEPTH + 1
	MaxValidatorsPerCommittee = 2048          // MAX_VALIDATORS_PER_COMMITTEE
	MaxAttesterSlashings      = 2             // MAX_ATTESTER_SLASHINGS
	MaxDeposits               = 16            // MAX_DEPOSITS
	MaxVoluntaryExits         = 16            // MAX_VOLUNTARY_EXITS
	MaxTransfers              = 16            // MAX_TRANSFERS
	SlotsPerEpoch             = 8             // SlotsPerEpoch defines the number of slots per epoch.
)
