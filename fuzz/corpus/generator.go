package corpus

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

const (
	transferAmount = 1_000_000_000_000
	transferFee    = 10_000_000_000
)

// Config holds the parameters every generation routine shares.
type Config struct {
	// NumValidators is the size of the fixture state's validator registry.
	NumValidators uint64
	// StateEpoch is the epoch the fixture state is at.
	StateEpoch primitives.Epoch
}

// DefaultConfig matches the fixtures written by fuzztesting.WriteFixtures
// with default flags.
func DefaultConfig() Config {
	return Config{NumValidators: 8, StateEpoch: 4}
}

// StateSource returns a fresh fixture state on every call.
type StateSource func(ctx context.Context) (*ethpb.BeaconState, error)

// StaticStateSource hands out copies of st.
func StaticStateSource(st *ethpb.BeaconState) StateSource {
	return func(_ context.Context) (*ethpb.BeaconState, error) {
		if st == nil {
			return nil, errors.New("nil fixture state")
		}
		return st.Copy(), nil
	}
}

// FileStateSource decodes the state file at path on every call.
func FileStateSource(path string) StateSource {
	return func(_ context.Context) (*ethpb.BeaconState, error) {
		return fuzztesting.LoadState(path)
	}
}

// Generator produces one valid operation per kind and emits it.
type Generator struct {
	cfg       Config
	loadState StateSource
	keypairs  []*fuzztesting.Keypair
	emitter   *Emitter
}

// New returns a generator. kps must cover every validator of the fixture
// state plus the keys deposits bring in.
func New(cfg Config, loadState StateSource, kps []*fuzztesting.Keypair, emitter *Emitter) (*Generator, error) {
	if cfg.NumValidators == 0 {
		return nil, errors.New("number of validators must be positive")
	}
	if loadState == nil {
		return nil, errors.New("nil state source")
	}
	if err := fuzztesting.RequireKeypairs(kps, int(cfg.NumValidators)+fuzztesting.ExtraKeypairs); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:       cfg,
		loadState: loadState,
		keypairs:  kps,
		emitter:   emitter,
	}, nil
}

// Run generates, gates and emits an operation for each of kinds in order.
func (g *Generator) Run(ctx context.Context, kinds []Kind) error {
	if g.emitter == nil {
		return errors.New("generator has no emitter")
	}
	for _, k := range kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		op, err := g.Generate(ctx, k)
		if err != nil {
			return err
		}
		if err := g.emitter.Emit(op); err != nil {
			return err
		}
	}
	return nil
}

// Generate builds an operation of kind k against a fresh fixture state and
// returns it once the state transition has accepted it.
func (g *Generator) Generate(ctx context.Context, k Kind) (*Operation, error) {
	ctx, span := trace.StartSpan(ctx, "corpus.Generate")
	defer span.End()
	span.AddAttributes(trace.StringAttribute("kind", k.String()))

	st, err := g.freshState(ctx)
	if err != nil {
		return nil, err
	}

	var op *Operation
	switch k {
	case VoluntaryExit:
		op, err = g.voluntaryExit(st)
	case BlockHeader:
		op, err = g.blockHeader(st)
	case AttesterSlashing:
		op, err = g.attesterSlashing(st)
	case Deposit:
		op, err = g.deposit(st)
	case Randao:
		op, err = g.randao(st)
	case Transfer:
		op, err = g.transfer(st)
	default:
		return nil, fmt.Errorf("unknown operation kind %d", int(k))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not build %s", k)
	}
	if err := Accept(ctx, st, op); err != nil {
		return nil, err
	}
	log.WithField("kind", k.String()).Info("Generated valid operation")
	return op, nil
}

func (g *Generator) freshState(ctx context.Context) (*ethpb.BeaconState, error) {
	st, err := g.loadState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load fixture state")
	}
	if uint64(len(st.Validators)) != g.cfg.NumValidators {
		return nil, fmt.Errorf("fixture state has %d validators, expected %d", len(st.Validators), g.cfg.NumValidators)
	}
	if err := IncreaseStateEpoch(st, g.cfg.StateEpoch); err != nil {
		return nil, err
	}
	return st, nil
}

// voluntaryExit has the current proposer exit as soon as it has served the
// persistent committee period.
func (g *Generator) voluntaryExit(st *ethpb.BeaconState) (*Operation, error) {
	exitEpoch := g.cfg.StateEpoch + params.BeaconConfig().PersistentCommitteePeriod
	if err := IncreaseStateEpoch(st, exitEpoch); err != nil {
		return nil, err
	}
	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return nil, err
	}
	b := NewVoluntaryExitBuilder(exitEpoch, proposer)
	if err := b.Sign(g.keypairs[proposer].SecretKey, st.Fork, st.GenesisValidatorsRoot); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func (g *Generator) blockHeader(st *ethpb.BeaconState) (*Operation, error) {
	b, err := g.proposerBlock(st)
	if err != nil {
		return nil, err
	}
	proposer := b.block.Block.ProposerIndex
	if err := b.Sign(g.keypairs[proposer].SecretKey, st.Fork, st.GenesisValidatorsRoot); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func (g *Generator) randao(st *ethpb.BeaconState) (*Operation, error) {
	b, err := g.proposerBlock(st)
	if err != nil {
		return nil, err
	}
	sk := g.keypairs[b.block.Block.ProposerIndex].SecretKey
	if err := b.SetRandaoReveal(sk, helpers.CurrentEpoch(st), st.Fork, st.GenesisValidatorsRoot); err != nil {
		return nil, err
	}
	if err := b.Sign(sk, st.Fork, st.GenesisValidatorsRoot); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// proposerBlock starts a block at the state slot on top of the latest header.
func (g *Generator) proposerBlock(st *ethpb.BeaconState) (*BlockBuilder, error) {
	if st.LatestBlockHeader == nil {
		return nil, errors.New("nil latest block header in state")
	}
	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return nil, err
	}
	parentRoot, err := st.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash latest block header")
	}
	b := NewBlockBuilder(st.Slot, proposer)
	b.SetParentRoot(parentRoot)
	return b, nil
}

// attesterSlashing has the whole registry double vote for the current epoch.
func (g *Generator) attesterSlashing(st *ethpb.BeaconState) (*Operation, error) {
	indices := make([]uint64, g.cfg.NumValidators)
	for i := range indices {
		indices[i] = uint64(i)
	}
	b := NewAttesterSlashingBuilder(indices, st.Slot, helpers.CurrentEpoch(st))
	if err := b.DoubleVote(NewKeypairSigner(g.keypairs, st.Fork, st.GenesisValidatorsRoot)); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// deposit brings in the first key the registry does not hold yet.
func (g *Generator) deposit(st *ethpb.BeaconState) (*Operation, error) {
	kp := g.keypairs[g.cfg.NumValidators+1]
	b := NewDepositBuilder(kp.PublicKey, params.BeaconConfig().MaxEffectiveBalance)
	b.SetIndex(st.Eth1DepositIndex)
	if err := b.Sign(kp.SecretKey); err != nil {
		return nil, err
	}
	op := b.Build()
	deposit, _ := op.deposit()
	if err := InsertDepositIntoEth1Data(st, deposit); err != nil {
		return nil, err
	}
	return op, nil
}

// transfer has the proposer send to its neighbour in the registry. The
// sender is credited first so that it stays at the maximum effective
// balance afterwards.
func (g *Generator) transfer(st *ethpb.BeaconState) (*Operation, error) {
	sender, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return nil, err
	}
	recipient := primitives.ValidatorIndex((uint64(sender) + 1) % g.cfg.NumValidators)
	if err := CreditBalance(st, sender, transferAmount+transferFee); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"sender":    sender,
		"recipient": recipient,
		"amount":    humanize.Comma(transferAmount),
		"fee":       humanize.Comma(transferFee),
	}).Debug("Credited transfer sender")

	kp := g.keypairs[sender]
	b := NewTransferBuilder(sender, recipient, transferAmount, transferFee, st.Slot)
	b.SetPubkey(kp.PublicKey)
	if err := b.Sign(kp.SecretKey, st.Fork, st.GenesisValidatorsRoot); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
