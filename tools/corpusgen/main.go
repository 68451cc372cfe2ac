// Command corpusgen generates valid beacon chain operations as seed corpora
// for fuzzers.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/d4l3k/messagediff"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/io/logs"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/prereqs"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/version"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("Corpus generation failed")
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "corpusgen"
	app.Usage = "Generates valid beacon chain operations as fuzzing corpus"
	app.Version = version.GetVersion()
	app.Writer = out
	app.Flags = []cli.Flag{verbosityFlag, logFileFlag, chainConfigFileFlag}
	app.Before = before
	app.Commands = []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate one valid operation per kind and print it as `<Kind> <hex>`",
			Flags: []cli.Flag{
				newKindFlag(),
				numValidatorsFlag,
				stateEpochFlag,
				stateFileFlag,
				keypairsFileFlag,
				corpusDirFlag,
			},
			Action: generate,
		},
		{
			Name:   "fixtures",
			Usage:  "Write a fixture state and its keypairs",
			Flags:  []cli.Flag{outDirFlag, numValidatorsFlag, stateEpochFlag, snappyFlag},
			Action: fixtures,
		},
		{
			Name:    "pretty",
			Aliases: []string{"p"},
			Usage:   "Pretty print a corpus entry",
			Flags:   []cli.Flag{requiredKindFlag, hexFlag},
			Action:  prettyPrint,
		},
		{
			Name:   "verify",
			Usage:  "Check that a corpus entry survives an SSZ round trip",
			Flags:  []cli.Flag{requiredKindFlag, hexFlag},
			Action: verify,
		},
	}
	return app
}

func before(cliCtx *cli.Context) error {
	level, err := log.ParseLevel(cliCtx.String(verbosityFlag.Name))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	prereqs.WarnIfPlatformNotSupported()

	if logFileName := cliCtx.String(logFileFlag.Name); logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	if configFile := cliCtx.String(chainConfigFileFlag.Name); configFile != "" {
		if err := params.LoadChainConfigFile(configFile); err != nil {
			return errors.Wrap(err, "could not load chain config file")
		}
	}
	return nil
}

func generate(cliCtx *cli.Context) error {
	cfg := corpus.Config{
		NumValidators: cliCtx.Uint64(numValidatorsFlag.Name),
		StateEpoch:    primitives.Epoch(cliCtx.Uint64(stateEpochFlag.Name)),
	}
	kinds, err := parseKinds(cliCtx.StringSlice(kindFlagName))
	if err != nil {
		return err
	}
	source, kps, err := loadInputs(cliCtx.Context, cfg, cliCtx.String(stateFileFlag.Name), cliCtx.String(keypairsFileFlag.Name))
	if err != nil {
		return err
	}
	emitter := corpus.NewEmitter(cliCtx.App.Writer, cliCtx.String(corpusDirFlag.Name))
	g, err := corpus.New(cfg, source, kps, emitter)
	if err != nil {
		return err
	}
	return g.Run(cliCtx.Context, kinds)
}

func fixtures(cliCtx *cli.Context) error {
	statePath, keysPath, err := fuzztesting.WriteFixtures(
		cliCtx.Context,
		cliCtx.String(outDirFlag.Name),
		cliCtx.Uint64(numValidatorsFlag.Name),
		primitives.Epoch(cliCtx.Uint64(stateEpochFlag.Name)),
		cliCtx.Bool(snappyFlag.Name),
	)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"state":    statePath,
		"keypairs": keysPath,
	}).Info("Fixtures ready")
	return nil
}

func prettyPrint(cliCtx *cli.Context) error {
	op, _, err := decodeEntry(cliCtx.String(requiredKindFlag.Name), cliCtx.String(hexFlag.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, pretty.Sprint(op.Object))
	return err
}

func verify(cliCtx *cli.Context) error {
	op, enc, err := decodeEntry(cliCtx.String(requiredKindFlag.Name), cliCtx.String(hexFlag.Name))
	if err != nil {
		return err
	}
	if err := verifyRoundTrip(op, enc); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cliCtx.App.Writer, "%s entry of %d bytes round trips\n", op.Kind, len(enc))
	return err
}

// parseKinds resolves kind labels, defaulting to every kind.
func parseKinds(labels []string) ([]corpus.Kind, error) {
	if len(labels) == 0 {
		return corpus.AllKinds, nil
	}
	kinds := make([]corpus.Kind, 0, len(labels))
	for _, label := range labels {
		k, err := corpus.ParseKind(label)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// loadInputs reads the fixture state and keypairs from files, or generates
// them in memory when neither file is given.
func loadInputs(ctx context.Context, cfg corpus.Config, stateFile, keypairsFile string) (corpus.StateSource, []*fuzztesting.Keypair, error) {
	if stateFile == "" && keypairsFile == "" {
		st, kps, err := fuzztesting.GenerateFixtures(ctx, cfg.NumValidators, cfg.StateEpoch)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not generate fixtures")
		}
		return corpus.StaticStateSource(st), kps, nil
	}
	if stateFile == "" || keypairsFile == "" {
		return nil, nil, errors.New("state file and keypairs file must be given together")
	}
	kps, err := fuzztesting.LoadKeypairs(keypairsFile)
	if err != nil {
		return nil, nil, err
	}
	return corpus.FileStateSource(stateFile), kps, nil
}

func decodeEntry(label, hexEntry string) (*corpus.Operation, []byte, error) {
	k, err := corpus.ParseKind(label)
	if err != nil {
		return nil, nil, err
	}
	enc, err := hexutil.Decode("0x" + strings.TrimPrefix(strings.TrimSpace(hexEntry), "0x"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not decode hex")
	}
	op, err := corpus.Decode(k, enc)
	if err != nil {
		return nil, nil, err
	}
	return op, enc, nil
}

// verifyRoundTrip re-encodes op and compares the result with enc.
func verifyRoundTrip(op *corpus.Operation, enc []byte) error {
	reenc, err := op.Encode()
	if err != nil {
		return err
	}
	if bytes.Equal(reenc, enc) {
		return nil
	}
	again, err := corpus.Decode(op.Kind, reenc)
	if err != nil {
		return errors.Wrap(err, "re-encoded entry does not decode")
	}
	diff, _ := messagediff.PrettyDiff(op.Object, again.Object)
	return fmt.Errorf("%s entry does not round trip: %s", op.Kind, diff)
}
