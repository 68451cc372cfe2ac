package main

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	"github.com/urfave/cli/v2"
)

const kindFlagName = "kind"

var (
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	chainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "The path to a YAML file with chain config values",
	}
	numValidatorsFlag = &cli.Uint64Flag{
		Name:  "num-validators",
		Usage: "Number of validators in the fixture state",
		Value: corpus.DefaultConfig().NumValidators,
	}
	stateEpochFlag = &cli.Uint64Flag{
		Name:  "state-epoch",
		Usage: "Epoch the fixture state is advanced to",
		Value: uint64(corpus.DefaultConfig().StateEpoch),
	}
	stateFileFlag = &cli.StringFlag{
		Name:  "state-file",
		Usage: "SSZ encoded fixture state, optionally snappy compressed (.ssz_snappy)",
	}
	keypairsFileFlag = &cli.StringFlag{
		Name:  "keypairs-file",
		Usage: "YAML file with the fixture keypairs",
	}
	corpusDirFlag = &cli.StringFlag{
		Name:  "corpus-dir",
		Usage: "Directory that also receives every entry as a raw SSZ file",
	}
	outDirFlag = &cli.StringFlag{
		Name:     "out-dir",
		Usage:    "Directory the fixtures are written to",
		Required: true,
	}
	snappyFlag = &cli.BoolFlag{
		Name:  "snappy",
		Usage: "Snappy compress the fixture state",
	}
	hexFlag = &cli.StringFlag{
		Name:     "hex",
		Usage:    "Hex encoded corpus entry, with or without 0x prefix",
		Required: true,
	}
	requiredKindFlag = &cli.StringFlag{
		Name:     kindFlagName,
		Usage:    "Operation kind of the corpus entry",
		Required: true,
	}
)

// newKindFlag returns a fresh flag on every call since slice flags keep
// their parsed values between runs.
func newKindFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  kindFlagName,
		Usage: "Operation kind to generate, may be repeated. Defaults to every kind",
	}
}
