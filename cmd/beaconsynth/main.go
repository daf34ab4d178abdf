// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// beaconsynth generates synthetic beacon state fixtures: an SSZ-encoded
// beacon state with a controlled validator population, the block header that
// commits to it, and a JSON manifesto with the report and per-field hash
// breakdown.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ethsynth/beaconsynth/consensus"
	"github.com/ethsynth/beaconsynth/preset"
	"github.com/ethsynth/beaconsynth/synth"
)

var log = logrus.WithField("prefix", "beaconsynth")

func main() {
	app := &cli.App{
		Name:  "beaconsynth",
		Usage: "generate and inspect synthetic beacon state fixtures",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Usage: "YAML file overriding individual chain preset values",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if ctx.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			generateCommand,
			inspectCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func newCreator(ctx *cli.Context) (*synth.Creator, error) {
	p := preset.Mainnet()
	if path := ctx.String("preset"); path != "" {
		var err error
		if p, err = preset.LoadFile(path); err != nil {
			return nil, err
		}
	}
	schemas, err := consensus.NewSchemaSet(p)
	if err != nil {
		return nil, err
	}
	return synth.NewCreator(schemas, log), nil
}

var generateCommand = &cli.Command{
	Name:  "generate",
	Usage: "synthesize a beacon state and write the fixture artifacts",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "output path for the state SSZ; sibling artifacts derive their names from it",
			Value:   "temp/beacon_block_state.ssz",
		},
		&cli.Uint64Flag{
			Name:    "validators",
			Aliases: []string{"v"},
			Usage:   "total number of validators",
			Value:   1024,
		},
		&cli.Uint64Flag{
			Name:    "lido-validators",
			Aliases: []string{"l"},
			Usage:   "validators carrying the Lido withdrawal credentials",
			Value:   32,
		},
		&cli.Uint64Flag{
			Name:  "pending",
			Usage: "Lido validators that have not deposited yet",
		},
		&cli.Uint64Flag{
			Name:  "exited",
			Usage: "Lido validators that already exited",
		},
		&cli.StringFlag{
			Name:    "balances-mode",
			Aliases: []string{"b"},
			Usage:   "balance distribution: fixed, sequential or random",
			Value:   string(synth.BalanceModeSequential),
		},
		&cli.Uint64Flag{
			Name:    "slot",
			Aliases: []string{"s"},
			Usage:   "slot the state is synthesized at",
			Value:   123456,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for random balances and shuffling",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "shuffle",
			Usage: "interleave Lido and other validators instead of grouping them",
		},
		&cli.StringFlag{
			Name:  "start-from",
			Usage: "existing state SSZ to append the new population onto",
		},
		&cli.BoolFlag{
			Name:  "header-json",
			Usage: "also write the header in the beacon API JSON shape",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "re-read the written artifacts and verify roots and inclusion proofs",
		},
	},
	Action: generateAction,
}

func generateAction(ctx *cli.Context) error {
	creator, err := newCreator(ctx)
	if err != nil {
		return err
	}
	mode, err := synth.ParseBalanceMode(ctx.String("balances-mode"))
	if err != nil {
		return err
	}
	opts := synth.Options{
		Slot:              consensus.Slot(ctx.Uint64("slot")),
		TotalValidators:   ctx.Uint64("validators"),
		LidoValidators:    ctx.Uint64("lido-validators"),
		PendingValidators: ctx.Uint64("pending"),
		ExitedValidators:  ctx.Uint64("exited"),
		Balances:          mode,
		Shuffle:           ctx.Bool("shuffle"),
		Seed:              ctx.Int64("seed"),
	}

	var st *consensus.BeaconState
	if base := ctx.String("start-from"); base != "" {
		if st, err = creator.ReadState(base); err != nil {
			return err
		}
		if err = creator.ExtendState(st, opts); err != nil {
			return err
		}
	} else {
		if st, err = creator.CreateState(opts); err != nil {
			return err
		}
	}

	header, err := creator.BlockHeader(st)
	if err != nil {
		return err
	}
	manifesto, err := creator.BuildManifesto(st, header)
	if err != nil {
		return err
	}
	paths := synth.NewArtifactPaths(ctx.String("file"))
	if err := creator.WriteArtifacts(paths, st, header, manifesto, ctx.Bool("header-json")); err != nil {
		return err
	}
	if ctx.Bool("check") {
		if err := creator.CheckArtifacts(paths); err != nil {
			return fmt.Errorf("fixture check failed: %w", err)
		}
	}
	return nil
}

var inspectCommand = &cli.Command{
	Name:  "inspect",
	Usage: "read a state fixture and print its report",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "path to the state SSZ",
			Required: true,
		},
	},
	Action: inspectAction,
}

func inspectAction(ctx *cli.Context) error {
	creator, err := newCreator(ctx)
	if err != nil {
		return err
	}
	st, err := creator.ReadState(ctx.String("file"))
	if err != nil {
		return err
	}
	report, err := creator.InspectState(st)
	if err != nil {
		return err
	}
	return report.Print(os.Stdout)
}
