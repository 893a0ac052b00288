// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Run with `go run ./cmd/ledger-engine <input.csv>`
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fantom-foundation/ledger-engine/config"
	"github.com/fantom-foundation/ledger-engine/csvsource"
	"github.com/fantom-foundation/ledger-engine/engine"
	"github.com/fantom-foundation/ledger-engine/logging"
	"github.com/fantom-foundation/ledger-engine/report"
	"github.com/fantom-foundation/ledger-engine/txstore"
)

var (
	batchSizeFlag = cli.IntFlag{
		Name:  "batch-size",
		Usage: "number of events read per batch before partitioning by client",
		Value: config.DefaultBatchSize,
	}
	scratchDirFlag = cli.StringFlag{
		Name:  "scratch-dir",
		Usage: "directory backing the transaction record store; a temporary one is used if unset",
	}
)

func main() {
	app := &cli.App{
		Name:      "ledger-engine",
		HelpName:  "ledger-engine",
		Usage:     "replay a stream of payment events into final per-client account balances",
		Copyright: "(c) 2024 Fantom Foundation",
		ArgsUsage: "<input.csv>",
		Flags:     []cli.Flag{&batchSizeFlag, &scratchDirFlag},
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one positional argument: the input file path")
	}
	params := config.Parameters{
		InputPath:  ctx.Args().First(),
		BatchSize:  ctx.Int(batchSizeFlag.Name),
		ScratchDir: ctx.String(scratchDirFlag.Name),
	}
	return Run(params, os.Stdout)
}

// Run wires the row reader, the concurrent driver, and the reporting
// formatter together for one end-to-end ingestion of params.InputPath.
func Run(params config.Parameters, out io.Writer) error {
	log := logging.New()

	scratchDir := params.ScratchDir
	cleanup := func() {}
	if scratchDir == "" {
		dir, err := os.MkdirTemp("", config.DefaultScratchDirPrefix)
		if err != nil {
			return fmt.Errorf("failed to create scratch directory: %w", err)
		}
		scratchDir = dir
		cleanup = func() {
			if err := os.RemoveAll(dir); err != nil {
				log.Printf("failed to remove scratch directory %s: %v", dir, err)
			}
		}
	}
	defer cleanup()

	store, err := txstore.Open(txstore.Parameters{Directory: scratchDir})
	if err != nil {
		return fmt.Errorf("failed to open transaction record store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("failed to close transaction record store: %v", err)
		}
	}()

	input, err := os.Open(params.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", params.InputPath, err)
	}
	defer input.Close()

	source, err := csvsource.New(input)
	if err != nil {
		return fmt.Errorf("failed to read input header: %w", err)
	}

	driver := engine.New(store, log, params.ResolvedBatchSize())
	if err := driver.Run(source); err != nil {
		return fmt.Errorf("ingestion aborted: %w", err)
	}

	return report.Write(out, driver.Snapshots())
}
