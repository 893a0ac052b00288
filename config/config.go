// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config holds the run parameters for the engine: the input
// file, the batch size, and the scratch directory backing the
// transaction record store.
package config

// DefaultBatchSize is the number of events read per batch before the
// driver partitions them by client and waits for all partitions to drain.
const DefaultBatchSize = 1024

// DefaultScratchDirPrefix names the temporary directory created to host
// the transaction record store for a single run.
const DefaultScratchDirPrefix = "ledger-engine-"

// Parameters collects the parsed CLI input for one run.
type Parameters struct {
	// InputPath is the CSV file of payment events to ingest.
	InputPath string
	// BatchSize is the number of events per batch; DefaultBatchSize if unset.
	BatchSize int
	// ScratchDir is the directory backing the transaction record store.
	// If empty, the engine creates and removes a temporary directory
	// itself, named with DefaultScratchDirPrefix.
	ScratchDir string
}

// ResolvedBatchSize returns BatchSize if positive, DefaultBatchSize otherwise.
func (p Parameters) ResolvedBatchSize() int {
	if p.BatchSize > 0 {
		return p.BatchSize
	}
	return DefaultBatchSize
}
