// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package report formats the final per-client balances once ingestion
// completes.
package report

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/fantom-foundation/ledger-engine/ledger"
)

// Write prints the header `client, available, held, total, locked`
// followed by one row per snapshot. The client row order is not
// mandated by the output format, but is sorted by client id here for
// reproducible output across runs and in tests.
func Write(w io.Writer, snapshots []ledger.Snapshot) error {
	sorted := make([]ledger.Snapshot, len(snapshots))
	copy(sorted, snapshots)
	slices.SortFunc(sorted, func(a, b ledger.Snapshot) bool { return a.ClientID < b.ClientID })

	if _, err := fmt.Fprintln(w, "client,available,held,total,locked"); err != nil {
		return err
	}
	for _, snap := range sorted {
		if _, err := fmt.Fprintf(w, "%d,%s,%s,%s,%t\n",
			snap.ClientID, snap.Available, snap.Held, snap.Total, snap.Locked); err != nil {
			return err
		}
	}
	return nil
}
