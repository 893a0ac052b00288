// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import "github.com/fantom-foundation/ledger-engine/txstore"

//go:generate mockgen -source record_store.go -destination record_store_mock.go -package ledger

// RecordStore is the subset of txstore.Store that the Ledger depends on.
// *txstore.Store satisfies it directly; tests substitute a mock to drive
// the state machine without a real on-disk database.
type RecordStore interface {
	Read(txID uint32) (txstore.Record, error)
	Put(r txstore.Record) error
	Overwrite(r txstore.Record) error
}
