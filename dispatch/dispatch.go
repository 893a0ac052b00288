// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dispatch

import (
	"fmt"

	"github.com/fantom-foundation/ledger-engine/ledger"
	"github.com/fantom-foundation/ledger-engine/ledgererr"
)

// Apply routes a single event to the matching Ledger method. It is a
// pure mapping from (kind, tx_id, amount?) to a ledger call; it never
// reads or writes a transaction record itself.
func Apply(l *ledger.Ledger, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	switch e.Kind {
	case Deposit:
		return l.Deposit(e.TxID, e.Amount)
	case Withdrawal:
		return l.Withdrawal(e.TxID, e.Amount)
	case Dispute:
		return l.Dispute(e.TxID)
	case Resolve:
		return l.Resolve(e.TxID)
	case Chargeback:
		return l.Chargeback(e.TxID)
	default:
		return ledgererr.New(ledgererr.KindParseError, fmt.Sprintf("unknown event kind %v", e.Kind))
	}
}
