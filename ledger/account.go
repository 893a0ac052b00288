// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger implements the per-client Account Ledger: the available,
// held, and locked state of one client's account, and the accounting
// effects of each payment event kind on that state.
package ledger

import "github.com/fantom-foundation/ledger-engine/money"

// Account holds the balances and lock flag of one client. It is created
// lazily on first reference and lives until process termination; it is
// never persisted across runs.
type Account struct {
	ID        uint16
	Available money.Amount
	Held      money.Amount
	Locked    bool
}

// NewAccount returns a freshly zeroed, unlocked account for the given client.
func NewAccount(id uint16) *Account {
	return &Account{ID: id}
}

// Total is available + held, defined for reporting only.
func (a *Account) Total() money.Amount {
	return money.Add(a.Available, a.Held)
}

// Snapshot is an immutable, reporting-only copy of an account's state.
type Snapshot struct {
	ClientID  uint16
	Available money.Amount
	Held      money.Amount
	Total     money.Amount
	Locked    bool
}

// Snapshot captures the account's current state for reporting.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		ClientID:  a.ID,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}
