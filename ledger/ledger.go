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

import (
	"errors"
	"fmt"

	"github.com/fantom-foundation/ledger-engine/ledgererr"
	"github.com/fantom-foundation/ledger-engine/money"
	"github.com/fantom-foundation/ledger-engine/txstore"
)

// Ledger applies payment events to a single Account, consulting and
// updating the shared Transaction Record Store as it goes. One Ledger is
// bound to exactly one Account for its whole lifetime; the caller (the
// engine's per-client work unit) is responsible for guaranteeing that at
// most one goroutine calls into a given Ledger at a time.
type Ledger struct {
	account *Account
	store   RecordStore
}

// New binds a Ledger to the given account and record store.
func New(account *Account, store RecordStore) *Ledger {
	return &Ledger{account: account, store: store}
}

// Account returns the account this ledger mutates.
func (l *Ledger) Account() *Account {
	return l.account
}

func (l *Ledger) ensureUnlocked() error {
	if l.account.Locked {
		return ledgererr.New(ledgererr.KindLockedAccount,
			fmt.Sprintf("account %d is locked", l.account.ID))
	}
	return nil
}

// Deposit credits the account with amount and creates the transaction's
// S1 record. A duplicate tx_id is a recoverable no-op.
func (l *Ledger) Deposit(txID uint32, amount money.Amount) error {
	if err := l.ensureUnlocked(); err != nil {
		return err
	}
	record := txstore.Record{
		TxID:      txID,
		ClientID:  l.account.ID,
		Direction: txstore.Deposit,
		Amount:    amount,
		State:     txstore.S1,
	}
	if err := l.store.Put(record); err != nil {
		if errors.Is(err, txstore.ErrAlreadyPresent) {
			return ledgererr.New(ledgererr.KindTransactionAlreadyPresent,
				fmt.Sprintf("tx %d already present", txID))
		}
		return ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	l.account.Available = money.Add(l.account.Available, amount)
	return nil
}

// Withdrawal debits the account by amount and creates the transaction's S1
// record. Insufficient balance is a recoverable no-op, since it reflects a
// rejected user request rather than a corrupted history (contrast with the
// non-recoverable balance checks in Dispute/Resolve/Chargeback).
func (l *Ledger) Withdrawal(txID uint32, amount money.Amount) error {
	if err := l.ensureUnlocked(); err != nil {
		return err
	}
	if !money.GreaterOrEqual(l.account.Available, amount) {
		return ledgererr.New(ledgererr.KindBalanceIssues,
			fmt.Sprintf("account %d: requested withdrawal %s exceeds available %s",
				l.account.ID, amount, l.account.Available))
	}
	record := txstore.Record{
		TxID:      txID,
		ClientID:  l.account.ID,
		Direction: txstore.Withdrawal,
		Amount:    amount,
		State:     txstore.S1,
	}
	if err := l.store.Put(record); err != nil {
		if errors.Is(err, txstore.ErrAlreadyPresent) {
			return ledgererr.New(ledgererr.KindTransactionAlreadyPresent,
				fmt.Sprintf("tx %d already present", txID))
		}
		return ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	l.account.Available = money.Sub(l.account.Available, amount)
	return nil
}

// loadDisputable reads the record for tx_id, and rejects it as a
// recoverable skip unless it exists, belongs to this ledger's account,
// and is in the expected precondition state.
func (l *Ledger) loadDisputable(txID uint32, want txstore.State) (txstore.Record, error) {
	record, err := l.store.Read(txID)
	if err != nil {
		if errors.Is(err, txstore.ErrNotFound) {
			return txstore.Record{}, ledgererr.New(ledgererr.KindWrongTransactionState,
				fmt.Sprintf("tx %d not present", txID))
		}
		return txstore.Record{}, ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	if record.ClientID != l.account.ID {
		return txstore.Record{}, ledgererr.New(ledgererr.KindWrongTransactionState,
			fmt.Sprintf("tx %d belongs to client %d, not %d", txID, record.ClientID, l.account.ID))
	}
	if record.State != want {
		return txstore.Record{}, ledgererr.New(ledgererr.KindWrongTransactionState,
			fmt.Sprintf("tx %d is in state %v, expected %v", txID, record.State, want))
	}
	return record, nil
}

// Dispute moves a transaction from S1 to S2 and holds its amount.
func (l *Ledger) Dispute(txID uint32) error {
	if err := l.ensureUnlocked(); err != nil {
		return err
	}
	record, err := l.loadDisputable(txID, txstore.S1)
	if err != nil {
		return err
	}
	upgraded := record.WithState(txstore.S2)
	if err := l.store.Overwrite(upgraded); err != nil {
		return ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	switch record.Direction {
	case txstore.Deposit:
		if !money.GreaterOrEqual(l.account.Available, record.Amount) {
			return ledgererr.NewFatal(ledgererr.KindBalanceIssues,
				fmt.Sprintf("account %d: dispute of tx %d requires available %s but found %s",
					l.account.ID, txID, record.Amount, l.account.Available))
		}
		l.account.Available = money.Sub(l.account.Available, record.Amount)
		l.account.Held = money.Add(l.account.Held, record.Amount)
	case txstore.Withdrawal:
		// A disputed withdrawal holds its amount without touching
		// available: the funds already left available when the
		// withdrawal was first applied.
		l.account.Held = money.Add(l.account.Held, record.Amount)
	}
	return nil
}

// Resolve moves a transaction from S2 to S3, releasing its held amount
// back to available.
func (l *Ledger) Resolve(txID uint32) error {
	if err := l.ensureUnlocked(); err != nil {
		return err
	}
	record, err := l.loadDisputable(txID, txstore.S2)
	if err != nil {
		return err
	}
	upgraded := record.WithState(txstore.S3)
	if err := l.store.Overwrite(upgraded); err != nil {
		return ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	l.account.Available = money.Add(l.account.Available, record.Amount)
	if !money.GreaterOrEqual(l.account.Held, record.Amount) {
		return ledgererr.NewFatal(ledgererr.KindBalanceIssues,
			fmt.Sprintf("account %d: resolve of tx %d requires held %s but found %s",
				l.account.ID, txID, record.Amount, l.account.Held))
	}
	l.account.Held = money.Sub(l.account.Held, record.Amount)
	return nil
}

// Chargeback moves a transaction from S2 to S3, removing its held amount
// and permanently locking the account.
func (l *Ledger) Chargeback(txID uint32) error {
	if err := l.ensureUnlocked(); err != nil {
		return err
	}
	record, err := l.loadDisputable(txID, txstore.S2)
	if err != nil {
		return err
	}
	upgraded := record.WithState(txstore.S3)
	if err := l.store.Overwrite(upgraded); err != nil {
		return ledgererr.NewFatal(ledgererr.KindStoreIO, err.Error())
	}
	if !money.GreaterOrEqual(l.account.Held, record.Amount) {
		return ledgererr.NewFatal(ledgererr.KindBalanceIssues,
			fmt.Sprintf("account %d: chargeback of tx %d requires held %s but found %s",
				l.account.ID, txID, record.Amount, l.account.Held))
	}
	l.account.Held = money.Sub(l.account.Held, record.Amount)
	l.account.Locked = true
	return nil
}
