// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txstore

import (
	"errors"
	"testing"

	"github.com/fantom-foundation/ledger-engine/money"
)

func getStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(Parameters{Directory: dir})
	if err != nil {
		t.Fatalf("failed to open transaction record store: %v", err)
	}
	return store
}

func TestStore_ReadMissingReturnsNotFound(t *testing.T) {
	store := getStore(t, t.TempDir())
	defer store.Close()

	if _, err := store.Read(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_PutThenRead(t *testing.T) {
	store := getStore(t, t.TempDir())
	defer store.Close()

	amount, _ := money.NewFromString("5.5")
	record := Record{TxID: 1, ClientID: 7, Direction: Deposit, Amount: amount, State: S1}

	if err := store.Put(record); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}

	got, err := store.Read(1)
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if got.TxID != record.TxID || got.ClientID != record.ClientID ||
		got.Direction != record.Direction || got.State != record.State ||
		!got.Amount.Equal(record.Amount) {
		t.Fatalf("record mismatch: got %+v, want %+v", got, record)
	}
}

func TestStore_PutDuplicateFails(t *testing.T) {
	store := getStore(t, t.TempDir())
	defer store.Close()

	amount, _ := money.NewFromString("1")
	record := Record{TxID: 1, ClientID: 7, Direction: Deposit, Amount: amount, State: S1}
	if err := store.Put(record); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}
	if err := store.Put(record); !errors.Is(err, ErrAlreadyPresent) {
		t.Fatalf("expected ErrAlreadyPresent, got %v", err)
	}
}

func TestStore_OverwriteAdvancesState(t *testing.T) {
	store := getStore(t, t.TempDir())
	defer store.Close()

	amount, _ := money.NewFromString("1")
	record := Record{TxID: 1, ClientID: 7, Direction: Deposit, Amount: amount, State: S1}
	if err := store.Put(record); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}

	upgraded := record.WithState(record.State.Upgrade())
	if err := store.Overwrite(upgraded); err != nil {
		t.Fatalf("failed to overwrite record: %v", err)
	}

	got, err := store.Read(1)
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if got.State != S2 {
		t.Fatalf("expected state S2 after upgrade, got %v", got.State)
	}
}

func TestStore_OpenPurgesStaleDirectory(t *testing.T) {
	dir := t.TempDir()
	store := getStore(t, dir)
	amount, _ := money.NewFromString("1")
	if err := store.Put(Record{TxID: 1, ClientID: 7, Direction: Deposit, Amount: amount, State: S1}); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}
	if err := store.db.Close(); err != nil {
		t.Fatalf("failed to close db: %v", err)
	}

	reopened := getStore(t, dir)
	defer reopened.Close()
	if _, err := reopened.Read(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a fresh store after purge, got record instead: %v", err)
	}
}

func TestState_UpgradeIsMonotonicAndTerminal(t *testing.T) {
	if S1.Upgrade() != S2 {
		t.Fatalf("S1 should upgrade to S2")
	}
	if S2.Upgrade() != S3 {
		t.Fatalf("S2 should upgrade to S3")
	}
	if S3.Upgrade() != S3 {
		t.Fatalf("S3 should be terminal")
	}
}
