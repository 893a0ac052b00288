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
	"testing"

	"github.com/fantom-foundation/ledger-engine/txstore"
	"github.com/golang/mock/gomock"
)

var errFakeStoreIO = errors.New("fake store I/O failure")

func TestLedgerDepositPutsTheRecordItBuilt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockRecordStore(ctrl)
	l := New(NewAccount(1), store)

	want := txstore.Record{
		TxID:      1,
		ClientID:  1,
		Direction: txstore.Deposit,
		Amount:    amt(t, "5"),
		State:     txstore.S1,
	}
	store.EXPECT().Put(want).Return(nil)

	if err := l.Deposit(1, amt(t, "5")); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if !l.Account().Snapshot().Available.Equal(amt(t, "5")) {
		t.Errorf("available = %v, want 5", l.Account().Snapshot().Available)
	}
}

func TestLedgerDepositSurfacesStoreIOFailureAsNonRecoverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockRecordStore(ctrl)
	l := New(NewAccount(1), store)

	store.EXPECT().Put(gomock.Any()).Return(errFakeStoreIO)

	err := l.Deposit(1, amt(t, "5"))
	expectNonRecoverable(t, err)
}

func TestLedgerDisputeOverwritesTheUpgradedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockRecordStore(ctrl)
	l := New(NewAccount(1), store)
	l.Account().Available = amt(t, "5")

	existing := txstore.Record{TxID: 1, ClientID: 1, Direction: txstore.Deposit, Amount: amt(t, "5"), State: txstore.S1}
	store.EXPECT().Read(uint32(1)).Return(existing, nil)
	store.EXPECT().Overwrite(existing.WithState(txstore.S2)).Return(nil)

	if err := l.Dispute(1); err != nil {
		t.Fatalf("dispute failed: %v", err)
	}
	snap := l.Account().Snapshot()
	if !snap.Available.IsZero() {
		t.Errorf("available = %v, want 0", snap.Available)
	}
	if !snap.Held.Equal(amt(t, "5")) {
		t.Errorf("held = %v, want 5", snap.Held)
	}
}
