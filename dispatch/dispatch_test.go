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
	"testing"

	"github.com/fantom-foundation/ledger-engine/ledger"
	"github.com/fantom-foundation/ledger-engine/ledgererr"
	"github.com/fantom-foundation/ledger-engine/money"
	"github.com/fantom-foundation/ledger-engine/txstore"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	store, err := txstore.Open(txstore.Parameters{Directory: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to open record store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return ledger.New(ledger.NewAccount(1), store)
}

func TestParseKindAcceptsAnyCase(t *testing.T) {
	cases := map[string]Kind{
		"deposit":    Deposit,
		"Deposit":    Deposit,
		"WITHDRAWAL": Withdrawal,
		" dispute ":  Dispute,
		"Resolve":    Resolve,
		"chargeBack": Chargeback,
	}
	for input, want := range cases {
		got, ok := ParseKind(input)
		if !ok {
			t.Errorf("ParseKind(%q) failed to parse", input)
			continue
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %v, want %v", input, got, want)
		}
	}
	if _, ok := ParseKind("transfer"); ok {
		t.Errorf("ParseKind(%q) should have failed", "transfer")
	}
}

func TestApplyDepositThenWithdrawal(t *testing.T) {
	l := newTestLedger(t)
	amount, _ := money.NewFromString("4.5")

	if err := Apply(l, Event{Kind: Deposit, ClientID: 1, TxID: 1, Amount: amount}); err != nil {
		t.Fatalf("deposit dispatch failed: %v", err)
	}
	if err := Apply(l, Event{Kind: Withdrawal, ClientID: 1, TxID: 2, Amount: amount}); err != nil {
		t.Fatalf("withdrawal dispatch failed: %v", err)
	}
	if !l.Account().Available.IsZero() {
		t.Errorf("available = %v, want 0", l.Account().Available)
	}
}

func TestApplyDisputeResolveChargebackRouteToLedger(t *testing.T) {
	l := newTestLedger(t)
	amount, _ := money.NewFromString("10")
	if err := Apply(l, Event{Kind: Deposit, ClientID: 1, TxID: 1, Amount: amount}); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := Apply(l, Event{Kind: Dispute, ClientID: 1, TxID: 1}); err != nil {
		t.Fatalf("dispute failed: %v", err)
	}
	if err := Apply(l, Event{Kind: Chargeback, ClientID: 1, TxID: 1}); err != nil {
		t.Fatalf("chargeback failed: %v", err)
	}
	if !l.Account().Locked {
		t.Errorf("account should be locked after a routed chargeback")
	}
}

func TestApplyDepositRequiresPositiveAmount(t *testing.T) {
	l := newTestLedger(t)
	zero := money.Zero
	err := Apply(l, Event{Kind: Deposit, ClientID: 1, TxID: 1, Amount: zero})
	if err == nil {
		t.Fatalf("expected an error for a zero-amount deposit")
	}
	if !ledgererr.IsRecoverable(err) {
		t.Fatalf("expected a recoverable error, got %v", err)
	}
}
