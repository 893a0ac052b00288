// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package dispatch translates a parsed payment event into the matching
// call against a client's Ledger. It never reads or writes transaction
// records itself; the ledger owns that.
package dispatch

import (
	"strings"

	"github.com/fantom-foundation/ledger-engine/ledgererr"
	"github.com/fantom-foundation/ledger-engine/money"
)

// Kind identifies the shape of a payment event, one per CSV row type.
type Kind uint8

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// ParseKind accepts any case of the five event names, matching the CSV
// source's tolerant row parsing.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, true
	case "withdrawal":
		return Withdrawal, true
	case "dispute":
		return Dispute, true
	case "resolve":
		return Resolve, true
	case "chargeback":
		return Chargeback, true
	default:
		return 0, false
	}
}

// Event is one parsed payment instruction, prior to any dispatch.
// Amount is only meaningful for Deposit and Withdrawal; the dispatcher
// ignores it for the three dispute-family kinds even if a row carried one.
type Event struct {
	Kind     Kind
	ClientID uint16
	TxID     uint32
	Amount   money.Amount
}

// Validate checks that an event's shape matches its kind: Deposit and
// Withdrawal must carry a positive amount, the dispute-family kinds carry
// none that's inspected.
func (e Event) Validate() error {
	switch e.Kind {
	case Deposit, Withdrawal:
		if !e.Amount.IsPositive() {
			return ledgererr.New(ledgererr.KindParseError,
				"deposit and withdrawal events require a positive amount")
		}
	}
	return nil
}
