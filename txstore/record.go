// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txstore is the durable Transaction Record Store: a per-tx_id
// record of monetary direction, amount, owning client, and lifecycle
// state, keyed so that Read/Put/Overwrite are O(1) and the working set
// is bounded by disk rather than memory.
package txstore

import (
	"encoding/json"
	"fmt"

	"github.com/fantom-foundation/ledger-engine/money"
)

// Direction is the monetary direction of a transaction.
type Direction uint8

const (
	Deposit Direction = iota
	Withdrawal
)

func (d Direction) String() string {
	if d == Withdrawal {
		return "withdrawal"
	}
	return "deposit"
}

// MarshalJSON renders the direction as its lowercase name, keeping the
// persisted document self-describing rather than an opaque integer.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses the direction back from its lowercase name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "withdrawal":
		*d = Withdrawal
	case "deposit":
		*d = Deposit
	default:
		return fmt.Errorf("unknown transaction direction %q", s)
	}
	return nil
}

// State is the lifecycle state of a transaction record. States only move
// forward: S1 -> S2 -> S3, never backward.
type State uint8

const (
	// S1 is the initial state of a newly created deposit/withdrawal.
	S1 State = iota
	// S2 marks a transaction under dispute.
	S2
	// S3 is terminal: resolved or charged back.
	S3
)

func (s State) String() string {
	switch s {
	case S2:
		return "S2"
	case S3:
		return "S3"
	default:
		return "S1"
	}
}

// MarshalJSON renders the state as its name.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the state back from its name.
func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "S1":
		*s = S1
	case "S2":
		*s = S2
	case "S3":
		*s = S3
	default:
		return fmt.Errorf("unknown transaction state %q", str)
	}
	return nil
}

// Upgrade advances the state one step along S1 -> S2 -> S3. S3 is a fixed
// point: upgrading a terminal record returns it unchanged.
func (s State) Upgrade() State {
	switch s {
	case S1:
		return S2
	case S2:
		return S3
	default:
		return S3
	}
}

// Record is the persisted, self-describing document for one transaction.
// Once created, TxID, ClientID, Direction, and Amount never change; only
// State is ever overwritten, and only forward.
type Record struct {
	TxID      uint32       `json:"tx_id"`
	ClientID  uint16       `json:"client_id"`
	Direction Direction    `json:"direction"`
	Amount    money.Amount `json:"amount"`
	State     State        `json:"state"`
}

// WithState returns a copy of the record with its state set to s.
func (r Record) WithState(s State) Record {
	r.State = s
	return r
}
