// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package csvsource implements the external row reader: it parses the
// `type, client, tx, amount` tabular input format into dispatch.Event
// values, one row at a time. No CSV library appears anywhere in the
// retrieved example pack, so this package is built on the standard
// library's encoding/csv rather than a pack-grounded third-party
// dependency (see DESIGN.md).
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fantom-foundation/ledger-engine/dispatch"
	"github.com/fantom-foundation/ledger-engine/ledgererr"
	"github.com/fantom-foundation/ledger-engine/money"
)

// Reader parses a stream of payment events from an underlying CSV
// source, implementing engine.EventSource.
type Reader struct {
	csv *csv.Reader
}

// New wraps r as a payment-event source, consuming and discarding its
// header row. Fields per row may vary in count to accommodate the
// dispute family's empty amount column.
func New(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, ledgererr.NewFatal(ledgererr.KindParseError, "input has no header row")
		}
		return nil, ledgererr.NewFatal(ledgererr.KindParseError, fmt.Sprintf("failed to read header: %v", err))
	}
	return &Reader{csv: cr}, nil
}

// Read returns the next parsed event. It returns io.EOF once the input
// is exhausted. A malformed row yields a recoverable *ledgererr.Error
// rather than stopping the stream.
func (r *Reader) Read() (dispatch.Event, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		return dispatch.Event{}, io.EOF
	}
	if err != nil {
		return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError, fmt.Sprintf("malformed row: %v", err))
	}
	return parseRow(row)
}

func parseRow(row []string) (dispatch.Event, error) {
	if len(row) < 3 {
		return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
			fmt.Sprintf("expected at least 3 columns, got %d", len(row)))
	}

	kind, ok := dispatch.ParseKind(row[0])
	if !ok {
		return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
			fmt.Sprintf("unrecognized transaction type %q", row[0]))
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
			fmt.Sprintf("invalid client id %q: %v", row[1], err))
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
			fmt.Sprintf("invalid tx id %q: %v", row[2], err))
	}

	event := dispatch.Event{Kind: kind, ClientID: uint16(clientID), TxID: uint32(txID)}

	raw := ""
	if len(row) >= 4 {
		raw = strings.TrimSpace(row[3])
	}
	switch kind {
	case dispatch.Deposit, dispatch.Withdrawal:
		if raw == "" {
			return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
				fmt.Sprintf("%s requires an amount", kind))
		}
		amount, err := money.NewFromString(raw)
		if err != nil {
			return dispatch.Event{}, ledgererr.New(ledgererr.KindParseError,
				fmt.Sprintf("invalid amount %q: %v", raw, err))
		}
		event.Amount = amount
	default:
		// Dispute-family rows carry no amount; if one is present anyway
		// it is ignored per the external interface contract.
	}

	if err := event.Validate(); err != nil {
		return dispatch.Event{}, err
	}
	return event, nil
}
