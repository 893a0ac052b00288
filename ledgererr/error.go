// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledgererr defines the two-severity error model shared by the
// record store, the account ledger, and the event dispatcher: a
// recoverable error drops the offending event and lets ingestion continue,
// a non-recoverable error aborts the whole run.
package ledgererr

import "fmt"

// Kind is an immutable error-kind constant: a string-backed type that is
// comparable with == and usable with errors.Is.
type Kind string

func (k Kind) Error() string {
	return string(k)
}

// Error kinds, named after the accounting condition that produced them.
const (
	KindTransactionAlreadyPresent Kind = "transaction already present"
	KindWrongTransactionState     Kind = "transaction in wrong state"
	KindLockedAccount             Kind = "account is locked"
	KindBalanceIssues             Kind = "inconsistent balance"
	KindParseError                Kind = "parse error"
	KindStoreIO                   Kind = "record store I/O error"
)

// Severity distinguishes an event-scoped skip from a stream-aborting fault.
type Severity int

const (
	// Recoverable errors cause the offending event to be dropped; ingestion continues.
	Recoverable Severity = iota
	// NonRecoverable errors abort the batch and the whole run.
	NonRecoverable
)

func (s Severity) String() string {
	if s == NonRecoverable {
		return "non-recoverable"
	}
	return "recoverable"
}

// Error is the single error type produced by the ledger, the record
// store, and the dispatcher. It carries a Kind (for programmatic
// matching via errors.Is) and a Severity (for the driver's escalation
// policy), plus a human-readable detail.
type Error struct {
	Severity Severity
	Kind     Kind
	Detail   string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Severity, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Severity, e.Kind, e.Detail)
}

// Unwrap exposes the Kind so callers can match with errors.Is(err, ledgererr.KindLockedAccount).
func (e *Error) Unwrap() error {
	return e.Kind
}

// New builds a recoverable error of the given kind.
func New(kind Kind, detail string) *Error {
	return &Error{Severity: Recoverable, Kind: kind, Detail: detail}
}

// NewFatal builds a non-recoverable error of the given kind.
func NewFatal(kind Kind, detail string) *Error {
	return &Error{Severity: NonRecoverable, Kind: kind, Detail: detail}
}

// IsRecoverable reports whether err is a *Error carrying Recoverable severity.
func IsRecoverable(err error) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Severity == Recoverable
}

// IsNonRecoverable reports whether err is a *Error carrying NonRecoverable severity.
func IsNonRecoverable(err error) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Severity == NonRecoverable
}
