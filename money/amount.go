// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package money provides an exact, arbitrary-precision decimal amount type
// used for every monetary quantity handled by the ledger.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is an exact base-10 decimal value used for token values like
// account balances and transaction amounts. Unlike an Ethereum-style
// uint256 balance, an Amount may be negative: Sub returns a - b even
// when b exceeds a.
type Amount struct {
	internal decimal.Decimal
}

// Zero is the additive identity.
var Zero = Amount{}

// NewFromString parses a decimal literal such as "1.5000" into an Amount.
// It never uses binary floating point.
func NewFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{internal: d}, nil
}

// NewFromInt64 builds an Amount representing a whole number.
func NewFromInt64(v int64) Amount {
	return Amount{internal: decimal.NewFromInt(v)}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

// IsNegative reports whether the amount is strictly less than zero.
func (a Amount) IsNegative() bool {
	return a.internal.Sign() < 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.internal.Sign() > 0
}

// String returns the amount in the decimal library's canonical form.
func (a Amount) String() string {
	return a.internal.String()
}

// Add returns the sum of two amounts.
func Add(a, b Amount) Amount {
	return Amount{internal: a.internal.Add(b.internal)}
}

// Sub returns the difference a - b.
func Sub(a, b Amount) Amount {
	return Amount{internal: a.internal.Sub(b.internal)}
}

// Cmp compares two amounts: -1 if a < b, 0 if a == b, +1 if a > b.
func Cmp(a, b Amount) int {
	return a.internal.Cmp(b.internal)
}

// Equal reports whether two amounts represent the same numeric value.
// Amount wraps decimal.Decimal, which holds its magnitude behind a
// pointer, so comparing Amounts with == compares pointer identity, not
// value; callers (tests especially) must use Equal instead.
func (a Amount) Equal(b Amount) bool {
	return a.internal.Equal(b.internal)
}

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b Amount) bool {
	return Cmp(a, b) >= 0
}

// MarshalJSON serializes the amount using the decimal library's exact
// string form, never as a binary-floating-point JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.internal.MarshalJSON()
}

// UnmarshalJSON parses the amount back from its exact string form.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.internal.UnmarshalJSON(data)
}
