// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package money

import "testing"

func mustParse(t *testing.T, s string) Amount {
	t.Helper()
	a, err := NewFromString(s)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return a
}

func TestAmount_NewFromStringRejectsGarbage(t *testing.T) {
	if _, err := NewFromString("not-a-number"); err == nil {
		t.Fatalf("expected an error for a non-numeric literal")
	}
}

func TestAmount_AddAndSub(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"positive sum", "1.5", "2.25", "3.75"},
		{"difference can go negative", "1", "2", "-1"},
		{"zero plus zero", "0", "0", "0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, b := mustParse(t, test.a), mustParse(t, test.b)
			want := mustParse(t, test.want)
			if got := Add(a, b); !got.Equal(want) {
				t.Errorf("Add(%s, %s) = %s, want %s", test.a, test.b, got, test.want)
			}
		})
	}

	diff := Sub(mustParse(t, "1"), mustParse(t, "2"))
	if !diff.Equal(mustParse(t, "-1")) {
		t.Errorf("Sub(1, 2) = %s, want -1", diff)
	}
	if !diff.IsNegative() {
		t.Errorf("Sub(1, 2) should be negative")
	}
}

func TestAmount_CmpAndGreaterOrEqual(t *testing.T) {
	small, big := mustParse(t, "1"), mustParse(t, "2")
	if Cmp(small, big) >= 0 {
		t.Errorf("Cmp(1, 2) should be negative")
	}
	if !GreaterOrEqual(big, small) {
		t.Errorf("GreaterOrEqual(2, 1) should be true")
	}
	if !GreaterOrEqual(small, small) {
		t.Errorf("GreaterOrEqual(1, 1) should be true")
	}
}

func TestAmount_IsZeroIsPositiveIsNegative(t *testing.T) {
	if !Zero.IsZero() {
		t.Errorf("Zero.IsZero() should be true")
	}
	if mustParse(t, "1").IsZero() {
		t.Errorf("1.IsZero() should be false")
	}
	if !mustParse(t, "-1").IsNegative() {
		t.Errorf("-1.IsNegative() should be true")
	}
	if !mustParse(t, "1").IsPositive() {
		t.Errorf("1.IsPositive() should be true")
	}
}

func TestAmount_JSONRoundTrip(t *testing.T) {
	original := mustParse(t, "1234.5678")
	data, err := original.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	var decoded Amount
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip mismatch: got %s, want %s", decoded, original)
	}
}
