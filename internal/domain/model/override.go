package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// OverrideKind selects one of the two month-keyed amounts a user can enter.
type OverrideKind int

const (
	// KindOverpayment replaces the period's default overpayment for a month.
	KindOverpayment OverrideKind = iota + 1
	// KindDiscrepancy adds a signed adjustment to a month's balance.
	KindDiscrepancy
)

var overrideKinds = []OverrideKind{KindOverpayment, KindDiscrepancy}

// OverrideKinds lists every kind.
func OverrideKinds() []OverrideKind {
	return append([]OverrideKind(nil), overrideKinds...)
}

// String returns the kind name used in storage and on the wire.
func (k OverrideKind) String() string {
	switch k {
	case KindOverpayment:
		return "overpayment"
	case KindDiscrepancy:
		return "discrepancy"
	default:
		return fmt.Sprintf("OverrideKind(%d)", int(k))
	}
}

// Valid reports whether k is a known kind.
func (k OverrideKind) Valid() bool {
	return k == KindOverpayment || k == KindDiscrepancy
}

// ParseOverrideKind converts a kind name to an OverrideKind.
func ParseOverrideKind(s string) (OverrideKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overpayment":
		return KindOverpayment, nil
	case "discrepancy":
		return KindDiscrepancy, nil
	default:
		return 0, fmt.Errorf("unknown override kind %q", s)
	}
}

// Overrides maps a month index to a user-entered amount. An absent key means
// the month uses its default.
type Overrides map[int]decimal.Decimal

// Get returns the override for month, if any.
func (o Overrides) Get(month int) (decimal.Decimal, bool) {
	v, ok := o[month]
	return v, ok
}

// Clone returns an independent copy. Decimal values are immutable, so copying
// the map is a deep copy.
func (o Overrides) Clone() Overrides {
	out := make(Overrides, len(o))
	for month, amount := range o {
		out[month] = amount
	}
	return out
}

// Months returns the overridden months in ascending order.
func (o Overrides) Months() []int {
	months := make([]int, 0, len(o))
	for month := range o {
		months = append(months, month)
	}
	sort.Ints(months)
	return months
}
