package model

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Period is a contiguous rate regime beginning at StartMonth (0-based) and
// running until the next period starts.
type Period struct {
	InterestRate       decimal.Decimal
	Payment            decimal.Decimal
	DefaultOverpayment decimal.Decimal
	StartMonth         int
}

// Periods resolves which period applies to a month. It is immutable once built.
type Periods struct {
	periods []Period
	// byStart is sorted by descending StartMonth, ties kept in insertion order.
	byStart []Period
}

// NewPeriods builds a schedule from periods in insertion order.
func NewPeriods(periods ...Period) Periods {
	inOrder := append([]Period(nil), periods...)
	byStart := append([]Period(nil), periods...)
	sort.SliceStable(byStart, func(i, j int) bool {
		return byStart[i].StartMonth > byStart[j].StartMonth
	})
	return Periods{periods: inOrder, byStart: byStart}
}

// GetPeriod returns the most recently started period at month: the one with
// the greatest StartMonth not after month. When two periods share a start
// month the one inserted first wins.
func (p Periods) GetPeriod(month int) (Period, error) {
	for _, period := range p.byStart {
		if period.StartMonth <= month {
			return period, nil
		}
	}
	return Period{}, fmt.Errorf("month %d: %w", month, ErrNoPeriod)
}

// All returns the periods in insertion order.
func (p Periods) All() []Period {
	return append([]Period(nil), p.periods...)
}

// Len returns the number of periods.
func (p Periods) Len() int {
	return len(p.periods)
}
