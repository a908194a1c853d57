package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/domain/model"
)

// Allocation records one month whose overpayment a lump sum replaced.
type Allocation struct {
	Month int
	From  decimal.Decimal
	To    decimal.Decimal
}

// Speculation is the outcome of paying a hypothetical lump sum.
type Speculation struct {
	Amount   decimal.Decimal
	Month    int
	BaseCost decimal.Decimal
	NewCost  decimal.Decimal
	// Delta is the net saving: interest avoided less the lump sum spent from
	// overpayments. Positive means the lump sum beat its face value.
	Delta decimal.Decimal
	// NoMoney is set when the lump sum exceeds every overpayment from Month
	// back to month 0.
	NoMoney     bool
	Allocations []Allocation
	Entries     []model.LedgerEntry
}

// Speculator is a domain service that answers "what if a lump sum had been
// paid in this month". The lump sum replaces the overpayments of the target
// month and, if it is larger, of the months before it.
type Speculator struct{}

// NewSpeculator creates a new Speculator.
func NewSpeculator() *Speculator {
	return &Speculator{}
}

// Speculate runs the lump sum against a clone of ledger. The ledger passed in
// is completed but its overrides are never modified.
func (s *Speculator) Speculate(ledger *model.Ledger, amount decimal.Decimal, month int) (Speculation, error) {
	if !amount.IsPositive() {
		return Speculation{}, fmt.Errorf("lump sum %s: %w", amount, model.ErrInvalidAmount)
	}

	baseCost, err := ledger.CalculateCost()
	if err != nil {
		return Speculation{}, fmt.Errorf("calculate base cost: %w", err)
	}
	if month < 0 || month >= ledger.Len() {
		return Speculation{}, fmt.Errorf("speculate at month %d of %d: %w", month, ledger.Len(), model.ErrUnknownMonth)
	}

	work := ledger.Clone()
	result := Speculation{
		Amount:   amount,
		Month:    month,
		BaseCost: baseCost,
	}

	remaining := amount
	for pointer := month; remaining.IsPositive(); pointer-- {
		if pointer < 0 {
			result.NoMoney = true
			break
		}

		// Entries before pointer survive the previous truncation.
		entry, ok := work.Entry(pointer)
		if !ok {
			return Speculation{}, fmt.Errorf("read month %d: %w", pointer, model.ErrUnknownMonth)
		}
		existing := decimal.Max(entry.Overpayment, decimal.Zero)
		replaced := decimal.Max(existing.Sub(remaining), decimal.Zero)

		if err := work.SetOverpayment(pointer, replaced); err != nil {
			return Speculation{}, fmt.Errorf("replace overpayment at month %d: %w", pointer, err)
		}
		if !existing.Equal(replaced) {
			result.Allocations = append(result.Allocations, Allocation{Month: pointer, From: existing, To: replaced})
		}
		remaining = remaining.Sub(existing)
	}

	newCost, err := work.CalculateCost()
	if err != nil {
		return Speculation{}, fmt.Errorf("calculate speculative cost: %w", err)
	}

	result.NewCost = newCost
	result.Delta = baseCost.Sub(newCost).Add(amount)
	result.Entries = work.Entries()
	return result, nil
}
