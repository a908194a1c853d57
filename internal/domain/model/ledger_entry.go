package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one month of a ledger. Balances are signed from the lender's
// side: the loan opens at -principal, interest on a negative balance is
// negative, and payments and overpayments are positive contributions that move
// the balance toward zero. A discrepancy may carry either sign.
type LedgerEntry struct {
	MonthNumber int
	Year        int
	Month       int

	OpeningBalance decimal.Decimal
	Interest       decimal.Decimal
	Payment        decimal.Decimal
	Overpayment    decimal.Decimal
	Discrepancy    decimal.Decimal

	// DefaultOverpayment is the period's scheduled overpayment for the month,
	// before overrides and normalisation.
	DefaultOverpayment decimal.Decimal

	OverpaymentOverridden bool
	DiscrepancyOverridden bool
}

// ClosingBalance is the sum of the opening balance and every movement in the month.
func (e LedgerEntry) ClosingBalance() decimal.Decimal {
	return e.OpeningBalance.
		Add(e.Interest).
		Add(e.Payment).
		Add(e.Overpayment).
		Add(e.Discrepancy)
}

// MonthName formats the calendar month as YYYY-MM.
func (e LedgerEntry) MonthName() string {
	return fmt.Sprintf("%04d-%02d", e.Year, e.Month)
}

// OverpaymentDelta is how much less was overpaid than scheduled. It is
// positive when an override or the final payoff reduced the overpayment.
func (e LedgerEntry) OverpaymentDelta() decimal.Decimal {
	return e.DefaultOverpayment.Sub(e.Overpayment)
}

// Normalise clamps a month whose payments would overshoot payoff so that it
// closes at exactly zero. The scheduled payment is first capped at what is
// left to repay after interest and discrepancy, and the overpayment then
// absorbs the remainder. When a discrepancy alone leaves the balance positive
// the overpayment turns negative, refunding the excess.
func (e *LedgerEntry) Normalise() {
	if !e.ClosingBalance().IsPositive() {
		return
	}

	residual := e.OpeningBalance.Add(e.Interest).Add(e.Discrepancy)
	e.Payment = decimal.Min(e.Payment, decimal.Max(residual.Neg(), decimal.Zero))
	e.Overpayment = residual.Add(e.Payment).Neg()
}
