package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/pkg/money"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual interest rate into the per-month rate used by
// the payment formula.
func MonthlyRate(annual decimal.Decimal, r money.Rounding) decimal.Decimal {
	return r.Div(annual, twelve)
}

// Payment returns the level monthly payment that fully amortizes principal
// over periods months at the per-period rate:
//
//	j       = (1 + rate)^periods
//	payment = principal * rate * j / (j - 1)
//
// The power and quotient are held at the context's intermediate precision and
// the result is rounded to money precision. A zero rate is rejected rather
// than replaced by principal/periods.
func Payment(rate decimal.Decimal, periods int, principal decimal.Decimal, r money.Rounding) (decimal.Decimal, error) {
	if periods <= 0 {
		return decimal.Zero, fmt.Errorf("payment over %d periods: %w", periods, ErrInvalidTerm)
	}
	if rate.IsZero() {
		return decimal.Zero, fmt.Errorf("payment over %d periods: %w", periods, ErrDivisionSingularity)
	}

	j := r.PowInt(one.Add(rate), periods)
	denominator := j.Sub(one)
	if denominator.IsZero() {
		// The increment vanished below the intermediate precision.
		return decimal.Zero, fmt.Errorf("payment at rate %s: %w", rate, ErrDivisionSingularity)
	}

	factor := r.Div(rate.Mul(j), denominator)
	return r.Money(principal.Mul(factor)), nil
}
