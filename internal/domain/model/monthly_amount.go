package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/domain/event"
)

// MonthlyAmount is a persisted override: an overpayment or discrepancy the
// user entered for one month of a mortgage. At most one exists per
// (mortgage, kind, month).
type MonthlyAmount struct {
	ID         uuid.UUID
	MortgageID uuid.UUID
	Kind       OverrideKind
	Month      int
	Amount     decimal.Decimal
}

// NewMonthlyAmount validates and creates an amount record. Overpayments must
// not be negative; discrepancies may carry either sign.
func NewMonthlyAmount(mortgageID uuid.UUID, kind OverrideKind, month int, amount decimal.Decimal) (MonthlyAmount, error) {
	if mortgageID == uuid.Nil {
		return MonthlyAmount{}, errors.New("mortgage ID is required")
	}
	if !kind.Valid() {
		return MonthlyAmount{}, fmt.Errorf("unknown override kind %d", int(kind))
	}
	if month < 0 {
		return MonthlyAmount{}, fmt.Errorf("month %d: %w", month, ErrUnknownMonth)
	}
	if kind == KindOverpayment && amount.IsNegative() {
		return MonthlyAmount{}, fmt.Errorf("overpayment %s: %w", amount, ErrInvalidAmount)
	}
	return MonthlyAmount{
		ID:         uuid.New(),
		MortgageID: mortgageID,
		Kind:       kind,
		Month:      month,
		Amount:     amount,
	}, nil
}

// DuplicateFor copies the amount onto another mortgage.
func (a MonthlyAmount) DuplicateFor(mortgageID uuid.UUID) MonthlyAmount {
	a.ID = uuid.New()
	a.MortgageID = mortgageID
	return a
}

// Recorded returns the event announcing the amount was stored.
func (a MonthlyAmount) Recorded(ownerID uuid.UUID, now time.Time) event.AmountRecorded {
	return event.NewAmountRecorded(a.MortgageID.String(), ownerID.String(), a.Kind.String(), a.Month, a.Amount, now)
}

// OverridesFrom collects amounts of one kind into a month-keyed map. Later
// records for the same month replace earlier ones.
func OverridesFrom(amounts []MonthlyAmount, kind OverrideKind) Overrides {
	out := make(Overrides)
	for _, a := range amounts {
		if a.Kind == kind {
			out[a.Month] = a.Amount
		}
	}
	return out
}
