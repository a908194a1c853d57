package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/pkg/money"
)

// Phase names one of a mortgage's two rate periods.
type Phase int

const (
	// PhaseInitial is the period starting at month 0.
	PhaseInitial Phase = iota + 1
	// PhaseThereafter is the period starting at the end of the initial period.
	PhaseThereafter
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseThereafter:
		return "thereafter"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ParsePhase converts a phase name to a Phase.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "initial":
		return PhaseInitial, nil
	case "thereafter":
		return PhaseThereafter, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", s)
	}
}

// MortgageInputs are the values a ledger is computed from. Optional amounts are
// nil when the user has not entered them.
type MortgageInputs struct {
	Amount        decimal.Decimal
	StartYear     int
	StartMonth    int
	Term          int
	InitialPeriod int

	InterestRateInitial    decimal.Decimal
	InterestRateThereafter decimal.Decimal

	Income      decimal.Decimal
	Expenditure decimal.Decimal

	ActualPaymentInitial    *decimal.Decimal
	ActualPaymentThereafter *decimal.Decimal

	DefaultOverpaymentInitial    *decimal.Decimal
	DefaultOverpaymentThereafter *decimal.Decimal
}

// Validate checks the mortgage invariants.
func (in MortgageInputs) Validate() error {
	var problems []string

	if in.Amount.IsNegative() {
		problems = append(problems, "amount must not be negative")
	}
	if in.Term <= 0 {
		problems = append(problems, "term must be positive")
	}
	if in.InitialPeriod < 0 || in.InitialPeriod > in.Term {
		problems = append(problems, "initial period must be between 0 and the term")
	}
	if in.StartMonth < 1 || in.StartMonth > 12 {
		problems = append(problems, "start month must be between 1 and 12")
	}
	if in.StartYear <= 0 {
		problems = append(problems, "start year must be positive")
	}
	if in.InterestRateInitial.IsNegative() || in.InterestRateThereafter.IsNegative() {
		problems = append(problems, "interest rates must not be negative")
	}
	for _, d := range []*decimal.Decimal{in.DefaultOverpaymentInitial, in.DefaultOverpaymentThereafter} {
		if d != nil && d.IsNegative() {
			problems = append(problems, "default overpayments must not be negative")
			break
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMortgage, strings.Join(problems, "; "))
	}
	return nil
}

// DisposableIncome is income less expenditure, excluding mortgage payments.
func (in MortgageInputs) DisposableIncome() decimal.Decimal {
	return in.Income.Sub(in.Expenditure)
}

// InterestRate returns the annual rate of a phase.
func (in MortgageInputs) InterestRate(phase Phase) decimal.Decimal {
	if phase == PhaseThereafter {
		return in.InterestRateThereafter
	}
	return in.InterestRateInitial
}

// EffectiveRate is the annual rate of a phase quantised to the rate precision
// of r. Payments and interest are computed from it.
func (in MortgageInputs) EffectiveRate(phase Phase, r money.Rounding) decimal.Decimal {
	return r.Rate(in.InterestRate(phase))
}

// DefaultPayment is the formula payment for a phase. Both phases amortize the
// full amount over the full term at their own rate.
func (in MortgageInputs) DefaultPayment(phase Phase, r money.Rounding) (decimal.Decimal, error) {
	p, err := Payment(MonthlyRate(in.EffectiveRate(phase, r), r), in.Term, in.Amount, r)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s payment: %w", phase, err)
	}
	return p, nil
}

// ActualPayment returns the user-entered payment for a phase, if any.
func (in MortgageInputs) ActualPayment(phase Phase) *decimal.Decimal {
	if phase == PhaseThereafter {
		return in.ActualPaymentThereafter
	}
	return in.ActualPaymentInitial
}

// ResolvedPayment is the actual payment when entered, else the formula payment.
func (in MortgageInputs) ResolvedPayment(phase Phase, r money.Rounding) (decimal.Decimal, error) {
	if actual := in.ActualPayment(phase); actual != nil {
		return *actual, nil
	}
	return in.DefaultPayment(phase, r)
}

// ResolvedDefaultOverpayment is the stored default overpayment when present,
// else whatever disposable income is left after the formula payment, floored at zero.
func (in MortgageInputs) ResolvedDefaultOverpayment(phase Phase, r money.Rounding) (decimal.Decimal, error) {
	stored := in.DefaultOverpaymentInitial
	if phase == PhaseThereafter {
		stored = in.DefaultOverpaymentThereafter
	}
	if stored != nil {
		return *stored, nil
	}

	payment, err := in.DefaultPayment(phase, r)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Max(in.DisposableIncome().Sub(payment), decimal.Zero), nil
}

// Periods builds the two-period schedule: the initial period from month 0 and
// the thereafter period from InitialPeriod.
func (in MortgageInputs) Periods(r money.Rounding) (Periods, error) {
	var periods []Period
	for _, phase := range []Phase{PhaseInitial, PhaseThereafter} {
		payment, err := in.ResolvedPayment(phase, r)
		if err != nil {
			return Periods{}, err
		}
		overpayment, err := in.ResolvedDefaultOverpayment(phase, r)
		if err != nil {
			return Periods{}, err
		}

		start := 0
		if phase == PhaseThereafter {
			start = in.InitialPeriod
		}
		periods = append(periods, Period{
			InterestRate:       in.EffectiveRate(phase, r),
			Payment:            payment,
			DefaultOverpayment: overpayment,
			StartMonth:         start,
		})
	}
	return NewPeriods(periods...), nil
}

// Clone copies the inputs, including the optional amounts.
func (in MortgageInputs) Clone() MortgageInputs {
	out := in
	out.ActualPaymentInitial = clonePtr(in.ActualPaymentInitial)
	out.ActualPaymentThereafter = clonePtr(in.ActualPaymentThereafter)
	out.DefaultOverpaymentInitial = clonePtr(in.DefaultOverpaymentInitial)
	out.DefaultOverpaymentThereafter = clonePtr(in.DefaultOverpaymentThereafter)
	return out
}

func clonePtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
