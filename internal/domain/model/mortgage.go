package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/pkg/money"
)

// ---------------------------------------------------------------------------
// Mortgage aggregate root
// ---------------------------------------------------------------------------

// Mortgage is an immutable aggregate. Every mutation returns a new copy.
type Mortgage struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	inputs       MortgageInputs
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewMortgage validates the inputs, stores the derived default overpayments
// and emits MortgageCreated.
func NewMortgage(ownerID uuid.UUID, inputs MortgageInputs, r money.Rounding, now time.Time) (Mortgage, error) {
	if ownerID == uuid.Nil {
		return Mortgage{}, errors.New("owner ID is required")
	}
	if err := inputs.Validate(); err != nil {
		return Mortgage{}, err
	}

	resolved, err := ensureDefaults(inputs, r)
	if err != nil {
		return Mortgage{}, err
	}

	m := Mortgage{
		id:        uuid.New(),
		ownerID:   ownerID,
		inputs:    resolved,
		createdAt: now,
		updatedAt: now,
	}
	m.domainEvents = append(m.domainEvents, event.NewMortgageCreated(
		m.id.String(), ownerID.String(), resolved.Amount, resolved.Term, resolved.StartYear, resolved.StartMonth, now,
	))
	return m, nil
}

// ReconstructMortgage rebuilds an aggregate from persistence without side-effects.
func ReconstructMortgage(id, ownerID uuid.UUID, inputs MortgageInputs, createdAt, updatedAt time.Time) Mortgage {
	return Mortgage{
		id:        id,
		ownerID:   ownerID,
		inputs:    inputs.Clone(),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ensureDefaults fills in any missing default overpayment from disposable income.
func ensureDefaults(in MortgageInputs, r money.Rounding) (MortgageInputs, error) {
	out := in.Clone()
	if out.DefaultOverpaymentInitial == nil {
		d, err := out.ResolvedDefaultOverpayment(PhaseInitial, r)
		if err != nil {
			return MortgageInputs{}, fmt.Errorf("default overpayment: %w", err)
		}
		out.DefaultOverpaymentInitial = &d
	}
	if out.DefaultOverpaymentThereafter == nil {
		d, err := out.ResolvedDefaultOverpayment(PhaseThereafter, r)
		if err != nil {
			return MortgageInputs{}, fmt.Errorf("default overpayment: %w", err)
		}
		out.DefaultOverpaymentThereafter = &d
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// WithActualPayment records the payment actually made during a phase. An
// amount equal to the formula payment, or nil, clears the stored value.
func (m Mortgage) WithActualPayment(phase Phase, amount *decimal.Decimal, r money.Rounding, now time.Time) (Mortgage, error) {
	if phase != PhaseInitial && phase != PhaseThereafter {
		return m, fmt.Errorf("unknown phase %d", int(phase))
	}
	if amount != nil && !amount.IsPositive() {
		return m, fmt.Errorf("actual payment %s: %w", amount, ErrInvalidAmount)
	}

	var stored *decimal.Decimal
	if amount != nil {
		def, err := m.inputs.DefaultPayment(phase, r)
		if err != nil {
			return m, err
		}
		if !def.Equal(*amount) {
			v := *amount
			stored = &v
		}
	}

	next := m
	next.inputs = m.inputs.Clone()
	if phase == PhaseInitial {
		next.inputs.ActualPaymentInitial = stored
	} else {
		next.inputs.ActualPaymentThereafter = stored
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewActualPaymentSet(
		m.id.String(), m.ownerID.String(), phase.String(), stored, now,
	))
	return next, nil
}

// WithInputs replaces the editable terms: amount, start date, term, initial
// period, both rates, income and expenditure. Actual payments and stored
// default overpayments are kept; only missing defaults are derived again.
func (m Mortgage) WithInputs(edit MortgageInputs, r money.Rounding, now time.Time) (Mortgage, error) {
	in := m.inputs.Clone()
	in.Amount = edit.Amount
	in.StartYear = edit.StartYear
	in.StartMonth = edit.StartMonth
	in.Term = edit.Term
	in.InitialPeriod = edit.InitialPeriod
	in.InterestRateInitial = edit.InterestRateInitial
	in.InterestRateThereafter = edit.InterestRateThereafter
	in.Income = edit.Income
	in.Expenditure = edit.Expenditure

	if err := in.Validate(); err != nil {
		return m, err
	}
	resolved, err := ensureDefaults(in, r)
	if err != nil {
		return m, err
	}

	next := m
	next.inputs = resolved
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMortgageUpdated(
		m.id.String(), m.ownerID.String(),
		resolved.Amount, resolved.Term, resolved.InitialPeriod, resolved.StartYear, resolved.StartMonth, now,
	))
	return next, nil
}

// Duplicate returns a copy under a new ID. Actual payments and stored
// defaults are carried over. The caller copies the monthly amounts.
func (m Mortgage) Duplicate(now time.Time) Mortgage {
	dup := Mortgage{
		id:        uuid.New(),
		ownerID:   m.ownerID,
		inputs:    m.inputs.Clone(),
		createdAt: now,
		updatedAt: now,
	}
	dup.domainEvents = append(dup.domainEvents, event.NewMortgageDuplicated(
		dup.id.String(), m.ownerID.String(), m.id.String(), now,
	))
	return dup
}

// MarkDeleted emits MortgageDeleted. The aggregate is otherwise unchanged.
func (m Mortgage) MarkDeleted(now time.Time) Mortgage {
	next := m
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMortgageDeleted(
		m.id.String(), m.ownerID.String(), now,
	))
	return next
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Ledger builds an empty ledger for the mortgage.
func (m Mortgage) Ledger(overpayments, discrepancies Overrides, opts ...LedgerOption) (*Ledger, error) {
	return NewLedger(m.inputs, overpayments, discrepancies, opts...)
}

// String describes the mortgage, for example "Mortgage of 156000 commencing 2020-01".
func (m Mortgage) String() string {
	return fmt.Sprintf("Mortgage of %s commencing %04d-%02d", m.inputs.Amount, m.inputs.StartYear, m.inputs.StartMonth)
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (m Mortgage) ID() uuid.UUID                     { return m.id }
func (m Mortgage) OwnerID() uuid.UUID                { return m.ownerID }
func (m Mortgage) Inputs() MortgageInputs            { return m.inputs.Clone() }
func (m Mortgage) Amount() decimal.Decimal           { return m.inputs.Amount }
func (m Mortgage) Term() int                         { return m.inputs.Term }
func (m Mortgage) InitialPeriod() int                { return m.inputs.InitialPeriod }
func (m Mortgage) CreatedAt() time.Time              { return m.createdAt }
func (m Mortgage) UpdatedAt() time.Time              { return m.updatedAt }
func (m Mortgage) DomainEvents() []event.DomainEvent { return copyEvents(m.domainEvents) }

// ClearEvents returns a copy with no pending domain events.
func (m Mortgage) ClearEvents() Mortgage {
	next := m
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
