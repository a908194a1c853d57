package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// AggregateMortgage is the aggregate type carried by every mortgage event.
const AggregateMortgage = "Mortgage"

// Event type names.
const (
	TypeMortgageCreated    = "mortgage.created"
	TypeMortgageUpdated    = "mortgage.updated"
	TypeMortgageDuplicated = "mortgage.duplicated"
	TypeMortgageDeleted    = "mortgage.deleted"
	TypeActualPaymentSet   = "mortgage.actual_payment_set"
	TypeAmountRecorded     = "mortgage.amount_recorded"
	TypeAmountCleared      = "mortgage.amount_cleared"
)

// ---------------------------------------------------------------------------
// Mortgage Events
// ---------------------------------------------------------------------------

// MortgageCreated is raised when a mortgage is first saved.
type MortgageCreated struct {
	events.BaseEvent
	Amount     decimal.Decimal `json:"amount"`
	Term       int             `json:"term"`
	StartYear  int             `json:"start_year"`
	StartMonth int             `json:"start_month"`
}

func NewMortgageCreated(
	mortgageID, ownerID string,
	amount decimal.Decimal, term, startYear, startMonth int, occurredAt time.Time,
) MortgageCreated {
	return MortgageCreated{
		BaseEvent:  events.NewBaseEventAt(TypeMortgageCreated, mortgageID, AggregateMortgage, ownerID, occurredAt),
		Amount:     amount,
		Term:       term,
		StartYear:  startYear,
		StartMonth: startMonth,
	}
}

// MortgageUpdated is raised when a mortgage's terms are edited.
type MortgageUpdated struct {
	events.BaseEvent
	Amount        decimal.Decimal `json:"amount"`
	Term          int             `json:"term"`
	InitialPeriod int             `json:"initial_period"`
	StartYear     int             `json:"start_year"`
	StartMonth    int             `json:"start_month"`
}

func NewMortgageUpdated(
	mortgageID, ownerID string,
	amount decimal.Decimal, term, initialPeriod, startYear, startMonth int, occurredAt time.Time,
) MortgageUpdated {
	return MortgageUpdated{
		BaseEvent:     events.NewBaseEventAt(TypeMortgageUpdated, mortgageID, AggregateMortgage, ownerID, occurredAt),
		Amount:        amount,
		Term:          term,
		InitialPeriod: initialPeriod,
		StartYear:     startYear,
		StartMonth:    startMonth,
	}
}

// MortgageDuplicated is raised on the copy when a mortgage is duplicated.
type MortgageDuplicated struct {
	events.BaseEvent
	SourceID string `json:"source_id"`
}

func NewMortgageDuplicated(mortgageID, ownerID, sourceID string, occurredAt time.Time) MortgageDuplicated {
	return MortgageDuplicated{
		BaseEvent: events.NewBaseEventAt(TypeMortgageDuplicated, mortgageID, AggregateMortgage, ownerID, occurredAt),
		SourceID:  sourceID,
	}
}

// MortgageDeleted is raised when a mortgage and its amounts are removed.
type MortgageDeleted struct {
	events.BaseEvent
}

func NewMortgageDeleted(mortgageID, ownerID string, occurredAt time.Time) MortgageDeleted {
	return MortgageDeleted{
		BaseEvent: events.NewBaseEventAt(TypeMortgageDeleted, mortgageID, AggregateMortgage, ownerID, occurredAt),
	}
}

// ActualPaymentSet is raised when a phase's actual payment is stored or
// cleared. Amount is nil when cleared.
type ActualPaymentSet struct {
	events.BaseEvent
	Phase  string           `json:"phase"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func NewActualPaymentSet(mortgageID, ownerID, phase string, amount *decimal.Decimal, occurredAt time.Time) ActualPaymentSet {
	return ActualPaymentSet{
		BaseEvent: events.NewBaseEventAt(TypeActualPaymentSet, mortgageID, AggregateMortgage, ownerID, occurredAt),
		Phase:     phase,
		Amount:    amount,
	}
}

// ---------------------------------------------------------------------------
// Monthly Amount Events
// ---------------------------------------------------------------------------

// AmountRecorded is raised when an overpayment or discrepancy is stored.
type AmountRecorded struct {
	events.BaseEvent
	Kind   string          `json:"kind"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func NewAmountRecorded(
	mortgageID, ownerID, kind string, month int, amount decimal.Decimal, occurredAt time.Time,
) AmountRecorded {
	return AmountRecorded{
		BaseEvent: events.NewBaseEventAt(TypeAmountRecorded, mortgageID, AggregateMortgage, ownerID, occurredAt),
		Kind:      kind,
		Month:     month,
		Amount:    amount,
	}
}

// AmountCleared is raised when an overpayment or discrepancy is removed.
type AmountCleared struct {
	events.BaseEvent
	Kind  string `json:"kind"`
	Month int    `json:"month"`
}

func NewAmountCleared(mortgageID, ownerID, kind string, month int, occurredAt time.Time) AmountCleared {
	return AmountCleared{
		BaseEvent: events.NewBaseEventAt(TypeAmountCleared, mortgageID, AggregateMortgage, ownerID, occurredAt),
		Kind:      kind,
		Month:     month,
	}
}
