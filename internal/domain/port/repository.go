package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// MortgageRepository persists and retrieves mortgages. Every read is scoped
// to the owner; a mortgage owned by someone else is reported as
// model.ErrMortgageNotFound.
type MortgageRepository interface {
	Save(ctx context.Context, m model.Mortgage) error
	// SaveWithAmounts stores a mortgage together with its monthly amounts in
	// one transaction.
	SaveWithAmounts(ctx context.Context, m model.Mortgage, amounts []model.MonthlyAmount) error
	// Update overwrites an existing mortgage of the same owner, reporting
	// model.ErrMortgageNotFound when there is none.
	Update(ctx context.Context, m model.Mortgage) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (model.Mortgage, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Mortgage, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// AmountRepository persists the per-month overpayments and discrepancies.
type AmountRepository interface {
	// Upsert replaces any amount already stored for the same mortgage, kind and month.
	Upsert(ctx context.Context, amount model.MonthlyAmount) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind, month int) (bool, error)
	// ForMortgage lists the amounts of a kind ordered by month. A zero kind
	// lists every kind.
	ForMortgage(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind) ([]model.MonthlyAmount, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Observability port
// ---------------------------------------------------------------------------

// ComputationRecorder records the cost of a ledger computation.
type ComputationRecorder interface {
	RecordComputation(ctx context.Context, operation string, months int, elapsed time.Duration, err error)
}
