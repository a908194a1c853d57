package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// ClearAmountUseCase removes an overpayment or discrepancy for one month.
type ClearAmountUseCase struct {
	mortgageRepo port.MortgageRepository
	amountRepo   port.AmountRepository
	publisher    port.EventPublisher
}

// NewClearAmountUseCase wires dependencies.
func NewClearAmountUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	publisher port.EventPublisher,
) *ClearAmountUseCase {
	return &ClearAmountUseCase{
		mortgageRepo: mortgageRepo,
		amountRepo:   amountRepo,
		publisher:    publisher,
	}
}

// Execute deletes the amount. Clearing a month with nothing stored succeeds
// with Cleared false and publishes nothing.
func (uc *ClearAmountUseCase) Execute(
	ctx context.Context,
	req dto.ClearAmountRequest,
) (dto.ClearAmountResponse, error) {
	now := time.Now().UTC()

	kind, err := model.ParseOverrideKind(req.Kind)
	if err != nil {
		return dto.ClearAmountResponse{}, fmt.Errorf("parse kind: %w: %w", model.ErrInvalidAmount, err)
	}

	// 1. Retrieve the mortgage to confirm ownership.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.ClearAmountResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Delete.
	cleared, err := uc.amountRepo.Delete(ctx, m.ID(), kind, req.Month)
	if err != nil {
		return dto.ClearAmountResponse{}, fmt.Errorf("delete amount: %w", err)
	}

	resp := dto.ClearAmountResponse{
		MortgageID: m.ID(),
		Kind:       kind.String(),
		Month:      req.Month,
		Cleared:    cleared,
	}
	if !cleared {
		return resp, nil
	}

	// 3. Publish events.
	evt := event.NewAmountCleared(m.ID().String(), m.OwnerID().String(), kind.String(), req.Month, now)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.ClearAmountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return resp, nil
}
