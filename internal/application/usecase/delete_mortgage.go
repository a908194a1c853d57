package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// DeleteMortgageUseCase removes a mortgage and its amounts.
type DeleteMortgageUseCase struct {
	mortgageRepo port.MortgageRepository
	publisher    port.EventPublisher
}

// NewDeleteMortgageUseCase wires dependencies.
func NewDeleteMortgageUseCase(mortgageRepo port.MortgageRepository, publisher port.EventPublisher) *DeleteMortgageUseCase {
	return &DeleteMortgageUseCase{mortgageRepo: mortgageRepo, publisher: publisher}
}

// Execute deletes the caller's mortgage.
func (uc *DeleteMortgageUseCase) Execute(
	ctx context.Context,
	req dto.DeleteMortgageRequest,
) (dto.DeleteMortgageResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the mortgage to confirm ownership.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.DeleteMortgageResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Delete.
	if err := uc.mortgageRepo.Delete(ctx, req.OwnerID, m.ID()); err != nil {
		return dto.DeleteMortgageResponse{}, fmt.Errorf("delete mortgage: %w", err)
	}

	// 3. Publish events.
	deleted := m.ClearEvents().MarkDeleted(now)
	if err := uc.publisher.Publish(ctx, deleted.DomainEvents()...); err != nil {
		return dto.DeleteMortgageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.DeleteMortgageResponse{MortgageID: m.ID()}, nil
}
