package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// DuplicateMortgageUseCase copies a mortgage together with its actual
// payments and monthly amounts.
type DuplicateMortgageUseCase struct {
	mortgageRepo port.MortgageRepository
	amountRepo   port.AmountRepository
	publisher    port.EventPublisher
	settings     EngineSettings
}

// NewDuplicateMortgageUseCase wires dependencies.
func NewDuplicateMortgageUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	publisher port.EventPublisher,
	settings EngineSettings,
) *DuplicateMortgageUseCase {
	return &DuplicateMortgageUseCase{
		mortgageRepo: mortgageRepo,
		amountRepo:   amountRepo,
		publisher:    publisher,
		settings:     settings,
	}
}

// Execute stores the copy and its amounts in one transaction.
func (uc *DuplicateMortgageUseCase) Execute(
	ctx context.Context,
	req dto.DuplicateMortgageRequest,
) (dto.MortgageResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the source mortgage and its amounts.
	source, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("find mortgage: %w", err)
	}
	amounts, err := uc.amountRepo.ForMortgage(ctx, source.ID(), 0)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("load amounts: %w", err)
	}

	// 2. Copy under a new ID.
	dup := source.Duplicate(now)
	copied := make([]model.MonthlyAmount, 0, len(amounts))
	for _, a := range amounts {
		copied = append(copied, a.DuplicateFor(dup.ID()))
	}

	// 3. Persist atomically.
	if err := uc.mortgageRepo.SaveWithAmounts(ctx, dup, copied); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("save duplicate: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, dup.DomainEvents()...); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toMortgageResponse(dup, uc.settings.rounding()), nil
}
