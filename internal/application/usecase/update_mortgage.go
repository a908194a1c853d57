package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// UpdateMortgageUseCase edits the terms of an existing mortgage.
type UpdateMortgageUseCase struct {
	mortgageRepo port.MortgageRepository
	publisher    port.EventPublisher
	settings     EngineSettings
}

// NewUpdateMortgageUseCase wires dependencies.
func NewUpdateMortgageUseCase(
	mortgageRepo port.MortgageRepository,
	publisher port.EventPublisher,
	settings EngineSettings,
) *UpdateMortgageUseCase {
	return &UpdateMortgageUseCase{
		mortgageRepo: mortgageRepo,
		publisher:    publisher,
		settings:     settings,
	}
}

// Execute replaces the mortgage's terms. Stored amounts are kept even when
// the new term no longer reaches their month.
func (uc *UpdateMortgageUseCase) Execute(
	ctx context.Context,
	req dto.UpdateMortgageRequest,
) (dto.MortgageResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the mortgage.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Apply the new terms.
	m, err = m.WithInputs(model.MortgageInputs{
		Amount:                 req.Amount,
		StartYear:              req.StartYear,
		StartMonth:             req.StartMonth,
		Term:                   req.Term,
		InitialPeriod:          req.InitialPeriod,
		InterestRateInitial:    req.InterestRateInitial,
		InterestRateThereafter: req.InterestRateThereafter,
		Income:                 req.Income,
		Expenditure:            req.Expenditure,
	}, uc.settings.rounding(), now)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("update mortgage: %w", err)
	}

	// 3. Persist.
	if err := uc.mortgageRepo.Update(ctx, m); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("save mortgage: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, m.DomainEvents()...); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toMortgageResponse(m, uc.settings.rounding()), nil
}
