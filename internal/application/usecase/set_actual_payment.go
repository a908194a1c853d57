package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// SetActualPaymentUseCase stores the payment actually made during a phase.
type SetActualPaymentUseCase struct {
	mortgageRepo port.MortgageRepository
	publisher    port.EventPublisher
	settings     EngineSettings
}

// NewSetActualPaymentUseCase wires dependencies.
func NewSetActualPaymentUseCase(
	mortgageRepo port.MortgageRepository,
	publisher port.EventPublisher,
	settings EngineSettings,
) *SetActualPaymentUseCase {
	return &SetActualPaymentUseCase{
		mortgageRepo: mortgageRepo,
		publisher:    publisher,
		settings:     settings,
	}
}

// Execute records the payment. A payment equal to the formula payment is
// cleared instead of stored.
func (uc *SetActualPaymentUseCase) Execute(
	ctx context.Context,
	req dto.SetActualPaymentRequest,
) (dto.MortgageResponse, error) {
	now := time.Now().UTC()

	phase, err := model.ParsePhase(req.Phase)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("parse phase: %w: %w", model.ErrInvalidMortgage, err)
	}

	// 1. Retrieve the mortgage.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Apply the payment.
	m, err = m.WithActualPayment(phase, req.Amount, uc.settings.rounding(), now)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("set actual payment: %w", err)
	}

	// 3. Persist.
	if err := uc.mortgageRepo.Save(ctx, m); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("save mortgage: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, m.DomainEvents()...); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toMortgageResponse(m, uc.settings.rounding()), nil
}
