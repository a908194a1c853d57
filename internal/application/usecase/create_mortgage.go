package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// CreateMortgageUseCase stores a new mortgage.
type CreateMortgageUseCase struct {
	mortgageRepo port.MortgageRepository
	publisher    port.EventPublisher
	settings     EngineSettings
}

// NewCreateMortgageUseCase wires dependencies.
func NewCreateMortgageUseCase(
	mortgageRepo port.MortgageRepository,
	publisher port.EventPublisher,
	settings EngineSettings,
) *CreateMortgageUseCase {
	return &CreateMortgageUseCase{
		mortgageRepo: mortgageRepo,
		publisher:    publisher,
		settings:     settings,
	}
}

// Execute validates the inputs, fills in default overpayments and saves the mortgage.
func (uc *CreateMortgageUseCase) Execute(
	ctx context.Context,
	req dto.CreateMortgageRequest,
) (dto.MortgageResponse, error) {
	now := time.Now().UTC()

	// 1. Build the aggregate.
	m, err := model.NewMortgage(req.OwnerID, model.MortgageInputs{
		Amount:                       req.Amount,
		StartYear:                    req.StartYear,
		StartMonth:                   req.StartMonth,
		Term:                         req.Term,
		InitialPeriod:                req.InitialPeriod,
		InterestRateInitial:          req.InterestRateInitial,
		InterestRateThereafter:       req.InterestRateThereafter,
		Income:                       req.Income,
		Expenditure:                  req.Expenditure,
		DefaultOverpaymentInitial:    req.DefaultOverpaymentInitial,
		DefaultOverpaymentThereafter: req.DefaultOverpaymentThereafter,
	}, uc.settings.rounding(), now)
	if err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("create mortgage: %w", err)
	}

	// 2. Persist.
	if err := uc.mortgageRepo.Save(ctx, m); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("save mortgage: %w", err)
	}

	// 3. Publish events.
	if err := uc.publisher.Publish(ctx, m.DomainEvents()...); err != nil {
		return dto.MortgageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toMortgageResponse(m, uc.settings.rounding()), nil
}
