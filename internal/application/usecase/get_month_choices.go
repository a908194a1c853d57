package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// GetMonthChoicesUseCase lists the months a speculation can target.
type GetMonthChoicesUseCase struct {
	mortgageRepo port.MortgageRepository
	loader       ledgerLoader
	recorder     port.ComputationRecorder
}

// NewGetMonthChoicesUseCase wires dependencies. recorder may be nil.
func NewGetMonthChoicesUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	recorder port.ComputationRecorder,
	settings EngineSettings,
) *GetMonthChoicesUseCase {
	return &GetMonthChoicesUseCase{
		mortgageRepo: mortgageRepo,
		loader:       ledgerLoader{amountRepo: amountRepo, settings: settings},
		recorder:     recorderOrNoop(recorder),
	}
}

// Execute computes the ledger and returns every month in it.
func (uc *GetMonthChoicesUseCase) Execute(
	ctx context.Context,
	req dto.GetMonthChoicesRequest,
) (dto.MonthChoicesResponse, error) {
	// 1. Retrieve the mortgage.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.MonthChoicesResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Build and complete the ledger.
	ledger, err := uc.loader.load(ctx, m)
	if err != nil {
		return dto.MonthChoicesResponse{}, err
	}

	start := time.Now()
	choices, err := ledger.MonthChoices()
	uc.recorder.RecordComputation(ctx, "month_choices", ledger.Len(), time.Since(start), err)
	if err != nil {
		return dto.MonthChoicesResponse{}, fmt.Errorf("list months: %w", err)
	}

	resp := dto.MonthChoicesResponse{
		MortgageID: m.ID(),
		Choices:    make([]dto.MonthChoiceResponse, 0, len(choices)),
	}
	for _, c := range choices {
		resp.Choices = append(resp.Choices, dto.MonthChoiceResponse{Month: c.Month, Name: c.Name})
	}
	return resp, nil
}
