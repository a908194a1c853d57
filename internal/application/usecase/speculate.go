package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/port"
	"github.com/bibbank/mortgage-service/internal/domain/service"
)

// SpeculateUseCase evaluates a hypothetical lump sum. Nothing is stored.
type SpeculateUseCase struct {
	mortgageRepo port.MortgageRepository
	loader       ledgerLoader
	speculator   *service.Speculator
	recorder     port.ComputationRecorder
}

// NewSpeculateUseCase wires dependencies. recorder may be nil.
func NewSpeculateUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	recorder port.ComputationRecorder,
	settings EngineSettings,
) *SpeculateUseCase {
	return &SpeculateUseCase{
		mortgageRepo: mortgageRepo,
		loader:       ledgerLoader{amountRepo: amountRepo, settings: settings},
		speculator:   service.NewSpeculator(),
		recorder:     recorderOrNoop(recorder),
	}
}

// Execute runs the speculation against a freshly built ledger.
func (uc *SpeculateUseCase) Execute(
	ctx context.Context,
	req dto.SpeculateRequest,
) (dto.SpeculationResponse, error) {
	// 1. Retrieve the mortgage.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.SpeculationResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Build the ledger.
	ledger, err := uc.loader.load(ctx, m)
	if err != nil {
		return dto.SpeculationResponse{}, err
	}

	// 3. Speculate on a clone.
	start := time.Now()
	result, err := uc.speculator.Speculate(ledger, req.Amount, req.Month)
	uc.recorder.RecordComputation(ctx, "speculate", len(result.Entries), time.Since(start), err)
	if err != nil {
		return dto.SpeculationResponse{}, fmt.Errorf("speculate: %w", err)
	}

	resp := dto.SpeculationResponse{
		MortgageID:  m.ID(),
		Amount:      result.Amount,
		Month:       result.Month,
		BaseCost:    result.BaseCost,
		NewCost:     result.NewCost,
		Delta:       result.Delta,
		NoMoney:     result.NoMoney,
		Allocations: make([]dto.AllocationResponse, 0, len(result.Allocations)),
	}
	for _, a := range result.Allocations {
		resp.Allocations = append(resp.Allocations, dto.AllocationResponse{Month: a.Month, From: a.From, To: a.To})
	}
	return resp, nil
}
