package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/port"
	"github.com/bibbank/mortgage-service/internal/domain/service"
)

// GetLedgerUseCase computes a mortgage's full ledger, its total cost and the
// effect of each overpayment override.
type GetLedgerUseCase struct {
	mortgageRepo port.MortgageRepository
	loader       ledgerLoader
	analyzer     *service.WhatIfAnalyzer
	recorder     port.ComputationRecorder
}

// NewGetLedgerUseCase wires dependencies. recorder may be nil.
func NewGetLedgerUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	recorder port.ComputationRecorder,
	settings EngineSettings,
) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		mortgageRepo: mortgageRepo,
		loader:       ledgerLoader{amountRepo: amountRepo, settings: settings},
		analyzer:     service.NewWhatIfAnalyzer(settings.WhatIfConcurrency),
		recorder:     recorderOrNoop(recorder),
	}
}

// Execute loads the mortgage and its amounts and computes the ledger.
func (uc *GetLedgerUseCase) Execute(
	ctx context.Context,
	req dto.GetLedgerRequest,
) (resp dto.LedgerResponse, err error) {
	// 1. Retrieve the mortgage.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Build the ledger from the stored overrides.
	ledger, err := uc.loader.load(ctx, m)
	if err != nil {
		return dto.LedgerResponse{}, err
	}

	start := time.Now()
	defer func() {
		uc.recorder.RecordComputation(ctx, "ledger", ledger.Len(), time.Since(start), err)
	}()

	// 3. Compute the cost and the per-override deltas.
	whatIf, err := uc.analyzer.Analyze(ctx, ledger)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("analyze ledger: %w", err)
	}

	resp = dto.LedgerResponse{
		MortgageID: m.ID(),
		Entries:    toEntryResponses(ledger.Entries()),
		TotalCost:  whatIf.Baseline,
		WhatIf:     make([]dto.WhatIfResponse, 0, len(whatIf.Deltas)),
	}
	for _, d := range whatIf.Deltas {
		resp.WhatIf = append(resp.WhatIf, dto.WhatIfResponse{Month: d.Month, Delta: d.Delta})
	}
	return resp, nil
}
