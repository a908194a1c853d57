package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// ListMortgagesUseCase lists the caller's mortgages.
type ListMortgagesUseCase struct {
	mortgageRepo port.MortgageRepository
	settings     EngineSettings
}

// NewListMortgagesUseCase wires dependencies.
func NewListMortgagesUseCase(mortgageRepo port.MortgageRepository, settings EngineSettings) *ListMortgagesUseCase {
	return &ListMortgagesUseCase{mortgageRepo: mortgageRepo, settings: settings}
}

// Execute returns every mortgage owned by the caller.
func (uc *ListMortgagesUseCase) Execute(
	ctx context.Context,
	req dto.ListMortgagesRequest,
) (dto.ListMortgagesResponse, error) {
	mortgages, err := uc.mortgageRepo.FindByOwner(ctx, req.OwnerID)
	if err != nil {
		return dto.ListMortgagesResponse{}, fmt.Errorf("find mortgages: %w", err)
	}

	resp := dto.ListMortgagesResponse{Mortgages: make([]dto.MortgageResponse, 0, len(mortgages))}
	for _, m := range mortgages {
		resp.Mortgages = append(resp.Mortgages, toMortgageResponse(m, uc.settings.rounding()))
	}
	return resp, nil
}
