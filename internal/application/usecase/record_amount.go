package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
)

// RecordAmountUseCase stores an overpayment or discrepancy for one month,
// replacing any amount already recorded there.
type RecordAmountUseCase struct {
	mortgageRepo port.MortgageRepository
	amountRepo   port.AmountRepository
	publisher    port.EventPublisher
}

// NewRecordAmountUseCase wires dependencies.
func NewRecordAmountUseCase(
	mortgageRepo port.MortgageRepository,
	amountRepo port.AmountRepository,
	publisher port.EventPublisher,
) *RecordAmountUseCase {
	return &RecordAmountUseCase{
		mortgageRepo: mortgageRepo,
		amountRepo:   amountRepo,
		publisher:    publisher,
	}
}

// Execute validates and upserts the amount.
func (uc *RecordAmountUseCase) Execute(
	ctx context.Context,
	req dto.RecordAmountRequest,
) (dto.AmountResponse, error) {
	now := time.Now().UTC()

	kind, err := model.ParseOverrideKind(req.Kind)
	if err != nil {
		return dto.AmountResponse{}, fmt.Errorf("parse kind: %w: %w", model.ErrInvalidAmount, err)
	}

	// 1. Retrieve the mortgage to confirm ownership.
	m, err := uc.mortgageRepo.FindByID(ctx, req.OwnerID, req.MortgageID)
	if err != nil {
		return dto.AmountResponse{}, fmt.Errorf("find mortgage: %w", err)
	}

	// 2. Build the record.
	amount, err := model.NewMonthlyAmount(m.ID(), kind, req.Month, req.Amount)
	if err != nil {
		return dto.AmountResponse{}, fmt.Errorf("create amount: %w", err)
	}

	// 3. Persist.
	if err := uc.amountRepo.Upsert(ctx, amount); err != nil {
		return dto.AmountResponse{}, fmt.Errorf("save amount: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, amount.Recorded(m.OwnerID(), now)); err != nil {
		return dto.AmountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAmountResponse(amount), nil
}
