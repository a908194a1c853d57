package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/application/usecase"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/auth"
)

var _ MortgageServiceServer = (*MortgageHandler)(nil)

// UseCases groups the application operations exposed over gRPC.
type UseCases struct {
	Create           *usecase.CreateMortgageUseCase
	Update           *usecase.UpdateMortgageUseCase
	List             *usecase.ListMortgagesUseCase
	GetLedger        *usecase.GetLedgerUseCase
	GetMonthChoices  *usecase.GetMonthChoicesUseCase
	Speculate        *usecase.SpeculateUseCase
	Duplicate        *usecase.DuplicateMortgageUseCase
	Delete           *usecase.DeleteMortgageUseCase
	SetActualPayment *usecase.SetActualPaymentUseCase
	RecordAmount     *usecase.RecordAmountUseCase
	ClearAmount      *usecase.ClearAmountUseCase
}

// MortgageHandler implements the gRPC mortgage service handler. Every call
// acts on behalf of the user in the request's token.
type MortgageHandler struct {
	UnimplementedMortgageServiceServer
	uc     UseCases
	logger *slog.Logger
}

// NewMortgageHandler creates a new gRPC mortgage handler.
func NewMortgageHandler(uc UseCases, logger *slog.Logger) *MortgageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MortgageHandler{uc: uc, logger: logger}
}

func (h *MortgageHandler) CreateMortgage(ctx context.Context, req *CreateMortgageRequest) (*MortgageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	owner, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Create.Execute(ctx, dto.CreateMortgageRequest{
		OwnerID:                      owner,
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
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateMortgage", err)
	}
	return &result, nil
}

func (h *MortgageHandler) UpdateMortgage(ctx context.Context, req *UpdateMortgageRequest) (*MortgageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	target, err := mortgageRequest(ctx, &MortgageRequest{MortgageID: req.MortgageID})
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Update.Execute(ctx, dto.UpdateMortgageRequest{
		OwnerID:                target.OwnerID,
		MortgageID:             target.MortgageID,
		Amount:                 req.Amount,
		StartYear:              req.StartYear,
		StartMonth:             req.StartMonth,
		Term:                   req.Term,
		InitialPeriod:          req.InitialPeriod,
		InterestRateInitial:    req.InterestRateInitial,
		InterestRateThereafter: req.InterestRateThereafter,
		Income:                 req.Income,
		Expenditure:            req.Expenditure,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "UpdateMortgage", err)
	}
	return &result, nil
}

func (h *MortgageHandler) ListMortgages(ctx context.Context, _ *ListMortgagesRequest) (*ListMortgagesResponse, error) {
	owner, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List.Execute(ctx, dto.ListMortgagesRequest{OwnerID: owner})
	if err != nil {
		return nil, h.toStatus(ctx, "ListMortgages", err)
	}
	return &result, nil
}

func (h *MortgageHandler) GetLedger(ctx context.Context, req *MortgageRequest) (*LedgerResponse, error) {
	target, err := mortgageRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.GetLedger.Execute(ctx, target)
	if err != nil {
		return nil, h.toStatus(ctx, "GetLedger", err)
	}
	return &result, nil
}

func (h *MortgageHandler) GetMonthChoices(ctx context.Context, req *MortgageRequest) (*MonthChoicesResponse, error) {
	target, err := mortgageRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.GetMonthChoices.Execute(ctx, target)
	if err != nil {
		return nil, h.toStatus(ctx, "GetMonthChoices", err)
	}
	return &result, nil
}

func (h *MortgageHandler) Speculate(ctx context.Context, req *SpeculateRequest) (*SpeculationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	target, err := mortgageRequest(ctx, &MortgageRequest{MortgageID: req.MortgageID})
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Speculate.Execute(ctx, dto.SpeculateRequest{
		OwnerID:    target.OwnerID,
		MortgageID: target.MortgageID,
		Amount:     req.Amount,
		Month:      req.Month,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "Speculate", err)
	}
	return &result, nil
}

func (h *MortgageHandler) DuplicateMortgage(ctx context.Context, req *MortgageRequest) (*MortgageResponse, error) {
	target, err := mortgageRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Duplicate.Execute(ctx, target)
	if err != nil {
		return nil, h.toStatus(ctx, "DuplicateMortgage", err)
	}
	return &result, nil
}

func (h *MortgageHandler) DeleteMortgage(ctx context.Context, req *MortgageRequest) (*DeleteMortgageResponse, error) {
	target, err := mortgageRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Delete.Execute(ctx, target)
	if err != nil {
		return nil, h.toStatus(ctx, "DeleteMortgage", err)
	}
	return &result, nil
}

func (h *MortgageHandler) SetActualPayment(ctx context.Context, req *SetActualPaymentRequest) (*MortgageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	target, err := mortgageRequest(ctx, &MortgageRequest{MortgageID: req.MortgageID})
	if err != nil {
		return nil, err
	}

	result, err := h.uc.SetActualPayment.Execute(ctx, dto.SetActualPaymentRequest{
		OwnerID:    target.OwnerID,
		MortgageID: target.MortgageID,
		Phase:      req.Phase,
		Amount:     req.Amount,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "SetActualPayment", err)
	}
	return &result, nil
}

func (h *MortgageHandler) RecordAmount(ctx context.Context, req *RecordAmountRequest) (*AmountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	target, err := mortgageRequest(ctx, &MortgageRequest{MortgageID: req.MortgageID})
	if err != nil {
		return nil, err
	}

	result, err := h.uc.RecordAmount.Execute(ctx, dto.RecordAmountRequest{
		OwnerID:    target.OwnerID,
		MortgageID: target.MortgageID,
		Kind:       req.Kind,
		Month:      req.Month,
		Amount:     req.Amount,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "RecordAmount", err)
	}
	return &result, nil
}

func (h *MortgageHandler) ClearAmount(ctx context.Context, req *ClearAmountRequest) (*ClearAmountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	target, err := mortgageRequest(ctx, &MortgageRequest{MortgageID: req.MortgageID})
	if err != nil {
		return nil, err
	}

	result, err := h.uc.ClearAmount.Execute(ctx, dto.ClearAmountRequest{
		OwnerID:    target.OwnerID,
		MortgageID: target.MortgageID,
		Kind:       req.Kind,
		Month:      req.Month,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "ClearAmount", err)
	}
	return &result, nil
}

// mortgageRequest pairs the authenticated owner with the requested mortgage.
func mortgageRequest(ctx context.Context, req *MortgageRequest) (dto.MortgageRequest, error) {
	if req == nil {
		return dto.MortgageRequest{}, status.Error(codes.InvalidArgument, "request is required")
	}
	owner, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return dto.MortgageRequest{}, err
	}
	id, err := uuid.Parse(req.MortgageID)
	if err != nil {
		return dto.MortgageRequest{}, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid mortgage_id: %v", err))
	}
	return dto.MortgageRequest{OwnerID: owner, MortgageID: id}, nil
}

// toStatus maps application errors onto gRPC codes. Unexpected errors are
// logged and returned without their detail.
func (h *MortgageHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidMortgage),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrUnknownMonth):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrMortgageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrNonConvergent),
		errors.Is(err, model.ErrDivisionSingularity):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	h.logger.ErrorContext(ctx, "mortgage request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}
