package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/dto"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
	"github.com/bibbank/mortgage-service/internal/domain/service"
	"github.com/bibbank/mortgage-service/pkg/money"
)

// EngineSettings configures how ledgers are computed.
type EngineSettings struct {
	Rounding          money.Rounding
	MaxMonthsFactor   int
	WhatIfConcurrency int
}

// DefaultEngineSettings uses the standard rounding and the default caps.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		Rounding:          money.Standard,
		MaxMonthsFactor:   model.DefaultMaxMonthsFactor,
		WhatIfConcurrency: service.DefaultWhatIfConcurrency,
	}
}

func (s EngineSettings) rounding() money.Rounding {
	if s.Rounding.IsZero() {
		return money.Standard
	}
	return s.Rounding
}

func (s EngineSettings) ledgerOptions() []model.LedgerOption {
	return []model.LedgerOption{
		model.WithRounding(s.rounding()),
		model.WithMaxMonthsFactor(s.MaxMonthsFactor),
	}
}

// ledgerLoader builds ledgers from stored mortgages and their amounts.
type ledgerLoader struct {
	amountRepo port.AmountRepository
	settings   EngineSettings
}

func (l ledgerLoader) load(ctx context.Context, m model.Mortgage) (*model.Ledger, error) {
	amounts, err := l.amountRepo.ForMortgage(ctx, m.ID(), 0)
	if err != nil {
		return nil, fmt.Errorf("load amounts: %w", err)
	}

	ledger, err := m.Ledger(
		model.OverridesFrom(amounts, model.KindOverpayment),
		model.OverridesFrom(amounts, model.KindDiscrepancy),
		l.settings.ledgerOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("build ledger: %w", err)
	}
	return ledger, nil
}

type noopRecorder struct{}

func (noopRecorder) RecordComputation(context.Context, string, int, time.Duration, error) {}

func recorderOrNoop(r port.ComputationRecorder) port.ComputationRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toMortgageResponse(m model.Mortgage, r money.Rounding) dto.MortgageResponse {
	in := m.Inputs()
	resp := dto.MortgageResponse{
		ID:                           m.ID(),
		OwnerID:                      m.OwnerID(),
		Description:                  m.String(),
		Amount:                       in.Amount,
		StartYear:                    in.StartYear,
		StartMonth:                   in.StartMonth,
		Term:                         in.Term,
		InitialPeriod:                in.InitialPeriod,
		InterestRateInitial:          in.InterestRateInitial,
		InterestRateThereafter:       in.InterestRateThereafter,
		Income:                       in.Income,
		Expenditure:                  in.Expenditure,
		ActualPaymentInitial:         in.ActualPaymentInitial,
		ActualPaymentThereafter:      in.ActualPaymentThereafter,
		DefaultOverpaymentInitial:    in.DefaultOverpaymentInitial,
		DefaultOverpaymentThereafter: in.DefaultOverpaymentThereafter,
		CreatedAt:                    m.CreatedAt(),
		UpdatedAt:                    m.UpdatedAt(),
	}
	// The formula payment is undefined at a zero rate and is then omitted.
	if p, err := in.DefaultPayment(model.PhaseInitial, r); err == nil {
		resp.DefaultPaymentInitial = &p
	}
	if p, err := in.DefaultPayment(model.PhaseThereafter, r); err == nil {
		resp.DefaultPaymentThereafter = &p
	}
	return resp
}

func toEntryResponses(entries []model.LedgerEntry) []dto.LedgerEntryResponse {
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponse{
			Month:                 e.MonthNumber,
			Name:                  e.MonthName(),
			OpeningBalance:        e.OpeningBalance,
			Interest:              e.Interest,
			Payment:               e.Payment,
			Overpayment:           e.Overpayment,
			Discrepancy:           e.Discrepancy,
			ClosingBalance:        e.ClosingBalance(),
			OverpaymentDelta:      e.OverpaymentDelta(),
			OverpaymentOverridden: e.OverpaymentOverridden,
			DiscrepancyOverridden: e.DiscrepancyOverridden,
		})
	}
	return out
}

func toAmountResponse(a model.MonthlyAmount) dto.AmountResponse {
	return dto.AmountResponse{
		ID:         a.ID,
		MortgageID: a.MortgageID,
		Kind:       a.Kind.String(),
		Month:      a.Month,
		Amount:     a.Amount,
	}
}
