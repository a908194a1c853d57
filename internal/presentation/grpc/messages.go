package grpc

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/application/dto"
)

// The caller is always taken from the authenticated token, so requests carry
// no owner. Amounts travel as decimal strings.

// CreateMortgageRequest represents the gRPC request for creating a mortgage.
type CreateMortgageRequest struct {
	Amount                       decimal.Decimal  `json:"amount"`
	StartYear                    int              `json:"start_year"`
	StartMonth                   int              `json:"start_month"`
	Term                         int              `json:"term"`
	InitialPeriod                int              `json:"initial_period"`
	InterestRateInitial          decimal.Decimal  `json:"interest_rate_initial"`
	InterestRateThereafter       decimal.Decimal  `json:"interest_rate_thereafter"`
	Income                       decimal.Decimal  `json:"income"`
	Expenditure                  decimal.Decimal  `json:"expenditure"`
	DefaultOverpaymentInitial    *decimal.Decimal `json:"default_overpayment_initial,omitempty"`
	DefaultOverpaymentThereafter *decimal.Decimal `json:"default_overpayment_thereafter,omitempty"`
}

// UpdateMortgageRequest replaces the editable terms of a mortgage.
type UpdateMortgageRequest struct {
	MortgageID             string          `json:"mortgage_id"`
	Amount                 decimal.Decimal `json:"amount"`
	StartYear              int             `json:"start_year"`
	StartMonth             int             `json:"start_month"`
	Term                   int             `json:"term"`
	InitialPeriod          int             `json:"initial_period"`
	InterestRateInitial    decimal.Decimal `json:"interest_rate_initial"`
	InterestRateThereafter decimal.Decimal `json:"interest_rate_thereafter"`
	Income                 decimal.Decimal `json:"income"`
	Expenditure            decimal.Decimal `json:"expenditure"`
}

type ListMortgagesRequest struct{}

// MortgageRequest names one of the caller's mortgages.
type MortgageRequest struct {
	MortgageID string `json:"mortgage_id"`
}

type SpeculateRequest struct {
	MortgageID string          `json:"mortgage_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"`
}

// SetActualPaymentRequest clears the stored payment when Amount is omitted.
type SetActualPaymentRequest struct {
	MortgageID string           `json:"mortgage_id"`
	Phase      string           `json:"phase"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

type RecordAmountRequest struct {
	MortgageID string          `json:"mortgage_id"`
	Kind       string          `json:"kind"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

type ClearAmountRequest struct {
	MortgageID string `json:"mortgage_id"`
	Kind       string `json:"kind"`
	Month      int    `json:"month"`
}

// Responses share the application DTO shapes.
type (
	MortgageResponse       = dto.MortgageResponse
	ListMortgagesResponse  = dto.ListMortgagesResponse
	LedgerResponse         = dto.LedgerResponse
	MonthChoicesResponse   = dto.MonthChoicesResponse
	SpeculationResponse    = dto.SpeculationResponse
	DeleteMortgageResponse = dto.DeleteMortgageResponse
	AmountResponse         = dto.AmountResponse
	ClearAmountResponse    = dto.ClearAmountResponse
)
