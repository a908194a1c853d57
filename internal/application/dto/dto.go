package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateMortgageRequest carries the data needed to create a mortgage. Default
// overpayments are derived from disposable income when omitted.
type CreateMortgageRequest struct {
	OwnerID                      uuid.UUID        `json:"owner_id"`
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

// UpdateMortgageRequest replaces the editable terms of a mortgage. Actual
// payments and default overpayments are left as stored.
type UpdateMortgageRequest struct {
	OwnerID                uuid.UUID       `json:"owner_id"`
	MortgageID             uuid.UUID       `json:"mortgage_id"`
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

// MortgageRequest identifies one of the caller's mortgages.
type MortgageRequest struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	MortgageID uuid.UUID `json:"mortgage_id"`
}

// GetLedgerRequest identifies the mortgage whose ledger is computed.
type GetLedgerRequest = MortgageRequest

// GetMonthChoicesRequest identifies the mortgage whose months are listed.
type GetMonthChoicesRequest = MortgageRequest

// DuplicateMortgageRequest identifies the mortgage to copy.
type DuplicateMortgageRequest = MortgageRequest

// DeleteMortgageRequest identifies the mortgage to delete.
type DeleteMortgageRequest = MortgageRequest

// ListMortgagesRequest lists every mortgage of an owner.
type ListMortgagesRequest struct {
	OwnerID uuid.UUID `json:"owner_id"`
}

// SetActualPaymentRequest stores or clears the payment actually made during
// a phase ("initial" or "thereafter"). A nil amount clears it.
type SetActualPaymentRequest struct {
	OwnerID    uuid.UUID        `json:"owner_id"`
	MortgageID uuid.UUID        `json:"mortgage_id"`
	Phase      string           `json:"phase"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

// RecordAmountRequest stores an overpayment or discrepancy for one month.
type RecordAmountRequest struct {
	OwnerID    uuid.UUID       `json:"owner_id"`
	MortgageID uuid.UUID       `json:"mortgage_id"`
	Kind       string          `json:"kind"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// ClearAmountRequest removes an overpayment or discrepancy for one month.
type ClearAmountRequest struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	MortgageID uuid.UUID `json:"mortgage_id"`
	Kind       string    `json:"kind"`
	Month      int       `json:"month"`
}

// SpeculateRequest asks what a lump sum paid in Month would have saved.
type SpeculateRequest struct {
	OwnerID    uuid.UUID       `json:"owner_id"`
	MortgageID uuid.UUID       `json:"mortgage_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// MortgageResponse is the external representation of a mortgage.
type MortgageResponse struct {
	ID                           uuid.UUID        `json:"id"`
	OwnerID                      uuid.UUID        `json:"owner_id"`
	Description                  string           `json:"description"`
	Amount                       decimal.Decimal  `json:"amount"`
	StartYear                    int              `json:"start_year"`
	StartMonth                   int              `json:"start_month"`
	Term                         int              `json:"term"`
	InitialPeriod                int              `json:"initial_period"`
	InterestRateInitial          decimal.Decimal  `json:"interest_rate_initial"`
	InterestRateThereafter       decimal.Decimal  `json:"interest_rate_thereafter"`
	Income                       decimal.Decimal  `json:"income"`
	Expenditure                  decimal.Decimal  `json:"expenditure"`
	DefaultPaymentInitial        *decimal.Decimal `json:"default_payment_initial,omitempty"`
	DefaultPaymentThereafter     *decimal.Decimal `json:"default_payment_thereafter,omitempty"`
	ActualPaymentInitial         *decimal.Decimal `json:"actual_payment_initial,omitempty"`
	ActualPaymentThereafter      *decimal.Decimal `json:"actual_payment_thereafter,omitempty"`
	DefaultOverpaymentInitial    *decimal.Decimal `json:"default_overpayment_initial,omitempty"`
	DefaultOverpaymentThereafter *decimal.Decimal `json:"default_overpayment_thereafter,omitempty"`
	CreatedAt                    time.Time        `json:"created_at"`
	UpdatedAt                    time.Time        `json:"updated_at"`
}

// ListMortgagesResponse wraps the caller's mortgages.
type ListMortgagesResponse struct {
	Mortgages []MortgageResponse `json:"mortgages"`
}

// LedgerEntryResponse is one computed month.
type LedgerEntryResponse struct {
	Month                 int             `json:"month"`
	Name                  string          `json:"name"`
	OpeningBalance        decimal.Decimal `json:"opening_balance"`
	Interest              decimal.Decimal `json:"interest"`
	Payment               decimal.Decimal `json:"payment"`
	Overpayment           decimal.Decimal `json:"overpayment"`
	Discrepancy           decimal.Decimal `json:"discrepancy"`
	ClosingBalance        decimal.Decimal `json:"closing_balance"`
	OverpaymentDelta      decimal.Decimal `json:"overpayment_delta"`
	OverpaymentOverridden bool            `json:"overpayment_overridden"`
	DiscrepancyOverridden bool            `json:"discrepancy_overridden"`
}

// WhatIfResponse is the cost change from dropping one month's overpayment.
type WhatIfResponse struct {
	Month int             `json:"month"`
	Delta decimal.Decimal `json:"delta"`
}

// LedgerResponse is the full computed ledger of a mortgage.
type LedgerResponse struct {
	MortgageID uuid.UUID             `json:"mortgage_id"`
	Entries    []LedgerEntryResponse `json:"entries"`
	TotalCost  decimal.Decimal       `json:"total_cost"`
	WhatIf     []WhatIfResponse      `json:"what_if"`
}

// MonthChoiceResponse is a month that speculation may target.
type MonthChoiceResponse struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
}

// MonthChoicesResponse lists every month of a mortgage's ledger.
type MonthChoicesResponse struct {
	MortgageID uuid.UUID             `json:"mortgage_id"`
	Choices    []MonthChoiceResponse `json:"choices"`
}

// AllocationResponse is a month whose overpayment a lump sum replaced.
type AllocationResponse struct {
	Month int             `json:"month"`
	From  decimal.Decimal `json:"from"`
	To    decimal.Decimal `json:"to"`
}

// SpeculationResponse is the outcome of a hypothetical lump sum.
type SpeculationResponse struct {
	MortgageID  uuid.UUID            `json:"mortgage_id"`
	Amount      decimal.Decimal      `json:"amount"`
	Month       int                  `json:"month"`
	BaseCost    decimal.Decimal      `json:"base_cost"`
	NewCost     decimal.Decimal      `json:"new_cost"`
	Delta       decimal.Decimal      `json:"delta"`
	NoMoney     bool                 `json:"no_money"`
	Allocations []AllocationResponse `json:"allocations"`
}

// AmountResponse is a stored overpayment or discrepancy.
type AmountResponse struct {
	ID         uuid.UUID       `json:"id"`
	MortgageID uuid.UUID       `json:"mortgage_id"`
	Kind       string          `json:"kind"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// ClearAmountResponse reports whether an amount was removed.
type ClearAmountResponse struct {
	MortgageID uuid.UUID `json:"mortgage_id"`
	Kind       string    `json:"kind"`
	Month      int       `json:"month"`
	Cleared    bool      `json:"cleared"`
}

// DeleteMortgageResponse acknowledges a deleted mortgage.
type DeleteMortgageResponse struct {
	MortgageID uuid.UUID `json:"mortgage_id"`
}
