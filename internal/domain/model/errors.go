package model

import "errors"

// Engine and aggregate sentinel errors. Callers wrap them with context and
// test them with errors.Is.
var (
	// ErrInvalidTerm is returned by the payment formula for a non-positive period count.
	ErrInvalidTerm = errors.New("term must be a positive number of months")
	// ErrDivisionSingularity is returned by the payment formula at a zero rate.
	ErrDivisionSingularity = errors.New("payment formula is undefined at a zero interest rate")
	// ErrNonConvergent is returned when a ledger does not reach a zero balance
	// within its iteration cap.
	ErrNonConvergent = errors.New("ledger did not converge to a zero balance")
	// ErrUnknownMonth is returned for a month outside the computed ledger.
	ErrUnknownMonth = errors.New("unknown ledger month")
	// ErrNoPeriod is returned when no period covers the requested month.
	ErrNoPeriod = errors.New("no period covers month")
	// ErrInvalidMortgage is returned when mortgage inputs violate an invariant.
	ErrInvalidMortgage = errors.New("invalid mortgage")
	// ErrInvalidAmount is returned for a rejected monetary amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMortgageNotFound is returned by repositories when no mortgage matches
	// the owner and ID.
	ErrMortgageNotFound = errors.New("mortgage not found")
)
