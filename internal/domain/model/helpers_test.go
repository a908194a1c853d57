package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

func ptr(s string) *decimal.Decimal {
	d := testutil.D(s)
	return &d
}

// flatInputs is 100000 over 120 months at a flat 3% with the given default
// overpayment in both phases.
func flatInputs(overpayment string) model.MortgageInputs {
	return model.MortgageInputs{
		Amount:                       testutil.D("100000"),
		StartYear:                    2020,
		StartMonth:                   1,
		Term:                         120,
		InitialPeriod:                60,
		InterestRateInitial:          testutil.D("0.03"),
		InterestRateThereafter:       testutil.D("0.03"),
		DefaultOverpaymentInitial:    ptr(overpayment),
		DefaultOverpaymentThereafter: ptr(overpayment),
	}
}

// twoRateInputs is 156000 over 180 months, 1.84% for 24 months then 3.99%.
func twoRateInputs() model.MortgageInputs {
	return model.MortgageInputs{
		Amount:                       testutil.D("156000"),
		StartYear:                    2019,
		StartMonth:                   6,
		Term:                         180,
		InitialPeriod:                24,
		InterestRateInitial:          testutil.D("0.0184"),
		InterestRateThereafter:       testutil.D("0.0399"),
		DefaultOverpaymentInitial:    ptr("0"),
		DefaultOverpaymentThereafter: ptr("0"),
	}
}

func newLedger(t *testing.T, inputs model.MortgageInputs, overpayments model.Overrides, opts ...model.LedgerOption) *model.Ledger {
	t.Helper()
	l, err := model.NewLedger(inputs, overpayments, nil, opts...)
	require.NoError(t, err)
	return l
}

func completeLedger(t *testing.T, inputs model.MortgageInputs, overpayments model.Overrides) *model.Ledger {
	t.Helper()
	l := newLedger(t, inputs, overpayments)
	require.NoError(t, l.CalculateEntries())
	return l
}
