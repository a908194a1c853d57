package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/money"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

func TestNewLedger(t *testing.T) {
	t.Run("starts empty at minus the principal", func(t *testing.T) {
		l := newLedger(t, flatInputs("50"), nil)

		assert.Equal(t, 0, l.Len())
		testutil.AssertDecimal(t, "-100000", l.Balance())
		assert.False(t, l.Complete())
		assert.Equal(t, 1200, l.MaxMonths())
		assert.Equal(t, money.Standard, l.Rounding())
		assert.Equal(t, 2, l.Periods().Len())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		in := flatInputs("50")
		in.Term = 0
		_, err := model.NewLedger(in, nil, nil)
		assert.ErrorIs(t, err, model.ErrInvalidMortgage)
	})

	t.Run("owns copies of the override maps", func(t *testing.T) {
		overpayments := model.Overrides{3: testutil.D("100")}
		l := newLedger(t, flatInputs("50"), overpayments)
		overpayments[4] = testutil.D("1")

		assert.Len(t, l.Overrides(model.KindOverpayment), 1)
	})

	t.Run("applies options", func(t *testing.T) {
		r := money.MustRounding(money.HalfUp, 2, 5)
		l := newLedger(t, flatInputs("50"), nil, model.WithRounding(r), model.WithMaxMonthsFactor(3))

		assert.Equal(t, r, l.Rounding())
		assert.Equal(t, 360, l.MaxMonths())
	})
}

func TestLedger_CalculateEntry(t *testing.T) {
	l := newLedger(t, flatInputs("50"), nil)
	require.NoError(t, l.CalculateEntry())

	e, ok := l.Entry(0)
	require.True(t, ok)
	assert.Equal(t, 0, e.MonthNumber)
	assert.Equal(t, "2020-01", e.MonthName())
	testutil.AssertDecimal(t, "-100000", e.OpeningBalance)
	testutil.AssertDecimal(t, "-250.00", e.Interest)
	testutil.AssertDecimal(t, "965.61", e.Payment)
	testutil.AssertDecimal(t, "50", e.Overpayment)
	testutil.AssertDecimal(t, "-99234.39", e.ClosingBalance())
	testutil.AssertDecimal(t, "-99234.39", l.Balance())

	_, ok = l.Entry(1)
	assert.False(t, ok)
}

func TestLedger_CalculateEntries(t *testing.T) {
	tests := []struct {
		name         string
		inputs       model.MortgageInputs
		overpayments model.Overrides
		wantLen      int
		wantCost     string
		lastOpening  string
		lastInterest string
		lastPayment  string
	}{
		{
			name:         "flat rate without overpayments",
			inputs:       flatInputs("0"),
			wantLen:      120,
			wantCost:     "15872.91",
			lastOpening:  "-962.91",
			lastInterest: "-2.41",
			lastPayment:  "965.32",
		},
		{
			name:         "flat rate with a monthly overpayment",
			inputs:       flatInputs("50"),
			wantLen:      114,
			wantCost:     "14936.70",
			lastOpening:  "-172.34",
			lastInterest: "-0.43",
			lastPayment:  "172.77",
		},
		{
			name:         "two rate periods",
			inputs:       twoRateInputs(),
			wantLen:      177,
			wantCost:     "43402.04",
			lastOpening:  "-307.18",
			lastInterest: "-1.02",
			lastPayment:  "308.20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(t, tt.inputs, tt.overpayments)

			cost, err := l.CalculateCost()
			require.NoError(t, err)
			testutil.AssertDecimal(t, tt.wantCost, cost)

			require.Equal(t, tt.wantLen, l.Len())
			assert.True(t, l.Complete())

			last, ok := l.Entry(l.Len() - 1)
			require.True(t, ok)
			testutil.AssertDecimal(t, tt.lastOpening, last.OpeningBalance)
			testutil.AssertDecimal(t, tt.lastInterest, last.Interest)
			testutil.AssertDecimal(t, tt.lastPayment, last.Payment)
			assert.True(t, last.Overpayment.IsZero())
			assert.True(t, last.ClosingBalance().IsZero())
		})
	}
}

func TestLedger_Continuity(t *testing.T) {
	l := completeLedger(t, twoRateInputs(), model.Overrides{30: testutil.D("5000")})
	entries := l.Entries()

	testutil.AssertDecimal(t, "-156000", entries[0].OpeningBalance)
	for i := 1; i < len(entries); i++ {
		require.True(t, entries[i].OpeningBalance.Equal(entries[i-1].ClosingBalance()),
			"month %d opens at %s, month %d closed at %s",
			i, entries[i].OpeningBalance, i-1, entries[i-1].ClosingBalance())
		require.Equal(t, i, entries[i].MonthNumber)
		require.True(t, entries[i-1].ClosingBalance().IsNegative(), "month %d closed early", i-1)
	}
}

func TestLedger_SwitchesPeriod(t *testing.T) {
	l := completeLedger(t, twoRateInputs(), nil)

	before, _ := l.Entry(23)
	after, _ := l.Entry(24)
	testutil.AssertDecimal(t, "992.42", before.Payment)
	testutil.AssertDecimal(t, "-137600.35", after.OpeningBalance)
	testutil.AssertDecimal(t, "-457.52", after.Interest)
	testutil.AssertDecimal(t, "1153.13", after.Payment)
}

func TestLedger_CalculateCost(t *testing.T) {
	t.Run("includes discrepancies", func(t *testing.T) {
		l, err := model.NewLedger(flatInputs("50"), nil, model.Overrides{3: testutil.D("-120.00")})
		require.NoError(t, err)

		cost, err := l.CalculateCost()
		require.NoError(t, err)
		testutil.AssertDecimal(t, "15094.68", cost)

		e, _ := l.Entry(3)
		assert.True(t, e.DiscrepancyOverridden)
		testutil.AssertDecimal(t, "-120", e.Discrepancy)
	})

	t.Run("overpayment override shortens the ledger", func(t *testing.T) {
		l := newLedger(t, flatInputs("50"), model.Overrides{0: testutil.D("2000")})

		cost, err := l.CalculateCost()
		require.NoError(t, err)
		testutil.AssertDecimal(t, "14311.49", cost)
		assert.Equal(t, 111, l.Len())

		e, _ := l.Entry(0)
		assert.True(t, e.OverpaymentOverridden)
		testutil.AssertDecimal(t, "-1950", e.OverpaymentDelta())
	})

	t.Run("memoised until invalidated", func(t *testing.T) {
		l := newLedger(t, flatInputs("50"), nil)

		first, err := l.CalculateCost()
		require.NoError(t, err)
		second, err := l.CalculateCost()
		require.NoError(t, err)
		assert.True(t, first.Equal(second))

		l.Invalidate(50)
		assert.Equal(t, 50, l.Len())
		third, err := l.CalculateCost()
		require.NoError(t, err)
		assert.True(t, first.Equal(third))
		assert.Equal(t, 114, l.Len())
	})
}

func TestLedger_NonConvergent(t *testing.T) {
	in := flatInputs("0")
	in.ActualPaymentInitial = ptr("100")
	in.ActualPaymentThereafter = ptr("100")

	t.Run("default cap", func(t *testing.T) {
		l := newLedger(t, in, nil)
		err := l.CalculateEntries()
		assert.ErrorIs(t, err, model.ErrNonConvergent)
		assert.Equal(t, 1200, l.Len())
	})

	t.Run("configured cap", func(t *testing.T) {
		l := newLedger(t, in, nil, model.WithMaxMonthsFactor(2))
		_, err := l.CalculateCost()
		assert.ErrorIs(t, err, model.ErrNonConvergent)
		assert.Equal(t, 240, l.Len())
	})
}

func TestLedger_TruncateOnEdit(t *testing.T) {
	l := completeLedger(t, flatInputs("50"), nil)
	snapshot := l.Entries()

	require.NoError(t, l.SetOverpayment(30, testutil.D("2000")))
	require.Equal(t, 30, l.Len())
	assert.Equal(t, snapshot[:30], l.Entries())

	require.NoError(t, l.CalculateEntries())
	entries := l.Entries()
	assert.Equal(t, snapshot[:30], entries[:30])
	assert.Less(t, l.Len(), len(snapshot))

	edited := entries[30]
	testutil.AssertDecimal(t, "2000", edited.Overpayment)
	assert.True(t, edited.OverpaymentOverridden)
	assert.False(t, entries[31].OverpaymentOverridden)

	t.Run("setting the same value again keeps every entry", func(t *testing.T) {
		n := l.Len()
		require.NoError(t, l.SetOverpayment(30, testutil.D("2000.00")))
		assert.Equal(t, n, l.Len())
	})

	t.Run("deleting truncates back to the edit", func(t *testing.T) {
		require.NoError(t, l.DeleteOverpayment(30))
		assert.Equal(t, 30, l.Len())
		require.NoError(t, l.CalculateEntries())
		assert.Equal(t, snapshot, l.Entries())
	})
}

func TestLedger_TruncateOnDiscrepancyEdit(t *testing.T) {
	l := completeLedger(t, flatInputs("50"), nil)
	snapshot := l.Entries()

	require.NoError(t, l.SetDiscrepancy(40, testutil.D("-300")))
	require.Equal(t, 40, l.Len())
	assert.Equal(t, snapshot[:40], l.Entries())

	require.NoError(t, l.CalculateEntries())
	entries := l.Entries()
	assert.Equal(t, snapshot[:40], entries[:40])
	assert.NotEqual(t, snapshot[40], entries[40])

	edited := entries[40]
	testutil.AssertDecimal(t, "-300", edited.Discrepancy)
	assert.True(t, edited.DiscrepancyOverridden)
	assert.False(t, entries[41].DiscrepancyOverridden)

	require.NoError(t, l.DeleteDiscrepancy(40))
	assert.Equal(t, 40, l.Len())
	require.NoError(t, l.CalculateEntries())
	assert.Equal(t, snapshot, l.Entries())
}

func TestLedger_DiscrepancyRefund(t *testing.T) {
	l := completeLedger(t, flatInputs("50"), nil)
	require.Equal(t, 114, l.Len())

	require.NoError(t, l.SetDiscrepancy(112, testutil.D("5000")))
	require.NoError(t, l.CalculateEntries())
	require.Equal(t, 113, l.Len())

	last, ok := l.Entry(112)
	require.True(t, ok)
	assert.True(t, last.Payment.IsZero())
	assert.True(t, last.Overpayment.IsNegative(), "overpayment %s", last.Overpayment)
	testutil.AssertDecimal(t,
		last.OpeningBalance.Add(last.Interest).Add(last.Discrepancy).Neg().String(),
		last.Overpayment)
	assert.True(t, last.ClosingBalance().IsZero())
	assert.True(t, l.Complete())
}

func TestLedger_OverrideEqualToDefault(t *testing.T) {
	l := completeLedger(t, flatInputs("50"), nil)

	require.NoError(t, l.SetOverpayment(10, testutil.D("50")))
	assert.Equal(t, 114, l.Len())
	e, _ := l.Entry(10)
	assert.True(t, e.OverpaymentOverridden)
	assert.Contains(t, l.Overrides(model.KindOverpayment), 10)

	require.NoError(t, l.DeleteOverpayment(10))
	assert.Equal(t, 114, l.Len())
	e, _ = l.Entry(10)
	assert.False(t, e.OverpaymentOverridden)
	assert.Empty(t, l.Overrides(model.KindOverpayment))

	t.Run("deleting a missing override is a no-op", func(t *testing.T) {
		require.NoError(t, l.DeleteDiscrepancy(10))
		assert.Equal(t, 114, l.Len())
	})

	t.Run("zero discrepancy matches the default", func(t *testing.T) {
		require.NoError(t, l.SetDiscrepancy(12, testutil.D("0")))
		assert.Equal(t, 114, l.Len())

		require.NoError(t, l.SetDiscrepancy(12, testutil.D("25")))
		assert.Equal(t, 12, l.Len())
	})
}

func TestLedger_UnknownMonth(t *testing.T) {
	t.Run("nothing computed yet", func(t *testing.T) {
		l := newLedger(t, flatInputs("50"), nil)
		assert.ErrorIs(t, l.SetOverpayment(0, testutil.D("10")), model.ErrUnknownMonth)
	})

	t.Run("outside the computed months", func(t *testing.T) {
		l := completeLedger(t, flatInputs("50"), nil)
		assert.ErrorIs(t, l.SetOverpayment(114, testutil.D("10")), model.ErrUnknownMonth)
		assert.ErrorIs(t, l.SetDiscrepancy(-1, testutil.D("10")), model.ErrUnknownMonth)
		assert.ErrorIs(t, l.DeleteOverpayment(500), model.ErrUnknownMonth)
	})

	t.Run("unknown kind", func(t *testing.T) {
		l := completeLedger(t, flatInputs("50"), nil)
		assert.Error(t, l.SetOverride(model.OverrideKind(7), 0, testutil.D("1")))
		assert.Nil(t, l.Overrides(model.OverrideKind(7)))
	})
}

func TestLedger_Clone(t *testing.T) {
	l := completeLedger(t, flatInputs("50"), model.Overrides{5: testutil.D("100")})
	baseline, err := l.CalculateCost()
	require.NoError(t, err)

	c := l.Clone()
	require.NoError(t, c.SetOverpayment(10, testutil.D("0")))
	require.NoError(t, c.DeleteOverpayment(5))
	_, err = c.CalculateCost()
	require.NoError(t, err)

	assert.Equal(t, 114, l.Len())
	assert.Equal(t, []int{5}, l.Overrides(model.KindOverpayment).Months())
	cost, err := l.CalculateCost()
	require.NoError(t, err)
	assert.True(t, baseline.Equal(cost))
}

func TestLedger_MonthChoices(t *testing.T) {
	l := newLedger(t, flatInputs("50"), nil)

	choices, err := l.MonthChoices()
	require.NoError(t, err)
	require.Len(t, choices, 114)

	assert.Equal(t, model.MonthChoice{Month: 0, Name: "2020-01"}, choices[0])
	assert.Equal(t, model.MonthChoice{Month: 12, Name: "2021-01"}, choices[12])
	assert.Equal(t, model.MonthChoice{Month: 113, Name: "2029-06"}, choices[113])
}
