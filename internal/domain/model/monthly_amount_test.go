package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

func TestNewMonthlyAmount(t *testing.T) {
	t.Run("creates an overpayment", func(t *testing.T) {
		a, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindOverpayment, 5, testutil.D("1000"))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, testutil.TestMortgageID, a.MortgageID)
		assert.Equal(t, 5, a.Month)
	})

	t.Run("allows negative discrepancies", func(t *testing.T) {
		_, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindDiscrepancy, 0, testutil.D("-12.50"))
		assert.NoError(t, err)
	})

	t.Run("rejects negative overpayments", func(t *testing.T) {
		_, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindOverpayment, 0, testutil.D("-1"))
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	})

	t.Run("rejects negative months", func(t *testing.T) {
		_, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindOverpayment, -1, testutil.D("1"))
		assert.ErrorIs(t, err, model.ErrUnknownMonth)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.OverrideKind(0), 0, testutil.D("1"))
		assert.Error(t, err)
	})

	t.Run("rejects nil mortgage", func(t *testing.T) {
		_, err := model.NewMonthlyAmount(uuid.Nil, model.KindOverpayment, 0, testutil.D("1"))
		testutil.AssertErrorContains(t, err, "mortgage ID is required")
	})
}

func TestMonthlyAmount_DuplicateFor(t *testing.T) {
	a, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindDiscrepancy, 3, testutil.D("7"))
	require.NoError(t, err)

	other := uuid.New()
	dup := a.DuplicateFor(other)

	assert.NotEqual(t, a.ID, dup.ID)
	assert.Equal(t, other, dup.MortgageID)
	assert.Equal(t, testutil.TestMortgageID, a.MortgageID)
	assert.Equal(t, a.Month, dup.Month)
}

func TestMonthlyAmount_Recorded(t *testing.T) {
	a, err := model.NewMonthlyAmount(testutil.TestMortgageID, model.KindOverpayment, 3, testutil.D("7"))
	require.NoError(t, err)

	e := a.Recorded(testutil.TestOwnerID, testNow)
	assert.Equal(t, event.TypeAmountRecorded, e.EventType())
	assert.Equal(t, "overpayment", e.Kind)
	assert.Equal(t, 3, e.Month)
	assert.Equal(t, testutil.TestMortgageID.String(), e.AggregateID())
}

func TestOverridesFrom(t *testing.T) {
	amounts := []model.MonthlyAmount{
		{Kind: model.KindOverpayment, Month: 5, Amount: testutil.D("1000")},
		{Kind: model.KindDiscrepancy, Month: 5, Amount: testutil.D("-3")},
		{Kind: model.KindOverpayment, Month: 20, Amount: testutil.D("250")},
	}

	overpayments := model.OverridesFrom(amounts, model.KindOverpayment)
	assert.Equal(t, []int{5, 20}, overpayments.Months())
	testutil.AssertDecimal(t, "250", overpayments[20])

	discrepancies := model.OverridesFrom(amounts, model.KindDiscrepancy)
	require.Len(t, discrepancies, 1)
	testutil.AssertDecimal(t, "-3", discrepancies[5])

	assert.Empty(t, model.OverridesFrom(nil, model.KindOverpayment))
}
