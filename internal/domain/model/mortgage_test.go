package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/money"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestMortgage(t *testing.T) model.Mortgage {
	t.Helper()
	m, err := model.NewMortgage(testutil.TestOwnerID, flatInputs("50"), money.Standard, testNow)
	require.NoError(t, err)
	return m
}

func TestNewMortgage(t *testing.T) {
	t.Run("creates mortgage with generated ID", func(t *testing.T) {
		m := newTestMortgage(t)

		assert.NotEqual(t, uuid.Nil, m.ID())
		assert.Equal(t, testutil.TestOwnerID, m.OwnerID())
		testutil.AssertDecimal(t, "100000", m.Amount())
		assert.Equal(t, 120, m.Term())
		assert.Equal(t, 60, m.InitialPeriod())
		assert.Equal(t, testNow, m.CreatedAt())
		assert.Equal(t, testNow, m.UpdatedAt())
		assert.Equal(t, "Mortgage of 100000 commencing 2020-01", m.String())
	})

	t.Run("emits MortgageCreated event", func(t *testing.T) {
		m := newTestMortgage(t)
		events := m.DomainEvents()

		require.Len(t, events, 1)
		assert.Equal(t, event.TypeMortgageCreated, events[0].EventType())
		assert.Equal(t, m.ID().String(), events[0].AggregateID())
		assert.Equal(t, event.AggregateMortgage, events[0].AggregateType())
		assert.Equal(t, testutil.TestOwnerID.String(), events[0].OwnerID())

		assert.Empty(t, m.ClearEvents().DomainEvents())
	})

	t.Run("stores derived default overpayments", func(t *testing.T) {
		in := flatInputs("0")
		in.DefaultOverpaymentInitial = nil
		in.DefaultOverpaymentThereafter = nil
		in.Income = testutil.D("3000")
		in.Expenditure = testutil.D("1500")

		m, err := model.NewMortgage(testutil.TestOwnerID, in, money.Standard, testNow)
		require.NoError(t, err)

		stored := m.Inputs()
		require.NotNil(t, stored.DefaultOverpaymentInitial)
		require.NotNil(t, stored.DefaultOverpaymentThereafter)
		testutil.AssertDecimal(t, "534.39", *stored.DefaultOverpaymentInitial)
		testutil.AssertDecimal(t, "534.39", *stored.DefaultOverpaymentThereafter)
	})

	t.Run("rejects nil owner", func(t *testing.T) {
		_, err := model.NewMortgage(uuid.Nil, flatInputs("50"), money.Standard, testNow)
		testutil.AssertErrorContains(t, err, "owner ID is required")
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		in := flatInputs("50")
		in.InitialPeriod = 200
		_, err := model.NewMortgage(testutil.TestOwnerID, in, money.Standard, testNow)
		assert.ErrorIs(t, err, model.ErrInvalidMortgage)
	})
}

func TestMortgage_WithActualPayment(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("stores a payment that differs from the formula", func(t *testing.T) {
		m := newTestMortgage(t).ClearEvents()

		next, err := m.WithActualPayment(model.PhaseInitial, ptr("1000"), money.Standard, later)
		require.NoError(t, err)

		require.NotNil(t, next.Inputs().ActualPaymentInitial)
		testutil.AssertDecimal(t, "1000", *next.Inputs().ActualPaymentInitial)
		assert.Nil(t, m.Inputs().ActualPaymentInitial, "original is unchanged")
		assert.Equal(t, later, next.UpdatedAt())

		events := next.DomainEvents()
		require.Len(t, events, 1)
		set, ok := events[0].(event.ActualPaymentSet)
		require.True(t, ok)
		assert.Equal(t, "initial", set.Phase)
		require.NotNil(t, set.Amount)
	})

	t.Run("clears a payment equal to the formula", func(t *testing.T) {
		m := newTestMortgage(t)
		m, err := m.WithActualPayment(model.PhaseThereafter, ptr("1000"), money.Standard, later)
		require.NoError(t, err)

		m, err = m.WithActualPayment(model.PhaseThereafter, ptr("965.61"), money.Standard, later)
		require.NoError(t, err)
		assert.Nil(t, m.Inputs().ActualPaymentThereafter)
	})

	t.Run("nil clears", func(t *testing.T) {
		m := newTestMortgage(t)
		m, err := m.WithActualPayment(model.PhaseInitial, ptr("1000"), money.Standard, later)
		require.NoError(t, err)

		m, err = m.WithActualPayment(model.PhaseInitial, nil, money.Standard, later)
		require.NoError(t, err)
		assert.Nil(t, m.Inputs().ActualPaymentInitial)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := newTestMortgage(t).WithActualPayment(model.PhaseInitial, ptr("0"), money.Standard, later)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	})

	t.Run("rejects unknown phase", func(t *testing.T) {
		_, err := newTestMortgage(t).WithActualPayment(model.Phase(9), ptr("1000"), money.Standard, later)
		assert.Error(t, err)
	})
}

func TestMortgage_WithInputs(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("replaces the terms and keeps stored values", func(t *testing.T) {
		m, err := newTestMortgage(t).ClearEvents().WithActualPayment(model.PhaseInitial, ptr("1000"), money.Standard, testNow)
		require.NoError(t, err)
		m = m.ClearEvents()

		edit := flatInputs("0")
		edit.Amount = testutil.D("120000")
		edit.Term = 240
		edit.InitialPeriod = 24
		edit.InterestRateThereafter = testutil.D("0.045")

		next, err := m.WithInputs(edit, money.Standard, later)
		require.NoError(t, err)

		in := next.Inputs()
		testutil.AssertDecimal(t, "120000", in.Amount)
		assert.Equal(t, 240, in.Term)
		assert.Equal(t, 24, in.InitialPeriod)
		testutil.AssertDecimal(t, "0.045", in.InterestRateThereafter)
		require.NotNil(t, in.ActualPaymentInitial)
		testutil.AssertDecimal(t, "1000", *in.ActualPaymentInitial)
		testutil.AssertDecimal(t, "50", *in.DefaultOverpaymentInitial)
		testutil.AssertDecimal(t, "50", *in.DefaultOverpaymentThereafter)
		assert.Equal(t, later, next.UpdatedAt())
		assert.Equal(t, m.CreatedAt(), next.CreatedAt())
		testutil.AssertDecimal(t, "100000", m.Amount())

		events := next.DomainEvents()
		require.Len(t, events, 1)
		updated, ok := events[0].(event.MortgageUpdated)
		require.True(t, ok)
		assert.Equal(t, event.TypeMortgageUpdated, updated.EventType())
		assert.Equal(t, 240, updated.Term)
		assert.Equal(t, later, updated.OccurredAt())
	})

	t.Run("derives missing defaults from disposable income", func(t *testing.T) {
		in := flatInputs("0")
		in.DefaultOverpaymentInitial = nil
		in.DefaultOverpaymentThereafter = nil
		m := model.ReconstructMortgage(testutil.TestMortgageID, testutil.TestOwnerID, in, testNow, testNow)

		edit := flatInputs("0")
		edit.Income = testutil.D("2000")
		edit.Expenditure = testutil.D("500")

		next, err := m.WithInputs(edit, money.Standard, later)
		require.NoError(t, err)
		testutil.AssertDecimal(t, "534.39", *next.Inputs().DefaultOverpaymentInitial)
		testutil.AssertDecimal(t, "534.39", *next.Inputs().DefaultOverpaymentThereafter)
	})

	t.Run("rejects invalid terms", func(t *testing.T) {
		m := newTestMortgage(t).ClearEvents()
		edit := flatInputs("0")
		edit.InitialPeriod = 500

		same, err := m.WithInputs(edit, money.Standard, later)
		assert.ErrorIs(t, err, model.ErrInvalidMortgage)
		assert.Equal(t, 60, same.InitialPeriod())
		assert.Empty(t, same.DomainEvents())
	})
}

func TestMortgage_Duplicate(t *testing.T) {
	m := newTestMortgage(t)
	m, err := m.WithActualPayment(model.PhaseInitial, ptr("1000"), money.Standard, testNow)
	require.NoError(t, err)

	later := testNow.Add(24 * time.Hour)
	dup := m.Duplicate(later)

	assert.NotEqual(t, m.ID(), dup.ID())
	assert.Equal(t, m.OwnerID(), dup.OwnerID())
	assert.Equal(t, later, dup.CreatedAt())
	require.NotNil(t, dup.Inputs().ActualPaymentInitial)
	testutil.AssertDecimal(t, "1000", *dup.Inputs().ActualPaymentInitial)

	events := dup.DomainEvents()
	require.Len(t, events, 1)
	duplicated, ok := events[0].(event.MortgageDuplicated)
	require.True(t, ok)
	assert.Equal(t, m.ID().String(), duplicated.SourceID)
}

func TestMortgage_MarkDeleted(t *testing.T) {
	m := newTestMortgage(t).ClearEvents().MarkDeleted(testNow)

	events := m.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, event.TypeMortgageDeleted, events[0].EventType())
}

func TestMortgage_Ledger(t *testing.T) {
	m := newTestMortgage(t)

	l, err := m.Ledger(nil, nil)
	require.NoError(t, err)
	cost, err := l.CalculateCost()
	require.NoError(t, err)
	testutil.AssertDecimal(t, "14936.70", cost)
}

func TestReconstructMortgage(t *testing.T) {
	created := testNow.Add(-time.Hour)
	m := model.ReconstructMortgage(testutil.TestMortgageID, testutil.TestOwnerID, flatInputs("50"), created, testNow)

	assert.Equal(t, testutil.TestMortgageID, m.ID())
	assert.Equal(t, created, m.CreatedAt())
	assert.Empty(t, m.DomainEvents())
}
