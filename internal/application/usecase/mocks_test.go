package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/domain/event"
	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

type mockMortgageRepository struct {
	saveFunc            func(ctx context.Context, m model.Mortgage) error
	saveWithAmountsFunc func(ctx context.Context, m model.Mortgage, amounts []model.MonthlyAmount) error
	updateFunc          func(ctx context.Context, m model.Mortgage) error
	findByIDFunc        func(ctx context.Context, ownerID, id uuid.UUID) (model.Mortgage, error)
	findByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]model.Mortgage, error)
	deleteFunc          func(ctx context.Context, ownerID, id uuid.UUID) error
	savedMortgages      []model.Mortgage
	savedAmounts        []model.MonthlyAmount
	updatedMortgages    []model.Mortgage
	deletedIDs          []uuid.UUID
}

func (m *mockMortgageRepository) Save(ctx context.Context, mortgage model.Mortgage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, mortgage)
	}
	m.savedMortgages = append(m.savedMortgages, mortgage)
	return nil
}

func (m *mockMortgageRepository) SaveWithAmounts(ctx context.Context, mortgage model.Mortgage, amounts []model.MonthlyAmount) error {
	if m.saveWithAmountsFunc != nil {
		return m.saveWithAmountsFunc(ctx, mortgage, amounts)
	}
	m.savedMortgages = append(m.savedMortgages, mortgage)
	m.savedAmounts = append(m.savedAmounts, amounts...)
	return nil
}

func (m *mockMortgageRepository) Update(ctx context.Context, mortgage model.Mortgage) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, mortgage)
	}
	m.updatedMortgages = append(m.updatedMortgages, mortgage)
	return nil
}

func (m *mockMortgageRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (model.Mortgage, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, ownerID, id)
	}
	return model.Mortgage{}, model.ErrMortgageNotFound
}

func (m *mockMortgageRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Mortgage, error) {
	if m.findByOwnerFunc != nil {
		return m.findByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockMortgageRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ownerID, id)
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockAmountRepository struct {
	upsertFunc      func(ctx context.Context, amount model.MonthlyAmount) error
	deleteFunc      func(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind, month int) (bool, error)
	forMortgageFunc func(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind) ([]model.MonthlyAmount, error)
	amounts         []model.MonthlyAmount
	upserted        []model.MonthlyAmount
}

func (m *mockAmountRepository) Upsert(ctx context.Context, amount model.MonthlyAmount) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, amount)
	}
	m.upserted = append(m.upserted, amount)
	return nil
}

func (m *mockAmountRepository) Delete(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind, month int) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, mortgageID, kind, month)
	}
	return false, nil
}

func (m *mockAmountRepository) ForMortgage(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind) ([]model.MonthlyAmount, error) {
	if m.forMortgageFunc != nil {
		return m.forMortgageFunc(ctx, mortgageID, kind)
	}
	var out []model.MonthlyAmount
	for _, a := range m.amounts {
		if a.MortgageID == mortgageID && (kind == 0 || a.Kind == kind) {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type recordedComputation struct {
	operation string
	months    int
	err       error
}

type mockComputationRecorder struct {
	mu       sync.Mutex
	recorded []recordedComputation
}

func (m *mockComputationRecorder) RecordComputation(_ context.Context, operation string, months int, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, recordedComputation{operation: operation, months: months, err: err})
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// flatMortgage is 100000 over 120 months at a flat 3% overpaying 50 a month.
func flatMortgage(overpayment string) model.Mortgage {
	op := testutil.D(overpayment)
	now := time.Now().UTC()
	return model.ReconstructMortgage(testutil.TestMortgageID, testutil.TestOwnerID, model.MortgageInputs{
		Amount:                       testutil.D("100000"),
		StartYear:                    2020,
		StartMonth:                   1,
		Term:                         120,
		InitialPeriod:                60,
		InterestRateInitial:          testutil.D("0.03"),
		InterestRateThereafter:       testutil.D("0.03"),
		DefaultOverpaymentInitial:    &op,
		DefaultOverpaymentThereafter: &op,
	}, now, now)
}

func ownedRepo(m model.Mortgage) *mockMortgageRepository {
	return &mockMortgageRepository{
		findByIDFunc: func(_ context.Context, ownerID, id uuid.UUID) (model.Mortgage, error) {
			if ownerID != m.OwnerID() || id != m.ID() {
				return model.Mortgage{}, model.ErrMortgageNotFound
			}
			return m, nil
		},
	}
}

func amount(kind model.OverrideKind, month int, value string) model.MonthlyAmount {
	return model.MonthlyAmount{
		ID:         uuid.New(),
		MortgageID: testutil.TestMortgageID,
		Kind:       kind,
		Month:      month,
		Amount:     testutil.D(value),
	}
}

func ptr(s string) *decimal.Decimal {
	d := testutil.D(s)
	return &d
}
