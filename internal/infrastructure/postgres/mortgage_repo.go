package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
	pkgpostgres "github.com/bibbank/mortgage-service/pkg/postgres"
)

// Compile-time interface check
var _ port.MortgageRepository = (*MortgageRepo)(nil)

// MortgageRepo implements MortgageRepository using PostgreSQL.
type MortgageRepo struct {
	pool *pgxpool.Pool
}

func NewMortgageRepo(pool *pgxpool.Pool) *MortgageRepo {
	return &MortgageRepo{pool: pool}
}

const mortgageColumns = `id, owner_id, amount, start_year, start_month, term, initial_period,
	interest_rate_initial, interest_rate_thereafter, income, expenditure,
	actual_payment_initial, actual_payment_thereafter,
	default_overpayment_initial, default_overpayment_thereafter,
	created_at, updated_at`

func (r *MortgageRepo) Save(ctx context.Context, m model.Mortgage) error {
	return saveMortgage(ctx, r.pool, m)
}

func (r *MortgageRepo) SaveWithAmounts(ctx context.Context, m model.Mortgage, amounts []model.MonthlyAmount) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := saveMortgage(ctx, tx, m); err != nil {
			return err
		}
		for _, a := range amounts {
			if err := upsertAmount(ctx, tx, a); err != nil {
				return fmt.Errorf("amount for month %d: %w", a.Month, err)
			}
		}
		return nil
	})
}

func saveMortgage(ctx context.Context, q pkgpostgres.Querier, m model.Mortgage) error {
	in := m.Inputs()
	_, err := q.Exec(ctx, `
		INSERT INTO mortgages (`+mortgageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			actual_payment_initial = EXCLUDED.actual_payment_initial,
			actual_payment_thereafter = EXCLUDED.actual_payment_thereafter,
			default_overpayment_initial = EXCLUDED.default_overpayment_initial,
			default_overpayment_thereafter = EXCLUDED.default_overpayment_thereafter,
			updated_at = EXCLUDED.updated_at
		WHERE mortgages.owner_id = EXCLUDED.owner_id
	`, m.ID(), m.OwnerID(), in.Amount, in.StartYear, in.StartMonth, in.Term, in.InitialPeriod,
		in.InterestRateInitial, in.InterestRateThereafter, in.Income, in.Expenditure,
		in.ActualPaymentInitial, in.ActualPaymentThereafter,
		in.DefaultOverpaymentInitial, in.DefaultOverpaymentThereafter,
		m.CreatedAt(), m.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert mortgage: %w", err)
	}
	return nil
}

// Update rewrites every input column of an existing mortgage.
func (r *MortgageRepo) Update(ctx context.Context, m model.Mortgage) error {
	in := m.Inputs()
	tag, err := r.pool.Exec(ctx, `
		UPDATE mortgages SET
			amount = $3, start_year = $4, start_month = $5, term = $6, initial_period = $7,
			interest_rate_initial = $8, interest_rate_thereafter = $9,
			income = $10, expenditure = $11,
			actual_payment_initial = $12, actual_payment_thereafter = $13,
			default_overpayment_initial = $14, default_overpayment_thereafter = $15,
			updated_at = $16
		WHERE id = $1 AND owner_id = $2
	`, m.ID(), m.OwnerID(), in.Amount, in.StartYear, in.StartMonth, in.Term, in.InitialPeriod,
		in.InterestRateInitial, in.InterestRateThereafter, in.Income, in.Expenditure,
		in.ActualPaymentInitial, in.ActualPaymentThereafter,
		in.DefaultOverpaymentInitial, in.DefaultOverpaymentThereafter,
		m.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update mortgage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mortgage %s: %w", m.ID(), model.ErrMortgageNotFound)
	}
	return nil
}

func (r *MortgageRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (model.Mortgage, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+mortgageColumns+`
		FROM mortgages WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	m, err := scanMortgage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Mortgage{}, fmt.Errorf("mortgage %s: %w", id, model.ErrMortgageNotFound)
		}
		return model.Mortgage{}, fmt.Errorf("query mortgage: %w", err)
	}
	return m, nil
}

func (r *MortgageRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Mortgage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+mortgageColumns+`
		FROM mortgages WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query mortgages: %w", err)
	}
	defer rows.Close()

	var mortgages []model.Mortgage
	for rows.Next() {
		m, err := scanMortgage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mortgage: %w", err)
		}
		mortgages = append(mortgages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mortgages: %w", err)
	}
	return mortgages, nil
}

// Delete removes the mortgage and, through the foreign key, its amounts.
func (r *MortgageRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM mortgages WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete mortgage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mortgage %s: %w", id, model.ErrMortgageNotFound)
	}
	return nil
}

func scanMortgage(row pgx.Row) (model.Mortgage, error) {
	var (
		id, ownerID          uuid.UUID
		in                   model.MortgageInputs
		actualInitial        decimal.NullDecimal
		actualThereafter     decimal.NullDecimal
		overpaymentInitial   decimal.NullDecimal
		overpaymentAfterward decimal.NullDecimal
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &ownerID, &in.Amount, &in.StartYear, &in.StartMonth, &in.Term, &in.InitialPeriod,
		&in.InterestRateInitial, &in.InterestRateThereafter, &in.Income, &in.Expenditure,
		&actualInitial, &actualThereafter, &overpaymentInitial, &overpaymentAfterward,
		&createdAt, &updatedAt)
	if err != nil {
		return model.Mortgage{}, err
	}
	in.ActualPaymentInitial = nullable(actualInitial)
	in.ActualPaymentThereafter = nullable(actualThereafter)
	in.DefaultOverpaymentInitial = nullable(overpaymentInitial)
	in.DefaultOverpaymentThereafter = nullable(overpaymentAfterward)

	return model.ReconstructMortgage(id, ownerID, in, createdAt, updatedAt), nil
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
