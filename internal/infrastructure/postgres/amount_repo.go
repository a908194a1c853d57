package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/internal/domain/port"
	pkgpostgres "github.com/bibbank/mortgage-service/pkg/postgres"
)

var _ port.AmountRepository = (*AmountRepo)(nil)

// AmountRepo implements AmountRepository using PostgreSQL.
type AmountRepo struct {
	pool *pgxpool.Pool
}

func NewAmountRepo(pool *pgxpool.Pool) *AmountRepo {
	return &AmountRepo{pool: pool}
}

func (r *AmountRepo) Upsert(ctx context.Context, a model.MonthlyAmount) error {
	return upsertAmount(ctx, r.pool, a)
}

func upsertAmount(ctx context.Context, q pkgpostgres.Querier, a model.MonthlyAmount) error {
	now := time.Now().UTC()
	_, err := q.Exec(ctx, `
		INSERT INTO monthly_amounts (id, mortgage_id, kind, month, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (mortgage_id, kind, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
	`, a.ID, a.MortgageID, a.Kind.String(), a.Month, a.Amount, now)
	if err != nil {
		return fmt.Errorf("upsert monthly amount: %w", err)
	}
	return nil
}

func (r *AmountRepo) Delete(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind, month int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM monthly_amounts WHERE mortgage_id = $1 AND kind = $2 AND month = $3
	`, mortgageID, kind.String(), month)
	if err != nil {
		return false, fmt.Errorf("delete monthly amount: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AmountRepo) ForMortgage(ctx context.Context, mortgageID uuid.UUID, kind model.OverrideKind) ([]model.MonthlyAmount, error) {
	filter := ""
	if kind != 0 {
		filter = kind.String()
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, mortgage_id, kind, month, amount
		FROM monthly_amounts
		WHERE mortgage_id = $1 AND ($2::text = '' OR kind = $2::text)
		ORDER BY month, kind
	`, mortgageID, filter)
	if err != nil {
		return nil, fmt.Errorf("query monthly amounts: %w", err)
	}
	defer rows.Close()

	var amounts []model.MonthlyAmount
	for rows.Next() {
		var (
			a        model.MonthlyAmount
			kindName string
		)
		if err := rows.Scan(&a.ID, &a.MortgageID, &kindName, &a.Month, &a.Amount); err != nil {
			return nil, fmt.Errorf("scan monthly amount: %w", err)
		}
		if a.Kind, err = model.ParseOverrideKind(kindName); err != nil {
			return nil, fmt.Errorf("monthly amount %s: %w", a.ID, err)
		}
		amounts = append(amounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly amounts: %w", err)
	}
	return amounts, nil
}
