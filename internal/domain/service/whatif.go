package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/bibbank/mortgage-service/internal/domain/model"
)

// DefaultWhatIfConcurrency is the number of months evaluated at once when no
// limit is configured.
const DefaultWhatIfConcurrency = 4

// WhatIfDelta is the cost change from dropping one month's overpayment override.
type WhatIfDelta struct {
	Month int
	// Delta is cost without the override less the baseline. Positive means
	// the override is saving money.
	Delta decimal.Decimal
}

// WhatIf lists the per-month deltas of a ledger, sorted by month.
type WhatIf struct {
	Baseline decimal.Decimal
	Deltas   []WhatIfDelta
}

// WhatIfAnalyzer evaluates each overpayment override in isolation.
type WhatIfAnalyzer struct {
	concurrency int
}

// NewWhatIfAnalyzer creates an analyzer that evaluates up to concurrency months
// in parallel. Non-positive values fall back to DefaultWhatIfConcurrency.
func NewWhatIfAnalyzer(concurrency int) *WhatIfAnalyzer {
	if concurrency <= 0 {
		concurrency = DefaultWhatIfConcurrency
	}
	return &WhatIfAnalyzer{concurrency: concurrency}
}

// Analyze completes ledger, then for every overpayment override clones it,
// deletes that one override and recomputes the cost. Overrides at months the
// ledger never reaches contribute a zero delta.
func (a *WhatIfAnalyzer) Analyze(ctx context.Context, ledger *model.Ledger) (WhatIf, error) {
	baseline, err := ledger.CalculateCost()
	if err != nil {
		return WhatIf{}, fmt.Errorf("calculate baseline cost: %w", err)
	}

	// Months is sorted, so deltas come out in month order.
	months := ledger.Overrides(model.KindOverpayment).Months()
	deltas := make([]WhatIfDelta, len(months))

	// Clones are taken up front so workers never read the shared ledger.
	clones := make([]*model.Ledger, len(months))
	for i := range months {
		clones[i] = ledger.Clone()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, month := range months {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			deltas[i] = WhatIfDelta{Month: month, Delta: decimal.Zero}
			if month >= clones[i].Len() {
				return nil
			}

			without := clones[i]
			if err := without.DeleteOverpayment(month); err != nil {
				return fmt.Errorf("drop override at month %d: %w", month, err)
			}
			cost, err := without.CalculateCost()
			if err != nil {
				return fmt.Errorf("cost without month %d: %w", month, err)
			}
			deltas[i].Delta = cost.Sub(baseline)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return WhatIf{}, err
	}

	return WhatIf{Baseline: baseline, Deltas: deltas}, nil
}
