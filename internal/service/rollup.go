package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

// ledgerCohort is the fold of one full matching set of ledger rows.
// Sums are exact integer sums; an empty cohort folds to zeros.
type ledgerCohort struct {
	Count       int64
	ExpectedSum int64
	IncomeSum   int64
}

// fetchCohort reads the ENTIRE matching set (cohort page, not the display
// page) and folds it. Collapsing this into the display query would make
// totals silently reflect only the visible page.
func fetchCohort(ctx context.Context, store LedgerStore, filter repository.LedgerFilter) (ledgerCohort, error) {
	_, rows, err := store.List(ctx, filter, model.CohortPage())
	if err != nil {
		return ledgerCohort{}, err
	}
	var cohort ledgerCohort
	for _, row := range rows {
		cohort.Count++
		cohort.ExpectedSum += row.ExpectedExpenditure
		cohort.IncomeSum += row.Income
	}
	return cohort, nil
}

// fanOutCohorts runs one cohort query per filter concurrently, bounded by
// limit. Results land in filter order, so the fold stays deterministic.
func fanOutCohorts(ctx context.Context, store LedgerStore, limit int, filters []repository.LedgerFilter) ([]ledgerCohort, error) {
	results := make([]ledgerCohort, len(filters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, filter := range filters {
		g.Go(func() error {
			cohort, err := fetchCohort(gctx, store, filter)
			if err != nil {
				return err
			}
			results[i] = cohort
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
