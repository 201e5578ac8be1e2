// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"sort"
)

// Point table: 1st place = 3 points, 2nd = 2, 3rd = 1, everything below
// earns nothing. Totals are sums across ballots, not averages.
const maxScoredRanks = 3

// Scorer aggregates ballots into a per-award leaderboard. Read-only; it
// has no authorization concept — gating belongs to the caller.
type Scorer struct {
	catalog CatalogStore
	ballots BallotStore
}

func NewScorer(catalog CatalogStore, ballots BallotStore) *Scorer {
	return &Scorer{catalog: catalog, ballots: ballots}
}

// Results computes the leaderboard for one award, ordered by points
// descending. Every nominee appears, zero-point nominees included. Ties
// keep catalog (display) order. An unknown award yields an empty slice,
// never an error.
func (s *Scorer) Results(ctx context.Context, awardID string) ([]Result, error) {
	award, err := s.catalog.GetAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load award: %w", err)
	}
	if award == nil {
		return []Result{}, nil
	}

	ballots, err := s.ballots.ListByAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ballots: %w", err)
	}

	points := make(map[string]int)
	for _, ballot := range ballots {
		for i, nomineeID := range ballot.Rankings {
			if i >= maxScoredRanks {
				break
			}
			points[nomineeID] += maxScoredRanks - i
		}
	}

	results := make([]Result, 0, len(award.Nominees))
	for _, nominee := range award.Nominees {
		results = append(results, Result{Nominee: nominee, Points: points[nominee.ID]})
	}

	// Nominees enter in catalog order, so a stable sort on points alone
	// leaves ties deterministically in display order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Points > results[j].Points
	})

	return results, nil
}
