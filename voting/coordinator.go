// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Coordinator enforces the voting rules: one ballot per user per award,
// ranking validation, and the per-user completion flag that flips exactly
// once when the last award is voted.
type Coordinator struct {
	identity IdentityStore
	catalog  CatalogStore
	ballots  BallotStore
}

func NewCoordinator(identity IdentityStore, catalog CatalogStore, ballots BallotStore) *Coordinator {
	return &Coordinator{identity: identity, catalog: catalog, ballots: ballots}
}

// SubmitVote validates and persists a ranked ballot for (userID, awardID).
// Preconditions are checked in order, first failure wins. On success the
// completion flag is re-evaluated across the full catalog.
func (c *Coordinator) SubmitVote(ctx context.Context, userID, awardID string, rankings []string) error {
	user, err := c.identity.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrNotAuthenticated
	}
	if user.CompletedVoting {
		return ErrAlreadyCompleted
	}

	exists, err := c.ballots.Exists(ctx, user.ID, awardID)
	if err != nil {
		return fmt.Errorf("failed to check existing ballot: %w", err)
	}
	if exists {
		return ErrDuplicateCategoryVote
	}

	if len(rankings) == 0 {
		return ErrEmptyRanking
	}

	award, err := c.catalog.GetAward(ctx, awardID)
	if err != nil {
		return fmt.Errorf("failed to load award: %w", err)
	}
	if award == nil {
		// No award means no valid nominee to reference
		return ErrInvalidNominee
	}
	if err := validateRankings(award, rankings); err != nil {
		return err
	}

	ballot := Ballot{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		AwardID:     award.ID,
		Rankings:    rankings,
		SubmittedAt: time.Now().UTC(),
	}

	// The store's unique constraint is the real duplicate guard; the
	// Exists check above only produces a friendlier fast path.
	if err := c.ballots.Insert(ctx, ballot); err != nil {
		return err
	}

	return c.checkCompletion(ctx, user.ID)
}

// validateRankings rejects nominee IDs outside the award's nominee set
// and internal duplicates. Distinct members of the set can never exceed
// the nominee count, so the length bound follows.
func validateRankings(award *Award, rankings []string) error {
	valid := make(map[string]bool, len(award.Nominees))
	for _, n := range award.Nominees {
		valid[n.ID] = true
	}

	seen := make(map[string]bool, len(rankings))
	for _, nomineeID := range rankings {
		if !valid[nomineeID] || seen[nomineeID] {
			return ErrInvalidNominee
		}
		seen[nomineeID] = true
	}
	return nil
}

// checkCompletion flips the user's completed_voting flag when a ballot
// exists for every award in the catalog. MarkCompleted is idempotent, so
// a concurrent last-vote race still flips the flag at most once.
func (c *Coordinator) checkCompletion(ctx context.Context, userID string) error {
	awards, err := c.catalog.ListAwards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list awards: %w", err)
	}
	if len(awards) == 0 {
		// An empty catalog never completes anyone
		return nil
	}

	votedIDs, err := c.ballots.ListAwardIDsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list user ballots: %w", err)
	}

	voted := make(map[string]bool, len(votedIDs))
	for _, id := range votedIDs {
		voted[id] = true
	}
	for _, award := range awards {
		if !voted[award.ID] {
			return nil
		}
	}

	if err := c.identity.MarkCompleted(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark voting completed: %w", err)
	}
	return nil
}

// CanViewResults reports whether a user may see aggregated results.
// Defined as exactly the completion flag: users see nothing until they
// have voted in every category.
func CanViewResults(user *User) bool {
	return user != nil && user.CompletedVoting
}
