// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "context"

// IdentityStore is the slice of the identity subsystem the voting core
// needs: user lookup and the one-way completion flag.
type IdentityStore interface {
	// GetUser returns (nil, nil) when no user with that ID exists.
	GetUser(ctx context.Context, userID string) (*User, error)

	// MarkCompleted sets the user's completed_voting flag. Must be
	// idempotent: calling it when the flag is already true is a no-op.
	MarkCompleted(ctx context.Context, userID string) error
}

// CatalogStore provides read access to the seeded award catalog.
type CatalogStore interface {
	ListAwards(ctx context.Context) ([]Award, error)

	// GetAward returns (nil, nil) for an unknown award ID.
	GetAward(ctx context.Context, awardID string) (*Award, error)
}

// BallotStore persists submitted ballots. Implementations must enforce
// the one-ballot-per-(user, award) invariant atomically, not just via a
// prior Exists check: Insert returns ErrDuplicateCategoryVote when the
// pair already has a ballot, even under concurrent submissions.
type BallotStore interface {
	Exists(ctx context.Context, userID, awardID string) (bool, error)
	Insert(ctx context.Context, ballot Ballot) error
	ListByAward(ctx context.Context, awardID string) ([]Ballot, error)
	ListAwardIDsByUser(ctx context.Context, userID string) ([]string, error)
}
