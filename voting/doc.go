// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the awards voting and results engine.

The package is pure domain logic: it speaks to storage only through the
three injected interfaces (IdentityStore, CatalogStore, BallotStore) and
contains no SQL or HTTP.

# Submitting a ballot

	coordinator := voting.NewCoordinator(identity, catalog, ballots)
	err := coordinator.SubmitVote(ctx, userID, awardID, rankings)

Preconditions are checked in order, first failure wins:

 1. the user must exist → ErrNotAuthenticated
 2. the user must not have completed voting → ErrAlreadyCompleted
 3. no ballot may exist for (user, award) → ErrDuplicateCategoryVote
 4. rankings must be non-empty → ErrEmptyRanking
 5. rankings must be distinct nominee IDs of the award → ErrInvalidNominee

On success the ballot is persisted and, if the user now has a ballot for
every award in the catalog, their completed_voting flag is flipped via
IdentityStore.MarkCompleted. MarkCompleted is idempotent so the flip
happens at most once, even under concurrent last-vote submissions.

# Scoring

	scorer := voting.NewScorer(catalog, ballots)
	results, err := scorer.Results(ctx, awardID)

Each ballot awards 3/2/1 points to its first three ranked nominees;
positions below third earn nothing. Points are summed across ballots.
Every nominee of the award appears in the output (zero points included),
ordered by points descending with ties in catalog order. An unknown award
yields an empty slice, not an error.

# Results gate

	if voting.CanViewResults(user) { ... }

A pure predicate over the completion flag, used by the HTTP layer to lock
the results view. The Scorer itself performs no authorization.
*/
package voting
