// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the OG Awards API.

# Handler Types

Each handler is a struct with store and engine dependencies:

  - AuthHandler: Registration, login, and session info
  - AwardsHandler: Public award catalog
  - VotingHandler: Ballot submission and the user's own votes
  - ResultsHandler: Gated per-award leaderboards

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(st, coordinator, m)

# Voting Flow

	POST /auth/register        → Register (returns session token)
	POST /auth/login           → Login
	GET  /awards               → List (public catalog)
	POST /awards/{id}/votes    → SubmitVote (one ballot per category)
	GET  /votes/mine           → MyVotes (progress and completion)
	GET  /awards/{id}/results  → GetResults (completed voters only)

Authenticated operations require an Authorization: Bearer header.

# Error Mapping

The voting engine's sentinel errors map onto HTTP statuses:

	ErrNotAuthenticated      → 401
	ErrAlreadyCompleted      → 409
	ErrDuplicateCategoryVote → 409
	ErrEmptyRanking          → 400
	ErrInvalidNominee        → 400

User-facing messages are in Spanish, matching the frontend.
*/
package handlers
