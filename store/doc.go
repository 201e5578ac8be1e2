// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the voting engine's storage interfaces on SQL.

Store satisfies voting.IdentityStore, voting.CatalogStore, and
voting.BallotStore against either backend db.Open supports:

	st := store.New(conn)
	coordinator := voting.NewCoordinator(st, st, st)

Duplicate ballots are rejected by the database's unique constraint and
surfaced as voting.ErrDuplicateCategoryVote; constraint violations are
detected through the drivers' typed errors, never by matching error
strings. MarkCompleted is a compare-and-set UPDATE so the completion
flag flips at most once under concurrent final votes.

SeedAwards and SeedFromFile load the award catalog; seeding is a no-op
once the catalog is populated.
*/
package store
