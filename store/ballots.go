// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AngelStivenToro/OgAwards/voting"
)

// Exists implements voting.BallotStore.
func (s *Store) Exists(ctx context.Context, userID, awardID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote WHERE user_id = $1 AND award_id = $2)
	`, userID, awardID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

// Insert implements voting.BallotStore. The UNIQUE (user_id, award_id)
// constraint turns a concurrent duplicate into
// voting.ErrDuplicateCategoryVote instead of a second row.
func (s *Store) Insert(ctx context.Context, ballot voting.Ballot) error {
	rankings, err := json.Marshal(ballot.Rankings)
	if err != nil {
		return fmt.Errorf("failed to encode rankings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vote (id, user_id, award_id, rankings, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, ballot.ID, ballot.UserID, ballot.AwardID, string(rankings), ballot.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return voting.ErrDuplicateCategoryVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// ListByAward implements voting.BallotStore.
func (s *Store) ListByAward(ctx context.Context, awardID string) ([]voting.Ballot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, award_id, rankings, submitted_at
		FROM vote
		WHERE award_id = $1
		ORDER BY submitted_at
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var ballots []voting.Ballot
	for rows.Next() {
		var b voting.Ballot
		var rankings string
		if err := rows.Scan(&b.ID, &b.UserID, &b.AwardID, &rankings, &b.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if err := json.Unmarshal([]byte(rankings), &b.Rankings); err != nil {
			return nil, fmt.Errorf("failed to decode rankings for vote %s: %w", b.ID, err)
		}
		ballots = append(ballots, b)
	}
	return ballots, rows.Err()
}

// ListAwardIDsByUser implements voting.BallotStore.
func (s *Store) ListAwardIDsByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT award_id FROM vote WHERE user_id = $1 ORDER BY submitted_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user votes: %w", err)
	}
	defer rows.Close()

	awardIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		awardIDs = append(awardIDs, id)
	}
	return awardIDs, rows.Err()
}

// CountByAward reports how many ballots an award has received.
func (s *Store) CountByAward(ctx context.Context, awardID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE award_id = $1
	`, awardID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
