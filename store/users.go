// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AngelStivenToro/OgAwards/voting"
)

// CreateUser registers a new user with completed_voting false.
// Username and email must both be unused.
func (s *Store) CreateUser(ctx context.Context, username, email string) (*voting.User, error) {
	var taken bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM app_user WHERE username = $1)
	`, username).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM app_user WHERE email = $1)
	`, email).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user := voting.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_user (id, username, email, created_at, completed_voting)
		VALUES ($1, $2, $3, $4, FALSE)
	`, user.ID, user.Username, user.Email, user.CreatedAt)
	if err != nil {
		// A registration that raced past the pre-checks hits the
		// unique constraints here
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &user, nil
}

// GetUser implements voting.IdentityStore. Returns (nil, nil) when no
// user with that ID exists.
func (s *Store) GetUser(ctx context.Context, userID string) (*voting.User, error) {
	return s.getUser(ctx, `WHERE id = $1`, userID)
}

// GetUserByUsername returns (nil, nil) when the username is unknown.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*voting.User, error) {
	return s.getUser(ctx, `WHERE username = $1`, username)
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (*voting.User, error) {
	var user voting.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, created_at, completed_voting
		FROM app_user `+where,
		arg,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.CompletedVoting)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// MarkCompleted implements voting.IdentityStore. The WHERE clause makes
// the flip a compare-and-set: once the flag is true the statement
// matches zero rows, so concurrent last-vote submissions flip it at most
// once.
func (s *Store) MarkCompleted(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE app_user
		SET completed_voting = TRUE
		WHERE id = $1 AND completed_voting = FALSE
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark voting completed: %w", err)
	}
	return nil
}
