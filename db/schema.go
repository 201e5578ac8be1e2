// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The statements stick
// to the dialect subset shared by SQLite and PostgreSQL; timestamps are
// always written by the application, never defaulted by the database.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users ("user" is reserved in PostgreSQL)
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL,
    completed_voting BOOLEAN NOT NULL DEFAULT FALSE
);

-- Award categories; position is catalog display order
CREATE TABLE IF NOT EXISTS award (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category_label TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

-- Nominees; empty media_type means no media
CREATE TABLE IF NOT EXISTS nominee (
    id TEXT PRIMARY KEY,
    award_id TEXT NOT NULL REFERENCES award(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    media_type TEXT NOT NULL DEFAULT '',
    media_url TEXT NOT NULL DEFAULT '',
    media_title TEXT NOT NULL DEFAULT '',
    media_content TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_nominee_award_id ON nominee(award_id);

-- Ballots; rankings is a JSON array of nominee IDs, best first.
-- UNIQUE (user_id, award_id) is the atomic one-ballot-per-category guard.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    award_id TEXT NOT NULL REFERENCES award(id) ON DELETE CASCADE,
    rankings TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, award_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_award_id ON vote(award_id);
CREATE INDEX IF NOT EXISTS idx_vote_user_id ON vote(user_id);
`
