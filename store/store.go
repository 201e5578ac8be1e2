// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

// Registration rejections, surfaced verbatim by the frontend.
var (
	ErrUsernameTaken = errors.New("El nombre de usuario ya está en uso")
	ErrEmailTaken    = errors.New("El email ya está registrado")
)

// Store implements the voting store interfaces (identity, catalog,
// ballots) plus registration and catalog seeding on top of a single
// *sql.DB. The SQL sticks to the dialect subset both backends share.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SQLITE_CONSTRAINT_UNIQUE extended result code
const sqliteConstraintUnique = 2067

// isUniqueViolation recognizes unique-constraint failures from both
// supported drivers by their typed error codes, not by message text.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqliteConstraintUnique
	}
	return false
}
