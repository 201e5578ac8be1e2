// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the backend named by databaseType. The backend is
// chosen here, once, from configuration - never by inspecting errors at
// runtime.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case TypeSQLite:
		return sql.Open("sqlite", databaseURL)
	case TypePostgres:
		return sql.Open("postgres", databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", databaseType)
	}
}
