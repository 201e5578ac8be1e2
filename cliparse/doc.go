// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: SQLite file URL or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - SessionSecret: Secret for session token signing (required)
  - AwardsFile: JSON catalog for first-run seeding (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-awards         Award catalog JSON file
	-session-secret Session signing secret (prefer env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	AWARDS_FILE    → -awards
	SESSION_SECRET → -session-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SECRET must be provided
*/
package cliparse
