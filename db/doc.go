// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles driver selection and schema creation.

# Opening a Connection

Open picks the driver from an explicit type, never by sniffing the URL:

	conn, err := db.Open(db.TypeSQLite, "file:ogawards.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

An unknown type is an error at startup, not a runtime fallback.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The SQL sticks to the dialect subset both backends accept.

# Tables

  - app_user: Accounts with the completed_voting flag
  - award: Award categories in display order
  - nominee: Nominees per award, optional media attachment
  - vote: One ballot per (user, award), rankings stored as JSON

# Constraints

The vote table carries UNIQUE (user_id, award_id); this constraint, not
application code, is what ultimately prevents duplicate ballots under
concurrency. Usernames and emails are unique on app_user.
*/
package db
