// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the OG Awards API server.

OG Awards is a community awards service: registered users rank nominees
in every award category, scores follow a 3/2/1 point table, and results
stay hidden until a user has voted in every category.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:ogawards.db SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file URL or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Secret for session token signing

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - AWARDS_FILE (-awards): JSON catalog for first-run seeding

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: Core engine (submission rules, completion, scoring)
  - handlers: HTTP request handlers (auth, awards, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth, CORS, logging, metrics, JSON helpers
  - models: Request/response types
  - store: SQL persistence behind the voting engine's interfaces
  - auth: Session token generation and validation
  - db: Driver selection and schema creation
  - metrics: Prometheus instrumentation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
