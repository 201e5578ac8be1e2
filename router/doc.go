// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the OG Awards API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg, m)

# Endpoints

Health and observability:

	GET /health
	GET /metrics

Sessions (public):

	POST /auth/register - Create account, returns session token
	POST /auth/login    - Log in by username

Sessions (authenticated):

	GET /auth/me - Current user info

Catalog (public):

	GET /awards - Award categories with nominees

Voting (authenticated):

	POST /awards/{id}/votes   - Submit a ranked ballot
	GET  /votes/mine          - Voted categories and completion flag
	GET  /awards/{id}/results - Leaderboard (completed voters only)

# Middleware Chain

Every route gets metrics and logging; authenticated routes add the
bearer-token check in front:

	public: WithMetrics → WithLogging → handler
	authed: WithMetrics → WithLogging → RequireAuth → handler
*/
package router
