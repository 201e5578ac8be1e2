// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/AngelStivenToro/OgAwards/cliparse"
	"github.com/AngelStivenToro/OgAwards/handlers"
	"github.com/AngelStivenToro/OgAwards/metrics"
	"github.com/AngelStivenToro/OgAwards/middleware"
	"github.com/AngelStivenToro/OgAwards/store"
	"github.com/AngelStivenToro/OgAwards/voting"
)

func NewRouter(st *store.Store, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire the engine to its stores
	coordinator := voting.NewCoordinator(st, st, st)
	scorer := voting.NewScorer(st, st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg, m)
	awardsHandler := handlers.NewAwardsHandler(st)
	votingHandler := handlers.NewVotingHandler(st, coordinator, m)
	resultsHandler := handlers.NewResultsHandler(st, scorer)

	public := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(m, route, middleware.WithLogging(h))
	}
	authed := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return public(route, middleware.RequireAuth(cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", m.Handler())

	// Sessions
	mux.HandleFunc("POST /auth/register", public("auth_register", authHandler.Register))
	mux.HandleFunc("POST /auth/login", public("auth_login", authHandler.Login))
	mux.HandleFunc("GET /auth/me", authed("auth_me", authHandler.Me))

	// Award catalog (public)
	mux.HandleFunc("GET /awards", public("awards_list", awardsHandler.List))

	// Voting and results (session required)
	mux.HandleFunc("POST /awards/{id}/votes", authed("vote_submit", votingHandler.SubmitVote))
	mux.HandleFunc("GET /awards/{id}/results", authed("results_get", resultsHandler.GetResults))
	mux.HandleFunc("GET /votes/mine", authed("votes_mine", votingHandler.MyVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OG Awards API v1"))
	})

	return mux
}
