// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AngelStivenToro/OgAwards/middleware"
	"github.com/AngelStivenToro/OgAwards/models"
	"github.com/AngelStivenToro/OgAwards/store"
	"github.com/AngelStivenToro/OgAwards/voting"
)

type ResultsHandler struct {
	store  *store.Store
	scorer *voting.Scorer
}

func NewResultsHandler(st *store.Store, scorer *voting.Scorer) *ResultsHandler {
	return &ResultsHandler{store: st, scorer: scorer}
}

// GetResults handles GET /awards/:id/results
// Results stay locked until the requesting user has voted in every
// category; the scorer itself carries no authorization.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	awardID := r.PathValue("id")
	if awardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "award id is required")
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, voting.ErrNotAuthenticated.Error())
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, voting.ErrNotAuthenticated.Error())
		return
	}

	if !voting.CanViewResults(user) {
		middleware.ErrorResponse(w, http.StatusForbidden,
			"Debes votar en todas las categorías para ver los resultados")
		return
	}

	results, err := h.scorer.Results(r.Context(), awardID)
	if err != nil {
		slog.Error("failed to compute results", "error", err, "award_id", awardID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ballotCount, err := h.store.CountByAward(r.Context(), awardID)
	if err != nil {
		slog.Error("failed to count ballots", "error", err, "award_id", awardID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		AwardID:     awardID,
		Results:     results,
		BallotCount: ballotCount,
	})
}
