// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AngelStivenToro/OgAwards/metrics"
	"github.com/AngelStivenToro/OgAwards/middleware"
	"github.com/AngelStivenToro/OgAwards/models"
	"github.com/AngelStivenToro/OgAwards/store"
	"github.com/AngelStivenToro/OgAwards/voting"
)

type VotingHandler struct {
	store       *store.Store
	coordinator *voting.Coordinator
	metrics     *metrics.Metrics
}

func NewVotingHandler(st *store.Store, coordinator *voting.Coordinator, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{store: st, coordinator: coordinator, metrics: m}
}

// SubmitVote handles POST /awards/:id/votes
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
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

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.coordinator.SubmitVote(r.Context(), userID, awardID, req.Rankings)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	h.metrics.VotesSubmitted.Inc()
	slog.Info("vote submitted", "user_id", userID, "award_id", awardID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Message: "Voto registrado",
	})
}

// MyVotes handles GET /votes/mine. The dashboard uses it to mark which
// categories are already done.
func (h *VotingHandler) MyVotes(w http.ResponseWriter, r *http.Request) {
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

	awardIDs, err := h.store.ListAwardIDsByUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list user votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVotesResponse{
		AwardIDs:        awardIDs,
		CompletedVoting: user.CompletedVoting,
	})
}

// writeVoteError maps the engine's error taxonomy onto HTTP statuses.
func writeVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, voting.ErrNotAuthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, voting.ErrAlreadyCompleted),
		errors.Is(err, voting.ErrDuplicateCategoryVote):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, voting.ErrEmptyRanking),
		errors.Is(err, voting.ErrInvalidNominee):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to submit vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
