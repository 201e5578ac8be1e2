// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AngelStivenToro/OgAwards/middleware"
	"github.com/AngelStivenToro/OgAwards/models"
	"github.com/AngelStivenToro/OgAwards/store"
)

type AwardsHandler struct {
	store *store.Store
}

func NewAwardsHandler(st *store.Store) *AwardsHandler {
	return &AwardsHandler{store: st}
}

// List handles GET /awards. Public: the catalog is visible before
// voting, only results are gated.
func (h *AwardsHandler) List(w http.ResponseWriter, r *http.Request) {
	awards, err := h.store.ListAwards(r.Context())
	if err != nil {
		slog.Error("failed to list awards", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AwardListResponse{Awards: awards})
}
