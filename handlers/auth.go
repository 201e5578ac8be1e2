// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AngelStivenToro/OgAwards/auth"
	"github.com/AngelStivenToro/OgAwards/cliparse"
	"github.com/AngelStivenToro/OgAwards/metrics"
	"github.com/AngelStivenToro/OgAwards/middleware"
	"github.com/AngelStivenToro/OgAwards/models"
	"github.com/AngelStivenToro/OgAwards/store"
)

type AuthHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	metrics  *metrics.Metrics
	validate *validator.Validate
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		store:    st,
		cfg:      cfg,
		metrics:  m,
		validate: validator.New(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Email)
	if errors.Is(err, store.ErrUsernameTaken) || errors.Is(err, store.ErrEmailTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.GenerateSessionToken(user.ID, h.cfg.SessionSecret, auth.DefaultTokenTTL)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.metrics.UsersRegistered.Inc()
	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		Token: token,
		User:  *user,
	})
}

// Login handles POST /auth/login. Identification is by username only;
// the app has no passwords.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	token, err := auth.GenerateSessionToken(user.ID, h.cfg.SessionSecret, auth.DefaultTokenTTL)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Token: token,
		User:  *user,
	})
}

// Me handles GET /auth/me. This read is how the frontend observes the
// completion flag after a final vote.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Debes iniciar sesión para votar")
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Debes iniciar sesión para votar")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// validationMessage condenses validator output into a single short line
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" is invalid ("+fe.Tag()+")")
	}
	return strings.Join(parts, "; ")
}
