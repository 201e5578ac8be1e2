package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/AngelStivenToro/OgAwards/auth"
	"github.com/AngelStivenToro/OgAwards/metrics"
	"github.com/AngelStivenToro/OgAwards/models"
)

const testSecret = "middleware-test-secret"

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"status": "ok"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json content type, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok in body, got %q", body["status"])
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "Ya has votado para esta categoría")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error != "Conflict" {
		t.Errorf("Expected error Conflict, got %q", body.Error)
	}
	if body.Message != "Ya has votado para esta categoría" {
		t.Errorf("Unexpected message: %q", body.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"rankings":["n1","n2"]}`))

	var payload models.SubmitVoteRequest
	if err := ParseJSONBody(req, &payload); err != nil {
		t.Fatalf("Failed to parse valid body: %v", err)
	}
	if len(payload.Rankings) != 2 || payload.Rankings[0] != "n1" {
		t.Errorf("Unexpected rankings: %v", payload.Rankings)
	}

	req = httptest.NewRequest("POST", "/", bytes.NewBufferString(`not json`))
	if err := ParseJSONBody(req, &payload); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestRequireAuth(t *testing.T) {
	token, err := auth.GenerateSessionToken("user-42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	var gotUserID string
	handler := RequireAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest("GET", "/votes/mine", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusNoContent && gotUserID != "user-42" {
				t.Errorf("Expected user-42 in context, got %q", gotUserID)
			}
		})
	}
}

func TestWithMetrics(t *testing.T) {
	m := metrics.New()
	handler := WithMetrics(m, "test_route", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/", nil))
	}

	counted := testutil.ToFloat64(m.RequestCounter.WithLabelValues("test_route", "418"))
	if counted != 3 {
		t.Errorf("Expected 3 counted requests, got %v", counted)
	}

	inFlight := testutil.ToFloat64(m.RequestsInFlight.WithLabelValues("test_route"))
	if inFlight != 0 {
		t.Errorf("Expected 0 in-flight requests after completion, got %v", inFlight)
	}
}

func TestCORSPreflight(t *testing.T) {
	wrapped := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/awards", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}
