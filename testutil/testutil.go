// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AngelStivenToro/OgAwards/auth"
	"github.com/AngelStivenToro/OgAwards/cliparse"
	"github.com/AngelStivenToro/OgAwards/db"
	"github.com/AngelStivenToro/OgAwards/store"
	"github.com/AngelStivenToro/OgAwards/voting"
)

const testSessionSecret = "test-session-secret"

// Each test gets its own named in-memory database so state never leaks
// between tests running in the same process.
var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. A single connection keeps the memory database alive and
// serializes writes, which SQLite would do anyway.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("file:ogawards_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := db.Open(db.TypeSQLite, name)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8080,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		SessionSecret: testSessionSecret,
	}
}

// CreateTestUser registers a user and returns it with a session token.
func CreateTestUser(t *testing.T, st *store.Store, username string) (*voting.User, string) {
	t.Helper()

	user, err := st.CreateUser(context.Background(), username, username+"@example.com")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err := auth.GenerateSessionToken(user.ID, testSessionSecret, auth.DefaultTokenTTL)
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}

	return user, token
}

// SeedTestAwards seeds a catalog where each award gets the given number
// of nominees. Nominee IDs are "<awardID>-n<index>".
func SeedTestAwards(t *testing.T, st *store.Store, nomineesPerAward int, awardIDs ...string) {
	t.Helper()

	awards := make([]voting.Award, 0, len(awardIDs))
	for _, id := range awardIDs {
		award := voting.Award{
			ID:       id,
			Title:    "Premio " + id,
			Category: "Categoría " + id,
		}
		for i := 0; i < nomineesPerAward; i++ {
			award.Nominees = append(award.Nominees, voting.Nominee{
				ID:   fmt.Sprintf("%s-n%d", id, i),
				Name: fmt.Sprintf("Nominee %d of %s", i, id),
			})
		}
		awards = append(awards, award)
	}

	if err := st.SeedAwards(context.Background(), awards); err != nil {
		t.Fatalf("Failed to seed test awards: %v", err)
	}
}

// NomineeID mirrors the SeedTestAwards naming scheme.
func NomineeID(awardID string, index int) string {
	return fmt.Sprintf("%s-n%d", awardID, index)
}

// SubmitTestVote inserts a ballot directly, bypassing the coordinator.
func SubmitTestVote(t *testing.T, st *store.Store, userID, awardID string, rankings []string) {
	t.Helper()

	err := st.Insert(context.Background(), voting.Ballot{
		ID:          userID + "-" + awardID,
		UserID:      userID,
		AwardID:     awardID,
		Rankings:    rankings,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeaders returns the header map for a bearer session token.
func AuthHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
