package auth

import (
	"testing"
	"time"
)

const testSecret = "test-session-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("user-123", testSecret, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	userID, err := ParseSessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Expected user-123, got %s", userID)
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	valid, err := GenerateSessionToken("user-123", testSecret, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	expired, err := GenerateSessionToken("user-123", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired token", expired, testSecret},
		{"garbage token", "not-a-token", testSecret},
		{"empty token", "", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
