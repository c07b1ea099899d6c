package auth

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sadhna1118/job-portal-website/internal/config"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// NewTestSessionManager returns a SessionManager with a fixed secret and an in-memory blacklist.
func NewTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewSessionManager(&config.Config{
		SecretKey:   "test-secret",
		SessionTTL:  time.Hour,
		RememberTTL: 24 * time.Hour,
	}, NewInMemoryBlacklistStore(ctx))
}

// GetAccessToken is a helper function to obtain a session token for a user by simulating a login API call.
// It returns the token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	sessions *SessionManager,
	email string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db, sessions)
	rec, resp, err := utilities.SimulateAPICall(handler.Login, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusSeeOther {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access_token"] == nil {
		return "", fmt.Errorf("login Failed: no access_token in response: %s", rec.Body.String())
	}
	return resp["access_token"].(string), nil
}
