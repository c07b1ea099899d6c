package auth

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sadhna1118/job-portal-website/internal/metrics"
)

// Auth attempt outcomes
const (
	StatusSuccess = "Success"
	StatusFail    = "Fail"
)

var auditFile atomic.Bool

// EnableAuditFile turns on appending auth attempts to log/auth.log.
func EnableAuditFile(enabled bool) {
	auditFile.Store(enabled)
}

// LogAuthAttempt records an authentication attempt through slog and, when enabled,
// appends it to log/auth.log as
// timestamp (RFC3339) | level | action | status | identifier? | message?
// action: Login|Register|Logout
func LogAuthAttempt(level slog.Level, action string, status string, identifier string, message string) {
	slog.Log(context.Background(), level, "auth attempt",
		"action", action,
		"status", status,
		"identifier", identifier,
		"message", message,
	)
	metrics.AuthAttempts.WithLabelValues(action, status).Inc()

	if !auditFile.Load() {
		return
	}

	// best-effort: an audit failure never fails the request
	if err := os.MkdirAll("log", 0o750); err != nil {
		return
	}
	f, err := os.OpenFile("log/auth.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, strings.ToLower(level.String()), action, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}
	_, _ = f.WriteString(strings.Join(parts, " | ") + "\n")
}
