// Package auth handles registration, login, session tokens and authorization rules.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/sadhna1118/job-portal-website/internal/config"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

const (
	// JwtIssuer is the issuer of every session token
	JwtIssuer = "job-portal"
	// SessionCookie is the cookie carrying the session token
	SessionCookie = "session"
)

var (
	// ErrNoSession is returned when the request carries no session token
	ErrNoSession = errors.New("no session")
	// ErrSessionRevoked is returned for tokens invalidated by logout
	ErrSessionRevoked = errors.New("Session has been revoked")
)

// SessionManager signs, verifies and revokes session tokens.
type SessionManager struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
	secure      bool
	Blacklist   JwtBlacklistStore
}

// NewSessionManager creates a SessionManager from config using blacklist for revoked tokens.
func NewSessionManager(cfg *config.Config, blacklist JwtBlacklistStore) *SessionManager {
	return &SessionManager{
		secret:      []byte(cfg.SecretKey),
		ttl:         cfg.SessionTTL,
		rememberTTL: cfg.RememberTTL,
		secure:      cfg.IsProduction(),
		Blacklist:   blacklist,
	}
}

// Issue signs a token for userID. A remembered session lives for the remember TTL.
func (s *SessionManager) Issue(userID uint, remember bool) (string, *jwt.RegisteredClaims, error) {
	ttl := s.ttl
	if remember {
		ttl = s.rememberTTL
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    JwtIssuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("Failed to sign token: %w", err)
	}
	return signed, claims, nil
}

// Parse validates token and returns its claims.
func (s *SessionManager) Parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Invalid token")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("Invalid access token")
	}
	if !claims.VerifyIssuer(JwtIssuer, true) {
		return nil, jwt.ErrTokenInvalidIssuer
	}

	if s.Blacklist != nil {
		revoked, err := s.Blacklist.IsBlacklisted(claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrSessionRevoked
		}
	}
	return claims, nil
}

// UserID returns the user id carried by claims.
func UserID(claims *jwt.RegisteredClaims) (uint, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}
	return uint(id), nil
}

// Revoke blacklists the token described by claims until it expires.
func (s *SessionManager) Revoke(claims *jwt.RegisteredClaims) error {
	exp := time.Now().Add(s.rememberTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return s.Blacklist.AddToBlacklist(claims.ID, exp)
}

// TokenFromRequest returns the session cookie, falling back to a Bearer header.
func (s *SessionManager) TokenFromRequest(c *gin.Context) (string, error) {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v, nil
	}
	if v, err := utilities.ExtractBearerToken(c); err == nil {
		return v, nil
	}
	return "", ErrNoSession
}

// SetCookie stores token in the session cookie. Without remember the cookie ends with the browser session.
func (s *SessionManager) SetCookie(c *gin.Context, token string, remember bool) {
	maxAge := 0
	if remember {
		maxAge = int(s.rememberTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", s.secure, true)
}

// ClearCookie removes the session cookie.
func (s *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.secure, true)
}
