// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// LoginRoute is where requests without a session are sent
const LoginRoute = "/login"

// resolveSession verifies the request's session token and loads its user.
func resolveSession(ctx *gin.Context, db *database.DBinstanceStruct, sessions *auth.SessionManager) (model.User, *jwt.RegisteredClaims, error) {
	tokenString, err := sessions.TokenFromRequest(ctx)
	if err != nil {
		return model.User{}, nil, err
	}

	claims, err := sessions.Parse(tokenString)
	if err != nil {
		return model.User{}, nil, err
	}

	userID, err := auth.UserID(claims)
	if err != nil {
		return model.User{}, nil, err
	}

	user, err := database.GetUser(db.WithContext(ctx.Request.Context()), userID)
	if err != nil {
		return model.User{}, nil, err
	}
	return user, claims, nil
}

// RequireAuth resolves the session cookie (or Bearer token) into the current user.
// Requests without a valid session are redirected to the login page with a next parameter.
func RequireAuth(db *database.DBinstanceStruct, sessions *auth.SessionManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, claims, err := resolveSession(ctx, db, sessions)
		if err != nil {
			if !errors.Is(err, auth.ErrNoSession) && !errors.Is(err, utilities.ErrNotFound) && !isTokenError(err) {
				render.ServerError(ctx, err)
				return
			}
			if !errors.Is(err, auth.ErrNoSession) {
				sessions.ClearCookie(ctx)
			}
			render.Redirect(ctx, LoginRoute+"?next="+url.QueryEscape(ctx.Request.URL.RequestURI()))
			ctx.Abort()
			return
		}

		ctx.Set(auth.ClaimsKey, claims)
		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuth sets the current user when a valid session is present and never blocks the request.
func OptionalAuth(db *database.DBinstanceStruct, sessions *auth.SessionManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, claims, err := resolveSession(ctx, db, sessions)
		switch {
		case err == nil:
			ctx.Set(auth.ClaimsKey, claims)
			ctx.Set("user", user)
		case errors.Is(err, auth.ErrNoSession):
		default:
			slog.Debug("ignoring invalid session", "error", err)
		}
		ctx.Next()
	}
}

func isTokenError(err error) bool {
	var vErr *jwt.ValidationError
	return errors.As(err, &vErr) ||
		errors.Is(err, auth.ErrSessionRevoked) ||
		errors.Is(err, jwt.ErrTokenInvalidIssuer)
}
