// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// CreateAdmin creates an admin user with the given credentials in the provided database.
func CreateAdmin(db *gorm.DB, email string, username string, password string) (model.User, error) {
	if len(password) < MinPasswordLength {
		return model.User{}, ValidationErrors{MsgPasswordTooShort}
	}
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	admin := model.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return model.User{}, err
	}
	return admin, nil
}

// Ptr returns pointer to v
func Ptr[T any](v T) *T { return &v }

// NilIfEmpty returns nil for blank strings, otherwise a pointer to trimmed s.
func NilIfEmpty(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// ParseID reads the positive integer path parameter name.
// A malformed id is reported as ErrNotFound.
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrNotFound, name, c.Param(name))
	}
	return uint(id), nil
}

// PageParam reads the page query parameter, defaulting to 1.
func PageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
