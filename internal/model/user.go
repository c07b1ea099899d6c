package model

import (
	"fmt"
	"time"
)

// Role is the closed set of account kinds. A user's role is fixed at creation.
type Role string

const (
	// RoleJobSeeker browses, bookmarks and applies to jobs
	RoleJobSeeker Role = "job_seeker"
	// RoleRecruiter posts jobs and reviews applications to them
	RoleRecruiter Role = "recruiter"
	// RoleAdmin oversees users and listings
	RoleAdmin Role = "admin"
)

// ParseRole converts raw input into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// SelfRegistrable reports whether a visitor may pick this role when signing up.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}

// Label is the human readable role name used on pages.
func (r Role) Label() string {
	switch r {
	case RoleJobSeeker:
		return "Job Seeker"
	case RoleRecruiter:
		return "Recruiter"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// User is gorm model of an account
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;index;<-:create" json:"role"`
	FullName     *string   `gorm:"type:varchar(100)" json:"full_name"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// DisplayName returns full name when present, otherwise username.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
