package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// RegisterInput is the account creation form.
type RegisterInput struct {
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
	FullName        string `form:"full_name" json:"full_name"`
	Phone           string `form:"phone" json:"phone"`
	Role            string `form:"role" json:"role"`
}

// Normalize trims fields and lowercases the email.
func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Role = strings.TrimSpace(in.Role)
}

// Validate returns every violated rule, or nil.
func (in RegisterInput) Validate() error {
	var errs utilities.ValidationErrors
	if len([]rune(in.Username)) < utilities.MinUsernameLength {
		errs = append(errs, utilities.MsgUsernameTooShort)
	}
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, utilities.MsgEmailInvalid)
	}
	if len(in.Password) < utilities.MinPasswordLength {
		errs = append(errs, utilities.MsgPasswordTooShort)
	}
	if in.Password != in.ConfirmPassword {
		errs = append(errs, utilities.MsgPasswordsMismatch)
	}
	if in.FullName == "" {
		errs = append(errs, utilities.MsgFullNameRequired)
	}
	if role, err := model.ParseRole(in.Role); err != nil || !role.SelfRegistrable() {
		errs = append(errs, utilities.MsgRoleInvalid)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Register validates in and creates the account with a hashed password.
func Register(tx *gorm.DB, in RegisterInput) (model.User, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return model.User{}, err
	}

	hashed, err := utilities.HashPassword(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		Role:         model.Role(in.Role),
		FullName:     utilities.NilIfEmpty(in.FullName),
		Phone:        utilities.NilIfEmpty(in.Phone),
	}
	if err := database.CreateUser(tx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Authenticate returns the account matching email and password.
// Unknown email and wrong password both fail with utilities.ErrInvalidCredentials.
func Authenticate(db *gorm.DB, email, password string) (model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.User{}, utilities.ValidationErrors{utilities.MsgCredentialsNeeded}
	}

	user, err := database.FindUserByEmail(db, email)
	if errors.Is(err, utilities.ErrNotFound) {
		// keep timing close to a real comparison
		utilities.VerifyPassword(password, dummyHash)
		return model.User{}, utilities.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	if user.PasswordHash == "" || !utilities.VerifyPassword(password, user.PasswordHash) {
		return model.User{}, utilities.ErrInvalidCredentials
	}
	return user, nil
}

var dummyHash, _ = utilities.HashPassword("job-portal-placeholder")
