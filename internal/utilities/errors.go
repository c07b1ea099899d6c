package utilities

import (
	"errors"
	"fmt"
	"strings"
)

// Validation messages
const (
	MinUsernameLength = 3
	MinPasswordLength = 6

	MsgUsernameTooShort  = "Username must be at least 3 characters"
	MsgEmailInvalid      = "Valid email is required"
	MsgPasswordTooShort  = "Password must be at least 6 characters"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgFullNameRequired  = "Full name is required"
	MsgRoleInvalid       = "Please select a valid role"
	MsgCredentialsNeeded = "Please provide email and password"
	MsgCoverLetterNeeded = "Cover letter is required"
	MsgResumeType        = "Invalid file type. Only PDF, DOC, and DOCX files are allowed."
	MsgResumeUnreadable  = "The uploaded PDF could not be read"
	MsgResumeTooLarge    = "Resume file is too large"
	MsgStatusInvalid     = "Please select a valid application status"
	MsgJobStatusInvalid  = "Please select a valid job status"
	MsgTitleRequired     = "Title is required"
	MsgCompanyRequired   = "Company is required"
	MsgLocationRequired  = "Location is required"
	MsgDescriptionNeeded = "Description is required"
)

var (
	// ErrInvalidCredentials is the single opaque outcome of a failed login
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrForbidden is returned when role or ownership does not permit the action
	ErrForbidden = errors.New("Unauthorized access")
	// ErrNotFound is returned when a resource looked up by id does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break a uniqueness rule
	ErrConflict = errors.New("conflict")

	ErrEmailTaken     = fmt.Errorf("%w: Email already registered", ErrConflict)
	ErrUsernameTaken  = fmt.Errorf("%w: Username already taken", ErrConflict)
	ErrAccountTaken   = fmt.Errorf("%w: Email or username already registered", ErrConflict)
	ErrAlreadyApplied = fmt.Errorf("%w: You have already applied to this job", ErrConflict)
)

// ValidationErrors lists every violated input rule.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// Messages returns the violated rules, one per entry.
func (v ValidationErrors) Messages() []string {
	return []string(v)
}

// UserMessage returns the text to show a user for err, hiding internal failures.
func UserMessage(err error) string {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.Is(err, ErrConflict):
		return strings.TrimPrefix(err.Error(), ErrConflict.Error()+": ")
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrForbidden):
		return err.Error()
	case errors.Is(err, ErrNotFound):
		return "The requested page was not found"
	default:
		return "Something went wrong, please try again"
	}
}
