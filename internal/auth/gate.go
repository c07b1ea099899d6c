package auth

import (
	"strings"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

// Dashboard routes per role
const (
	AdminDashboard     = "/admin/dashboard"
	RecruiterDashboard = "/recruiter/dashboard"
	SeekerDashboard    = "/job-seeker/dashboard"
)

// DashboardPath returns the dashboard of role.
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return AdminDashboard
	case model.RoleRecruiter:
		return RecruiterDashboard
	case model.RoleJobSeeker:
		return SeekerDashboard
	default:
		return "/"
	}
}

// HasRole reports whether user holds one of roles.
func HasRole(user model.User, roles ...model.Role) bool {
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// CanManageJob reports whether user is the recruiter who posted job.
func CanManageJob(user model.User, job model.Job) bool {
	return user.Role == model.RoleRecruiter && job.RecruiterID == user.ID
}

// CanReviewApplication reports whether user owns the job app was sent to.
// app.Job must be loaded.
func CanReviewApplication(user model.User, app model.Application) bool {
	return app.Job != nil && CanManageJob(user, *app.Job)
}

// CanViewResume reports whether user may download app's resume.
func CanViewResume(user model.User, app model.Application) bool {
	if user.Role == model.RoleJobSeeker && app.UserID == user.ID {
		return true
	}
	return CanReviewApplication(user, app)
}

// SafeNext returns next when it is a local path, otherwise "".
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	if strings.ContainsAny(next, "\r\n") {
		return ""
	}
	return next
}
