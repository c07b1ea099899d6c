package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, AdminDashboard, DashboardPath(model.RoleAdmin))
	assert.Equal(t, RecruiterDashboard, DashboardPath(model.RoleRecruiter))
	assert.Equal(t, SeekerDashboard, DashboardPath(model.RoleJobSeeker))
	assert.Equal(t, "/", DashboardPath(model.Role("visitor")))
}

func TestOwnershipRules(t *testing.T) {
	owner := model.User{ID: 1, Role: model.RoleRecruiter}
	other := model.User{ID: 2, Role: model.RoleRecruiter}
	applicant := model.User{ID: 3, Role: model.RoleJobSeeker}
	stranger := model.User{ID: 4, Role: model.RoleJobSeeker}
	admin := model.User{ID: 5, Role: model.RoleAdmin}

	job := model.Job{ID: 10, RecruiterID: owner.ID}
	app := model.Application{ID: 20, JobID: job.ID, UserID: applicant.ID, Job: &job}

	assert.True(t, CanManageJob(owner, job))
	assert.False(t, CanManageJob(other, job))
	assert.False(t, CanManageJob(admin, job))
	// a seeker whose id happens to match the recruiter id is still not the owner
	assert.False(t, CanManageJob(model.User{ID: owner.ID, Role: model.RoleJobSeeker}, job))

	assert.True(t, CanReviewApplication(owner, app))
	assert.False(t, CanReviewApplication(other, app))
	assert.False(t, CanReviewApplication(owner, model.Application{JobID: job.ID}))

	assert.True(t, CanViewResume(applicant, app))
	assert.True(t, CanViewResume(owner, app))
	assert.False(t, CanViewResume(stranger, app))
	assert.False(t, CanViewResume(other, app))
}

func TestHasRole(t *testing.T) {
	u := model.User{Role: model.RoleRecruiter}
	assert.True(t, HasRole(u, model.RoleAdmin, model.RoleRecruiter))
	assert.False(t, HasRole(u, model.RoleJobSeeker))
	assert.False(t, HasRole(u))
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"/jobs?page=2":         "/jobs?page=2",
		"/job/5/apply":         "/job/5/apply",
		"":                     "",
		"https://evil.example": "",
		"//evil.example":       "",
		"/\\evil.example":      "",
		"jobs":                 "",
		"/x\r\nSet-Cookie: a":  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeNext(in), "next=%q", in)
	}
}
