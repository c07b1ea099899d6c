// Package home provides the landing page and the role dashboards.
package home

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// HomeController handles the landing page and dashboards
type HomeController struct {
	DB *database.DBinstanceStruct
}

// NewHomeController creates a new instance of HomeController
func NewHomeController(db *database.DBinstanceStruct) *HomeController {
	return &HomeController{
		DB: db,
	}
}

// Index renders the landing page with the most recent active jobs.
// @Summary Landing page
// @Tags Home
// @Produce html,json
// @Success 200 {object} map[string]interface{} "recent_jobs holds up to 6 active jobs, newest first"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router / [get]
func (hc *HomeController) Index(c *gin.Context) {
	jobs, err := database.RecentJobs(hc.DB.WithContext(c.Request.Context()), database.RecentJobsLimit)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "index.html", gin.H{
		"title":       "Find your next job",
		"recent_jobs": jobs,
	})
}

// Dashboard sends the user to the dashboard of their role.
// @Summary Role dashboard dispatch
// @Tags Home
// @Produce html,json
// @Success 303 "Redirect to /admin/dashboard, /recruiter/dashboard or /job-seeker/dashboard"
// @Router /dashboard [get]
func (hc *HomeController) Dashboard(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.Redirect(c, "/login")
		return
	}
	render.Redirect(c, auth.DashboardPath(user.Role))
}

// SeekerDashboard lists the job seeker's applications, newest first.
// @Summary Job seeker dashboard
// @Tags Home
// @Produce html,json
// @Success 200 {object} map[string]interface{} "applications of the current user"
// @Success 303 "Not logged in as job seeker"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job-seeker/dashboard [get]
func (hc *HomeController) SeekerDashboard(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	apps, err := database.UserApplications(hc.DB.WithContext(c.Request.Context()), user.ID)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "job_seeker_dashboard.html", gin.H{
		"title":        "Dashboard",
		"applications": apps,
	})
}

// RecruiterDashboard lists the recruiter's jobs with their application counts.
// @Summary Recruiter dashboard
// @Tags Home
// @Produce html,json
// @Success 200 {object} map[string]interface{} "jobs of the current recruiter, newest first"
// @Success 303 "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/dashboard [get]
func (hc *HomeController) RecruiterDashboard(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	jobs, err := database.RecruiterJobs(hc.DB.WithContext(c.Request.Context()), user.ID)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "recruiter_dashboard.html", gin.H{
		"title": "Recruiter dashboard",
		"jobs":  jobs,
	})
}
