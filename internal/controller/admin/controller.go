// Package admin provides the administrator pages and maintenance actions.
package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

const (
	usersPath = "/admin/users"
	jobsPath  = "/admin/jobs"

	// MsgAdminUndeletable is shown when trying to delete an admin account
	MsgAdminUndeletable = "Admin accounts cannot be deleted"
)

type AdminController struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
}

func NewAdminController(db *database.DBinstanceStruct, store storage.Client) *AdminController {
	return &AdminController{
		DB:      db,
		Storage: store,
	}
}

// Dashboard shows site totals with the most recent users and jobs.
// @Summary Admin dashboard
// @Description Only admin can access this endpoint
// @Tags Admin
// @Produce html,json
// @Success 200 {object} database.AdminStats "Totals and recent items"
// @Success 303 "Not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/dashboard [get]
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := database.GetAdminStats(ac.DB.WithContext(c.Request.Context()))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title": "Admin dashboard",
		"stats": stats,
	})
}

// Users lists every account.
// @Summary List users
// @Description Only admin can access this endpoint
// @Tags Admin
// @Produce html,json
// @Success 200 {array} model.User
// @Success 303 "Not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users [get]
func (ac *AdminController) Users(c *gin.Context) {
	users, err := database.ListUsers(ac.DB.WithContext(c.Request.Context()))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "admin_users.html", gin.H{
		"title": "Users",
		"users": users,
	})
}

// Jobs lists every job, active or closed.
// @Summary List jobs
// @Description Only admin can access this endpoint
// @Tags Admin
// @Produce html,json
// @Success 200 {array} model.Job
// @Success 303 "Not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/jobs [get]
func (ac *AdminController) Jobs(c *gin.Context) {
	jobs, err := database.ListAllJobs(ac.DB.WithContext(c.Request.Context()))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "admin_jobs.html", gin.H{
		"title": "Jobs",
		"jobs":  jobs,
	})
}

// DeleteUser removes an account together with its jobs, applications and bookmarks.
// @Summary Delete user
// @Description Only admin can access this endpoint. Admin accounts cannot be deleted.
// @Tags Admin
// @Produce html,json
// @Param id path integer true "ID of the user"
// @Success 303 {object} map[string]interface{} "Redirect to /admin/users"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users/{id}/delete [post]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return
	}
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	resumes, err := database.DeleteUser(uow.Tx(), id)
	switch {
	case errors.Is(err, utilities.ErrForbidden):
		render.AddFlash(c, render.FlashError, MsgAdminUndeletable)
		render.Redirect(c, usersPath)
		return
	case err != nil:
		render.Error(c, err)
		return
	}

	uow.AfterCommit(func() { storage.RemoveAll(context.Background(), ac.Storage, resumes) })
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	slog.Info("User deleted by admin", "user_id", id, "resumes", len(resumes))

	render.AddFlash(c, render.FlashSuccess, "User deleted successfully!")
	render.Redirect(c, usersPath)
}

// DeleteJob removes any job with its applications and bookmarks.
// @Summary Delete job
// @Description Only admin can access this endpoint
// @Tags Admin
// @Produce html,json
// @Param id path integer true "ID of the job"
// @Success 303 {object} map[string]interface{} "Redirect to /admin/jobs"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/jobs/{id}/delete [post]
func (ac *AdminController) DeleteJob(c *gin.Context) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return
	}
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	resumes, err := database.DeleteJob(uow.Tx(), id)
	if err != nil {
		render.Error(c, err)
		return
	}
	uow.AfterCommit(func() { storage.RemoveAll(context.Background(), ac.Storage, resumes) })
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	slog.Info("Job deleted by admin", "job_id", id, "resumes", len(resumes))

	render.AddFlash(c, render.FlashSuccess, "Job deleted successfully!")
	render.Redirect(c, jobsPath)
}
