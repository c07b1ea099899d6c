// Package application provides HTTP handlers for job application operations.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/metrics"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// MsgJobClosed is shown when applying to a job that no longer accepts applications
const MsgJobClosed = "This job is no longer accepting applications"

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB             *database.DBinstanceStruct
	Storage        storage.Client
	MaxUploadBytes int64
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct, store storage.Client, maxUploadBytes int64) *ApplicationController {
	return &ApplicationController{
		DB:             db,
		Storage:        store,
		MaxUploadBytes: maxUploadBytes,
	}
}

func jobPath(id uint) string {
	return fmt.Sprintf("/job/%d", id)
}

// applicableJob loads job id for user and redirects back to the job when it is closed
// or user already applied.
func applicableJob(c *gin.Context, conn *database.DBinstanceStruct, uow *database.UnitOfWork, user model.User) (model.Job, bool) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return model.Job{}, false
	}

	db := conn.WithContext(c.Request.Context())
	if uow != nil {
		db = uow.Tx()
	}
	job, err := database.GetJob(db, id)
	if err != nil {
		render.Error(c, err)
		return model.Job{}, false
	}
	if !job.IsActive() {
		render.AddFlash(c, render.FlashWarning, MsgJobClosed)
		render.Redirect(c, jobPath(job.ID))
		return model.Job{}, false
	}

	applied, err := database.HasApplied(db, job.ID, user.ID)
	if err != nil {
		render.ServerError(c, err)
		return model.Job{}, false
	}
	if applied {
		render.AddFlash(c, render.FlashInfo, utilities.UserMessage(utilities.ErrAlreadyApplied))
		render.Redirect(c, jobPath(job.ID))
		return model.Job{}, false
	}
	return job, true
}

// ApplyPage renders the application form.
// @Summary Application form
// @Tags Application
// @Produce html,json
// @Param id path integer true "ID of the job"
// @Success 200 {object} map[string]interface{}
// @Success 303 "Job closed or already applied, redirect to the job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /job/{id}/apply [get]
func (ac *ApplicationController) ApplyPage(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	job, ok := applicableJob(c, ac.DB, nil, user)
	if !ok {
		return
	}
	render.Page(c, http.StatusOK, "apply_job.html", gin.H{
		"title":        "Apply: " + job.Title,
		"job":          job,
		"cover_letter": "",
	})
}

// readResume returns the uploaded resume, or nil when none was sent.
func readResume(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("resume")
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return fh, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	case errors.As(err, &tooLarge):
		return nil, utilities.ValidationErrors{utilities.MsgResumeTooLarge}
	default:
		return nil, err
	}
}

// ApplicationHandler creates a pending application for the current job seeker.
// @Summary Apply to a job
// @Description Only job seekers can apply. The resume is optional; PDF, DOC and DOCX are accepted.
// @Tags Application
// @Accept multipart/form-data
// @Produce html,json
// @Param id path integer true "ID of the job"
// @Param cover_letter formData string true "Cover letter"
// @Param resume formData file false "Resume file"
// @Success 303 {object} map[string]interface{} "Application submitted, redirect to /my-applications"
// @Success 200 {object} map[string]interface{} "Form re-rendered with errors"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /job/{id}/apply [post]
func (ac *ApplicationController) ApplicationHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	job, ok := applicableJob(c, ac.DB, uow, user)
	if !ok {
		return
	}

	coverLetter := strings.TrimSpace(c.PostForm("cover_letter"))
	var verrs utilities.ValidationErrors
	if coverLetter == "" {
		verrs = append(verrs, utilities.MsgCoverLetterNeeded)
	}
	fh, err := readResume(c)
	if err != nil && !errors.As(err, &verrs) {
		render.ServerError(c, err)
		return
	}

	var resumeURL *string
	if len(verrs) == 0 && fh != nil {
		name, err := storage.SaveResume(c.Request.Context(), ac.Storage, user.ID, fh, ac.MaxUploadBytes)
		switch {
		case errors.As(err, &verrs):
		case err != nil:
			render.ServerError(c, err)
			return
		default:
			uow.OnRollback(func() {
				if err := ac.Storage.DeleteFile(context.Background(), name); err != nil {
					slog.Warn("failed to remove orphaned resume", "object", name, "error", err)
				}
			})
			resumeURL = &name
		}
	}

	if len(verrs) > 0 {
		render.AddFlashes(c, render.FlashError, verrs.Messages())
		render.Page(c, http.StatusOK, "apply_job.html", gin.H{
			"title":        "Apply: " + job.Title,
			"job":          job,
			"cover_letter": coverLetter,
		})
		return
	}

	app := model.Application{
		JobID:       job.ID,
		UserID:      user.ID,
		CoverLetter: coverLetter,
		ResumeURL:   resumeURL,
	}
	if err := database.CreateApplication(uow.Tx(), &app); err != nil {
		if errors.Is(err, utilities.ErrConflict) {
			render.AddFlash(c, render.FlashInfo, utilities.UserMessage(err))
			render.Redirect(c, jobPath(job.ID))
			return
		}
		render.ServerError(c, err)
		return
	}
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	metrics.ApplicationsSubmitted.Inc()
	slog.Info("Application submitted", "application_id", app.ID, "job_id", job.ID, "user_id", user.ID)

	render.AddFlash(c, render.FlashSuccess, "Application submitted successfully!")
	render.RedirectWith(c, "/my-applications", gin.H{"application": app})
}

// applicationFilters are the status tabs of the application list
func applicationFilters() []string {
	filters := []string{"all"}
	for _, st := range model.ApplicationStatuses {
		filters = append(filters, string(st))
	}
	return filters
}

// MyApplications lists the current job seeker's applications with per-status counts.
// @Summary List own applications
// @Tags Application
// @Produce html,json
// @Param status query string false "all, pending, reviewed, accepted or rejected"
// @Param page query integer false "Page number, starting at 1"
// @Success 200 {object} database.ApplicationPage "Page of applications"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /my-applications [get]
func (ac *ApplicationController) MyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	filters := applicationFilters()
	status := c.DefaultQuery("status", "all")
	if !utilities.Contains(filters, status) {
		status = "all"
	}

	page, err := database.ListUserApplications(ac.DB.WithContext(c.Request.Context()), user.ID, status, utilities.PageParam(c))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "my_applications.html", gin.H{
		"title":    "My applications",
		"page":     page,
		"statuses": filters,
		"query":    c.Request.URL.Query(),
	})
}

// ViewApplications lists applicants of a job owned by the current recruiter.
// @Summary List applications of a job
// @Tags Application
// @Produce html,json
// @Param id path integer true "ID of the job"
// @Success 200 {object} map[string]interface{} "job and its applications with applicants, newest first"
// @Success 303 "Not the recruiter who posted the job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /recruiter/job/{id}/applications [get]
func (ac *ApplicationController) ViewApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return
	}

	db := ac.DB.WithContext(c.Request.Context())
	job, err := database.GetJob(db, id)
	if err != nil {
		render.Error(c, err)
		return
	}
	if !auth.CanManageJob(user, job) {
		render.Forbidden(c)
		return
	}

	apps, err := database.JobApplications(db, job.ID)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "view_applications.html", gin.H{
		"title":        "Applications",
		"job":          job,
		"applications": apps,
		"statuses":     model.ApplicationStatuses,
	})
}

type statusUpdate struct {
	Status string `form:"status" json:"status"`
}

// UpdateStatus sets the status of an application to a job owned by the current recruiter.
// @Summary Update application status
// @Description Any of pending, reviewed, accepted and rejected may follow any other.
// @Tags Application
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param id path integer true "ID of the application"
// @Param status body statusUpdate true "New status"
// @Success 303 {object} map[string]interface{} "Redirect to the job's applications"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/application/{id}/update [post]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return
	}

	app, err := database.GetApplication(uow.Tx(), id)
	if err != nil {
		render.Error(c, err)
		return
	}
	if !auth.CanReviewApplication(user, app) {
		render.Forbidden(c)
		return
	}
	back := fmt.Sprintf("/recruiter/job/%d/applications", app.JobID)

	var in statusUpdate
	if err := c.ShouldBind(&in); err != nil {
		in = statusUpdate{}
	}
	status, err := model.ParseApplicationStatus(strings.TrimSpace(in.Status))
	if err != nil {
		render.AddFlash(c, render.FlashError, utilities.MsgStatusInvalid)
		render.Redirect(c, back)
		return
	}

	if err := database.UpdateApplicationStatus(uow.Tx(), &app, status); err != nil {
		render.ServerError(c, err)
		return
	}
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	metrics.ApplicationStatusChanges.WithLabelValues(string(status)).Inc()

	render.AddFlash(c, render.FlashSuccess, fmt.Sprintf("Application status updated to %s", status))
	render.RedirectWith(c, back, gin.H{"application": app})
}
