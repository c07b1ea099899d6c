// Package jobpost provides HTTP handlers for job listing and recruiter job management.
package jobpost

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/metrics"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// JobPostController handles job post related endpoints
type JobPostController struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(db *database.DBinstanceStruct, store storage.Client) *JobPostController {
	return &JobPostController{
		DB:      db,
		Storage: store,
	}
}

var jobStatuses = []model.JobStatus{model.JobStatusActive, model.JobStatusClosed}

func viewerID(c *gin.Context) *uint {
	if user, err := utilities.ExtractUser(c); err == nil {
		return &user.ID
	}
	return nil
}

// GetPosts lists active jobs matching the query, newest first, ten per page.
// @Summary Search active job posts
// @Description Every query is optional. Text filters are case insensitive substring matches.
// @Tags Jobpost
// @Produce html,json
// @Param search query string false "Matches title, skills, description or company"
// @Param location query string false "Matches location"
// @Param type query string false "Exact job type, 'all' disables the filter"
// @Param experience query string false "Exact experience level, 'all' disables the filter"
// @Param min_salary query integer false "Keeps jobs whose salary upper bound is at least this amount"
// @Param page query integer false "Page number, starting at 1"
// @Success 200 {object} database.JobPage "Page of active jobs"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobPostController) GetPosts(c *gin.Context) {
	filter := database.JobFilter{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		JobType:    c.Query("type"),
		Experience: c.Query("experience"),
	}
	// a malformed amount disables the filter
	if v, err := strconv.Atoi(strings.TrimSpace(c.Query("min_salary"))); err == nil && v > 0 {
		filter.MinSalary = v
	}

	page, err := database.ListJobs(jc.DB.WithContext(c.Request.Context()), filter, utilities.PageParam(c), viewerID(c))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "jobs.html", gin.H{
		"title": "Browse jobs",
		"page":  page,
		"query": c.Request.URL.Query(),
	})
}

// GetPostByID shows a job with up to three similar active jobs.
// Closed jobs stay reachable by id.
// @Summary Get job post by ID
// @Tags Jobpost
// @Produce html,json
// @Param id path integer true "ID of desired job post"
// @Success 200 {object} map[string]interface{} "detail holds the job, has_applied, is_saved and similar_jobs"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id} [get]
func (jc *JobPostController) GetPostByID(c *gin.Context) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return
	}

	detail, err := database.GetJobDetail(jc.DB.WithContext(c.Request.Context()), id, viewerID(c))
	if err != nil {
		render.Error(c, err)
		return
	}
	render.Page(c, http.StatusOK, "job_detail.html", gin.H{
		"title":  detail.Job.Title,
		"detail": detail,
	})
}

// jobForm is the posting form. Status is only read on edit.
type jobForm struct {
	model.EditableJobInfo
	Status string `form:"status" json:"status"`
}

// bindJobInfo reads the posting form and collects every violated rule.
func bindJobInfo(c *gin.Context) (model.EditableJobInfo, string, error) {
	var form jobForm
	if err := c.ShouldBind(&form); err != nil {
		form = jobForm{}
	}
	info := form.EditableJobInfo

	info.Title = strings.TrimSpace(info.Title)
	info.Company = strings.TrimSpace(info.Company)
	info.Location = strings.TrimSpace(info.Location)
	info.JobType = strings.TrimSpace(info.JobType)
	info.Experience = strings.TrimSpace(info.Experience)
	info.Skills = strings.TrimSpace(info.Skills)
	info.Description = strings.TrimSpace(info.Description)
	info.Requirements = strings.TrimSpace(info.Requirements)
	if info.Salary != nil {
		info.Salary = utilities.NilIfEmpty(*info.Salary)
	}

	var errs utilities.ValidationErrors
	if info.Title == "" {
		errs = append(errs, utilities.MsgTitleRequired)
	}
	if info.Company == "" {
		errs = append(errs, utilities.MsgCompanyRequired)
	}
	if info.Location == "" {
		errs = append(errs, utilities.MsgLocationRequired)
	}
	if info.Description == "" {
		errs = append(errs, utilities.MsgDescriptionNeeded)
	}
	if len(errs) > 0 {
		return info, form.Status, errs
	}
	return info, form.Status, nil
}

// ownedJob loads job id and checks that user posted it.
func ownedJob(c *gin.Context, db *database.DBinstanceStruct) (model.Job, bool) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		render.NotFound(c)
		return model.Job{}, false
	}
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return model.Job{}, false
	}

	tx := db.WithContext(c.Request.Context())
	if uow, err := database.GetUnitOfWork(c); err == nil {
		tx = uow.Tx()
	}
	job, err := database.GetJob(tx, id)
	if err != nil {
		render.Error(c, err)
		return model.Job{}, false
	}
	if !auth.CanManageJob(user, job) {
		render.Forbidden(c)
		return model.Job{}, false
	}
	return job, true
}

// NewPostPage renders the empty posting form.
// @Summary Job posting form
// @Tags Jobpost
// @Produce html,json
// @Success 200 {object} map[string]interface{}
// @Success 303 "Not logged in as recruiter"
// @Router /recruiter/job/new [get]
func (jc *JobPostController) NewPostPage(c *gin.Context) {
	render.Page(c, http.StatusOK, "post_job.html", gin.H{
		"title":     "Post a job",
		"form":      model.EditableJobInfo{JobType: model.JobTypes[0]},
		"job_types": model.JobTypes,
	})
}

// CreateJobPostHandler handles the creation of a new job post by a recruiter.
// @Summary Create job post
// @Description Only recruiters have access to this endpoint
// @Tags Jobpost
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param Jobpost body model.EditableJobInfo true "Input jobpost information"
// @Success 303 {object} map[string]interface{} "Job created, redirect to /recruiter/dashboard"
// @Success 200 {object} map[string]interface{} "Form re-rendered with errors"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/job/new [post]
func (jc *JobPostController) CreateJobPostHandler(c *gin.Context) {
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

	info, _, err := bindJobInfo(c)
	var verrs utilities.ValidationErrors
	if errors.As(err, &verrs) {
		render.AddFlashes(c, render.FlashError, verrs.Messages())
		render.Page(c, http.StatusOK, "post_job.html", gin.H{
			"title":     "Post a job",
			"form":      info,
			"job_types": model.JobTypes,
		})
		return
	}

	job := model.Job{RecruiterID: user.ID, EditableJobInfo: info, Status: model.JobStatusActive}
	if err := uow.Tx().Omit(clause.Associations).Create(&job).Error; err != nil {
		render.ServerError(c, err)
		return
	}
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	metrics.JobsPosted.Inc()
	slog.Info("Job posted", "job_id", job.ID, "recruiter_id", user.ID)

	render.AddFlash(c, render.FlashSuccess, "Job posted successfully!")
	render.RedirectWith(c, auth.RecruiterDashboard, gin.H{"job": job})
}

// EditPostPage renders the posting form filled with the job.
// @Summary Job edit form
// @Tags Jobpost
// @Produce html,json
// @Param id path integer true "ID of the job post"
// @Success 200 {object} map[string]interface{}
// @Success 303 "Not the recruiter who posted the job"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /recruiter/job/{id}/edit [get]
func (jc *JobPostController) EditPostPage(c *gin.Context) {
	job, ok := ownedJob(c, jc.DB)
	if !ok {
		return
	}
	render.Page(c, http.StatusOK, "edit_job.html", gin.H{
		"title":        "Edit job",
		"job":          job,
		"form":         job.EditableJobInfo,
		"job_types":    model.JobTypes,
		"job_statuses": jobStatuses,
	})
}

// EditJobPost updates the job's editable fields and, when given, its status.
// @Summary Edit job post
// @Description Only the recruiter who posted the job can edit it
// @Tags Jobpost
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param id path integer true "ID of the job post"
// @Param Jobpost body model.EditableJobInfo true "New jobpost information, plus optional status 'active' or 'closed'"
// @Success 303 {object} map[string]interface{} "Job updated, redirect to /recruiter/dashboard"
// @Success 200 {object} map[string]interface{} "Form re-rendered with errors"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/job/{id}/edit [post]
func (jc *JobPostController) EditJobPost(c *gin.Context) {
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	job, ok := ownedJob(c, jc.DB)
	if !ok {
		return
	}

	info, rawStatus, err := bindJobInfo(c)
	var verrs utilities.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		render.ServerError(c, err)
		return
	}

	status := job.Status
	if raw := strings.TrimSpace(rawStatus); raw != "" {
		if st, err := model.ParseJobStatus(raw); err == nil {
			status = st
		} else {
			verrs = append(verrs, utilities.MsgJobStatusInvalid)
		}
	}

	if len(verrs) > 0 {
		render.AddFlashes(c, render.FlashError, verrs.Messages())
		render.Page(c, http.StatusOK, "edit_job.html", gin.H{
			"title":        "Edit job",
			"job":          job,
			"form":         info,
			"job_types":    model.JobTypes,
			"job_statuses": jobStatuses,
		})
		return
	}

	job.EditableJobInfo = info
	job.Status = status
	if err := uow.Tx().Omit(clause.Associations).Save(&job).Error; err != nil {
		render.ServerError(c, err)
		return
	}
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}

	render.AddFlash(c, render.FlashSuccess, "Job updated successfully!")
	render.RedirectWith(c, auth.RecruiterDashboard, gin.H{"job": job})
}

// DeleteJobPost removes the job with its applications and bookmarks.
// @Summary Delete job post
// @Description Only the recruiter who posted the job can delete it. Resumes of removed applications are deleted.
// @Tags Jobpost
// @Produce html,json
// @Param id path integer true "ID of the job post"
// @Success 303 {object} map[string]interface{} "Job deleted, redirect to /recruiter/dashboard"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/job/{id}/delete [post]
func (jc *JobPostController) DeleteJobPost(c *gin.Context) {
	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}
	job, ok := ownedJob(c, jc.DB)
	if !ok {
		return
	}

	resumes, err := database.DeleteJob(uow.Tx(), job.ID)
	if err != nil {
		render.Error(c, err)
		return
	}
	uow.AfterCommit(func() { storage.RemoveAll(context.Background(), jc.Storage, resumes) })
	if err := uow.Commit(); err != nil {
		render.ServerError(c, err)
		return
	}
	slog.Info("Job deleted", "job_id", job.ID, "applications_resumes", len(resumes))

	render.AddFlash(c, render.FlashSuccess, "Job deleted successfully!")
	render.Redirect(c, auth.RecruiterDashboard)
}
