// Package savedjob provides HTTP handlers for bookmarking jobs.
package savedjob

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/metrics"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

const (
	MsgSaved   = "Job saved successfully"
	MsgRemoved = "Job removed from saved jobs"
)

// SavedJobController handles saved job related endpoints
type SavedJobController struct {
	DB *database.DBinstanceStruct
}

// NewSavedJobController creates a new instance of SavedJobController
func NewSavedJobController(db *database.DBinstanceStruct) *SavedJobController {
	return &SavedJobController{
		DB: db,
	}
}

// ToggleResponse is the body returned by ToggleSave
type ToggleResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

// ToggleSave saves the job for the current user, or removes it when it was already saved.
// @Summary Toggle saved job
// @Tags SavedJob
// @Produce json
// @Param id path integer true "ID of the job"
// @Success 200 {object} ToggleResponse "New saved state"
// @Success 303 "Not logged in, redirect to /login"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id}/save [post]
func (sc *SavedJobController) ToggleSave(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to get user"})
		return
	}
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	uow, err := database.GetUnitOfWork(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to start transaction"})
		return
	}

	if _, err := database.GetJob(uow.Tx(), id); err != nil {
		if errors.Is(err, utilities.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to get job"})
		return
	}

	saved, err := database.ToggleSave(uow.Tx(), user.ID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update saved jobs"})
		return
	}
	if err := uow.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update saved jobs"})
		return
	}

	resp := ToggleResponse{Saved: saved, Message: MsgRemoved}
	if saved {
		resp.Message = MsgSaved
	}
	metrics.SavedJobToggles.WithLabelValues(strconv.FormatBool(saved)).Inc()
	c.JSON(http.StatusOK, resp)
}

// ListSaved lists the current user's bookmarks on jobs that are still active.
// @Summary List saved jobs
// @Tags SavedJob
// @Produce html,json
// @Param page query integer false "Page number, starting at 1"
// @Success 200 {object} database.SavedJobPage "Page of saved jobs, newest first"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /saved-jobs [get]
func (sc *SavedJobController) ListSaved(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		render.ServerError(c, err)
		return
	}

	page, err := database.ListSavedJobs(sc.DB.WithContext(c.Request.Context()), user.ID, utilities.PageParam(c))
	if err != nil {
		render.ServerError(c, err)
		return
	}
	render.Page(c, http.StatusOK, "saved_jobs.html", gin.H{
		"title": "Saved jobs",
		"page":  page,
		"query": c.Request.URL.Query(),
	})
}
