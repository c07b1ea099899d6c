// Package file provides HTTP handlers for file-related operations.
package file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/storage"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// FileController handles file related endpoints
type FileController struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
}

// NewFileController creates a new instance of FileController
func NewFileController(db *database.DBinstanceStruct, store storage.Client) *FileController {
	return &FileController{
		DB:      db,
		Storage: store,
	}
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// GetResume sends the resume attached to an application.
// @Summary Download an application's resume
// @Description Only the applicant and the recruiter who posted the job can download it
// @Tags File
// @Produce application/pdf,application/msword,application/octet-stream
// @Param id path integer true "ID of the application"
// @Success 200 {string} binary "Resume file"
// @Success 303 "Not allowed to view this resume"
// @Failure 404 {object} utilities.ErrorResponse "Application or resume not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /application/{id}/resume [get]
func (fc *FileController) GetResume(c *gin.Context) {
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

	app, err := database.GetApplication(fc.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		render.Error(c, err)
		return
	}
	if !auth.CanViewResume(user, app) {
		render.Forbidden(c)
		return
	}
	if !app.HasResume() {
		render.NotFound(c)
		return
	}

	fc.writeFileResponse(c, *app.ResumeURL)
}

func (fc *FileController) writeFileResponse(c *gin.Context, objectName string) {
	reader, size, err := fc.Storage.DownloadFile(c.Request.Context(), objectName)
	if errors.Is(err, storage.ErrObjectNotFound) {
		slog.Warn("resume missing from storage", "object", objectName)
		render.NotFound(c)
		return
	}
	if err != nil {
		render.ServerError(c, fmt.Errorf("download %s: %w", objectName, err))
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			slog.Warn("failed to close storage reader", "error", err)
		}
	}()

	name := path.Base(objectName)
	contentType, ok := contentTypes[strings.ToLower(path.Ext(name))]
	if !ok {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", contentType)
	if size > 0 {
		c.Header("Content-Length", fmt.Sprint(size))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		fc.handleWriterError(c, err)
	}
}

func (fc *FileController) handleWriterError(c *gin.Context, err error) {
	slog.Warn("failed to send file content", "error", err)
	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to send file content",
		})
	} else {
		c.Abort()
	}
}
