// Package render writes pages as HTML or JSON, carries flash notices across redirects
// and maps domain errors to responses.
package render

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// DashboardRoute is where authorization failures are sent.
const DashboardRoute = "/dashboard"

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// Page renders template name with data, or data itself as JSON.
// Pending flashes and the current user are added to data.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = takeFlashes(c)
	if user, err := utilities.ExtractUser(c); err == nil {
		data["current_user"] = user
	}

	if WantsJSON(c) {
		c.JSON(status, data)
		return
	}
	c.HTML(status, name, data)
}

// Redirect sends a 303 to location. Pending flashes travel in the flash cookie;
// JSON clients also get them in the body.
func Redirect(c *gin.Context, location string) {
	RedirectWith(c, location, nil)
}

// RedirectWith is Redirect with extra fields for JSON clients.
func RedirectWith(c *gin.Context, location string, extra gin.H) {
	pending := pendingFlashes(c)
	writeFlashCookie(c, pending)

	if WantsJSON(c) {
		body := gin.H{"redirect": location, "flashes": pending}
		for k, v := range extra {
			body[k] = v
		}
		c.Header("Location", location)
		c.JSON(http.StatusSeeOther, body)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// Forbidden flashes the authorization notice and sends the user to their dashboard.
func Forbidden(c *gin.Context) {
	AddFlash(c, FlashError, utilities.ErrForbidden.Error())
	Redirect(c, DashboardRoute)
	c.Abort()
}

// NotFound renders the not found page.
func NotFound(c *gin.Context) {
	Page(c, http.StatusNotFound, "not_found.html", gin.H{
		"error": utilities.UserMessage(utilities.ErrNotFound),
	})
	c.Abort()
}

// ServerError logs err and renders a generic error page without internal details.
func ServerError(c *gin.Context, err error) {
	slog.Error("request failed",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"error", err,
	)
	Page(c, http.StatusInternalServerError, "error.html", gin.H{
		"error": utilities.UserMessage(err),
	})
	c.Abort()
}

// Error maps err onto not found, forbidden or server error responses.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utilities.ErrNotFound):
		NotFound(c)
	case errors.Is(err, utilities.ErrForbidden):
		Forbidden(c)
	default:
		ServerError(c, err)
	}
}
