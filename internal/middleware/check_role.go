package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// CheckRole will protect endpoint from user that is not one of roles.
// Such users are sent to their dashboard with an "Unauthorized access" notice.
func CheckRole(roles ...model.Role) gin.HandlerFunc {
	return RequireRole(utilities.ErrForbidden.Error(), roles...)
}

// RequireRole is CheckRole with a custom notice.
func RequireRole(notice string, roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			render.Redirect(ctx, LoginRoute)
			ctx.Abort()
			return
		}

		if !auth.HasRole(user, roles...) {
			render.AddFlash(ctx, render.FlashError, notice)
			render.Redirect(ctx, render.DashboardRoute)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
