package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/render"
)

// UnitOfWork opens one transaction per request. Handlers commit it through
// database.GetUnitOfWork; anything left uncommitted, including after a panic, is rolled back.
func UnitOfWork(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uow, err := db.NewUnitOfWork(ctx.Request.Context())
		if err != nil {
			render.ServerError(ctx, err)
			return
		}
		defer func() {
			if err := uow.Rollback(); err != nil {
				slog.Error("failed to roll back request", "route", ctx.FullPath(), "error", err)
			}
		}()

		database.SetUnitOfWork(ctx, uow)
		ctx.Next()
	}
}
