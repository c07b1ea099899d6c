package middleware

import (
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"

	"github.com/sadhna1118/job-portal-website/internal/render"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

func keyFunc(c *gin.Context) string {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return fmt.Sprintf("user: %d", user.ID)
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", fmt.Sprint(int(time.Until(info.ResetTime).Seconds())+1))
	if render.WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, utilities.ErrorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}
	c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
	c.Abort()
}

// RateLimiterMiddleware allows reqPerSec requests per second per user, or per client IP when anonymous.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}
