package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "github.com/sadhna1118/job-portal-website/docs"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/controller/admin"
	"github.com/sadhna1118/job-portal-website/internal/controller/application"
	"github.com/sadhna1118/job-portal-website/internal/controller/file"
	"github.com/sadhna1118/job-portal-website/internal/controller/home"
	"github.com/sadhna1118/job-portal-website/internal/controller/jobpost"
	"github.com/sadhna1118/job-portal-website/internal/controller/savedjob"
	"github.com/sadhna1118/job-portal-website/internal/metrics"
	"github.com/sadhna1118/job-portal-website/internal/middleware"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/render"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() (http.Handler, error) {
	templates, err := render.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.Use(gin.Recovery(), middleware.RequestLogger(s.Logger), middleware.SafeHeader())

	if origins := s.Config.AllowOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true, // Enable cookies/auth
		}))
	}

	lAuth := auth.NewLocalAuthHandler(s.DB, s.Sessions)
	homeCtrl := home.NewHomeController(s.DB)
	jobCtrl := jobpost.NewJobPostController(s.DB, s.Storage)
	appCtrl := application.NewApplicationController(s.DB, s.Storage, s.Config.MaxUploadBytes)
	savedCtrl := savedjob.NewSavedJobController(s.DB)
	fileCtrl := file.NewFileController(s.DB, s.Storage)
	adminCtrl := admin.NewAdminController(s.DB, s.Storage)

	uow := middleware.UnitOfWork(s.DB)
	limiter := middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond)

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	site := r.Group("", middleware.OptionalAuth(s.DB, s.Sessions))
	{
		site.GET("/", homeCtrl.Index)
		site.GET("/jobs", jobCtrl.GetPosts)
		site.GET("/job/:id", jobCtrl.GetPostByID)

		site.GET("/login", lAuth.LoginPage)
		site.POST("/login", limiter, lAuth.Login)
		site.GET("/register", lAuth.RegisterPage)
		site.POST("/register", limiter, uow, lAuth.Register)
	}

	// Any logged in user
	needAuth := r.Group("", middleware.RequireAuth(s.DB, s.Sessions))
	{
		needAuth.GET("/logout", lAuth.Logout)
		needAuth.GET("/dashboard", homeCtrl.Dashboard)
		needAuth.POST("/job/:id/save", uow, savedCtrl.ToggleSave)
		needAuth.GET("/application/:id/resume", fileCtrl.GetResume)
	}

	seeker := needAuth.Group("", middleware.CheckRole(model.RoleJobSeeker))
	{
		seeker.GET("/job-seeker/dashboard", homeCtrl.SeekerDashboard)
		seeker.GET("/job/:id/apply", appCtrl.ApplyPage)
		seeker.POST("/job/:id/apply", middleware.SizeLimit(s.Config.MaxUploadBytes), uow, appCtrl.ApplicationHandler)
		seeker.GET("/my-applications", appCtrl.MyApplications)
		seeker.GET("/saved-jobs", savedCtrl.ListSaved)
	}

	recruiter := needAuth.Group("/recruiter", middleware.CheckRole(model.RoleRecruiter))
	{
		recruiter.GET("/dashboard", homeCtrl.RecruiterDashboard)
		recruiter.GET("/job/new", jobCtrl.NewPostPage)
		recruiter.POST("/job/new", uow, jobCtrl.CreateJobPostHandler)
		recruiter.GET("/job/:id/edit", jobCtrl.EditPostPage)
		recruiter.POST("/job/:id/edit", uow, jobCtrl.EditJobPost)
		recruiter.POST("/job/:id/delete", uow, jobCtrl.DeleteJobPost)
		recruiter.GET("/job/:id/applications", appCtrl.ViewApplications)
		recruiter.POST("/application/:id/update", uow, appCtrl.UpdateStatus)
	}

	needAdmin := needAuth.Group("/admin", middleware.CheckRole(model.RoleAdmin))
	{
		needAdmin.GET("/dashboard", adminCtrl.Dashboard)
		needAdmin.GET("/users", adminCtrl.Users)
		needAdmin.GET("/jobs", adminCtrl.Jobs)
		needAdmin.POST("/users/:id/delete", uow, adminCtrl.DeleteUser)
		needAdmin.POST("/jobs/:id/delete", uow, adminCtrl.DeleteJob)
	}

	r.NoRoute(middleware.OptionalAuth(s.DB, s.Sessions), render.NotFound)

	return r, nil
}

// healthHandler reports database statistics
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string "Database is down"
// @Router /health [get]
func (s *MyServer) healthHandler(c *gin.Context) {
	health := s.DB.Health()
	if health["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
