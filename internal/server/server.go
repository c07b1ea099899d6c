// Package server assembles the gin router and the http.Server that serves it.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/config"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/storage"
)

// MyServer holds the dependencies shared by every route handler
type MyServer struct {
	Config   *config.Config
	DB       *database.DBinstanceStruct
	Storage  storage.Client
	Sessions *auth.SessionManager
	Logger   *slog.Logger
}

// New connects the database and the resume storage selected by cfg.
// The session blacklist is cleaned up until ctx is cancelled.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MyServer, error) {
	db, err := database.GetMainDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("database failed to initialize: %w", err)
	}
	store, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage failed to initialize: %w", err)
	}

	return &MyServer{
		Config:   cfg,
		DB:       db,
		Storage:  store,
		Sessions: auth.NewSessionManager(cfg, auth.NewInMemoryBlacklistStore(ctx)),
		Logger:   logger,
	}, nil
}

// HTTPServer builds the http.Server listening on the configured port.
func (s *MyServer) HTTPServer() (*http.Server, error) {
	handler, err := s.RegisterRoutes()
	if err != nil {
		return nil, err
	}

	// Declare Server config
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(s.Logger.Handler(), slog.LevelError),
	}, nil
}
