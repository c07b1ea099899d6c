// Package storage keeps uploaded resumes on local disk or in Google Cloud Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sadhna1118/job-portal-website/internal/config"
)

// ErrObjectNotFound is returned when a requested object does not exist.
var ErrObjectNotFound = errors.New("stored file not found")

// Client stores and retrieves objects by name.
type Client interface {
	UploadFile(ctx context.Context, objectName string, fileData io.Reader) error
	DownloadFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// New returns the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.StorageBackend {
	case config.StorageGCS:
		return NewCloudStorageClient(ctx, cfg.GCSBucket)
	case config.StorageLocal, "":
		return NewLocalClient(cfg.UploadDir), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

// RemoveAll deletes every named object. Failures are logged and skipped.
func RemoveAll(ctx context.Context, client Client, names []string) {
	if client == nil {
		return
	}
	for _, name := range names {
		if err := client.DeleteFile(ctx, name); err != nil {
			slog.Warn("failed to delete stored file", "object", name, "error", err)
		}
	}
}
