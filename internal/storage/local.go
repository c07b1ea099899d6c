package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalClient stores objects as files under Root. Directories are created on first use.
type LocalClient struct {
	Root string
}

// NewLocalClient creates a LocalClient rooted at root.
func NewLocalClient(root string) *LocalClient {
	return &LocalClient{Root: root}
}

func (l *LocalClient) path(objectName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectName))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}
	return filepath.Join(l.Root, clean), nil
}

// UploadFile writes fileData to objectName, replacing an existing file.
func (l *LocalClient) UploadFile(_ context.Context, objectName string, fileData io.Reader) error {
	p, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(tmp, fileData); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write data to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close file: %w", err)
	}
	return os.Rename(tmp.Name(), p)
}

// DownloadFile opens objectName for reading.
func (l *LocalClient) DownloadFile(_ context.Context, objectName string) (io.ReadCloser, int64, error) {
	p, err := l.path(objectName)
	if err != nil {
		return nil, 0, err
	}
	// #nosec G304 -- p is confined to Root by path()
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, ErrObjectNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// DeleteFile removes objectName. Deleting a missing object is not an error.
func (l *LocalClient) DeleteFile(_ context.Context, objectName string) error {
	p, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
