package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// ResumePrefix is the object prefix of uploaded resumes
const ResumePrefix = "resumes"

const maxNameLength = 80

// AllowedResumeExtensions are the accepted resume file types
var AllowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces name to a safe base name of letters, digits, dot, dash and underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(name))
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	stem = strings.Trim(unsafeChars.ReplaceAllString(stem, "_"), "._")
	if stem == "" {
		stem = "resume"
	}
	if len(stem) > maxNameLength {
		stem = stem[:maxNameLength]
	}
	return stem + unsafeChars.ReplaceAllString(ext, "")
}

// ResumeObjectName builds a collision-resistant name from the applicant id, upload time and original name.
func ResumeObjectName(userID uint, now time.Time, original string) string {
	return fmt.Sprintf("%s/%d_%d_%s_%s", ResumePrefix, userID, now.Unix(), uuid.NewString()[:8], SanitizeFilename(original))
}

// ValidateResume checks the extension of filename and, for PDFs, that content parses as a PDF.
func ValidateResume(filename string, content []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedResumeExtensions[ext] {
		return utilities.ValidationErrors{utilities.MsgResumeType}
	}
	if ext == ".pdf" {
		if pages, err := countPDFPages(content); err != nil || pages == 0 {
			return utilities.ValidationErrors{utilities.MsgResumeUnreadable}
		}
	}
	return nil
}

func countPDFPages(content []byte) (pages int, err error) {
	// the pdf reader panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("malformed PDF: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("open PDF: %w", err)
	}
	return reader.NumPage(), nil
}

// SaveResume validates the uploaded file and stores it, returning its object name.
func SaveResume(ctx context.Context, client Client, userID uint, fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh.Size > maxBytes {
		return "", utilities.ValidationErrors{utilities.MsgResumeTooLarge}
	}
	if !AllowedResumeExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		return "", utilities.ValidationErrors{utilities.MsgResumeType}
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return "", utilities.ValidationErrors{utilities.MsgResumeTooLarge}
	}
	if err := ValidateResume(fh.Filename, content); err != nil {
		return "", err
	}

	objectName := ResumeObjectName(userID, time.Now(), fh.Filename)
	if err := client.UploadFile(ctx, objectName, bytes.NewReader(content)); err != nil {
		return "", err
	}
	return objectName, nil
}
