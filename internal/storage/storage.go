package storage

import (
	"context"
	"errors"
	"io"
)

// UploadInput describes one file to push to object storage.
type UploadInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// Uploader pushes a file to external object storage and returns the URL the
// backend should store (materialUrl / filePath / taskUrl). Implementations:
// the multipart media endpoint and S3.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}

// Error definitions for the upload phase. Slice operations distinguish these
// from backend request errors: a failed upload short-circuits before any
// backend call is made.
var (
	ErrNoUploadURL  = errors.New("upload did not yield a file URL")
	ErrUploadFailed = errors.New("file upload failed")
)
