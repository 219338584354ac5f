package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

// mediaUploader implements Uploader against a Cloudinary-style unsigned
// upload endpoint: multipart form with a "file" part and an "upload_preset"
// field, JSON response carrying the stored file's secure URL.
type mediaUploader struct {
	endpoint string
	preset   string
	http     *http.Client
}

// NewMediaUploader creates an uploader for the given media endpoint and
// unsigned preset identifier.
func NewMediaUploader(endpoint, preset string) Uploader {
	return &mediaUploader{
		endpoint: endpoint,
		preset:   preset,
		http:     &http.Client{Timeout: 2 * time.Minute},
	}
}

func (m *mediaUploader) Upload(ctx context.Context, in UploadInput) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", in.FileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, in.Body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := form.WriteField("upload_preset", m.preset); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("ERROR: Media upload for '%s' returned status %d", in.FileName, resp.StatusCode)
		return "", fmt.Errorf("%w: endpoint returned status %d", ErrUploadFailed, resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if result.SecureURL == "" {
		return "", ErrNoUploadURL
	}
	return result.SecureURL, nil
}
