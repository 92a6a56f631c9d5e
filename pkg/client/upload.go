package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/pkg/config"
)

// Attachment references a file hosted externally: the URL handed back by
// the file host plus the original filename, MIME type and byte size. Only
// these references ever reach the API.
type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// StagedFile is a file waiting to be uploaded when its form is submitted.
type StagedFile struct {
	Name    string
	MIME    string
	Content []byte
}

// Uploader pushes files to the external host using an unauthenticated
// upload preset, the way the dashboard's browser build does.
type Uploader struct {
	endpoint string
	preset   string
	http     *http.Client
	logger   *zap.Logger
}

// NewUploader constructs an Uploader from configuration.
func NewUploader(cfg config.UploadConfig, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{
		endpoint: cfg.URL,
		preset:   cfg.Preset,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

type uploadResponse struct {
	SecureURL        string `json:"secure_url"`
	OriginalFilename string `json:"original_filename"`
	Bytes            int64  `json:"bytes"`
}

// Upload sends one file and returns its hosted reference.
func (u *Uploader) Upload(ctx context.Context, file StagedFile) (*Attachment, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if u.preset != "" {
		if err := writer.WriteField("upload_preset", u.preset); err != nil {
			return nil, fmt.Errorf("write preset field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", file.Name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload response for %s: %w", file.Name, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("upload %s: host returned status %d", file.Name, resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode upload response for %s: %w", file.Name, err)
	}

	size := parsed.Bytes
	if size == 0 {
		size = int64(len(file.Content))
	}
	return &Attachment{
		URL:  parsed.SecureURL,
		Name: file.Name,
		Type: file.MIME,
		Size: size,
	}, nil
}

// UploadAll uploads every staged file in order. All uploads must succeed
// before the owning entity payload may reference them; the first failure
// aborts with the offending file named.
func (u *Uploader) UploadAll(ctx context.Context, files []StagedFile) ([]Attachment, error) {
	attachments := make([]Attachment, 0, len(files))
	for _, file := range files {
		att, err := u.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, *att)
	}
	return attachments, nil
}
