package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	"github.com/edudesk/edudesk-api/internal/service"
	"github.com/edudesk/edudesk-api/pkg/config"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

// Client is a typed HTTP client for the dashboard API. The base URL comes
// from API_URL so the API and its consumers can live on different origins.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New constructs a Client from configuration.
func New(cfg config.ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// confirmation mirrors the API's mutation response body.
type confirmation struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "read response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode response")
		}
	}
	return nil
}

func (c *Client) errorFromResponse(status int, raw []byte) error {
	var body confirmation
	message := ""
	if err := json.Unmarshal(raw, &body); err == nil {
		message = body.Message
	}

	switch status {
	case http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case http.StatusBadRequest:
		return appErrors.Clone(appErrors.ErrValidation, message)
	case http.StatusConflict:
		return appErrors.Clone(appErrors.ErrConflict, message)
	default:
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", status)
		}
		return appErrors.New(appErrors.ErrInternal.Code, status, message)
	}
}

func (c *Client) create(ctx context.Context, path string, payload, out interface{}) error {
	var conf confirmation
	if err := c.do(ctx, http.MethodPost, path, payload, &conf); err != nil {
		return err
	}
	if out != nil && len(conf.Data) > 0 {
		if err := json.Unmarshal(conf.Data, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode created document")
		}
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	var conf confirmation
	if err := c.do(ctx, http.MethodDelete, path, nil, &conf); err != nil {
		return err
	}
	if out != nil && len(conf.Data) > 0 {
		if err := json.Unmarshal(conf.Data, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode deleted document")
		}
	}
	return nil
}

func queryPath(path, id string) string {
	return path + "?id=" + url.QueryEscape(id)
}

// ListStudents fetches the full student collection.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, "/api/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent fetches one student by document id.
func (c *Client) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, "/api/students/"+id, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent creates a student and returns the created document.
func (c *Client) CreateStudent(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.create(ctx, "/api/students", req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent merges the provided fields into a student.
func (c *Client) UpdateStudent(ctx context.Context, id string, req service.UpdateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPatch, "/api/students/"+id, req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student and returns the removed document.
func (c *Client) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := c.delete(ctx, "/api/students/"+id, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudentByQuery removes a student using the ?id= query form the
// server also accepts.
func (c *Client) DeleteStudentByQuery(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := c.delete(ctx, queryPath("/api/students", id), &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ListTeachers fetches the full teacher collection.
func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/api/teachers", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetTeacher fetches one teacher by document id.
func (c *Client) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, http.MethodGet, "/api/teachers/"+id, nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// CreateTeacher creates a teacher and returns the created document.
func (c *Client) CreateTeacher(ctx context.Context, req service.CreateTeacherRequest) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.create(ctx, "/api/teachers", req, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// UpdateTeacher merges the provided fields into a teacher.
func (c *Client) UpdateTeacher(ctx context.Context, id string, req service.UpdateTeacherRequest) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, http.MethodPatch, "/api/teachers/"+id, req, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// DeleteTeacher removes a teacher and returns the removed document.
func (c *Client) DeleteTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.delete(ctx, "/api/teachers/"+id, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// DeleteTeacherByQuery removes a teacher using the ?id= query form the
// server also accepts.
func (c *Client) DeleteTeacherByQuery(ctx context.Context, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.delete(ctx, queryPath("/api/teachers", id), &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListNotices fetches the full notice collection.
func (c *Client) ListNotices(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice
	if err := c.do(ctx, http.MethodGet, "/api/notices", nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// GetNotice fetches one notice by document id.
func (c *Client) GetNotice(ctx context.Context, id string) (*models.Notice, error) {
	var notice models.Notice
	if err := c.do(ctx, http.MethodGet, "/api/notices/"+id, nil, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// CreateNotice creates a notice and returns the created document.
func (c *Client) CreateNotice(ctx context.Context, req service.CreateNoticeRequest) (*models.Notice, error) {
	var notice models.Notice
	if err := c.create(ctx, "/api/notices", req, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// UpdateNotice merges the provided fields into a notice.
func (c *Client) UpdateNotice(ctx context.Context, id string, req service.UpdateNoticeRequest) (*models.Notice, error) {
	var notice models.Notice
	if err := c.do(ctx, http.MethodPatch, "/api/notices/"+id, req, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// DeleteNotice removes a notice and returns the removed document.
func (c *Client) DeleteNotice(ctx context.Context, id string) (*models.Notice, error) {
	var notice models.Notice
	if err := c.delete(ctx, "/api/notices/"+id, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// DeleteNoticeByQuery removes a notice using the ?id= query form the
// server also accepts.
func (c *Client) DeleteNoticeByQuery(ctx context.Context, id string) (*models.Notice, error) {
	var notice models.Notice
	if err := c.delete(ctx, queryPath("/api/notices", id), &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}
