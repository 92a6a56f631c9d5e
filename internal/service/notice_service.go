package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

type noticeRepository interface {
	List(ctx context.Context) ([]models.Notice, error)
	FindByID(ctx context.Context, id string) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, id string, set bson.M) (*models.Notice, error)
	Delete(ctx context.Context, id string) (*models.Notice, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// NoticeDocumentRequest is one attachment reference in a payload. The URL
// comes from the external file host; the API never receives file bytes.
type NoticeDocumentRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Size int64  `json:"size" validate:"gte=0"`
}

// CreateNoticeRequest holds the payload for creating notices. Field
// presence requirements live in the dashboard UI; the API only checks
// structure.
type CreateNoticeRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Date        *models.Date            `json:"date"`
	Author      string                  `json:"author"`
	IsPublished *bool                   `json:"isPublished"`
	TargetClass []string                `json:"targetClass"`
	Documents   []NoticeDocumentRequest `json:"documents" validate:"omitempty,dive"`
}

// UpdateNoticeRequest holds a partial payload; lists present in the body
// replace the stored lists wholesale.
type UpdateNoticeRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Date        *models.Date            `json:"date"`
	Author      *string                 `json:"author"`
	IsPublished *bool                   `json:"isPublished"`
	TargetClass []string                `json:"targetClass"`
	Documents   []NoticeDocumentRequest `json:"documents" validate:"omitempty,dive"`
}

// NoticeService handles notice use-cases.
type NoticeService struct {
	repo      noticeRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the notice service.
func NewNoticeService(repo noticeRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the full notice collection, serving from cache when warm.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	var cached []models.Notice
	if hit, _ := s.cache.Get(ctx, CacheKeyNotices, &cached); hit {
		return cached, nil
	}
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch notices")
	}
	_ = s.cache.Set(ctx, CacheKeyNotices, notices, 0)
	return notices, nil
}

// Get returns one notice by internal document id.
func (s *NoticeService) Get(ctx context.Context, id string) (*models.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "data not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch notice")
	}
	return notice, nil
}

// Create registers a new notice, published by default and dated now when
// the caller omits a date.
func (s *NoticeService) Create(ctx context.Context, req CreateNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.Time
	}
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}
	targetClass := req.TargetClass
	if targetClass == nil {
		targetClass = []string{}
	}

	notice := &models.Notice{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Author:      req.Author,
		IsPublished: published,
		TargetClass: targetClass,
		Documents:   toNoticeDocuments(req.Documents),
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to create data")
	}
	s.cache.Invalidate(ctx, CacheKeyNotices, CacheKeyStats)
	return notice, nil
}

// Update merges the provided fields into an existing notice.
func (s *NoticeService) Update(ctx context.Context, id string, req UpdateNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	set := bson.M{}
	setString(set, "title", req.Title)
	setString(set, "description", req.Description)
	setString(set, "author", req.Author)
	if req.Date != nil {
		set["date"] = req.Date.Time
	}
	if req.IsPublished != nil {
		set["isPublished"] = *req.IsPublished
	}
	if req.TargetClass != nil {
		set["targetClass"] = req.TargetClass
	}
	if req.Documents != nil {
		set["documents"] = toNoticeDocuments(req.Documents)
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "data not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to update data")
	}
	s.cache.Invalidate(ctx, CacheKeyNotices, CacheKeyStats)
	return updated, nil
}

// Delete removes a notice and returns the removed document.
func (s *NoticeService) Delete(ctx context.Context, id string) (*models.Notice, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "data not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to delete data")
	}
	s.cache.Invalidate(ctx, CacheKeyNotices, CacheKeyStats)
	return deleted, nil
}

func toNoticeDocuments(docs []NoticeDocumentRequest) []models.NoticeDocument {
	result := make([]models.NoticeDocument, 0, len(docs))
	for _, d := range docs {
		result = append(result, models.NoticeDocument{
			URL:  d.URL,
			Name: d.Name,
			Type: d.Type,
			Size: d.Size,
		})
	}
	return result
}
