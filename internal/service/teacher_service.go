package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	ExistsByTeacherID(ctx context.Context, teacherID, excludeID string) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, id string, set bson.M) (*models.Teacher, error)
	Delete(ctx context.Context, id string) (*models.Teacher, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// CreateTeacherRequest holds the payload for creating teachers.
type CreateTeacherRequest struct {
	TeacherID   string       `json:"teacherId"`
	Name        string       `json:"name" validate:"required"`
	Gender      string       `json:"gender" validate:"omitempty,gender"`
	DateOfBirth *models.Date `json:"dateOfBirth"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email" validate:"omitempty,email"`
	Subject     string       `json:"subject"`
	Address     string       `json:"address"`
	JoiningDate *models.Date `json:"joiningDate"`
	Status      string       `json:"status" validate:"omitempty,teacherstatus"`
}

// UpdateTeacherRequest holds a partial payload. TeacherID is immutable
// after creation and deliberately absent here.
type UpdateTeacherRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=1"`
	Gender      *string      `json:"gender" validate:"omitempty,gender"`
	DateOfBirth *models.Date `json:"dateOfBirth"`
	Phone       *string      `json:"phone"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	Subject     *string      `json:"subject"`
	Address     *string      `json:"address"`
	JoiningDate *models.Date `json:"joiningDate"`
	Status      *string      `json:"status" validate:"omitempty,teacherstatus"`
}

// TeacherService handles teacher use-cases.
type TeacherService struct {
	repo      teacherRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo teacherRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerGenderValidation(validate)
	validate.RegisterValidation("teacherstatus", func(fl validator.FieldLevel) bool {
		switch models.TeacherStatus(fl.Field().String()) {
		case models.TeacherStatusActive, models.TeacherStatusInactive:
			return true
		default:
			return false
		}
	})
	return &TeacherService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the full teacher collection, serving from cache when warm.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	var cached []models.Teacher
	if hit, _ := s.cache.Get(ctx, CacheKeyTeachers, &cached); hit {
		return cached, nil
	}
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch teachers")
	}
	_ = s.cache.Set(ctx, CacheKeyTeachers, teachers, 0)
	return teachers, nil
}

// Get returns one teacher by internal document id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch teacher")
	}
	return teacher, nil
}

// Create registers a new teacher document.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacherID := strings.TrimSpace(req.TeacherID)
	if teacherID == "" {
		teacherID = generatedID("TCH")
	}
	exists, err := s.repo.ExistsByTeacherID(ctx, teacherID, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to create data")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "teacherId already used")
	}

	status := models.TeacherStatus(req.Status)
	if status == "" {
		status = models.TeacherStatusActive
	}
	joining := time.Now().UTC()
	if req.JoiningDate != nil {
		joining = req.JoiningDate.Time
	}

	teacher := &models.Teacher{
		TeacherID:   teacherID,
		Name:        req.Name,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: datePtr(req.DateOfBirth),
		Phone:       req.Phone,
		Email:       req.Email,
		Subject:     req.Subject,
		Address:     req.Address,
		JoiningDate: joining,
		Status:      status,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "teacherId already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to create data")
	}
	s.cache.Invalidate(ctx, CacheKeyTeachers, CacheKeyStats)
	return teacher, nil
}

// Update merges the provided fields into an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id string, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	set := bson.M{}
	setString(set, "name", req.Name)
	setString(set, "gender", req.Gender)
	setString(set, "phone", req.Phone)
	setString(set, "email", req.Email)
	setString(set, "subject", req.Subject)
	setString(set, "address", req.Address)
	setString(set, "status", req.Status)
	if req.DateOfBirth != nil {
		set["dateOfBirth"] = req.DateOfBirth.Time
	}
	if req.JoiningDate != nil {
		set["joiningDate"] = req.JoiningDate.Time
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to update data")
	}
	s.cache.Invalidate(ctx, CacheKeyTeachers, CacheKeyStats)
	return updated, nil
}

// Delete removes a teacher and returns the removed document.
func (s *TeacherService) Delete(ctx context.Context, id string) (*models.Teacher, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to delete teacher")
	}
	s.cache.Invalidate(ctx, CacheKeyTeachers, CacheKeyStats)
	return deleted, nil
}
