package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByStudentID(ctx context.Context, studentID, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, set bson.M) (*models.Student, error)
	Delete(ctx context.Context, id string) (*models.Student, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// AcademicEntryRequest is one academicHistory element in a payload.
type AcademicEntryRequest struct {
	Session string `json:"session"`
	Class   string `json:"class"`
	Roll    int    `json:"roll" validate:"gte=0"`
	Result  string `json:"result"`
}

// CreateStudentRequest holds the payload for creating students. StudentID
// may be omitted, in which case the server generates one.
type CreateStudentRequest struct {
	StudentID        string                 `json:"studentId"`
	Name             string                 `json:"name" validate:"required"`
	NameBn           string                 `json:"name_bn"`
	Phone            string                 `json:"phone"`
	Photo            string                 `json:"photo" validate:"omitempty,url"`
	Gender           string                 `json:"gender" validate:"omitempty,gender"`
	DateOfBirth      *models.Date           `json:"dateOfBirth"`
	BirthCertificate string                 `json:"birthCertificate"`
	Guardian         *models.Guardian       `json:"guardian"`
	Status           string                 `json:"status" validate:"omitempty,studentstatus"`
	AcademicHistory  []AcademicEntryRequest `json:"academicHistory" validate:"omitempty,dive"`
}

// UpdateStudentRequest holds a partial payload: only fields present in the
// JSON body are written. An embedded list or object that is present
// replaces the stored value wholesale.
type UpdateStudentRequest struct {
	StudentID        *string                `json:"studentId" validate:"omitempty,min=1"`
	Name             *string                `json:"name" validate:"omitempty,min=1"`
	NameBn           *string                `json:"name_bn"`
	Phone            *string                `json:"phone"`
	Photo            *string                `json:"photo" validate:"omitempty,url"`
	Gender           *string                `json:"gender" validate:"omitempty,gender"`
	DateOfBirth      *models.Date           `json:"dateOfBirth"`
	BirthCertificate *string                `json:"birthCertificate"`
	Guardian         *models.Guardian       `json:"guardian"`
	Status           *string                `json:"status" validate:"omitempty,studentstatus"`
	AcademicHistory  []AcademicEntryRequest `json:"academicHistory" validate:"omitempty,dive"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerGenderValidation(validate)
	validate.RegisterValidation("studentstatus", func(fl validator.FieldLevel) bool {
		switch models.StudentStatus(fl.Field().String()) {
		case models.StudentStatusActive, models.StudentStatusInactive, models.StudentStatusNewAdmission:
			return true
		default:
			return false
		}
	})
	return &StudentService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func registerGenderValidation(validate *validator.Validate) {
	validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		switch models.Gender(fl.Field().String()) {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
			return true
		default:
			return false
		}
	})
}

// List returns the full student collection, serving from cache when warm.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	var cached []models.Student
	if hit, _ := s.cache.Get(ctx, CacheKeyStudents, &cached); hit {
		return cached, nil
	}
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch students")
	}
	_ = s.cache.Set(ctx, CacheKeyStudents, students, 0)
	return students, nil
}

// Get returns one student by internal document id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch student")
	}
	return student, nil
}

// Create registers a new student document.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		studentID = generatedID("STU")
	}
	exists, err := s.repo.ExistsByStudentID(ctx, studentID, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to create data")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "studentId already used")
	}

	status := models.StudentStatus(req.Status)
	if status == "" {
		status = models.StudentStatusActive
	}

	now := time.Now().UTC()
	student := &models.Student{
		StudentID:        studentID,
		Name:             req.Name,
		NameBn:           req.NameBn,
		Phone:            req.Phone,
		Photo:            req.Photo,
		Gender:           models.Gender(req.Gender),
		DateOfBirth:      datePtr(req.DateOfBirth),
		BirthCertificate: req.BirthCertificate,
		Guardian:         req.Guardian,
		Status:           status,
		AcademicHistory:  toAcademicEntries(req.AcademicHistory),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "studentId already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to create data")
	}
	s.cache.Invalidate(ctx, CacheKeyStudents, CacheKeyStats)
	return student, nil
}

// Update merges the provided fields into an existing student.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	if req.StudentID != nil {
		exists, err := s.repo.ExistsByStudentID(ctx, *req.StudentID, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to update data")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "studentId already used")
		}
	}

	set := bson.M{}
	setString(set, "studentId", req.StudentID)
	setString(set, "name", req.Name)
	setString(set, "name_bn", req.NameBn)
	setString(set, "phone", req.Phone)
	setString(set, "photo", req.Photo)
	setString(set, "gender", req.Gender)
	setString(set, "birthCertificate", req.BirthCertificate)
	setString(set, "status", req.Status)
	if req.DateOfBirth != nil {
		set["dateOfBirth"] = req.DateOfBirth.Time
	}
	if req.Guardian != nil {
		set["guardian"] = req.Guardian
	}
	if req.AcademicHistory != nil {
		set["academicHistory"] = toAcademicEntries(req.AcademicHistory)
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}
	set["updatedAt"] = time.Now().UTC()

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "studentId already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to update data")
	}
	s.cache.Invalidate(ctx, CacheKeyStudents, CacheKeyStats)
	return updated, nil
}

// Delete removes a student and returns the removed document.
func (s *StudentService) Delete(ctx context.Context, id string) (*models.Student, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to delete student")
	}
	s.cache.Invalidate(ctx, CacheKeyStudents, CacheKeyStats)
	return deleted, nil
}

func toAcademicEntries(entries []AcademicEntryRequest) []models.AcademicEntry {
	result := make([]models.AcademicEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, models.AcademicEntry{
			Session: e.Session,
			Class:   e.Class,
			Roll:    e.Roll,
			Result:  e.Result,
		})
	}
	return result
}

func setString(set bson.M, key string, value *string) {
	if value != nil {
		set[key] = *value
	}
}

func datePtr(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func generatedID(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
