package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

type mockTeacherRepo struct {
	items map[string]*models.Teacher
}

func (m *mockTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	out := []models.Teacher{}
	for _, t := range m.items {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if t, ok := m.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockTeacherRepo) ExistsByTeacherID(ctx context.Context, teacherID, excludeID string) (bool, error) {
	for id, t := range m.items {
		if t.TeacherID == teacherID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if m.items == nil {
		m.items = make(map[string]*models.Teacher)
	}
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
	}
	cp := *teacher
	m.items[teacher.ID.Hex()] = &cp
	return nil
}

func (m *mockTeacherRepo) Update(ctx context.Context, id string, set bson.M) (*models.Teacher, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			t.Name = value.(string)
		case "gender":
			t.Gender = models.Gender(value.(string))
		case "phone":
			t.Phone = value.(string)
		case "email":
			t.Email = value.(string)
		case "subject":
			t.Subject = value.(string)
		case "address":
			t.Address = value.(string)
		case "status":
			t.Status = models.TeacherStatus(value.(string))
		case "dateOfBirth":
			dob := value.(time.Time)
			t.DateOfBirth = &dob
		case "joiningDate":
			t.JoiningDate = value.(time.Time)
		}
	}
	cp := *t
	return &cp, nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id string) (*models.Teacher, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return t, nil
}

func (m *mockTeacherRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	n := int64(0)
	for _, t := range m.items {
		if status, ok := filter["status"]; ok && t.Status != status.(models.TeacherStatus) {
			continue
		}
		n++
	}
	return n, nil
}

func newTeacherTestService(repo *mockTeacherRepo) *TeacherService {
	cache := NewCacheService(nil, nil, 0, nil, false)
	return NewTeacherService(repo, cache, validator.New(), zap.NewNop())
}

func TestTeacherServiceCreateDefaults(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := newTeacherTestService(repo)

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "Rahima Khatun"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(teacher.TeacherID, "TCH-"))
	assert.Equal(t, models.TeacherStatusActive, teacher.Status)
	assert.False(t, teacher.JoiningDate.IsZero())
	assert.Len(t, repo.items, 1)
}

func TestTeacherServiceCreateInvalidEmail(t *testing.T) {
	svc := newTeacherTestService(&mockTeacherRepo{})

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "Rahima", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestTeacherServiceCreateDuplicateID(t *testing.T) {
	svc := newTeacherTestService(&mockTeacherRepo{})

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "One", TeacherID: "TCH-1"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateTeacherRequest{Name: "Two", TeacherID: "TCH-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Contains(t, err.Error(), "teacherId already used")
}

func TestTeacherServiceUpdateStatus(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := newTeacherTestService(repo)

	created, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:    "Jamal Uddin",
		Subject: "English",
	})
	require.NoError(t, err)

	status := string(models.TeacherStatusInactive)
	updated, err := svc.Update(context.Background(), created.ID.Hex(), UpdateTeacherRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TeacherStatusInactive, updated.Status)
	assert.Equal(t, "English", updated.Subject)
	assert.Equal(t, created.TeacherID, updated.TeacherID)
}

func TestTeacherServiceUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTeacherTestService(&mockTeacherRepo{})

	status := "retired"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateTeacherRequest{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestTeacherServiceDeleteNotFound(t *testing.T) {
	svc := newTeacherTestService(&mockTeacherRepo{})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Contains(t, err.Error(), "Teacher not found")
}
