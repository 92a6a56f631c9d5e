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

type mockStudentRepo struct {
	items   map[string]*models.Student
	listErr error
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Student{}
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockStudentRepo) ExistsByStudentID(ctx context.Context, studentID, excludeID string) (bool, error) {
	for id, s := range m.items {
		if s.StudentID == studentID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.items == nil {
		m.items = make(map[string]*models.Student)
	}
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	cp := *student
	m.items[student.ID.Hex()] = &cp
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, id string, set bson.M) (*models.Student, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "studentId":
			s.StudentID = value.(string)
		case "name":
			s.Name = value.(string)
		case "name_bn":
			s.NameBn = value.(string)
		case "phone":
			s.Phone = value.(string)
		case "photo":
			s.Photo = value.(string)
		case "gender":
			s.Gender = models.Gender(value.(string))
		case "birthCertificate":
			s.BirthCertificate = value.(string)
		case "status":
			s.Status = models.StudentStatus(value.(string))
		case "dateOfBirth":
			dob := value.(time.Time)
			s.DateOfBirth = &dob
		case "guardian":
			s.Guardian = value.(*models.Guardian)
		case "academicHistory":
			s.AcademicHistory = value.([]models.AcademicEntry)
		case "updatedAt":
			s.UpdatedAt = value.(time.Time)
		}
	}
	cp := *s
	return &cp, nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) (*models.Student, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return s, nil
}

func (m *mockStudentRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	n := int64(0)
	for _, s := range m.items {
		if status, ok := filter["status"]; ok && s.Status != status.(models.StudentStatus) {
			continue
		}
		n++
	}
	return n, nil
}

func newStudentTestService(repo *mockStudentRepo) *StudentService {
	cache := NewCacheService(nil, nil, 0, nil, false)
	return NewStudentService(repo, cache, validator.New(), zap.NewNop())
}

func TestStudentServiceCreateDefaults(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	student, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Arif Hossain"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(student.StudentID, "STU-"))
	assert.Equal(t, models.StudentStatusActive, student.Status)
	assert.False(t, student.CreatedAt.IsZero())
	assert.Equal(t, student.CreatedAt, student.UpdatedAt)
	assert.Len(t, repo.items, 1)
}

func TestStudentServiceCreateRequiresName(t *testing.T) {
	svc := newStudentTestService(&mockStudentRepo{})

	_, err := svc.Create(context.Background(), CreateStudentRequest{Phone: "+880171"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestStudentServiceCreateDuplicateID(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "One", StudentID: "STU-1"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateStudentRequest{Name: "Two", StudentID: "STU-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Contains(t, err.Error(), "studentId already used")
}

func TestStudentServiceUpdatePartialMerge(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	created, err := svc.Create(context.Background(), CreateStudentRequest{
		Name:   "Arif Hossain",
		Phone:  "+8801711000001",
		Status: string(models.StudentStatusNewAdmission),
	})
	require.NoError(t, err)

	name := "Arif H."
	updated, err := svc.Update(context.Background(), created.ID.Hex(), UpdateStudentRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Arif H.", updated.Name)
	assert.Equal(t, "+8801711000001", updated.Phone)
	assert.Equal(t, models.StudentStatusNewAdmission, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestStudentServiceUpdateReplacesAcademicHistory(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	created, err := svc.Create(context.Background(), CreateStudentRequest{
		Name: "Arif Hossain",
		AcademicHistory: []AcademicEntryRequest{
			{Session: "2023", Class: "Four", Roll: 9},
			{Session: "2024", Class: "Five", Roll: 7},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), UpdateStudentRequest{
		AcademicHistory: []AcademicEntryRequest{
			{Session: "2025", Class: "Six", Roll: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.AcademicHistory, 1)
	assert.Equal(t, "2025", updated.AcademicHistory[0].Session)
}

func TestStudentServiceUpdateEmptyPayloadReturnsDocument(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	created, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Arif Hossain"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), UpdateStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestStudentServiceUpdateDuplicateID(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "One", StudentID: "STU-1"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Two", StudentID: "STU-2"})
	require.NoError(t, err)

	taken := "STU-1"
	_, err = svc.Update(context.Background(), second.ID.Hex(), UpdateStudentRequest{StudentID: &taken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	svc := newStudentTestService(&mockStudentRepo{})

	name := "Nobody"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateStudentRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Contains(t, err.Error(), "Student not found")
}

func TestStudentServiceDeleteNotFound(t *testing.T) {
	svc := newStudentTestService(&mockStudentRepo{})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceDeleteReturnsDocument(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentTestService(repo)

	created, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Arif Hossain"})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, repo.items)
}

func TestStudentServiceListStoreFailure(t *testing.T) {
	svc := newStudentTestService(&mockStudentRepo{listErr: errors.New("connection reset")})

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrStoreUnavailable))
}
