package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edudesk/edudesk-api/internal/models"
	"github.com/edudesk/edudesk-api/internal/service"
	corsmiddleware "github.com/edudesk/edudesk-api/pkg/middleware/cors"
)

type memStudentRepo struct {
	items map[string]*models.Student
}

func (m *memStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	out := []models.Student{}
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memStudentRepo) ExistsByStudentID(ctx context.Context, studentID, excludeID string) (bool, error) {
	for id, s := range m.items {
		if s.StudentID == studentID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStudentRepo) Create(ctx context.Context, student *models.Student) error {
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

func (m *memStudentRepo) Update(ctx context.Context, id string, set bson.M) (*models.Student, error) {
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
		case "phone":
			s.Phone = value.(string)
		case "status":
			s.Status = models.StudentStatus(value.(string))
		case "updatedAt":
			s.UpdatedAt = value.(time.Time)
		}
	}
	cp := *s
	return &cp, nil
}

func (m *memStudentRepo) Delete(ctx context.Context, id string) (*models.Student, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return s, nil
}

func (m *memStudentRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(m.items)), nil
}

type memTeacherRepo struct {
	items map[string]*models.Teacher
}

func (m *memTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	out := []models.Teacher{}
	for _, t := range m.items {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTeacherRepo) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if t, ok := m.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memTeacherRepo) ExistsByTeacherID(ctx context.Context, teacherID, excludeID string) (bool, error) {
	for id, t := range m.items {
		if t.TeacherID == teacherID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
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

func (m *memTeacherRepo) Update(ctx context.Context, id string, set bson.M) (*models.Teacher, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			t.Name = value.(string)
		case "subject":
			t.Subject = value.(string)
		case "status":
			t.Status = models.TeacherStatus(value.(string))
		}
	}
	cp := *t
	return &cp, nil
}

func (m *memTeacherRepo) Delete(ctx context.Context, id string) (*models.Teacher, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return t, nil
}

func (m *memTeacherRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(m.items)), nil
}

type memNoticeRepo struct {
	items map[string]*models.Notice
}

func (m *memNoticeRepo) List(ctx context.Context) ([]models.Notice, error) {
	out := []models.Notice{}
	for _, n := range m.items {
		out = append(out, *n)
	}
	return out, nil
}

func (m *memNoticeRepo) FindByID(ctx context.Context, id string) (*models.Notice, error) {
	if n, ok := m.items[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memNoticeRepo) Create(ctx context.Context, notice *models.Notice) error {
	if m.items == nil {
		m.items = make(map[string]*models.Notice)
	}
	if notice.ID.IsZero() {
		notice.ID = primitive.NewObjectID()
	}
	cp := *notice
	m.items[notice.ID.Hex()] = &cp
	return nil
}

func (m *memNoticeRepo) Update(ctx context.Context, id string, set bson.M) (*models.Notice, error) {
	n, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			n.Title = value.(string)
		case "description":
			n.Description = value.(string)
		case "isPublished":
			n.IsPublished = value.(bool)
		case "targetClass":
			n.TargetClass = value.([]string)
		}
	}
	cp := *n
	return &cp, nil
}

func (m *memNoticeRepo) Delete(ctx context.Context, id string) (*models.Notice, error) {
	n, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return n, nil
}

func (m *memNoticeRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(m.items)), nil
}

type testAPI struct {
	router   *gin.Engine
	students *memStudentRepo
	teachers *memTeacherRepo
	notices  *memNoticeRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	students := &memStudentRepo{}
	teachers := &memTeacherRepo{}
	notices := &memNoticeRepo{}

	cache := service.NewCacheService(nil, nil, 0, nil, false)
	studentSvc := service.NewStudentService(students, cache, nil, nil)
	teacherSvc := service.NewTeacherService(teachers, cache, nil, nil)
	noticeSvc := service.NewNoticeService(notices, cache, nil, nil)
	statsSvc := service.NewStatsService(students, teachers, notices, cache, nil)
	exportSvc := service.NewExportService(studentSvc, nil)

	studentHandler := NewStudentHandler(studentSvc, exportSvc)
	teacherHandler := NewTeacherHandler(teacherSvc)
	noticeHandler := NewNoticeHandler(noticeSvc)
	statsHandler := NewStatsHandler(statsSvc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/students", studentHandler.List)
	api.POST("/students", studentHandler.Create)
	api.DELETE("/students", studentHandler.Delete)
	api.GET("/students/export", studentHandler.Export)
	api.GET("/students/:id", studentHandler.Get)
	api.PATCH("/students/:id", studentHandler.Update)
	api.DELETE("/students/:id", studentHandler.Delete)
	api.GET("/teachers", teacherHandler.List)
	api.POST("/teachers", teacherHandler.Create)
	api.DELETE("/teachers", teacherHandler.Delete)
	api.GET("/teachers/:id", teacherHandler.Get)
	api.PATCH("/teachers/:id", teacherHandler.Update)
	api.DELETE("/teachers/:id", teacherHandler.Delete)
	api.GET("/notices", corsmiddleware.PermitAll(), noticeHandler.List)
	api.POST("/notices", noticeHandler.Create)
	api.DELETE("/notices", noticeHandler.Delete)
	api.GET("/notices/:id", corsmiddleware.PermitAll(), noticeHandler.Get)
	api.PATCH("/notices/:id", noticeHandler.Update)
	api.DELETE("/notices/:id", noticeHandler.Delete)
	api.GET("/dashboard/stats", statsHandler.Dashboard)

	return &testAPI{router: r, students: students, teachers: teachers, notices: notices}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}
