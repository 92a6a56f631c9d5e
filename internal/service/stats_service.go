package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

// StatsService aggregates collection counts for the dashboard landing page.
type StatsService struct {
	students studentRepository
	teachers teacherRepository
	notices  noticeRepository
	cache    *CacheService
	logger   *zap.Logger
}

// NewStatsService constructs the stats service.
func NewStatsService(students studentRepository, teachers teacherRepository, notices noticeRepository, cache *CacheService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{students: students, teachers: teachers, notices: notices, cache: cache, logger: logger}
}

// Dashboard returns entity counts, serving from cache when warm.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var cached models.DashboardStats
	if hit, _ := s.cache.Get(ctx, CacheKeyStats, &cached); hit {
		return &cached, nil
	}

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalStudents, err = s.students.Count(ctx, nil); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}
	if stats.ActiveStudents, err = s.students.Count(ctx, bson.M{"status": models.StudentStatusActive}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}
	if stats.TotalTeachers, err = s.teachers.Count(ctx, nil); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}
	if stats.ActiveTeachers, err = s.teachers.Count(ctx, bson.M{"status": models.TeacherStatusActive}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}
	if stats.TotalNotices, err = s.notices.Count(ctx, nil); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}
	if stats.PublishedNotices, err = s.notices.Count(ctx, bson.M{"isPublished": true}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "Failed to fetch stats")
	}

	_ = s.cache.Set(ctx, CacheKeyStats, stats, 0)
	return stats, nil
}
