package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edudesk/edudesk-api/api/swagger"
	"github.com/edudesk/edudesk-api/internal/handler"
	"github.com/edudesk/edudesk-api/internal/middleware"
	"github.com/edudesk/edudesk-api/internal/repository"
	"github.com/edudesk/edudesk-api/internal/service"
	"github.com/edudesk/edudesk-api/pkg/cache"
	"github.com/edudesk/edudesk-api/pkg/config"
	"github.com/edudesk/edudesk-api/pkg/database"
	"github.com/edudesk/edudesk-api/pkg/logger"
	corsmiddleware "github.com/edudesk/edudesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edudesk/edudesk-api/pkg/middleware/requestid"
)

// @title EduDesk API
// @version 1.0.0
// @description School administration backend: students, teachers and notices.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.SharedDatabase(ctx, cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to document store", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db, metricsSvc.ObserveStoreOperation)
	teacherRepo := repository.NewTeacherRepository(db, metricsSvc.ObserveStoreOperation)
	noticeRepo := repository.NewNoticeRepository(db, metricsSvc.ObserveStoreOperation)

	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		logr.Sugar().Fatalw("failed to create student indexes", "error", err)
	}
	if err := teacherRepo.EnsureIndexes(ctx); err != nil {
		logr.Sugar().Fatalw("failed to create teacher indexes", "error", err)
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	validate := validator.New()
	studentSvc := service.NewStudentService(studentRepo, cacheSvc, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, cacheSvc, validate, logr)
	noticeSvc := service.NewNoticeService(noticeRepo, cacheSvc, validate, logr)
	statsSvc := service.NewStatsService(studentRepo, teacherRepo, noticeRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(studentSvc, logr)

	studentHandler := handler.NewStudentHandler(studentSvc, exportSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	api := r.Group("/api")
	{
		students := api.Group("/students")
		{
			students.GET("", studentHandler.List)
			students.POST("", studentHandler.Create)
			students.DELETE("", studentHandler.Delete)
			students.GET("/export", studentHandler.Export)
			students.GET("/:id", studentHandler.Get)
			students.PATCH("/:id", studentHandler.Update)
			students.DELETE("/:id", studentHandler.Delete)
		}

		teachers := api.Group("/teachers")
		{
			teachers.GET("", teacherHandler.List)
			teachers.POST("", teacherHandler.Create)
			teachers.DELETE("", teacherHandler.Delete)
			teachers.GET("/:id", teacherHandler.Get)
			teachers.PATCH("/:id", teacherHandler.Update)
			teachers.DELETE("/:id", teacherHandler.Delete)
		}

		notices := api.Group("/notices")
		{
			// The notice feed is embeddable on public pages.
			notices.GET("", corsmiddleware.PermitAll(), noticeHandler.List)
			notices.POST("", noticeHandler.Create)
			notices.DELETE("", noticeHandler.Delete)
			notices.GET("/:id", corsmiddleware.PermitAll(), noticeHandler.Get)
			notices.PATCH("/:id", noticeHandler.Update)
			notices.DELETE("/:id", noticeHandler.Delete)
		}

		api.GET("/dashboard/stats", statsHandler.Dashboard)
	}

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
