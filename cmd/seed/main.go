package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/edudesk/edudesk-api/internal/models"
	"github.com/edudesk/edudesk-api/internal/service"
	"github.com/edudesk/edudesk-api/pkg/client"
	"github.com/edudesk/edudesk-api/pkg/config"
	"github.com/edudesk/edudesk-api/pkg/logger"
)

// Seeds a running API with demo students, teachers and notices so a fresh
// environment has data to browse. Safe to re-run: duplicate id conflicts
// are reported and skipped.
func main() {
	var (
		apiURL  string
		timeout time.Duration
	)
	flag.StringVar(&apiURL, "api-url", "", "API base URL (defaults to API_URL from the environment)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if apiURL != "" {
		cfg.Client.APIURL = apiURL
	}
	cfg.Client.Timeout = timeout

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	api := client.New(cfg.Client, logr)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var created, skipped int

	for _, req := range sampleStudents() {
		if _, err := api.CreateStudent(ctx, req); err != nil {
			skipped++
			logr.Sugar().Warnw("student not created", "studentId", req.StudentID, "error", err)
			continue
		}
		created++
	}

	for _, req := range sampleTeachers() {
		if _, err := api.CreateTeacher(ctx, req); err != nil {
			skipped++
			logr.Sugar().Warnw("teacher not created", "teacherId", req.TeacherID, "error", err)
			continue
		}
		created++
	}

	for _, req := range sampleNotices() {
		if _, err := api.CreateNotice(ctx, req); err != nil {
			skipped++
			logr.Sugar().Warnw("notice not created", "title", req.Title, "error", err)
			continue
		}
		created++
	}

	logr.Sugar().Infow("seeding finished", "created", created, "skipped", skipped)
}

func sampleStudents() []service.CreateStudentRequest {
	dob := models.NewDate(time.Date(2012, time.March, 14, 0, 0, 0, 0, time.UTC))
	return []service.CreateStudentRequest{
		{
			StudentID:   "STU-2024-0001",
			Name:        "Arif Hossain",
			NameBn:      "আরিফ হোসেন",
			Phone:       "+8801711000001",
			Gender:      string(models.GenderMale),
			DateOfBirth: &dob,
			Guardian: &models.Guardian{
				FatherName: "Kamal Hossain",
				MotherName: "Salma Begum",
			},
			Status: string(models.StudentStatusActive),
			AcademicHistory: []service.AcademicEntryRequest{
				{Session: "2024", Class: "Five", Roll: 7, Result: "A"},
			},
		},
		{
			StudentID: "STU-2024-0002",
			Name:      "Nusrat Jahan",
			NameBn:    "নুসরাত জাহান",
			Phone:     "+8801711000002",
			Gender:    string(models.GenderFemale),
			Status:    string(models.StudentStatusNewAdmission),
			AcademicHistory: []service.AcademicEntryRequest{
				{Session: "2024", Class: "Three", Roll: 12},
			},
		},
		{
			Name:   "Tanvir Ahmed",
			Phone:  "+8801711000003",
			Gender: string(models.GenderMale),
		},
	}
}

func sampleTeachers() []service.CreateTeacherRequest {
	joined := models.NewDate(time.Date(2019, time.January, 6, 0, 0, 0, 0, time.UTC))
	return []service.CreateTeacherRequest{
		{
			TeacherID:   "TCH-2019-0001",
			Name:        "Rahima Khatun",
			Gender:      string(models.GenderFemale),
			Phone:       "+8801811000001",
			Email:       "rahima.khatun@example.edu",
			Subject:     "Mathematics",
			JoiningDate: &joined,
			Status:      string(models.TeacherStatusActive),
		},
		{
			TeacherID: "TCH-2021-0002",
			Name:      "Jamal Uddin",
			Gender:    string(models.GenderMale),
			Phone:     "+8801811000002",
			Email:     "jamal.uddin@example.edu",
			Subject:   "English",
		},
	}
}

func sampleNotices() []service.CreateNoticeRequest {
	published := true
	return []service.CreateNoticeRequest{
		{
			Title:       "Annual Sports Day",
			Description: "Annual sports day will be held on the school field. All students must report by 8am.",
			Author:      "Head Teacher",
			IsPublished: &published,
			TargetClass: []string{"Three", "Four", "Five"},
		},
		{
			Title:       "Parent-Teacher Meeting",
			Description: "Guardians are requested to attend the quarterly parent-teacher meeting.",
			Author:      "Office",
			IsPublished: &published,
		},
	}
}
