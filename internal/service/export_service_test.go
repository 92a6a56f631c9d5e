package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

func TestExportServiceStudentRosterCSV(t *testing.T) {
	repo := &mockStudentRepo{items: map[string]*models.Student{
		primitive.NewObjectID().Hex(): {
			StudentID: "STU-1",
			Name:      "Arif Hossain",
			Gender:    models.GenderMale,
			Phone:     "+8801711000001",
			Status:    models.StudentStatusActive,
			AcademicHistory: []models.AcademicEntry{
				{Session: "2023", Class: "Four", Roll: 9},
				{Session: "2024", Class: "Five", Roll: 7},
			},
		},
	}}
	svc := NewExportService(newStudentTestService(repo), nil)

	result, err := svc.StudentRoster(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "students.csv", result.Filename)
	assert.Equal(t, "text/csv", result.MIME)

	body := string(result.Content)
	assert.True(t, strings.HasPrefix(body, "Student ID,Name,Gender,Phone,Status,Class,Roll"))
	assert.Contains(t, body, "STU-1,Arif Hossain,Male,+8801711000001,active,Five,7")
}

func TestExportServiceStudentRosterPDF(t *testing.T) {
	repo := &mockStudentRepo{items: map[string]*models.Student{
		primitive.NewObjectID().Hex(): {StudentID: "STU-1", Name: "Arif Hossain"},
	}}
	svc := NewExportService(newStudentTestService(repo), nil)

	result, err := svc.StudentRoster(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "students.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.MIME)
	assert.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	svc := NewExportService(newStudentTestService(&mockStudentRepo{}), nil)

	_, err := svc.StudentRoster(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
