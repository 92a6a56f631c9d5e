package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/edudesk/edudesk-api/internal/models"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
	"github.com/edudesk/edudesk-api/pkg/export"
)

// ExportFormat names the supported roster export encodings.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered file plus response metadata.
type ExportResult struct {
	Content  []byte
	Filename string
	MIME     string
}

// ExportService renders the student roster as a downloadable file.
type ExportService struct {
	students *StudentService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students *StudentService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// StudentRoster renders the full student collection in the given format.
func (s *ExportService) StudentRoster(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	dataset := studentDataset(students)
	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export students")
		}
		return &ExportResult{Content: content, Filename: "students.csv", MIME: "text/csv"}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Student Roster")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export students")
		}
		return &ExportResult{Content: content, Filename: "students.pdf", MIME: "application/pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func studentDataset(students []models.Student) export.Dataset {
	headers := []string{"Student ID", "Name", "Gender", "Phone", "Status", "Class", "Roll"}
	rows := make([]map[string]string, 0, len(students))
	for _, st := range students {
		row := map[string]string{
			"Student ID": st.StudentID,
			"Name":       st.Name,
			"Gender":     string(st.Gender),
			"Phone":      st.Phone,
			"Status":     string(st.Status),
		}
		if n := len(st.AcademicHistory); n > 0 {
			latest := st.AcademicHistory[n-1]
			row["Class"] = latest.Class
			row["Roll"] = strconv.Itoa(latest.Roll)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
