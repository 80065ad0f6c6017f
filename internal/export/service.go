package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/scanfolio/cv-scanner/gen/ent"
	"github.com/scanfolio/cv-scanner/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent     *ent.Client
	cvsRepo repository.CVRepository
	logger  *slog.Logger
}

func NewService(entc *ent.Client, cvs repository.CVRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, cvsRepo: cvs, logger: logger}
}

// ExportCVsXLSX returns an XLSX workbook (as bytes) for the given profile and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all CVs for the profile.
func (s *Service) ExportCVsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	cvs, err := s.cvsRepo.ListCVs(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query cvs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"First Name",
		"Last Name",
		"Email",
		"Phone",
		"Location",
		"Headline",
		"Latest Position",
		"Latest Company",
		"Skills",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range cvs {
		position, company := "", ""
		if len(c.Experiences) > 0 {
			position = c.Experiences[0].Position
			company = c.Experiences[0].Company
		}

		skills := make([]string, 0, len(c.Skills))
		for _, sk := range c.Skills {
			skills = append(skills, fmt.Sprintf("%s (%s)", sk.Name, sk.Level))
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.FirstName)
		write(2, c.LastName)
		write(3, c.Email)
		write(4, c.Phone)
		write(5, c.Location)
		write(6, c.Headline)
		write(7, position)
		write(8, company)
		write(9, truncate(strings.Join(skills, ", "), 140))
		write(10, c.CreatedAt.UTC().Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 16) // names
	_ = f.SetColWidth(sheet, "C", "C", 30) // email
	_ = f.SetColWidth(sheet, "D", "D", 18) // phone
	_ = f.SetColWidth(sheet, "E", "F", 24) // location, headline
	_ = f.SetColWidth(sheet, "G", "H", 24) // latest experience
	_ = f.SetColWidth(sheet, "I", "I", 48) // skills
	_ = f.SetColWidth(sheet, "J", "J", 14) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(cvs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
