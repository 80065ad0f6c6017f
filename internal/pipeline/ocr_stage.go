package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/constants"
	"github.com/scanfolio/cv-scanner/internal/extract"
	"github.com/scanfolio/cv-scanner/internal/repository"
)

type OCRStage struct {
	FilesRepo  repository.ScanFileRepository
	JobsRepo   repository.ExtractJobRepository
	Recognizer extract.TextRecognizer
	Logger     *slog.Logger
}

func NewOCRStage(files repository.ScanFileRepository, jobs repository.ExtractJobRepository, rec extract.TextRecognizer, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, Recognizer: rec, Logger: logger}
}

// Run starts an extract_job, runs OCR on the file, and persists the
// recognized text. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.Recognition, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.Recognition{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.Recognition{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, row.ProfileID, format)
	if err != nil {
		return uuid.Nil, extract.Recognition{}, err
	}

	res, err := p.Recognizer.Recognize(ctx, row.SourcePath, nil)
	if err != nil {
		_ = p.JobsRepo.FinishOCR(ctx, job.ID, repository.OCROutcome{
			ErrorMessage: err.Error(),
		})
		return job.ID, res, err
	}

	// flag low-confidence recognition for manual review
	needsReview := false
	if res.Confidence > 0 && res.Confidence < constants.ImageConfidenceThreshold {
		p.Logger.Warn("recognition confidence low; needs review", "file_id", fileID, "job_id", job.ID, "conf", res.Confidence)
		needsReview = true
	}

	out := repository.OCROutcome{
		OCRText:      res.Text,
		EngineName:   "tesseract",
		Confidence:   res.Confidence,
		NeedsReview:  needsReview,
		EngineParams: map[string]any{"lang": res.Language},
	}
	if err := p.JobsRepo.FinishOCR(ctx, job.ID, out); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
