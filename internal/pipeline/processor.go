package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/internal/common"
)

// Processor coordinates OCR (text recognition) then candidate structuring.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessFile runs OCR for a fileID (creating/advancing extract_job),
// then structures the recognized text into a candidate and creates the cv row.
// Returns the final jobID (same one started by OCR).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	log := p.Logger
	if pid := common.ProfileIDFromContext(ctx); pid != "" {
		log = log.With("profile_id", pid)
	}

	jobID, ocrRes, err := p.OCR.Run(ctx, fileID)
	if err != nil {
		log.Error("processor.ocr.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	log.Info("processor.ocr.ok",
		"file_id", fileID,
		"job_id", jobID,
		"language", ocrRes.Language,
		"confidence", ocrRes.Confidence,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		log.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	log.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
