package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/constants"
	"github.com/scanfolio/cv-scanner/internal/extract"
	"github.com/scanfolio/cv-scanner/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // default 0.60
}

type ParseStage struct {
	Logger   *slog.Logger
	Cfg      Config
	JobsRepo repository.ExtractJobRepository
	CVsRepo  repository.CVRepository
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	cvs repository.CVRepository,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = constants.ImageConfidenceThreshold
	}
	return &ParseStage{
		Logger:   logger,
		Cfg:      cfg,
		JobsRepo: jobs,
		CVsRepo:  cvs,
	}
}

// Run executes the structuring stage for an existing OCR job.
// Preconditions: job is OCR_OK with non-empty ocr_text and a valid file link.
// Effects: writes candidate_json and needs_review, creates the cvs row
// and links job -> cv.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OcrText == nil || *job.OcrText == "" {
		return job.ID, fmt.Errorf("job not ready for parse: ocr_text_empty=%t", job.OcrText == nil || *job.OcrText == "")
	}

	p.Logger.Info("candidate structuring start",
		"job_id", job.ID, "file_id", file.ID, "ocr_bytes", len(*job.OcrText),
	)

	candidate := extract.Run(*job.OcrText)

	candidateJSON, err := json.Marshal(candidate)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal candidate: %w", err)
	}
	if err := extract.ValidateCandidateJSON(candidateJSON); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate candidate: %w", err)
	}

	// Heuristic needs_review: identity gaps or weak recognition
	needsReview := false
	if candidate.Fields.Email == "" || candidate.Fields.Phone == "" || candidate.Fields.LastName == "" {
		needsReview = true
	}
	if job.RecognitionConfidence != nil && *job.RecognitionConfidence > 0 && *job.RecognitionConfidence < p.Cfg.MinConfidence {
		needsReview = true
	}

	cv, err := p.CVsRepo.CreateFromCandidate(ctx, file.ProfileID, candidate)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("create cv: %w", err)
	}
	if err := p.JobsRepo.SetCVID(ctx, job.ID, cv.ID); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("link job->cv: %v", err))
		return job.ID, err
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, candidateJSON, needsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("candidate structured successfully",
		"job_id", job.ID, "cv_id", cv.ID,
		"email", candidate.Fields.Email, "skills", len(candidate.Skills),
		"experiences", len(candidate.Experiences), "needs_review", needsReview,
	)
	return job.ID, nil
}
