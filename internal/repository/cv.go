package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/gen/ent"
	entcv "github.com/scanfolio/cv-scanner/gen/ent/cv"
	"github.com/scanfolio/cv-scanner/internal/entity"
	"github.com/scanfolio/cv-scanner/internal/extract"
	"github.com/scanfolio/cv-scanner/internal/utils"
)

type CVRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CV, error)
	ListCVs(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.CV, error)
	CreateFromCandidate(ctx context.Context, profileID uuid.UUID, candidate *extract.Candidate) (*entity.CV, error)
}

type cvRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCVRepository(client *ent.Client, logger *slog.Logger) CVRepository {
	return &cvRepository{
		client: client,
		logger: logger,
	}
}

func (r *cvRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CV, error) {
	row, err := r.client.CV.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get cv", "cv_id", id, "error", err)
		return nil, err
	}
	return utils.ToCV(row), nil
}

func (r *cvRepository) ListCVs(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.CV, error) {
	q := r.client.CV.Query().Where(entcv.ProfileID(profileID))
	if from != nil {
		q = q.Where(entcv.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entcv.CreatedAtLTE(*to))
	}
	rows, err := q.Order(entcv.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list cvs", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.CV, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCV(row)
	}
	return result, nil
}

// CreateFromCandidate persists a confirmed candidate as a CV row.
// List columns are stored as JSON documents.
func (r *cvRepository) CreateFromCandidate(ctx context.Context, profileID uuid.UUID, candidate *extract.Candidate) (*entity.CV, error) {
	exps, err := json.Marshal(candidate.Experiences)
	if err != nil {
		return nil, err
	}
	edus, err := json.Marshal(candidate.Educations)
	if err != nil {
		return nil, err
	}
	skills, err := json.Marshal(candidate.Skills)
	if err != nil {
		return nil, err
	}

	builder := r.client.CV.Create().
		SetProfileID(profileID).
		SetExperiences(exps).
		SetEducations(edus).
		SetSkills(skills)

	f := candidate.Fields
	if f.FirstName != "" {
		builder = builder.SetFirstName(f.FirstName)
	}
	if f.LastName != "" {
		builder = builder.SetLastName(f.LastName)
	}
	if f.Email != "" {
		builder = builder.SetEmail(f.Email)
	}
	if f.Phone != "" {
		builder = builder.SetPhone(f.Phone)
	}
	if f.Location != "" {
		builder = builder.SetLocation(f.Location)
	}
	if f.Headline != "" {
		builder = builder.SetHeadline(f.Headline)
	}
	if candidate.RawText != "" {
		builder = builder.SetRawText(candidate.RawText)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create cv", "profile_id", profileID, "error", err)
		return nil, err
	}
	return utils.ToCV(row), nil
}
