package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/gen/ent"
	entfile "github.com/scanfolio/cv-scanner/gen/ent/scanfile"
)

type ScanFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.ScanFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ScanFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ScanFile, bool, error)
}

type scanFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanFileRepository(entc *ent.Client, logger *slog.Logger) ScanFileRepository {
	return &scanFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanFile, error) {
	return r.ent.ScanFile.Get(ctx, id)
}

func (r *scanFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.ScanFile, error) {
	row, err := r.ent.ScanFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *scanFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ScanFile, error) {
	row, err := r.ent.ScanFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan file", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *scanFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ScanFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert scan file by hash", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
