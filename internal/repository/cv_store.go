package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/internal/extract"
)

// CVStore binds a CVRepository to a single profile so interactive
// sessions can persist confirmed candidates without carrying profile
// identity themselves.
type CVStore struct {
	repo      CVRepository
	profileID uuid.UUID
}

func NewCVStore(repo CVRepository, profileID uuid.UUID) *CVStore {
	return &CVStore{repo: repo, profileID: profileID}
}

func (s *CVStore) Create(ctx context.Context, candidate *extract.Candidate) (uuid.UUID, error) {
	row, err := s.repo.CreateFromCandidate(ctx, s.profileID, candidate)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}
