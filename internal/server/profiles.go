package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cvspb "github.com/scanfolio/cv-scanner/gen/proto/cvs/v1"
	"github.com/scanfolio/cv-scanner/internal/common"
	"github.com/scanfolio/cv-scanner/internal/repository"
	"github.com/scanfolio/cv-scanner/internal/utils"
)

type ProfileServer struct {
	cvspb.UnimplementedProfilesServiceServer
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

func NewProfileServer(repo repository.ProfileRepository, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		profileRepo: repo,
		logger:      logger,
	}
}

// CreateProfile creates a new recruiter profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *cvspb.CreateProfileRequest) (*cvspb.CreateProfileResponse, error) {
	validator := common.NewValidator()
	validator.Field("name", req.GetName(), common.Required)
	validator.Field("email", req.GetEmail(), common.Email)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("create profile request rejected", "error", err)
		return nil, err
	}

	name := strings.TrimSpace(req.GetName())

	p, err := s.profileRepo.CreateProfile(ctx, &repository.Profile{
		Name:            name,
		Email:           strings.TrimSpace(req.GetEmail()),
		DefaultLanguage: strings.TrimSpace(req.GetDefaultLanguage()),
	})
	if err != nil {
		s.logger.Error("failed to create profile", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}

	return &cvspb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *cvspb.ListProfilesRequest) (*cvspb.ListProfilesResponse, error) {
	plist, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list profiles: %v", err)
	}

	out := make([]*cvspb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(p))
	}
	return &cvspb.ListProfilesResponse{Profiles: out}, nil
}
