package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cvspb "github.com/scanfolio/cv-scanner/gen/proto/cvs/v1"
	"github.com/scanfolio/cv-scanner/internal/repository"
	"github.com/scanfolio/cv-scanner/internal/utils"
)

type CVService struct {
	cvspb.UnimplementedCVsServiceServer
	cvRepo repository.CVRepository
	logger *slog.Logger
}

func NewCVService(cvRepo repository.CVRepository, logger *slog.Logger) *CVService {
	return &CVService{
		cvRepo: cvRepo,
		logger: logger,
	}
}

func (s *CVService) ListCVs(ctx context.Context, req *cvspb.ListCVsRequest) (*cvspb.ListCVsResponse, error) {
	if strings.TrimSpace(req.GetProfileId()) == "" {
		s.logger.Error("list cvs request missing profile_id")
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		s.logger.Error("invalid profile_id format for list cvs", "profile_id", req.GetProfileId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing cvs", "profile_id", profileID, "from_date", fromDate, "to_date", toDate)
	cvs, err := s.cvRepo.ListCVs(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list cvs: %v", err)
	}
	s.logger.Info("cvs listed successfully", "profile_id", profileID, "count", len(cvs))

	out := make([]*cvspb.CV, 0, len(cvs))
	for _, c := range cvs {
		out = append(out, utils.ToPBCV(c))
	}
	return &cvspb.ListCVsResponse{Cvs: out}, nil
}

func (s *CVService) GetCV(ctx context.Context, req *cvspb.GetCVRequest) (*cvspb.GetCVResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	cv, err := s.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "cv %s: %v", id, err)
	}
	return &cvspb.GetCVResponse{Cv: utils.ToPBCV(cv)}, nil
}
