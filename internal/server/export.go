package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	tid := strings.TrimSpace(req.GetTenantId())
	tenantID, err := uuid.Parse(tid)
	if err != nil || tid == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id must be a UUID")
	}

	xlsx, err := s.svc.ExportDocumentsXLSX(ctx, tenantID)
	if err != nil {
		s.logger.Error("export failed", "tenant_id", tid, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
