package ingest

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docuvault/docintel/internal/async"
	"github.com/docuvault/docintel/internal/common"
)

// Service handles ingestion business logic.
type Service struct {
	ingestor Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

// NewService creates a new ingest service.
func NewService(ing Ingestor, q async.Queue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ingestor: ing,
		queue:    q,
		logger:   logger,
	}
}

// FileIngestRequest represents file ingestion parameters.
type FileIngestRequest struct {
	TenantID       string
	Path           string
	SkipDuplicates bool
}

// DirectoryIngestResult represents directory ingestion results.
type DirectoryIngestResult struct {
	Statistics DirStats
	Results    []IngestionResult
}

// IngestFile ingests a single file.
func (s *Service) IngestFile(ctx context.Context, req FileIngestRequest) (IngestionResult, error) {
	validator := common.NewValidator()
	validator.Field("tenant_id", req.TenantID, common.Required, common.UUID)
	validator.Field("path", req.Path, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("invalid ingest request", "tenant_id", req.TenantID, "error", err)
		return IngestionResult{}, common.StatusFromError(err)
	}
	tenantID, _ := uuid.Parse(strings.TrimSpace(req.TenantID))
	path := strings.TrimSpace(req.Path)

	s.logger.Info("starting file ingest", "tenant_id", tenantID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, tenantID, path)
	if err != nil {
		return IngestionResult{}, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}

	s.logger.Info("file ingest succeeded", "tenant_id", tenantID, "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	return r, nil
}

// DirectoryIngestRequest represents directory ingestion parameters.
type DirectoryIngestRequest struct {
	TenantID       string
	RootPath       string
	SkipHidden     bool
	SkipDuplicates bool
}

// IngestDirectory ingests all files in a directory.
func (s *Service) IngestDirectory(ctx context.Context, req DirectoryIngestRequest) (*DirectoryIngestResult, error) {
	validator := common.NewValidator()
	validator.Field("tenant_id", req.TenantID, common.Required, common.UUID)
	validator.Field("root_path", req.RootPath, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("invalid ingest directory request", "tenant_id", req.TenantID, "error", err)
		return nil, common.StatusFromError(err)
	}
	tenantID, _ := uuid.Parse(strings.TrimSpace(req.TenantID))
	root := strings.TrimSpace(req.RootPath)

	s.logger.Info("starting directory ingest", "tenant_id", tenantID, "root", root, "skip_hidden", req.SkipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, tenantID, root, req.SkipHidden)
	if err != nil {
		// file errors are already logged per entry in the ingest layer
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}

	s.logger.Info("directory ingest completed", "tenant_id", tenantID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	return &DirectoryIngestResult{
		Statistics: stats,
		Results:    results,
	}, nil
}

// EnqueueIngested queues a successfully ingested document for processing.
func (s *Service) EnqueueIngested(ctx context.Context, result *IngestionResult, skipDuplicates bool) error {
	if result.Err != "" || result.DocumentID == "" {
		return nil
	}

	documentID, err := uuid.Parse(result.DocumentID)
	if err != nil {
		s.logger.Error("invalid document_id: cannot enqueue", "document_id", result.DocumentID, "error", err)
		return status.Error(codes.InvalidArgument, "invalid document_id")
	}

	if result.Deduplicated && skipDuplicates {
		s.logger.Info("skipping processing (duplicate)", "document_id", result.DocumentID, "path", result.SourcePath)
		return nil
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  documentID,
		Force:       !skipDuplicates && result.Deduplicated,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		s.logger.Error("enqueue failed for document", "document_id", result.DocumentID, "err", err)
		return status.Errorf(codes.Internal, "enqueue failed: %v", err)
	}

	return nil
}
