package server

import (
	"context"
	"time"

	"log/slog"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	svc    *ingest.Service
	logger *slog.Logger
}

func NewIngestionService(svc *ingest.Service, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{svc: svc, logger: logger}
}

// IngestFile registers one file and queues it for processing.
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	r, err := s.svc.IngestFile(ctx, ingest.FileIngestRequest{
		TenantID:       req.GetTenantId(),
		Path:           req.GetPath(),
		SkipDuplicates: req.GetSkipDuplicates(),
	})
	if err != nil {
		return nil, err
	}

	resp := toPBIngestResult(r)
	if err := s.svc.EnqueueIngested(ctx, &r, req.GetSkipDuplicates()); err != nil {
		s.logger.Error("enqueue failed after ingest", "document_id", r.DocumentID, "error", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

// IngestDirectory registers every matching file under a root and queues each
// for processing.
func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	res, err := s.svc.IngestDirectory(ctx, ingest.DirectoryIngestRequest{
		TenantID:       req.GetTenantId(),
		RootPath:       req.GetRootPath(),
		SkipHidden:     req.GetSkipHidden(),
		SkipDuplicates: req.GetSkipDuplicates(),
	})
	if err != nil {
		return nil, err
	}

	out := &v1.IngestDirectoryResponse{
		Scanned:      res.Statistics.Scanned,
		Matched:      res.Statistics.Matched,
		Succeeded:    res.Statistics.Succeeded,
		Deduplicated: res.Statistics.Deduplicated,
		Failed:       res.Statistics.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(res.Results)),
	}
	for i := range res.Results {
		r := res.Results[i]
		item := toPBIngestResult(r)
		if err := s.svc.EnqueueIngested(ctx, &r, req.GetSkipDuplicates()); err != nil {
			s.logger.Error("enqueue failed after ingest", "document_id", r.DocumentID, "error", err)
			item.Error = err.Error()
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func toPBIngestResult(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		IngestedAt:     r.IngestedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
