package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/common"
	"github.com/docuvault/docintel/internal/documents"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	svc    *documents.Service
	logger *slog.Logger
}

func NewDocumentsService(svc *documents.Service, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{svc: svc, logger: logger}
}

// ProcessDocument runs the pipeline synchronously for one stored document.
func (s *DocumentsService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for process", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}

	s.logger.Info("processing document", "document_id", documentID)
	res, err := s.svc.ProcessAndReturn(ctx, documentID)
	if err != nil {
		s.logger.Error("processing failed", "document_id", documentID, "error", err)
		if res == nil {
			return nil, common.StatusFromError(err)
		}
		// partial result: report the failed job rather than losing it
	}

	out := &v1.ProcessDocumentResponse{
		Job:        toPBJob(&res.Job),
		Confidence: res.Recognition.Confidence,
		Errors:     res.Errors,
	}
	if res.Recognition.BestTemplate != nil {
		out.DocumentType = string(res.Recognition.BestTemplate.DocumentType)
	}
	for _, f := range res.Extraction.Fields {
		out.Fields = append(out.Fields, toPBField(f))
	}
	if res.Filing != nil {
		out.TargetFolder = res.Filing.TargetFolder
		out.Classification = string(res.Filing.Classification)
		out.Tags = res.Filing.Tags
	}
	return out, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	doc, err := s.svc.GetDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to get document", "document_id", documentID, "error", err)
		return nil, common.StatusFromError(err)
	}
	return &v1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	tid := strings.TrimSpace(req.GetTenantId())
	if tid == "" {
		s.logger.Error("list documents request missing tenant_id")
		return nil, status.Error(codes.InvalidArgument, "tenant_id is required")
	}
	tenantID, err := uuid.Parse(tid)
	if err != nil {
		s.logger.Error("invalid tenant_id format for list documents", "tenant_id", tid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "tenant_id must be a UUID")
	}

	docs, err := s.svc.ListDocuments(ctx, tenantID, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list documents", "tenant_id", tenantID, "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	s.logger.Info("documents listed successfully", "tenant_id", tenantID, "count", len(docs))

	out := make([]*v1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	jobs, err := s.svc.ListJobs(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to list jobs", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*v1.ProcessJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toPBJob(j))
	}
	return &v1.ListJobsResponse{Jobs: out}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	documentID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return documentID, nil
}
