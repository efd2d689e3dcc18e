package documents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/gen/ent"
	"github.com/docuvault/docintel/internal/common"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/pipeline"
	"github.com/docuvault/docintel/internal/repository"
)

// Service ties the pipeline to persistence: it loads a stored document, runs
// the five processing stages, and writes the filing decision back.
type Service struct {
	docs     repository.DocumentRepository
	jobs     repository.ProcessJobRepository
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

func NewService(docs repository.DocumentRepository, jobs repository.ProcessJobRepository, pl *pipeline.Pipeline, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, jobs: jobs, pipeline: pl, logger: logger}
}

// ProcessByID runs the pipeline for a stored document and persists the
// outcome. Satisfies async.Processor, so queue workers drive this directly.
func (s *Service) ProcessByID(ctx context.Context, documentID uuid.UUID) error {
	ctx = common.WithDocumentID(ctx, documentID.String())
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return common.WrapError(err, "load document")
	}

	res, err := s.pipeline.Process(ctx, doc, nil)
	if err != nil {
		return err
	}

	if res.Filing != nil {
		err = s.docs.ApplyFiling(ctx, doc.ID,
			res.Filing.TargetFolder,
			res.Filing.Classification,
			res.Filing.Tags,
			res.Filing.MetadataUpdates,
		)
		if err != nil {
			s.logger.Error("failed to persist filing decision", "document_id", doc.ID, "error", err)
			return common.WrapError(err, "apply filing")
		}
	}

	s.logger.Info("document processed",
		"document_id", doc.ID,
		"status", res.Job.Status,
		"confidence", res.Job.Confidence,
		"duration", res.Duration)
	return nil
}

// ProcessAndReturn is ProcessByID for callers that need the full result, such
// as the synchronous gRPC processing endpoint.
func (s *Service) ProcessAndReturn(ctx context.Context, documentID uuid.UUID) (*pipeline.ProcessingResult, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return nil, common.WrapError(err, "load document")
	}

	res, err := s.pipeline.Process(ctx, doc, nil)
	if err != nil {
		return res, err
	}
	if res.Filing != nil {
		if err := s.docs.ApplyFiling(ctx, doc.ID,
			res.Filing.TargetFolder,
			res.Filing.Classification,
			res.Filing.Tags,
			res.Filing.MetadataUpdates,
		); err != nil {
			s.logger.Error("failed to persist filing decision", "document_id", doc.ID, "error", err)
			return res, common.WrapError(err, "apply filing")
		}
	}
	return res, nil
}

func (s *Service) GetDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return nil, err
	}
	return doc, nil
}

func (s *Service) ListDocuments(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.Document, error) {
	return s.docs.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *Service) ListJobs(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessJob, error) {
	return s.jobs.ListByDocument(ctx, documentID)
}
