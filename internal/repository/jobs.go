package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/gen/ent"
	entjob "github.com/docuvault/docintel/gen/ent/processjob"
	"github.com/docuvault/docintel/internal/entity"
)

type ProcessJobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessJob, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessJob, error)
	// SaveJob inserts or updates the job row; the pipeline calls it after
	// every stage transition.
	SaveJob(ctx context.Context, job *entity.ProcessJob) error
}

type processJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProcessJobRepository(entc *ent.Client, logger *slog.Logger) ProcessJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &processJobRepo{ent: entc, logger: logger}
}

func (r *processJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessJob, error) {
	row, err := r.ent.ProcessJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJob(row), nil
}

func (r *processJobRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessJob, error) {
	rows, err := r.ent.ProcessJob.Query().
		Where(entjob.DocumentID(documentID)).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ProcessJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func (r *processJobRepo) SaveJob(ctx context.Context, job *entity.ProcessJob) error {
	existing, err := r.ent.ProcessJob.Get(ctx, job.ID)
	if err == nil {
		update := existing.Update().
			SetStatus(string(job.Status)).
			SetConfidence(float32(job.Confidence))
		if job.Stage != "" {
			update.SetStage(job.Stage)
		}
		if job.TemplateID != nil {
			update.SetTemplateID(*job.TemplateID)
		}
		if job.Error != "" {
			update.SetErrorMessage(job.Error)
		}
		if job.FinishedAt != nil {
			update.SetFinishedAt(*job.FinishedAt)
		}
		if _, err := update.Save(ctx); err != nil {
			r.logger.Error("failed to update process job", "job_id", job.ID, "error", err)
			return err
		}
		return nil
	}
	if !ent.IsNotFound(err) {
		return err
	}

	create := r.ent.ProcessJob.Create().
		SetID(job.ID).
		SetDocumentID(job.DocumentID).
		SetTenantID(job.TenantID).
		SetStatus(string(job.Status))
	if job.Stage != "" {
		create.SetStage(job.Stage)
	}
	if job.StartedAt != nil {
		create.SetStartedAt(*job.StartedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		r.logger.Error("failed to create process job", "job_id", job.ID, "error", err)
		return err
	}
	return nil
}

func toJob(row *ent.ProcessJob) *entity.ProcessJob {
	job := &entity.ProcessJob{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		TenantID:   row.TenantID,
		Status:     constants.JobStatus(row.Status),
		Stage:      strOrEmpty(row.Stage),
		TemplateID: row.TemplateID,
		Error:      strOrEmpty(row.ErrorMessage),
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.Confidence != nil {
		job.Confidence = float64(*row.Confidence)
	}
	return job
}
