package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/gen/ent"
	entdoc "github.com/docuvault/docintel/gen/ent/document"
	"github.com/docuvault/docintel/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByTenantAndHash(ctx context.Context, tenantID uuid.UUID, hash []byte) (*entity.Document, error)
	Create(ctx context.Context, doc *entity.Document, hash []byte, size int) (*entity.Document, error)
	UpsertByHash(ctx context.Context, doc *entity.Document, hash []byte, size int) (*entity.Document, bool, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.Document, error)
	ApplyFiling(ctx context.Context, id uuid.UUID, folder string, classification constants.ClassificationLevel, tags []string, metadata map[string]any) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocument(row)
}

func (r *documentRepo) GetByTenantAndHash(ctx context.Context, tenantID uuid.UUID, hash []byte) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.TenantID(tenantID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toDocument(row)
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document, hash []byte, size int) (*entity.Document, error) {
	metadata, err := encodeMetadata(doc.Metadata)
	if err != nil {
		return nil, err
	}
	create := r.ent.Document.Create().
		SetTenantID(doc.TenantID).
		SetFileName(doc.FileName).
		SetFilePath(doc.FilePath).
		SetDocumentType(string(doc.DocumentType)).
		SetLanguage(doc.Language).
		SetContentHash(hash).
		SetFileSize(size)
	if doc.ID != uuid.Nil {
		create.SetID(doc.ID)
	}
	if doc.DocumentType == "" {
		create.SetDocumentType(string(constants.Unknown))
	}
	if doc.Status != "" {
		create.SetStatus(doc.Status)
	}
	if doc.Classification != "" {
		create.SetClassification(string(doc.Classification))
	}
	if len(doc.Tags) > 0 {
		create.SetTags(doc.Tags)
	}
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	if doc.ClientID != "" {
		create.SetClientID(doc.ClientID)
	}
	if doc.PortfolioID != "" {
		create.SetPortfolioID(doc.PortfolioID)
	}
	if doc.DocumentDate != nil {
		create.SetDocumentDate(*doc.DocumentDate)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "tenant_id", doc.TenantID, "file_name", doc.FileName, "error", err)
		return nil, err
	}
	return toDocument(row)
}

func (r *documentRepo) UpsertByHash(ctx context.Context, doc *entity.Document, hash []byte, size int) (*entity.Document, bool, error) {
	if existing, err := r.GetByTenantAndHash(ctx, doc.TenantID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, doc, hash, size)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.Document, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.ent.Document.Query().
		Where(entdoc.TenantID(tenantID)).
		Order(ent.Desc(entdoc.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := toDocument(row)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// ApplyFiling persists a filing decision: target folder, classification,
// final tag set, and merged metadata.
func (r *documentRepo) ApplyFiling(ctx context.Context, id uuid.UUID, folder string, classification constants.ClassificationLevel, tags []string, metadata map[string]any) error {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return err
	}

	merged := map[string]any{}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &merged); err != nil {
			return fmt.Errorf("decode document metadata: %w", err)
		}
	}
	for k, v := range metadata {
		merged[k] = v
	}
	raw, err := encodeMetadata(merged)
	if err != nil {
		return err
	}

	update := row.Update().
		SetFilePath(folder).
		SetTags(tags).
		SetUpdatedAt(time.Now())
	if classification != "" {
		update.SetClassification(string(classification))
	}
	if raw != nil {
		update.SetMetadata(raw)
	}
	if _, err := update.Save(ctx); err != nil {
		r.logger.Error("failed to apply filing decision", "document_id", id, "error", err)
		return err
	}
	return nil
}

func toDocument(row *ent.Document) (*entity.Document, error) {
	doc := &entity.Document{
		ID:           row.ID,
		TenantID:     row.TenantID,
		FileName:     row.FileName,
		FilePath:     row.FilePath,
		DocumentType: constants.ParseDocumentType(row.DocumentType),
		Language:     row.Language,
		Status:       strOrEmpty(row.Status),
		Tags:         row.Tags,
		ClientID:     strOrEmpty(row.ClientID),
		PortfolioID:  strOrEmpty(row.PortfolioID),
		DocumentDate: row.DocumentDate,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if c := strOrEmpty(row.Classification); c != "" {
		doc.Classification = constants.ClassificationLevel(c)
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("decode document metadata: %w", err)
		}
	}
	return doc, nil
}

func encodeMetadata(m map[string]any) (json.RawMessage, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode document metadata: %w", err)
	}
	return raw, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
