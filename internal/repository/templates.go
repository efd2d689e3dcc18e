package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/gen/ent"
	enttpl "github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/docuvault/docintel/internal/entity"
)

type TemplateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentTemplate, error)
	// ActiveTemplates returns active templates for a language; an empty
	// language returns every active template.
	ActiveTemplates(ctx context.Context, language string) ([]*entity.DocumentTemplate, error)
	List(ctx context.Context) ([]*entity.DocumentTemplate, error)
	Upsert(ctx context.Context, tpl *entity.DocumentTemplate) (*entity.DocumentTemplate, error)
}

type templateRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, logger *slog.Logger) TemplateRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &templateRepo{ent: entc, logger: logger}
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentTemplate, error) {
	row, err := r.ent.DocumentTemplate.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplate(row)
}

func (r *templateRepo) ActiveTemplates(ctx context.Context, language string) ([]*entity.DocumentTemplate, error) {
	q := r.ent.DocumentTemplate.Query().
		Where(enttpl.IsActive(true))
	if language != "" {
		q = q.Where(enttpl.Language(language))
	}
	rows, err := q.Order(ent.Asc(enttpl.FieldName)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list active templates", "language", language, "error", err)
		return nil, err
	}
	return toTemplates(rows)
}

func (r *templateRepo) List(ctx context.Context) ([]*entity.DocumentTemplate, error) {
	rows, err := r.ent.DocumentTemplate.Query().
		Order(ent.Asc(enttpl.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toTemplates(rows)
}

func (r *templateRepo) Upsert(ctx context.Context, tpl *entity.DocumentTemplate) (*entity.DocumentTemplate, error) {
	patterns, err := json.Marshal(tpl.Patterns)
	if err != nil {
		return nil, fmt.Errorf("encode template patterns: %w", err)
	}
	extraction, err := json.Marshal(tpl.ExtractionRules)
	if err != nil {
		return nil, fmt.Errorf("encode extraction rules: %w", err)
	}
	validation, err := json.Marshal(tpl.ValidationRules)
	if err != nil {
		return nil, fmt.Errorf("encode validation rules: %w", err)
	}

	existing, err := r.ent.DocumentTemplate.Query().
		Where(enttpl.Name(tpl.Name), enttpl.Language(tpl.Language)).
		Only(ctx)
	if err == nil {
		row, err := existing.Update().
			SetDocumentType(string(tpl.DocumentType)).
			SetPatterns(patterns).
			SetExtractionRules(extraction).
			SetValidationRules(validation).
			SetIsActive(tpl.IsActive).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update template", "name", tpl.Name, "error", err)
			return nil, err
		}
		return toTemplate(row)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	create := r.ent.DocumentTemplate.Create().
		SetName(tpl.Name).
		SetDocumentType(string(tpl.DocumentType)).
		SetLanguage(tpl.Language).
		SetPatterns(patterns).
		SetExtractionRules(extraction).
		SetValidationRules(validation).
		SetIsActive(tpl.IsActive)
	if tpl.ID != uuid.Nil {
		create.SetID(tpl.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create template", "name", tpl.Name, "error", err)
		return nil, err
	}
	return toTemplate(row)
}

func toTemplates(rows []*ent.DocumentTemplate) ([]*entity.DocumentTemplate, error) {
	out := make([]*entity.DocumentTemplate, 0, len(rows))
	for _, row := range rows {
		tpl, err := toTemplate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, nil
}

func toTemplate(row *ent.DocumentTemplate) (*entity.DocumentTemplate, error) {
	tpl := &entity.DocumentTemplate{
		ID:           row.ID,
		Name:         row.Name,
		DocumentType: constants.ParseDocumentType(row.DocumentType),
		Language:     row.Language,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if len(row.Patterns) > 0 {
		if err := json.Unmarshal(row.Patterns, &tpl.Patterns); err != nil {
			return nil, fmt.Errorf("decode template %s patterns: %w", row.Name, err)
		}
	}
	if len(row.ExtractionRules) > 0 {
		if err := json.Unmarshal(row.ExtractionRules, &tpl.ExtractionRules); err != nil {
			return nil, fmt.Errorf("decode template %s extraction rules: %w", row.Name, err)
		}
	}
	if len(row.ValidationRules) > 0 {
		if err := json.Unmarshal(row.ValidationRules, &tpl.ValidationRules); err != nil {
			return nil, fmt.Errorf("decode template %s validation rules: %w", row.Name, err)
		}
	}
	return tpl, nil
}
