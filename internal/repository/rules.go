package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/gen/ent"
	entrule "github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/docuvault/docintel/internal/entity"
)

type FilingRuleRepository interface {
	// ActiveRules returns every active rule, highest priority first.
	ActiveRules(ctx context.Context) ([]entity.FilingRule, error)
	List(ctx context.Context) ([]entity.FilingRule, error)
	Upsert(ctx context.Context, rule *entity.FilingRule) (*entity.FilingRule, error)
}

type filingRuleRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFilingRuleRepository(entc *ent.Client, logger *slog.Logger) FilingRuleRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &filingRuleRepo{ent: entc, logger: logger}
}

func (r *filingRuleRepo) ActiveRules(ctx context.Context) ([]entity.FilingRule, error) {
	rows, err := r.ent.FilingRule.Query().
		Where(entrule.IsActive(true)).
		Order(ent.Desc(entrule.FieldPriority)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list active filing rules", "error", err)
		return nil, err
	}
	return toRules(rows)
}

func (r *filingRuleRepo) List(ctx context.Context) ([]entity.FilingRule, error) {
	rows, err := r.ent.FilingRule.Query().
		Order(ent.Desc(entrule.FieldPriority)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toRules(rows)
}

func (r *filingRuleRepo) Upsert(ctx context.Context, rule *entity.FilingRule) (*entity.FilingRule, error) {
	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return nil, fmt.Errorf("encode rule conditions: %w", err)
	}
	actions, err := json.Marshal(rule.Actions)
	if err != nil {
		return nil, fmt.Errorf("encode rule actions: %w", err)
	}
	types := make([]string, len(rule.ApplicableDocumentTypes))
	for i, dt := range rule.ApplicableDocumentTypes {
		types[i] = string(dt)
	}

	existing, err := r.ent.FilingRule.Query().
		Where(entrule.Name(rule.Name)).
		Only(ctx)
	if err == nil {
		row, err := existing.Update().
			SetPriority(rule.Priority).
			SetIsActive(rule.IsActive).
			SetApplicableDocumentTypes(types).
			SetConditions(conditions).
			SetActions(actions).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update filing rule", "name", rule.Name, "error", err)
			return nil, err
		}
		return toRule(row)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	create := r.ent.FilingRule.Create().
		SetName(rule.Name).
		SetPriority(rule.Priority).
		SetIsActive(rule.IsActive).
		SetApplicableDocumentTypes(types).
		SetConditions(conditions).
		SetActions(actions)
	if rule.ID != uuid.Nil {
		create.SetID(rule.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create filing rule", "name", rule.Name, "error", err)
		return nil, err
	}
	return toRule(row)
}

func toRules(rows []*ent.FilingRule) ([]entity.FilingRule, error) {
	out := make([]entity.FilingRule, 0, len(rows))
	for _, row := range rows {
		rule, err := toRule(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *rule)
	}
	return out, nil
}

func toRule(row *ent.FilingRule) (*entity.FilingRule, error) {
	rule := &entity.FilingRule{
		ID:        row.ID,
		Name:      row.Name,
		Priority:  row.Priority,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for _, t := range row.ApplicableDocumentTypes {
		rule.ApplicableDocumentTypes = append(rule.ApplicableDocumentTypes, constants.ParseDocumentType(t))
	}
	if len(row.Conditions) > 0 {
		if err := json.Unmarshal(row.Conditions, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("decode rule %s conditions: %w", row.Name, err)
		}
	}
	if len(row.Actions) > 0 {
		if err := json.Unmarshal(row.Actions, &rule.Actions); err != nil {
			return nil, fmt.Errorf("decode rule %s actions: %w", row.Name, err)
		}
	}
	return rule, nil
}
