package filing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

// Notifier delivers SEND_NOTIFICATION actions. Failures are logged by the
// engine, never propagated.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// WorkflowTrigger starts TRIGGER_WORKFLOW actions.
type WorkflowTrigger interface {
	Trigger(ctx context.Context, workflowID string, params map[string]any) error
}

// AppliedRule records one fired rule: which conditions matched, which actions
// actually executed, and how long the rule took.
type AppliedRule struct {
	RuleID            uuid.UUID                `json:"rule_id"`
	RuleName          string                   `json:"rule_name"`
	MatchedConditions []entity.FilingCondition `json:"matched_conditions"`
	ExecutedActions   []entity.ActionType      `json:"executed_actions"`
	Duration          time.Duration            `json:"duration"`
}

// Result is the filing decision for one document. Tags is the full final tag
// set (document tags plus rule additions). Classification is empty when no
// rule set one; the caller applies it.
type Result struct {
	DocumentID      uuid.UUID                     `json:"document_id"`
	Tags            []string                      `json:"tags"`
	Classification  constants.ClassificationLevel `json:"classification,omitempty"`
	TargetFolder    string                        `json:"target_folder"`
	MetadataUpdates map[string]any                `json:"metadata_updates,omitempty"`
	Notifications   []string                      `json:"notifications,omitempty"`
	AppliedRules    []AppliedRule                 `json:"applied_rules"`
	Errors          []string                      `json:"errors,omitempty"`
}

// HasTag reports membership in the result's tag set.
func (r *Result) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Engine evaluates filing rules against a processed document. Rules are
// immutable inputs; all decisions are collected on the Result and applied
// by the caller.
type Engine struct {
	logger    *slog.Logger
	paths     *PathBuilder
	notifier  Notifier
	workflows WorkflowTrigger
}

func NewEngine(paths *PathBuilder, notifier Notifier, workflows WorkflowTrigger, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if paths == nil {
		paths = NewPathBuilder(PathConfig{})
	}
	return &Engine{logger: logger, paths: paths, notifier: notifier, workflows: workflows}
}

// Evaluate runs every applicable rule in priority order (higher first; stable
// within equal priority) and returns the accumulated filing decision. A rule
// fires only when all of its conditions hold. Per-action failures are logged
// and recorded; remaining actions and rules still run.
func (e *Engine) Evaluate(ctx context.Context, doc *entity.Document, extracted *extraction.Result, rules []entity.FilingRule) *Result {
	res := &Result{
		MetadataUpdates: map[string]any{},
	}
	if doc != nil {
		res.DocumentID = doc.ID
		res.Tags = append(res.Tags, doc.Tags...)
	}

	ordered := make([]entity.FilingRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	docType := constants.Unknown
	if doc != nil {
		docType = doc.DocumentType
	}

	for i := range ordered {
		rule := &ordered[i]
		if !rule.AppliesTo(docType) {
			continue
		}

		start := time.Now()
		matched, ok := e.matchConditions(rule, doc, extracted, res)
		if !ok {
			continue
		}

		applied := AppliedRule{
			RuleID:            rule.ID,
			RuleName:          rule.Name,
			MatchedConditions: matched,
		}
		for _, action := range rule.Actions {
			if err := e.execute(ctx, action, doc, res); err != nil {
				e.logger.Warn("filing action failed",
					"rule", rule.Name, "action", action.Type, "error", err)
				res.Errors = append(res.Errors, fmt.Sprintf("rule %s action %s: %v", rule.Name, action.Type, err))
				continue
			}
			applied.ExecutedActions = append(applied.ExecutedActions, action.Type)
		}
		applied.Duration = time.Since(start)
		res.AppliedRules = append(res.AppliedRules, applied)
	}

	if res.TargetFolder == "" && doc != nil {
		res.TargetFolder = e.paths.Build(doc)
	}
	if len(res.MetadataUpdates) == 0 {
		res.MetadataUpdates = nil
	}
	return res
}

// matchConditions evaluates a rule's conditions with AND semantics. A
// condition that errors (bad regex, non-numeric comparand) counts as not
// matching and is recorded.
func (e *Engine) matchConditions(rule *entity.FilingRule, doc *entity.Document, extracted *extraction.Result, res *Result) ([]entity.FilingCondition, bool) {
	matched := make([]entity.FilingCondition, 0, len(rule.Conditions))
	for _, cond := range rule.Conditions {
		value, present := resolvePath(cond.Field, doc, extracted)
		ok, err := evalCondition(cond, value, present)
		if err != nil {
			e.logger.Warn("filing condition errored",
				"rule", rule.Name, "field", cond.Field, "error", err)
			res.Errors = append(res.Errors, fmt.Sprintf("rule %s condition %s: %v", rule.Name, cond.Field, err))
			return nil, false
		}
		if !ok {
			return nil, false
		}
		matched = append(matched, cond)
	}
	return matched, true
}

func (e *Engine) execute(ctx context.Context, action entity.FilingAction, doc *entity.Document, res *Result) error {
	switch action.Type {
	case entity.ActionAddTag:
		tag, ok := stringParam(action.Parameters, "tag")
		if !ok {
			return fmt.Errorf("missing tag parameter")
		}
		if !res.HasTag(tag) {
			res.Tags = append(res.Tags, tag)
		}
		return nil

	case entity.ActionSetClassification:
		level, ok := stringParam(action.Parameters, "level")
		if !ok {
			return fmt.Errorf("missing level parameter")
		}
		res.Classification = constants.ClassificationLevel(level)
		return nil

	case entity.ActionMoveToFolder:
		if folder, ok := stringParam(action.Parameters, "folder"); ok {
			res.TargetFolder = e.paths.Expand(folder, doc)
			return nil
		}
		if doc == nil {
			return fmt.Errorf("no document to build a path for")
		}
		res.TargetFolder = e.paths.Build(doc)
		return nil

	case entity.ActionUpdateMetadata:
		if len(action.Parameters) == 0 {
			return fmt.Errorf("empty metadata parameters")
		}
		if res.MetadataUpdates == nil {
			res.MetadataUpdates = map[string]any{}
		}
		for k, v := range action.Parameters {
			res.MetadataUpdates[k] = v
		}
		return nil

	case entity.ActionSendNotification:
		if e.notifier == nil {
			return fmt.Errorf("no notifier configured")
		}
		recipient, _ := stringParam(action.Parameters, "recipient")
		message, _ := stringParam(action.Parameters, "message")
		if err := e.notifier.Notify(ctx, recipient, message); err != nil {
			return err
		}
		res.Notifications = append(res.Notifications, recipient)
		return nil

	case entity.ActionTriggerWorkflow:
		if e.workflows == nil {
			return fmt.Errorf("no workflow trigger configured")
		}
		id, ok := stringParam(action.Parameters, "workflow_id")
		if !ok {
			return fmt.Errorf("missing workflow_id parameter")
		}
		return e.workflows.Trigger(ctx, id, action.Parameters)

	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}

func stringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
