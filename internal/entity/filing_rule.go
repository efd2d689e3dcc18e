package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
)

// ConditionOperator compares a resolved field value against a rule value.
type ConditionOperator string

const (
	OpEquals      ConditionOperator = "EQUALS"
	OpContains    ConditionOperator = "CONTAINS"
	OpStartsWith  ConditionOperator = "STARTS_WITH"
	OpEndsWith    ConditionOperator = "ENDS_WITH"
	OpRegex       ConditionOperator = "REGEX"
	OpGreaterThan ConditionOperator = "GREATER_THAN"
	OpLessThan    ConditionOperator = "LESS_THAN"
	OpExists      ConditionOperator = "EXISTS"
)

// ActionType names one filing action a matched rule executes.
type ActionType string

const (
	ActionAddTag            ActionType = "ADD_TAG"
	ActionSetClassification ActionType = "SET_CLASSIFICATION"
	ActionMoveToFolder      ActionType = "MOVE_TO_FOLDER"
	ActionUpdateMetadata    ActionType = "UPDATE_METADATA"
	ActionSendNotification  ActionType = "SEND_NOTIFICATION"
	ActionTriggerWorkflow   ActionType = "TRIGGER_WORKFLOW"
)

// FilingCondition is one predicate over a dotted field path
// (document.*, metadata.*, extracted.*).
type FilingCondition struct {
	Field         string            `json:"field"`
	Operator      ConditionOperator `json:"operator"`
	Value         string            `json:"value,omitempty"`
	CaseSensitive bool              `json:"case_sensitive,omitempty"`
}

// FilingAction is one effect executed when a rule fires.
type FilingAction struct {
	Type       ActionType     `json:"type"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// FilingRule is immutable reference data: all conditions must hold (AND)
// for the actions to run. Higher priority rules are evaluated first.
type FilingRule struct {
	ID                      uuid.UUID                `json:"id"`
	Name                    string                   `json:"name"`
	Priority                int                      `json:"priority"`
	IsActive                bool                     `json:"is_active"`
	ApplicableDocumentTypes []constants.DocumentType `json:"applicable_document_types,omitempty"`
	Conditions              []FilingCondition        `json:"conditions"`
	Actions                 []FilingAction           `json:"actions"`
	CreatedAt               time.Time                `json:"created_at"`
	UpdatedAt               time.Time                `json:"updated_at"`
}

// AppliesTo reports rule applicability: active, and either no type filter or
// the document's type listed.
func (r *FilingRule) AppliesTo(dt constants.DocumentType) bool {
	if !r.IsActive {
		return false
	}
	if len(r.ApplicableDocumentTypes) == 0 {
		return true
	}
	for _, t := range r.ApplicableDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}
