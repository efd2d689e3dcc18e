package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/ocr"
)

// TemplatePattern is one typed matching clue on a template.
type TemplatePattern struct {
	Type       constants.PatternType `json:"type"`    // LAYOUT | KEYWORD | ML_MODEL
	Pattern    string                `json:"pattern"` // e.g. "HAS_TABLE", a keyword term, or a model key
	Weight     float64               `json:"weight"`
	IsRequired bool                  `json:"is_required"`
}

// ExtractionRule declares one field a template expects to extract.
type ExtractionRule struct {
	FieldName         string                     `json:"field_name"`
	FieldType         constants.FieldType        `json:"field_type"`
	Method            constants.ExtractionMethod `json:"method"`
	Pattern           string                     `json:"pattern,omitempty"`     // REGEX / NLP label pattern
	Coordinates       *ocr.BoundingBox           `json:"coordinates,omitempty"` // OCR_REGION target area
	ValidationRuleIDs []string                   `json:"validation_rule_ids,omitempty"`
}

// ValidationRuleType selects the validator applied by a ValidationRule.
type ValidationRuleType string

const (
	RuleRequired ValidationRuleType = "REQUIRED"
	RuleFormat   ValidationRuleType = "FORMAT"
	RuleRange    ValidationRuleType = "RANGE"
	RuleCustom   ValidationRuleType = "CUSTOM"
)

// ValidationRule is one declarative check against an extracted field.
// CUSTOM rules reference a named predicate registered at startup; unknown
// predicate ids fail deterministically.
type ValidationRule struct {
	ID          string             `json:"id"`
	FieldName   string             `json:"field_name"`
	RuleType    ValidationRuleType `json:"rule_type"`
	Pattern     string             `json:"pattern,omitempty"` // FORMAT regex
	Min         *float64           `json:"min,omitempty"`     // RANGE inclusive bounds
	Max         *float64           `json:"max,omitempty"`
	PredicateID string             `json:"predicate_id,omitempty"` // CUSTOM
	Message     string             `json:"message,omitempty"`
	Severity    constants.Severity `json:"severity,omitempty"` // defaults to ERROR
}

// DocumentTemplate is read-only reference data describing a known document
// layout and the fields it carries. The pipeline never mutates templates.
type DocumentTemplate struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	DocumentType    constants.DocumentType `json:"document_type"`
	Language        string                 `json:"language"`
	Patterns        []TemplatePattern      `json:"patterns"`
	ExtractionRules []ExtractionRule       `json:"extraction_rules,omitempty"`
	ValidationRules []ValidationRule       `json:"validation_rules,omitempty"`
	IsActive        bool                   `json:"is_active"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
