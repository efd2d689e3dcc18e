package match

import (
	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
)

// Sub-score weights for the combined template score.
const (
	layoutWeight  = 0.3
	keywordWeight = 0.4
	contentWeight = 0.3

	// expectedTypeBoost is applied multiplicatively when the caller's
	// expected document type matches a template; the result is clamped
	// back into [0,1].
	expectedTypeBoost = 1.2
)

// TemplateScore holds the per-(document, template) evidence breakdown.
type TemplateScore struct {
	TemplateID   uuid.UUID              `json:"template_id"`
	TemplateName string                 `json:"template_name"`
	DocumentType constants.DocumentType `json:"document_type"`

	LayoutScore     float64 `json:"layout_score"`
	KeywordScore    float64 `json:"keyword_score"`
	ContentScore    float64 `json:"content_score"`    // ML classifier
	ConfidenceScore float64 `json:"confidence_score"` // mean OCR confidence, informational
	Penalty         float64 `json:"penalty"`          // missing required patterns

	TotalScore float64 `json:"total_score"`
}

// RecognitionResult is the matcher's full answer: a ranked best match, up to
// three alternatives, and per-document-type classification scores.
type RecognitionResult struct {
	Best         *TemplateScore           `json:"best,omitempty"`
	BestTemplate *entity.DocumentTemplate `json:"-"`
	Alternatives []TemplateScore          `json:"alternatives,omitempty"`
	// Confidence mirrors Best.TotalScore; 0 when nothing matched. Callers
	// must check it before trusting Best.
	Confidence float64 `json:"confidence"`
	// ClassificationScores maps each document type seen among the scored
	// templates to the maximum total score of any template of that type.
	ClassificationScores map[constants.DocumentType]float64 `json:"classification_scores,omitempty"`
	// Scores is the complete ranked list, best first.
	Scores []TemplateScore `json:"scores,omitempty"`
}
