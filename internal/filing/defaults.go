package filing

import (
	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
)

// DefaultRules returns the built-in filing rule set used when a tenant has
// not configured any. Higher priority runs first.
func DefaultRules() []entity.FilingRule {
	return []entity.FilingRule{
		{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("filing.high-value-trade")),
			Name:     "high-value-trade",
			Priority: 100,
			IsActive: true,
			ApplicableDocumentTypes: []constants.DocumentType{
				constants.TradeConfirmation,
			},
			Conditions: []entity.FilingCondition{
				{Field: "document.documentType", Operator: entity.OpEquals, Value: string(constants.TradeConfirmation)},
				{Field: "extracted.amount", Operator: entity.OpGreaterThan, Value: "100000"},
			},
			Actions: []entity.FilingAction{
				{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "high-value"}},
				{Type: entity.ActionSetClassification, Parameters: map[string]any{"level": string(constants.ClassificationHighlyConfidential)}},
			},
		},
		{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("filing.tax-retention")),
			Name:     "tax-retention",
			Priority: 80,
			IsActive: true,
			ApplicableDocumentTypes: []constants.DocumentType{
				constants.TaxDocument,
			},
			Conditions: []entity.FilingCondition{
				{Field: "document.documentType", Operator: entity.OpEquals, Value: string(constants.TaxDocument)},
			},
			Actions: []entity.FilingAction{
				{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "tax"}},
				{Type: entity.ActionUpdateMetadata, Parameters: map[string]any{"retention_years": 7}},
				{Type: entity.ActionSetClassification, Parameters: map[string]any{"level": string(constants.ClassificationConfidential)}},
			},
		},
		{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("filing.contract-confidential")),
			Name:     "contract-confidential",
			Priority: 60,
			IsActive: true,
			ApplicableDocumentTypes: []constants.DocumentType{
				constants.Contract,
			},
			Conditions: []entity.FilingCondition{
				{Field: "document.documentType", Operator: entity.OpEquals, Value: string(constants.Contract)},
			},
			Actions: []entity.FilingAction{
				{Type: entity.ActionSetClassification, Parameters: map[string]any{"level": string(constants.ClassificationConfidential)}},
				{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "legal"}},
			},
		},
		{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("filing.client-folder")),
			Name:     "client-folder",
			Priority: 40,
			IsActive: true,
			Conditions: []entity.FilingCondition{
				{Field: "document.clientId", Operator: entity.OpExists},
			},
			Actions: []entity.FilingAction{
				{Type: entity.ActionMoveToFolder, Parameters: map[string]any{"folder": "{base}/clients/{clientId}/{type}/{year}/{fileName}"}},
			},
		},
		{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("filing.default-internal")),
			Name:     "default-internal",
			Priority: 0,
			IsActive: true,
			Conditions: []entity.FilingCondition{
				{Field: "document.documentType", Operator: entity.OpExists},
			},
			Actions: []entity.FilingAction{
				{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "auto-filed"}},
			},
		},
	}
}
