package server

import (
	"fmt"
	"time"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

func toPBDocument(d *entity.Document) *v1.Document {
	out := &v1.Document{
		Id:             d.ID.String(),
		TenantId:       d.TenantID.String(),
		FileName:       d.FileName,
		FilePath:       d.FilePath,
		DocumentType:   string(d.DocumentType),
		Language:       d.Language,
		Status:         d.Status,
		Classification: string(d.Classification),
		Tags:           d.Tags,
		ClientId:       d.ClientID,
		PortfolioId:    d.PortfolioID,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.DocumentDate != nil {
		out.DocumentDate = d.DocumentDate.Format("2006-01-02")
	}
	return out
}

func toPBJob(j *entity.ProcessJob) *v1.ProcessJob {
	out := &v1.ProcessJob{
		Id:         j.ID.String(),
		DocumentId: j.DocumentID.String(),
		Status:     string(j.Status),
		Stage:      j.Stage,
		Confidence: j.Confidence,
		Error:      j.Error,
	}
	if j.TemplateID != nil {
		out.TemplateId = j.TemplateID.String()
	}
	if j.StartedAt != nil {
		out.StartedAt = j.StartedAt.UTC().Format(time.RFC3339)
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toPBField(f extraction.Field) *v1.ExtractedField {
	return &v1.ExtractedField{
		FieldName:        f.FieldName,
		FieldType:        string(f.FieldType),
		Value:            valueString(f.Value),
		Raw:              f.Raw,
		Confidence:       f.Confidence,
		Source:           string(f.Source),
		ValidationPassed: f.ValidationPassed,
	}
}

func toPBTemplate(t *entity.DocumentTemplate) *v1.Template {
	return &v1.Template{
		Id:                  t.ID.String(),
		Name:                t.Name,
		DocumentType:        string(t.DocumentType),
		Language:            t.Language,
		IsActive:            t.IsActive,
		PatternCount:        int32(len(t.Patterns)),
		ExtractionRuleCount: int32(len(t.ExtractionRules)),
	}
}

func toPBRule(r *entity.FilingRule) *v1.FilingRule {
	types := make([]string, 0, len(r.ApplicableDocumentTypes))
	for _, dt := range r.ApplicableDocumentTypes {
		types = append(types, string(dt))
	}
	return &v1.FilingRule{
		Id:                      r.ID.String(),
		Name:                    r.Name,
		Priority:                int32(r.Priority),
		IsActive:                r.IsActive,
		ApplicableDocumentTypes: types,
		ConditionCount:          int32(len(r.Conditions)),
		ActionCount:             int32(len(r.Actions)),
	}
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}
