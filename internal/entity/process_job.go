package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
)

// ProcessJob tracks one pipeline run over a document.
type ProcessJob struct {
	ID         uuid.UUID           `json:"id"`
	DocumentID uuid.UUID           `json:"document_id"`
	TenantID   uuid.UUID           `json:"tenant_id"`
	Status     constants.JobStatus `json:"status"`
	Stage      string              `json:"stage,omitempty"` // last completed stage
	Confidence float64             `json:"confidence"`      // best template score at completion
	TemplateID *uuid.UUID          `json:"template_id,omitempty"`
	Error      string              `json:"error,omitempty"`
	StartedAt  *time.Time          `json:"started_at,omitempty"`
	FinishedAt *time.Time          `json:"finished_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
