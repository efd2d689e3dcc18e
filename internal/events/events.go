package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Event is one pipeline lifecycle notification. Payload keys are
// stage-specific and informational only.
type Event struct {
	Type       string         `json:"type"`
	DocumentID uuid.UUID      `json:"document_id"`
	JobID      uuid.UUID      `json:"job_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	At         time.Time      `json:"at"`
}

// Publisher delivers events best-effort. Implementations must never block
// the pipeline on delivery; errors are the publisher's to log.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// Event types emitted by the pipeline.
const (
	TypeStructureAnalyzed  = "document.structure_analyzed"
	TypeTemplateRecognized = "document.template_recognized"
	TypeFieldsExtracted    = "document.fields_extracted"
	TypeFieldsValidated    = "document.fields_validated"
	TypeDocumentFiled      = "document.filed"
	TypeProcessingFailed   = "document.processing_failed"
)

// LogPublisher writes events to a structured logger. It is the default
// publisher when no messaging backend is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) {
	p.logger.Info("event",
		"type", ev.Type,
		"document_id", ev.DocumentID,
		"job_id", ev.JobID,
		"payload", ev.Payload,
	)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
