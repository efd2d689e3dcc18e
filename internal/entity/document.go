package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
)

// Document represents a stored document for data transfer between layers.
type Document struct {
	ID             uuid.UUID                     `json:"id"`
	TenantID       uuid.UUID                     `json:"tenant_id"`
	FileName       string                        `json:"file_name"`
	FilePath       string                        `json:"file_path"`
	DocumentType   constants.DocumentType        `json:"document_type"`
	Language       string                        `json:"language"`
	Status         string                        `json:"status"`
	Classification constants.ClassificationLevel `json:"classification,omitempty"`
	Tags           []string                      `json:"tags,omitempty"`
	Metadata       map[string]any                `json:"metadata,omitempty"`
	ClientID       string                        `json:"client_id,omitempty"`
	PortfolioID    string                        `json:"portfolio_id,omitempty"`
	DocumentDate   *time.Time                    `json:"document_date,omitempty"`
	CreatedAt      time.Time                     `json:"created_at"`
	UpdatedAt      time.Time                     `json:"updated_at"`
}

// HasTag reports whether the tag is already present (tags are a set).
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
