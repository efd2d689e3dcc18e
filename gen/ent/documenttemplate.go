// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/google/uuid"
)

// DocumentTemplate is the model entity for the DocumentTemplate schema.
type DocumentTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Patterns holds the value of the "patterns" field.
	Patterns json.RawMessage `json:"patterns,omitempty"`
	// ExtractionRules holds the value of the "extraction_rules" field.
	ExtractionRules json.RawMessage `json:"extraction_rules,omitempty"`
	// ValidationRules holds the value of the "validation_rules" field.
	ValidationRules json.RawMessage `json:"validation_rules,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documenttemplate.FieldPatterns, documenttemplate.FieldExtractionRules, documenttemplate.FieldValidationRules:
			values[i] = new([]byte)
		case documenttemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case documenttemplate.FieldName, documenttemplate.FieldDocumentType, documenttemplate.FieldLanguage:
			values[i] = new(sql.NullString)
		case documenttemplate.FieldCreatedAt, documenttemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case documenttemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentTemplate fields.
func (_m *DocumentTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documenttemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documenttemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case documenttemplate.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case documenttemplate.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case documenttemplate.FieldPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Patterns); err != nil {
					return fmt.Errorf("unmarshal field patterns: %w", err)
				}
			}
		case documenttemplate.FieldExtractionRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionRules); err != nil {
					return fmt.Errorf("unmarshal field extraction_rules: %w", err)
				}
			}
		case documenttemplate.FieldValidationRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationRules); err != nil {
					return fmt.Errorf("unmarshal field validation_rules: %w", err)
				}
			}
		case documenttemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case documenttemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documenttemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DocumentTemplate.
// Note that you need to call DocumentTemplate.Unwrap() before calling this method if this DocumentTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentTemplate) Update() *DocumentTemplateUpdateOne {
	return NewDocumentTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentTemplate) Unwrap() *DocumentTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Patterns))
	builder.WriteString(", ")
	builder.WriteString("extraction_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionRules))
	builder.WriteString(", ")
	builder.WriteString("validation_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationRules))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentTemplates is a parsable slice of DocumentTemplate.
type DocumentTemplates []*DocumentTemplate
