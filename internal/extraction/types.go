package extraction

import (
	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/ocr"
)

// Candidate is one strategy's proposal for a field value, before merging.
type Candidate struct {
	FieldName  string                     `json:"field_name"`
	Raw        string                     `json:"raw"`
	Value      any                        `json:"value"`
	Confidence float64                    `json:"confidence"`
	Source     constants.ExtractionMethod `json:"source"`
	Box        *ocr.BoundingBox           `json:"bounding_box,omitempty"`
}

// Alternative is a displaced candidate retained on the merged field.
type Alternative struct {
	Value      any                        `json:"value"`
	Raw        string                     `json:"raw,omitempty"`
	Confidence float64                    `json:"confidence"`
	Source     constants.ExtractionMethod `json:"source"`
}

// Field is one merged, typed extraction result. At most one Field exists per
// name; every displaced candidate lives on in Alternatives (descending
// confidence), never discarded.
type Field struct {
	FieldName        string                     `json:"field_name"`
	FieldType        constants.FieldType        `json:"field_type"`
	Value            any                        `json:"value"`
	Raw              string                     `json:"raw,omitempty"`
	Confidence       float64                    `json:"confidence"`
	Source           constants.ExtractionMethod `json:"source"`
	Box              *ocr.BoundingBox           `json:"bounding_box,omitempty"`
	Alternatives     []Alternative              `json:"alternatives,omitempty"`
	ValidationPassed bool                       `json:"validation_passed"`
	ValidationErrors []string                   `json:"validation_errors,omitempty"`
}

// Result is the extraction stage's output for one document.
type Result struct {
	Fields []Field  `json:"fields"`
	Errors []string `json:"errors,omitempty"` // recovered strategy failures
}

// FieldByName returns the merged field with that name, or nil.
func (r *Result) FieldByName(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].FieldName == name {
			return &r.Fields[i]
		}
	}
	return nil
}
