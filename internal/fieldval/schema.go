package fieldval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

// BuildFieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// template's extracted-field payload as a generic map. Fields targeted by a
// REQUIRED validation rule become schema-required.
func BuildFieldsJSONSchema(rules []entity.ExtractionRule, validations []entity.ValidationRule) map[string]any {
	props := map[string]any{}
	var required []string

	requiredFields := map[string]bool{}
	formatPatterns := map[string]string{}
	for _, vr := range validations {
		switch vr.RuleType {
		case entity.RuleRequired:
			requiredFields[vr.FieldName] = true
		case entity.RuleFormat:
			formatPatterns[vr.FieldName] = vr.Pattern
		}
	}

	for _, r := range rules {
		prop := map[string]any{}
		switch r.FieldType {
		case constants.FieldNumber, constants.FieldCurrency, constants.FieldPercentage:
			prop["type"] = "number"
		case constants.FieldBoolean:
			prop["type"] = "boolean"
		case constants.FieldDate:
			prop["type"] = "string"
			prop["pattern"] = `^\d{4}-\d{2}-\d{2}$`
		default:
			prop["type"] = "string"
		}
		if p, ok := formatPatterns[r.FieldName]; ok && prop["type"] == "string" {
			prop["pattern"] = p
		}
		props[r.FieldName] = prop
		if requiredFields[r.FieldName] {
			required = append(required, r.FieldName)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// FieldsPayload flattens merged fields into the JSON object the schema
// validates: field name -> coerced value (dates as ISO strings). Empty
// fields are omitted so REQUIRED is meaningful.
func FieldsPayload(fields []extraction.Field) map[string]any {
	out := map[string]any{}
	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		if t, ok := f.Value.(time.Time); ok {
			out[f.FieldName] = t.Format("2006-01-02")
			continue
		}
		out[f.FieldName] = f.Value
	}
	return out
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ValidatePayload is the convenience wrapper the pipeline uses after field
// validation: schema mismatches are reported, not thrown.
func ValidatePayload(rules []entity.ExtractionRule, validations []entity.ValidationRule, fields []extraction.Field) error {
	payload, err := json.Marshal(FieldsPayload(fields))
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	return ValidateJSONAgainstSchema(BuildFieldsJSONSchema(rules, validations), payload)
}
