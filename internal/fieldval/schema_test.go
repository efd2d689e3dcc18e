package fieldval

import (
	"testing"
	"time"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

func schemaRules() ([]entity.ExtractionRule, []entity.ValidationRule) {
	rules := []entity.ExtractionRule{
		{FieldName: "amount", FieldType: constants.FieldCurrency},
		{FieldName: "trade_date", FieldType: constants.FieldDate},
		{FieldName: "cusip", FieldType: constants.FieldString},
	}
	validations := []entity.ValidationRule{
		{FieldName: "amount", RuleType: entity.RuleRequired},
		{FieldName: "cusip", RuleType: entity.RuleFormat, Pattern: `^[0-9A-Z]{9}$`},
	}
	return rules, validations
}

func TestBuildFieldsJSONSchema(t *testing.T) {
	rules, validations := schemaRules()
	schema := BuildFieldsJSONSchema(rules, validations)

	props, ok := schema["properties"].(map[string]any)
	if !ok || len(props) != 3 {
		t.Fatalf("expected 3 properties, got %v", schema["properties"])
	}
	amount := props["amount"].(map[string]any)
	if amount["type"] != "number" {
		t.Fatalf("amount type = %v", amount["type"])
	}
	cusip := props["cusip"].(map[string]any)
	if cusip["pattern"] != `^[0-9A-Z]{9}$` {
		t.Fatalf("cusip pattern not propagated: %v", cusip)
	}
	required, _ := schema["required"].([]string)
	if len(required) != 1 || required[0] != "amount" {
		t.Fatalf("required = %v", required)
	}
}

func TestValidatePayload(t *testing.T) {
	rules, validations := schemaRules()

	fields := []extraction.Field{
		{FieldName: "amount", FieldType: constants.FieldCurrency, Value: 12345.67, Raw: "$12,345.67"},
		{FieldName: "trade_date", FieldType: constants.FieldDate, Value: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Raw: "03/15/2024"},
		{FieldName: "cusip", FieldType: constants.FieldString, Value: "037833100", Raw: "037833100"},
	}
	if err := ValidatePayload(rules, validations, fields); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	// Missing required amount.
	if err := ValidatePayload(rules, validations, fields[1:]); err == nil {
		t.Fatal("payload without required amount should be rejected")
	}

	// Wrong cusip format.
	bad := make([]extraction.Field, len(fields))
	copy(bad, fields)
	bad[2].Value = "short"
	if err := ValidatePayload(rules, validations, bad); err == nil {
		t.Fatal("malformed cusip should be rejected by schema")
	}
}

func TestFieldsPayloadSkipsEmptyAndFormatsDates(t *testing.T) {
	fields := []extraction.Field{
		{FieldName: "trade_date", FieldType: constants.FieldDate, Value: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{FieldName: "missing", FieldType: constants.FieldString},
	}
	payload := FieldsPayload(fields)
	if payload["trade_date"] != "2024-03-15" {
		t.Fatalf("trade_date = %v", payload["trade_date"])
	}
	if _, ok := payload["missing"]; ok {
		t.Fatal("nil-valued field must be omitted")
	}
}
