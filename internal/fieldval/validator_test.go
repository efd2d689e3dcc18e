package fieldval

import (
	"strings"
	"testing"
	"time"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

func f64(v float64) *float64 { return &v }

func amountField(value float64, raw string) extraction.Field {
	return extraction.Field{
		FieldName:  "amount",
		FieldType:  constants.FieldCurrency,
		Value:      value,
		Raw:        raw,
		Confidence: 0.9,
		Source:     constants.MethodRegex,
	}
}

func TestValidateRequired(t *testing.T) {
	v := NewValidator(nil, nil)
	rules := []entity.ValidationRule{{
		ID:        "req-amount",
		FieldName: "amount",
		RuleType:  entity.RuleRequired,
		Message:   "amount is required",
		Severity:  constants.SeverityError,
	}}

	fields, results := v.Validate([]extraction.Field{amountField(125.50, "$125.50")}, rules)
	if !fields[0].ValidationPassed {
		t.Fatalf("present amount should pass: %v", fields[0].ValidationErrors)
	}
	if len(results) != 1 || !results[0].IsValid {
		t.Fatalf("expected one passing result, got %+v", results)
	}

	empty := extraction.Field{FieldName: "amount", FieldType: constants.FieldCurrency, Confidence: 0.9}
	fields, _ = v.Validate([]extraction.Field{empty}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("empty amount should fail REQUIRED")
	}
	if fields[0].ValidationErrors[0] != "amount is required" {
		t.Fatalf("unexpected message %q", fields[0].ValidationErrors[0])
	}
}

func TestValidateFormat(t *testing.T) {
	v := NewValidator(nil, nil)
	rules := []entity.ValidationRule{{
		ID:        "fmt-cusip",
		FieldName: "cusip",
		RuleType:  entity.RuleFormat,
		Pattern:   `^[0-9A-Z]{9}$`,
		Severity:  constants.SeverityError,
	}}

	good := extraction.Field{FieldName: "cusip", FieldType: constants.FieldString, Value: "037833100", Raw: "037833100", Confidence: 0.9}
	fields, _ := v.Validate([]extraction.Field{good}, rules)
	if !fields[0].ValidationPassed {
		t.Fatalf("valid cusip should pass: %v", fields[0].ValidationErrors)
	}

	bad := good
	bad.Raw = "03783"
	fields, _ = v.Validate([]extraction.Field{bad}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("short cusip should fail FORMAT")
	}
}

func TestValidateRange(t *testing.T) {
	v := NewValidator(nil, nil)
	rules := []entity.ValidationRule{{
		ID:        "range-amount",
		FieldName: "amount",
		RuleType:  entity.RuleRange,
		Min:       f64(0),
		Max:       f64(1000000),
		Severity:  constants.SeverityError,
	}}

	fields, _ := v.Validate([]extraction.Field{amountField(500, "$500.00")}, rules)
	if !fields[0].ValidationPassed {
		t.Fatalf("in-range amount should pass: %v", fields[0].ValidationErrors)
	}

	fields, _ = v.Validate([]extraction.Field{amountField(-5, "-$5.00")}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("below-min amount should fail RANGE")
	}

	fields, _ = v.Validate([]extraction.Field{amountField(2000000, "$2,000,000.00")}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("above-max amount should fail RANGE")
	}
}

func TestValidateCustomPredicate(t *testing.T) {
	reg := NewPredicateRegistry()
	v := NewValidator(reg, nil)
	rules := []entity.ValidationRule{{
		ID:          "pos-amount",
		FieldName:   "amount",
		RuleType:    entity.RuleCustom,
		PredicateID: "positive_amount",
		Severity:    constants.SeverityError,
	}}

	fields, _ := v.Validate([]extraction.Field{amountField(10, "$10.00")}, rules)
	if !fields[0].ValidationPassed {
		t.Fatalf("positive amount should pass: %v", fields[0].ValidationErrors)
	}

	fields, _ = v.Validate([]extraction.Field{amountField(-10, "-$10.00")}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("negative amount should fail positive_amount")
	}
}

func TestValidateUnknownPredicateFailsRuleOnly(t *testing.T) {
	v := NewValidator(nil, nil)
	rules := []entity.ValidationRule{
		{ID: "bad", FieldName: "amount", RuleType: entity.RuleCustom, PredicateID: "no_such_check", Severity: constants.SeverityError},
		{ID: "range-ok", FieldName: "amount", RuleType: entity.RuleRange, Min: f64(0), Severity: constants.SeverityError},
	}

	fields, results := v.Validate([]extraction.Field{amountField(10, "$10.00")}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("unknown predicate should fail the field")
	}
	if len(results) != 2 {
		t.Fatalf("both rules should report, got %d", len(results))
	}
	if results[0].IsValid {
		t.Fatal("unknown predicate rule should be invalid")
	}
	if !strings.Contains(results[0].ErrorMessage, "no_such_check") {
		t.Fatalf("error should name the predicate, got %q", results[0].ErrorMessage)
	}
	if !results[1].IsValid {
		t.Fatal("range rule should still pass independently")
	}
}

func TestValidateWarningDoesNotFailField(t *testing.T) {
	v := NewValidator(nil, nil)
	rules := []entity.ValidationRule{{
		ID:        "warn-range",
		FieldName: "amount",
		RuleType:  entity.RuleRange,
		Max:       f64(100),
		Severity:  constants.SeverityWarning,
	}}

	fields, results := v.Validate([]extraction.Field{amountField(500, "$500.00")}, rules)
	if !fields[0].ValidationPassed {
		t.Fatal("WARNING severity failure must not flip ValidationPassed")
	}
	if len(fields[0].ValidationErrors) != 1 {
		t.Fatalf("warning should still be recorded, got %v", fields[0].ValidationErrors)
	}
	if results[0].Severity != constants.SeverityWarning {
		t.Fatalf("severity = %s", results[0].Severity)
	}
}

func TestValidateLowConfidenceWarning(t *testing.T) {
	v := NewValidator(nil, nil)
	f := amountField(10, "$10.00")
	f.Confidence = 0.2

	fields, results := v.Validate([]extraction.Field{f}, nil)
	if !fields[0].ValidationPassed {
		t.Fatal("low confidence alone must not fail the field")
	}
	found := false
	for _, r := range results {
		if !r.IsValid && r.Severity == constants.SeverityWarning && strings.Contains(r.ErrorMessage, "low confidence") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected low-confidence warning, got %+v", results)
	}
}

func TestValidateTypeMismatchWarning(t *testing.T) {
	v := NewValidator(nil, nil)
	f := extraction.Field{
		FieldName:  "amount",
		FieldType:  constants.FieldCurrency,
		Value:      "not a number",
		Raw:        "not a number",
		Confidence: 0.9,
	}

	fields, results := v.Validate([]extraction.Field{f}, nil)
	if !fields[0].ValidationPassed {
		t.Fatal("type mismatch is a warning, not a failure")
	}
	found := false
	for _, r := range results {
		if !r.IsValid && strings.Contains(r.ErrorMessage, "declared CURRENCY") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected type-mismatch warning, got %+v", results)
	}
}

func TestBuiltinPredicates(t *testing.T) {
	reg := NewPredicateRegistry()

	notInFuture, err := reg.Resolve("not_in_future")
	if err != nil {
		t.Fatal(err)
	}
	if !notInFuture(time.Now().Add(-time.Hour), "") {
		t.Fatal("past date should pass not_in_future")
	}
	if notInFuture(time.Now().Add(time.Hour), "") {
		t.Fatal("future date should fail not_in_future")
	}

	isin, err := reg.Resolve("valid_isin")
	if err != nil {
		t.Fatal(err)
	}
	if !isin(nil, "US0378331005") {
		t.Fatal("US0378331005 should be a valid ISIN")
	}
	if isin(nil, "037833100") {
		t.Fatal("bare cusip should fail ISIN check")
	}
}

func TestRegistryRegisterOverride(t *testing.T) {
	reg := NewPredicateRegistry()
	reg.Register("always_no", func(any, string) bool { return false })

	v := NewValidator(reg, nil)
	rules := []entity.ValidationRule{{
		ID: "r", FieldName: "amount", RuleType: entity.RuleCustom, PredicateID: "always_no",
	}}
	fields, _ := v.Validate([]extraction.Field{amountField(10, "$10.00")}, rules)
	if fields[0].ValidationPassed {
		t.Fatal("registered predicate returning false should fail the field")
	}
}
