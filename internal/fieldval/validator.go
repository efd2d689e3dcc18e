package fieldval

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

// lowConfidenceFloor triggers the generic low-confidence warning.
const lowConfidenceFloor = 0.3

// RuleResult reports one (field, rule) outcome.
type RuleResult struct {
	RuleID       string             `json:"rule_id,omitempty"`
	FieldName    string             `json:"field_name"`
	IsValid      bool               `json:"is_valid"`
	ErrorMessage string             `json:"error_message,omitempty"`
	Severity     constants.Severity `json:"severity"`
}

// Validator applies template-declared validation rules plus generic
// confidence and type-consistency checks.
type Validator struct {
	logger     *slog.Logger
	predicates *PredicateRegistry
}

func NewValidator(predicates *PredicateRegistry, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if predicates == nil {
		predicates = NewPredicateRegistry()
	}
	return &Validator{logger: logger, predicates: predicates}
}

// Validate checks every field in place and returns the per-rule results.
// A field passes only if every ERROR-severity rule targeting it passed;
// WARNING/INFO findings are collected without failing the field.
func (v *Validator) Validate(fields []extraction.Field, rules []entity.ValidationRule) ([]extraction.Field, []RuleResult) {
	var results []RuleResult

	for i := range fields {
		f := &fields[i]
		f.ValidationPassed = true
		f.ValidationErrors = nil

		for _, rule := range rules {
			if rule.FieldName != f.FieldName {
				continue
			}
			res := v.applyRule(f, rule)
			results = append(results, res)
			if !res.IsValid {
				f.ValidationErrors = append(f.ValidationErrors, res.ErrorMessage)
				if res.Severity == constants.SeverityError {
					f.ValidationPassed = false
				}
			}
		}

		for _, res := range v.genericChecks(f) {
			results = append(results, res)
			if !res.IsValid {
				f.ValidationErrors = append(f.ValidationErrors, res.ErrorMessage)
				if res.Severity == constants.SeverityError {
					f.ValidationPassed = false
				}
			}
		}
	}
	return fields, results
}

func (v *Validator) applyRule(f *extraction.Field, rule entity.ValidationRule) RuleResult {
	res := RuleResult{
		RuleID:    rule.ID,
		FieldName: f.FieldName,
		IsValid:   true,
		Severity:  rule.Severity,
	}
	if res.Severity == "" {
		res.Severity = constants.SeverityError
	}

	ok, err := v.check(f, rule)
	if err != nil {
		// A rule exception fails that rule, not the whole field set.
		v.logger.Warn("validation rule errored", "rule_id", rule.ID, "field", f.FieldName, "error", err)
		res.IsValid = false
		res.ErrorMessage = err.Error()
		return res
	}
	if !ok {
		res.IsValid = false
		res.ErrorMessage = rule.Message
		if res.ErrorMessage == "" {
			res.ErrorMessage = fmt.Sprintf("field %s failed %s validation", f.FieldName, rule.RuleType)
		}
	}
	return res
}

func (v *Validator) check(f *extraction.Field, rule entity.ValidationRule) (bool, error) {
	switch rule.RuleType {
	case entity.RuleRequired:
		return strings.TrimSpace(f.Raw) != "" && f.Value != nil, nil

	case entity.RuleFormat:
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return false, fmt.Errorf("bad format pattern: %w", err)
		}
		return re.MatchString(f.Raw), nil

	case entity.RuleRange:
		n, ok := asNumber(f.Value, f.Raw)
		if !ok {
			return false, nil
		}
		if rule.Min != nil && n < *rule.Min {
			return false, nil
		}
		if rule.Max != nil && n > *rule.Max {
			return false, nil
		}
		return true, nil

	case entity.RuleCustom:
		pred, err := v.predicates.Resolve(rule.PredicateID)
		if err != nil {
			return false, err
		}
		return pred(f.Value, f.Raw), nil

	default:
		return false, fmt.Errorf("unknown validation rule type %q", rule.RuleType)
	}
}

// genericChecks: low extraction confidence and declared-vs-inferred type
// mismatch are reported as warnings, never as hard failures.
func (v *Validator) genericChecks(f *extraction.Field) []RuleResult {
	var out []RuleResult
	if f.Raw != "" && f.Confidence < lowConfidenceFloor {
		out = append(out, RuleResult{
			FieldName:    f.FieldName,
			IsValid:      false,
			ErrorMessage: fmt.Sprintf("low confidence %.2f for field %s", f.Confidence, f.FieldName),
			Severity:     constants.SeverityWarning,
		})
	}
	if f.Value != nil && !typeConsistent(f.FieldType, f.Value) {
		out = append(out, RuleResult{
			FieldName:    f.FieldName,
			IsValid:      false,
			ErrorMessage: fmt.Sprintf("field %s declared %s but value is %T", f.FieldName, f.FieldType, f.Value),
			Severity:     constants.SeverityWarning,
		})
	}
	return out
}

func typeConsistent(declared constants.FieldType, value any) bool {
	switch declared {
	case constants.FieldNumber, constants.FieldCurrency, constants.FieldPercentage:
		_, ok := value.(float64)
		return ok
	case constants.FieldBoolean:
		_, ok := value.(bool)
		return ok
	case constants.FieldDate:
		_, ok := value.(time.Time)
		return ok
	default:
		_, ok := value.(string)
		return ok
	}
}

func asNumber(value any, raw string) (float64, bool) {
	if v, ok := value.(float64); ok {
		return v, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
