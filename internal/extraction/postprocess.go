package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/docuvault/docintel/constants"
)

// postProcessBoost is the confidence bump applied when a normalizer
// improves a value; results are capped at 1.0.
const postProcessBoost = 0.05

var (
	rePhoneNoise = regexp.MustCompile(`[^\d+]`)
	reAmountWS   = regexp.MustCompile(`\s`)
)

// normalizeField re-runs field-specific normalizers. When the normalized raw
// value differs, the original raw value is demoted to alternatives and the
// confidence is slightly boosted.
func normalizeField(f Field) Field {
	var normalized string
	switch f.FieldType {
	case constants.FieldDate:
		normalized = normalizeDate(f.Raw)
	case constants.FieldNumber, constants.FieldCurrency, constants.FieldPercentage:
		normalized = normalizeAmount(f.Raw)
	case constants.FieldPhone:
		normalized = normalizePhone(f.Raw)
	default:
		return f
	}
	if normalized == "" || normalized == f.Raw {
		return f
	}

	f.Alternatives = append([]Alternative{{
		Value:      f.Value,
		Raw:        f.Raw,
		Confidence: f.Confidence,
		Source:     f.Source,
	}}, f.Alternatives...)

	f.Raw = normalized
	f.Value = coerceValue(normalized, f.FieldType)
	f.Confidence = f.Confidence + postProcessBoost
	if f.Confidence > 1.0 {
		f.Confidence = 1.0
	}
	return f
}

// normalizeDate reformats any parseable date as ISO 8601.
func normalizeDate(raw string) string {
	v := parseDate(strings.TrimSpace(raw))
	t, ok := v.(time.Time)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// normalizeAmount strips currency sigils and whitespace, keeping the plain
// decimal form.
func normalizeAmount(raw string) string {
	cleaned := reAmountWS.ReplaceAllString(raw, "")
	cleaned = reNumericNoise.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return ""
	}
	return cleaned
}

// normalizePhone keeps digits and a leading plus.
func normalizePhone(raw string) string {
	lead := ""
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "+") {
		lead = "+"
	}
	digits := rePhoneNoise.ReplaceAllString(trimmed, "")
	digits = strings.TrimPrefix(digits, "+")
	if digits == "" {
		return ""
	}
	return lead + digits
}
