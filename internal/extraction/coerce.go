package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docuvault/docintel/constants"
)

var (
	reNumericNoise = regexp.MustCompile(`[^0-9.\-]`)
	truthyTokens   = map[string]bool{
		"true": true, "yes": true, "y": true, "1": true, "x": true, "checked": true,
	}
	falsyTokens = map[string]bool{
		"false": true, "no": true, "n": true, "0": true, "unchecked": true,
	}
)

// dateLayouts are tried in order before falling back to generic parsing.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02.01.2006",
}

// coerceValue converts raw text per the declared field type. Unparseable
// values yield nil, never an error; the validator reports them downstream.
func coerceValue(raw string, ft constants.FieldType) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch ft {
	case constants.FieldNumber, constants.FieldCurrency:
		return parseNumeric(raw)
	case constants.FieldPercentage:
		if v := parseNumeric(raw); v != nil {
			return v.(float64) / 100.0
		}
		return nil
	case constants.FieldDate:
		return parseDate(raw)
	case constants.FieldBoolean:
		return parseBool(raw)
	case constants.FieldEmail, constants.FieldPhone, constants.FieldString:
		return raw
	default:
		return raw
	}
}

func parseNumeric(raw string) any {
	cleaned := reNumericNoise.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return v
}

func parseDate(raw string) any {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	// generic fallback: RFC3339-ish inputs
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return nil
}

func parseBool(raw string) any {
	token := strings.ToLower(strings.TrimSpace(raw))
	if truthyTokens[token] {
		return true
	}
	if falsyTokens[token] {
		return false
	}
	return nil
}

// inferType guesses the natural type of a coerced value, used by the
// validator's declared-vs-inferred consistency check.
func inferType(v any) constants.FieldType {
	switch v.(type) {
	case float64:
		return constants.FieldNumber
	case bool:
		return constants.FieldBoolean
	case time.Time:
		return constants.FieldDate
	default:
		return constants.FieldString
	}
}
