package constants

import "strings"

// FieldType declares how an extracted raw string is coerced before storage.
type FieldType string

const (
	FieldString     FieldType = "STRING"
	FieldNumber     FieldType = "NUMBER"
	FieldCurrency   FieldType = "CURRENCY"
	FieldPercentage FieldType = "PERCENTAGE"
	FieldDate       FieldType = "DATE"
	FieldBoolean    FieldType = "BOOLEAN"
	FieldEmail      FieldType = "EMAIL"
	FieldPhone      FieldType = "PHONE"
)

// ExtractionMethod names one of the independent field-extraction strategies.
type ExtractionMethod string

const (
	MethodRegex     ExtractionMethod = "REGEX"
	MethodOCRRegion ExtractionMethod = "OCR_REGION"
	MethodNLP       ExtractionMethod = "NLP"
	MethodMLModel   ExtractionMethod = "ML_MODEL"
)

// PatternType tags a template pattern with the matcher that scores it.
type PatternType string

const (
	PatternLayout  PatternType = "LAYOUT"
	PatternKeyword PatternType = "KEYWORD"
	PatternMLModel PatternType = "ML_MODEL"
)

func ParseFieldType(s string) FieldType {
	switch FieldType(strings.ToUpper(strings.TrimSpace(s))) {
	case FieldNumber:
		return FieldNumber
	case FieldCurrency:
		return FieldCurrency
	case FieldPercentage:
		return FieldPercentage
	case FieldDate:
		return FieldDate
	case FieldBoolean:
		return FieldBoolean
	case FieldEmail:
		return FieldEmail
	case FieldPhone:
		return FieldPhone
	default:
		return FieldString
	}
}
