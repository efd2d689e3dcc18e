package filing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

// resolvePath looks up a dotted condition path against the document and the
// extraction output. Supported roots: document.*, metadata.*, extracted.*.
// The second return is false when the path points at nothing.
func resolvePath(path string, doc *entity.Document, extracted *extraction.Result) (any, bool) {
	root, rest, ok := strings.Cut(path, ".")
	if !ok {
		return nil, false
	}

	switch root {
	case "document":
		return documentField(doc, rest)

	case "metadata":
		if doc == nil || doc.Metadata == nil {
			return nil, false
		}
		v, ok := doc.Metadata[rest]
		return v, ok

	case "extracted":
		if extracted == nil {
			return nil, false
		}
		f := extracted.FieldByName(rest)
		if f == nil {
			return nil, false
		}
		if f.Value != nil {
			return f.Value, true
		}
		if f.Raw != "" {
			return f.Raw, true
		}
		return nil, false

	default:
		return nil, false
	}
}

func documentField(doc *entity.Document, name string) (any, bool) {
	if doc == nil {
		return nil, false
	}
	switch name {
	case "documentType":
		return string(doc.DocumentType), true
	case "fileName":
		return doc.FileName, true
	case "filePath":
		return doc.FilePath, true
	case "language":
		return doc.Language, true
	case "status":
		return doc.Status, true
	case "classification":
		return string(doc.Classification), true
	case "clientId":
		if doc.ClientID == "" {
			return nil, false
		}
		return doc.ClientID, true
	case "portfolioId":
		if doc.PortfolioID == "" {
			return nil, false
		}
		return doc.PortfolioID, true
	case "tenantId":
		return doc.TenantID.String(), true
	case "id":
		return doc.ID.String(), true
	default:
		return nil, false
	}
}

// evalCondition applies one operator to the resolved value. A missing value
// satisfies nothing except a failed EXISTS.
func evalCondition(cond entity.FilingCondition, value any, present bool) (bool, error) {
	if cond.Operator == entity.OpExists {
		return present, nil
	}
	if !present {
		return false, nil
	}

	switch cond.Operator {
	case entity.OpEquals:
		return stringCompare(value, cond, strings.EqualFold, func(a, b string) bool { return a == b }), nil
	case entity.OpContains:
		return stringCompare(value, cond, containsFold, strings.Contains), nil
	case entity.OpStartsWith:
		return stringCompare(value, cond, hasPrefixFold, strings.HasPrefix), nil
	case entity.OpEndsWith:
		return stringCompare(value, cond, hasSuffixFold, strings.HasSuffix), nil

	case entity.OpRegex:
		pattern := cond.Value
		if !cond.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("bad condition regex %q: %w", cond.Value, err)
		}
		return re.MatchString(valueString(value)), nil

	case entity.OpGreaterThan, entity.OpLessThan:
		lhs, ok := numericValue(value)
		if !ok {
			return false, nil
		}
		rhs, err := strconv.ParseFloat(strings.TrimSpace(cond.Value), 64)
		if err != nil {
			return false, fmt.Errorf("condition value %q is not numeric: %w", cond.Value, err)
		}
		if cond.Operator == entity.OpGreaterThan {
			return lhs > rhs, nil
		}
		return lhs < rhs, nil

	default:
		return false, fmt.Errorf("unknown condition operator %q", cond.Operator)
	}
}

func stringCompare(value any, cond entity.FilingCondition, fold, exact func(a, b string) bool) bool {
	s := valueString(value)
	if cond.CaseSensitive {
		return exact(s, cond.Value)
	}
	return fold(s, cond.Value)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}

func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
