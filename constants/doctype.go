package constants

import "strings"

// DocumentType is the canonical document category recognized by the pipeline.
type DocumentType string

const (
	Statement         DocumentType = "STATEMENT"
	TradeConfirmation DocumentType = "TRADE_CONFIRMATION"
	Prospectus        DocumentType = "PROSPECTUS"
	Invoice           DocumentType = "INVOICE"
	TaxDocument       DocumentType = "TAX_DOCUMENT"
	Contract          DocumentType = "CONTRACT"
	Correspondence    DocumentType = "CORRESPONDENCE"
	Unknown           DocumentType = "UNKNOWN"
)

var allDocumentTypes = []DocumentType{
	Statement,
	TradeConfirmation,
	Prospectus,
	Invoice,
	TaxDocument,
	Contract,
	Correspondence,
	Unknown,
}

// DocumentTypes returns every known type as strings, for storage enums and
// rule applicability checks.
func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocumentType maps free-form input onto a known type, defaulting to Unknown.
func ParseDocumentType(s string) DocumentType {
	v := DocumentType(strings.ToUpper(strings.TrimSpace(s)))
	for _, dt := range allDocumentTypes {
		if v == dt {
			return dt
		}
	}
	return Unknown
}
