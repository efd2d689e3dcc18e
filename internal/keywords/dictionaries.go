package keywords

import "github.com/docuvault/docintel/constants"

// defaultDictionaries holds the built-in financial-document vocabularies.
// Weights reflect how strongly a term identifies its document type.
var defaultDictionaries = map[constants.DocumentType][]Keyword{
	constants.Statement: {
		{Term: "account statement", Weight: 0.9},
		{Term: "statement period", Weight: 0.85},
		{Term: "opening balance", Weight: 0.8},
		{Term: "closing balance", Weight: 0.8},
		{Term: "beginning balance", Weight: 0.75},
		{Term: "ending balance", Weight: 0.75},
		{Term: "statement", Weight: 0.5},
		{Term: "portfolio value", Weight: 0.6},
		{Term: "account summary", Weight: 0.6},
	},
	constants.TradeConfirmation: {
		{Term: "trade confirmation", Weight: 0.95},
		{Term: "confirmation", Weight: 0.5},
		{Term: "trade date", Weight: 0.8},
		{Term: "settlement date", Weight: 0.8},
		{Term: "execution", Weight: 0.6},
		{Term: "bought", Weight: 0.55},
		{Term: "sold", Weight: 0.55},
		{Term: "cusip", Weight: 0.7},
		{Term: "isin", Weight: 0.7},
		{Term: "commission", Weight: 0.6},
	},
	constants.Prospectus: {
		{Term: "prospectus", Weight: 0.95},
		{Term: "offering", Weight: 0.6},
		{Term: "underwriter", Weight: 0.7},
		{Term: "risk factors", Weight: 0.75},
		{Term: "securities and exchange commission", Weight: 0.7},
		{Term: "fund objective", Weight: 0.65},
		{Term: "expense ratio", Weight: 0.65},
	},
	constants.Invoice: {
		{Term: "invoice", Weight: 0.9},
		{Term: "invoice number", Weight: 0.85},
		{Term: "amount due", Weight: 0.8},
		{Term: "due date", Weight: 0.7},
		{Term: "bill to", Weight: 0.7},
		{Term: "payment terms", Weight: 0.65},
		{Term: "subtotal", Weight: 0.55},
		{Term: "remit", Weight: 0.6},
	},
	constants.TaxDocument: {
		{Term: "form 1099", Weight: 0.9},
		{Term: "form w-2", Weight: 0.9},
		{Term: "tax year", Weight: 0.8},
		{Term: "taxable income", Weight: 0.75},
		{Term: "withholding", Weight: 0.7},
		{Term: "internal revenue service", Weight: 0.75},
	},
	constants.Contract: {
		{Term: "agreement", Weight: 0.6},
		{Term: "hereinafter", Weight: 0.7},
		{Term: "whereas", Weight: 0.65},
		{Term: "party of the first part", Weight: 0.75},
		{Term: "terms and conditions", Weight: 0.6},
		{Term: "governing law", Weight: 0.7},
	},
	constants.Correspondence: {
		{Term: "dear", Weight: 0.5},
		{Term: "sincerely", Weight: 0.55},
		{Term: "regards", Weight: 0.5},
		{Term: "thank you for your inquiry", Weight: 0.7},
	},
}
