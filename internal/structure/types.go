package structure

import "github.com/docuvault/docintel/internal/ocr"

// FeatureType labels one detected layout element.
type FeatureType string

const (
	FeatureHeader    FeatureType = "HEADER"
	FeatureFooter    FeatureType = "FOOTER"
	FeatureTable     FeatureType = "TABLE"
	FeatureFormField FeatureType = "FORM_FIELD"
	FeatureSignature FeatureType = "SIGNATURE"
	FeatureLogo      FeatureType = "LOGO"
	FeatureBarcode   FeatureType = "BARCODE"
	FeatureTextBlock FeatureType = "TEXT_BLOCK"
)

// LayoutFeature is one detected element with its location and confidence.
type LayoutFeature struct {
	Type       FeatureType     `json:"type"`
	Box        ocr.BoundingBox `json:"bounding_box"`
	Confidence float64         `json:"confidence"`
	Text       string          `json:"text,omitempty"`
	Page       int             `json:"page"`
}

// DocumentStructure buckets the layout features found across all pages of a
// document. Derived and transient; recomputed each run, never persisted.
type DocumentStructure struct {
	Headers    []LayoutFeature `json:"headers"`
	Footers    []LayoutFeature `json:"footers"`
	Tables     []LayoutFeature `json:"tables"`
	FormFields []LayoutFeature `json:"form_fields"`
	Signatures []LayoutFeature `json:"signatures"`
	Logos      []LayoutFeature `json:"logos"`
	Barcodes   []LayoutFeature `json:"barcodes"`
	TextBlocks []LayoutFeature `json:"text_blocks"`
}

// Has reports whether the bucket for t is non-empty. Template layout
// patterns query structures through this.
func (s DocumentStructure) Has(t FeatureType) bool {
	return len(s.bucket(t)) > 0
}

// Count returns the number of features of type t.
func (s DocumentStructure) Count(t FeatureType) int {
	return len(s.bucket(t))
}

func (s DocumentStructure) bucket(t FeatureType) []LayoutFeature {
	switch t {
	case FeatureHeader:
		return s.Headers
	case FeatureFooter:
		return s.Footers
	case FeatureTable:
		return s.Tables
	case FeatureFormField:
		return s.FormFields
	case FeatureSignature:
		return s.Signatures
	case FeatureLogo:
		return s.Logos
	case FeatureBarcode:
		return s.Barcodes
	case FeatureTextBlock:
		return s.TextBlocks
	default:
		return nil
	}
}
