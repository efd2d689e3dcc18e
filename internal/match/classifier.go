package match

import (
	"context"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/ocr"
)

// Features are the numeric inputs handed to the ML classifier collaborator.
type Features struct {
	TextLength     int     `json:"text_length"`
	WordCount      int     `json:"word_count"`
	LineCount      int     `json:"line_count"`
	RegionCount    int     `json:"region_count"`
	MeanConfidence float64 `json:"mean_confidence"`
}

// FeaturesFrom derives classifier features from OCR pages.
func FeaturesFrom(pages []ocr.Result) Features {
	words, lines, regions := ocr.Counts(pages)
	return Features{
		TextLength:     len(ocr.JoinText(pages)),
		WordCount:      words,
		LineCount:      lines,
		RegionCount:    regions,
		MeanConfidence: ocr.MeanConfidence(pages),
	}
}

// TypeScore is one (document type, confidence) pair from the classifier.
type TypeScore struct {
	DocumentType constants.DocumentType `json:"document_type"`
	Confidence   float64                `json:"confidence"`
}

// Prediction is the classifier's typed output: a primary call plus ranked
// alternatives.
type Prediction struct {
	DocumentType constants.DocumentType `json:"document_type"`
	Confidence   float64                `json:"confidence"`
	Alternatives []TypeScore            `json:"alternatives,omitempty"`
}

// ScoreFor returns the classifier's confidence that the document is of type
// dt, consulting the primary call first, then alternatives; 0 when unseen.
func (p Prediction) ScoreFor(dt constants.DocumentType) float64 {
	if p.DocumentType == dt {
		return p.Confidence
	}
	for _, alt := range p.Alternatives {
		if alt.DocumentType == dt {
			return alt.Confidence
		}
	}
	return 0
}

// Classifier is the external ML collaborator scoring document types from
// numeric features. Failures degrade template matching to layout+keyword
// evidence only; they never abort the pipeline.
type Classifier interface {
	Classify(ctx context.Context, features Features) (Prediction, error)
}
