package match

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/keywords"
	"github.com/docuvault/docintel/internal/structure"
)

// requiredPenaltyFactor scales the weight of a missing required pattern into
// the score penalty.
const requiredPenaltyFactor = 0.5

// Matcher ranks candidate templates against document evidence.
type Matcher struct {
	classifier Classifier
	logger     *slog.Logger
}

func NewMatcher(classifier Classifier, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{classifier: classifier, logger: logger}
}

// Recognize scores every candidate template and returns the ranked result.
// expectedType, when non-empty, boosts matching templates by 1.2x (clamped
// to 1.0). The classifier is optional evidence: its failure is logged and
// matching degrades to layout+keyword scores.
func (m *Matcher) Recognize(
	ctx context.Context,
	docStructure structure.DocumentStructure,
	keywordMatches []keywords.Match,
	candidates []*entity.DocumentTemplate,
	features Features,
	expectedType constants.DocumentType,
) RecognitionResult {
	var prediction Prediction
	if m.classifier != nil {
		p, err := m.classifier.Classify(ctx, features)
		if err != nil {
			m.logger.Warn("classifier unavailable, scoring without ML evidence", "error", err)
		} else {
			prediction = p
		}
	}

	scores := make([]TemplateScore, 0, len(candidates))
	for _, tpl := range candidates {
		scores = append(scores, m.score(tpl, docStructure, keywordMatches, prediction, features, expectedType))
	}

	// Stable sort: equal totals keep candidate input order. Deliberate,
	// testable tie-break policy.
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].TotalScore > scores[j].TotalScore })

	result := RecognitionResult{
		Scores:               scores,
		ClassificationScores: classificationScores(scores),
	}
	if len(scores) > 0 {
		result.Best = &scores[0]
		result.Confidence = scores[0].TotalScore
		for _, tpl := range candidates {
			if tpl.ID == scores[0].TemplateID {
				result.BestTemplate = tpl
				break
			}
		}
		n := len(scores) - 1
		if n > 3 {
			n = 3
		}
		result.Alternatives = scores[1 : 1+n]
	}

	m.logger.Info("template recognition complete",
		"candidates", len(candidates),
		"confidence", result.Confidence,
		"expected_type", string(expectedType))
	return result
}

func (m *Matcher) score(
	tpl *entity.DocumentTemplate,
	docStructure structure.DocumentStructure,
	keywordMatches []keywords.Match,
	prediction Prediction,
	features Features,
	expectedType constants.DocumentType,
) TemplateScore {
	s := TemplateScore{
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		DocumentType:    tpl.DocumentType,
		ConfidenceScore: features.MeanConfidence,
	}

	mlBase := prediction.ScoreFor(tpl.DocumentType)
	var mlWeighted float64
	var hasMLPattern bool

	for _, p := range tpl.Patterns {
		switch p.Type {
		case constants.PatternLayout:
			if layoutPatternMatches(p.Pattern, docStructure) {
				s.LayoutScore += p.Weight
			} else if p.IsRequired {
				s.Penalty += p.Weight * requiredPenaltyFactor
			}
		case constants.PatternKeyword:
			n := keywords.CountFor(keywordMatches, p.Pattern)
			if n > 0 && len(keywordMatches) > 0 {
				s.KeywordScore += float64(n) / float64(len(keywordMatches)) * p.Weight
			} else if p.IsRequired {
				s.Penalty += p.Weight * requiredPenaltyFactor
			}
		case constants.PatternMLModel:
			hasMLPattern = true
			mlWeighted += mlBase * p.Weight
		}
	}

	if hasMLPattern {
		s.ContentScore = clamp01(mlWeighted)
	} else {
		s.ContentScore = mlBase
	}
	s.LayoutScore = clamp01(s.LayoutScore)
	s.KeywordScore = clamp01(s.KeywordScore)

	total := layoutWeight*s.LayoutScore + keywordWeight*s.KeywordScore + contentWeight*s.ContentScore
	total -= s.Penalty
	if total < 0 {
		total = 0
	}
	if expectedType != "" && tpl.DocumentType == expectedType {
		total *= expectedTypeBoost
	}
	s.TotalScore = clamp01(total)
	return s
}

// layoutPatternMatches interprets layout pattern strings of the form
// HAS_<FEATURE> / NO_<FEATURE>, e.g. HAS_TABLE, NO_SIGNATURE.
func layoutPatternMatches(pattern string, s structure.DocumentStructure) bool {
	p := strings.ToUpper(strings.TrimSpace(pattern))
	switch {
	case strings.HasPrefix(p, "HAS_"):
		return s.Has(structure.FeatureType(strings.TrimPrefix(p, "HAS_")))
	case strings.HasPrefix(p, "NO_"):
		return !s.Has(structure.FeatureType(strings.TrimPrefix(p, "NO_")))
	default:
		return false
	}
}

// classificationScores takes the max total per distinct document type.
func classificationScores(scores []TemplateScore) map[constants.DocumentType]float64 {
	if len(scores) == 0 {
		return nil
	}
	out := make(map[constants.DocumentType]float64)
	for _, s := range scores {
		if cur, ok := out[s.DocumentType]; !ok || s.TotalScore > cur {
			out[s.DocumentType] = s.TotalScore
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
