package extraction

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/ocr"
)

const (
	regexConfidence = 0.9
	acceptThreshold = 0.5 // NLP / ML candidates below this are dropped
)

// Strategy is one independent way to derive a field's value. Strategies are
// registered in an explicit table keyed by method; resolving an unknown
// method is an error, never a silent nil.
type Strategy interface {
	Method() constants.ExtractionMethod
	// Applicable reports whether the rule carries what this strategy needs
	// (a pattern, coordinates, ...).
	Applicable(rule entity.ExtractionRule) bool
	Extract(ctx context.Context, rule entity.ExtractionRule, pages []ocr.Result, language string) ([]Candidate, error)
}

// regexStrategy: first match of the rule's pattern against any OCR line,
// fixed confidence.
type regexStrategy struct{}

func (regexStrategy) Method() constants.ExtractionMethod { return constants.MethodRegex }

func (regexStrategy) Applicable(rule entity.ExtractionRule) bool { return rule.Pattern != "" }

func (regexStrategy) Extract(_ context.Context, rule entity.ExtractionRule, pages []ocr.Result, _ string) ([]Candidate, error) {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, fmt.Errorf("field %s: bad pattern: %w", rule.FieldName, err)
	}
	for _, page := range pages {
		for _, ln := range page.Lines {
			m := re.FindStringSubmatch(ln.Text)
			if m == nil {
				continue
			}
			raw := m[0]
			if len(m) > 1 && m[1] != "" {
				raw = m[1]
			}
			box := ln.Box
			return []Candidate{{
				FieldName:  rule.FieldName,
				Raw:        raw,
				Confidence: regexConfidence,
				Source:     constants.MethodRegex,
				Box:        &box,
			}}, nil
		}
	}
	return nil, nil
}

// regionStrategy: first OCR region fully contained in the rule's target
// coordinates; confidence is the region's own OCR confidence.
type regionStrategy struct{}

func (regionStrategy) Method() constants.ExtractionMethod { return constants.MethodOCRRegion }

func (regionStrategy) Applicable(rule entity.ExtractionRule) bool { return rule.Coordinates != nil }

func (regionStrategy) Extract(_ context.Context, rule entity.ExtractionRule, pages []ocr.Result, _ string) ([]Candidate, error) {
	target := *rule.Coordinates
	for _, page := range pages {
		for _, reg := range page.Regions {
			if !target.Contains(reg.Box) {
				continue
			}
			text := strings.TrimSpace(reg.Text)
			if text == "" {
				continue
			}
			box := reg.Box
			return []Candidate{{
				FieldName:  rule.FieldName,
				Raw:        text,
				Confidence: reg.Confidence,
				Source:     constants.MethodOCRRegion,
				Box:        &box,
			}}, nil
		}
	}
	return nil, nil
}

// nlpStrategy: entities whose label matches the field name or the rule's
// pattern; highest confidence first, every accepted entity kept so the merge
// step can demote the rest to alternatives.
type nlpStrategy struct {
	entities EntityExtractor
}

func (nlpStrategy) Method() constants.ExtractionMethod { return constants.MethodNLP }

func (s nlpStrategy) Applicable(entity.ExtractionRule) bool { return s.entities != nil }

func (s nlpStrategy) Extract(ctx context.Context, rule entity.ExtractionRule, pages []ocr.Result, language string) ([]Candidate, error) {
	ents, err := s.entities.Extract(ctx, ocr.JoinText(pages), language)
	if err != nil {
		return nil, fmt.Errorf("field %s: nlp: %w", rule.FieldName, err)
	}

	var labelRe *regexp.Regexp
	if rule.Pattern != "" {
		labelRe, _ = regexp.Compile("(?i)" + rule.Pattern)
	}

	var out []Candidate
	for _, e := range ents {
		if !labelMatches(e.Label, rule.FieldName, labelRe) {
			continue
		}
		if e.Confidence <= acceptThreshold {
			continue
		}
		out = append(out, Candidate{
			FieldName:  rule.FieldName,
			Raw:        e.Text,
			Confidence: e.Confidence,
			Source:     constants.MethodNLP,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out, nil
}

func labelMatches(label, fieldName string, labelRe *regexp.Regexp) bool {
	if strings.EqualFold(label, fieldName) {
		return true
	}
	return labelRe != nil && labelRe.MatchString(label)
}

// mlStrategy: model registry keyed by field name with a default fallback;
// predictions at or below the acceptance threshold are dropped.
type mlStrategy struct {
	models *ModelRegistry
}

func (mlStrategy) Method() constants.ExtractionMethod { return constants.MethodMLModel }

func (s mlStrategy) Applicable(entity.ExtractionRule) bool { return s.models != nil }

func (s mlStrategy) Extract(ctx context.Context, rule entity.ExtractionRule, pages []ocr.Result, _ string) ([]Candidate, error) {
	model, err := s.models.Resolve(rule.FieldName)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", rule.FieldName, err)
	}
	pred, err := model.Predict(ctx, rule.FieldName, ocr.JoinText(pages))
	if err != nil {
		return nil, fmt.Errorf("field %s: ml: %w", rule.FieldName, err)
	}
	if pred.Value == "" || pred.Confidence <= acceptThreshold {
		return nil, nil
	}
	return []Candidate{{
		FieldName:  rule.FieldName,
		Raw:        pred.Value,
		Confidence: pred.Confidence,
		Source:     constants.MethodMLModel,
	}}, nil
}
