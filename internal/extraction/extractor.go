package extraction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/ocr"
)

// Config holds behavior flags for the extraction stage.
type Config struct {
	PostProcess bool // run field normalizers after merging
}

// Extractor runs every applicable strategy per extraction rule and merges
// the candidates into typed fields.
type Extractor struct {
	logger     *slog.Logger
	cfg        Config
	strategies map[constants.ExtractionMethod]Strategy
	order      []constants.ExtractionMethod
}

// NewExtractor wires the standard strategy table. The NLP and ML
// collaborators are optional; their strategies simply never apply when nil.
func NewExtractor(cfg Config, entities EntityExtractor, models *ModelRegistry, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		logger:     logger,
		cfg:        cfg,
		strategies: map[constants.ExtractionMethod]Strategy{},
	}
	for _, s := range []Strategy{
		regexStrategy{},
		regionStrategy{},
		nlpStrategy{entities: entities},
		mlStrategy{models: models},
	} {
		e.strategies[s.Method()] = s
		e.order = append(e.order, s.Method())
	}
	return e
}

// Resolve returns the strategy registered for a method; unknown methods are
// an explicit error.
func (e *Extractor) Resolve(method constants.ExtractionMethod) (Strategy, error) {
	s, ok := e.strategies[method]
	if !ok {
		return nil, fmt.Errorf("unknown extraction method %q", method)
	}
	return s, nil
}

// Extract derives typed fields from the OCR pages. When rules is empty the
// built-in default field set is used. A single strategy failure is recorded
// and skipped; extraction always returns a best-effort result.
func (e *Extractor) Extract(ctx context.Context, pages []ocr.Result, rules []entity.ExtractionRule, language string) Result {
	if len(rules) == 0 {
		rules = DefaultFieldRules()
	}

	var res Result
	seen := map[string]bool{}
	for _, rule := range rules {
		if seen[rule.FieldName] {
			continue // one merged field per name
		}
		seen[rule.FieldName] = true
		res.Fields = append(res.Fields, e.extractField(ctx, rule, pages, language, &res))
	}
	e.logger.Info("field extraction complete", "fields", len(res.Fields), "errors", len(res.Errors))
	return res
}

func (e *Extractor) extractField(ctx context.Context, rule entity.ExtractionRule, pages []ocr.Result, language string, res *Result) Field {
	field := Field{
		FieldName: rule.FieldName,
		FieldType: rule.FieldType,
	}

	var candidates []Candidate
	for _, method := range e.methodsFor(rule) {
		s := e.strategies[method]
		if !s.Applicable(rule) {
			continue
		}
		cands, err := s.Extract(ctx, rule, pages, language)
		if err != nil {
			// recovered: log, record, keep going with other strategies
			e.logger.Warn("extraction strategy failed",
				"field", rule.FieldName, "method", string(method), "error", err)
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		candidates = append(candidates, cands...)
	}

	for i := range candidates {
		candidates[i].Value = coerceValue(candidates[i].Raw, rule.FieldType)
	}

	field = mergeCandidates(field, candidates)
	if e.cfg.PostProcess && field.Raw != "" {
		field = normalizeField(field)
	}
	return field
}

// methodsFor returns the strategy order for a rule: the declared method
// first, then the remaining strategies as corroborating evidence.
func (e *Extractor) methodsFor(rule entity.ExtractionRule) []constants.ExtractionMethod {
	if rule.Method == "" {
		return e.order
	}
	out := []constants.ExtractionMethod{rule.Method}
	for _, m := range e.order {
		if m != rule.Method {
			out = append(out, m)
		}
	}
	return out
}

// DefaultFieldRules is the built-in field set applied when a document has no
// recognized template.
func DefaultFieldRules() []entity.ExtractionRule {
	return []entity.ExtractionRule{
		{FieldName: "date", FieldType: constants.FieldDate, Method: constants.MethodRegex,
			Pattern: `\b(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4}|[A-Z][a-z]+ \d{1,2}, \d{4})\b`},
		{FieldName: "amount", FieldType: constants.FieldCurrency, Method: constants.MethodRegex,
			Pattern: `[$£€]\s?[\d,]+\.\d{2}`},
		{FieldName: "person", FieldType: constants.FieldString, Method: constants.MethodNLP, Pattern: "PERSON"},
		{FieldName: "organization", FieldType: constants.FieldString, Method: constants.MethodNLP, Pattern: "ORG(ANIZATION)?"},
		{FieldName: "location", FieldType: constants.FieldString, Method: constants.MethodNLP, Pattern: "LOC(ATION)?|GPE"},
		{FieldName: "email", FieldType: constants.FieldEmail, Method: constants.MethodRegex,
			Pattern: `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`},
		{FieldName: "phone", FieldType: constants.FieldPhone, Method: constants.MethodRegex,
			Pattern: `\+?\d{1,2}[\s.\-]?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`},
	}
}
