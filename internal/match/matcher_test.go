package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/keywords"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/structure"
)

type fakeClassifier struct {
	prediction Prediction
	err        error
}

func (f fakeClassifier) Classify(_ context.Context, _ Features) (Prediction, error) {
	return f.prediction, f.err
}

func tpl(name string, dt constants.DocumentType, patterns ...entity.TemplatePattern) *entity.DocumentTemplate {
	return &entity.DocumentTemplate{
		ID:           uuid.New(),
		Name:         name,
		DocumentType: dt,
		Language:     "en",
		Patterns:     patterns,
		IsActive:     true,
	}
}

func kwMatches(terms ...string) []keywords.Match {
	out := make([]keywords.Match, len(terms))
	for i, t := range terms {
		out[i] = keywords.Match{Keyword: t, Confidence: 0.8}
	}
	return out
}

func TestScenarioTradeConfirmation(t *testing.T) {
	// OCR text containing a TRADE CONFIRMATION header plus a table must rank
	// the trade-confirmation template first with HAS_TABLE satisfied.
	an := structure.NewAnalyzer(nil)
	var lines []ocr.Line
	lines = append(lines, ocr.Line{Text: "TRADE CONFIRMATION", Box: ocr.BoundingBox{X: 100, Y: 40, Width: 400, Height: 20}})
	ys := []float64{300, 330, 360, 390}
	for _, y := range ys {
		for col, txt := range []string{"AAPL", "100", "15,023.50"} {
			lines = append(lines, ocr.Line{Text: txt, Box: ocr.BoundingBox{X: float64(100 + col*200), Y: y, Width: 90, Height: 18}})
		}
	}
	pages := []ocr.Result{{Page: 1, PageWidth: 850, PageHeight: 1100, Lines: lines}}
	docStructure := an.Analyze(pages)
	if !docStructure.Has(structure.FeatureTable) {
		t.Fatal("fixture must produce a HAS_TABLE structure")
	}

	kws := keywords.NewExtractor(nil).Extract(pages, "en")

	candidates := []*entity.DocumentTemplate{
		tpl("statement-v1", constants.Statement,
			entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5},
			entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "account statement", Weight: 1.0},
		),
		tpl("trade-confirmation-v1", constants.TradeConfirmation,
			entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.6},
			entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_HEADER", Weight: 0.4},
			entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "trade confirmation", Weight: 1.0},
		),
	}

	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), docStructure, kws, candidates, FeaturesFrom(pages), "")

	if res.Best == nil {
		t.Fatal("expected a best match")
	}
	if res.Best.TemplateName != "trade-confirmation-v1" {
		t.Fatalf("wrong best template: %s (scores %+v)", res.Best.TemplateName, res.Scores)
	}
	if res.Confidence <= 0 {
		t.Fatalf("confidence must be positive, got %f", res.Confidence)
	}
}

func TestCombinationWeights(t *testing.T) {
	// One layout pattern fully matched, no keywords, no classifier:
	// total = 0.3*1.0.
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	candidates := []*entity.DocumentTemplate{
		tpl("t", constants.Statement,
			entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0}),
	}
	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), docStructure, nil, candidates, Features{}, "")

	if got := res.Best.TotalScore; got != 0.3 {
		t.Fatalf("expected 0.3, got %f", got)
	}
}

func TestConfidenceMonotonicity(t *testing.T) {
	// Raising the keyword sub-score while holding layout/ML fixed must never
	// lower the total.
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	template := tpl("t", constants.Statement,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5},
		entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "statement", Weight: 1.0},
	)
	m := NewMatcher(nil, nil)

	prev := -1.0
	for hits := 0; hits <= 4; hits++ {
		var kws []keywords.Match
		for i := 0; i < hits; i++ {
			kws = append(kws, keywords.Match{Keyword: "statement"})
		}
		// pad to a fixed total so the ratio grows with hits
		for len(kws) < 4 {
			kws = append(kws, keywords.Match{Keyword: "unrelated"})
		}
		res := m.Recognize(context.Background(), docStructure, kws, []*entity.DocumentTemplate{template}, Features{}, "")
		if res.Best.TotalScore < prev {
			t.Fatalf("total decreased when keyword evidence grew: hits=%d %f < %f", hits, res.Best.TotalScore, prev)
		}
		prev = res.Best.TotalScore
	}
}

func TestStableTieBreak(t *testing.T) {
	// Two templates with identical evidence keep their input order.
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	first := tpl("first", constants.Statement,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0})
	second := tpl("second", constants.Invoice,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0})

	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{first, second}, Features{}, "")

	if res.Scores[0].TemplateName != "first" || res.Scores[1].TemplateName != "second" {
		t.Fatalf("tie must preserve input order: %+v", res.Scores)
	}

	// And reversed input reverses the winner.
	res = m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{second, first}, Features{}, "")
	if res.Scores[0].TemplateName != "second" {
		t.Fatalf("tie must preserve reversed input order: %+v", res.Scores)
	}
}

func TestExpectedTypeBoostIsClamped(t *testing.T) {
	docStructure := structure.DocumentStructure{
		Tables:  []structure.LayoutFeature{{Type: structure.FeatureTable}},
		Headers: []structure.LayoutFeature{{Type: structure.FeatureHeader}},
	}
	template := tpl("t", constants.TradeConfirmation,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0},
		entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "trade confirmation", Weight: 1.0},
	)
	cls := fakeClassifier{prediction: Prediction{DocumentType: constants.TradeConfirmation, Confidence: 1.0}}
	m := NewMatcher(cls, nil)

	kws := kwMatches("trade confirmation", "trade confirmation")
	res := m.Recognize(context.Background(), docStructure, kws, []*entity.DocumentTemplate{template}, Features{}, constants.TradeConfirmation)

	if res.Best.TotalScore > 1.0 {
		t.Fatalf("boosted score must be clamped to 1.0, got %f", res.Best.TotalScore)
	}

	// The boost must still help: the same evidence without the expected type
	// scores strictly less than with it (until the clamp kicks in).
	weak := tpl("weak", constants.TradeConfirmation,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5})
	base := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{weak}, Features{}, "")
	boosted := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{weak}, Features{}, constants.TradeConfirmation)
	if boosted.Best.TotalScore <= base.Best.TotalScore {
		t.Fatalf("expected-type boost had no effect: %f <= %f", boosted.Best.TotalScore, base.Best.TotalScore)
	}
}

func TestAllZeroScoresStillReturnBest(t *testing.T) {
	candidates := []*entity.DocumentTemplate{
		tpl("a", constants.Statement, entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0}),
		tpl("b", constants.Invoice, entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "invoice", Weight: 1.0}),
	}
	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), structure.DocumentStructure{}, nil, candidates, Features{}, "")

	if res.Best == nil {
		t.Fatal("best must be index 0 even when every score is zero")
	}
	if res.Best.TemplateName != "a" {
		t.Fatalf("zero-score best must keep input order, got %s", res.Best.TemplateName)
	}
	if res.Confidence != 0 {
		t.Fatalf("confidence must be 0 for an unmatched document, got %f", res.Confidence)
	}
}

func TestEmptyCandidateList(t *testing.T) {
	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), structure.DocumentStructure{}, nil, nil, Features{}, "")
	if res.Best != nil || res.Confidence != 0 {
		t.Fatalf("no candidates must produce no best match: %+v", res)
	}
}

func TestClassifierFailureDegrades(t *testing.T) {
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	template := tpl("t", constants.Statement,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0})
	m := NewMatcher(fakeClassifier{err: errors.New("model offline")}, nil)

	res := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{template}, Features{}, "")
	if res.Best == nil || res.Best.TotalScore != 0.3 {
		t.Fatalf("matching must degrade to layout evidence on classifier failure: %+v", res.Best)
	}
}

func TestRequiredPatternPenalty(t *testing.T) {
	// A missing required pattern must cost more than the same pattern being
	// merely optional and absent.
	optional := tpl("optional", constants.Statement,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5},
		entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "statement", Weight: 0.5, IsRequired: false},
	)
	required := tpl("required", constants.Statement,
		entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5},
		entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "statement", Weight: 0.5, IsRequired: true},
	)
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	m := NewMatcher(nil, nil)

	resOpt := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{optional}, Features{}, "")
	resReq := m.Recognize(context.Background(), docStructure, nil, []*entity.DocumentTemplate{required}, Features{}, "")
	if resReq.Best.TotalScore >= resOpt.Best.TotalScore {
		t.Fatalf("missing required pattern must be penalized: %f >= %f",
			resReq.Best.TotalScore, resOpt.Best.TotalScore)
	}
}

func TestClassificationScores(t *testing.T) {
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	candidates := []*entity.DocumentTemplate{
		tpl("stmt-a", constants.Statement, entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0}),
		tpl("stmt-b", constants.Statement, entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 0.5}),
		tpl("inv", constants.Invoice, entity.TemplatePattern{Type: constants.PatternKeyword, Pattern: "invoice", Weight: 1.0}),
	}
	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), docStructure, nil, candidates, Features{}, "")

	if got := res.ClassificationScores[constants.Statement]; got != 0.3 {
		t.Fatalf("statement classification score should be max of its templates (0.3), got %f", got)
	}
	if got, ok := res.ClassificationScores[constants.Invoice]; !ok || got != 0 {
		t.Fatalf("zero-scoring type must still appear with score 0, got %f (present=%t)", got, ok)
	}
}

func TestAlternativesCappedAtThree(t *testing.T) {
	docStructure := structure.DocumentStructure{Tables: []structure.LayoutFeature{{Type: structure.FeatureTable}}}
	var candidates []*entity.DocumentTemplate
	for i := 0; i < 6; i++ {
		candidates = append(candidates, tpl("t", constants.Statement,
			entity.TemplatePattern{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0}))
	}
	m := NewMatcher(nil, nil)
	res := m.Recognize(context.Background(), docStructure, nil, candidates, Features{}, "")
	if len(res.Alternatives) != 3 {
		t.Fatalf("alternatives must cap at 3, got %d", len(res.Alternatives))
	}
}
