package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/ocr"
)

type fakeEntities struct {
	entities []Entity
	err      error
}

func (f fakeEntities) Extract(context.Context, string, string) ([]Entity, error) {
	return f.entities, f.err
}

type fakeModel struct {
	pred ModelPrediction
	err  error
}

func (f fakeModel) Predict(context.Context, string, string) (ModelPrediction, error) {
	return f.pred, f.err
}

func textPages(lines ...string) []ocr.Result {
	p := ocr.Result{Page: 1, PageHeight: 1100}
	for i, txt := range lines {
		p.Lines = append(p.Lines, ocr.Line{
			Text:       txt,
			Confidence: 0.9,
			Box:        ocr.BoundingBox{X: 100, Y: float64(100 + i*30), Width: 400, Height: 20},
		})
	}
	p.Text = ocr.Normalize(joinLines(lines))
	return []ocr.Result{p}
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func TestRegexCurrencyExtraction(t *testing.T) {
	// Rule {CURRENCY, "\$[\d,]+\.\d{2}"} against "Total: $12,345.67" must
	// yield 12345.67 from REGEX at 0.9.
	e := NewExtractor(Config{}, nil, nil, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "total",
		FieldType: constants.FieldCurrency,
		Method:    constants.MethodRegex,
		Pattern:   `\$[\d,]+\.\d{2}`,
	}}

	res := e.Extract(context.Background(), textPages("Total: $12,345.67"), rules, "en")
	f := res.FieldByName("total")
	if f == nil {
		t.Fatal("total not extracted")
	}
	if f.Source != constants.MethodRegex {
		t.Fatalf("wrong source: %s", f.Source)
	}
	if f.Confidence != 0.9 {
		t.Fatalf("regex confidence must be fixed at 0.9, got %f", f.Confidence)
	}
	if v, ok := f.Value.(float64); !ok || v != 12345.67 {
		t.Fatalf("expected 12345.67, got %#v", f.Value)
	}
	if f.Box == nil {
		t.Fatal("regex candidate must carry the line bounding box")
	}
}

func TestRegionExtraction(t *testing.T) {
	pages := []ocr.Result{{
		Page: 1, PageHeight: 1100,
		Regions: []ocr.Region{
			{Text: "outside", Confidence: 0.9, Box: ocr.BoundingBox{X: 600, Y: 600, Width: 100, Height: 40}},
			{Text: "ACME Clearing LLC", Confidence: 0.82, Box: ocr.BoundingBox{X: 110, Y: 110, Width: 180, Height: 40}},
		},
	}}
	e := NewExtractor(Config{}, nil, nil, nil)
	rules := []entity.ExtractionRule{{
		FieldName:   "broker",
		FieldType:   constants.FieldString,
		Method:      constants.MethodOCRRegion,
		Coordinates: &ocr.BoundingBox{X: 100, Y: 100, Width: 300, Height: 60},
	}}

	res := e.Extract(context.Background(), pages, rules, "en")
	f := res.FieldByName("broker")
	if f == nil || f.Raw != "ACME Clearing LLC" {
		t.Fatalf("expected contained region text, got %+v", f)
	}
	if f.Confidence != 0.82 {
		t.Fatalf("region strategy must use the region's OCR confidence, got %f", f.Confidence)
	}
}

func TestMergePrefersHigherConfidence(t *testing.T) {
	// REGEX (0.9) and an ML model (0.95) both produce the amount; ML wins,
	// the regex value is demoted to alternatives.
	models := NewModelRegistry()
	models.Register("amount", fakeModel{pred: ModelPrediction{Value: "99.10", Confidence: 0.95}})
	e := NewExtractor(Config{}, nil, models, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "amount",
		FieldType: constants.FieldCurrency,
		Method:    constants.MethodRegex,
		Pattern:   `\$[\d,]+\.\d{2}`,
	}}

	res := e.Extract(context.Background(), textPages("Amount: $98.10"), rules, "en")
	f := res.FieldByName("amount")
	if f == nil {
		t.Fatal("amount missing")
	}
	if f.Source != constants.MethodMLModel || f.Confidence != 0.95 {
		t.Fatalf("higher-confidence strategy must win: %+v", f)
	}
	if len(f.Alternatives) != 1 || f.Alternatives[0].Source != constants.MethodRegex {
		t.Fatalf("displaced regex candidate must survive as alternative: %+v", f.Alternatives)
	}
}

func TestMergeCommutative(t *testing.T) {
	field := Field{FieldName: "x", FieldType: constants.FieldString}
	a := Candidate{FieldName: "x", Raw: "A", Confidence: 0.8, Source: constants.MethodRegex}
	b := Candidate{FieldName: "x", Raw: "B", Confidence: 0.8, Source: constants.MethodNLP}
	c := Candidate{FieldName: "x", Raw: "C", Confidence: 0.6, Source: constants.MethodMLModel}

	perms := [][]Candidate{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	var winners []Field
	for _, p := range perms {
		winners = append(winners, mergeCandidates(field, p))
	}
	for i := 1; i < len(winners); i++ {
		if winners[i].Raw != winners[0].Raw ||
			winners[i].Confidence != winners[0].Confidence ||
			winners[i].Source != winners[0].Source {
			t.Fatalf("merge winner depends on input order: %+v vs %+v", winners[i], winners[0])
		}
	}
}

func TestConservationOfAlternatives(t *testing.T) {
	// Every strategy's value appears exactly once across winner+alternatives.
	models := NewModelRegistry()
	models.Register(DefaultModelKey, fakeModel{pred: ModelPrediction{Value: "from-ml", Confidence: 0.7}})
	nlp := fakeEntities{entities: []Entity{
		{Text: "from-nlp", Label: "payee", Confidence: 0.8},
	}}
	e := NewExtractor(Config{}, nlp, models, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "payee",
		FieldType: constants.FieldString,
		Method:    constants.MethodRegex,
		Pattern:   `Payee: (\S+)`,
	}}

	res := e.Extract(context.Background(), textPages("Payee: from-regex"), rules, "en")
	f := res.FieldByName("payee")
	if f == nil {
		t.Fatal("payee missing")
	}

	produced := map[string]int{}
	produced[f.Raw]++
	for _, alt := range f.Alternatives {
		produced[alt.Raw]++
	}
	for _, want := range []string{"from-regex", "from-nlp", "from-ml"} {
		if produced[want] != 1 {
			t.Fatalf("value %q must appear exactly once across winner+alternatives: %v", want, produced)
		}
	}
	if len(f.Alternatives)+1 != 3 {
		t.Fatalf("3 strategies produced values; winner+alternatives must total 3, got %d", len(f.Alternatives)+1)
	}
	if f.Source != constants.MethodRegex {
		t.Fatalf("regex (0.9) should win over nlp (0.8) and ml (0.7): %+v", f)
	}
}

func TestStrategyFailureIsRecovered(t *testing.T) {
	nlp := fakeEntities{err: errors.New("nlp service down")}
	e := NewExtractor(Config{}, nlp, nil, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "memo",
		FieldType: constants.FieldString,
		Method:    constants.MethodRegex,
		Pattern:   `Memo: (.+)`,
	}}

	res := e.Extract(context.Background(), textPages("Memo: quarterly dividend"), rules, "en")
	f := res.FieldByName("memo")
	if f == nil || f.Raw != "quarterly dividend" {
		t.Fatalf("regex result must survive an nlp failure: %+v", f)
	}
	if len(res.Errors) == 0 {
		t.Fatal("recovered strategy failure must be recorded")
	}
}

func TestNLPThresholdAndAlternates(t *testing.T) {
	nlp := fakeEntities{entities: []Entity{
		{Text: "low", Label: "issuer", Confidence: 0.4},   // below threshold, dropped
		{Text: "best", Label: "issuer", Confidence: 0.9},
		{Text: "second", Label: "issuer", Confidence: 0.7},
		{Text: "other-label", Label: "venue", Confidence: 0.99},
	}}
	e := NewExtractor(Config{}, nlp, nil, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "issuer",
		FieldType: constants.FieldString,
		Method:    constants.MethodNLP,
	}}

	res := e.Extract(context.Background(), textPages("irrelevant"), rules, "en")
	f := res.FieldByName("issuer")
	if f == nil || f.Raw != "best" {
		t.Fatalf("highest-confidence entity must win: %+v", f)
	}
	if len(f.Alternatives) != 1 || f.Alternatives[0].Raw != "second" {
		t.Fatalf("sub-threshold and wrong-label entities must be excluded: %+v", f.Alternatives)
	}
}

func TestDefaultFieldSet(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil, nil)
	res := e.Extract(context.Background(), textPages(
		"Date: 2026-03-15",
		"Total due $1,200.00",
		"Contact: ops@example.com",
	), nil, "en")

	if f := res.FieldByName("date"); f == nil || f.Raw != "2026-03-15" {
		t.Fatalf("default date rule failed: %+v", f)
	}
	if f := res.FieldByName("amount"); f == nil {
		t.Fatal("default amount rule failed")
	} else if v, ok := f.Value.(float64); !ok || v != 1200.0 {
		t.Fatalf("amount coercion failed: %#v", f.Value)
	}
	if f := res.FieldByName("email"); f == nil || f.Raw != "ops@example.com" {
		t.Fatalf("default email rule failed: %+v", f)
	}
	// NLP-backed defaults exist but stay empty without a collaborator.
	if f := res.FieldByName("person"); f == nil || f.Raw != "" {
		t.Fatalf("person should be present and empty: %+v", f)
	}
}

func TestCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		ft   constants.FieldType
		want any
	}{
		{"$12,345.67", constants.FieldCurrency, 12345.67},
		{"-42", constants.FieldNumber, -42.0},
		{"12.5%", constants.FieldPercentage, 0.125},
		{"yes", constants.FieldBoolean, true},
		{"No", constants.FieldBoolean, false},
		{"maybe", constants.FieldBoolean, nil},
		{"  padded  ", constants.FieldString, "padded"},
		{"not a date", constants.FieldDate, nil},
		{"garbage", constants.FieldNumber, nil},
	}
	for _, tc := range cases {
		got := coerceValue(tc.raw, tc.ft)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("coerce(%q, %s) = %#v, want nil", tc.raw, tc.ft, got)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("coerce(%q, %s) = %#v, want %#v", tc.raw, tc.ft, got, tc.want)
		}
	}

	if v := coerceValue("01/15/2026", constants.FieldDate); v == nil {
		t.Fatal("US date layout must parse")
	}
}

func TestPostProcessDemotesRawValue(t *testing.T) {
	e := NewExtractor(Config{PostProcess: true}, nil, nil, nil)
	rules := []entity.ExtractionRule{{
		FieldName: "trade_date",
		FieldType: constants.FieldDate,
		Method:    constants.MethodRegex,
		Pattern:   `\d{1,2}/\d{1,2}/\d{4}`,
	}}

	res := e.Extract(context.Background(), textPages("Trade Date 01/15/2026"), rules, "en")
	f := res.FieldByName("trade_date")
	if f == nil {
		t.Fatal("trade_date missing")
	}
	if f.Raw != "2026-01-15" {
		t.Fatalf("normalizer should rewrite to ISO form, got %q", f.Raw)
	}
	if len(f.Alternatives) == 0 || f.Alternatives[0].Raw != "01/15/2026" {
		t.Fatalf("original raw value must be demoted to alternatives: %+v", f.Alternatives)
	}
	if f.Confidence <= 0.9 || f.Confidence > 1.0 {
		t.Fatalf("confidence must be boosted but capped: %f", f.Confidence)
	}
}

func TestUnknownMethodResolution(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil, nil)
	if _, err := e.Resolve("TAROT"); err == nil {
		t.Fatal("unknown extraction method must resolve to an error")
	}
	if s, err := e.Resolve(constants.MethodRegex); err != nil || s.Method() != constants.MethodRegex {
		t.Fatalf("known method must resolve: %v", err)
	}
}
