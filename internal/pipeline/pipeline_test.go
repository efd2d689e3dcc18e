package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/events"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/structure"
)

type fakeTemplates struct {
	templates []*entity.DocumentTemplate
	err       error
}

func (f *fakeTemplates) ActiveTemplates(context.Context, string) ([]*entity.DocumentTemplate, error) {
	return f.templates, f.err
}

type fakeRules struct {
	rules []entity.FilingRule
	err   error
}

func (f *fakeRules) ActiveRules(context.Context) ([]entity.FilingRule, error) {
	return f.rules, f.err
}

type memJobStore struct {
	saves []entity.ProcessJob
}

func (m *memJobStore) SaveJob(_ context.Context, job *entity.ProcessJob) error {
	m.saves = append(m.saves, *job)
	return nil
}

type capturePublisher struct {
	events []events.Event
}

func (c *capturePublisher) Publish(_ context.Context, ev events.Event) {
	c.events = append(c.events, ev)
}

func word(text string, x, y float64) ocr.Word {
	return ocr.Word{
		Text:       text,
		Confidence: 0.95,
		Box:        ocr.BoundingBox{X: x, Y: y, Width: 60, Height: 12},
	}
}

func line(text string, y float64) ocr.Line {
	var words []ocr.Word
	x := 50.0
	for _, w := range strings.Fields(text) {
		words = append(words, word(w, x, y))
		x += 70
	}
	return ocr.Line{
		Text:       text,
		Confidence: 0.95,
		Words:      words,
		Box:        ocr.BoundingBox{X: 50, Y: y, Width: x - 50, Height: 12},
	}
}

// cells places each cell on its own line at the same y, the shape table
// detection clusters into one row.
func cells(y float64, texts ...string) []ocr.Line {
	var out []ocr.Line
	x := 50.0
	for _, text := range texts {
		out = append(out, ocr.Line{
			Text:       text,
			Confidence: 0.95,
			Box:        ocr.BoundingBox{X: x, Y: y, Width: 120, Height: 12},
		})
		x += 160
	}
	return out
}

// tradeConfirmationPage builds a realistic one-page trade confirmation:
// a shouting header, a settlement table, and a total line.
func tradeConfirmationPage() ocr.Result {
	lines := []ocr.Line{
		line("TRADE CONFIRMATION", 40),
		line("Account Number: 839-221", 120),
	}
	lines = append(lines, cells(300, "Security", "Quantity", "Price")...)
	lines = append(lines, cells(320, "ACME CORP", "100", "55.00")...)
	lines = append(lines, cells(340, "GLOBEX INC", "200", "12.50")...)
	lines = append(lines, cells(360, "INITECH LLC", "50", "99.00")...)
	lines = append(lines,
		line("Total: $150,000.00", 600),
		line("Page 1 of 1", 940),
	)
	para := ocr.Paragraph{Lines: lines, Box: ocr.BoundingBox{X: 50, Y: 40, Width: 500, Height: 900}}
	region := ocr.Region{Paragraphs: []ocr.Paragraph{para}, Confidence: 0.95, Box: para.Box}
	var text strings.Builder
	for _, l := range lines {
		text.WriteString(l.Text)
		text.WriteString("\n")
	}
	return ocr.Result{
		Page:       1,
		PageWidth:  612,
		PageHeight: 1000,
		Text:       text.String(),
		Confidence: 0.95,
		Lines:      lines,
		Regions:    []ocr.Region{region},
	}
}

func tradeTemplate() *entity.DocumentTemplate {
	return &entity.DocumentTemplate{
		ID:           uuid.New(),
		Name:         "broker-trade-confirmation",
		DocumentType: constants.TradeConfirmation,
		Language:     "eng",
		IsActive:     true,
		Patterns: []entity.TemplatePattern{
			{Type: constants.PatternLayout, Pattern: "HAS_TABLE", Weight: 1.0},
			{Type: constants.PatternKeyword, Pattern: "trade confirmation", Weight: 1.0},
		},
		ExtractionRules: []entity.ExtractionRule{
			{FieldName: "amount", FieldType: constants.FieldCurrency, Method: constants.MethodRegex, Pattern: `\$[\d,]+\.\d{2}`},
			{FieldName: "account", FieldType: constants.FieldString, Method: constants.MethodRegex, Pattern: `Account Number:\s*([\d-]+)`},
		},
		ValidationRules: []entity.ValidationRule{
			{ID: "amount-required", FieldName: "amount", RuleType: entity.RuleRequired, Severity: constants.SeverityError},
			{ID: "amount-positive", FieldName: "amount", RuleType: entity.RuleCustom, PredicateID: "positive_amount", Severity: constants.SeverityError},
		},
	}
}

func testDocument() *entity.Document {
	return &entity.Document{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		FileName:  "confirm.pdf",
		FilePath:  "/inbox/confirm.pdf",
		Language:  "eng",
		CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestProcessEndToEnd(t *testing.T) {
	store := &memJobStore{}
	pub := &capturePublisher{}
	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil,
		&fakeTemplates{templates: []*entity.DocumentTemplate{tradeTemplate()}},
		&fakeRules{rules: filing.DefaultRules()},
		store, pub, nil)

	doc := testDocument()
	res, err := p.Process(context.Background(), doc, []ocr.Result{tradeConfirmationPage()})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if res.Job.Status != constants.JobStatusFiled {
		t.Fatalf("job status = %s", res.Job.Status)
	}
	if res.Recognition.BestTemplate == nil || res.Recognition.BestTemplate.DocumentType != constants.TradeConfirmation {
		t.Fatalf("expected trade confirmation template, got %+v", res.Recognition.Best)
	}
	if res.Recognition.Confidence <= 0 {
		t.Fatal("recognition confidence should be positive")
	}
	if !res.Structure.Has(structure.FeatureTable) {
		t.Fatal("settlement table not detected")
	}

	amount := res.Extraction.FieldByName("amount")
	if amount == nil {
		t.Fatal("amount not extracted")
	}
	if v, ok := amount.Value.(float64); !ok || v != 150000 {
		t.Fatalf("amount = %v", amount.Value)
	}
	if !amount.ValidationPassed {
		t.Fatalf("amount failed validation: %v", amount.ValidationErrors)
	}

	if res.Filing == nil {
		t.Fatal("no filing result")
	}
	if !res.Filing.HasTag("high-value") {
		t.Fatalf("high-value rule did not fire, tags = %v", res.Filing.Tags)
	}
	if res.Filing.Classification != constants.ClassificationHighlyConfidential {
		t.Fatalf("classification = %s", res.Filing.Classification)
	}

	// Job bookkeeping went through every stage.
	last := store.saves[len(store.saves)-1]
	if last.TemplateID == nil || *last.TemplateID != res.Recognition.BestTemplate.ID {
		t.Fatal("job should record the recognized template")
	}
	if last.FinishedAt == nil {
		t.Fatal("job should record a finish time")
	}

	// One event per stage.
	wantEvents := []string{
		events.TypeStructureAnalyzed,
		events.TypeTemplateRecognized,
		events.TypeFieldsExtracted,
		events.TypeFieldsValidated,
		events.TypeDocumentFiled,
	}
	if len(pub.events) != len(wantEvents) {
		t.Fatalf("expected %d events, got %d", len(wantEvents), len(pub.events))
	}
	for i, want := range wantEvents {
		if pub.events[i].Type != want {
			t.Fatalf("event[%d] = %s, want %s", i, pub.events[i].Type, want)
		}
	}
}

func TestProcessEmptyOCRInput(t *testing.T) {
	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil,
		&fakeTemplates{templates: []*entity.DocumentTemplate{tradeTemplate()}},
		&fakeRules{}, nil, events.NopPublisher{}, nil)

	res, err := p.Process(context.Background(), testDocument(), []ocr.Result{})
	if err != nil {
		t.Fatalf("empty input must not error: %v", err)
	}
	if res.Structure.Has(structure.FeatureHeader) || res.Structure.Has(structure.FeatureTable) ||
		res.Structure.Has(structure.FeatureTextBlock) {
		t.Fatal("structure should be empty for empty input")
	}
	if res.Recognition.Confidence != 0 {
		t.Fatalf("confidence = %f, want 0", res.Recognition.Confidence)
	}
	if res.Job.Status != constants.JobStatusFiled {
		t.Fatalf("empty document still files, status = %s", res.Job.Status)
	}
}

func TestProcessNoPagesNoProvider(t *testing.T) {
	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, events.NopPublisher{}, nil)

	res, err := p.Process(context.Background(), testDocument(), nil)
	if err == nil {
		t.Fatal("expected a fatal error")
	}
	if res.Job.Status != constants.JobStatusFailed {
		t.Fatalf("job status = %s", res.Job.Status)
	}
	if res.Job.Error == "" {
		t.Fatal("job should record the error")
	}
}

func TestProcessTemplateSourceFailureDegrades(t *testing.T) {
	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil,
		&fakeTemplates{err: errors.New("db down")},
		&fakeRules{}, nil, events.NopPublisher{}, nil)

	res, err := p.Process(context.Background(), testDocument(), []ocr.Result{tradeConfirmationPage()})
	if err != nil {
		t.Fatalf("template source failure must degrade, not abort: %v", err)
	}
	if res.Recognition.Confidence != 0 {
		t.Fatal("no candidates means zero confidence")
	}
	// Generic field set still ran.
	if res.Extraction.FieldByName("amount") == nil {
		t.Fatal("generic extraction should still find the amount")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "db down") {
			found = true
		}
	}
	if !found {
		t.Fatalf("degraded failure should be recorded: %v", res.Errors)
	}
}

func TestProcessCancellationBetweenStages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, events.NopPublisher{}, nil)
	res, err := p.Process(ctx, testDocument(), []ocr.Result{tradeConfirmationPage()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Job.Status != constants.JobStatusFailed {
		t.Fatalf("job status = %s", res.Job.Status)
	}
}

func TestRecognizedTypeFallsBackToClassificationScores(t *testing.T) {
	// A template match below any useful confidence still yields a type via
	// the classification score map.
	doc := testDocument()
	doc.DocumentType = constants.Unknown

	p := New(Config{}, nil, nil, nil, nil, nil, nil, nil,
		&fakeTemplates{templates: []*entity.DocumentTemplate{tradeTemplate()}},
		&fakeRules{rules: filing.DefaultRules()},
		nil, events.NopPublisher{}, nil)

	res, err := p.Process(context.Background(), doc, []ocr.Result{tradeConfirmationPage()})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Filing.DocumentID; got != doc.ID {
		t.Fatalf("filing result document = %s", got)
	}
	// The document itself was not mutated.
	if doc.DocumentType != constants.Unknown {
		t.Fatal("pipeline must not mutate the input document")
	}
}
