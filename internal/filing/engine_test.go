package filing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
)

type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, recipient, _ string) error {
	f.calls = append(f.calls, recipient)
	return f.err
}

type fakeWorkflow struct {
	triggered []string
}

func (f *fakeWorkflow) Trigger(_ context.Context, id string, _ map[string]any) error {
	f.triggered = append(f.triggered, id)
	return nil
}

func tradeConfirmation() *entity.Document {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return &entity.Document{
		ID:           uuid.New(),
		FileName:     "confirm-20240315.pdf",
		DocumentType: constants.TradeConfirmation,
		DocumentDate: &d,
		CreatedAt:    time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
	}
}

func extractedAmount(v float64) *extraction.Result {
	return &extraction.Result{Fields: []extraction.Field{{
		FieldName:  "amount",
		FieldType:  constants.FieldCurrency,
		Value:      v,
		Raw:        "$150,000.00",
		Confidence: 0.9,
	}}}
}

func TestHighValueTradeRuleFires(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)

	res := e.Evaluate(context.Background(), tradeConfirmation(), extractedAmount(150000), DefaultRules())

	if !res.HasTag("high-value") {
		t.Fatalf("high-value tag missing, tags = %v", res.Tags)
	}
	if res.Classification != constants.ClassificationHighlyConfidential {
		t.Fatalf("classification = %s", res.Classification)
	}
	var applied *AppliedRule
	for i := range res.AppliedRules {
		if res.AppliedRules[i].RuleName == "high-value-trade" {
			applied = &res.AppliedRules[i]
		}
	}
	if applied == nil {
		t.Fatalf("high-value-trade not in applied rules: %+v", res.AppliedRules)
	}
	if len(applied.MatchedConditions) != 2 {
		t.Fatalf("expected 2 matched conditions, got %d", len(applied.MatchedConditions))
	}
	if len(applied.ExecutedActions) != 2 {
		t.Fatalf("expected 2 executed actions, got %v", applied.ExecutedActions)
	}
}

func TestAndSemantics(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)

	// Amount below the threshold: one condition fails, so the rule must not.
	res := e.Evaluate(context.Background(), tradeConfirmation(), extractedAmount(50000), DefaultRules())
	if res.HasTag("high-value") {
		t.Fatal("rule fired with a failing condition")
	}
	if res.Classification == constants.ClassificationHighlyConfidential {
		t.Fatal("classification set by a rule that should not fire")
	}

	// Wrong document type: same rule, other condition fails.
	doc := tradeConfirmation()
	doc.DocumentType = constants.Statement
	res = e.Evaluate(context.Background(), doc, extractedAmount(150000), DefaultRules())
	if res.HasTag("high-value") {
		t.Fatal("rule fired for non-applicable document type")
	}
}

func TestPriorityOrdering(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)
	rules := []entity.FilingRule{
		{
			Name: "low", Priority: 1, IsActive: true,
			Conditions: []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
			Actions:    []entity.FilingAction{{Type: entity.ActionSetClassification, Parameters: map[string]any{"level": "INTERNAL"}}},
		},
		{
			Name: "high", Priority: 10, IsActive: true,
			Conditions: []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
			Actions:    []entity.FilingAction{{Type: entity.ActionSetClassification, Parameters: map[string]any{"level": "CONFIDENTIAL"}}},
		},
	}

	res := e.Evaluate(context.Background(), tradeConfirmation(), nil, rules)
	if len(res.AppliedRules) != 2 {
		t.Fatalf("both rules should fire, got %d", len(res.AppliedRules))
	}
	if res.AppliedRules[0].RuleName != "high" {
		t.Fatalf("higher priority should run first, got %s", res.AppliedRules[0].RuleName)
	}
	// Later (lower priority) writes last.
	if res.Classification != constants.ClassificationInternal {
		t.Fatalf("classification = %s", res.Classification)
	}
}

func TestActionFailureContinues(t *testing.T) {
	n := &fakeNotifier{err: errors.New("smtp down")}
	e := NewEngine(nil, n, nil, nil)
	rules := []entity.FilingRule{{
		Name: "notify-then-tag", Priority: 1, IsActive: true,
		Conditions: []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
		Actions: []entity.FilingAction{
			{Type: entity.ActionSendNotification, Parameters: map[string]any{"recipient": "ops", "message": "filed"}},
			{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "kept-going"}},
		},
	}}

	res := e.Evaluate(context.Background(), tradeConfirmation(), nil, rules)
	if !res.HasTag("kept-going") {
		t.Fatal("action after a failed one must still run")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("failure should be recorded, errors = %v", res.Errors)
	}
	applied := res.AppliedRules[0]
	if len(applied.ExecutedActions) != 1 || applied.ExecutedActions[0] != entity.ActionAddTag {
		t.Fatalf("only the tag action executed, got %v", applied.ExecutedActions)
	}
}

func TestInactiveAndTypeFilteredRulesSkipped(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)
	rules := []entity.FilingRule{
		{
			Name: "inactive", IsActive: false,
			Conditions: []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
			Actions:    []entity.FilingAction{{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "never"}}},
		},
		{
			Name: "wrong-type", IsActive: true,
			ApplicableDocumentTypes: []constants.DocumentType{constants.TaxDocument},
			Conditions:              []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
			Actions:                 []entity.FilingAction{{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "never"}}},
		},
	}

	res := e.Evaluate(context.Background(), tradeConfirmation(), nil, rules)
	if len(res.AppliedRules) != 0 || res.HasTag("never") {
		t.Fatalf("skipped rules must not fire: %+v", res.AppliedRules)
	}
}

func TestAddTagIdempotent(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)
	doc := tradeConfirmation()
	doc.Tags = []string{"high-value"}

	res := e.Evaluate(context.Background(), doc, extractedAmount(150000), DefaultRules())
	count := 0
	for _, tag := range res.Tags {
		if tag == "high-value" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("tag duplicated: %v", res.Tags)
	}
}

func TestConditionOperators(t *testing.T) {
	doc := tradeConfirmation()
	doc.FileName = "Confirm-20240315.PDF"
	doc.Metadata = map[string]any{"broker": "Acme Securities"}
	extracted := extractedAmount(150000)

	cases := []struct {
		name string
		cond entity.FilingCondition
		want bool
	}{
		{"equals fold", entity.FilingCondition{Field: "document.documentType", Operator: entity.OpEquals, Value: "trade_confirmation"}, true},
		{"equals case sensitive", entity.FilingCondition{Field: "document.documentType", Operator: entity.OpEquals, Value: "trade_confirmation", CaseSensitive: true}, false},
		{"contains metadata", entity.FilingCondition{Field: "metadata.broker", Operator: entity.OpContains, Value: "acme"}, true},
		{"starts with", entity.FilingCondition{Field: "document.fileName", Operator: entity.OpStartsWith, Value: "confirm"}, true},
		{"ends with case sensitive", entity.FilingCondition{Field: "document.fileName", Operator: entity.OpEndsWith, Value: ".pdf", CaseSensitive: true}, false},
		{"regex", entity.FilingCondition{Field: "document.fileName", Operator: entity.OpRegex, Value: `confirm-\d{8}\.pdf`}, true},
		{"greater than", entity.FilingCondition{Field: "extracted.amount", Operator: entity.OpGreaterThan, Value: "100000"}, true},
		{"less than", entity.FilingCondition{Field: "extracted.amount", Operator: entity.OpLessThan, Value: "100000"}, false},
		{"exists hit", entity.FilingCondition{Field: "metadata.broker", Operator: entity.OpExists}, true},
		{"exists miss", entity.FilingCondition{Field: "metadata.custodian", Operator: entity.OpExists}, false},
		{"missing path never matches", entity.FilingCondition{Field: "extracted.nothing", Operator: entity.OpEquals, Value: "x"}, false},
	}
	for _, tc := range cases {
		value, present := resolvePath(tc.cond.Field, doc, extracted)
		got, err := evalCondition(tc.cond, value, present)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBadRegexRecordsErrorAndSkipsRule(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)
	rules := []entity.FilingRule{{
		Name: "broken", IsActive: true,
		Conditions: []entity.FilingCondition{{Field: "document.fileName", Operator: entity.OpRegex, Value: "("}},
		Actions:    []entity.FilingAction{{Type: entity.ActionAddTag, Parameters: map[string]any{"tag": "never"}}},
	}}

	res := e.Evaluate(context.Background(), tradeConfirmation(), nil, rules)
	if res.HasTag("never") {
		t.Fatal("rule with a broken condition fired")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("condition error should be recorded: %v", res.Errors)
	}
}

func TestPathBuilderDefaultLayout(t *testing.T) {
	b := NewPathBuilder(PathConfig{Base: "/vault"})

	doc := tradeConfirmation()
	got := b.Build(doc)
	want := "/vault/trade_confirmation/2024/03/confirm-20240315.pdf"
	if got != want {
		t.Fatalf("path = %s, want %s", got, want)
	}

	doc.ClientID = "C42"
	doc.PortfolioID = "P7"
	got = b.Build(doc)
	want = "/vault/trade_confirmation/2024/03/client_C42/portfolio_P7/confirm-20240315.pdf"
	if got != want {
		t.Fatalf("path = %s, want %s", got, want)
	}
}

func TestPathBuilderTemplateOverride(t *testing.T) {
	b := NewPathBuilder(PathConfig{
		Base: "/vault",
		DirectoryTemplates: map[constants.DocumentType]string{
			constants.TradeConfirmation: "{base}/trades/{year}-{month}/{fileName}",
		},
	})

	got := b.Build(tradeConfirmation())
	want := "/vault/trades/2024-03/confirm-20240315.pdf"
	if got != want {
		t.Fatalf("path = %s, want %s", got, want)
	}
}

func TestMoveToFolderOverridesDefault(t *testing.T) {
	e := NewEngine(NewPathBuilder(PathConfig{Base: "/vault"}), nil, nil, nil)
	doc := tradeConfirmation()
	doc.ClientID = "C42"

	res := e.Evaluate(context.Background(), doc, nil, DefaultRules())
	want := "/vault/clients/C42/trade_confirmation/2024/confirm-20240315.pdf"
	if res.TargetFolder != want {
		t.Fatalf("folder = %s, want %s", res.TargetFolder, want)
	}
}

func TestWorkflowTrigger(t *testing.T) {
	w := &fakeWorkflow{}
	e := NewEngine(nil, nil, w, nil)
	rules := []entity.FilingRule{{
		Name: "kickoff", IsActive: true,
		Conditions: []entity.FilingCondition{{Field: "document.documentType", Operator: entity.OpExists}},
		Actions:    []entity.FilingAction{{Type: entity.ActionTriggerWorkflow, Parameters: map[string]any{"workflow_id": "reconcile"}}},
	}}

	res := e.Evaluate(context.Background(), tradeConfirmation(), nil, rules)
	if len(w.triggered) != 1 || w.triggered[0] != "reconcile" {
		t.Fatalf("workflow not triggered: %v", w.triggered)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors %v", res.Errors)
	}
}

func TestUpdateMetadataMerges(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil)
	doc := tradeConfirmation()
	doc.DocumentType = constants.TaxDocument

	res := e.Evaluate(context.Background(), doc, nil, DefaultRules())
	if res.MetadataUpdates["retention_years"] != 7 {
		t.Fatalf("metadata updates = %v", res.MetadataUpdates)
	}
}
