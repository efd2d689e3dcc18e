package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/events"
	"github.com/docuvault/docintel/internal/extraction"
	"github.com/docuvault/docintel/internal/fieldval"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/keywords"
	"github.com/docuvault/docintel/internal/match"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/structure"
)

// TemplateSource supplies candidate templates for recognition.
type TemplateSource interface {
	ActiveTemplates(ctx context.Context, language string) ([]*entity.DocumentTemplate, error)
}

// RuleSource supplies the active filing rules.
type RuleSource interface {
	ActiveRules(ctx context.Context) ([]entity.FilingRule, error)
}

// JobStore persists job transitions. Saves are best-effort; a failing store
// never aborts a run.
type JobStore interface {
	SaveJob(ctx context.Context, job *entity.ProcessJob) error
}

// Config carries per-run pipeline settings.
type Config struct {
	Language       string // default OCR/recognition language
	ExpectedType   constants.DocumentType
	PostProcess    bool // enable extraction post-processing normalizers
	SchemaValidate bool // validate extraction output against the template JSON schema
}

// ProcessingResult aggregates every stage's output for one document.
type ProcessingResult struct {
	Job         entity.ProcessJob           `json:"job"`
	Structure   structure.DocumentStructure `json:"structure"`
	Recognition match.RecognitionResult     `json:"recognition"`
	Extraction  extraction.Result           `json:"extraction"`
	Validation  []fieldval.RuleResult       `json:"validation,omitempty"`
	Filing      *filing.Result              `json:"filing,omitempty"`
	Errors      []string                    `json:"errors,omitempty"` // recovered, non-fatal
	Duration    time.Duration               `json:"duration"`
}

// Pipeline runs the five stages in order for one document: structure
// analysis, template recognition, field extraction, field validation, filing.
// Stages are sequential within a document; documents are independent, so one
// Pipeline may be shared by any number of workers.
type Pipeline struct {
	logger    *slog.Logger
	cfg       Config
	provider  ocr.Provider // optional; used when no pages are passed in
	analyzer  *structure.Analyzer
	keywords  *keywords.Extractor
	matcher   *match.Matcher
	extractor *extraction.Extractor
	validator *fieldval.Validator
	engine    *filing.Engine
	templates TemplateSource
	rules     RuleSource
	jobs      JobStore
	publisher events.Publisher
}

func New(
	cfg Config,
	provider ocr.Provider,
	analyzer *structure.Analyzer,
	kw *keywords.Extractor,
	matcher *match.Matcher,
	extractor *extraction.Extractor,
	validator *fieldval.Validator,
	engine *filing.Engine,
	templates TemplateSource,
	rules RuleSource,
	jobs JobStore,
	publisher events.Publisher,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if analyzer == nil {
		analyzer = structure.NewAnalyzer(logger)
	}
	if kw == nil {
		kw = keywords.NewExtractor(logger)
	}
	if matcher == nil {
		matcher = match.NewMatcher(nil, logger)
	}
	if extractor == nil {
		extractor = extraction.NewExtractor(extraction.Config{PostProcess: cfg.PostProcess}, nil, nil, logger)
	}
	if validator == nil {
		validator = fieldval.NewValidator(nil, logger)
	}
	if engine == nil {
		engine = filing.NewEngine(nil, nil, nil, logger)
	}
	if publisher == nil {
		publisher = events.NewLogPublisher(logger)
	}
	return &Pipeline{
		logger:    logger,
		cfg:       cfg,
		provider:  provider,
		analyzer:  analyzer,
		keywords:  kw,
		matcher:   matcher,
		extractor: extractor,
		validator: validator,
		engine:    engine,
		templates: templates,
		rules:     rules,
		jobs:      jobs,
		publisher: publisher,
	}
}

// Process runs the full pipeline for one document. Pages may be supplied by
// the caller; when nil, the OCR provider reads doc.FilePath. Cancellation is
// honored between stages, never mid-stage. The returned result is populated
// up to the point of failure.
func (p *Pipeline) Process(ctx context.Context, doc *entity.Document, pages []ocr.Result) (*ProcessingResult, error) {
	start := time.Now()
	res := &ProcessingResult{
		Job: entity.ProcessJob{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			TenantID:   doc.TenantID,
			Status:     constants.JobStatusRunning,
			StartedAt:  &start,
			CreatedAt:  start,
		},
	}
	p.saveJob(ctx, res)

	language := doc.Language
	if language == "" {
		language = p.cfg.Language
	}

	// OCR boundary. The only stage allowed to touch the filesystem.
	if pages == nil {
		if p.provider == nil {
			return p.fail(ctx, res, "ocr", fmt.Errorf("no OCR pages and no provider configured"))
		}
		var err error
		pages, err = p.provider.Recognize(ctx, doc.FilePath, language)
		if err != nil {
			return p.fail(ctx, res, "ocr", fmt.Errorf("ocr: %w", err))
		}
	}
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, res, "ocr", err)
	}

	// Stage 1: structure analysis.
	res.Structure = p.analyzer.Analyze(pages)
	res.Job.Status = constants.JobStatusStructureOK
	res.Job.Stage = "structure"
	p.saveJob(ctx, res)
	p.publish(ctx, events.TypeStructureAnalyzed, res, map[string]any{
		"headers": len(res.Structure.Headers),
		"tables":  len(res.Structure.Tables),
	})
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, res, "structure", err)
	}

	// Stage 2: template recognition.
	candidates := p.loadTemplates(ctx, language, res)
	kwMatches := p.keywords.Extract(pages, language)
	res.Recognition = p.matcher.Recognize(ctx, res.Structure, kwMatches, candidates, match.FeaturesFrom(pages), p.cfg.ExpectedType)
	res.Job.Status = constants.JobStatusTemplateOK
	res.Job.Stage = "template"
	res.Job.Confidence = res.Recognition.Confidence
	if res.Recognition.BestTemplate != nil {
		id := res.Recognition.BestTemplate.ID
		res.Job.TemplateID = &id
	}
	p.saveJob(ctx, res)
	p.publish(ctx, events.TypeTemplateRecognized, res, map[string]any{
		"confidence": res.Recognition.Confidence,
	})
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, res, "template", err)
	}

	// Stage 3: field extraction. Without a recognized template the extractor
	// falls back to its generic field set.
	var extractionRules []entity.ExtractionRule
	var validationRules []entity.ValidationRule
	if res.Recognition.BestTemplate != nil {
		extractionRules = res.Recognition.BestTemplate.ExtractionRules
		validationRules = res.Recognition.BestTemplate.ValidationRules
	}
	res.Extraction = p.extractor.Extract(ctx, pages, extractionRules, language)
	res.Errors = append(res.Errors, res.Extraction.Errors...)
	res.Job.Status = constants.JobStatusExtractOK
	res.Job.Stage = "extract"
	p.saveJob(ctx, res)
	p.publish(ctx, events.TypeFieldsExtracted, res, map[string]any{
		"fields": len(res.Extraction.Fields),
	})
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, res, "extract", err)
	}

	// Stage 4: field validation.
	res.Extraction.Fields, res.Validation = p.validator.Validate(res.Extraction.Fields, validationRules)
	if p.cfg.SchemaValidate && len(extractionRules) > 0 {
		if err := fieldval.ValidatePayload(extractionRules, validationRules, res.Extraction.Fields); err != nil {
			p.logger.Warn("schema validation failed", "document_id", doc.ID, "error", err)
			res.Errors = append(res.Errors, fmt.Sprintf("schema: %v", err))
		}
	}
	res.Job.Stage = "validate"
	p.publish(ctx, events.TypeFieldsValidated, res, map[string]any{
		"results": len(res.Validation),
	})
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, res, "validate", err)
	}

	// Stage 5: filing. The recognized type guides rule applicability.
	filedDoc := *doc
	if filedDoc.DocumentType == "" || filedDoc.DocumentType == constants.Unknown {
		filedDoc.DocumentType = recognizedType(res.Recognition)
	}
	res.Filing = p.engine.Evaluate(ctx, &filedDoc, &res.Extraction, p.loadRules(ctx, res))
	res.Errors = append(res.Errors, res.Filing.Errors...)

	finished := time.Now()
	res.Job.Status = constants.JobStatusFiled
	res.Job.Stage = "filing"
	res.Job.FinishedAt = &finished
	res.Duration = finished.Sub(start)
	p.saveJob(ctx, res)
	p.publish(ctx, events.TypeDocumentFiled, res, map[string]any{
		"folder": res.Filing.TargetFolder,
		"rules":  len(res.Filing.AppliedRules),
	})

	p.logger.Info("document processed",
		"document_id", doc.ID,
		"job_id", res.Job.ID,
		"confidence", res.Job.Confidence,
		"fields", len(res.Extraction.Fields),
		"duration", res.Duration,
	)
	return res, nil
}

// loadTemplates degrades to an empty candidate list when the source fails;
// recognition then reports zero confidence and extraction uses generic rules.
func (p *Pipeline) loadTemplates(ctx context.Context, language string, res *ProcessingResult) []*entity.DocumentTemplate {
	if p.templates == nil {
		return nil
	}
	candidates, err := p.templates.ActiveTemplates(ctx, language)
	if err != nil {
		p.logger.Warn("template source unavailable, continuing without candidates", "error", err)
		res.Errors = append(res.Errors, fmt.Sprintf("templates: %v", err))
		return nil
	}
	return candidates
}

// loadRules falls back to the built-in rule set when the source fails or is
// absent, so every processed document still gets a filing decision.
func (p *Pipeline) loadRules(ctx context.Context, res *ProcessingResult) []entity.FilingRule {
	if p.rules == nil {
		return filing.DefaultRules()
	}
	rules, err := p.rules.ActiveRules(ctx)
	if err != nil {
		p.logger.Warn("rule source unavailable, using defaults", "error", err)
		res.Errors = append(res.Errors, fmt.Sprintf("rules: %v", err))
		return filing.DefaultRules()
	}
	if len(rules) == 0 {
		return filing.DefaultRules()
	}
	return rules
}

func (p *Pipeline) fail(ctx context.Context, res *ProcessingResult, stage string, err error) (*ProcessingResult, error) {
	finished := time.Now()
	res.Job.Status = constants.JobStatusFailed
	res.Job.Stage = stage
	res.Job.Error = err.Error()
	res.Job.FinishedAt = &finished
	res.Duration = finished.Sub(*res.Job.StartedAt)
	p.saveJob(ctx, res)
	p.publish(ctx, events.TypeProcessingFailed, res, map[string]any{
		"stage": stage,
		"error": err.Error(),
	})
	p.logger.Error("document processing failed",
		"document_id", res.Job.DocumentID,
		"job_id", res.Job.ID,
		"stage", stage,
		"error", err,
	)
	return res, err
}

func (p *Pipeline) saveJob(ctx context.Context, res *ProcessingResult) {
	if p.jobs == nil {
		return
	}
	now := time.Now()
	res.Job.UpdatedAt = now
	if err := p.jobs.SaveJob(ctx, &res.Job); err != nil {
		p.logger.Warn("job save failed", "job_id", res.Job.ID, "error", err)
	}
}

func (p *Pipeline) publish(ctx context.Context, typ string, res *ProcessingResult, payload map[string]any) {
	p.publisher.Publish(ctx, events.Event{
		Type:       typ,
		DocumentID: res.Job.DocumentID,
		JobID:      res.Job.ID,
		Payload:    payload,
		At:         time.Now(),
	})
}

func recognizedType(rec match.RecognitionResult) constants.DocumentType {
	if rec.BestTemplate != nil && rec.Confidence > 0 {
		return rec.BestTemplate.DocumentType
	}
	best := constants.Unknown
	var bestScore float64
	for dt, score := range rec.ClassificationScores {
		if score > bestScore {
			best, bestScore = dt, score
		}
	}
	return best
}
