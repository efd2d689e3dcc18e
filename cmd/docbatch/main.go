package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/internal/common"
	"github.com/docuvault/docintel/internal/documents"
	"github.com/docuvault/docintel/internal/events"
	"github.com/docuvault/docintel/internal/export"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/ingest"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/pipeline"
	repo "github.com/docuvault/docintel/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "directory to process documents from (required)")
		out    = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		dbPath = flag.String("db", "", "SQLite database path (optional, defaults to in-memory)")
		tenant = flag.String("tenant", "", "tenant UUID (optional, defaults to a fresh one)")
	)
	flag.Parse()
	start := time.Now()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "extractions.xlsx")
	}

	tenantID := uuid.New()
	if *tenant != "" {
		parsed, err := uuid.Parse(*tenant)
		if err != nil {
			printError("Error: --tenant must be a UUID: %v\n", err)
			os.Exit(1)
		}
		tenantID = parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dsn := "file:docbatch?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	if *dbPath != "" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", *dbPath)
	}
	entc, err := repo.OpenSQLite(dsn, logger)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	rulesRepo := repo.NewFilingRuleRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)

	provider := ocr.NewTesseract(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
		DPI:         cfg.OCR.DPI,
	}, logger)

	paths := filing.NewPathBuilder(filing.PathConfig{Base: cfg.Filing.BaseDir})
	pipe := pipeline.New(
		pipeline.Config{
			Language:    cfg.Pipeline.Language,
			PostProcess: cfg.Pipeline.PostProcess,
		},
		provider,
		nil, nil, nil, nil, nil,
		filing.NewEngine(paths, nil, nil, logger),
		templatesRepo,
		rulesRepo,
		jobsRepo,
		events.NopPublisher{},
		logger,
	)
	docService := documents.NewService(documentsRepo, jobsRepo, pipe, logger)

	ingestor := ingest.NewFSIngestor(documentsRepo, logger)
	logger.Info("starting ingestion", "dir", *dir, "tenant_id", tenantID)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, tenantID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			documentID, err := uuid.Parse(result.DocumentID)
			if err != nil {
				logger.Error("failed to parse document ID", "document_id", result.DocumentID, "error", err)
				continue
			}
			ingested = append(ingested, documentID)
		}
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	var results []pipeline.ProcessingResult
	processed := 0
	failures := 0
	for _, documentID := range ingested {
		logger.Info("processing document", "document_id", documentID)
		res, err := docService.ProcessAndReturn(ctx, documentID)
		if err != nil {
			logger.Error("failed to process document", "document_id", documentID, "error", err)
			failures++
		} else {
			processed++
		}
		if res != nil {
			results = append(results, *res)
		}
	}

	logger.Info("exporting extractions", "output", *out)
	exportService := export.NewService(documentsRepo, jobsRepo, logger)
	xlsxBytes, err := exportService.ExportResultsXLSX(results)
	if err != nil {
		logger.Error("failed to export extractions", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"output", *out,
		"duration", time.Since(start).String())
}
