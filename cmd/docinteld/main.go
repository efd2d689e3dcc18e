package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/docuvault/docintel/gen/proto/docintel/v1"
	"github.com/docuvault/docintel/internal/async"
	"github.com/docuvault/docintel/internal/common"
	"github.com/docuvault/docintel/internal/documents"
	"github.com/docuvault/docintel/internal/events"
	"github.com/docuvault/docintel/internal/export"
	"github.com/docuvault/docintel/internal/extraction"
	"github.com/docuvault/docintel/internal/fieldval"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/ingest"
	"github.com/docuvault/docintel/internal/keywords"
	"github.com/docuvault/docintel/internal/match"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/pipeline"
	repo "github.com/docuvault/docintel/internal/repository"
	svc "github.com/docuvault/docintel/internal/server"
	"github.com/docuvault/docintel/internal/structure"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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
	engine := filing.NewEngine(paths, nil, nil, logger)

	pipe := pipeline.New(
		pipeline.Config{
			Language:       cfg.Pipeline.Language,
			PostProcess:    cfg.Pipeline.PostProcess,
			SchemaValidate: cfg.Pipeline.SchemaValidate,
		},
		provider,
		structure.NewAnalyzer(logger),
		keywords.NewExtractor(logger),
		match.NewMatcher(nil, logger),
		extraction.NewExtractor(extraction.Config{PostProcess: cfg.Pipeline.PostProcess}, nil, nil, logger),
		fieldval.NewValidator(nil, logger),
		engine,
		templatesRepo,
		rulesRepo,
		jobsRepo,
		events.NewLogPublisher(logger),
		logger,
	)

	docService := documents.NewService(documentsRepo, jobsRepo, pipe, logger)
	queue := async.NewPipelineQueue(docService, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(documentsRepo, logger)
	ingestService := ingest.NewService(ingestor, queue, logger)
	exportService := export.NewService(documentsRepo, jobsRepo, logger)

	v1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(docService, logger))
	v1.RegisterTemplatesServiceServer(grpcServer, svc.NewTemplatesService(templatesRepo, logger))
	v1.RegisterRulesServiceServer(grpcServer, svc.NewRulesService(rulesRepo, logger))
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestService, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Inbox watcher: new files under the watch dir are ingested and queued
	// without an RPC call.
	if cfg.Ingest.WatchDir != "" {
		go runWatcher(ctx, cfg, ingestor, queue, logger)
	}

	logger.Info("docinteld listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func runWatcher(ctx context.Context, cfg *common.Config, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	tenantID, err := uuid.Parse(cfg.Ingest.TenantID)
	if err != nil {
		logger.Error("INGEST_TENANT_ID must be a UUID when INGEST_WATCH_DIR is set", "error", err)
		return
	}

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Ingest.WatchDir},
		InitialScan: cfg.Ingest.ScanOnStart,
		Debounce:    500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("failed to start inbox watcher", "dir", cfg.Ingest.WatchDir, "error", err)
		return
	}
	logger.Info("inbox watcher started", "dir", cfg.Ingest.WatchDir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		case path, ok := <-paths:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, tenantID, path)
			if err != nil {
				logger.Error("watched file ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated {
				logger.Info("watched file already known", "path", path, "document_id", r.DocumentID)
				continue
			}
			documentID, err := uuid.Parse(r.DocumentID)
			if err != nil {
				continue
			}
			_ = queue.Enqueue(ctx, async.Job{DocumentID: documentID, SubmittedAt: time.Now()})
		}
	}
}
