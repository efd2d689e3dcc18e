package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/internal/common"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/ocr"
	"github.com/docuvault/docintel/internal/pipeline"
)

// runpipeline processes one file without a database and prints the full
// result as JSON. Useful for template debugging against a sample document.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runpipeline <file>")
		os.Exit(2)
	}
	path, err := filepath.Abs(os.Args[1])
	if err != nil {
		logger.Error("resolve path", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

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
		nil, nil, nil, nil,
		logger,
	)

	doc := &entity.Document{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		FileName: filepath.Base(path),
		FilePath: path,
		Language: cfg.Pipeline.Language,
	}

	res, err := pipe.Process(ctx, doc, nil)
	if err != nil {
		logger.Error("pipeline failed", "file", path, "error", err)
		if res == nil {
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
