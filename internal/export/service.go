package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docuvault/docintel/internal/pipeline"
	"github.com/docuvault/docintel/internal/repository"
)

// Service produces XLSX bytes for document and extraction exports.
type Service struct {
	docsRepo repository.DocumentRepository
	jobsRepo repository.ProcessJobRepository
	logger   *slog.Logger
}

func NewService(docs repository.DocumentRepository, jobs repository.ProcessJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docs, jobsRepo: jobs, logger: logger}
}

// ExportDocumentsXLSX returns a workbook listing a tenant's documents with
// their filing outcome (type, classification, tags, folder).
func (s *Service) ExportDocumentsXLSX(ctx context.Context, tenantID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.docsRepo.ListByTenant(ctx, tenantID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if err := prepareSheet(f, sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"File Name",
		"Document Type",
		"Classification",
		"Tags",
		"Folder",
		"Document Date",
		"Status",
	}
	writeHeaders(f, sheet, headers)

	row := 2
	for _, d := range docs {
		write := cellWriter(f, sheet, row)
		write(1, d.FileName)
		write(2, string(d.DocumentType))
		write(3, string(d.Classification))
		write(4, strings.Join(d.Tags, ", "))
		write(5, d.FilePath)
		if d.DocumentDate != nil {
			write(6, d.DocumentDate.Format("2006-01-02"))
		} else {
			write(6, "")
		}
		write(7, d.Status)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "C", 20)
	_ = f.SetColWidth(sheet, "D", "E", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("exported documents",
		"tenant_id", tenantID, "rows", row-2, "duration", time.Since(start))
	return buf.Bytes(), nil
}

// ExportResultsXLSX renders a batch of processing results: one row per
// extracted field, plus a summary sheet of filing decisions. Used by batch
// runs, which hold their results in memory.
func (s *Service) ExportResultsXLSX(results []pipeline.ProcessingResult) ([]byte, error) {
	f := excelize.NewFile()

	const fieldsSheet = "Extracted Fields"
	if err := prepareSheet(f, fieldsSheet); err != nil {
		return nil, err
	}
	writeHeaders(f, fieldsSheet, []string{
		"Document ID",
		"Field",
		"Type",
		"Value",
		"Raw",
		"Confidence",
		"Source",
		"Valid",
	})
	row := 2
	for _, res := range results {
		for _, fld := range res.Extraction.Fields {
			write := cellWriter(f, fieldsSheet, row)
			write(1, res.Job.DocumentID.String())
			write(2, fld.FieldName)
			write(3, string(fld.FieldType))
			write(4, fmt.Sprintf("%v", fld.Value))
			write(5, fld.Raw)
			write(6, fld.Confidence)
			write(7, string(fld.Source))
			write(8, fld.ValidationPassed)
			row++
		}
	}

	const filingSheet = "Filing"
	if _, err := f.NewSheet(filingSheet); err != nil {
		return nil, err
	}
	writeHeaders(f, filingSheet, []string{
		"Document ID",
		"Status",
		"Confidence",
		"Folder",
		"Classification",
		"Tags",
		"Rules Fired",
	})
	row = 2
	for _, res := range results {
		write := cellWriter(f, filingSheet, row)
		write(1, res.Job.DocumentID.String())
		write(2, string(res.Job.Status))
		write(3, res.Job.Confidence)
		if res.Filing != nil {
			write(4, res.Filing.TargetFolder)
			write(5, string(res.Filing.Classification))
			write(6, strings.Join(res.Filing.Tags, ", "))
			write(7, len(res.Filing.AppliedRules))
		}
		row++
	}

	_ = f.SetColWidth(fieldsSheet, "A", "A", 38)
	_ = f.SetColWidth(filingSheet, "A", "A", 38)
	_ = f.SetColWidth(filingSheet, "D", "D", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func prepareSheet(f *excelize.File, sheet string) error {
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet if unused
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}
	return nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func cellWriter(f *excelize.File, sheet string, row int) func(col int, v any) {
	return func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
