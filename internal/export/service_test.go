package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
	"github.com/docuvault/docintel/internal/extraction"
	"github.com/docuvault/docintel/internal/filing"
	"github.com/docuvault/docintel/internal/pipeline"
)

func TestExportResultsXLSX(t *testing.T) {
	documentID := uuid.New()
	results := []pipeline.ProcessingResult{
		{
			Job: entity.ProcessJob{
				ID:         uuid.New(),
				DocumentID: documentID,
				Status:     constants.JobStatusFiled,
				Confidence: 0.91,
			},
			Extraction: extraction.Result{
				Fields: []extraction.Field{
					{
						FieldName:        "amount",
						FieldType:        constants.FieldCurrency,
						Value:            150000.0,
						Raw:              "$150,000.00",
						Confidence:       0.9,
						Source:           constants.MethodRegex,
						ValidationPassed: true,
					},
				},
			},
			Filing: &filing.Result{
				DocumentID:     documentID,
				TargetFolder:   "/documents/trade_confirmation/2024/03/confirm.pdf",
				Classification: constants.ClassificationHighlyConfidential,
				Tags:           []string{"high-value"},
			},
		},
	}

	svc := NewService(nil, nil, nil)
	data, err := svc.ExportResultsXLSX(results)
	if err != nil {
		t.Fatalf("ExportResultsXLSX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
		}
		return v
	}

	if got := cell("Extracted Fields", "B2"); got != "amount" {
		t.Fatalf("field name cell = %q, want amount", got)
	}
	if got := cell("Extracted Fields", "E2"); got != "$150,000.00" {
		t.Fatalf("raw cell = %q", got)
	}
	if got := cell("Filing", "A2"); got != documentID.String() {
		t.Fatalf("document id cell = %q, want %s", got, documentID)
	}
	if got := cell("Filing", "E2"); got != string(constants.ClassificationHighlyConfidential) {
		t.Fatalf("classification cell = %q", got)
	}
	if got := cell("Filing", "F2"); got != "high-value" {
		t.Fatalf("tags cell = %q", got)
	}
}

func TestExportResultsXLSXEmpty(t *testing.T) {
	svc := NewService(nil, nil, nil)
	data, err := svc.ExportResultsXLSX(nil)
	if err != nil {
		t.Fatalf("ExportResultsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if got, _ := f.GetCellValue("Extracted Fields", "A1"); got != "Document ID" {
		t.Fatalf("header cell = %q, want Document ID", got)
	}
}
