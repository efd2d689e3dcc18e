package structure

import (
	"testing"

	"github.com/docuvault/docintel/internal/ocr"
)

func line(text string, x, y, w, h float64) ocr.Line {
	return ocr.Line{Text: text, Confidence: 0.9, Box: ocr.BoundingBox{X: x, Y: y, Width: w, Height: h}}
}

func page(height float64, lines ...ocr.Line) ocr.Result {
	return ocr.Result{Page: 1, PageWidth: 850, PageHeight: height, Lines: lines}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewAnalyzer(nil)

	s := a.Analyze(nil)
	if s.Has(FeatureHeader) || s.Has(FeatureTable) || s.Has(FeatureTextBlock) {
		t.Fatalf("empty input must yield empty structure: %+v", s)
	}

	s = a.Analyze([]ocr.Result{{}})
	if s.Has(FeatureHeader) || s.Has(FeatureTable) {
		t.Fatalf("page with no geometry must yield empty structure: %+v", s)
	}
}

func TestHeaderDetection(t *testing.T) {
	a := NewAnalyzer(nil)
	p := page(1100,
		line("TRADE CONFIRMATION", 100, 40, 400, 20),
		line("Some body text in the middle of the page", 100, 500, 400, 20),
		line("Page 1 of 2", 100, 1060, 120, 18),
	)

	s := a.Analyze([]ocr.Result{p})
	if len(s.Headers) != 1 {
		t.Fatalf("expected 1 header, got %d: %+v", len(s.Headers), s.Headers)
	}
	if s.Headers[0].Text != "TRADE CONFIRMATION" {
		t.Fatalf("wrong header text: %q", s.Headers[0].Text)
	}
	if s.Headers[0].Confidence <= bandAcceptScore {
		t.Fatalf("accepted header must clear threshold, got %f", s.Headers[0].Confidence)
	}
	// "Page 1 of 2" sits in the footer band but the page-number indicator
	// drags it below the acceptance threshold.
	if len(s.Footers) != 0 {
		t.Fatalf("page-number line must not become a footer: %+v", s.Footers)
	}
}

func TestHeaderPositionGate(t *testing.T) {
	a := NewAnalyzer(nil)
	// A strong header phrase in the middle of the page is not a header.
	p := page(1000, line("ACCOUNT STATEMENT", 100, 480, 300, 20))
	s := a.Analyze([]ocr.Result{p})
	if len(s.Headers) != 0 {
		t.Fatalf("mid-page line must not qualify as header: %+v", s.Headers)
	}
}

func TestTableDetection(t *testing.T) {
	a := NewAnalyzer(nil)
	// 4 rows x 3 columns: three lines sharing a y coordinate per row.
	var lines []ocr.Line
	ys := []float64{300, 330, 360, 390}
	for _, y := range ys {
		lines = append(lines,
			line("AAPL", 100, y, 80, 18),
			line("100", 300, y+2, 60, 18),
			line("15,023.50", 500, y+4, 90, 18),
		)
	}
	s := a.Analyze([]ocr.Result{page(1100, lines...)})

	if len(s.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(s.Tables))
	}
	tbl := s.Tables[0]
	if tbl.Confidence != tableConfidence {
		t.Fatalf("table confidence must be fixed at %f, got %f", tableConfidence, tbl.Confidence)
	}
	// Union box spans from the first cell to the last.
	if tbl.Box.X != 100 || tbl.Box.Y != 300 {
		t.Fatalf("unexpected table origin: %+v", tbl.Box)
	}
	if tbl.Box.X+tbl.Box.Width < 590 {
		t.Fatalf("table box does not cover last column: %+v", tbl.Box)
	}
}

func TestTableRequiresThreeMultiLineRows(t *testing.T) {
	a := NewAnalyzer(nil)
	// Only two multi-line rows -> no table.
	lines := []ocr.Line{
		line("Qty", 100, 300, 60, 18), line("Price", 300, 302, 60, 18),
		line("100", 100, 330, 60, 18), line("12.50", 300, 332, 60, 18),
		line("a single line on its own row", 100, 420, 300, 18),
	}
	s := a.Analyze([]ocr.Result{page(1100, lines...)})
	if len(s.Tables) != 0 {
		t.Fatalf("two multi-line rows must not produce a table: %+v", s.Tables)
	}
}

func TestFormFieldAndSignatureDetection(t *testing.T) {
	a := NewAnalyzer(nil)
	p := page(1100,
		line("Account Number: 123-456789", 100, 400, 300, 18),
		line("Authorized Signatory", 100, 900, 250, 18),
	)
	s := a.Analyze([]ocr.Result{p})
	if len(s.FormFields) != 1 {
		t.Fatalf("expected 1 form field, got %+v", s.FormFields)
	}
	if len(s.Signatures) != 1 {
		t.Fatalf("expected 1 signature, got %+v", s.Signatures)
	}
}

func TestBarcodeDetection(t *testing.T) {
	a := NewAnalyzer(nil)
	p := page(1100, line("123456789012345", 600, 1000, 200, 30))
	s := a.Analyze([]ocr.Result{p})
	if len(s.Barcodes) != 1 {
		t.Fatalf("expected 1 barcode, got %+v", s.Barcodes)
	}
}

func TestBucketQueries(t *testing.T) {
	s := DocumentStructure{Tables: []LayoutFeature{{Type: FeatureTable}}}
	if !s.Has(FeatureTable) {
		t.Fatal("Has(TABLE) should be true")
	}
	if s.Has(FeatureBarcode) {
		t.Fatal("Has(BARCODE) should be false")
	}
	if s.Count(FeatureTable) != 1 {
		t.Fatalf("Count(TABLE) = %d", s.Count(FeatureTable))
	}
}
