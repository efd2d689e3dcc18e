package keywords

import (
	"testing"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/ocr"
)

func pageWith(lines ...string) ocr.Result {
	p := ocr.Result{Page: 1, PageHeight: 1100}
	for i, txt := range lines {
		p.Lines = append(p.Lines, ocr.Line{
			Text: txt,
			Box:  ocr.BoundingBox{X: 100, Y: float64(100 + i*30), Width: 400, Height: 20},
		})
	}
	return p
}

func TestExtractOrdersByConfidence(t *testing.T) {
	e := NewExtractor(nil)
	pages := []ocr.Result{pageWith(
		"TRADE CONFIRMATION",
		"Trade Date: 2026-01-15",
		"Commission: $4.95",
	)}

	matches := e.Extract(pages, "en")
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Fatalf("matches not ordered by descending confidence at %d: %f > %f",
				i, matches[i].Confidence, matches[i-1].Confidence)
		}
	}
	if matches[0].Keyword != "trade confirmation" {
		t.Fatalf("strongest match should be the full phrase, got %q", matches[0].Keyword)
	}
	if matches[0].DocumentType != constants.TradeConfirmation {
		t.Fatalf("wrong document type: %s", matches[0].DocumentType)
	}
}

func TestExtractKeepsRepeatedOccurrences(t *testing.T) {
	e := NewExtractor(nil)
	pages := []ocr.Result{pageWith(
		"invoice",
		"This invoice supersedes the previous invoice.",
	)}

	n := CountFor(e.Extract(pages, "en"), "invoice")
	if n != 3 {
		t.Fatalf("expected 3 occurrences of %q (no dedup), got %d", "invoice", n)
	}
}

func TestWholeWordMatching(t *testing.T) {
	e := NewExtractor(nil)
	// "soldier" must not match the keyword "sold".
	matches := e.Extract([]ocr.Result{pageWith("the soldier statement")}, "en")
	if CountFor(matches, "sold") != 0 {
		t.Fatal("substring match leaked through whole-word boundary")
	}
	if CountFor(matches, "statement") != 1 {
		t.Fatal("whole word should match")
	}
}

func TestRegisterCustomDictionary(t *testing.T) {
	e := NewExtractor(nil)
	e.Register(constants.Contract, Keyword{Term: "Indemnification", Weight: 0.99})

	matches := e.Extract([]ocr.Result{pageWith("Section 9: INDEMNIFICATION")}, "en")
	if CountFor(matches, "indemnification") != 1 {
		t.Fatalf("case-insensitive custom keyword not matched: %+v", matches)
	}
	if matches[0].Keyword != "indemnification" || matches[0].Confidence != 0.99 {
		t.Fatalf("custom keyword should rank first: %+v", matches[0])
	}
}

func TestCarriesLineGeometry(t *testing.T) {
	e := NewExtractor(nil)
	pages := []ocr.Result{pageWith("prospectus")}
	matches := e.Extract(pages, "en")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Box != pages[0].Lines[0].Box {
		t.Fatalf("match must carry the line's bounding box: %+v", matches[0].Box)
	}
}
