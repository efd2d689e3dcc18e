package structure

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/docuvault/docintel/internal/ocr"
)

const (
	headerBand       = 0.15 // top fraction of page height eligible for headers
	footerBand       = 0.15 // bottom fraction eligible for footers
	bandAcceptScore  = 0.7
	tableRowYSlack   = 10.0 // px; lines closer than this vertically cluster into one row
	tableMinRows     = 3
	tableConfidence  = 0.8
	textBlockMinWord = 20
)

// indicator is a weighted regex clue for header/footer scoring.
type indicator struct {
	re    *regexp.Regexp
	delta float64
}

var headerIndicators = []indicator{
	{regexp.MustCompile(`^[A-Z][A-Z0-9 .,&'()/-]{3,}$`), 0.30},                                          // shouting caps
	{regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|co|bank|n\.a\.|plc|gmbh|s\.a\.)\.?\b`), 0.25},          // company suffix
	{regexp.MustCompile(`(?i)\b(statement|confirmation|prospectus|invoice|summary|notice)\b`), 0.35},    // statement-type word
	{regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`), -0.40},                                       // bare page number
	{regexp.MustCompile(`^\s*\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\s*$|^\s*[A-Z][a-z]+ \d{1,2}, \d{4}\s*$`), -0.30}, // date-only line
}

var (
	reFormField = regexp.MustCompile(`(?i)^([A-Za-z][A-Za-z /#.]{1,40}):\s*(\S.*)?$|_{4,}`)
	reSignature = regexp.MustCompile(`(?i)\b(signature|signed by|authorized signatory|/s/)\b|^[Xx]_{2,}`)
	reBarcode   = regexp.MustCompile(`^\*[A-Z0-9]+\*$|^\d{12,}$|\|{6,}`)
	reLogoText  = regexp.MustCompile(`(?i)^[A-Z&][A-Za-z&.]*( [A-Z&][A-Za-z&.]*){0,3}$`)
)

// Analyzer derives a DocumentStructure from OCR pages. Pure: no side effects,
// malformed or empty input yields an empty structure.
type Analyzer struct {
	logger *slog.Logger
}

func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze aggregates layout features across all pages.
func (a *Analyzer) Analyze(pages []ocr.Result) DocumentStructure {
	var s DocumentStructure
	if len(pages) == 0 {
		return s
	}
	for _, page := range pages {
		a.detectBands(page, &s)
		a.detectTables(page, &s)
		a.detectFormFields(page, &s)
		a.detectSignatures(page, &s)
		a.detectBarcodes(page, &s)
		a.detectLogos(page, &s)
		a.detectTextBlocks(page, &s)
	}
	a.logger.Debug("structure analysis complete",
		"headers", len(s.Headers), "footers", len(s.Footers), "tables", len(s.Tables),
		"form_fields", len(s.FormFields), "signatures", len(s.Signatures),
		"logos", len(s.Logos), "barcodes", len(s.Barcodes), "text_blocks", len(s.TextBlocks))
	return s
}

// detectBands finds header and footer lines: position gate first, then a
// weighted indicator score that must clear bandAcceptScore.
func (a *Analyzer) detectBands(page ocr.Result, s *DocumentStructure) {
	if page.PageHeight <= 0 {
		return
	}
	topLimit := page.PageHeight * headerBand
	bottomLimit := page.PageHeight * (1 - footerBand)

	for _, ln := range page.Lines {
		text := strings.TrimSpace(ln.Text)
		if text == "" {
			continue
		}
		inTop := ln.Box.Y+ln.Box.Height <= topLimit
		inBottom := ln.Box.Y >= bottomLimit
		if !inTop && !inBottom {
			continue
		}
		score := bandScore(text)
		if score <= bandAcceptScore {
			continue
		}
		f := LayoutFeature{Box: ln.Box, Confidence: clamp01(score), Text: text, Page: page.Page}
		if inTop {
			f.Type = FeatureHeader
			s.Headers = append(s.Headers, f)
		} else {
			f.Type = FeatureFooter
			s.Footers = append(s.Footers, f)
		}
	}
}

func bandScore(text string) float64 {
	score := 0.5
	for _, ind := range headerIndicators {
		if ind.re.MatchString(text) {
			score += ind.delta
		}
	}
	return score
}

// detectTables clusters lines into rows by y proximity; only pages with at
// least tableMinRows rows holding 2+ lines each produce a TABLE feature.
func (a *Analyzer) detectTables(page ocr.Result, s *DocumentStructure) {
	if len(page.Lines) < tableMinRows {
		return
	}
	lines := make([]ocr.Line, len(page.Lines))
	copy(lines, page.Lines)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Box.Y < lines[j].Box.Y })

	var rows [][]ocr.Line
	for _, ln := range lines {
		if n := len(rows); n > 0 {
			last := rows[n-1]
			if ln.Box.Y-last[0].Box.Y < tableRowYSlack {
				rows[n-1] = append(last, ln)
				continue
			}
		}
		rows = append(rows, []ocr.Line{ln})
	}

	var multi [][]ocr.Line
	for _, row := range rows {
		if len(row) >= 2 {
			multi = append(multi, row)
		}
	}
	if len(multi) < tableMinRows {
		return
	}

	var box ocr.BoundingBox
	for _, row := range multi {
		for _, ln := range row {
			box = box.Union(ln.Box)
		}
	}
	s.Tables = append(s.Tables, LayoutFeature{
		Type:       FeatureTable,
		Box:        box,
		Confidence: tableConfidence,
		Page:       page.Page,
	})
}

func (a *Analyzer) detectFormFields(page ocr.Result, s *DocumentStructure) {
	for _, ln := range page.Lines {
		if reFormField.MatchString(strings.TrimSpace(ln.Text)) {
			s.FormFields = append(s.FormFields, LayoutFeature{
				Type:       FeatureFormField,
				Box:        ln.Box,
				Confidence: 0.75,
				Text:       strings.TrimSpace(ln.Text),
				Page:       page.Page,
			})
		}
	}
}

func (a *Analyzer) detectSignatures(page ocr.Result, s *DocumentStructure) {
	for _, ln := range page.Lines {
		if reSignature.MatchString(ln.Text) {
			s.Signatures = append(s.Signatures, LayoutFeature{
				Type:       FeatureSignature,
				Box:        ln.Box,
				Confidence: 0.7,
				Text:       strings.TrimSpace(ln.Text),
				Page:       page.Page,
			})
		}
	}
}

func (a *Analyzer) detectBarcodes(page ocr.Result, s *DocumentStructure) {
	for _, ln := range page.Lines {
		if reBarcode.MatchString(strings.TrimSpace(ln.Text)) {
			s.Barcodes = append(s.Barcodes, LayoutFeature{
				Type:       FeatureBarcode,
				Box:        ln.Box,
				Confidence: 0.8,
				Text:       strings.TrimSpace(ln.Text),
				Page:       page.Page,
			})
		}
	}
}

// detectLogos flags short title-case regions in the top band; OCR cannot see
// images, so this only catches wordmark-style logos.
func (a *Analyzer) detectLogos(page ocr.Result, s *DocumentStructure) {
	if page.PageHeight <= 0 {
		return
	}
	topLimit := page.PageHeight * headerBand
	for _, reg := range page.Regions {
		text := strings.TrimSpace(reg.Text)
		if text == "" || strings.ContainsRune(text, '\n') {
			continue
		}
		if reg.Box.Y+reg.Box.Height > topLimit {
			continue
		}
		if len(strings.Fields(text)) <= 4 && reLogoText.MatchString(text) {
			s.Logos = append(s.Logos, LayoutFeature{
				Type:       FeatureLogo,
				Box:        reg.Box,
				Confidence: 0.6,
				Text:       text,
				Page:       page.Page,
			})
		}
	}
}

func (a *Analyzer) detectTextBlocks(page ocr.Result, s *DocumentStructure) {
	for _, para := range page.Paragraphs {
		if len(strings.Fields(para.Text)) >= textBlockMinWord {
			s.TextBlocks = append(s.TextBlocks, LayoutFeature{
				Type:       FeatureTextBlock,
				Box:        para.Box,
				Confidence: para.Confidence,
				Text:       para.Text,
				Page:       page.Page,
			})
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
