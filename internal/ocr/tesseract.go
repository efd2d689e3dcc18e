package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config for the tesseract-backed provider.
type Config struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	TessdataDir string
	PSM         int // e.g., 6 is good for uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default
	DPI         int // rasterization DPI hint, default 300
}

// Tesseract is the reference Provider implementation. It shells out to the
// tesseract binary in TSV mode and rebuilds the word/line/paragraph/region
// hierarchy with bounding boxes from the TSV rows.
type Tesseract struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Tesseract{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

func (t *Tesseract) Recognize(ctx context.Context, path string, language string) ([]Result, error) {
	if language == "" {
		language = "eng"
	}
	args := []string{path, "stdout", "-l", language}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		t.logger.Error("tesseract failed", "path", path, "stderr", string(errb), "error", err)
		return nil, fmt.Errorf("tesseract: %w", err)
	}
	pages := ParseTSV(string(out))
	t.logger.Info("ocr complete", "path", path, "pages", len(pages), "confidence", MeanConfidence(pages))
	return pages, nil
}

// tsvRow mirrors one tesseract TSV line.
// Columns: level page block par line word left top width height conf text
type tsvRow struct {
	level, page, block, par, line int
	box                           BoundingBox
	conf                          float64
	text                          string
}

type lineKey struct{ block, par, line int }

// ParseTSV rebuilds per-page Results from tesseract TSV output. Rows with
// conf == -1 are container rows (page/block/par/line) and contribute geometry
// only; level-5 rows are words.
func ParseTSV(tsv string) []Result {
	byPage := map[int]*Result{}
	var order []int

	lineWords := map[int]map[lineKey][]Word{}
	var lineOrder = map[int][]lineKey{}

	for i, raw := range strings.Split(tsv, "\n") {
		if i == 0 || strings.TrimSpace(raw) == "" {
			continue // header / blank
		}
		cols := strings.Split(raw, "\t")
		if len(cols) < 12 {
			continue
		}
		row := tsvRow{
			level: atoi(cols[0]),
			page:  atoi(cols[1]),
			block: atoi(cols[2]),
			par:   atoi(cols[3]),
			line:  atoi(cols[4]),
			box: BoundingBox{
				X:      atof(cols[6]),
				Y:      atof(cols[7]),
				Width:  atof(cols[8]),
				Height: atof(cols[9]),
			},
			text: strings.TrimSpace(cols[11]),
		}
		if v, err := strconv.ParseFloat(cols[10], 64); err == nil {
			row.conf = v
		}

		pg, ok := byPage[row.page]
		if !ok {
			pg = &Result{Page: row.page}
			byPage[row.page] = pg
			order = append(order, row.page)
			lineWords[row.page] = map[lineKey][]Word{}
		}

		switch row.level {
		case 1: // page
			pg.PageWidth = row.box.Width
			pg.PageHeight = row.box.Height
		case 5: // word
			if row.text == "" {
				continue
			}
			w := Word{Text: row.text, Confidence: row.conf / 100.0, Box: row.box}
			pg.Words = append(pg.Words, w)
			k := lineKey{row.block, row.par, row.line}
			if _, seen := lineWords[row.page][k]; !seen {
				lineOrder[row.page] = append(lineOrder[row.page], k)
			}
			lineWords[row.page][k] = append(lineWords[row.page][k], w)
		}
	}

	results := make([]Result, 0, len(order))
	for _, p := range order {
		pg := byPage[p]
		assemble(pg, lineOrder[p], lineWords[p])
		results = append(results, *pg)
	}
	return results
}

// assemble folds words into lines, lines into paragraphs and block regions.
func assemble(pg *Result, order []lineKey, words map[lineKey][]Word) {
	type pkey struct{ block, par int }
	paraLines := map[pkey][]Line{}
	var paraOrder []pkey
	regionParas := map[int][]Paragraph{}
	var regionOrder []int

	var textParts []string
	var confSum float64
	var confN int

	for _, k := range order {
		ws := words[k]
		ln := buildLine(ws)
		textParts = append(textParts, ln.Text)
		for _, w := range ws {
			confSum += w.Confidence
			confN++
		}
		pg.Lines = append(pg.Lines, ln)

		pk := pkey{k.block, k.par}
		if _, seen := paraLines[pk]; !seen {
			paraOrder = append(paraOrder, pk)
		}
		paraLines[pk] = append(paraLines[pk], ln)
	}

	for _, pk := range paraOrder {
		lns := paraLines[pk]
		para := Paragraph{Lines: lns}
		var parts []string
		for _, ln := range lns {
			para.Box = para.Box.Union(ln.Box)
			para.Confidence += ln.Confidence
			parts = append(parts, ln.Text)
		}
		para.Confidence /= float64(len(lns))
		para.Text = strings.Join(parts, "\n")
		pg.Paragraphs = append(pg.Paragraphs, para)

		if _, seen := regionParas[pk.block]; !seen {
			regionOrder = append(regionOrder, pk.block)
		}
		regionParas[pk.block] = append(regionParas[pk.block], para)
	}

	for _, b := range regionOrder {
		paras := regionParas[b]
		reg := Region{Paragraphs: paras}
		var parts []string
		for _, para := range paras {
			reg.Box = reg.Box.Union(para.Box)
			reg.Confidence += para.Confidence
			parts = append(parts, para.Text)
		}
		reg.Confidence /= float64(len(paras))
		reg.Text = strings.Join(parts, "\n")
		pg.Regions = append(pg.Regions, reg)
	}

	pg.Text = Normalize(strings.Join(textParts, "\n"))
	if confN > 0 {
		pg.Confidence = confSum / float64(confN)
	}
}

func buildLine(ws []Word) Line {
	ln := Line{Words: ws}
	var parts []string
	for _, w := range ws {
		ln.Box = ln.Box.Union(w.Box)
		ln.Confidence += w.Confidence
		parts = append(parts, w.Text)
	}
	if len(ws) > 0 {
		ln.Confidence /= float64(len(ws))
	}
	ln.Text = strings.Join(parts, " ")
	return ln
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
