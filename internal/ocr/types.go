package ocr

import "strings"

// BoundingBox locates an element on the page in pixel coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether other lies fully inside b.
func (b BoundingBox) Contains(other BoundingBox) bool {
	return other.X >= b.X &&
		other.Y >= b.Y &&
		other.X+other.Width <= b.X+b.Width &&
		other.Y+other.Height <= b.Y+b.Height
}

// Union returns the smallest box covering both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if b.Width == 0 && b.Height == 0 {
		return other
	}
	x1 := min(b.X, other.X)
	y1 := min(b.Y, other.Y)
	x2 := max(b.X+b.Width, other.X+other.Width)
	y2 := max(b.Y+b.Height, other.Y+other.Height)
	return BoundingBox{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Word is the smallest OCR unit.
type Word struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"` // 0..1
	Box        BoundingBox `json:"bounding_box"`
}

// Line is an ordered run of words sharing a baseline.
type Line struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
	Words      []Word      `json:"words,omitempty"`
}

// Paragraph groups consecutive lines.
type Paragraph struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
	Lines      []Line      `json:"lines,omitempty"`
}

// Region is a block-level unit (column, table area, header band).
type Region struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Result holds the OCR output for one page. Immutable once produced by the
// provider; the pipeline only reads it.
type Result struct {
	Page       int     `json:"page"`
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // mean word confidence, 0..1

	Words      []Word      `json:"words,omitempty"`
	Lines      []Line      `json:"lines,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
	Regions    []Region    `json:"regions,omitempty"`
}

// AllLines flattens lines across pages preserving page then reading order.
func AllLines(pages []Result) []Line {
	var out []Line
	for _, p := range pages {
		out = append(out, p.Lines...)
	}
	return out
}

// AllRegions flattens regions across pages.
func AllRegions(pages []Result) []Region {
	var out []Region
	for _, p := range pages {
		out = append(out, p.Regions...)
	}
	return out
}

// JoinText concatenates the page texts with form feeds between pages.
func JoinText(pages []Result) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\f")
}

// MeanConfidence averages page confidences; 0 for empty input.
func MeanConfidence(pages []Result) float64 {
	if len(pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pages {
		sum += p.Confidence
	}
	return sum / float64(len(pages))
}

// Counts returns total word, line and region counts, used as classifier features.
func Counts(pages []Result) (words, lines, regions int) {
	for _, p := range pages {
		words += len(p.Words)
		lines += len(p.Lines)
		regions += len(p.Regions)
	}
	return
}
