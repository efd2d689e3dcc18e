package keywords

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/ocr"
)

// Keyword is one weighted dictionary entry for a document type.
type Keyword struct {
	Term   string
	Weight float64
}

// Match is one occurrence of a dictionary keyword on an OCR line. The
// keyword's configured weight is carried as the match confidence.
type Match struct {
	Keyword      string                 `json:"keyword"`
	DocumentType constants.DocumentType `json:"document_type"`
	Confidence   float64                `json:"confidence"`
	LineText     string                 `json:"line_text"`
	Box          ocr.BoundingBox        `json:"bounding_box"`
	Page         int                    `json:"page"`
}

// Extractor scans OCR lines against per-document-type keyword dictionaries.
// Occurrences are not deduplicated; downstream consumers aggregate.
type Extractor struct {
	logger *slog.Logger

	mu       sync.RWMutex
	dicts    map[constants.DocumentType][]Keyword
	order    []constants.DocumentType // registration order, keeps Extract deterministic
	patterns map[string]*regexp.Regexp // term -> compiled whole-word regex
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		logger:   logger,
		dicts:    map[constants.DocumentType][]Keyword{},
		patterns: map[string]*regexp.Regexp{},
	}
	for dt, kws := range defaultDictionaries {
		e.Register(dt, kws...)
	}
	return e
}

// Register adds keywords to a document type's dictionary. Terms are matched
// case-insensitively as whole words.
func (e *Extractor) Register(dt constants.DocumentType, kws ...Keyword) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, kw := range kws {
		term := strings.ToLower(strings.TrimSpace(kw.Term))
		if term == "" {
			continue
		}
		if _, ok := e.patterns[term]; !ok {
			e.patterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		}
		if _, ok := e.dicts[dt]; !ok {
			e.order = append(e.order, dt)
		}
		e.dicts[dt] = append(e.dicts[dt], Keyword{Term: term, Weight: kw.Weight})
	}
}

// Extract returns every keyword occurrence across all pages, ordered by
// descending confidence. Ties keep dictionary-then-line order.
func (e *Extractor) Extract(pages []ocr.Result, language string) []Match {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var matches []Match
	for _, p := range pages {
		for _, ln := range p.Lines {
			if ln.Text == "" {
				continue
			}
			for _, dt := range e.order {
				for _, kw := range e.dicts[dt] {
					re := e.patterns[kw.Term]
					n := len(re.FindAllStringIndex(ln.Text, -1))
					for i := 0; i < n; i++ {
						matches = append(matches, Match{
							Keyword:      kw.Term,
							DocumentType: dt,
							Confidence:   kw.Weight,
							LineText:     ln.Text,
							Box:          ln.Box,
							Page:         p.Page,
						})
					}
				}
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Confidence > matches[j].Confidence })
	e.logger.Debug("keyword extraction complete", "language", language, "matches", len(matches))
	return matches
}

// CountFor tallies matches whose keyword appears in s, keyed by keyword term.
func CountFor(matches []Match, term string) int {
	term = strings.ToLower(term)
	n := 0
	for _, m := range matches {
		if m.Keyword == term {
			n++
		}
	}
	return n
}
