package filing

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
)

// PathConfig controls filing path generation. DirectoryTemplates, keyed by
// document type, override the default layout; templates use the same
// placeholders Expand substitutes.
type PathConfig struct {
	Base               string
	DirectoryTemplates map[constants.DocumentType]string
}

// PathBuilder produces deterministic storage paths:
// {base}/{type}/{year}/{month}[/client_{id}][/portfolio_{id}]/{fileName},
// unless a directory template for the document type says otherwise.
type PathBuilder struct {
	cfg PathConfig
}

func NewPathBuilder(cfg PathConfig) *PathBuilder {
	if cfg.Base == "" {
		cfg.Base = "/documents"
	}
	return &PathBuilder{cfg: cfg}
}

func (b *PathBuilder) Build(doc *entity.Document) string {
	if tpl, ok := b.cfg.DirectoryTemplates[doc.DocumentType]; ok && tpl != "" {
		return b.Expand(tpl, doc)
	}

	when := filingDate(doc)
	parts := []string{
		b.cfg.Base,
		strings.ToLower(string(doc.DocumentType)),
		fmt.Sprintf("%04d", when.Year()),
		fmt.Sprintf("%02d", int(when.Month())),
	}
	if doc.ClientID != "" {
		parts = append(parts, "client_"+doc.ClientID)
	}
	if doc.PortfolioID != "" {
		parts = append(parts, "portfolio_"+doc.PortfolioID)
	}
	parts = append(parts, doc.FileName)
	return path.Join(parts...)
}

// Expand substitutes path placeholders into a folder template. Unknown
// placeholders are left alone.
func (b *PathBuilder) Expand(template string, doc *entity.Document) string {
	if doc == nil {
		return template
	}
	when := filingDate(doc)
	r := strings.NewReplacer(
		"{base}", b.cfg.Base,
		"{type}", strings.ToLower(string(doc.DocumentType)),
		"{year}", fmt.Sprintf("%04d", when.Year()),
		"{month}", fmt.Sprintf("%02d", int(when.Month())),
		"{clientId}", doc.ClientID,
		"{portfolioId}", doc.PortfolioID,
		"{fileName}", doc.FileName,
	)
	return path.Clean(r.Replace(template))
}

// filingDate prefers the document's own date over ingestion time.
func filingDate(doc *entity.Document) time.Time {
	if doc.DocumentDate != nil && !doc.DocumentDate.IsZero() {
		return *doc.DocumentDate
	}
	if !doc.CreatedAt.IsZero() {
		return doc.CreatedAt
	}
	return time.Now().UTC()
}
