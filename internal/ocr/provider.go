package ocr

import "context"

// Provider produces OCR results for a source file, one Result per page.
// The engine itself is an external collaborator; any failure is fatal for
// that document.
type Provider interface {
	Recognize(ctx context.Context, path string, language string) ([]Result, error)
}
