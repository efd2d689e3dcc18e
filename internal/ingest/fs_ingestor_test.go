package ingest

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/internal/entity"
)

// fakeDocumentRepo records upserts and deduplicates by content hash, the same
// contract the real repository implements over the database.
type fakeDocumentRepo struct {
	byHash map[string]*entity.Document
	calls  int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byHash: map[string]*entity.Document{}}
}

func (f *fakeDocumentRepo) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) GetByTenantAndHash(context.Context, uuid.UUID, []byte) (*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document, hash []byte, _ int) (*entity.Document, error) {
	out := *doc
	out.ID = uuid.New()
	f.byHash[hex.EncodeToString(hash)] = &out
	return &out, nil
}

func (f *fakeDocumentRepo) UpsertByHash(ctx context.Context, doc *entity.Document, hash []byte, size int) (*entity.Document, bool, error) {
	f.calls++
	if existing, ok := f.byHash[hex.EncodeToString(hash)]; ok {
		return existing, true, nil
	}
	out, err := f.Create(ctx, doc, hash, size)
	return out, false, err
}

func (f *fakeDocumentRepo) ListByTenant(context.Context, uuid.UUID, int, int) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) ApplyFiling(context.Context, uuid.UUID, string, constants.ClassificationLevel, []string, map[string]any) error {
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "statement.pdf", "fake pdf bytes")

	repo := newFakeDocumentRepo()
	ing := NewFSIngestor(repo, nil)
	tenantID := uuid.New()

	r, err := ing.IngestPath(context.Background(), tenantID, path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if r.Deduplicated {
		t.Fatal("first ingest reported as duplicate")
	}
	if r.DocumentID == "" {
		t.Fatal("missing document id")
	}
	if r.FileExt != "pdf" {
		t.Fatalf("FileExt = %q, want pdf", r.FileExt)
	}
	if r.HashHex == "" {
		t.Fatal("missing content hash")
	}

	// same content again: deduplicated, same document
	again, err := ing.IngestPath(context.Background(), tenantID, path)
	if err != nil {
		t.Fatalf("IngestPath (repeat): %v", err)
	}
	if !again.Deduplicated {
		t.Fatal("repeat ingest not deduplicated")
	}
	if again.DocumentID != r.DocumentID {
		t.Fatalf("repeat ingest returned a different document: %s vs %s", again.DocumentID, r.DocumentID)
	}
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.docx", "nope")

	ing := NewFSIngestor(newFakeDocumentRepo(), nil)
	if _, err := ing.IngestPath(context.Background(), uuid.New(), path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "content a")
	writeFile(t, dir, "b.png", "content b")
	writeFile(t, dir, "skip.txt", "not a document")
	writeFile(t, dir, ".hidden.pdf", "hidden")

	sub := filepath.Join(dir, ".cache")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, sub, "c.pdf", "inside hidden dir")

	repo := newFakeDocumentRepo()
	ing := NewFSIngestor(repo, nil)

	results, stats, err := ing.IngestDirectory(context.Background(), uuid.New(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 2 {
		t.Fatalf("Matched = %d, want 2", stats.Matched)
	}
	if stats.Succeeded != 2 {
		t.Fatalf("Succeeded = %d, want 2", stats.Succeeded)
	}
	if stats.Failed != 0 {
		t.Fatalf("Failed = %d, want 0", stats.Failed)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if repo.calls != 2 {
		t.Fatalf("repository upserts = %d, want 2", repo.calls)
	}
}

func TestIngestDirectoryContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.pdf", "readable")
	// dangling symlink: matches the extension filter but cannot be opened
	if err := os.Symlink(filepath.Join(dir, "gone.pdf"), filepath.Join(dir, "bad.pdf")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	ing := NewFSIngestor(newFakeDocumentRepo(), nil)
	results, stats, err := ing.IngestDirectory(context.Background(), uuid.New(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Succeeded != 1 {
		t.Fatalf("Succeeded = %d, want 1", stats.Succeeded)
	}
	if stats.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", stats.Failed)
	}
	var sawErr bool
	for _, r := range results {
		if r.Err != "" {
			sawErr = true
		}
	}
	if !sawErr {
		t.Fatal("expected one result carrying an error")
	}
}
