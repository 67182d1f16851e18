package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestList_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "resume.pdf", "pdf-bytes")
	writeFile(t, dir, "cover.docx", "docx-bytes")
	writeFile(t, dir, "notes.txt", "not a document")

	lister := NewLister(dir)
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	// os.ReadDir sorts by name: cover.docx before resume.pdf.
	if docs[0].Name != "cover.docx" {
		t.Errorf("docs[0].Name = %q, want cover.docx", docs[0].Name)
	}
	if docs[1].Name != "resume.pdf" {
		t.Errorf("docs[1].Name = %q, want resume.pdf", docs[1].Name)
	}
}

func TestList_MetadataFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "resume.pdf", "pdf-bytes")

	lister := NewLister(dir)
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc.Path != "/files/resume.pdf" {
		t.Errorf("Path = %q, want /files/resume.pdf", doc.Path)
	}
	if doc.Size != int64(len("pdf-bytes")) {
		t.Errorf("Size = %d, want %d", doc.Size, len("pdf-bytes"))
	}
	if doc.Type != "pdf" {
		t.Errorf("Type = %q, want pdf", doc.Type)
	}
	if doc.LastModified.IsZero() {
		t.Error("LastModified should be set")
	}
}

func TestList_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Resume.PDF", "x")
	writeFile(t, dir, "old.DoC", "x")

	lister := NewLister(dir)
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.Type != "pdf" && doc.Type != "doc" {
			t.Errorf("Type = %q, want lowercased extension", doc.Type)
		}
	}
}

func TestList_EscapesPathNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "my resume 2025.pdf", "x")

	lister := NewLister(dir)
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Path != "/files/my%20resume%202025.pdf" {
		t.Errorf("Path = %q, want escaped name", docs[0].Path)
	}
}

func TestList_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "real.pdf", "x")

	lister := NewLister(dir)
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "real.pdf" {
		t.Errorf("docs = %+v, want only real.pdf", docs)
	}
}

func TestList_EmptyDirectory(t *testing.T) {
	lister := NewLister(t.TempDir())
	docs, err := lister.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(docs))
	}
}

func TestList_UnreadableDirectory(t *testing.T) {
	lister := NewLister(filepath.Join(t.TempDir(), "does-not-exist"))
	docs, err := lister.List(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
	if docs != nil {
		t.Errorf("docs = %v, want nil on storage error", docs)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	if err := NewLister(dir).Check(context.Background()); err != nil {
		t.Errorf("Check on readable dir: %v", err)
	}
	err := NewLister(filepath.Join(dir, "missing")).Check(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Check on missing dir = %v, want ErrStorage", err)
	}
}
