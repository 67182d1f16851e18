// Package service enumerates the gated documents directory.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"portfolio-site/server/internal/documents/domain"
)

// ErrStorage indicates the documents directory could not be read. The handler
// maps it to a generic server error; no partial listing is returned.
var ErrStorage = errors.New("documents storage unreadable")

// allowedExtensions is the document allow-list; anything else in the
// directory is invisible to the API.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Lister lists document metadata from a fixed directory.
type Lister struct {
	dir string
}

// NewLister returns a Lister over dir.
func NewLister(dir string) *Lister {
	return &Lister{dir: dir}
}

// List returns metadata for every allow-listed file directly inside the
// directory. os.ReadDir sorts by filename, so the listing order is stable
// across platforms.
func (l *Lister) List(ctx context.Context) ([]domain.Document, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	docs := make([]domain.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !allowedExtensions[ext] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		docs = append(docs, domain.Document{
			Name:         entry.Name(),
			Path:         "/files/" + url.PathEscape(entry.Name()),
			Size:         info.Size(),
			LastModified: info.ModTime().UTC(),
			Type:         strings.TrimPrefix(ext, "."),
		})
	}
	return docs, nil
}

// Check reports whether the documents directory is readable. Used by the
// health endpoint.
func (l *Lister) Check(ctx context.Context) error {
	if _, err := os.ReadDir(l.dir); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
