package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portfolio-site/server/internal/accesslog/domain"
)

// FileRepository appends entries to a newline-delimited JSON file. Appends are
// serialized with a mutex so concurrent requests never interleave lines.
// Existing content is never rewritten or truncated; there is no rotation.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileRepository returns a repository appending to the file at path.
// The parent directory is created on first append if absent.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Append writes one entry as a single JSON line at the end of the file.
func (r *FileRepository) Append(ctx context.Context, entry *domain.Entry) error {
	line, err := entry.MarshalLine()
	if err != nil {
		return fmt.Errorf("accesslog: marshal entry: %w", err)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("accesslog: create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("accesslog: open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("accesslog: append: %w", err)
	}
	return nil
}
