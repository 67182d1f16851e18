package repository

import (
	"context"

	"portfolio-site/server/internal/accesslog/domain"
)

// Repository defines persistence for access log entries.
type Repository interface {
	// Append writes one entry as a complete line at the end of the log.
	Append(ctx context.Context, entry *domain.Entry) error
}
