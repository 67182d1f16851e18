package telemetry

import (
	"context"

	"portfolio-site/server/internal/telemetry/domain"
)

// EventEmitter emits operational events (e.g. to OTel Logs or Kafka).
// Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.Event) error
}
