// Package accesslog records every request and notable event as one JSON line
// in an append-only log file. Logging is fire-and-forget: a slow or broken
// disk never delays or fails an HTTP response.
package accesslog

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"portfolio-site/server/internal/accesslog/domain"
	"portfolio-site/server/internal/accesslog/repository"
	"portfolio-site/server/internal/telemetry"
	telemetrydomain "portfolio-site/server/internal/telemetry/domain"
)

// appendTimeout is the max time allowed for a single async append.
const appendTimeout = 5 * time.Second

// Logger hands entries to a goroutine that appends them via the repository.
// Failures are swallowed and reported only to the operational channel (stdlib
// log plus a telemetry event), never to the caller.
type Logger struct {
	repo    repository.Repository
	emitter telemetry.EventEmitter
	wg      sync.WaitGroup
}

// NewLogger returns a Logger appending via repo. emitter may be nil; then
// append failures are reported to the process log only.
func NewLogger(repo repository.Repository, emitter telemetry.EventEmitter) *Logger {
	return &Logger{repo: repo, emitter: emitter}
}

// Log records entry asynchronously. A zero timestamp is stamped with the
// current time. Safe to call on a nil Logger (no-op).
func (l *Logger) Log(ctx context.Context, entry *domain.Entry) {
	if l == nil || l.repo == nil || entry == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		appendCtx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		defer cancel()
		if err := l.repo.Append(appendCtx, entry); err != nil {
			log.Printf("accesslog: append failed: %v", err)
			meta, _ := json.Marshal(map[string]string{"error": err.Error(), "url": entry.URL})
			telemetry.EmitAsync(l.emitter, appendCtx, &telemetrydomain.Event{
				EventType: "logging_failure",
				Source:    "accesslog",
				Metadata:  meta,
				CreatedAt: time.Now().UTC(),
			})
		}
	}()
}

// Drain blocks until in-flight appends finish or timeout elapses. Call on
// shutdown so buffered entries reach the file.
func (l *Logger) Drain(timeout time.Duration) {
	if l == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		log.Printf("accesslog: drain timed out after %v", timeout)
	}
}
