package domain

import (
	"encoding/json"
	"time"
)

// Event is an operational telemetry event (HTTP request, verification attempt,
// logging failure). Serialized as JSON for the Kafka transport; the worker's
// Loki push reads event_type, source, and created_at back out.
type Event struct {
	SessionID string          `json:"session_id,omitempty"`
	Email     string          `json:"email,omitempty"`
	EventType string          `json:"event_type"`
	Source    string          `json:"source"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
