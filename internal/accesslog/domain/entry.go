package domain

import (
	"encoding/json"
	"time"
)

// Entry is one access log record: the request context fields plus optional
// event-specific extras, written as a single JSON line.
type Entry struct {
	Timestamp time.Time
	IP        string
	Method    string
	URL       string
	UserAgent string
	// Extra holds event-specific fields (e.g. verification outcome). Extra
	// keys override the base fields when they collide, matching the merge
	// order of the recorded line.
	Extra map[string]any
}

// MarshalLine returns the entry as one JSON object without a trailing newline.
// The timestamp is RFC3339 in UTC.
func (e *Entry) MarshalLine() ([]byte, error) {
	merged := make(map[string]any, 5+len(e.Extra))
	merged["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	merged["ip"] = e.IP
	merged["method"] = e.Method
	merged["url"] = e.URL
	merged["userAgent"] = e.UserAgent
	for k, v := range e.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}
