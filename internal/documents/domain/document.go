package domain

import "time"

// Document is the read-only projection of one file in the documents
// directory, recomputed on every listing request.
type Document struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	Type         string    `json:"type"`
}
