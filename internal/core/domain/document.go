package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// Document is the metadata row for one uploaded admission PDF. The extracted
// chunks themselves live only in the vector index.
type Document struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	MimeType    string         `json:"mime_type"`
	StoragePath string         `json:"storage_path"`
	Status      DocumentStatus `json:"status"`
	Chunks      int            `json:"chunks,omitempty"`
	Skipped     int            `json:"skipped,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IngestReport summarizes one ingestion run over a single document.
type IngestReport struct {
	Chunks   int `json:"chunks"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
}
