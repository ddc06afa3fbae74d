package downloads

import "time"

// Record describes one rendered download. The document itself is never
// stored.
type Record struct {
	ID          string    `json:"id"`
	Format      string    `json:"format"`
	ContentType string    `json:"content_type"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	Digest      string    `json:"sha256"`
	Fallback    bool      `json:"fallback"`
	CreatedAt   time.Time `json:"created_at"`
}
