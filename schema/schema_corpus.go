package schema

import "time"

// CorpusEntry is a previously human-validated design: its feature vector and
// the score a reviewer assigned. Entries are immutable once appended; the
// corpus is append-only, so readers never need locking.
type CorpusEntry struct {
	ID            int64     `json:"id"`
	Features      []float64 `json:"features"`
	Score         float64   `json:"score"` // Validated objective score in [0,100]
	SchemaVersion int       `json:"schema_version"`
	Label         string    `json:"label"` // Optional human-readable source label
	CreatedAt     time.Time `json:"created_at"`
}

// CorpusStatus reports connection and content statistics for the corpus store.
type CorpusStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	CurrentVersion  int       `json:"current_version_entries"` // Entries matching SchemaVersion
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
}
