// Package parquet provides data structures and functions for exporting the
// design corpus to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/designlens/designlens/schema"
)

// CorpusEntryRecord represents a single validated corpus entry.
// This struct maps to the designlens_corpus_entries database table.
type CorpusEntryRecord struct {
	// EntryID is the unique identifier for this corpus entry
	EntryID int64 `parquet:"entry_id,snappy"`

	// Features is the JSON-encoded feature vector
	Features string `parquet:"features,snappy"`

	// Score is the human-validated design score in [0,100]
	Score float64 `parquet:"score,snappy"`

	// SchemaVersion is the feature schema version the vector was built under
	SchemaVersion int32 `parquet:"schema_version,snappy"`

	// Label is an optional human-readable description (nullable)
	Label *string `parquet:"label,optional,snappy"`

	// CreatedAt is when the entry was recorded (stored as TIMESTAMP)
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// ConvertCorpusEntries converts store entries into Parquet records.
// Entries whose feature vector cannot be encoded are skipped.
func ConvertCorpusEntries(entries []schema.CorpusEntry) []CorpusEntryRecord {
	records := make([]CorpusEntryRecord, 0, len(entries))
	for _, entry := range entries {
		features, err := json.Marshal(entry.Features)
		if err != nil {
			continue
		}
		record := CorpusEntryRecord{
			EntryID:       entry.ID,
			Features:      string(features),
			Score:         entry.Score,
			SchemaVersion: int32(entry.SchemaVersion),
			CreatedAt:     entry.CreatedAt,
		}
		if entry.Label != "" {
			label := entry.Label
			record.Label = &label
		}
		records = append(records, record)
	}
	return records
}

// WriteCorpusEntriesParquet writes a slice of CorpusEntryRecord structs to a Parquet file.
func WriteCorpusEntriesParquet(data []CorpusEntryRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CorpusEntryRecord struct tags
	writer := parquet.NewGenericWriter[CorpusEntryRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
