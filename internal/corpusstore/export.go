package corpusstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/designlens/designlens/internal/parquet"
	"github.com/designlens/designlens/schema"
)

// exportFetchLimit bounds a single export. The corpus is expected to stay
// orders of magnitude below this.
const exportFetchLimit = 100000

// ExecuteCorpusExport exports the current-version corpus entries to a
// Parquet file.
func ExecuteCorpusExport(ctx context.Context, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--export-path is required for export command")
	}

	store := Manager.GetCorpusStore()
	if store == nil {
		return errors.New("corpus store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get corpus status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no corpus entries found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total corpus entries: %d\n", status.TotalEntries)

	entries, err := store.FetchCandidates(ctx, schema.SchemaVersion, exportFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve corpus entries: %w", err)
	}

	records := parquet.ConvertCorpusEntries(entries)
	if err := parquet.WriteCorpusEntriesParquet(records, outputFile); err != nil {
		return fmt.Errorf("failed to write corpus entries: %w", err)
	}
	fmt.Printf("Exported %d corpus entries to: %s\n", len(records), outputFile)

	return nil
}
