// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/designlens/designlens/schema"
)

// CorpusStore defines the operations the engine needs from the persistent
// corpus of human-validated designs. The corpus is append-only: entries are
// immutable once written, so readers never require locking and may observe
// eventually-consistent snapshots safely.
//
// The engine itself only reads; Append is invoked by the surrounding tooling
// after a human validates a score.
type CorpusStore interface {
	// FetchCandidates returns up to limit entries recorded under the given
	// feature schema version.
	FetchCandidates(ctx context.Context, schemaVersion, limit int) ([]schema.CorpusEntry, error)

	// Append stores a new validated entry and returns its ID.
	Append(ctx context.Context, entry schema.CorpusEntry) (int64, error)

	// GetStatus returns status information about the corpus store.
	GetStatus() (schema.CorpusStatus, error)

	// Clear removes all corpus entries.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager hands out the corpus store. This indirection allows the
// persistence layer to be mocked for testing.
type StoreManager interface {
	GetCorpusStore() CorpusStore
}
