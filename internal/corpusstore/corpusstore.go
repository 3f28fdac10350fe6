// Package corpusstore persists the human-validated design corpus.
package corpusstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// CorpusStoreManager manages the CorpusStore instance.
type CorpusStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	corpus       contract.CorpusStore
}

var _ contract.StoreManager = &CorpusStoreManager{} // Compile-time check

// GetCorpusStore returns the corpus store.
func (mgr *CorpusStoreManager) GetCorpusStore() contract.CorpusStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.corpus
}

// Global Manager instance for main logic.
var (
	Manager   = &CorpusStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetCorpusDBFilePath returns the path to the SQLite DB file for corpus storage.
func GetCorpusDBFilePath() string {
	return contract.GetCorpusDBFilePath()
}

// InitStores initializes the global store manager.
// backend can be empty to skip corpus initialization.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewCorpusStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize corpus store: %w", err)
			return
		}
		Manager.Lock()
		Manager.corpus = store
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.corpus != nil {
			_ = Manager.corpus.Close()
		}
	})
}

// DropCorpus removes the corpus storage entirely for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func DropCorpus(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSQLTable("mysql", connStr, entriesTable)

	case schema.PostgreSQLBackend:
		return dropSQLTable("pgx", connStr, entriesTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported corpus backend for clearing: %s", backend)
	}
}

// dropSQLTable connects to the SQL database and drops the table if it exists.
func dropSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
