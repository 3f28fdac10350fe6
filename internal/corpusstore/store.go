package corpusstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// entriesTable is the name of the table holding corpus entries.
const entriesTable = "designlens_corpus_entries"

// tableNamePattern restricts table identifiers to safe characters.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// CorpusStoreImpl handles durable corpus storage using various database backends.
type CorpusStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.CorpusStore = &CorpusStoreImpl{} // Compile-time check

// NewCorpusStore initializes and returns a new CorpusStore based on the backend type.
func NewCorpusStore(backend schema.DatabaseBackend, connStr string) (contract.CorpusStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(entriesTable); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetCorpusDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite corpus at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL corpus: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL corpus: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for corpus-less operation
		return &CorpusStoreImpl{
			db:         nil,
			tableName:  entriesTable,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported corpus backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(entriesTable, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", entriesTable, err)
	}

	return &CorpusStoreImpl{
		db:         db,
		tableName:  entriesTable,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// validateTableName rejects identifiers that cannot be safely interpolated.
func validateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s", name)
	}
	return nil
}

// quoteTableName quotes a table identifier for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// Feature vectors are stored as JSON arrays; schema_version gates which rows
// similarity search may consume.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				features TEXT NOT NULL,
				score DOUBLE NOT NULL,
				schema_version INT NOT NULL,
				label VARCHAR(255),
				created_at BIGINT NOT NULL,
				INDEX idx_schema_version (schema_version)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id BIGSERIAL PRIMARY KEY,
				features TEXT NOT NULL,
				score DOUBLE PRECISION NOT NULL,
				schema_version INTEGER NOT NULL,
				label TEXT,
				created_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id INTEGER PRIMARY KEY AUTOINCREMENT,
				features TEXT NOT NULL,
				score REAL NOT NULL,
				schema_version INTEGER NOT NULL,
				label TEXT,
				created_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// FetchCandidates retrieves up to limit entries recorded under the given
// schema version, newest first.
func (cs *CorpusStoreImpl) FetchCandidates(ctx context.Context, schemaVersion, limit int) ([]schema.CorpusEntry, error) {
	// Return no candidates for NoneBackend
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(cs.tableName, cs.backend)
	var query string
	switch cs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT entry_id, features, score, schema_version, label, created_at FROM %s WHERE schema_version = $1 ORDER BY entry_id DESC LIMIT $2`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT entry_id, features, score, schema_version, label, created_at FROM %s WHERE schema_version = ? ORDER BY entry_id DESC LIMIT ?`, quotedTableName)
	}

	rows, err := cs.db.QueryContext(ctx, query, schemaVersion, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch corpus candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []schema.CorpusEntry
	for rows.Next() {
		var entry schema.CorpusEntry
		var featuresJSON string
		var label sql.NullString
		var createdAt int64
		if err := rows.Scan(&entry.ID, &featuresJSON, &entry.Score, &entry.SchemaVersion, &label, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan corpus entry: %w", err)
		}
		if err := json.Unmarshal([]byte(featuresJSON), &entry.Features); err != nil {
			return nil, fmt.Errorf("corrupt feature vector in entry %d: %w", entry.ID, err)
		}
		entry.Label = label.String
		entry.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate corpus entries: %w", err)
	}
	return entries, nil
}

// Append stores a new validated entry and returns its ID. CreatedAt defaults
// to now when unset so callers can pass bare entries.
func (cs *CorpusStoreImpl) Append(ctx context.Context, entry schema.CorpusEntry) (int64, error) {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return 0, fmt.Errorf("cannot append to corpus: backend is %s", schema.NoneBackend)
	}

	featuresJSON, err := json.Marshal(entry.Features)
	if err != nil {
		return 0, fmt.Errorf("failed to encode feature vector: %w", err)
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	quotedTableName := quoteTableName(cs.tableName, cs.backend)
	if cs.backend == schema.PostgreSQLBackend {
		// pgx does not support LastInsertId; use RETURNING.
		query := fmt.Sprintf(`INSERT INTO %s (features, score, schema_version, label, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING entry_id`, quotedTableName)
		var id int64
		err := cs.db.QueryRowContext(ctx, query, string(featuresJSON), entry.Score, entry.SchemaVersion, entry.Label, createdAt.Unix()).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to append corpus entry: %w", err)
		}
		return id, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (features, score, schema_version, label, created_at) VALUES (?, ?, ?, ?, ?)`, quotedTableName)
	result, err := cs.db.ExecContext(ctx, query, string(featuresJSON), entry.Score, entry.SchemaVersion, entry.Label, createdAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to append corpus entry: %w", err)
	}
	return result.LastInsertId()
}

// GetStatus returns status information about the corpus store.
func (cs *CorpusStoreImpl) GetStatus() (schema.CorpusStatus, error) {
	status := schema.CorpusStatus{
		Backend:   string(cs.backend),
		Connected: cs.db != nil,
	}

	if cs.backend == schema.NoneBackend || cs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(cs.tableName, cs.backend)

	// Get total entries
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := cs.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	// Get entries usable at the current feature schema version
	var versionQuery string
	switch cs.backend {
	case schema.PostgreSQLBackend:
		versionQuery = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE schema_version = $1", quotedTableName)
	default: // SQLite and MySQL
		versionQuery = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE schema_version = ?", quotedTableName)
	}
	row = cs.db.QueryRow(versionQuery, schema.SchemaVersion)
	if err := row.Scan(&status.CurrentVersion); err != nil {
		return status, fmt.Errorf("failed to get current version entries: %w", err)
	}

	// Get last entry time
	lastQuery := fmt.Sprintf("SELECT MAX(created_at) FROM %s", quotedTableName)
	row = cs.db.QueryRow(lastQuery)
	var lastTs int64
	if err := row.Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last entry time: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)

	// Get oldest entry time
	oldestQuery := fmt.Sprintf("SELECT MIN(created_at) FROM %s", quotedTableName)
	row = cs.db.QueryRow(oldestQuery)
	var oldestTs int64
	if err := row.Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest entry time: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	return status, nil
}

// Clear removes all corpus entries while keeping the table in place.
func (cs *CorpusStoreImpl) Clear() error {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return nil
	}
	quotedTableName := quoteTableName(cs.tableName, cs.backend)
	query := fmt.Sprintf("DELETE FROM %s", quotedTableName)
	if _, err := cs.db.Exec(query); err != nil {
		return fmt.Errorf("failed to clear corpus: %w", err)
	}
	return nil
}

// Close closes the underlying DB connection.
func (cs *CorpusStoreImpl) Close() error {
	if cs.db != nil {
		return cs.db.Close()
	}
	return nil
}
