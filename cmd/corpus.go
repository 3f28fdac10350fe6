package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/designlens/designlens/core"
	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/internal/corpusstore"
	"github.com/designlens/designlens/schema"
)

// corpusSetup loads minimal configuration needed for corpus operations.
// This is used by commands that need store access without full shared setup.
func corpusSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get corpus-related config values
	backend := schema.DatabaseBackend(viper.GetString("corpus-backend"))
	connStr := viper.GetString("corpus-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	exportPath := viper.GetString("export-path")

	// Initialize the store with the loaded config
	if err := corpusstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize corpus store: %w", err)
	}

	cfg.CorpusBackend = backend
	cfg.CorpusDBConnect = connStr
	cfg.ExportPath = exportPath

	return nil
}

// corpusSetupWrapper wraps corpusSetup to provide PreRunE for corpus commands.
func corpusSetupWrapper(_ *cobra.Command, _ []string) error {
	return corpusSetup()
}

// corpusMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func corpusMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("corpus-backend"))
	connStr := viper.GetString("corpus-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = corpusstore.GetCorpusDBFilePath()
	}

	cfg.CorpusBackend = backend
	cfg.CorpusDBConnect = connStr

	return nil
}

// corpusMigrateSetupWrapper wraps corpusMigrateSetup to provide PreRunE for migrate command.
func corpusMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return corpusMigrateSetup()
}

// corpusCmd focused on corpus data management.
//
// Note: Most corpus subcommands use minimal initialization (corpusSetup)
// instead of the full sharedSetup used by scoring commands. The add
// subcommand is the exception because it analyzes an image.
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the validated design corpus",
	Long: `Manage the corpus of human-validated designs that grounds every prediction.

Each entry pairs a design's feature vector with the score a reviewer
assigned. Predictions find the most similar entries and weight their
scores by distance, so the corpus is the single source of scoring truth.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (baseline only)

Subcommands:
  add     - Analyze an image and store it with a validated score
  status  - Show corpus statistics and connection info
  clear   - Remove all corpus entries
  export  - Export entries to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check corpus status
  designlens corpus status

  # Add a reviewed design with its validated score
  designlens corpus add homepage.png 82 --label "marketing homepage v3"`,
}

// corpusAddCmd appends a validated entry to the corpus.
var corpusAddCmd = &cobra.Command{
	Use:   "add [image-path] [score]",
	Short: "Analyze an image and append it to the corpus with a validated score",
	Long: `Analyze a design screenshot and store its feature vector together with
the score a human reviewer assigned.

The score must be in [0,100]. The entry is tagged with the current
feature schema version; entries from older versions are kept but
excluded from similarity search.

Examples:
  # Add a reviewed landing page
  designlens corpus add homepage.png 82 --categories landing-page

  # Add with a label for later auditing
  designlens corpus add checkout.png 64 --label "checkout redesign Q3"`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}
		input.ValidatedScore = score
		return sharedSetup(rootCtx, cmd, args[:1])
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCorpusAdd(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot add corpus entry", err)
		}
	},
}

// corpusStatusCmd shows corpus status.
var corpusStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display corpus statistics and connection details",
	Long: `Show detailed information about the validated design corpus.

Displays:
- Backend type and connection status
- Total number of entries
- Entries matching the current feature schema version
- Last and oldest entry timestamps

Examples:
  # Check corpus status
  designlens corpus status`,
	PreRunE: corpusSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := corpusstore.Manager.GetCorpusStore()
		if store == nil {
			contract.LogFatal("Corpus store unavailable", fmt.Errorf("backend %q not initialized", cfg.CorpusBackend))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get corpus status", err)
		}
		corpusstore.PrintCorpusStatus(status)
	},
}

// corpusClearCmd clears the corpus.
var corpusClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all validated corpus entries",
	Long: `Delete all validated design entries from the configured backend.

WARNING: This action cannot be undone. Consider exporting first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the corpus table

Examples:
  # Export before clearing
  designlens corpus export --export-path backup.parquet
  designlens corpus clear`,
	PreRunE: corpusSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := corpusstore.DropCorpus(cfg.CorpusBackend, corpusstore.GetCorpusDBFilePath(), cfg.CorpusDBConnect); err != nil {
			contract.LogFatal("Failed to clear corpus", err)
		}
		fmt.Println("Corpus cleared successfully.")
	},
}

// corpusExportCmd exports corpus entries to a Parquet file.
var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export corpus entries to Parquet for analytics",
	Long: `Export all current-version corpus entries to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --export-path parameter

Examples:
  # Export the corpus
  designlens corpus export --export-path corpus.parquet

  # Inspect with DuckDB
  duckdb -c "SELECT score, label FROM read_parquet('corpus.parquet') LIMIT 10"`,
	PreRunE: corpusSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := corpusstore.ExecuteCorpusExport(rootCtx, cfg.ExportPath); err != nil {
			contract.LogFatal("Failed to export corpus", err)
		}
	},
}

// corpusMigrateCmd runs database migrations for the corpus store.
var corpusMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the corpus store.

Migrations allow:
- Upgrading to new schema versions when DesignLens is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  designlens corpus migrate

  # Rollback to initial state
  designlens corpus migrate --target-version 0`,
	PreRunE: corpusMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := corpusstore.MigrateCorpus(cfg.CorpusBackend, cfg.CorpusDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
