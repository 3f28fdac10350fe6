package contract

import (
	"fmt"
	"strings"

	"github.com/designlens/designlens/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	DefaultFetchLimit = 500
	MaxFetchLimit     = 10000
)

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	ImagePath  string
	Categories []schema.Category
	Detail     schema.DetailLevel
	Explain    bool
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	FetchLimit int

	CompareMode bool
	BaseImage   string
	TargetImage string

	CorpusBackend   schema.DatabaseBackend
	CorpusDBConnect string // Please use env var as this is plaintext

	// Corpus append inputs from the corpus add command.
	ValidatedScore float64
	EntryLabel     string

	// ExportPath is the parquet destination for corpus export.
	ExportPath string

	// Tunables is the engine threshold set after config file overrides.
	Tunables schema.Tunables

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags
	ImagePathStr   string
	ValidatedScore float64

	// --- Fields from rootCmd.PersistentFlags() ---
	Categories      string `mapstructure:"categories"`
	Detail          string `mapstructure:"detail"`
	Precision       int    `mapstructure:"precision"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Width           int    `mapstructure:"width"`
	FetchLimit      int    `mapstructure:"fetch-limit"`
	CorpusBackend   string `mapstructure:"corpus-backend"`
	CorpusDBConnect string `mapstructure:"corpus-db-connect"`
	Emoji           string `mapstructure:"emoji"`
	Color           string `mapstructure:"color"`

	// --- Fields from scoreCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from compareCmd.Flags() ---
	BaseImage   string `mapstructure:"base-image"`
	TargetImage string `mapstructure:"target-image"`

	// --- Fields from corpus subcommands ---
	EntryLabel string `mapstructure:"label"`
	ExportPath string `mapstructure:"export-path"`

	// --- Engine threshold overrides from config file ---
	Tunables schema.TunablesRawInput `mapstructure:"tunables"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Categories != nil {
		clone.Categories = make([]schema.Category, len(c.Categories))
		copy(clone.Categories, c.Categories)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCategories(cfg, input); err != nil {
		return err
	}
	if err := processTunables(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("corpus-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("corpus-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.ImagePath = input.ImagePathStr
	cfg.OutputFile = input.OutputFile
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.BaseImage = input.BaseImage
	cfg.TargetImage = input.TargetImage
	cfg.EntryLabel = input.EntryLabel
	cfg.ExportPath = input.ExportPath

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Detail Level Validation ---
	cfg.Detail = schema.DetailLevel(strings.ToLower(input.Detail))
	if _, ok := schema.ValidDetailLevels[cfg.Detail]; !ok {
		return fmt.Errorf("invalid detail level '%s'. must be basic, enhanced", input.Detail)
	}

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 3. Fetch Limit Validation ---
	if input.FetchLimit <= 0 || input.FetchLimit > MaxFetchLimit {
		return fmt.Errorf("fetch-limit must be greater than 0 and cannot exceed %d (received %d)", MaxFetchLimit, input.FetchLimit)
	}
	cfg.FetchLimit = input.FetchLimit

	// --- 4. Validated Score ---
	if input.ValidatedScore < 0 || input.ValidatedScore > 100 {
		return fmt.Errorf("score must be within [0,100] (received %v)", input.ValidatedScore)
	}
	cfg.ValidatedScore = input.ValidatedScore

	// --- 5. Backend Validation ---
	cfg.CorpusBackend = schema.DatabaseBackend(strings.ToLower(input.CorpusBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CorpusBackend]; !ok {
		return fmt.Errorf("invalid corpus backend '%s'. must be sqlite, mysql, postgresql, none", input.CorpusBackend)
	}
	cfg.CorpusDBConnect = input.CorpusDBConnect
	return ValidateDatabaseConnectionString(cfg.CorpusBackend, cfg.CorpusDBConnect)
}

// processCategories parses the comma-separated category hints. Unknown names
// are rejected here; the engine additionally tolerates unknowns at runtime
// since MCP clients bypass this path.
func processCategories(cfg *Config, input *ConfigRawInput) error {
	if input.Categories == "" {
		cfg.Categories = nil
		return nil
	}

	parts := strings.Split(input.Categories, ",")
	cats := make([]schema.Category, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		cat := schema.Category(strings.ToLower(trimmed))
		if _, ok := schema.ValidCategories[cat]; !ok {
			return fmt.Errorf("invalid category '%s'. must be landing-page, dashboard, mobile-app, e-commerce", trimmed)
		}
		cats = append(cats, cat)
	}
	cfg.Categories = cats
	return nil
}

// processTunables layers config file overrides on top of the default engine
// thresholds.
func processTunables(cfg *Config, input *ConfigRawInput) error {
	tun := schema.DefaultTunables()
	if err := input.Tunables.Apply(&tun); err != nil {
		return fmt.Errorf("invalid tunables override: %w", err)
	}
	cfg.Tunables = tun
	return nil
}
