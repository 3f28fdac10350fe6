// Package cmd defines the command-line interface for designlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the corpus subcommands to the parent corpus command
	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusStatusCmd)
	corpusCmd.AddCommand(corpusClearCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusCmd.AddCommand(corpusMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("categories", "c", "", "Comma-separated category hints: landing-page, dashboard, mobile-app, e-commerce")
	rootCmd.PersistentFlags().String("detail", string(schema.BasicDetail), "Element detection detail level: basic or enhanced")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("fetch-limit", contract.DefaultFetchLimit, "Maximum corpus candidates fetched per prediction")
	rootCmd.PersistentFlags().String("corpus-backend", string(schema.SQLiteBackend), "Corpus backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("corpus-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().Bool("explain", false, "Print the per-dimension feature table and explanation lists")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("base-image", "", "Path to the base screenshot (BEFORE state)")
	compareCmd.Flags().String("target-image", "", "Path to the target screenshot (AFTER state)")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of corpusAddCmd to Viper
	corpusAddCmd.Flags().String("label", "", "Optional human-readable label for the corpus entry")
	if err := viper.BindPFlags(corpusAddCmd.Flags()); err != nil {
		contract.LogFatal("Error binding corpus add flags", err)
	}

	// Bind all flags of corpusExportCmd to Viper
	corpusExportCmd.Flags().String("export-path", "", "Parquet destination for the corpus export")
	if err := viper.BindPFlags(corpusExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding corpus export flags", err)
	}

	// Bind all flags of corpusMigrateCmd to Viper
	corpusMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(corpusMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding corpus migrate flags", err)
	}
}
