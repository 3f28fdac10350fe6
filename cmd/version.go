package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/designlens/designlens/schema"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of designlens.",
	Long: `Display version and build details.

The feature schema version is included because corpus entries recorded
under a different schema version are excluded from similarity search;
mismatched binaries are the usual cause of a shrinking usable corpus.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("designlens CLI\n")
		cmd.Printf("  Version:        %s\n", version)
		cmd.Printf("  Commit:         %s\n", commit)
		cmd.Printf("  Built:          %s\n", date)
		cmd.Printf("  Runtime:        %s\n", runtime.Version())
		cmd.Printf("  Feature schema: v%d (%d dimensions)\n", schema.SchemaVersion, schema.FeatureCount)
	},
}
