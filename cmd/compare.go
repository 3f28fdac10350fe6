package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/designlens/designlens/core"
	"github.com/designlens/designlens/internal/contract"
)

// compareCmd scores two screenshots and reports the delta.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two design screenshots side by side.",
	Long: `Score a base and a target screenshot with the same engine and show the
per-dimension deltas between them.

Useful for:
- Validating that a redesign actually improved the measured qualities
- A/B candidates that need an objective tiebreaker
- Tracking design drift across releases

Examples:
  # Compare a redesign against the current version
  designlens compare --base-image v1.png --target-image v2.png

  # Compare with category hints applied to both images
  designlens compare --base-image old.png --target-image new.png --categories e-commerce

  # Export the comparison to CSV
  designlens compare --base-image a.png --target-image b.png --output csv --output-file delta.csv`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if cfg.BaseImage == "" || cfg.TargetImage == "" {
			return errors.New("--base-image and --target-image are required")
		}
		cfg.CompareMode = true
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDesignCompare(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compare designs", err)
		}
	},
}
