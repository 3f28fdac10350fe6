package cmd

import (
	"github.com/spf13/cobra"

	"github.com/designlens/designlens/core"
	"github.com/designlens/designlens/internal/contract"
)

// metricsCmd displays the formal definitions of all feature dimensions.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions for all feature dimensions and adjustment rules",
	Long: `Show the formal definitions of every feature dimension and the bounded
adjustment rules applied on top of the corpus prediction.

Provides complete transparency into how designs are scored, including:
- Dimension keys, labels and analyzer groups
- What each normalized value measures
- The rule conditions and their multipliers

No image analysis is performed - this is purely informational.

Examples:
  # Show the dimension catalog
  designlens metrics

  # Machine-readable catalog for tooling
  designlens metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDesignMetrics(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
