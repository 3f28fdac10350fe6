package cmd

import (
	"github.com/spf13/cobra"

	"github.com/designlens/designlens/core"
	"github.com/designlens/designlens/internal/contract"
)

// scoreCmd scores a single design screenshot.
var scoreCmd = &cobra.Command{
	Use:   "score [image-path]",
	Short: "Score a design screenshot against the validated corpus.",
	Long: `Analyze a design screenshot and predict its objective quality score.

Four analyzers run concurrently over the decoded pixels:
- Color: palette size, contrast, harmony and vibrancy
- Layout: grid alignment, whitespace, hierarchy, balance and consistency
- Accessibility: WCAG contrast compliance and text contrast coverage
- Elements: buttons, interactive elements and call-to-action prominence

Their metrics feed a fixed feature vector, which is matched against the
corpus of human-validated designs. The nearest neighbors produce a base
score that bounded rules then adjust.

Examples:
  # Score a landing page screenshot
  designlens score homepage.png --categories landing-page

  # Include the feature breakdown and explanation
  designlens score dashboard.png --categories dashboard --explain

  # Use the thorough element detector and export to JSON
  designlens score app.png --detail enhanced --output json --output-file result.json

  # Score without a corpus (baseline prediction only)
  designlens score draft.png --corpus-backend none`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDesignScore(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot score design", err)
		}
	},
}
