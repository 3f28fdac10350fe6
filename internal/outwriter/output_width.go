package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/designlens/designlens/internal/contract"
)

// getMaxTableLabelWidth calculates the maximum width for feature labels in
// table output based on terminal width and table configuration.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 25 // Value + Importance with borders/padding

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the label column
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable label width
		return 15
	}
	if available > 45 {
		// Maximum label width to prevent ragged tables
		return 45
	}
	return available
}
