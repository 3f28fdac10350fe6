// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints a scoring result using the configured output format.
func (ow *OutWriter) WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config) error {
	return WriteAnalysisResult(result, cfg)
}

// WriteComparison prints a side-by-side comparison of two scoring results
// using the configured output format.
func (ow *OutWriter) WriteComparison(base, target *schema.AnalysisResult, cfg *contract.Config) error {
	return WriteComparisonResults(base, target, cfg)
}

// WriteMetrics prints the feature dimension definitions using the configured
// output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return WriteMetricsDefinitions(cfg)
}
