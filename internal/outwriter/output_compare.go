package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// WriteComparisonResults outputs a base/target comparison, dispatching based on the output format configured.
func WriteComparisonResults(base, target *schema.AnalysisResult, cfg *contract.Config) error {
	fmtFloat := precisionFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeComparisonJSONResult(base, target, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSVResult(base, target, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return renderReport(cfg, func(w io.Writer) error {
			return writeComparisonTable(base, target, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// comparisonRow is one metric line of the comparison, shared by all formats.
type comparisonRow struct {
	Metric string
	Base   float64
	Target float64
}

// buildComparisonRows flattens both results into score, confidence and
// per-feature rows in the fixed dimension order.
func buildComparisonRows(base, target *schema.AnalysisResult) []comparisonRow {
	rows := []comparisonRow{
		{Metric: "Predicted Score", Base: base.Prediction.PredictedScore, Target: target.Prediction.PredictedScore},
		{Metric: "Confidence", Base: base.Prediction.Confidence, Target: target.Prediction.Confidence},
	}
	for i, key := range schema.FeatureOrder {
		rows = append(rows, comparisonRow{
			Metric: schema.FeatureLabels[key],
			Base:   base.Features.Values[i],
			Target: target.Features.Values[i],
		})
	}
	return rows
}

// writeComparisonTable writes the metrics in a custom comparison format.
func writeComparisonTable(base, target *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	header := "Design Comparison"
	if cfg.UseEmojis {
		header = "🔍 " + header
	}
	if _, err := fmt.Fprintf(writer, "%s: %s vs %s\n", header, cfg.BaseImage, cfg.TargetImage); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Base", "Target", "Delta"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	labelWidth := getMaxTableLabelWidth(cfg)
	var data [][]string
	for _, r := range buildComparisonRows(base, target) {
		delta := r.Target - r.Base
		var deltaStr string
		switch {
		case delta > 0:
			// Explicitly add + sign
			deltaStr = green(fmt.Sprintf("+%.*f ▲", cfg.Precision, delta))
		case delta < 0:
			// Keeps the - sign from the float
			deltaStr = red(fmt.Sprintf("%.*f ▼", cfg.Precision, delta))
		default:
			// For 0.0 deltas, format simply without an indicator
			deltaStr = yellow(fmt.Sprintf("%.*f", cfg.Precision, 0.0))
		}
		data = append(data, []string{
			contract.TruncateLabel(r.Metric, labelWidth),
			fmtFloat(r.Base),
			fmtFloat(r.Target),
			deltaStr,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	scoreDelta := target.Prediction.PredictedScore - base.Prediction.PredictedScore
	if _, err := fmt.Fprintf(writer, "Net score delta: %+.*f (%s to %s)\n",
		cfg.Precision, scoreDelta,
		contract.GetPlainLabel(base.Prediction.PredictedScore),
		contract.GetPlainLabel(target.Prediction.PredictedScore)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Corpus backend: %s\n", base.Duration+target.Duration, cfg.CorpusBackend); err != nil {
		return err
	}
	for _, warning := range base.Warnings {
		if _, err := fmt.Fprintf(writer, "Warning (base): %s\n", warning); err != nil {
			return err
		}
	}
	for _, warning := range target.Warnings {
		if _, err := fmt.Fprintf(writer, "Warning (target): %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// writeComparisonJSONResult handles opening the file and calling the JSON writer.
func writeComparisonJSONResult(base, target *schema.AnalysisResult, cfg *contract.Config) error {
	return renderReport(cfg, func(w io.Writer) error {
		type JSONComparisonResult struct {
			BaseImage   string                 `json:"base_image"`
			TargetImage string                 `json:"target_image"`
			ScoreDelta  float64                `json:"score_delta"`
			Base        *schema.AnalysisResult `json:"base"`
			Target      *schema.AnalysisResult `json:"target"`
		}
		return renderJSON(w, JSONComparisonResult{
			BaseImage:   cfg.BaseImage,
			TargetImage: cfg.TargetImage,
			ScoreDelta:  target.Prediction.PredictedScore - base.Prediction.PredictedScore,
			Base:        base,
			Target:      target,
		})
	}, "Wrote JSON")
}

// writeComparisonCSVResult writes the comparison data to a CSV writer.
func writeComparisonCSVResult(base, target *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return renderReport(cfg, func(w io.Writer) error {
		header := []string{"metric", "base", "target", "delta"}
		return renderCSV(w, header, func(cw *csv.Writer) error {
			for _, r := range buildComparisonRows(base, target) {
				rec := []string{
					r.Metric,
					fmtFloat(r.Base),
					fmtFloat(r.Target),
					fmtFloat(r.Target - r.Base),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}
