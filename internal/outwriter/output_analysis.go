package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// WriteAnalysisResult outputs a scoring result, dispatching based on the output format configured.
func WriteAnalysisResult(result *schema.AnalysisResult, cfg *contract.Config) error {
	fmtFloat := precisionFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAnalysisJSONResult(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAnalysisCSVResult(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return renderReport(cfg, func(w io.Writer) error {
			return writeAnalysisTable(result, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeAnalysisJSONResult handles opening the file and calling the JSON writer.
func writeAnalysisJSONResult(result *schema.AnalysisResult, cfg *contract.Config) error {
	return renderReport(cfg, func(w io.Writer) error {
		type JSONAnalysisResult struct {
			Image string `json:"image"`
			Label string `json:"label"`
			*schema.AnalysisResult
		}
		return renderJSON(w, JSONAnalysisResult{
			Image:          cfg.ImagePath,
			Label:          contract.GetPlainLabel(result.Prediction.PredictedScore),
			AnalysisResult: result,
		})
	}, "Wrote JSON")
}

// writeAnalysisCSVResult writes one row per feature dimension plus the score
// summary, which keeps the file trivially loadable into a dataframe.
func writeAnalysisCSVResult(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return renderReport(cfg, func(w io.Writer) error {
		header := []string{"image", "feature", "value", "importance", "score", "label", "confidence"}
		return renderCSV(w, header, func(cw *csv.Writer) error {
			score := fmtFloat(result.Prediction.PredictedScore)
			label := contract.GetPlainLabel(result.Prediction.PredictedScore)
			confidence := fmtFloat(result.Prediction.Confidence)
			for i, key := range schema.FeatureOrder {
				rec := []string{
					cfg.ImagePath,
					string(key),
					fmtFloat(result.Features.Values[i]),
					fmtFloat(result.Prediction.FeatureImportance[key]),
					score,
					label,
					confidence,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeAnalysisTable generates and writes the human-readable tables.
func writeAnalysisTable(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	header := "Design Score"
	if cfg.UseEmojis {
		header = "🎨 " + header
	}
	if _, err := fmt.Fprintf(writer, "%s: %s\n", header, cfg.ImagePath); err != nil {
		return err
	}

	// 1. Summary table
	summary := tablewriter.NewWriter(writer)
	summary.Header([]string{"Score", "Label", "Confidence"})
	label := contract.GetPlainLabel(result.Prediction.PredictedScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(result.Prediction.PredictedScore)
	}
	summaryData := [][]string{{
		fmtFloat(result.Prediction.PredictedScore),
		label,
		fmtFloat(result.Prediction.Confidence),
	}}
	if err := summary.Bulk(summaryData); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	// 2. Feature table in explain mode
	if cfg.Explain {
		features := tablewriter.NewWriter(writer)
		features.Header([]string{"Feature", "Value", "Importance"})
		features.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		labelWidth := getMaxTableLabelWidth(cfg)
		var data [][]string
		for i, key := range schema.FeatureOrder {
			data = append(data, []string{
				contract.TruncateLabel(schema.FeatureLabels[key], labelWidth),
				fmtFloat(result.Features.Values[i]),
				fmtFloat(result.Prediction.FeatureImportance[key]),
			})
		}
		if err := features.Bulk(data); err != nil {
			return err
		}
		if err := features.Render(); err != nil {
			return err
		}

		writeExplanationLists(writer, result.Prediction.Explanation)
	}

	// 3. Footer with categories, timing and warnings
	if len(result.Categories) > 0 {
		cats := make([]string, len(result.Categories))
		for i, c := range result.Categories {
			cats[i] = string(c)
		}
		if _, err := fmt.Fprintf(writer, "Categories: %s\n", strings.Join(cats, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Corpus backend: %s\n", result.Duration, cfg.CorpusBackend); err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		if _, err := fmt.Fprintf(writer, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// writeExplanationLists prints the strengths/weaknesses/key-factors summary.
func writeExplanationLists(writer io.Writer, explanation schema.Explanation) {
	printList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(writer, "%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(writer, "  - %s\n", item)
		}
	}
	printList("Strengths", explanation.Strengths)
	printList("Weaknesses", explanation.Weaknesses)
	printList("Key factors", explanation.KeyFactors)
}
