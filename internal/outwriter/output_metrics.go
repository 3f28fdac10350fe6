package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// metricDefinition documents one feature dimension for the metrics command.
type metricDefinition struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

// ruleDefinition documents one score adjustment rule.
type ruleDefinition struct {
	Name       string  `json:"name"`
	Condition  string  `json:"condition"`
	Multiplier float64 `json:"multiplier"`
}

// metricsRenderModel is the complete render model for the metrics command.
type metricsRenderModel struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Dimensions  []metricDefinition `json:"dimensions"`
	Rules       []ruleDefinition   `json:"rules"`
}

// featureGroups maps dimension keys to their analyzer group.
var featureGroups = map[schema.FeatureKey]string{
	schema.FeatColorCount:     "color",
	schema.FeatContrast:       "color",
	schema.FeatHarmony:        "color",
	schema.FeatVibrancy:       "color",
	schema.FeatGridAlignment:  "layout",
	schema.FeatWhiteSpace:     "layout",
	schema.FeatHierarchy:      "layout",
	schema.FeatBalance:        "layout",
	schema.FeatConsistency:    "layout",
	schema.FeatWCAGAA:         "accessibility",
	schema.FeatTextContrast:   "accessibility",
	schema.FeatButtons:        "elements",
	schema.FeatInteractive:    "elements",
	schema.FeatCTAProminence:  "elements",
	schema.FeatCatLandingPage: "category",
	schema.FeatCatDashboard:   "category",
	schema.FeatCatMobileApp:   "category",
	schema.FeatCatEcommerce:   "category",
}

// featureDescriptions explains what each normalized dimension measures.
var featureDescriptions = map[schema.FeatureKey]string{
	schema.FeatColorCount:     "Distinct quantized colors, normalized against a 32-color palette",
	schema.FeatContrast:       "Mean WCAG contrast ratio across dominant color pairs, normalized by 21",
	schema.FeatHarmony:        "Hue relationships between dominant colors (complementary, analogous, triadic)",
	schema.FeatVibrancy:       "Mean HSV saturation across sampled pixels",
	schema.FeatGridAlignment:  "Fraction of detected edges lying on shared horizontal or vertical lines",
	schema.FeatWhiteSpace:     "Fraction of near-white pixels",
	schema.FeatHierarchy:      "Vertical weighting of visual density toward the top of the design",
	schema.FeatBalance:        "Left/right symmetry of visual weight",
	schema.FeatConsistency:    "Evenness of visual density across a 4x4 region grid",
	schema.FeatWCAGAA:         "Fraction of dominant color pairs meeting the WCAG AA ratio",
	schema.FeatTextContrast:   "Fraction of text-like blocks with sufficient internal contrast",
	schema.FeatButtons:        "Detected button-like rectangles, normalized by the expected maximum",
	schema.FeatInteractive:    "Detected interactive elements, normalized by the expected maximum",
	schema.FeatCTAProminence:  "Size, position and color weight of the most prominent call to action",
	schema.FeatCatLandingPage: "One-hot flag for the landing-page category",
	schema.FeatCatDashboard:   "One-hot flag for the dashboard category",
	schema.FeatCatMobileApp:   "One-hot flag for the mobile-app category",
	schema.FeatCatEcommerce:   "One-hot flag for the e-commerce category",
}

// WriteMetricsDefinitions displays the formal definitions of all feature
// dimensions and adjustment rules. This is a static display that does not
// require any image analysis.
func WriteMetricsDefinitions(cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return renderReport(cfg, func(w io.Writer) error {
			return renderJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return renderReport(cfg, func(w io.Writer) error {
			return writeMetricsCSV(w, renderModel)
		}, "Wrote CSV")
	default:
		return renderReport(cfg, func(w io.Writer) error {
			return writeMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// buildMetricsRenderModel constructs the complete render model in vector order.
func buildMetricsRenderModel() *metricsRenderModel {
	dims := make([]metricDefinition, 0, len(schema.FeatureOrder))
	for _, key := range schema.FeatureOrder {
		dims = append(dims, metricDefinition{
			Key:         string(key),
			Label:       schema.FeatureLabels[key],
			Group:       featureGroups[key],
			Description: featureDescriptions[key],
		})
	}
	return &metricsRenderModel{
		Title:       "DesignLens Feature Dimensions",
		Description: fmt.Sprintf("Every design maps to a fixed %d-dimension vector (schema version %d); scores come from nearest corpus neighbors plus the rules below", schema.FeatureCount, schema.SchemaVersion),
		Dimensions:  dims,
		Rules: []ruleDefinition{
			{Name: "low_accessibility", Condition: "wcag_aa < 0.5", Multiplier: 0.90},
			{Name: "strong_harmony", Condition: "color_harmony > 0.8", Multiplier: 1.05},
			{Name: "strong_hierarchy", Condition: "visual_hierarchy > 0.8", Multiplier: 1.05},
			{Name: "weak_cta", Condition: "cta_prominence < 0.3", Multiplier: 0.95},
		},
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *metricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "📐 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(renderModel.Title))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	group := ""
	for _, dim := range renderModel.Dimensions {
		if dim.Group != group {
			group = dim.Group
			if _, err := fmt.Fprintf(w, "%s:\n", strings.ToUpper(group)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "   %-20s %s\n", dim.Key, dim.Description); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nADJUSTMENT RULES:\n"); err != nil {
		return err
	}
	for _, rule := range renderModel.Rules {
		if _, err := fmt.Fprintf(w, "   %-20s %s => score x %.2f\n", rule.Name, rule.Condition, rule.Multiplier); err != nil {
			return err
		}
	}
	return nil
}

// writeMetricsCSV writes the metrics definitions in CSV format.
func writeMetricsCSV(w io.Writer, renderModel *metricsRenderModel) error {
	header := []string{"key", "label", "group", "description"}
	return renderCSV(w, header, func(cw *csv.Writer) error {
		for _, dim := range renderModel.Dimensions {
			rec := []string{dim.Key, dim.Label, dim.Group, dim.Description}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
