package core

import (
	"github.com/designlens/designlens/schema"
)

// Saturation caps normalizing raw metrics into [0,1]. Values beyond the cap
// carry no extra signal for similarity search.
const (
	maxColorCount  = 32.0 // Distinct quantized colors beyond this saturate
	maxContrastVal = 21.0 // WCAG contrast ratio ceiling
)

// BuildFeatureVector assembles the fixed-schema vector from the four stage
// outputs plus the category one-hot flags. Analyzers clamp their own
// outputs; the builder re-clamps defensively so a buggy stage can never leak
// an out-of-range dimension into the corpus.
func BuildFeatureVector(
	color schema.ColorMetrics,
	layout schema.LayoutMetrics,
	access schema.AccessibilityMetrics,
	elements schema.UIElements,
	categories []schema.Category,
	tun schema.Tunables,
) schema.FeatureVector {
	oneHot := make(map[schema.FeatureKey]float64, len(categories))
	for _, cat := range categories {
		if key, ok := schema.CategoryFeature[cat]; ok {
			oneHot[key] = 1
		}
	}

	byKey := map[schema.FeatureKey]float64{
		schema.FeatColorCount:    float64(color.ColorCount) / maxColorCount,
		schema.FeatContrast:      meanContrast(color.ContrastRatios) / maxContrastVal,
		schema.FeatHarmony:       color.HarmonyScore,
		schema.FeatVibrancy:      color.VibrancyScore,
		schema.FeatGridAlignment: layout.GridAlignment,
		schema.FeatWhiteSpace:    layout.WhiteSpaceRatio,
		schema.FeatHierarchy:     layout.VisualHierarchy,
		schema.FeatBalance:       layout.BalanceScore,
		schema.FeatConsistency:   layout.Consistency,
		schema.FeatWCAGAA:        access.WCAGAACompliant,
		schema.FeatTextContrast:  access.TextContrastCover,
		schema.FeatButtons:       float64(elements.Buttons) / float64(tun.MaxButtons),
		schema.FeatInteractive:   float64(elements.Interactive) / float64(tun.MaxInteractive),
		schema.FeatCTAProminence: elements.CTAProminence,
	}

	values := make([]float64, 0, schema.FeatureCount)
	for _, key := range schema.FeatureOrder {
		v, ok := byKey[key]
		if !ok {
			v = oneHot[key]
		}
		values = append(values, clamp01(v))
	}

	return schema.FeatureVector{Values: values, SchemaVersion: schema.SchemaVersion}
}

// meanContrast averages the pairwise contrast map; a single-color palette has
// no pairs and contributes the identity ratio.
func meanContrast(ratios map[string]float64) float64 {
	if len(ratios) == 0 {
		return 1
	}
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	return sum / float64(len(ratios))
}
