package core

import (
	"sort"

	"github.com/designlens/designlens/schema"
)

// Importance multipliers per feature group. Accessibility dimensions carry
// extra weight, color dimensions slightly more than neutral, and the
// category one-hot flags are damped since they describe context, not
// quality.
const (
	categoryMultiplier = 0.3
	accessMultiplier   = 1.2
	colorMultiplier    = 1.1
	defaultMultiplier  = 1.0

	// contributionScale converts a [0,1] dimension value into an importance
	// weight before the group multiplier is applied.
	contributionScale = 0.5

	strengthFloor   = 0.7 // Dimension values above this read as strengths
	weaknessCeiling = 0.4 // Dimension values below this read as weaknesses
	maxKeyFactors   = 5
)

// featureMultiplier returns the importance multiplier for a dimension.
func featureMultiplier(key schema.FeatureKey) float64 {
	switch key {
	case schema.FeatCatLandingPage, schema.FeatCatDashboard, schema.FeatCatMobileApp, schema.FeatCatEcommerce:
		return categoryMultiplier
	case schema.FeatWCAGAA, schema.FeatTextContrast:
		return accessMultiplier
	case schema.FeatColorCount, schema.FeatContrast, schema.FeatHarmony, schema.FeatVibrancy, schema.FeatHierarchy:
		return colorMultiplier
	default:
		return defaultMultiplier
	}
}

// isCategoryFeature reports whether a dimension is a one-hot context flag.
// Context flags rank in feature importance but are never called out as a
// strength or weakness: an absent category says nothing about quality.
func isCategoryFeature(key schema.FeatureKey) bool {
	return featureMultiplier(key) == categoryMultiplier
}

// BuildExplanation ranks per-feature importance and derives the
// strengths/weaknesses/key-factors summary for a prediction.
func BuildExplanation(fv schema.FeatureVector) (map[schema.FeatureKey]float64, schema.Explanation) {
	importance := make(map[schema.FeatureKey]float64, schema.FeatureCount)

	type factor struct {
		key    schema.FeatureKey
		weight float64
	}
	var strengths, weaknesses []string
	var factors []factor

	for i, key := range schema.FeatureOrder {
		value := fv.Values[i]
		weight := value * contributionScale * featureMultiplier(key)
		importance[key] = weight

		if isCategoryFeature(key) {
			continue
		}

		label := schema.FeatureLabels[key]
		switch {
		case value > strengthFloor:
			strengths = append(strengths, label)
			factors = append(factors, factor{key: key, weight: weight})
		case value < weaknessCeiling:
			weaknesses = append(weaknesses, label)
			factors = append(factors, factor{key: key, weight: weight})
		}
	}

	// Key factors: the strength/weakness dimensions ranked by absolute
	// importance, truncated to the documented cap.
	sort.Slice(factors, func(i, j int) bool {
		wi, wj := abs(factors[i].weight), abs(factors[j].weight)
		if wi != wj {
			return wi > wj
		}
		return factors[i].key < factors[j].key
	})
	if len(factors) > maxKeyFactors {
		factors = factors[:maxKeyFactors]
	}
	keyFactors := make([]string, 0, len(factors))
	for _, f := range factors {
		keyFactors = append(keyFactors, schema.FeatureLabels[f.key])
	}

	return importance, schema.Explanation{
		Strengths:  strengths,
		Weaknesses: weaknesses,
		KeyFactors: keyFactors,
	}
}
