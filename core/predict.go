package core

import (
	"github.com/designlens/designlens/schema"
)

// Rule-adjustment thresholds and multipliers applied on top of the k-NN base
// score. Each rule is bounded so no combination can move a score outside a
// narrow band before the final clamp.
const (
	lowAACutoff      = 0.5
	lowAAPenalty     = 0.90
	highHarmonyFloor = 0.8
	harmonyBonus     = 1.05
	highHierFloor    = 0.8
	hierarchyBonus   = 1.05
	lowCTACutoff     = 0.3
	lowCTAPenalty    = 0.95
)

// applyRuleAdjustments nudges the base score with the bounded multiplicative
// rules, then clamps to [0,100]. Returns the adjusted score and whether the
// clamp had to fix an out-of-range value (an internal invariant violation
// the pipeline logs but never surfaces).
func applyRuleAdjustments(
	base float64,
	color schema.ColorMetrics,
	layout schema.LayoutMetrics,
	access schema.AccessibilityMetrics,
	elements schema.UIElements,
) (float64, bool) {
	score := base

	if access.WCAGAACompliant < lowAACutoff {
		score *= lowAAPenalty
	}
	if color.HarmonyScore > highHarmonyFloor {
		score *= harmonyBonus
	}
	if layout.VisualHierarchy > highHierFloor {
		score *= hierarchyBonus
	}
	if elements.CTAProminence < lowCTACutoff {
		score *= lowCTAPenalty
	}

	clamped := false
	if score < 0 {
		score, clamped = 0, true
	}
	if score > 100 {
		score, clamped = 100, true
	}
	return score, clamped
}
