// Package schema has configs, models and shared constants for all parts of designlens.
package schema

// DominantColor is one of the most frequent colors in a downsampled design,
// used as a proxy for the palette.
type DominantColor struct {
	Hex        string  `json:"hex"`        // Color as "#rrggbb"
	R          uint8   `json:"r"`          // Red channel
	G          uint8   `json:"g"`          // Green channel
	B          uint8   `json:"b"`          // Blue channel
	Percentage float64 `json:"percentage"` // Share of sampled pixels in [0,1]
}

// ColorMetrics summarizes the color space of a design.
// All scores are normalized to [0,1] before entering the feature vector.
type ColorMetrics struct {
	DominantColors []DominantColor    `json:"dominant_colors"`
	ColorCount     int                `json:"color_count"`     // Distinct quantized colors in the sample
	ContrastRatios map[string]float64 `json:"contrast_ratios"` // Pairwise WCAG ratios, keyed "hex1-hex2"
	HarmonyScore   float64            `json:"color_harmony_score"`
	VibrancyScore  float64            `json:"vibrancy_score"`
}

// LayoutMetrics summarizes the structure of a design. The hierarchy, balance
// and consistency estimators are approximations over the edge map, not exact
// perceptual measures.
type LayoutMetrics struct {
	GridAlignment   float64 `json:"grid_alignment"`
	WhiteSpaceRatio float64 `json:"white_space_ratio"`
	VisualHierarchy float64 `json:"visual_hierarchy_score"`
	BalanceScore    float64 `json:"balance_score"`
	Consistency     float64 `json:"consistency_score"`
}

// AccessibilityMetrics summarizes compliance heuristics derived from the
// color metrics and the pixel buffer.
type AccessibilityMetrics struct {
	ColorBlindSafe    bool    `json:"color_blind_safe"`
	WCAGAACompliant   float64 `json:"wcag_aa_compliant"`  // Fraction of pairs >= 4.5
	WCAGAAACompliant  float64 `json:"wcag_aaa_compliant"` // Fraction of pairs >= 7.0
	FocusIndicators   bool    `json:"focus_indicators"`
	TextContrastCover float64 `json:"text_contrast_coverage"`
}

// UIElements holds detected widget counts. Counts are capped by the tunables
// to bound the feature-vector range. The detectors are coarse edge-based
// estimators, not trained models.
type UIElements struct {
	Buttons       int     `json:"buttons"`
	Forms         int     `json:"forms"`
	Interactive   int     `json:"interactive_elements"`
	Images        int     `json:"images"`
	Icons         int     `json:"icons"`
	Navigation    bool    `json:"navigation"`
	CTAProminence float64 `json:"cta_prominence"`
}

// NeutralColorMetrics returns the documented neutral defaults substituted
// when the color stage fails or times out.
func NeutralColorMetrics() ColorMetrics {
	return ColorMetrics{
		DominantColors: []DominantColor{},
		ColorCount:     1,
		ContrastRatios: map[string]float64{},
		HarmonyScore:   0.5,
		VibrancyScore:  0.5,
	}
}

// NeutralLayoutMetrics returns the neutral defaults for a failed layout stage.
func NeutralLayoutMetrics() LayoutMetrics {
	return LayoutMetrics{
		GridAlignment:   0.5,
		WhiteSpaceRatio: 0.5,
		VisualHierarchy: 0.5,
		BalanceScore:    0.5,
		Consistency:     0.5,
	}
}

// NeutralAccessibilityMetrics returns the neutral defaults for a failed
// accessibility stage.
func NeutralAccessibilityMetrics() AccessibilityMetrics {
	return AccessibilityMetrics{
		ColorBlindSafe:    true,
		WCAGAACompliant:   0.5,
		WCAGAAACompliant:  0.5,
		FocusIndicators:   true,
		TextContrastCover: 0.5,
	}
}

// NeutralUIElements returns the neutral defaults for a failed element stage.
func NeutralUIElements() UIElements {
	return UIElements{
		Buttons:       0,
		Forms:         0,
		Interactive:   0,
		Images:        0,
		Icons:         0,
		Navigation:    false,
		CTAProminence: 0.5,
	}
}
