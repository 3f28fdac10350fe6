package schema

import "time"

// Explanation is the human-readable portion of a prediction.
type Explanation struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	KeyFactors []string `json:"key_factors"` // At most 5, ordered by importance
}

// Prediction is the engine output for a single design.
type Prediction struct {
	PredictedScore    float64                `json:"predicted_score"` // In [0,100]
	Confidence        float64                `json:"confidence"`      // In [0,1]
	FeatureImportance map[FeatureKey]float64 `json:"feature_importance"`
	Explanation       Explanation            `json:"explanation"`
}

// AnalysisResult bundles the prediction with the raw per-stage metrics for
// audit and debugging, plus any warnings from degraded stages.
type AnalysisResult struct {
	Prediction    Prediction           `json:"prediction"`
	Color         ColorMetrics         `json:"color_metrics"`
	Layout        LayoutMetrics        `json:"layout_metrics"`
	Accessibility AccessibilityMetrics `json:"accessibility_metrics"`
	Elements      UIElements           `json:"ui_elements"`
	Features      FeatureVector        `json:"feature_vector"`
	Categories    []Category           `json:"categories"`
	Warnings      []string             `json:"warnings,omitempty"`
	Duration      time.Duration        `json:"duration_ns"`
}
