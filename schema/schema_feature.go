package schema

import "fmt"

// SchemaVersion tags every feature vector and corpus entry. Bump it whenever
// the dimension order, the dimension count, or any analyzer heuristic feeding
// a dimension changes. Entries with a different version are excluded from
// similarity search, never truncated or padded.
const SchemaVersion = 2

// Feature dimension keys, in vector order.
const (
	FeatColorCount      FeatureKey = "color_count"
	FeatContrast        FeatureKey = "contrast"
	FeatHarmony         FeatureKey = "color_harmony"
	FeatVibrancy        FeatureKey = "vibrancy"
	FeatGridAlignment   FeatureKey = "grid_alignment"
	FeatWhiteSpace      FeatureKey = "white_space"
	FeatHierarchy       FeatureKey = "visual_hierarchy"
	FeatBalance         FeatureKey = "balance"
	FeatConsistency     FeatureKey = "consistency"
	FeatWCAGAA          FeatureKey = "wcag_aa"
	FeatTextContrast    FeatureKey = "text_contrast"
	FeatButtons         FeatureKey = "buttons"
	FeatInteractive     FeatureKey = "interactive"
	FeatCTAProminence   FeatureKey = "cta_prominence"
	FeatCatLandingPage  FeatureKey = "cat_landing_page"
	FeatCatDashboard    FeatureKey = "cat_dashboard"
	FeatCatMobileApp    FeatureKey = "cat_mobile_app"
	FeatCatEcommerce    FeatureKey = "cat_ecommerce"
)

// FeatureOrder is the fixed dimension order of the feature vector:
// 4 color, 5 layout, 2 accessibility, 3 element, 4 category one-hot flags.
var FeatureOrder = []FeatureKey{
	FeatColorCount,
	FeatContrast,
	FeatHarmony,
	FeatVibrancy,
	FeatGridAlignment,
	FeatWhiteSpace,
	FeatHierarchy,
	FeatBalance,
	FeatConsistency,
	FeatWCAGAA,
	FeatTextContrast,
	FeatButtons,
	FeatInteractive,
	FeatCTAProminence,
	FeatCatLandingPage,
	FeatCatDashboard,
	FeatCatMobileApp,
	FeatCatEcommerce,
}

// FeatureCount is the fixed dimensionality of the feature vector.
var FeatureCount = len(FeatureOrder)

// FeatureLabels maps dimension keys to human-readable names used in
// explanations and the metrics command.
var FeatureLabels = map[FeatureKey]string{
	FeatColorCount:     "Palette size",
	FeatContrast:       "Color contrast",
	FeatHarmony:        "Color harmony",
	FeatVibrancy:       "Color vibrancy",
	FeatGridAlignment:  "Grid alignment",
	FeatWhiteSpace:     "Whitespace usage",
	FeatHierarchy:      "Visual hierarchy",
	FeatBalance:        "Visual balance",
	FeatConsistency:    "Layout consistency",
	FeatWCAGAA:         "WCAG AA contrast compliance",
	FeatTextContrast:   "Text contrast coverage",
	FeatButtons:        "Button presence",
	FeatInteractive:    "Interactive elements",
	FeatCTAProminence:  "Call-to-action prominence",
	FeatCatLandingPage: "Landing page category",
	FeatCatDashboard:   "Dashboard category",
	FeatCatMobileApp:   "Mobile app category",
	FeatCatEcommerce:   "E-commerce category",
}

// CategoryFeature maps a category label to its one-hot dimension.
var CategoryFeature = map[Category]FeatureKey{
	LandingPage: FeatCatLandingPage,
	Dashboard:   FeatCatDashboard,
	MobileApp:   FeatCatMobileApp,
	Ecommerce:   FeatCatEcommerce,
}

// FeatureVector is a fixed-order, fixed-length numeric encoding of a design.
// Values are clamped to [0,1]; the order matches FeatureOrder.
type FeatureVector struct {
	Values        []float64 `json:"values"`
	SchemaVersion int       `json:"schema_version"`
}

// At returns the value of the named dimension.
func (fv *FeatureVector) At(key FeatureKey) float64 {
	for i, k := range FeatureOrder {
		if k == key {
			return fv.Values[i]
		}
	}
	return 0
}

// Validate checks length and version against the current schema.
func (fv *FeatureVector) Validate() error {
	if len(fv.Values) != FeatureCount {
		return fmt.Errorf("%w: got %d values, want %d", ErrDimensionMismatch, len(fv.Values), FeatureCount)
	}
	if fv.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: got version %d, want %d", ErrSchemaVersionMismatch, fv.SchemaVersion, SchemaVersion)
	}
	return nil
}
