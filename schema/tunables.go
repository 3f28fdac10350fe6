package schema

import (
	"fmt"
	"time"
)

// Tunables gathers every threshold the analyzers and predictor depend on.
// The source heuristics carry no calibration rationale, so each value is a
// tunable approximation rather than an exact contract; keeping them in one
// injectable structure lets them be overridden from config and
// property-tested independently of the algorithms that use them.
type Tunables struct {
	// --- Sampling ---
	DownsampleSize int // Square resolution for color histogram sampling
	DetectorSize   int // Square resolution for element detection scans
	QuantShift     uint8 // Per-channel right shift for histogram quantization

	// --- Color ---
	MaxDominantColors int     // Top-N colors extracted by pixel share
	HarmonyBaseline   float64 // Harmony score before any pairwise boosts
	HarmonyTolerance  float64 // Degrees around each harmonic angle
	HarmonyBoost      float64 // Score boost per harmonic pair

	// --- Layout ---
	BrightnessThreshold uint8   // Per-channel floor for a "whitespace" pixel
	EdgeThreshold       float64 // Laplacian magnitude for an edge pixel
	LineCoverage        float64 // Fraction of an axis that must be edges to count as a grid line

	// --- Accessibility ---
	AAContrast          float64 // WCAG AA ratio threshold
	AAAContrast         float64 // WCAG AAA ratio threshold
	ColorBlindContrast  float64 // Minimum ratio for a color-blind-safe pair
	ColorBlindPairShare float64 // Fraction of top-3 pairs that must pass
	StrongEdgeThreshold float64 // Laplacian magnitude for a "strong" edge
	FocusEdgeShare      float64 // Strong-edge fraction implying focus indicators
	TextBlockSize       int     // Side of the square blocks scanned for text
	TextEdgeDensity     float64 // Edge density marking a block as text-like

	// --- Elements ---
	RectEdgeCoverage float64 // Fraction of boundary pixels that must be edges
	ButtonMinWidth   int
	ButtonMinHeight  int
	ButtonAspectMin  float64
	ButtonAspectMax  float64
	NavRepeatCount   int // Aligned repeats beyond this imply navigation
	MaxButtons       int
	MaxForms         int
	MaxInteractive   int
	MaxImages        int
	MaxIcons         int

	// --- Prediction ---
	KNeighbors         int     // k for the nearest-neighbor search
	ConfidenceDistance float64 // Distance at which confidence reaches zero
	BaselineScore      float64 // Fallback score for an empty corpus

	// --- Pipeline ---
	StageTimeout time.Duration // How long one analyzer stage may run before neutral defaults kick in
}

// DefaultTunables returns the documented default thresholds.
func DefaultTunables() Tunables {
	return Tunables{
		DownsampleSize: 200,
		DetectorSize:   400,
		QuantShift:     3,

		MaxDominantColors: 10,
		HarmonyBaseline:   0.5,
		HarmonyTolerance:  15,
		HarmonyBoost:      0.1,

		BrightnessThreshold: 240,
		EdgeThreshold:       30,
		LineCoverage:        0.6,

		AAContrast:          4.5,
		AAAContrast:         7.0,
		ColorBlindContrast:  3.0,
		ColorBlindPairShare: 0.7,
		StrongEdgeThreshold: 100,
		FocusEdgeShare:      0.05,
		TextBlockSize:       20,
		TextEdgeDensity:     0.15,

		RectEdgeCoverage: 0.7,
		ButtonMinWidth:   50,
		ButtonMinHeight:  20,
		ButtonAspectMin:  1.5,
		ButtonAspectMax:  8,
		NavRepeatCount:   2,
		MaxButtons:       10,
		MaxForms:         5,
		MaxInteractive:   20,
		MaxImages:        8,
		MaxIcons:         15,

		KNeighbors:         5,
		ConfidenceDistance: 10.0,
		BaselineScore:      50.0,

		StageTimeout: 5 * time.Second,
	}
}

// TunablesRawInput holds optional overrides from the YAML config file.
// Only fields that are sensible to tune in the field are exposed; pointer
// types distinguish "absent" from zero.
type TunablesRawInput struct {
	DownsampleSize     *int     `mapstructure:"downsample_size"`
	DetectorSize       *int     `mapstructure:"detector_size"`
	MaxDominantColors  *int     `mapstructure:"max_dominant_colors"`
	BrightnessFloor    *int     `mapstructure:"brightness_threshold"`
	EdgeThreshold      *float64 `mapstructure:"edge_threshold"`
	RectEdgeCoverage   *float64 `mapstructure:"rect_edge_coverage"`
	KNeighbors         *int     `mapstructure:"k_neighbors"`
	ConfidenceDistance *float64 `mapstructure:"confidence_distance"`
	StageTimeout       *string  `mapstructure:"stage_timeout"`
}

// Apply overlays the raw overrides onto t, validating ranges.
func (raw *TunablesRawInput) Apply(t *Tunables) error {
	if raw.DownsampleSize != nil {
		if *raw.DownsampleSize < 8 {
			return fmt.Errorf("downsample_size must be at least 8 (received %d)", *raw.DownsampleSize)
		}
		t.DownsampleSize = *raw.DownsampleSize
	}
	if raw.DetectorSize != nil {
		if *raw.DetectorSize < 8 {
			return fmt.Errorf("detector_size must be at least 8 (received %d)", *raw.DetectorSize)
		}
		t.DetectorSize = *raw.DetectorSize
	}
	if raw.MaxDominantColors != nil {
		if *raw.MaxDominantColors < 1 || *raw.MaxDominantColors > 10 {
			return fmt.Errorf("max_dominant_colors must be in [1,10] (received %d)", *raw.MaxDominantColors)
		}
		t.MaxDominantColors = *raw.MaxDominantColors
	}
	if raw.BrightnessFloor != nil {
		if *raw.BrightnessFloor < 0 || *raw.BrightnessFloor > 255 {
			return fmt.Errorf("brightness_threshold must be in [0,255] (received %d)", *raw.BrightnessFloor)
		}
		t.BrightnessThreshold = uint8(*raw.BrightnessFloor)
	}
	if raw.EdgeThreshold != nil {
		if *raw.EdgeThreshold <= 0 {
			return fmt.Errorf("edge_threshold must be positive (received %.2f)", *raw.EdgeThreshold)
		}
		t.EdgeThreshold = *raw.EdgeThreshold
	}
	if raw.RectEdgeCoverage != nil {
		if *raw.RectEdgeCoverage <= 0 || *raw.RectEdgeCoverage > 1 {
			return fmt.Errorf("rect_edge_coverage must be in (0,1] (received %.2f)", *raw.RectEdgeCoverage)
		}
		t.RectEdgeCoverage = *raw.RectEdgeCoverage
	}
	if raw.KNeighbors != nil {
		if *raw.KNeighbors < 1 {
			return fmt.Errorf("k_neighbors must be at least 1 (received %d)", *raw.KNeighbors)
		}
		t.KNeighbors = *raw.KNeighbors
	}
	if raw.ConfidenceDistance != nil {
		if *raw.ConfidenceDistance <= 0 {
			return fmt.Errorf("confidence_distance must be positive (received %.2f)", *raw.ConfidenceDistance)
		}
		t.ConfidenceDistance = *raw.ConfidenceDistance
	}
	if raw.StageTimeout != nil {
		d, err := time.ParseDuration(*raw.StageTimeout)
		if err != nil {
			return fmt.Errorf("invalid stage_timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("stage_timeout must be positive (received %s)", d)
		}
		t.StageTimeout = d
	}
	return nil
}
