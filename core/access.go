package core

import (
	"github.com/designlens/designlens/schema"
)

// AnalyzeAccessibility derives WCAG compliance ratios, color-blind safety,
// and the focus-indicator and text-contrast heuristics.
//
// The stage extracts its own dominant-color summary from the buffer instead
// of consuming the color stage's output, so all four analyzers stay
// independent and can run concurrently over the same immutable buffer.
func AnalyzeAccessibility(buf *schema.PixelBuffer, tun schema.Tunables) (schema.AccessibilityMetrics, error) {
	if err := buf.Validate(); err != nil {
		return schema.AccessibilityMetrics{}, err
	}

	sample := downsample(buf, tun.DownsampleSize)
	bins := quantizedHistogram(sample, tun.QuantShift)
	dominant := dominantColors(bins, sample.NumPixels(), tun.MaxDominantColors)
	ratios := pairwiseContrast(dominant)

	work := downsample(buf, tun.DetectorSize)
	gray := grayscale(work)
	edges := edgeMap(gray, work.Width, work.Height)

	aa, aaa := complianceRatios(ratios, tun)

	return schema.AccessibilityMetrics{
		ColorBlindSafe:    colorBlindSafe(dominant, tun),
		WCAGAACompliant:   aa,
		WCAGAAACompliant:  aaa,
		FocusIndicators:   focusIndicators(edges, tun),
		TextContrastCover: textContrastCoverage(gray, edges, work.Width, work.Height, tun),
	}, nil
}

// complianceRatios returns the fraction of sampled contrast pairs meeting the
// AA and AAA thresholds. With fewer than two colors there are no pairs to
// fail, so both ratios are 1.
func complianceRatios(ratios map[string]float64, tun schema.Tunables) (aa, aaa float64) {
	if len(ratios) == 0 {
		return 1, 1
	}
	var passAA, passAAA int
	for _, r := range ratios {
		if r >= tun.AAContrast {
			passAA++
		}
		if r >= tun.AAAContrast {
			passAAA++
		}
	}
	total := float64(len(ratios))
	return clamp01(float64(passAA) / total), clamp01(float64(passAAA) / total)
}

// colorBlindSafe checks that enough of the top-3 dominant color pairs keep a
// minimum contrast, since hue alone cannot be relied on by color-blind users.
func colorBlindSafe(colors []schema.DominantColor, tun schema.Tunables) bool {
	top := colors
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) < 2 {
		return true
	}

	pairs, passing := 0, 0
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			pairs++
			a, b := top[i], top[j]
			if contrastRatio(a.R, a.G, a.B, b.R, b.G, b.B) >= tun.ColorBlindContrast {
				passing++
			}
		}
	}
	return float64(passing)/float64(pairs) >= tun.ColorBlindPairShare
}

// focusIndicators flags designs whose strong-edge fraction suggests visible
// outlines around interactive elements.
func focusIndicators(edges []float64, tun schema.Tunables) bool {
	strong := 0
	for _, e := range edges {
		if e > tun.StrongEdgeThreshold {
			strong++
		}
	}
	return float64(strong)/float64(len(edges)) > tun.FocusEdgeShare
}

// textContrastCoverage scans fixed-size blocks for text-like edge density and
// measures the luminance contrast between each candidate block's brightest
// and darkest pixel. Coverage is the fraction of candidate blocks meeting the
// AA threshold; with no candidates there is nothing to fail, so coverage is 1.
func textContrastCoverage(gray, edges []float64, width, height int, tun schema.Tunables) float64 {
	block := tun.TextBlockSize
	if block <= 0 || width < block || height < block {
		return 1
	}

	candidates, passing := 0, 0
	for by := 0; by+block <= height; by += block {
		for bx := 0; bx+block <= width; bx += block {
			edgy := 0
			darkest, brightest := 255.0, 0.0
			for y := by; y < by+block; y++ {
				for x := bx; x < bx+block; x++ {
					i := y*width + x
					if edges[i] > tun.EdgeThreshold {
						edgy++
					}
					if gray[i] < darkest {
						darkest = gray[i]
					}
					if gray[i] > brightest {
						brightest = gray[i]
					}
				}
			}

			if float64(edgy)/float64(block*block) <= tun.TextEdgeDensity {
				continue // Not a text candidate.
			}
			candidates++

			lo := uint8(darkest)
			hi := uint8(brightest)
			if contrastRatio(hi, hi, hi, lo, lo, lo) >= tun.AAContrast {
				passing++
			}
		}
	}

	if candidates == 0 {
		return 1
	}
	return clamp01(float64(passing) / float64(candidates))
}
