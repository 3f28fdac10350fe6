package core

import (
	"fmt"

	"github.com/designlens/designlens/schema"
)

// ElementDetector locates widget-like structures in a design. Two
// implementations exist: basic covers the rectangle-scan heuristics, and
// enhanced adds repeated-pattern, icon and image estimators. Both are coarse
// edge-based approximations with no trained model behind them.
type ElementDetector interface {
	// Level reports which detail level this detector implements.
	Level() schema.DetailLevel

	// Detect scans the buffer and returns capped element counts.
	Detect(buf *schema.PixelBuffer) (schema.UIElements, error)
}

// NewElementDetector selects the detector implementation for the configured
// detail level.
func NewElementDetector(level schema.DetailLevel, tun schema.Tunables) (ElementDetector, error) {
	switch level {
	case schema.BasicDetail:
		return &basicDetector{tun: tun}, nil
	case schema.EnhancedDetail:
		return &enhancedDetector{basicDetector{tun: tun}}, nil
	default:
		return nil, fmt.Errorf("unknown detail level %q", level)
	}
}

// rectCandidate is a window that passed four-edge verification, in detector
// resolution coordinates.
type rectCandidate struct {
	x, y, w, h int
}

func (rc rectCandidate) aspect() float64 {
	return float64(rc.w) / float64(rc.h)
}

// scanWindows are the window geometries tried during the rectangle scan,
// covering button-, field- and tile-shaped regions at the detector
// resolution.
var scanWindows = []struct{ w, h int }{
	{120, 40},
	{96, 32},
	{64, 24},
	{160, 36},
	{48, 48},
	{32, 32},
}

// scanRectangles slides each window geometry over the edge map and keeps
// windows whose four boundary edges are each covered by enough edge pixels.
// Overlapping candidates of the same geometry are suppressed by striding
// half a window per step.
func scanRectangles(edges []float64, width, height int, tun schema.Tunables) []rectCandidate {
	var candidates []rectCandidate
	for _, win := range scanWindows {
		if win.w >= width || win.h >= height {
			continue
		}
		strideX := max(win.w/2, 1)
		strideY := max(win.h/2, 1)
		for y := 0; y+win.h < height; y += strideY {
			for x := 0; x+win.w < width; x += strideX {
				if verifyRectangle(edges, width, x, y, win.w, win.h, tun) {
					candidates = append(candidates, rectCandidate{x: x, y: y, w: win.w, h: win.h})
				}
			}
		}
	}
	return candidates
}

// verifyRectangle checks each of the four boundary runs independently:
// a side counts only when enough of its pixels exceed the edge threshold.
func verifyRectangle(edges []float64, width, x, y, w, h int, tun schema.Tunables) bool {
	countRow := func(row, x0, x1 int) int {
		hits := 0
		for i := x0; i < x1; i++ {
			if edges[row*width+i] > tun.EdgeThreshold {
				hits++
			}
		}
		return hits
	}
	countCol := func(col, y0, y1 int) int {
		hits := 0
		for i := y0; i < y1; i++ {
			if edges[i*width+col] > tun.EdgeThreshold {
				hits++
			}
		}
		return hits
	}

	need := func(n int) int { return int(tun.RectEdgeCoverage * float64(n)) }

	if countRow(y, x, x+w) < need(w) {
		return false
	}
	if countRow(y+h-1, x, x+w) < need(w) {
		return false
	}
	if countCol(x, y, y+h) < need(h) {
		return false
	}
	return countCol(x+w-1, y, y+h) >= need(h)
}

// isButtonLike applies the aspect-ratio and minimum-size rule for buttons.
func isButtonLike(rc rectCandidate, tun schema.Tunables) bool {
	a := rc.aspect()
	return a >= tun.ButtonAspectMin && a <= tun.ButtonAspectMax &&
		rc.w >= tun.ButtonMinWidth && rc.h >= tun.ButtonMinHeight
}

// isFieldLike flags wide, short rectangles shaped like text inputs.
func isFieldLike(rc rectCandidate, tun schema.Tunables) bool {
	a := rc.aspect()
	return a > tun.ButtonAspectMax && rc.h >= tun.ButtonMinHeight
}

// alignedRepeats counts the largest group of candidates sharing a horizontal
// or vertical axis within a small tolerance. Used by the navigation
// heuristic.
func alignedRepeats(candidates []rectCandidate) int {
	const tolerance = 8

	best := 0
	axisCount := func(key func(rectCandidate) int) {
		groups := make(map[int]int)
		for _, rc := range candidates {
			bucket := key(rc) / tolerance
			groups[bucket]++
			if groups[bucket] > best {
				best = groups[bucket]
			}
		}
	}
	axisCount(func(rc rectCandidate) int { return rc.y })
	axisCount(func(rc rectCandidate) int { return rc.x })
	return best
}

// brightnessContrast measures max-min mean brightness over a coarse block
// grid, normalized to [0,1].
func brightnessContrast(gray []float64, width, height int) float64 {
	block := max(width/8, 1)
	minMean, maxMean := 255.0, 0.0
	for by := 0; by+block <= height; by += block {
		for bx := 0; bx+block <= width; bx += block {
			var sum float64
			for y := by; y < by+block; y++ {
				for x := bx; x < bx+block; x++ {
					sum += gray[y*width+x]
				}
			}
			mean := sum / float64(block*block)
			if mean < minMean {
				minMean = mean
			}
			if mean > maxMean {
				maxMean = mean
			}
		}
	}
	if maxMean < minMean {
		return 0
	}
	return clamp01((maxMean - minMean) / 255.0)
}

// colorVariation normalizes the distinct quantized color count against a
// fixed cap of 512 buckets.
func colorVariation(buf *schema.PixelBuffer, tun schema.Tunables) float64 {
	bins := quantizedHistogram(buf, tun.QuantShift)
	return clamp01(float64(len(bins)) / 512.0)
}

// ctaProminence is the weighted blend behind the CTA score: 40% color
// variation, 30% brightness contrast, 30% position. The position component
// is supplied by the detector since only the enhanced variant scores
// placement.
func ctaProminence(colorVar, brightContrast, position float64) float64 {
	return clamp01(0.4*colorVar + 0.3*brightContrast + 0.3*position)
}

func capCount(n, maxN int) int {
	return min(max(n, 0), maxN)
}
