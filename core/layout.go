package core

import (
	"gonum.org/v1/gonum/stat"

	"github.com/designlens/designlens/schema"
)

// layoutScanStride controls how many rows/columns the grid estimator skips
// between scans. Scanning every line adds cost without changing the fraction
// meaningfully at the working resolution.
const layoutScanStride = 4

// AnalyzeLayout estimates the structural qualities of a design from its edge
// map: grid alignment, whitespace, and the hierarchy/balance/consistency
// approximations. All outputs are clamped to [0,1].
func AnalyzeLayout(buf *schema.PixelBuffer, tun schema.Tunables) (schema.LayoutMetrics, error) {
	if err := buf.Validate(); err != nil {
		return schema.LayoutMetrics{}, err
	}

	work := downsample(buf, tun.DetectorSize)
	gray := grayscale(work)
	edges := edgeMap(gray, work.Width, work.Height)

	return schema.LayoutMetrics{
		GridAlignment:   gridAlignment(edges, work.Width, work.Height, tun),
		WhiteSpaceRatio: whitespaceRatio(work, tun),
		VisualHierarchy: hierarchyScore(edges, work.Width, work.Height, tun),
		BalanceScore:    balanceScore(edges, work.Width, work.Height),
		Consistency:     consistencyScore(edges, work.Width, work.Height, tun),
	}, nil
}

// gridAlignment is the fraction of scanned rows and columns whose edge
// intensity forms a near-continuous line. A threshold-based linearity
// estimator, not a Hough transform.
func gridAlignment(edges []float64, width, height int, tun schema.Tunables) float64 {
	scanned, lines := 0, 0

	for y := 1; y < height-1; y += layoutScanStride {
		scanned++
		hits := 0
		for x := 0; x < width; x++ {
			if edges[y*width+x] > tun.EdgeThreshold {
				hits++
			}
		}
		if float64(hits)/float64(width) >= tun.LineCoverage {
			lines++
		}
	}

	for x := 1; x < width-1; x += layoutScanStride {
		scanned++
		hits := 0
		for y := 0; y < height; y++ {
			if edges[y*width+x] > tun.EdgeThreshold {
				hits++
			}
		}
		if float64(hits)/float64(height) >= tun.LineCoverage {
			lines++
		}
	}

	if scanned == 0 {
		return 0
	}
	return clamp01(float64(lines) / float64(scanned))
}

// whitespaceRatio is the fraction of pixels whose three channels all exceed
// the brightness threshold.
func whitespaceRatio(buf *schema.PixelBuffer, tun schema.Tunables) float64 {
	white := 0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGBAt(x, y)
			if r > tun.BrightnessThreshold && g > tun.BrightnessThreshold && b > tun.BrightnessThreshold {
				white++
			}
		}
	}
	return clamp01(float64(white) / float64(buf.NumPixels()))
}

// rowEdgeDensity returns the per-row fraction of edge pixels.
func rowEdgeDensity(edges []float64, width, height int, threshold float64) []float64 {
	density := make([]float64, height)
	for y := 0; y < height; y++ {
		hits := 0
		for x := 0; x < width; x++ {
			if edges[y*width+x] > threshold {
				hits++
			}
		}
		density[y] = float64(hits) / float64(width)
	}
	return density
}

// colEdgeDensity returns the per-column fraction of edge pixels.
func colEdgeDensity(edges []float64, width, height int, threshold float64) []float64 {
	density := make([]float64, width)
	for x := 0; x < width; x++ {
		hits := 0
		for y := 0; y < height; y++ {
			if edges[y*width+x] > threshold {
				hits++
			}
		}
		density[x] = float64(hits) / float64(height)
	}
	return density
}

// hierarchyScore approximates visual hierarchy as top-heaviness: designs
// whose upper band carries denser detail than the lower band read as having a
// clearer entry point. 0.5 means no vertical emphasis either way.
func hierarchyScore(edges []float64, width, height int, tun schema.Tunables) float64 {
	density := rowEdgeDensity(edges, width, height, tun.EdgeThreshold)
	third := height / 3
	if third == 0 {
		return 0.5
	}

	top := stat.Mean(density[:third], nil)
	bottom := stat.Mean(density[len(density)-third:], nil)
	return clamp01(0.5 + 2*(top-bottom))
}

// balanceScore measures how close the edge-intensity centroid sits to the
// geometric center. A perfectly balanced design scores 1.
func balanceScore(edges []float64, width, height int) float64 {
	var total, sumX, sumY float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			e := edges[y*width+x]
			total += e
			sumX += e * float64(x)
			sumY += e * float64(y)
		}
	}
	if total == 0 {
		return 1 // No detail at all is trivially balanced.
	}

	cx := sumX / total
	cy := sumY / total
	dx := (cx - float64(width)/2) / (float64(width) / 2)
	dy := (cy - float64(height)/2) / (float64(height) / 2)
	offset := (abs(dx) + abs(dy)) / 2
	return clamp01(1 - offset)
}

// consistencyScore approximates layout consistency as the evenness of column
// edge density: repeated column structure yields a low coefficient of
// variation.
func consistencyScore(edges []float64, width, height int, tun schema.Tunables) float64 {
	density := colEdgeDensity(edges, width, height, tun.EdgeThreshold)
	mean := stat.Mean(density, nil)
	if mean == 0 {
		return 1 // Uniformly empty columns are trivially consistent.
	}
	cv := stat.StdDev(density, nil) / mean
	return clamp01(1 - cv/2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
