package core

import (
	"sort"

	"github.com/designlens/designlens/schema"
)

// harmonicAngles are the hue separations treated as harmonious:
// analogous (30), triadic-adjacent (60, 120), square (90), and
// complementary-adjacent (150, 180).
var harmonicAngles = []float64{30, 60, 90, 120, 150, 180}

// colorBin is one quantized histogram bucket.
type colorBin struct {
	r, g, b uint8
	count   int
}

// binAccum sums the channel values of every pixel that fell into a bucket.
type binAccum struct {
	rSum, gSum, bSum uint64
	count            int
}

// quantizedHistogram buckets the sampled pixels by lightly quantized RGB
// value and returns the bins sorted by pixel share, descending. Each bucket
// is represented by the mean of the pixels it absorbed, so pure black and
// pure white report their exact values and the 21:1 contrast ceiling stays
// reachable.
func quantizedHistogram(buf *schema.PixelBuffer, shift uint8) []colorBin {
	accums := make(map[uint32]*binAccum)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGBAt(x, y)
			key := uint32(r>>shift)<<16 | uint32(g>>shift)<<8 | uint32(b>>shift)
			acc := accums[key]
			if acc == nil {
				acc = &binAccum{}
				accums[key] = acc
			}
			acc.rSum += uint64(r)
			acc.gSum += uint64(g)
			acc.bSum += uint64(b)
			acc.count++
		}
	}

	bins := make([]colorBin, 0, len(accums))
	for _, acc := range accums {
		n := uint64(acc.count)
		bins = append(bins, colorBin{
			r:     uint8(acc.rSum / n),
			g:     uint8(acc.gSum / n),
			b:     uint8(acc.bSum / n),
			count: acc.count,
		})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].count != bins[j].count {
			return bins[i].count > bins[j].count
		}
		// Stable order for equal counts so dominant colors are deterministic.
		ki := uint32(bins[i].r)<<16 | uint32(bins[i].g)<<8 | uint32(bins[i].b)
		kj := uint32(bins[j].r)<<16 | uint32(bins[j].g)<<8 | uint32(bins[j].b)
		return ki < kj
	})
	return bins
}

// dominantColors extracts the top-N colors by pixel share from a histogram.
func dominantColors(bins []colorBin, total int, maxColors int) []schema.DominantColor {
	n := min(maxColors, len(bins))
	colors := make([]schema.DominantColor, 0, n)
	for _, bin := range bins[:n] {
		colors = append(colors, schema.DominantColor{
			Hex:        hexColor(bin.r, bin.g, bin.b),
			R:          bin.r,
			G:          bin.g,
			B:          bin.b,
			Percentage: float64(bin.count) / float64(total),
		})
	}
	return colors
}

// AnalyzeColors extracts the palette summary of a design: dominant colors,
// pairwise WCAG contrast ratios, hue harmony and vibrancy.
func AnalyzeColors(buf *schema.PixelBuffer, tun schema.Tunables) (schema.ColorMetrics, error) {
	if err := buf.Validate(); err != nil {
		return schema.ColorMetrics{}, err
	}

	sample := downsample(buf, tun.DownsampleSize)
	bins := quantizedHistogram(sample, tun.QuantShift)
	dominant := dominantColors(bins, sample.NumPixels(), tun.MaxDominantColors)

	return schema.ColorMetrics{
		DominantColors: dominant,
		ColorCount:     len(bins),
		ContrastRatios: pairwiseContrast(dominant),
		HarmonyScore:   harmonyScore(dominant, tun),
		VibrancyScore:  vibrancyScore(dominant),
	}, nil
}

// pairwiseContrast computes the WCAG contrast ratio for every unordered pair
// of dominant colors, keyed "hexA-hexB" in extraction order.
func pairwiseContrast(colors []schema.DominantColor) map[string]float64 {
	ratios := make(map[string]float64)
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			a, b := colors[i], colors[j]
			ratios[a.Hex+"-"+b.Hex] = contrastRatio(a.R, a.G, a.B, b.R, b.G, b.B)
		}
	}
	return ratios
}

// harmonyScore starts at the documented baseline and boosts the score for
// every color pair whose hue separation falls within tolerance of a harmonic
// angle. Clamped to [0,1].
func harmonyScore(colors []schema.DominantColor, tun schema.Tunables) float64 {
	score := tun.HarmonyBaseline
	hues := make([]float64, len(colors))
	for i, c := range colors {
		hues[i], _, _ = rgbToHSV(c.R, c.G, c.B)
	}

	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			d := hueDistance(hues[i], hues[j])
			for _, angle := range harmonicAngles {
				if d >= angle-tun.HarmonyTolerance && d <= angle+tun.HarmonyTolerance {
					score += tun.HarmonyBoost
					break
				}
			}
		}
	}
	return clamp01(score)
}

// vibrancyScore is the mean HSV saturation over the dominant colors.
func vibrancyScore(colors []schema.DominantColor) float64 {
	if len(colors) == 0 {
		return 0
	}
	var sum float64
	for _, c := range colors {
		_, s, _ := rgbToHSV(c.R, c.G, c.B)
		sum += s
	}
	return clamp01(sum / float64(len(colors)))
}
