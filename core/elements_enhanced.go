package core

import (
	"math"

	"github.com/designlens/designlens/schema"
)

// enhancedDetector extends the basic rectangle scan with block-level icon and
// image estimators and a placement-aware CTA position score.
type enhancedDetector struct {
	basicDetector
}

var _ ElementDetector = (*enhancedDetector)(nil)

// Block geometry for the icon/image estimators, in detector-resolution
// pixels.
const (
	iconBlockSize  = 16
	imageBlockSize = 48

	// iconEdgeDensity marks a small block as icon-like; imageEdgeDensity is
	// the ceiling under which a large block reads as continuous imagery.
	iconEdgeDensity  = 0.25
	imageEdgeDensity = 0.02

	// imageBlocksPer is how many continuous blocks approximate one image.
	imageBlocksPer = 4
)

func (d *enhancedDetector) Level() schema.DetailLevel {
	return schema.EnhancedDetail
}

func (d *enhancedDetector) Detect(buf *schema.PixelBuffer) (schema.UIElements, error) {
	if err := buf.Validate(); err != nil {
		return schema.UIElements{}, err
	}

	work := downsample(buf, d.tun.DetectorSize)
	gray := grayscale(work)
	edges := edgeMap(gray, work.Width, work.Height)
	candidates := scanRectangles(edges, work.Width, work.Height, d.tun)

	buttons, fields := 0, 0
	var buttonRects []rectCandidate
	for _, rc := range candidates {
		switch {
		case isButtonLike(rc, d.tun):
			buttons++
			buttonRects = append(buttonRects, rc)
		case isFieldLike(rc, d.tun):
			fields++
		}
	}

	forms := capCount(fields/2, d.tun.MaxForms)
	buttons = capCount(buttons, d.tun.MaxButtons)

	icons := capCount(countIconBlocks(edges, work.Width, work.Height, d.tun), d.tun.MaxIcons)
	images := capCount(countImageBlocks(gray, edges, work.Width, work.Height, d.tun), d.tun.MaxImages)
	interactive := capCount(buttons+2*forms+icons/3, d.tun.MaxInteractive)

	cta := ctaProminence(
		colorVariation(work, d.tun),
		brightnessContrast(gray, work.Width, work.Height),
		positionScore(buttonRects, work.Width, work.Height),
	)

	return schema.UIElements{
		Buttons:       buttons,
		Forms:         forms,
		Interactive:   interactive,
		Images:        images,
		Icons:         icons,
		Navigation:    alignedRepeats(candidates) > d.tun.NavRepeatCount,
		CTAProminence: cta,
	}, nil
}

// countIconBlocks counts small, edge-dense square blocks. Adjacent hits are
// collapsed by striding a full block per step.
func countIconBlocks(edges []float64, width, height int, tun schema.Tunables) int {
	count := 0
	for by := 0; by+iconBlockSize <= height; by += iconBlockSize {
		for bx := 0; bx+iconBlockSize <= width; bx += iconBlockSize {
			edgy := 0
			for y := by; y < by+iconBlockSize; y++ {
				for x := bx; x < bx+iconBlockSize; x++ {
					if edges[y*width+x] > tun.EdgeThreshold {
						edgy++
					}
				}
			}
			if float64(edgy)/float64(iconBlockSize*iconBlockSize) > iconEdgeDensity {
				count++
			}
		}
	}
	return count
}

// countImageBlocks estimates photographic regions: large blocks with nearly
// no edges that are not plain background (their brightness sits below the
// whitespace range). Several continuous blocks approximate one image.
func countImageBlocks(gray, edges []float64, width, height int, tun schema.Tunables) int {
	blocks := 0
	for by := 0; by+imageBlockSize <= height; by += imageBlockSize {
		for bx := 0; bx+imageBlockSize <= width; bx += imageBlockSize {
			edgy := 0
			var sum float64
			for y := by; y < by+imageBlockSize; y++ {
				for x := bx; x < bx+imageBlockSize; x++ {
					i := y*width + x
					if edges[i] > tun.EdgeThreshold {
						edgy++
					}
					sum += gray[i]
				}
			}
			area := float64(imageBlockSize * imageBlockSize)
			mean := sum / area
			if float64(edgy)/area < imageEdgeDensity && mean < float64(tun.BrightnessThreshold) {
				blocks++
			}
		}
	}
	return blocks / imageBlocksPer
}

// ctaAnchors are the normalized positions where a primary call to action
// typically lands: hero center and the lower action band. Unvalidated
// placement heuristic, kept as a labeled approximation.
var ctaAnchors = [][2]float64{
	{0.5, 0.33},
	{0.5, 0.8},
}

// positionScore scores the best-placed button candidate by its distance to
// the nearest CTA anchor. No candidates at all score poorly.
func positionScore(buttons []rectCandidate, width, height int) float64 {
	if len(buttons) == 0 {
		return 0.3
	}

	best := 0.0
	for _, rc := range buttons {
		cx := (float64(rc.x) + float64(rc.w)/2) / float64(width)
		cy := (float64(rc.y) + float64(rc.h)/2) / float64(height)
		for _, anchor := range ctaAnchors {
			d := math.Hypot(cx-anchor[0], cy-anchor[1])
			score := clamp01(1 - d)
			if score > best {
				best = score
			}
		}
	}
	return best
}
