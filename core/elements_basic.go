package core

import (
	"github.com/designlens/designlens/schema"
)

// basicDetector implements the rectangle-scan heuristics only: buttons,
// fields, navigation from candidate alignment, and a CTA score with a fixed
// neutral position component. Icon and image estimation require the enhanced
// detector.
type basicDetector struct {
	tun schema.Tunables
}

var _ ElementDetector = (*basicDetector)(nil)

func (d *basicDetector) Level() schema.DetailLevel {
	return schema.BasicDetail
}

func (d *basicDetector) Detect(buf *schema.PixelBuffer) (schema.UIElements, error) {
	if err := buf.Validate(); err != nil {
		return schema.UIElements{}, err
	}

	work := downsample(buf, d.tun.DetectorSize)
	gray := grayscale(work)
	edges := edgeMap(gray, work.Width, work.Height)
	candidates := scanRectangles(edges, work.Width, work.Height, d.tun)

	buttons, fields := 0, 0
	for _, rc := range candidates {
		switch {
		case isButtonLike(rc, d.tun):
			buttons++
		case isFieldLike(rc, d.tun):
			fields++
		}
	}

	// A form is approximated as a stack of input-shaped rectangles.
	forms := capCount(fields/2, d.tun.MaxForms)
	buttons = capCount(buttons, d.tun.MaxButtons)
	interactive := capCount(buttons+2*forms, d.tun.MaxInteractive)

	cta := ctaProminence(
		colorVariation(work, d.tun),
		brightnessContrast(gray, work.Width, work.Height),
		0.5, // Position scoring needs the enhanced pattern pass.
	)

	return schema.UIElements{
		Buttons:       buttons,
		Forms:         forms,
		Interactive:   interactive,
		Navigation:    alignedRepeats(candidates) > d.tun.NavRepeatCount,
		CTAProminence: cta,
	}, nil
}
