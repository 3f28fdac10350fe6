package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.0, clamp01(0.0))
	assert.Equal(t, 0.42, clamp01(0.42))
	assert.Equal(t, 1.0, clamp01(1.0))
	assert.Equal(t, 1.0, clamp01(7.0))
}

func TestContrastRatio(t *testing.T) {
	// A color against itself is exactly the identity ratio.
	assert.Equal(t, 1.0, contrastRatio(128, 64, 200, 128, 64, 200))

	// Black on white hits the WCAG maximum.
	assert.InDelta(t, 21.0, contrastRatio(0, 0, 0, 255, 255, 255), 1e-9)

	// Symmetric in its arguments.
	ab := contrastRatio(30, 144, 255, 220, 20, 60)
	ba := contrastRatio(220, 20, 60, 30, 144, 255)
	assert.Equal(t, ab, ba)
	assert.GreaterOrEqual(t, ab, 1.0)
	assert.LessOrEqual(t, ab, 21.0)
}

func TestRelativeLuminance(t *testing.T) {
	assert.Equal(t, 0.0, relativeLuminance(0, 0, 0))
	assert.InDelta(t, 1.0, relativeLuminance(255, 255, 255), 1e-9)

	// Green dominates the perceptual weighting.
	assert.Greater(t, relativeLuminance(0, 255, 0), relativeLuminance(255, 0, 0))
	assert.Greater(t, relativeLuminance(255, 0, 0), relativeLuminance(0, 0, 255))
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{name: "pure red", r: 255, h: 0, s: 1, v: 1},
		{name: "pure green", g: 255, h: 120, s: 1, v: 1},
		{name: "pure blue", b: 255, h: 240, s: 1, v: 1},
		{name: "white", r: 255, g: 255, b: 255, h: 0, s: 0, v: 1},
		{name: "black", h: 0, s: 0, v: 0},
		{name: "mid gray", r: 128, g: 128, b: 128, h: 0, s: 0, v: 128.0 / 255.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := rgbToHSV(tc.r, tc.g, tc.b)
			assert.InDelta(t, tc.h, h, 1e-9)
			assert.InDelta(t, tc.s, s, 1e-9)
			assert.InDelta(t, tc.v, v, 1e-9)
		})
	}
}

func TestHueDistance(t *testing.T) {
	assert.Equal(t, 0.0, hueDistance(90, 90))
	assert.Equal(t, 30.0, hueDistance(10, 40))
	// Wraps around the hue circle.
	assert.Equal(t, 20.0, hueDistance(350, 10))
	assert.Equal(t, 180.0, hueDistance(0, 180))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#000000", hexColor(0, 0, 0))
	assert.Equal(t, "#ffffff", hexColor(255, 255, 255))
	assert.Equal(t, "#1e90ff", hexColor(30, 144, 255))
}

func TestDownsample(t *testing.T) {
	small := newFlatBuffer(10, 10, 50, 60, 70)
	out := downsample(small, 200)
	assert.Same(t, small, out) // Already under the target size

	big := newFlatBuffer(800, 600, 50, 60, 70)
	out = downsample(big, 200)
	assert.Equal(t, 200, out.Width)
	assert.Equal(t, 200, out.Height)
	assert.Equal(t, 4, out.Channels)
	r, g, b := out.RGBAt(100, 100)
	assert.Equal(t, uint8(50), r)
	assert.Equal(t, uint8(60), g)
	assert.Equal(t, uint8(70), b)
}

func TestGrayscaleAndEdgeMap(t *testing.T) {
	flat := newFlatBuffer(8, 8, 100, 100, 100)
	gray := grayscale(flat)
	assert.Len(t, gray, 64)
	for _, v := range gray {
		assert.InDelta(t, 100.0, v, 1e-6)
	}

	// A uniform field has no edge response anywhere.
	edges := edgeMap(gray, 8, 8)
	for _, e := range edges {
		assert.Equal(t, 0.0, e)
	}

	// A single bright pixel produces a strong center response.
	buf := newFlatBuffer(8, 8, 0, 0, 0)
	setRGB(buf, 4, 4, 255, 255, 255)
	edges = edgeMap(grayscale(buf), 8, 8)
	assert.Greater(t, edges[4*8+4], 1000.0)
	// Borders stay zero regardless of content.
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 0.0, edges[7*8+7])
}

// FuzzContrastRatio checks the WCAG bounds and symmetry over arbitrary color
// pairs.
func FuzzContrastRatio(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint8(0), uint8(255), uint8(255), uint8(255))
	f.Add(uint8(128), uint8(128), uint8(128), uint8(128), uint8(128), uint8(128))
	f.Add(uint8(30), uint8(144), uint8(255), uint8(220), uint8(20), uint8(60))

	f.Fuzz(func(t *testing.T, r1, g1, b1, r2, g2, b2 uint8) {
		ratio := contrastRatio(r1, g1, b1, r2, g2, b2)
		if ratio < 1.0 || ratio > 21.0 {
			t.Fatalf("contrast ratio %v out of [1,21]", ratio)
		}
		if rev := contrastRatio(r2, g2, b2, r1, g1, b1); rev != ratio {
			t.Fatalf("contrast ratio not symmetric: %v vs %v", ratio, rev)
		}
	})
}
