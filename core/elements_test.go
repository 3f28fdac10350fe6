package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designlens/designlens/schema"
)

// drawRectOutline paints a one-pixel black outline on a buffer.
func drawRectOutline(buf *schema.PixelBuffer, x, y, w, h int) {
	for i := x; i < x+w; i++ {
		setRGB(buf, i, y, 0, 0, 0)
		setRGB(buf, i, y+h-1, 0, 0, 0)
	}
	for i := y; i < y+h; i++ {
		setRGB(buf, x, i, 0, 0, 0)
		setRGB(buf, x+w-1, i, 0, 0, 0)
	}
}

func TestNewElementDetector(t *testing.T) {
	tun := schema.DefaultTunables()

	basic, err := NewElementDetector(schema.BasicDetail, tun)
	assert.NoError(t, err)
	assert.Equal(t, schema.BasicDetail, basic.Level())

	enhanced, err := NewElementDetector(schema.EnhancedDetail, tun)
	assert.NoError(t, err)
	assert.Equal(t, schema.EnhancedDetail, enhanced.Level())

	_, err = NewElementDetector(schema.DetailLevel("bogus"), tun)
	assert.Error(t, err)
}

func TestBasicDetector_FlatBuffer(t *testing.T) {
	tun := schema.DefaultTunables()
	det, err := NewElementDetector(schema.BasicDetail, tun)
	assert.NoError(t, err)

	elements, err := det.Detect(newFlatBuffer(400, 300, 255, 255, 255))
	assert.NoError(t, err)

	assert.Equal(t, 0, elements.Buttons)
	assert.Equal(t, 0, elements.Forms)
	assert.Equal(t, 0, elements.Interactive)
	assert.False(t, elements.Navigation)
	// Basic detection never reports icons or images.
	assert.Equal(t, 0, elements.Icons)
	assert.Equal(t, 0, elements.Images)
}

func TestBasicDetector_FindsButton(t *testing.T) {
	tun := schema.DefaultTunables()
	det, err := NewElementDetector(schema.BasicDetail, tun)
	assert.NoError(t, err)

	// One button-shaped outline aligned with the 120x40 scan window at a
	// half-window stride position. The buffer is already at detector
	// resolution so no resampling blurs the outline.
	buf := newFlatBuffer(400, 300, 255, 255, 255)
	drawRectOutline(buf, 60, 60, 120, 40)

	elements, err := det.Detect(buf)
	assert.NoError(t, err)

	assert.Equal(t, 1, elements.Buttons)
	assert.Equal(t, 0, elements.Forms)
	assert.Equal(t, 1, elements.Interactive)
	assert.False(t, elements.Navigation)
}

func TestEnhancedDetector_IconsAndImages(t *testing.T) {
	tun := schema.DefaultTunables()
	det, err := NewElementDetector(schema.EnhancedDetail, tun)
	assert.NoError(t, err)

	// Dense texture in a few small blocks reads as icons; a large flat dark
	// region reads as imagery.
	buf := newFlatBuffer(400, 300, 255, 255, 255)
	for by := 0; by < 3; by++ {
		y0 := 16 * by
		for y := y0; y < y0+16; y++ {
			for x := 16; x < 32; x++ {
				if (x+y)%2 == 0 {
					setRGB(buf, x, y, 0, 0, 0)
				}
			}
		}
	}
	for y := 100; y < 300; y++ {
		for x := 150; x < 400; x++ {
			setRGB(buf, x, y, 90, 90, 110)
		}
	}

	elements, err := det.Detect(buf)
	assert.NoError(t, err)

	assert.Greater(t, elements.Icons, 0)
	assert.Greater(t, elements.Images, 0)
	assert.LessOrEqual(t, elements.Icons, tun.MaxIcons)
	assert.LessOrEqual(t, elements.Images, tun.MaxImages)
}

func TestDetect_InvalidBuffer(t *testing.T) {
	tun := schema.DefaultTunables()
	for _, level := range []schema.DetailLevel{schema.BasicDetail, schema.EnhancedDetail} {
		det, err := NewElementDetector(level, tun)
		assert.NoError(t, err)
		_, err = det.Detect(&schema.PixelBuffer{})
		assert.ErrorIs(t, err, schema.ErrEmptyPixelBuffer)
	}
}

func TestIsButtonLike(t *testing.T) {
	tun := schema.DefaultTunables()
	tests := []struct {
		name string
		rc   rectCandidate
		want bool
	}{
		{name: "classic button", rc: rectCandidate{w: 120, h: 40}, want: true},
		{name: "square tile", rc: rectCandidate{w: 48, h: 48}, want: false},
		{name: "too small", rc: rectCandidate{w: 40, h: 16}, want: false},
		{name: "input field shape", rc: rectCandidate{w: 320, h: 36}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isButtonLike(tc.rc, tun))
		})
	}
}

func TestIsFieldLike(t *testing.T) {
	tun := schema.DefaultTunables()
	assert.True(t, isFieldLike(rectCandidate{w: 320, h: 36}, tun))
	assert.False(t, isFieldLike(rectCandidate{w: 120, h: 40}, tun))
	assert.False(t, isFieldLike(rectCandidate{w: 320, h: 10}, tun))
}

func TestAlignedRepeats(t *testing.T) {
	assert.Equal(t, 0, alignedRepeats(nil))

	// Three candidates sharing one row, one off-axis.
	row := []rectCandidate{
		{x: 10, y: 16, w: 64, h: 24},
		{x: 90, y: 18, w: 64, h: 24},
		{x: 170, y: 17, w: 64, h: 24},
		{x: 10, y: 200, w: 64, h: 24},
	}
	assert.Equal(t, 3, alignedRepeats(row))
}

func TestCtaProminence(t *testing.T) {
	assert.Equal(t, 0.0, ctaProminence(0, 0, 0))
	assert.Equal(t, 1.0, ctaProminence(1, 1, 1))
	assert.InDelta(t, 0.4*0.5+0.3*0.25+0.3*0.75, ctaProminence(0.5, 0.25, 0.75), 1e-9)
}

func TestPositionScore(t *testing.T) {
	// No button candidates fall back to the documented floor.
	assert.Equal(t, 0.3, positionScore(nil, 400, 300))

	// A button on the hero anchor scores near 1.
	hero := []rectCandidate{{x: 140, y: 79, w: 120, h: 40}}
	assert.InDelta(t, 1.0, positionScore(hero, 400, 300), 0.05)

	// A corner button scores lower.
	corner := []rectCandidate{{x: 0, y: 0, w: 120, h: 40}}
	assert.Less(t, positionScore(corner, 400, 300), positionScore(hero, 400, 300))
}
