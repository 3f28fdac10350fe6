package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designlens/designlens/schema"
)

func TestAnalyzeLayout_FlatWhite(t *testing.T) {
	tun := schema.DefaultTunables()
	buf := newFlatBuffer(40, 40, 255, 255, 255)

	metrics, err := AnalyzeLayout(buf, tun)
	assert.NoError(t, err)

	assert.InDelta(t, 1.0, metrics.WhiteSpaceRatio, 1e-9)
	assert.Equal(t, 0.0, metrics.GridAlignment)   // No edges, no lines
	assert.Equal(t, 0.5, metrics.VisualHierarchy) // No vertical emphasis
	assert.Equal(t, 1.0, metrics.BalanceScore)    // No detail to unbalance
	assert.Equal(t, 1.0, metrics.Consistency)     // Uniformly empty columns
}

func TestAnalyzeLayout_FlatDark(t *testing.T) {
	tun := schema.DefaultTunables()
	buf := newFlatBuffer(40, 40, 20, 20, 20)

	metrics, err := AnalyzeLayout(buf, tun)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, metrics.WhiteSpaceRatio)
}

func TestAnalyzeLayout_InvalidBuffer(t *testing.T) {
	tun := schema.DefaultTunables()
	_, err := AnalyzeLayout(&schema.PixelBuffer{}, tun)
	assert.ErrorIs(t, err, schema.ErrEmptyPixelBuffer)
}

func TestGridAlignment_FullLines(t *testing.T) {
	tun := schema.DefaultTunables()
	width, height := 40, 40

	// Black horizontal rules across a white field put edge response on every
	// scanned row near the rules.
	buf := newFlatBuffer(width, height, 255, 255, 255)
	for _, y := range []int{9, 17, 25, 33} {
		for x := 0; x < width; x++ {
			setRGB(buf, x, y, 0, 0, 0)
		}
	}

	gray := grayscale(buf)
	edges := edgeMap(gray, width, height)
	score := gridAlignment(edges, width, height, tun)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestHierarchyScore_TopHeavy(t *testing.T) {
	tun := schema.DefaultTunables()
	width, height := 40, 42

	// Detail concentrated in the top band reads as a clear entry point.
	buf := newFlatBuffer(width, height, 255, 255, 255)
	for y := 2; y < 12; y += 2 {
		for x := 0; x < width; x++ {
			setRGB(buf, x, y, 0, 0, 0)
		}
	}

	gray := grayscale(buf)
	edges := edgeMap(gray, width, height)
	score := hierarchyScore(edges, width, height, tun)
	assert.Greater(t, score, 0.5)
	assert.LessOrEqual(t, score, 1.0)

	// The mirror image is bottom-heavy and scores below neutral.
	mirror := newFlatBuffer(width, height, 255, 255, 255)
	for y := height - 12; y < height - 2; y += 2 {
		for x := 0; x < width; x++ {
			setRGB(mirror, x, y, 0, 0, 0)
		}
	}
	mirrorEdges := edgeMap(grayscale(mirror), width, height)
	assert.Less(t, hierarchyScore(mirrorEdges, width, height, tun), 0.5)
}

func TestBalanceScore(t *testing.T) {
	width, height := 40, 40

	// Detail piled in one corner drags the centroid off center.
	corner := newFlatBuffer(width, height, 255, 255, 255)
	for y := 1; y < 8; y++ {
		for x := 1; x < 8; x++ {
			if (x+y)%2 == 0 {
				setRGB(corner, x, y, 0, 0, 0)
			}
		}
	}
	cornerEdges := edgeMap(grayscale(corner), width, height)
	cornerScore := balanceScore(cornerEdges, width, height)

	// A centered blob keeps the centroid near the middle.
	centered := newFlatBuffer(width, height, 255, 255, 255)
	for y := 16; y < 24; y++ {
		for x := 16; x < 24; x++ {
			if (x+y)%2 == 0 {
				setRGB(centered, x, y, 0, 0, 0)
			}
		}
	}
	centeredEdges := edgeMap(grayscale(centered), width, height)
	centeredScore := balanceScore(centeredEdges, width, height)

	assert.Greater(t, centeredScore, cornerScore)
	assert.InDelta(t, 1.0, centeredScore, 0.05)
}

func TestConsistencyScore(t *testing.T) {
	tun := schema.DefaultTunables()
	width, height := 40, 40

	// Checkerboard texture spreads edges evenly over every column.
	even := newCheckerboard(width, height)
	evenEdges := edgeMap(grayscale(even), width, height)
	evenScore := consistencyScore(evenEdges, width, height, tun)

	// All detail in a few columns leaves the rest empty.
	uneven := newFlatBuffer(width, height, 255, 255, 255)
	for y := 0; y < height; y++ {
		for x := 4; x < 8; x++ {
			if (x+y)%2 == 0 {
				setRGB(uneven, x, y, 0, 0, 0)
			}
		}
	}
	unevenEdges := edgeMap(grayscale(uneven), width, height)
	unevenScore := consistencyScore(unevenEdges, width, height, tun)

	assert.Greater(t, evenScore, unevenScore)
}
