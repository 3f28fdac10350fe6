package core

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/designlens/designlens/schema"
)

// clamp01 bounds a metric to [0,1] before it enters the feature vector.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// downsample scales the buffer to a square working resolution using an
// approximate bilinear scaler. Buffers already at or below the target size
// are returned as-is.
func downsample(buf *schema.PixelBuffer, size int) *schema.PixelBuffer {
	if buf.Width <= size && buf.Height <= size {
		return buf
	}

	src := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGBAt(x, y)
			i := src.PixOffset(x, y)
			src.Pix[i] = r
			src.Pix[i+1] = g
			src.Pix[i+2] = b
			src.Pix[i+3] = 0xff
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return &schema.PixelBuffer{Width: size, Height: size, Channels: 4, Pix: dst.Pix}
}

// grayscale converts the buffer to a flat luma plane (BT.601 weights),
// one float per pixel in [0,255].
func grayscale(buf *schema.PixelBuffer) []float64 {
	gray := make([]float64, buf.Width*buf.Height)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGBAt(x, y)
			gray[y*buf.Width+x] = 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		}
	}
	return gray
}

// edgeMap applies the Laplacian kernel
//
//	-1 -1 -1
//	-1  8 -1
//	-1 -1 -1
//
// to a luma plane and returns absolute responses. Border pixels are zero.
func edgeMap(gray []float64, width, height int) []float64 {
	edges := make([]float64, len(gray))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			center := 8 * gray[y*width+x]
			sum := center
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					sum -= gray[(y+dy)*width+(x+dx)]
				}
			}
			edges[y*width+x] = math.Abs(sum)
		}
	}
	return edges
}

// relativeLuminance computes the WCAG relative luminance of an sRGB color.
// Channels are linearized before applying the perceptual weights.
func relativeLuminance(r, g, b uint8) float64 {
	lin := func(c uint8) float64 {
		v := float64(c) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}

// contrastRatio computes the WCAG contrast ratio between two colors.
// Symmetric; a color against itself is exactly 1.0; range [1,21].
func contrastRatio(r1, g1, b1, r2, g2, b2 uint8) float64 {
	l1 := relativeLuminance(r1, g1, b1)
	l2 := relativeLuminance(r2, g2, b2)
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// rgbToHSV converts to hue in degrees [0,360), saturation and value in [0,1].
func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}

	if delta == 0 {
		return 0, s, v
	}
	switch maxC {
	case rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// hueDistance folds an angular difference into [0,180].
func hueDistance(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// hexColor formats an RGB triple as "#rrggbb".
func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
