package imgload

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG renders a small solid-color PNG to disk.
func writeTestPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, img))
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("shot.png"))
	assert.True(t, IsImageFile("SHOT.JPG"))
	assert.True(t, IsImageFile("design.webp"))
	assert.False(t, IsImageFile("design.svg"))
	assert.False(t, IsImageFile("notes.txt"))
	assert.False(t, IsImageFile("noextension"))
}

func TestLoadPixelBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.png")
	writeTestPNG(t, path, 12, 8, color.RGBA{R: 30, G: 144, B: 255, A: 255})

	buf, err := LoadPixelBuffer(path)
	require.NoError(t, err)

	assert.Equal(t, 12, buf.Width)
	assert.Equal(t, 8, buf.Height)
	assert.Equal(t, 4, buf.Channels)
	r, g, b := buf.RGBAt(5, 5)
	assert.Equal(t, uint8(30), r)
	assert.Equal(t, uint8(144), g)
	assert.Equal(t, uint8(255), b)
}

func TestLoadPixelBuffer_Errors(t *testing.T) {
	_, err := LoadPixelBuffer("design.svg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")

	_, err = LoadPixelBuffer(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	// A non-image file with an image extension fails to decode.
	bad := filepath.Join(t.TempDir(), "fake.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = LoadPixelBuffer(bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestFromImage_NonRGBA(t *testing.T) {
	// Grayscale forces the generic conversion path.
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	buf, err := FromImage(img)
	require.NoError(t, err)
	r, g, b := buf.RGBAt(2, 2)
	assert.Equal(t, uint8(200), r)
	assert.Equal(t, uint8(200), g)
	assert.Equal(t, uint8(200), b)
}
