// Package imgload decodes design screenshots into pixel buffers.
package imgload

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/designlens/designlens/schema"
)

// supportedExtensions maps known file extensions to their format name.
var supportedExtensions = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// IsImageFile checks if a file is a supported image based on extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, supported := supportedExtensions[ext]
	return supported
}

// LoadPixelBuffer reads and decodes an image file into a 4-channel buffer.
func LoadPixelBuffer(path string) (*schema.PixelBuffer, error) {
	if !IsImageFile(path) {
		return nil, fmt.Errorf("unsupported image format %q. Supported: png, jpeg, gif, bmp, tiff, webp", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return FromImage(img)
}

// FromImage converts a decoded image into a 4-channel pixel buffer.
func FromImage(img image.Image) (*schema.PixelBuffer, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, schema.ErrEmptyPixelBuffer
	}

	// Fast path: an RGBA image with a zero-origin, stride-packed layout is
	// already in buffer format.
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == 4*width {
		return schema.NewPixelBuffer(width, height, 4, rgba.Pix)
	}

	pix := make([]uint8, width*height*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return schema.NewPixelBuffer(width, height, 4, pix)
}
