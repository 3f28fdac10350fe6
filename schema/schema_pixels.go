package schema

import "fmt"

// PixelBuffer is a decoded, read-only RGB(A) image supplied by an external
// decoding collaborator. Samples are channel-interleaved row by row.
// The engine never mutates a buffer, so one buffer can feed all analyzer
// stages concurrently.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
	Pix      []uint8
}

// NewPixelBuffer validates the dimensions against the sample slice and
// returns a buffer. It fails with ErrEmptyPixelBuffer on zero pixels and a
// descriptive error on a malformed sample slice.
func NewPixelBuffer(width, height, channels int, pix []uint8) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyPixelBuffer
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d: must be 3 or 4", channels)
	}
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("sample slice has %d bytes, want %d for %dx%dx%d",
			len(pix), width*height*channels, width, height, channels)
	}
	return &PixelBuffer{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

// Validate re-checks the buffer invariants. Used by the pipeline entrypoint
// since callers may construct buffers directly.
func (p *PixelBuffer) Validate() error {
	if p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Pix) == 0 {
		return ErrEmptyPixelBuffer
	}
	if p.Channels != 3 && p.Channels != 4 {
		return fmt.Errorf("unsupported channel count %d: must be 3 or 4", p.Channels)
	}
	if len(p.Pix) != p.Width*p.Height*p.Channels {
		return fmt.Errorf("sample slice has %d bytes, want %d for %dx%dx%d",
			len(p.Pix), p.Width*p.Height*p.Channels, p.Width, p.Height, p.Channels)
	}
	return nil
}

// NumPixels returns the total pixel count.
func (p *PixelBuffer) NumPixels() int {
	return p.Width * p.Height
}

// RGBAt returns the color channels of the pixel at (x, y).
// Alpha is ignored; out-of-range coordinates are the caller's bug.
func (p *PixelBuffer) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*p.Width + x) * p.Channels
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}
