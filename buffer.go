package fractal

import "image"

// PixelBuffer is a dense row-major grid of scalar escape values, one
// per pixel. For escape-time kinds the value is the smoothed iteration
// count at divergence, or a negative sentinel for interior points; for
// geometric kinds it is an anti-aliased coverage value in [0, 1].
//
// A buffer is owned by the render call that produced it and is never
// shared across requests.
type PixelBuffer struct {
	width  int
	height int
	values []float64
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// At returns the escape value at (x, y). Bounds are the caller's
// responsibility; this is the hot path.
func (b *PixelBuffer) At(x, y int) float64 {
	return b.values[y*b.width+x]
}

// Row returns the values of row y as a slice. Rows are disjoint, so
// parallel workers can each fill their own rows without locking.
func (b *PixelBuffer) Row(y int) []float64 {
	return b.values[y*b.width : (y+1)*b.width]
}

// setValues replaces the backing values. Used when a rasterizer
// produces the whole grid in one pass; len(v) must be width*height.
func (b *PixelBuffer) setValues(v []float64) {
	b.values = v
}

// ColorBuffer is a dense row-major RGBA image produced by applying a
// palette to a PixelBuffer. Alpha is always opaque; RGBA layout keeps
// the buffer directly usable as an image.RGBA for encoding.
type ColorBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewColorBuffer allocates an opaque black buffer of the given dimensions.
func NewColorBuffer(width, height int) *ColorBuffer {
	pix := make([]uint8, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return &ColorBuffer{width: width, height: height, pix: pix}
}

// Width returns the buffer width in pixels.
func (b *ColorBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *ColorBuffer) Height() int { return b.height }

// SetRGB sets the pixel at (x, y) to an opaque color. Bounds are the
// caller's responsibility; this is the hot path.
func (b *ColorBuffer) SetRGB(x, y int, r, g, bl uint8) {
	i := (y*b.width + x) * 4
	b.pix[i] = r
	b.pix[i+1] = g
	b.pix[i+2] = bl
	b.pix[i+3] = 0xff
}

// RGBAt returns the color of the pixel at (x, y).
func (b *ColorBuffer) RGBAt(x, y int) (r, g, bl uint8) {
	i := (y*b.width + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2]
}

// Image returns an image.RGBA view sharing the buffer's pixels.
func (b *ColorBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
