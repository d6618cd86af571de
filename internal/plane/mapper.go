// Package plane maps pixel coordinates onto the complex plane.
//
// A Mapper fixes a viewport (dimensions, zoom, center) once per render
// and then converts pixel indices to plane coordinates with two
// multiply-adds per call. Pixels are sampled at their centers so that a
// grid centered on the real axis is exactly conjugate-symmetric.
package plane

const (
	// baseExtent is the half-height of the viewport in plane units at
	// zoom 1. A value of 2.0 frames the classic Mandelbrot set.
	baseExtent = 2.0

	// MinZoom is the smallest effective zoom. Values below it are
	// clamped before the scale division to avoid blow-up near zero.
	MinZoom = 0.1
)

// Mapper converts pixel indices in [0,width) x [0,height) into plane
// coordinates for a fixed viewport. The zero value is not usable; use New.
type Mapper struct {
	centerX, centerY float64
	stepX, stepY     float64 // plane units per pixel
	halfW, halfH     float64
}

// New creates a Mapper for the given viewport.
//
// The viewport spans centerY ± baseExtent/zoom vertically; the horizontal
// span is scaled by the aspect ratio width/height so pixels stay square.
// width and height must be positive (validated by the caller).
func New(width, height int, zoom, centerX, centerY float64) Mapper {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	scale := baseExtent / zoom
	aspect := float64(width) / float64(height)
	return Mapper{
		centerX: centerX,
		centerY: centerY,
		stepX:   2 * scale * aspect / float64(width),
		stepY:   2 * scale / float64(height),
		halfW:   float64(width) / 2,
		halfH:   float64(height) / 2,
	}
}

// At returns the plane coordinates of the center of pixel (px, py).
//
// The offset term (p + 0.5 - half) and its mirror negate exactly in
// IEEE arithmetic, so rows equidistant from centerY map to exactly
// conjugate points.
func (m Mapper) At(px, py int) (x, y float64) {
	x = m.centerX + (float64(px)+0.5-m.halfW)*m.stepX
	y = m.centerY + (float64(py)+0.5-m.halfH)*m.stepY
	return x, y
}

// StepX returns the horizontal plane distance between adjacent pixels.
func (m Mapper) StepX() float64 { return m.stepX }

// StepY returns the vertical plane distance between adjacent pixels.
func (m Mapper) StepY() float64 { return m.stepY }
