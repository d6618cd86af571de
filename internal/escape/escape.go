// Package escape implements the escape-time iteration for the
// Mandelbrot and Julia sets.
//
// Both sets iterate z = z² + c and record how long |z| stays within the
// bailout radius. Escaped points carry a fractionally smoothed iteration
// count (log-log smoothing) so palettes produce continuous gradients
// instead of visible banding; interior points carry the Interior sentinel.
package escape

import "math"

// Interior marks points that never escaped within the iteration bound.
// It is negative so it can never collide with a smoothed escape count.
const Interior = -1.0

// bailout2 is the squared escape radius. |z| > 2 guarantees divergence.
const bailout2 = 4.0

// Mandelbrot iterates z = z² + c with z₀ = 0 and c = (cx, cy).
//
// It returns the smoothed iteration count at escape, or Interior if the
// point stays bounded for maxIter iterations. The escaped value depends
// only on the point itself, never on maxIter, so raising the bound can
// only resolve more interior points, never reclassify escapes.
// maxIter <= 0 classifies every point as escaped at zero.
func Mandelbrot(cx, cy float64, maxIter int) float64 {
	if maxIter <= 0 {
		return 0
	}
	var zx, zy float64
	for n := 0; n < maxIter; n++ {
		zx2, zy2 := zx*zx, zy*zy
		if zx2+zy2 > bailout2 {
			return smooth(n, zx2+zy2)
		}
		zx, zy = zx2-zy2+cx, 2*zx*zy+cy
	}
	return Interior
}

// Julia iterates z = z² + c with z₀ = (zx, zy) taken from the pixel and
// the fixed parameter c = (cRe, cIm). Semantics match Mandelbrot.
func Julia(zx, zy, cRe, cIm float64, maxIter int) float64 {
	if maxIter <= 0 {
		return 0
	}
	for n := 0; n < maxIter; n++ {
		zx2, zy2 := zx*zx, zy*zy
		if zx2+zy2 > bailout2 {
			return smooth(n, zx2+zy2)
		}
		zx, zy = zx2-zy2+cRe, 2*zx*zy+cIm
	}
	return Interior
}

// smooth turns a discrete escape at iteration n with squared magnitude
// r2 into a fractional count: n + 1 - log(log|z|)/log 2. The constants
// are an aesthetic convention, not a contract; only monotonicity and
// determinism matter to callers. The result is clamped to be
// non-negative so escape values never collide with Interior.
func smooth(n int, r2 float64) float64 {
	v := float64(n) + 1 - math.Log(0.5*math.Log(r2))/math.Ln2
	if v < 0 {
		return 0
	}
	return v
}
