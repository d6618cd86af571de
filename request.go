package fractal

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a fractal variant.
type Kind int

const (
	// Mandelbrot is the escape-time set z = z² + c with z₀ = 0.
	Mandelbrot Kind = iota
	// Julia is the escape-time set z = z² + c with fixed c.
	Julia
	// Sierpinski is the recursively subdivided triangle.
	Sierpinski
	// Koch is the snowflake curve of recursively bumped segments.
	Koch
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	case Sierpinski:
		return "sierpinski"
	case Koch:
		return "koch"
	default:
		return "unknown"
	}
}

// EscapeTime reports whether the kind is computed by per-pixel
// escape-time iteration (as opposed to geometric subdivision).
func (k Kind) EscapeTime() bool {
	return k == Mandelbrot || k == Julia
}

// SupportsColorSchemes reports whether the color_scheme parameter
// affects this kind's output. Koch always draws a fixed blue stroke on
// white and ignores the scheme.
func (k Kind) SupportsColorSchemes() bool {
	return k != Koch
}

// ParseKind resolves a wire name to a Kind. The match is
// case-insensitive; unknown names return ok == false.
func ParseKind(s string) (k Kind, ok bool) {
	switch strings.ToLower(s) {
	case "mandelbrot":
		return Mandelbrot, true
	case "julia":
		return Julia, true
	case "sierpinski":
		return Sierpinski, true
	case "koch":
		return Koch, true
	default:
		return 0, false
	}
}

// ColorScheme selects one of the five built-in palettes.
type ColorScheme int

const (
	SchemeDefault ColorScheme = iota
	SchemeFire
	SchemeIce
	SchemeRainbow
	SchemeGrayscale
)

// String returns the scheme's wire name.
func (s ColorScheme) String() string {
	switch s {
	case SchemeFire:
		return "fire"
	case SchemeIce:
		return "ice"
	case SchemeRainbow:
		return "rainbow"
	case SchemeGrayscale:
		return "grayscale"
	default:
		return "default"
	}
}

// ParseColorScheme resolves a wire name to a scheme. Unknown names fall
// back to SchemeDefault; the palette set is closed and selection is
// forgiving by contract.
func ParseColorScheme(s string) ColorScheme {
	switch strings.ToLower(s) {
	case "fire":
		return SchemeFire
	case "ice":
		return SchemeIce
	case "rainbow":
		return SchemeRainbow
	case "grayscale":
		return SchemeGrayscale
	default:
		return SchemeDefault
	}
}

// Parameter domains enforced by validation. The HTTP layer clamps user
// input into these ranges; the core rejects anything outside them.
const (
	// MaxDimension bounds width and height.
	MaxDimension = 4096
	// MaxIterationLimit bounds MaxIterations for escape-time kinds.
	MaxIterationLimit = 10000
	// MaxRecursionDepth bounds RecursionDepth for geometric kinds.
	MaxRecursionDepth = 12
	// MaxJuliaParam bounds |CReal| and |CImag|.
	MaxJuliaParam = 2.0
	// MaxZoom bounds Zoom; deeper zooms exceed double precision anyway.
	MaxZoom = 1e10
)

// RenderRequest carries the validated parameters for one render.
//
// Only the fields relevant to Kind are consulted: escape-time kinds read
// Zoom, CenterX/Y and MaxIterations (plus CReal/CImag for Julia);
// geometric kinds read RecursionDepth. The rest are ignored.
type RenderRequest struct {
	Kind   Kind
	Width  int
	Height int

	// Escape-time parameters.
	Zoom          float64
	CenterX       float64
	CenterY       float64
	MaxIterations int

	// Julia parameter c.
	CReal float64
	CImag float64

	// Geometric parameter.
	RecursionDepth int

	Scheme ColorScheme
}

// validate checks every field Kind consults against its documented
// domain. maxPixels is the renderer's configured area ceiling.
func (r RenderRequest) validate(maxPixels int) error {
	if r.Kind < Mandelbrot || r.Kind > Koch {
		return invalidf("unknown fractal kind %d", int(r.Kind))
	}
	if r.Width < 1 || r.Width > MaxDimension {
		return invalidf("width %d outside [1, %d]", r.Width, MaxDimension)
	}
	if r.Height < 1 || r.Height > MaxDimension {
		return invalidf("height %d outside [1, %d]", r.Height, MaxDimension)
	}
	if r.Width*r.Height > maxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrResourceExceeded, r.Width, r.Height, maxPixels)
	}

	if r.Kind.EscapeTime() {
		if r.Zoom <= 0 || r.Zoom > MaxZoom || math.IsNaN(r.Zoom) {
			return invalidf("zoom %g outside (0, %g]", r.Zoom, MaxZoom)
		}
		if !isFinite(r.CenterX) || !isFinite(r.CenterY) {
			return invalidf("center (%g, %g) not finite", r.CenterX, r.CenterY)
		}
		if r.MaxIterations < 0 || r.MaxIterations > MaxIterationLimit {
			return invalidf("max_iterations %d outside [0, %d]",
				r.MaxIterations, MaxIterationLimit)
		}
	}

	if r.Kind == Julia {
		if !isFinite(r.CReal) || !isFinite(r.CImag) {
			return invalidf("julia c (%g, %g) not finite", r.CReal, r.CImag)
		}
		if math.Abs(r.CReal) > MaxJuliaParam || math.Abs(r.CImag) > MaxJuliaParam {
			return invalidf("julia c (%g, %g) outside ±%g",
				r.CReal, r.CImag, MaxJuliaParam)
		}
	}

	if !r.Kind.EscapeTime() {
		if r.RecursionDepth < 0 || r.RecursionDepth > MaxRecursionDepth {
			return invalidf("recursion_depth %d outside [0, %d]",
				r.RecursionDepth, MaxRecursionDepth)
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
