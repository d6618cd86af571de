package fractal

import (
	"time"

	"github.com/fractalgo/fractal/internal/escape"
	"github.com/fractalgo/fractal/internal/geom"
	"github.com/fractalgo/fractal/internal/palette"
	"github.com/fractalgo/fractal/internal/parallel"
	"github.com/fractalgo/fractal/internal/plane"
)

// kochStrokeWidth is the pixel width of the Koch curve stroke.
const kochStrokeWidth = 2.0

// MinZoom is the effective lower bound on Zoom: validation accepts any
// positive value, but the coordinate mapper clamps smaller values up
// to this floor before computing the viewport scale.
const MinZoom = plane.MinZoom

// kochStroke and geomBackground are the fixed colors for geometric
// rendering: Koch always strokes blue on white regardless of scheme.
var (
	kochStroke     = palette.RGB{R: 0, G: 100, B: 200}
	geomBackground = palette.RGB{R: 255, G: 255, B: 255}
)

// Renderer executes the render pipeline. It holds only configuration,
// never per-request state, so a single Renderer is safe for concurrent
// use across requests.
type Renderer struct {
	workers   int
	maxPixels int
}

// NewRenderer creates a Renderer with the given options applied over
// the defaults: GOMAXPROCS workers and a MaxDimension² pixel ceiling.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		workers:   0, // resolved to GOMAXPROCS per render
		maxPixels: MaxDimension * MaxDimension,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render validates the request, computes the pixel grid, applies the
// palette, and encodes the result as PNG. It blocks until the image is
// fully assembled; on error no partial output is returned. The MIME
// type of the returned bytes is MIMEType.
func (r *Renderer) Render(req RenderRequest) ([]byte, error) {
	start := time.Now()

	pixels, err := r.Evaluate(req)
	if err != nil {
		return nil, err
	}
	colors := r.Colorize(req, pixels)

	data, err := EncodePNG(colors)
	if err != nil {
		return nil, err
	}

	Logger().Debug("render complete",
		"kind", req.Kind.String(),
		"width", req.Width,
		"height", req.Height,
		"bytes", len(data),
		"elapsed", time.Since(start))
	return data, nil
}

// Evaluate validates the request and computes its PixelBuffer: smoothed
// escape counts for Mandelbrot/Julia, coverage for Sierpinski/Koch.
func (r *Renderer) Evaluate(req RenderRequest) (*PixelBuffer, error) {
	if err := req.validate(r.maxPixels); err != nil {
		return nil, err
	}

	buf := NewPixelBuffer(req.Width, req.Height)
	switch req.Kind {
	case Mandelbrot:
		m := plane.New(req.Width, req.Height, req.Zoom, req.CenterX, req.CenterY)
		parallel.Rows(r.workers, req.Height, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := buf.Row(y)
				for x := range row {
					cx, cy := m.At(x, y)
					row[x] = escape.Mandelbrot(cx, cy, req.MaxIterations)
				}
			}
		})

	case Julia:
		m := plane.New(req.Width, req.Height, req.Zoom, req.CenterX, req.CenterY)
		parallel.Rows(r.workers, req.Height, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := buf.Row(y)
				for x := range row {
					zx, zy := m.At(x, y)
					row[x] = escape.Julia(zx, zy, req.CReal, req.CImag, req.MaxIterations)
				}
			}
		})

	case Sierpinski:
		leaves := geom.Sierpinski(geom.BaseTriangle(req.Width, req.Height), req.RecursionDepth)
		buf.setValues(geom.CoverTriangles(req.Width, req.Height, leaves))

	case Koch:
		segs := geom.Koch(geom.KochBase(req.Width, req.Height), req.RecursionDepth)
		buf.setValues(geom.CoverSegments(req.Width, req.Height, segs, kochStrokeWidth))
	}

	return buf, nil
}

// Colorize maps a PixelBuffer through the request's palette into an
// opaque RGBA ColorBuffer of equal dimensions.
//
// Escape-time kinds: interior points take the palette's fixed interior
// color; escaped points normalize their smoothed count by MaxIterations
// and look up the palette gradient. Geometric kinds blend the shape
// color over a white background by coverage; Sierpinski's fill follows
// the palette, Koch's stroke is fixed.
func (r *Renderer) Colorize(req RenderRequest, pixels *PixelBuffer) *ColorBuffer {
	pal := paletteFor(req.Scheme)
	out := NewColorBuffer(pixels.Width(), pixels.Height())

	if req.Kind.EscapeTime() {
		interior := pal.Interior()
		inv := 0.0
		if req.MaxIterations > 0 {
			inv = 1 / float64(req.MaxIterations)
		}
		parallel.Rows(r.workers, pixels.Height(), func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < pixels.Width(); x++ {
					v := pixels.At(x, y)
					if v < 0 {
						out.SetRGB(x, y, interior.R, interior.G, interior.B)
						continue
					}
					c := pal.At(v * inv)
					out.SetRGB(x, y, c.R, c.G, c.B)
				}
			}
		})
		return out
	}

	fg := pal.Fill()
	if req.Kind == Koch {
		fg = kochStroke
	}
	parallel.Rows(r.workers, pixels.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < pixels.Width(); x++ {
				c := blend(geomBackground, fg, pixels.At(x, y))
				out.SetRGB(x, y, c.R, c.G, c.B)
			}
		}
	})
	return out
}

// paletteFor dispatches the closed scheme set; the default arm doubles
// as the documented fallback for unknown values.
func paletteFor(s ColorScheme) *palette.Palette {
	switch s {
	case SchemeFire:
		return palette.Fire
	case SchemeIce:
		return palette.Ice
	case SchemeRainbow:
		return palette.Rainbow
	case SchemeGrayscale:
		return palette.Grayscale
	default:
		return palette.Default
	}
}

// blend linearly interpolates bg toward fg by coverage t in [0, 1].
func blend(bg, fg palette.RGB, t float64) palette.RGB {
	if t <= 0 {
		return bg
	}
	if t >= 1 {
		return fg
	}
	return palette.RGB{
		R: uint8(float64(bg.R) + (float64(fg.R)-float64(bg.R))*t + 0.5),
		G: uint8(float64(bg.G) + (float64(fg.G)-float64(bg.G))*t + 0.5),
		B: uint8(float64(bg.B) + (float64(fg.B)-float64(bg.B))*t + 0.5),
	}
}
