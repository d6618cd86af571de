// Package fractal computes and renders escape-time and geometric
// fractals as PNG images.
//
// # Overview
//
// The package is a pure request-in/image-out pipeline:
//
//	parameters → pixel grid → color grid → encoded image
//
// Four fractal kinds are supported: Mandelbrot and Julia (escape-time,
// computed per pixel in parallel) and Sierpinski and Koch (geometric,
// built by iterative subdivision and rasterized with anti-aliasing).
// Escape values map to RGB through one of five fixed palettes.
//
// # Quick Start
//
//	r := fractal.NewRenderer()
//	png, err := r.Render(fractal.RenderRequest{
//	    Kind:          fractal.Mandelbrot,
//	    Width:         1920,
//	    Height:        1080,
//	    Zoom:          1,
//	    CenterX:       -0.5,
//	    MaxIterations: 100,
//	})
//
// # Boundary Contract
//
// The caller (typically an HTTP layer such as cmd/fractald) parses,
// defaults, and range-clamps user input before building a RenderRequest.
// The renderer still validates every field and fails fast with
// ErrInvalidParameter rather than clamping, so upstream validation bugs
// surface instead of producing silently wrong images. A render either
// returns a complete PNG or an error, never a partial buffer.
//
// # Concurrency
//
// Render is synchronous and safe for concurrent use. Each call fans its
// pixel work across request-scoped goroutines (bounded by WithWorkers,
// defaulting to GOMAXPROCS) and blocks until the image is assembled.
// No state is shared across requests; output is bit-identical for a
// given request regardless of worker count.
package fractal
