// Command fractalgen renders a single fractal image to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fractalgo/fractal"
)

func main() {
	var (
		typ        = flag.String("type", "mandelbrot", "fractal type: mandelbrot, julia, sierpinski, koch")
		width      = flag.Int("width", 800, "image width in pixels")
		height     = flag.Int("height", 600, "image height in pixels")
		zoom       = flag.Float64("zoom", 1.0, "magnification factor")
		centerX    = flag.Float64("center-x", 0, "viewport center, real axis")
		centerY    = flag.Float64("center-y", 0, "viewport center, imaginary axis")
		iterations = flag.Int("iterations", 100, "escape iteration limit")
		cReal      = flag.Float64("c-real", -0.7, "Julia parameter, real part")
		cImag      = flag.Float64("c-imag", 0.27, "Julia parameter, imaginary part")
		depth      = flag.Int("depth", 0, "recursion depth for geometric fractals (0 = per-type default)")
		scheme     = flag.String("scheme", "default", "color scheme: default, fire, ice, rainbow, grayscale")
		output     = flag.String("output", "fractal.png", "output file")
		workers    = flag.Int("workers", 0, "max worker goroutines (0 = GOMAXPROCS)")
	)
	flag.Parse()

	kind, ok := fractal.ParseKind(*typ)
	if !ok {
		log.Fatalf("unknown fractal type %q", *typ)
	}
	if *depth == 0 {
		*depth = 6
		if kind == fractal.Koch {
			*depth = 4
		}
	}

	req := fractal.RenderRequest{
		Kind:           kind,
		Width:          *width,
		Height:         *height,
		Zoom:           *zoom,
		CenterX:        *centerX,
		CenterY:        *centerY,
		MaxIterations:  *iterations,
		CReal:          *cReal,
		CImag:          *cImag,
		RecursionDepth: *depth,
		Scheme:         fractal.ParseColorScheme(*scheme),
	}

	renderer := fractal.NewRenderer(fractal.WithWorkers(*workers))
	data, err := renderer.Render(req)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	fmt.Printf("wrote %s (%dx%d %s, %d bytes)\n", *output, *width, *height, kind, len(data))
}
