package fractal

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: GOMAXPROCS workers, 4096x4096 pixel ceiling
//	r := fractal.NewRenderer()
//
//	// Bounded for a constrained host
//	r := fractal.NewRenderer(fractal.WithWorkers(2), fractal.WithMaxPixels(1<<20))
type Option func(*Renderer)

// WithWorkers caps the number of goroutines a single render may fan
// out to. n <= 0 restores the default (GOMAXPROCS at render time).
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = n
	}
}

// WithMaxPixels sets the width*height ceiling above which renders are
// rejected with ErrResourceExceeded. Memory per render is proportional
// to this bound. n <= 0 restores the default (MaxDimension squared).
func WithMaxPixels(n int) Option {
	return func(r *Renderer) {
		if n <= 0 {
			n = MaxDimension * MaxDimension
		}
		r.maxPixels = n
	}
}
