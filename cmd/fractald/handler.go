package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fractalgo/fractal"
)

// Parameter defaults, matching the service's documented behavior.
const (
	defaultWidth      = 800
	defaultHeight     = 600
	defaultZoom       = 1.0
	defaultIterations = 100

	// Classic Julia parameter used when the client sends none.
	defaultJuliaRe = -0.7
	defaultJuliaIm = 0.27

	defaultSierpinskiDepth = 6
	defaultKochDepth       = 4
)

type server struct {
	renderer *fractal.Renderer
	log      *slog.Logger
}

// newMux wires the HTTP routes. The render endpoints share one handler;
// the legacy /api/mandelbrot route just pins the type.
func newMux(r *fractal.Renderer, log *slog.Logger) *http.ServeMux {
	s := &server{renderer: r, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", withCORS(s.health))
	mux.HandleFunc("/api/fractal", withCORS(s.fractal))
	mux.HandleFunc("/api/mandelbrot", withCORS(s.mandelbrot))
	return mux
}

// withCORS answers preflights and marks every response as
// cross-origin-readable. The service renders public images; there is
// nothing to protect from foreign pages.
func withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "fractald",
	})
}

func (s *server) fractal(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, r.URL.Query().Get("type"))
}

// mandelbrot is the legacy endpoint; it ignores any type parameter.
func (s *server) mandelbrot(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, fractal.Mandelbrot.String())
}

func (s *server) render(w http.ResponseWriter, r *http.Request, typ string) {
	req, err := parseRequest(typ, r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	data, err := s.renderer.Render(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fractal.ErrInvalidParameter) || errors.Is(err, fractal.ErrResourceExceeded) {
			status = http.StatusBadRequest
		}
		s.log.Warn("render failed", "kind", req.Kind.String(), "err", err)
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", fractal.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// parseRequest turns query parameters into a validated RenderRequest:
// missing values take documented defaults, numeric values are clamped
// into the core's domains, and only an unknown type or a malformed
// number is rejected outright.
func parseRequest(typ string, q url.Values) (fractal.RenderRequest, error) {
	var req fractal.RenderRequest

	if typ == "" {
		typ = fractal.Mandelbrot.String()
	}
	kind, ok := fractal.ParseKind(typ)
	if !ok {
		return req, fmt.Errorf(
			"unknown fractal type %q; supported types: mandelbrot, julia, sierpinski, koch", typ)
	}
	req.Kind = kind
	req.Scheme = fractal.ParseColorScheme(q.Get("color_scheme"))

	var err error
	if req.Width, err = intParam(q, "width", defaultWidth, 1, fractal.MaxDimension); err != nil {
		return req, err
	}
	if req.Height, err = intParam(q, "height", defaultHeight, 1, fractal.MaxDimension); err != nil {
		return req, err
	}

	if kind.EscapeTime() {
		if req.Zoom, err = floatParam(q, "zoom", defaultZoom, fractal.MinZoom, fractal.MaxZoom); err != nil {
			return req, err
		}
		if req.CenterX, err = floatParam(q, "center_x", 0, -math.MaxFloat64, math.MaxFloat64); err != nil {
			return req, err
		}
		if req.CenterY, err = floatParam(q, "center_y", 0, -math.MaxFloat64, math.MaxFloat64); err != nil {
			return req, err
		}
		if req.MaxIterations, err = intParam(q, "max_iterations", defaultIterations, 1, fractal.MaxIterationLimit); err != nil {
			return req, err
		}
	}

	if kind == fractal.Julia {
		if req.CReal, err = floatParam(q, "julia_c_real", defaultJuliaRe, -fractal.MaxJuliaParam, fractal.MaxJuliaParam); err != nil {
			return req, err
		}
		if req.CImag, err = floatParam(q, "julia_c_imag", defaultJuliaIm, -fractal.MaxJuliaParam, fractal.MaxJuliaParam); err != nil {
			return req, err
		}
	}

	if !kind.EscapeTime() {
		def := defaultSierpinskiDepth
		if kind == fractal.Koch {
			def = defaultKochDepth
		}
		if req.RecursionDepth, err = intParam(q, "recursion_depth", def, 1, fractal.MaxRecursionDepth); err != nil {
			return req, err
		}
	}

	return req, nil
}

// intParam reads an integer query parameter, applying the default when
// absent and clamping into [lo, hi]. Malformed input is an error.
func intParam(q url.Values, name string, def, lo, hi int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %q is not an integer", name, raw)
	}
	return clampInt(v, lo, hi), nil
}

// floatParam reads a float query parameter, applying the default when
// absent and clamping into [lo, hi]. Malformed or non-finite input is
// an error.
func floatParam(q url.Values, name string, def, lo, hi float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parameter %s: %q is not a finite number", name, raw)
	}
	return clampFloat(v, lo, hi), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
