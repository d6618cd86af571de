// Command fractald serves fractal renders over HTTP.
//
// It is the thin service wrapper around the fractal package: it parses
// and clamps query parameters, calls the core, and streams the PNG
// back. All heavy work happens inside the core's own worker goroutines,
// so handler goroutines just block on the render.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fractalgo/fractal"
)

func main() {
	var (
		addr      = flag.String("addr", ":8001", "listen address")
		workers   = flag.Int("workers", 0, "max worker goroutines per render (0 = GOMAXPROCS)")
		maxPixels = flag.Int("max-pixels", 0, "pixel ceiling per render (0 = default)")
		verbose   = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	fractal.SetLogger(log)

	renderer := fractal.NewRenderer(
		fractal.WithWorkers(*workers),
		fractal.WithMaxPixels(*maxPixels),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newMux(renderer, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("fractald listening", "addr", *addr)
	log.Info("endpoints",
		"health", "/health",
		"fractal", "/api/fractal?type=mandelbrot|julia|sierpinski|koch",
		"legacy", "/api/mandelbrot")
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
