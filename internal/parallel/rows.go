// Package parallel fans per-row fractal work across CPUs.
//
// The model is request-scoped, synchronous data parallelism: every call
// spawns its own bounded set of goroutines, blocks until they finish,
// and leaves no long-lived pool behind. Workers receive disjoint row
// ranges and write into disjoint slices of the caller's buffer, so no
// locking is needed and output is bit-identical for any worker count.
package parallel

import (
	"runtime"
	"sync"
)

// chunksPerWorker controls chunk granularity. Escape-time cost varies by
// location (interior pixels burn the full iteration budget), so handing
// each worker several smaller chunks evens out the load without the
// overhead of per-row dispatch.
const chunksPerWorker = 4

// Rows splits [0, height) into contiguous row chunks and runs fn over
// them on up to workers goroutines, blocking until all complete.
//
// fn is called with half-open [y0, y1) ranges that cover every row
// exactly once and never overlap. workers <= 0 means GOMAXPROCS.
func Rows(workers, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}
	if workers == 1 {
		fn(0, height)
		return
	}

	chunk := height / (workers * chunksPerWorker)
	if chunk < 1 {
		chunk = 1
	}

	type span struct{ y0, y1 int }
	spans := make(chan span, (height+chunk-1)/chunk)
	for y := 0; y < height; y += chunk {
		end := y + chunk
		if end > height {
			end = height
		}
		spans <- span{y0: y, y1: end}
	}
	close(spans)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for s := range spans {
				fn(s.y0, s.y1)
			}
		}()
	}
	wg.Wait()
}
