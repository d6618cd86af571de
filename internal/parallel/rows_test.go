package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Coverage Tests
// =============================================================================

func TestRows_CoversEveryRowOnce(t *testing.T) {
	heights := []int{1, 7, 64, 1000}
	workerCounts := []int{1, 2, 8, 33}

	for _, h := range heights {
		for _, w := range workerCounts {
			seen := make([]int32, h)
			Rows(w, h, func(y0, y1 int) {
				if y0 < 0 || y1 > h || y0 >= y1 {
					t.Errorf("workers=%d height=%d: bad span [%d,%d)", w, h, y0, y1)
					return
				}
				for y := y0; y < y1; y++ {
					atomic.AddInt32(&seen[y], 1)
				}
			})
			for y, n := range seen {
				if n != 1 {
					t.Fatalf("workers=%d height=%d: row %d visited %d times", w, h, y, n)
				}
			}
		}
	}
}

func TestRows_ZeroHeight(t *testing.T) {
	called := false
	Rows(4, 0, func(y0, y1 int) { called = true })
	if called {
		t.Error("fn called for zero height")
	}
}

func TestRows_DefaultWorkers(t *testing.T) {
	// workers <= 0 falls back to GOMAXPROCS; all rows still covered.
	seen := make([]int32, 100)
	Rows(0, 100, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&seen[y], 1)
		}
	})
	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d visited %d times", y, n)
		}
	}
}

func TestRows_MoreWorkersThanRows(t *testing.T) {
	seen := make([]int32, 3)
	Rows(16, 3, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&seen[y], 1)
		}
	})
	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d visited %d times", y, n)
		}
	}
}

// =============================================================================
// Determinism Tests
// =============================================================================

func TestRows_OutputIndependentOfWorkers(t *testing.T) {
	// Workers write disjoint slices of a shared buffer; the result must
	// be identical whatever the parallelism.
	const h, w = 257, 31
	render := func(workers int) []float64 {
		buf := make([]float64, h*w)
		Rows(workers, h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := buf[y*w : (y+1)*w]
				for x := range row {
					row[x] = float64(y*31+x) * 0.25
				}
			}
		})
		return buf
	}

	want := render(1)
	for _, workers := range []int{2, 4, 16} {
		got := render(workers)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: buf[%d] = %g, want %g", workers, i, got[i], want[i])
			}
		}
	}
}

func TestRows_ActuallyParallel(t *testing.T) {
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("single CPU")
	}

	var mu sync.Mutex
	var active, peak int
	block := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		Rows(4, 400, func(y0, y1 int) {
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			<-block

			mu.Lock()
			active--
			mu.Unlock()
		})
	}()

	// Let workers pick up their first chunks, then release them.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		p := peak
		mu.Unlock()
		if p >= 2 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	close(block)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if peak < 2 {
		t.Errorf("peak concurrency %d, want >= 2", peak)
	}
}
