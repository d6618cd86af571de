package escape

import (
	"math"
	"testing"
)

// =============================================================================
// Classification Tests
// =============================================================================

func TestMandelbrot_KnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		interior bool
	}{
		{"origin is interior", 0, 0, true},
		{"main cardioid", -0.3, 0.2, true},
		{"period-2 bulb", -1.0, 0, true},
		{"far exterior", 2.0, 2.0, false},
		{"just outside tip", -2.1, 0, false},
		{"exterior above cardioid", 0.5, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Mandelbrot(tt.cx, tt.cy, 500)
			if got := v == Interior; got != tt.interior {
				t.Errorf("Mandelbrot(%g, %g) = %g, interior = %v, want %v",
					tt.cx, tt.cy, v, got, tt.interior)
			}
		})
	}
}

func TestMandelbrot_FarPointEscapesImmediately(t *testing.T) {
	v := Mandelbrot(2.0, 2.0, 1000)
	if v == Interior {
		t.Fatal("point far outside the set marked interior")
	}
	if v > 3 {
		t.Errorf("escape value = %g, want < 3 for |c| >> 2", v)
	}
}

func TestJulia_MatchesMandelbrotAtOrigin(t *testing.T) {
	// Julia iteration from z₀ = c with parameter c lags the Mandelbrot
	// iteration of c by exactly one step (Mandelbrot's first step maps
	// 0 to c). Classification must agree.
	for _, c := range [][2]float64{{0, 0}, {0.5, 0.5}, {-1.0, 0}} {
		m := Mandelbrot(c[0], c[1], 400)
		j := Julia(c[0], c[1], c[0], c[1], 400)
		if (m == Interior) != (j == Interior) {
			t.Errorf("c=(%g,%g): mandelbrot %g, julia-from-c %g disagree on interior",
				c[0], c[1], m, j)
		}
	}
}

// =============================================================================
// Determinism and Monotonicity Tests
// =============================================================================

func TestMandelbrot_Deterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		cx := -2.0 + float64(i)*0.07
		cy := -1.2 + float64(i)*0.05
		a := Mandelbrot(cx, cy, 256)
		b := Mandelbrot(cx, cy, 256)
		if a != b {
			t.Fatalf("Mandelbrot(%g, %g) not deterministic: %g != %g", cx, cy, a, b)
		}
	}
}

func TestMandelbrot_MonotoneInMaxIter(t *testing.T) {
	// Raising max_iterations never changes the value of a point that
	// already escaped; it can only resolve interior-marked points.
	for i := 0; i < 80; i++ {
		cx := -2.2 + float64(i)*0.05
		cy := -1.1 + float64(i)*0.03
		lo := Mandelbrot(cx, cy, 50)
		hi := Mandelbrot(cx, cy, 500)
		if lo != Interior && lo != hi {
			t.Errorf("c=(%g,%g): escaped value changed %g -> %g when maxIter raised",
				cx, cy, lo, hi)
		}
	}
}

func TestJulia_MonotoneInMaxIter(t *testing.T) {
	const cRe, cIm = -0.7, 0.27
	for i := 0; i < 80; i++ {
		zx := -1.6 + float64(i)*0.04
		zy := -1.0 + float64(i)*0.025
		lo := Julia(zx, zy, cRe, cIm, 60)
		hi := Julia(zx, zy, cRe, cIm, 600)
		if lo != Interior && lo != hi {
			t.Errorf("z=(%g,%g): escaped value changed %g -> %g when maxIter raised",
				zx, zy, lo, hi)
		}
	}
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestEscape_ZeroIterations(t *testing.T) {
	// A zero iteration budget degrades to "everything escaped at 0".
	if v := Mandelbrot(0, 0, 0); v != 0 {
		t.Errorf("Mandelbrot with maxIter 0 = %g, want 0", v)
	}
	if v := Julia(0, 0, -0.7, 0.27, 0); v != 0 {
		t.Errorf("Julia with maxIter 0 = %g, want 0", v)
	}
}

func TestSmooth_NearIterationCount(t *testing.T) {
	// The smoothed value stays within ~2 of the discrete count, so
	// normalization by maxIter keeps values near [0, 1].
	for n := 0; n < 20; n++ {
		for _, r2 := range []float64{4.01, 16, 1e6} {
			v := smooth(n, r2)
			if math.Abs(v-float64(n)) > 2.5 {
				t.Errorf("smooth(%d, %g) = %g, too far from %d", n, r2, v, n)
			}
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkMandelbrot_Interior(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mandelbrot(-0.3, 0.2, 1000)
	}
}

func BenchmarkMandelbrot_FastEscape(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mandelbrot(1.5, 1.5, 1000)
	}
}
