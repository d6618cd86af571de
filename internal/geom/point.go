// Package geom constructs and rasterizes the geometric fractals:
// Sierpinski triangle subdivision and Koch curve expansion.
//
// Shape generation is iterative (explicit work lists, never deep
// recursion) and produces flat slices; rasterization feeds the flattened
// shapes through a single golang.org/x/image/vector pass, yielding an
// anti-aliased coverage value in [0, 1] per pixel.
package geom

import "math"

// Point is a 2D point or vector in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// rotate returns the vector rotated by the angle whose sine and cosine
// are given (clockwise on screen since Y grows downward).
func (p Point) rotate(sin, cos float64) Point {
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
