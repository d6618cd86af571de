package geom

import "math"

// Segment is a directed line segment in pixel space.
type Segment struct {
	A, B Point
}

// kochPadding keeps the snowflake tips off the canvas edge; the bumps
// grow outward, so the margin is wider than for Sierpinski.
const kochPadding = 40.0

// KochBase returns the three edges of the equilateral triangle the Koch
// snowflake grows from, centered on the canvas and sized to fit with
// padding. Edges run clockwise so the bumps point outward.
func KochBase(width, height int) []Segment {
	short := math.Min(float64(width), float64(height))
	pad := math.Min(kochPadding, short/8)
	size := short - 2*pad

	cx := float64(width) / 2
	cy := float64(height) / 2
	h := size * math.Sqrt(3) / 2

	top := Pt(cx, cy-h*0.6)
	left := Pt(cx-size/2, cy+h*0.4)
	right := Pt(cx+size/2, cy+h*0.4)

	return []Segment{
		{A: top, B: left},
		{A: left, B: right},
		{A: right, B: top},
	}
}

// Koch expands every segment depth times. Each level replaces a segment
// with four: the outer thirds plus the two sides of an equilateral bump
// raised over the middle third, so the result holds len(base) * 4^depth
// segments. Depth 0 returns the base unchanged.
//
// Expansion runs on a flat work list rather than recursion; the full
// segment set is materialized before rasterization.
func Koch(base []Segment, depth int) []Segment {
	sin60, cos60 := math.Sincos(math.Pi / 3)

	cur := append([]Segment(nil), base...)
	for d := 0; d < depth; d++ {
		next := make([]Segment, 0, len(cur)*4)
		for _, s := range cur {
			third := s.B.Sub(s.A).Mul(1.0 / 3.0)
			p1 := s.A.Add(third)
			p2 := p1.Add(third)
			peak := p1.Add(p2.Sub(p1).rotate(sin60, cos60))
			next = append(next,
				Segment{A: s.A, B: p1},
				Segment{A: p1, B: peak},
				Segment{A: peak, B: p2},
				Segment{A: p2, B: s.B},
			)
		}
		cur = next
	}
	return cur
}
