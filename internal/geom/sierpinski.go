package geom

import "math"

// Triangle is a filled triangle in pixel space.
type Triangle struct {
	A, B, C Point
}

// sierpinskiPadding keeps the outer triangle off the canvas edge.
const sierpinskiPadding = 20.0

// BaseTriangle returns the outer Sierpinski triangle for a canvas:
// apex at top center, base along the bottom, sized to fit with padding.
// On canvases too small for the full padding, the padding shrinks to a
// tenth of the short side so the shape never inverts.
func BaseTriangle(width, height int) Triangle {
	short := math.Min(float64(width), float64(height))
	pad := math.Min(sierpinskiPadding, short/10)
	size := short - 2*pad

	cx := float64(width) / 2
	return Triangle{
		A: Pt(cx, pad),
		B: Pt(cx-size/2, float64(height)-pad),
		C: Pt(cx+size/2, float64(height)-pad),
	}
}

// Sierpinski returns the filled leaf triangles of subdividing outer to
// the given depth. Depth 0 returns the outer triangle itself; each level
// splits every triangle into four and discards the center one, so the
// result holds exactly 3^depth triangles.
//
// Subdivision runs on a flat work list rather than recursion, so depth
// is bounded by memory, not stack.
func Sierpinski(outer Triangle, depth int) []Triangle {
	cur := []Triangle{outer}
	for d := 0; d < depth; d++ {
		next := make([]Triangle, 0, len(cur)*3)
		for _, t := range cur {
			ab := t.A.Mid(t.B)
			bc := t.B.Mid(t.C)
			ca := t.C.Mid(t.A)
			next = append(next,
				Triangle{A: t.A, B: ab, C: ca},
				Triangle{A: ab, B: t.B, C: bc},
				Triangle{A: ca, B: bc, C: t.C},
			)
		}
		cur = next
	}
	return cur
}
