package geom

import (
	"image"

	"golang.org/x/image/vector"
)

// CoverTriangles rasterizes filled triangles into a row-major coverage
// buffer of width*height values in [0, 1]. Sierpinski leaf triangles
// are spatially disjoint, so a single rasterizer pass over all of them
// yields their exact anti-aliased union.
func CoverTriangles(width, height int, tris []Triangle) []float64 {
	z := vector.NewRasterizer(width, height)
	for _, t := range tris {
		z.MoveTo(float32(t.A.X), float32(t.A.Y))
		z.LineTo(float32(t.B.X), float32(t.B.Y))
		z.LineTo(float32(t.C.X), float32(t.C.Y))
		z.ClosePath()
	}
	return drawCoverage(z, width, height)
}

// CoverSegments strokes segments at the given width into a row-major
// coverage buffer of values in [0, 1]. Each segment becomes a quad
// expanded stroke/2 along its normal, with square caps so adjacent
// segments meet without gaps. Coverage saturates where quads overlap
// at joints.
func CoverSegments(width, height int, segs []Segment, stroke float64) []float64 {
	half := stroke / 2
	z := vector.NewRasterizer(width, height)
	for _, s := range segs {
		d := s.B.Sub(s.A)
		length := d.Length()
		if length == 0 {
			continue
		}
		dir := d.Mul(half / length)
		n := Pt(-dir.Y, dir.X)

		// Square-capped quad around the segment.
		a := s.A.Sub(dir)
		b := s.B.Add(dir)
		z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		z.ClosePath()
	}
	return drawCoverage(z, width, height)
}

// drawCoverage resolves accumulated winding into per-pixel alpha and
// normalizes it to [0, 1].
func drawCoverage(z *vector.Rasterizer, width, height int) []float64 {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	out := make([]float64, width*height)
	for i, a := range mask.Pix {
		out[i] = float64(a) / 0xff
	}
	return out
}
