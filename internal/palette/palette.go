// Package palette defines the closed set of palettes that map
// normalized escape values to RGB.
//
// Each palette is fixed data: gradient control stops compiled once into
// a lookup table, replacing per-pixel interpolation with an array index.
// The set is deliberately closed: five palettes, selected by tag, with
// unknown tags falling back to Default. It is not an open registry.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Stop pins a color at a position in [0, 1].
type Stop struct {
	Pos   float64
	Color RGB
}

// lutSize is the table resolution. 256 entries match 8-bit output
// depth; finer tables cannot produce new colors.
const lutSize = 256

// Palette maps normalized escape values in [0, 1] to RGB.
type Palette struct {
	name     string
	interior RGB // points that never escape
	fill     RGB // filled geometric shapes (Sierpinski leaves)
	lut      [lutSize]RGB
}

// Name returns the palette's tag.
func (p *Palette) Name() string { return p.name }

// Interior returns the color for points that reach the iteration bound.
func (p *Palette) Interior() RGB { return p.interior }

// Fill returns the foreground color for filled geometric shapes.
func (p *Palette) Fill() RGB { return p.fill }

// At returns the palette color for a normalized value. Values outside
// [0, 1] clamp to the endpoints.
func (p *Palette) At(t float64) RGB {
	if t <= 0 {
		return p.lut[0]
	}
	if t >= 1 {
		return p.lut[lutSize-1]
	}
	return p.lut[int(t*(lutSize-1)+0.5)]
}

// The five built-in palettes. Interior is black across the set; the
// fill color is each palette's accent for geometric foregrounds.
var (
	// Default is a blue-to-white gradient.
	Default = newGradient("default", RGB{24, 82, 177}, []Stop{
		{0.0, RGB{0, 0, 96}},
		{0.5, RGB{32, 107, 203}},
		{1.0, RGB{255, 255, 255}},
	})

	// Fire runs black through red to yellow.
	Fire = newGradient("fire", RGB{226, 88, 34}, []Stop{
		{0.0, RGB{0, 0, 0}},
		{0.5, RGB{255, 0, 0}},
		{1.0, RGB{255, 255, 0}},
	})

	// Ice runs black through cyan to white.
	Ice = newGradient("ice", RGB{0, 170, 204}, []Stop{
		{0.0, RGB{0, 0, 0}},
		{0.5, RGB{0, 255, 255}},
		{1.0, RGB{255, 255, 255}},
	})

	// Rainbow cycles the full hue circle at full saturation.
	Rainbow = newHueCycle("rainbow", RGB{138, 43, 226})

	// Grayscale is a linear black-to-white ramp.
	Grayscale = newGradient("grayscale", RGB{0, 0, 0}, []Stop{
		{0.0, RGB{0, 0, 0}},
		{1.0, RGB{255, 255, 255}},
	})
)

// newGradient compiles gradient stops into a palette. Stops must be
// sorted by position and span [0, 1]; entries between stops interpolate
// linearly per channel.
func newGradient(name string, fill RGB, stops []Stop) *Palette {
	p := &Palette{name: name, fill: fill, interior: RGB{0, 0, 0}}
	for i := range p.lut {
		t := float64(i) / (lutSize - 1)
		p.lut[i] = colorBetween(stops, t)
	}
	return p
}

// newHueCycle compiles a full HSV hue sweep into a palette.
func newHueCycle(name string, fill RGB) *Palette {
	p := &Palette{name: name, fill: fill, interior: RGB{0, 0, 0}}
	for i := range p.lut {
		t := float64(i) / (lutSize - 1)
		hue := math.Mod(t*360, 360) // 360° wraps back to red
		r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
		p.lut[i] = RGB{r, g, b}
	}
	return p
}

// colorBetween interpolates stops at position t.
func colorBetween(stops []Stop, t float64) RGB {
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		f := (t - lo.Pos) / (hi.Pos - lo.Pos)
		return RGB{
			R: lerp8(lo.Color.R, hi.Color.R, f),
			G: lerp8(lo.Color.G, hi.Color.G, f),
			B: lerp8(lo.Color.B, hi.Color.B, f),
		}
	}
	return last.Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
