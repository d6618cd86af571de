package fractal

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPixelBuffer_RowsAreDisjointViews(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	for y := 0; y < 3; y++ {
		row := b.Row(y)
		if len(row) != 4 {
			t.Fatalf("row %d length %d, want 4", y, len(row))
		}
		for x := range row {
			row[x] = float64(y*10 + x)
		}
	}

	// Writes through row slices land in the buffer.
	if got := b.At(2, 1); got != 12 {
		t.Errorf("At(2,1) = %g, want 12", got)
	}
	if got := b.At(3, 2); got != 23 {
		t.Errorf("At(3,2) = %g, want 23", got)
	}
}

func TestColorBuffer_OpaqueByConstruction(t *testing.T) {
	b := NewColorBuffer(3, 2)
	b.SetRGB(1, 1, 10, 20, 30)

	img := b.Image()
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
		t.Error("untouched pixel not opaque")
	}

	r, g, bl, a := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || bl>>8 != 30 || a != 0xffff {
		t.Errorf("At(1,1) = (%d,%d,%d,%d), want (10,20,30,opaque)", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestColorBuffer_ImageSharesPixels(t *testing.T) {
	b := NewColorBuffer(2, 2)
	img := b.Image()

	b.SetRGB(0, 0, 200, 0, 0)
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 200 {
		t.Error("Image() does not share the buffer's pixels")
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	b := NewColorBuffer(5, 7)
	b.SetRGB(4, 6, 1, 2, 3)

	data, err := EncodePNG(b)
	if err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 7 {
		t.Errorf("decoded bounds %v, want 5x7", img.Bounds())
	}
	r, g, bl, _ := img.At(4, 6).RGBA()
	if r>>8 != 1 || g>>8 != 2 || bl>>8 != 3 {
		t.Errorf("pixel (4,6) = (%d,%d,%d), want (1,2,3)", r>>8, g>>8, bl>>8)
	}
}
