package filter

import (
	"testing"

	"github.com/gogpu/rasterfx"
)

// filled returns a w x h raster with every pixel set to c.
func filled(t *testing.T, w, h int, c rasterfx.Color) *rasterfx.Raster {
	t.Helper()
	r, err := rasterfx.NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d): %v", w, h, err)
	}
	r.Fill(c)
	return r
}

// rasterOf returns a w x h raster holding pixels in row-major order.
func rasterOf(t *testing.T, w, h int, pixels ...rasterfx.Color) *rasterfx.Raster {
	t.Helper()
	if len(pixels) != w*h {
		t.Fatalf("rasterOf: %d pixels for %dx%d", len(pixels), w, h)
	}
	r := filled(t, w, h, 0)
	copy(r.Pixels(), pixels)
	return r
}

// gradient returns a w x h raster whose pixels vary across both axes.
func gradient(t *testing.T, w, h int) *rasterfx.Raster {
	t.Helper()
	r := filled(t, w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			//nolint:gosec // G115: values wrap on purpose
			r.Set(x, y, rasterfx.OpaqueRGB(uint8(x*7+y), uint8(y*13), uint8(x*y)))
		}
	}
	return r
}

// checker returns a mask alternating white and black pixels.
func checker(t *testing.T, w, h int) *rasterfx.Raster {
	t.Helper()
	r := filled(t, w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				r.Set(x, y, rasterfx.OpaqueRGB(255, 255, 255))
			}
		}
	}
	return r
}

// assertSameRaster fails unless a and b have equal size and pixels.
func assertSameRaster(t *testing.T, got, want *rasterfx.Raster) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if g, w := got.At(x, y), want.At(x, y); g != w {
				t.Fatalf("pixel (%d, %d) = %#08x, want %#08x", x, y, uint32(g), uint32(w))
			}
		}
	}
}

// process runs f and fails the test on error.
func process(t *testing.T, f Filter, images ...*rasterfx.Raster) *rasterfx.Raster {
	t.Helper()
	got, err := f.Process(images...)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return got
}
