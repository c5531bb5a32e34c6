// Package image provides the packed-color raster buffer used by rasterfx.
//
// A Raster stores one 32-bit 0xAARRGGBB value per pixel in a contiguous
// row-major slice, giving O(1) access by coordinate.
package image

import (
	"errors"
	"image"

	"github.com/gogpu/rasterfx/internal/color"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// Raster is a width x height grid of packed colors.
//
// Thread safety: Raster is safe for concurrent reads. Concurrent writes to
// distinct pixels are safe; anything else requires external synchronization.
type Raster struct {
	pix    []color.Packed
	width  int
	height int
}

// NewRaster creates a zeroed raster with the given dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		pix:    make([]color.Packed, width*height),
		width:  width,
		height: height,
	}, nil
}


// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]color.Packed, len(r.pix))
	copy(pix, r.pix)
	return &Raster{pix: pix, width: r.width, height: r.height}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Bounds returns the raster rectangle anchored at the origin.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// SameSize reports whether o has the same width and height as r.
func (r *Raster) SameSize(o *Raster) bool {
	return o != nil && r.width == o.width && r.height == o.height
}

// Pixels returns the backing slice in row-major order.
func (r *Raster) Pixels() []color.Packed {
	return r.pix
}

// Row returns the pixels of row y, or nil if y is out of bounds.
func (r *Raster) Row(y int) []color.Packed {
	if y < 0 || y >= r.height {
		return nil
	}
	start := y * r.width
	return r.pix[start : start+r.width]
}

// Offset returns the index of pixel (x, y) in Pixels, or -1 if the
// coordinates are out of bounds.
func (r *Raster) Offset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return y*r.width + x
}

// At returns the packed color at (x, y).
// Returns 0 if coordinates are out of bounds.
func (r *Raster) At(x, y int) color.Packed {
	i := r.Offset(x, y)
	if i < 0 {
		return 0
	}
	return r.pix[i]
}

// Set stores c at (x, y). Writes outside the raster are ignored.
func (r *Raster) Set(x, y int, c color.Packed) {
	if i := r.Offset(x, y); i >= 0 {
		r.pix[i] = c
	}
}


// Clear sets all pixels to zero.
func (r *Raster) Clear() {
	clear(r.pix)
}

// Fill sets all pixels to c.
func (r *Raster) Fill(c color.Packed) {
	for i := range r.pix {
		r.pix[i] = c
	}
}

// CopyRect copies the pixels of rect from src into r.
// The rectangle is clipped to both rasters.
func (r *Raster) CopyRect(src *Raster, rect image.Rectangle) {
	rect = rect.Intersect(r.Bounds()).Intersect(src.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		copy(r.Row(y)[rect.Min.X:rect.Max.X], src.Row(y)[rect.Min.X:rect.Max.X])
	}
}

