package filter

import (
	"fmt"

	"github.com/gogpu/rasterfx"
)

// Filter maps a source raster, and optionally a mask raster of the same
// size, to a new raster of identical dimensions.
//
// Process accepts one or two rasters: images[0] is the source and images[1],
// when present and non-nil, is the mask. Any other argument set fails with
// rasterfx.ErrInvalidInput.
type Filter interface {
	Process(images ...*rasterfx.Raster) (*rasterfx.Raster, error)
}

// PixelTransform computes one output pixel from the source pixel and the
// mask pixel at the same coordinate (0 when no mask is supplied).
// Implementations must be pure: the result depends only on the arguments.
type PixelTransform interface {
	Transform(pixel, mask rasterfx.Color) (rasterfx.Color, error)
}

// PixelFunc adapts an ordinary function to PixelTransform.
type PixelFunc func(pixel, mask rasterfx.Color) (rasterfx.Color, error)

// Transform calls f(pixel, mask).
func (f PixelFunc) Transform(pixel, mask rasterfx.Color) (rasterfx.Color, error) {
	return f(pixel, mask)
}

// AreaTransform reduces one block of pixels to a single color.
type AreaTransform interface {
	// Includes reports whether a mask pixel admits the source pixel below
	// it. Only consulted in masked mode.
	Includes(mask rasterfx.Color) bool

	// Aggregate reduces the sampled pixels of one block. candidates is the
	// number of block positions visited; it equals len(sampled) in
	// unmasked mode and may exceed it in masked mode.
	Aggregate(sampled []rasterfx.Color, candidates int) rasterfx.Color
}

// Compile-time interface checks.
var (
	_ Filter = (*PixelFilter)(nil)
	_ Filter = (*AreaFilter)(nil)
	_ Filter = (*Chain)(nil)
)

// splitArgs validates the variadic Process arguments and returns the source
// and the (possibly nil) mask.
func splitArgs(images []*rasterfx.Raster) (src, mask *rasterfx.Raster, err error) {
	switch len(images) {
	case 0:
		return nil, nil, fmt.Errorf("%w: no input images provided", rasterfx.ErrInvalidInput)
	case 1:
	case 2:
		mask = images[1]
	default:
		return nil, nil, fmt.Errorf("%w: %d images provided, want source and optional mask",
			rasterfx.ErrInvalidInput, len(images))
	}

	src = images[0]
	if src == nil {
		return nil, nil, fmt.Errorf("%w: nil source image", rasterfx.ErrInvalidInput)
	}
	if mask != nil && !src.SameSize(mask) {
		return nil, nil, fmt.Errorf("%w: mask is %dx%d, source is %dx%d", rasterfx.ErrInvalidInput,
			mask.Width(), mask.Height(), src.Width(), src.Height())
	}
	return src, mask, nil
}
