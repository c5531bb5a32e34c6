package filter

import (
	"fmt"
	"image"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
	intImage "github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// AreaFilter applies an AreaTransform over non-overlapping square blocks.
//
// Blocks form a grid anchored at (0, 0) with floor(width/blockSize) columns
// and floor(height/blockSize) rows. The result starts out all zero (black);
// pixels right of or below the last whole block are never visited and keep
// that background value.
//
// Unmasked mode: every block pixel is sampled and the aggregate overwrites
// the whole block.
//
// Masked mode: only pixels whose mask pixel satisfies Includes are sampled.
// If none qualify the block is copied from the source unchanged. Otherwise
// the aggregate is written to qualifying positions and the remaining
// positions copy the source pixel.
type AreaFilter struct {
	transform AreaTransform
	blockSize int
	useMask   bool
	opts      options
}

// NewAreaFilter creates an area engine around t.
// Returns rasterfx.ErrInvalidInput if blockSize is not positive or t is nil.
func NewAreaFilter(t AreaTransform, blockSize int, useMask bool, opts ...Option) (*AreaFilter, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil area transform", rasterfx.ErrInvalidInput)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d must be positive", rasterfx.ErrInvalidInput, blockSize)
	}
	return &AreaFilter{
		transform: t,
		blockSize: blockSize,
		useMask:   useMask,
		opts:      buildOptions(fmt.Sprintf("%T", t), opts),
	}, nil
}

// BlockSize returns the block edge length in pixels.
func (f *AreaFilter) BlockSize() int {
	return f.blockSize
}

// UsesMask reports whether the filter runs in masked mode.
func (f *AreaFilter) UsesMask() bool {
	return f.useMask
}

// Transform returns the per-block aggregation of the filter.
func (f *AreaFilter) Transform() AreaTransform {
	return f.transform
}

// Name returns the name used in log records.
func (f *AreaFilter) Name() string {
	return f.opts.name
}

// Process implements Filter.
// In masked mode a mask is required; in unmasked mode a supplied mask is
// only checked for matching dimensions.
func (f *AreaFilter) Process(images ...*rasterfx.Raster) (*rasterfx.Raster, error) {
	if f == nil || f.transform == nil {
		return nil, fmt.Errorf("%w: nil or unconfigured area filter", rasterfx.ErrInvalidInput)
	}
	src, mask, err := splitArgs(images)
	if err != nil {
		return nil, err
	}
	if f.useMask && mask == nil {
		return nil, fmt.Errorf("%w: %s requires a mask", rasterfx.ErrInvalidInput, f.opts.name)
	}

	grid := parallel.NewBlockGrid(src.Width(), src.Height(), f.blockSize)
	rasterfx.Logger().Debug("area filter",
		"name", f.opts.name,
		"width", src.Width(),
		"height", src.Height(),
		"block", f.blockSize,
		"blocks", grid.Count(),
		"masked", f.useMask,
		"workers", f.opts.workers())

	dst := intImage.GetFromDefault(src.Width(), src.Height())

	parallel.For(f.opts.pool, grid.CountY, func(lo, hi int) {
		sampled := make([]rasterfx.Color, 0, f.blockSize*f.blockSize)
		grid.ForRows(lo, hi, func(_, _ int, rect image.Rectangle) {
			if f.useMask {
				f.maskedBlock(src, mask, dst, rect, sampled[:0])
			} else {
				f.plainBlock(src, dst, rect, sampled[:0])
			}
		})
	})

	return dst, nil
}

// plainBlock samples every pixel of rect and fills rect with the aggregate.
func (f *AreaFilter) plainBlock(src, dst *rasterfx.Raster, rect image.Rectangle, sampled []rasterfx.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		sampled = append(sampled, src.Row(y)[rect.Min.X:rect.Max.X]...)
	}

	agg := f.transform.Aggregate(sampled, len(sampled))

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := dst.Row(y)[rect.Min.X:rect.Max.X]
		for x := range row {
			row[x] = agg
		}
	}
}

// maskedBlock samples the pixels of rect admitted by the mask and writes the
// aggregate to those positions only.
func (f *AreaFilter) maskedBlock(src, mask, dst *rasterfx.Raster, rect image.Rectangle, sampled []rasterfx.Color) {
	candidates := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		srcRow := src.Row(y)
		maskRow := mask.Row(y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			candidates++
			if f.transform.Includes(maskRow[x]) {
				sampled = append(sampled, srcRow[x])
			}
		}
	}

	if len(sampled) == 0 {
		dst.CopyRect(src, rect)
		return
	}

	agg := f.transform.Aggregate(sampled, candidates)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		srcRow := src.Row(y)
		maskRow := mask.Row(y)
		dstRow := dst.Row(y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if f.transform.Includes(maskRow[x]) {
				dstRow[x] = agg
			} else {
				dstRow[x] = srcRow[x]
			}
		}
	}
}

// meanColor sums each channel of pixels, divides each sum by divisor with
// integer truncation and packs the result as an opaque color.
// A non-positive divisor yields opaque black.
func meanColor(pixels []rasterfx.Color, divisor int) rasterfx.Color {
	if divisor <= 0 {
		return color.OpaqueBlack
	}
	var r, g, b int
	for _, p := range pixels {
		r += int(p.R())
		g += int(p.G())
		b += int(p.B())
	}
	//nolint:gosec // G115: each mean is at most 255 when divisor >= len(pixels)
	return color.PackOpaque(uint8(r/divisor), uint8(g/divisor), uint8(b/divisor))
}
