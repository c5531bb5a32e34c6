package filter

import (
	"fmt"
	"sync"

	"github.com/gogpu/rasterfx"
	intImage "github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// PixelFilter applies a PixelTransform uniformly over a raster.
//
// For every coordinate (x, y) the result is
//
//	result[x, y] = Transform(source[x, y], mask present ? mask[x, y] : 0)
//
// Every pixel is visited exactly once; the transform never sees neighbors.
type PixelFilter struct {
	transform PixelTransform
	opts      options
}

// NewPixelFilter creates a pixel engine around t.
func NewPixelFilter(t PixelTransform, opts ...Option) *PixelFilter {
	return &PixelFilter{
		transform: t,
		opts:      buildOptions(fmt.Sprintf("%T", t), opts),
	}
}

// Transform returns the per-pixel function of the filter.
func (f *PixelFilter) Transform() PixelTransform {
	return f.transform
}

// Name returns the name used in log records.
func (f *PixelFilter) Name() string {
	return f.opts.name
}

// Process implements Filter.
func (f *PixelFilter) Process(images ...*rasterfx.Raster) (*rasterfx.Raster, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil pixel filter", rasterfx.ErrInvalidInput)
	}
	src, mask, err := splitArgs(images)
	if err != nil {
		return nil, err
	}
	if f.transform == nil {
		return nil, fmt.Errorf("%w: pixel filter %s has no transform", rasterfx.ErrInvalidInput, f.opts.name)
	}

	width, height := src.Width(), src.Height()
	rasterfx.Logger().Debug("pixel filter",
		"name", f.opts.name,
		"width", width,
		"height", height,
		"masked", mask != nil,
		"workers", f.opts.workers())

	dst := intImage.GetFromDefault(width, height)

	var failure rowError
	parallel.For(f.opts.pool, height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			if err := f.processRow(src, mask, dst, y); err != nil {
				failure.record(y, err)
				return
			}
		}
	})

	if err := failure.get(); err != nil {
		intImage.PutToDefault(dst)
		return nil, err
	}
	return dst, nil
}

// processRow transforms row y of src into dst.
func (f *PixelFilter) processRow(src, mask, dst *rasterfx.Raster, y int) error {
	srcRow := src.Row(y)
	dstRow := dst.Row(y)

	var maskRow []rasterfx.Color
	if mask != nil {
		maskRow = mask.Row(y)
	}

	for x, p := range srcRow {
		var m rasterfx.Color
		if maskRow != nil {
			m = maskRow[x]
		}
		c, err := f.transform.Transform(p, m)
		if err != nil {
			return fmt.Errorf("filter: %s at (%d, %d): %w", f.opts.name, x, y, err)
		}
		dstRow[x] = c
	}
	return nil
}

// rowError keeps the error of the lowest failing row so that parallel and
// sequential runs report the same failure.
type rowError struct {
	mu  sync.Mutex
	row int
	err error
}

func (e *rowError) record(row int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil || row < e.row {
		e.row, e.err = row, err
	}
}

func (e *rowError) get() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}
