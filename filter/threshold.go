package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
)

// Threshold snaps gray values to a small set of representative levels.
//
// For cut points t[0..k-1] the representatives are
//
//	g[0] = 0, g[k] = 255, g[i] = (t[i-1] + t[i]) / 2 for 0 < i < k
//
// The input gray value is the red channel: Threshold expects an already
// grayscale image and does not compute luminance. The nearest
// representative wins; on a tie the lowest index wins. Output is an opaque
// gray.
type Threshold struct {
	thresholds []int
	levels     []uint8
	lut        *color.LUT
}

// NewThreshold builds a Threshold from ascending cut points in [0, 255].
// At least one cut point is required.
func NewThreshold(thresholds ...int) (*Threshold, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: threshold needs at least one cut point", rasterfx.ErrInvalidInput)
	}
	for i, t := range thresholds {
		if t < 0 || t > 255 {
			return nil, fmt.Errorf("%w: cut point %d outside [0, 255]", rasterfx.ErrInvalidInput, t)
		}
		if i > 0 && t < thresholds[i-1] {
			return nil, fmt.Errorf("%w: cut points %v not ascending", rasterfx.ErrInvalidInput, thresholds)
		}
	}

	k := len(thresholds)
	levels := make([]uint8, k+1)
	levels[0] = 0
	for i := 1; i < k; i++ {
		//nolint:gosec // G115: mean of two values in [0,255]
		levels[i] = uint8((thresholds[i-1] + thresholds[i]) / 2)
	}
	levels[k] = 255

	t := &Threshold{
		thresholds: slices.Clone(thresholds),
		levels:     levels,
	}
	t.lut = color.BuildLUT(t.nearest)
	return t, nil
}

// nearest scans the representatives with a strict less-than comparison so
// the first of several equally close levels is kept.
func (t *Threshold) nearest(v uint8) uint8 {
	closest := t.levels[0]
	for _, level := range t.levels {
		if absDiff(v, level) < absDiff(v, closest) {
			closest = level
		}
	}
	return closest
}

// Levels returns a copy of the representative gray levels.
func (t *Threshold) Levels() []uint8 {
	return slices.Clone(t.levels)
}

// Thresholds returns a copy of the configured cut points.
func (t *Threshold) Thresholds() []int {
	return slices.Clone(t.thresholds)
}

// Nearest returns the representative level chosen for gray value v.
func (t *Threshold) Nearest(v uint8) uint8 {
	return t.lut.Lookup(v)
}

// Transform implements PixelTransform.
func (t *Threshold) Transform(pixel, _ rasterfx.Color) (rasterfx.Color, error) {
	return color.Gray(t.lut.Lookup(pixel.R())), nil
}

// String returns a form like "threshold(64,128,192)".
func (t *Threshold) String() string {
	parts := make([]string, len(t.thresholds))
	for i, v := range t.thresholds {
		parts[i] = strconv.Itoa(v)
	}
	return "threshold(" + strings.Join(parts, ",") + ")"
}

// NewThresholdFilter returns a pixel filter applying a Threshold built from
// thresholds.
func NewThresholdFilter(thresholds []int, opts ...Option) (*PixelFilter, error) {
	t, err := NewThreshold(thresholds...)
	if err != nil {
		return nil, err
	}
	return NewPixelFilter(t, append([]Option{WithName(t.String())}, opts...)...), nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
