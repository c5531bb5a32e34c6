package filter

import (
	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
)

// Negative replaces each channel c with 255-c. The mask is ignored and the
// high byte is kept, which makes Negative an exact involution on packed
// values.
type Negative struct{}

// Transform implements PixelTransform.
func (Negative) Transform(pixel, _ rasterfx.Color) (rasterfx.Color, error) {
	return color.Invert(pixel), nil
}

// NewNegativeFilter returns a pixel filter applying Negative.
func NewNegativeFilter(opts ...Option) *PixelFilter {
	return NewPixelFilter(Negative{}, append([]Option{WithName("negative")}, opts...)...)
}
