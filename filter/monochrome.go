package filter

import (
	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
)

// Monochrome converts each pixel to gray using
// floor(0.299*R + 0.587*G + 0.114*B). The mask is ignored and the high
// byte of the source pixel is kept.
type Monochrome struct{}

// Transform implements PixelTransform.
func (Monochrome) Transform(pixel, _ rasterfx.Color) (rasterfx.Color, error) {
	gray := color.Luminance(pixel)
	return color.Pack(gray, gray, gray).WithAlpha(pixel.A()), nil
}

// NewMonochromeFilter returns a pixel filter applying Monochrome.
func NewMonochromeFilter(opts ...Option) *PixelFilter {
	return NewPixelFilter(Monochrome{}, append([]Option{WithName("monochrome")}, opts...)...)
}
