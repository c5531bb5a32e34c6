package filter

import (
	"github.com/gogpu/rasterfx"
)

// Blur averages each block.
//
// In masked mode a pixel is sampled when its mask pixel has any color
// (low 24 bits nonzero), and the channel sums are divided by the number of
// sampled pixels.
type Blur struct{}

// Includes implements AreaTransform.
func (Blur) Includes(mask rasterfx.Color) bool {
	return mask.RGB() != 0
}

// Aggregate implements AreaTransform.
func (Blur) Aggregate(sampled []rasterfx.Color, _ int) rasterfx.Color {
	return meanColor(sampled, len(sampled))
}

// NewBlur returns an area filter blurring blockSize x blockSize blocks.
func NewBlur(blockSize int, useMask bool, opts ...Option) (*AreaFilter, error) {
	name := "blurWithoutMask"
	if useMask {
		name = "blurWithMask"
	}
	return NewAreaFilter(Blur{}, blockSize, useMask, append([]Option{WithName(name)}, opts...)...)
}
