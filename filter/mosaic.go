package filter

import (
	"github.com/gogpu/rasterfx"
)

// MosaicMaskThreshold is the value the low 24 bits of a mask pixel must
// exceed for Mosaic to sample the pixel below it.
const MosaicMaskThreshold = 0x808080

// Mosaic pixelates each block into its mean color.
//
// In masked mode a pixel is sampled when its mask pixel, read as an
// unsigned 24-bit value, is greater than MosaicMaskThreshold. The channel
// sums are divided by the number of candidate positions in the block, not
// by the number sampled, so a partially covered block comes out darker in
// proportion to the coverage.
type Mosaic struct{}

// Includes implements AreaTransform.
func (Mosaic) Includes(mask rasterfx.Color) bool {
	return mask.RGB() > MosaicMaskThreshold
}

// Aggregate implements AreaTransform.
func (Mosaic) Aggregate(sampled []rasterfx.Color, candidates int) rasterfx.Color {
	return meanColor(sampled, candidates)
}

// NewMosaic returns an area filter pixelating blockSize x blockSize blocks.
func NewMosaic(blockSize int, useMask bool, opts ...Option) (*AreaFilter, error) {
	name := "pixelGraphicWithoutMask"
	if useMask {
		name = "pixelGraphicWithMask"
	}
	return NewAreaFilter(Mosaic{}, blockSize, useMask, append([]Option{WithName(name)}, opts...)...)
}
