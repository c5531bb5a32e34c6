package parallel

import "image"

// BlockGrid is the grid of whole size x size blocks anchored at (0, 0).
//
// Unlike a render tile grid it never produces partial edge blocks: pixels
// right of CountX*Size or below CountY*Size belong to no block.
type BlockGrid struct {
	// Size is the block edge length in pixels.
	Size int

	// CountX is the number of whole blocks horizontally.
	CountX int

	// CountY is the number of whole blocks vertically.
	CountY int
}

// NewBlockGrid returns the block grid for a width x height raster.
// A non-positive size yields an empty grid.
func NewBlockGrid(width, height, size int) BlockGrid {
	if size <= 0 || width <= 0 || height <= 0 {
		return BlockGrid{Size: size}
	}
	return BlockGrid{
		Size:   size,
		CountX: width / size,
		CountY: height / size,
	}
}

// Count returns the total number of blocks.
func (g BlockGrid) Count() int {
	return g.CountX * g.CountY
}

// Block returns the pixel rectangle of block (bx, by).
func (g BlockGrid) Block(bx, by int) image.Rectangle {
	x, y := bx*g.Size, by*g.Size
	return image.Rect(x, y, x+g.Size, y+g.Size)
}

// ForRows calls fn for each block in block rows [lo, hi).
func (g BlockGrid) ForRows(lo, hi int, fn func(bx, by int, rect image.Rectangle)) {
	for by := lo; by < hi; by++ {
		for bx := range g.CountX {
			fn(bx, by, g.Block(bx, by))
		}
	}
}
