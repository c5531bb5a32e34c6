package filter

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
)

// GrayLevels is the size of a full replacement table.
const GrayLevels = 256

// Replacement is one entry of a gray-level replacement table.
// The zero value is an absent entry.
type Replacement struct {
	Color  rasterfx.Color
	Mapped bool
}

// Replace returns a present entry mapping to c.
func Replace(c rasterfx.Color) Replacement {
	return Replacement{Color: c, Mapped: true}
}

// ColorReplacement recolors pixels by gray level.
//
// The gray level of a pixel is floor((R+G+B)/3). When the table has a
// present entry at that level the pixel becomes the entry's color;
// otherwise the pixel passes through unchanged. A lookup at a level beyond
// the end of a short table fails with rasterfx.ErrOutOfRange.
type ColorReplacement struct {
	table []Replacement
}

// NewColorReplacement creates a ColorReplacement from an explicit table
// indexed by gray level. Tables shorter than GrayLevels are accepted; the
// table is copied.
func NewColorReplacement(table []Replacement) *ColorReplacement {
	return &ColorReplacement{table: slices.Clone(table)}
}

// NewColorReplacementLevels creates a full table with one random opaque
// color for each listed gray level. Colors are drawn from rng so that a
// seeded generator reproduces the same table; a nil rng uses a randomly
// seeded one.
func NewColorReplacementLevels(rng *rand.Rand, levels ...int) (*ColorReplacement, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // G404: colors need no crypto
	}

	table := make([]Replacement, GrayLevels)
	for _, level := range levels {
		if level < 0 || level >= GrayLevels {
			return nil, fmt.Errorf("%w: gray level %d outside [0, 255]", rasterfx.ErrInvalidInput, level)
		}
		//nolint:gosec // G115: IntN(256) fits a byte
		table[level] = Replace(color.PackOpaque(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256))))
	}
	return &ColorReplacement{table: table}, nil
}

// Len returns the table length.
func (c *ColorReplacement) Len() int {
	return len(c.table)
}

// Lookup returns the table entry for gray level, or ErrOutOfRange when the
// level lies beyond the table.
func (c *ColorReplacement) Lookup(level uint8) (Replacement, error) {
	if int(level) >= len(c.table) {
		return Replacement{}, fmt.Errorf("%w: gray level %d, table has %d entries",
			rasterfx.ErrOutOfRange, level, len(c.table))
	}
	return c.table[level], nil
}

// Transform implements PixelTransform.
func (c *ColorReplacement) Transform(pixel, _ rasterfx.Color) (rasterfx.Color, error) {
	r, err := c.Lookup(color.Average(pixel))
	if err != nil {
		return 0, err
	}
	if !r.Mapped {
		return pixel, nil
	}
	return r.Color, nil
}

// NewColorReplacementFilter returns a pixel filter applying c.
func NewColorReplacementFilter(c *ColorReplacement, opts ...Option) *PixelFilter {
	return NewPixelFilter(c, append([]Option{WithName("colorReplacement")}, opts...)...)
}
