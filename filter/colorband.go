package filter

import (
	"fmt"
	"strings"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/internal/color"
)

// Band selects one color channel.
type Band uint8

// Color channels.
const (
	BandRed Band = iota
	BandGreen
	BandBlue
)

// String returns the lowercase channel name.
func (b Band) String() string {
	switch b {
	case BandRed:
		return "red"
	case BandGreen:
		return "green"
	case BandBlue:
		return "blue"
	default:
		return fmt.Sprintf("Band(%d)", uint8(b))
	}
}

// IsValid reports whether b names a channel.
func (b Band) IsValid() bool {
	return b <= BandBlue
}

// ParseBand parses "red", "green" or "blue" (case-insensitive, also "r",
// "g", "b").
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return BandRed, nil
	case "green", "g":
		return BandGreen, nil
	case "blue", "b":
		return BandBlue, nil
	}
	return 0, fmt.Errorf("%w: unknown color band %q", rasterfx.ErrInvalidInput, s)
}

// ColorBand isolates one channel: the selected channel passes through and
// the other two are zeroed. The mask is ignored and the high byte is kept.
type ColorBand struct {
	Band Band
}

// bandMasks keeps the selected channel bits and the high byte.
var bandMasks = [...]color.Packed{
	BandRed:   color.AlphaMask | 0xFF0000,
	BandGreen: color.AlphaMask | 0x00FF00,
	BandBlue:  color.AlphaMask | 0x0000FF,
}

// Transform implements PixelTransform.
func (c ColorBand) Transform(pixel, _ rasterfx.Color) (rasterfx.Color, error) {
	if !c.Band.IsValid() {
		return 0, fmt.Errorf("%w: invalid color band %s", rasterfx.ErrInvalidInput, c.Band)
	}
	return pixel & bandMasks[c.Band], nil
}

// NewColorBandFilter returns a pixel filter isolating band.
func NewColorBandFilter(band Band, opts ...Option) (*PixelFilter, error) {
	if !band.IsValid() {
		return nil, fmt.Errorf("%w: invalid color band %s", rasterfx.ErrInvalidInput, band)
	}
	name := "colorBand(" + band.String() + ")"
	return NewPixelFilter(ColorBand{Band: band}, append([]Option{WithName(name)}, opts...)...), nil
}
