package rasterfx

import (
	"fmt"
	"strings"

	"github.com/gogpu/rasterfx/internal/color"
)

// Color is a packed 0xAARRGGBB value.
type Color = color.Packed

// RGB creates a color with a zero high byte, as a raw packed RGB triple.
func RGB(r, g, b uint8) Color {
	return color.Pack(r, g, b)
}

// OpaqueRGB creates a color with the high byte set to 0xFF.
func OpaqueRGB(r, g, b uint8) Color {
	return color.PackOpaque(r, g, b)
}

// Hex parses an opaque color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	switch len(s) {
	case 3:
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return 0, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return 0, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, hex)
		}
	default:
		return 0, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, hex)
	}

	//nolint:gosec // G115: at most two hex digits per channel
	return color.PackOpaque(uint8(r), uint8(g), uint8(b)), nil
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
