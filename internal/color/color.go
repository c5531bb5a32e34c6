// Package color provides packed 32-bit color values and channel helpers for
// rasterfx.
package color

// Packed is a 32-bit color laid out as 0xAARRGGBB.
// Red occupies bits 16-23, green bits 8-15 and blue bits 0-7.
// The meaning of the high byte is left to the producer of the value.
type Packed uint32

// Channel masks and constants.
const (
	// RGBMask selects the low 24 bits carrying the color channels.
	RGBMask Packed = 0x00FFFFFF

	// AlphaMask selects the high byte.
	AlphaMask Packed = 0xFF000000

	// Black is the all-zero background value.
	Black Packed = 0

	// OpaqueBlack is black with the high byte set.
	OpaqueBlack Packed = 0xFF000000
)

// R returns the red channel.
func (c Packed) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Packed) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Packed) B() uint8 { return uint8(c) }

// A returns the high byte.
func (c Packed) A() uint8 { return uint8(c >> 24) }

// RGB returns the low 24 bits as an unsigned integer.
func (c Packed) RGB() uint32 { return uint32(c & RGBMask) }

// WithAlpha returns c with its high byte replaced by a.
func (c Packed) WithAlpha(a uint8) Packed {
	return c&RGBMask | Packed(a)<<24
}
