package color

// Pack combines red, green and blue into a packed color with a zero high byte.
func Pack(r, g, b uint8) Packed {
	return Packed(r)<<16 | Packed(g)<<8 | Packed(b)
}

// PackOpaque combines red, green and blue into a packed color with the high
// byte set to 0xFF.
func PackOpaque(r, g, b uint8) Packed {
	return OpaqueBlack | Pack(r, g, b)
}

// Gray returns an opaque gray with all three channels set to v.
func Gray(v uint8) Packed {
	return PackOpaque(v, v, v)
}

// Luminance returns floor(0.299*R + 0.587*G + 0.114*B).
// Each product is rounded separately so the result does not depend on
// whether the platform fuses multiply-add.
func Luminance(c Packed) uint8 {
	y := float64(0.299*float64(c.R())) + float64(0.587*float64(c.G())) + float64(0.114*float64(c.B()))
	//nolint:gosec // G115: a weighted mean of bytes stays in [0,255]
	return uint8(y)
}

// Average returns floor((R+G+B)/3).
func Average(c Packed) uint8 {
	//nolint:gosec // G115: the mean of three bytes stays in [0,255]
	return uint8((int(c.R()) + int(c.G()) + int(c.B())) / 3)
}

// Invert returns (255-R, 255-G, 255-B), keeping the high byte.
func Invert(c Packed) Packed {
	return c ^ RGBMask
}
