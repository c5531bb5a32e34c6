package color

// LUT maps every byte value to an output byte in O(1).
// Tables are built once and then read concurrently without locking.
type LUT [256]uint8

// BuildLUT evaluates fn for every byte value and stores the results.
func BuildLUT(fn func(v uint8) uint8) *LUT {
	var t LUT
	for i := 0; i < 256; i++ {
		t[i] = fn(uint8(i))
	}
	return &t
}

// Lookup returns the table entry for v.
func (t *LUT) Lookup(v uint8) uint8 {
	return t[v]
}
