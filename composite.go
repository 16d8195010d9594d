package grayink

// CompositeOver paints the coverage value src over the existing value dst
// and returns the combined coverage. Both values are alpha-only: the value
// is simultaneously color and opacity, with ink building up toward 255.
//
// The result is 255 - round((255-dst)*(255-src)/255), computed with the
// fast integer approximation of division by 255 so the per-pixel loop
// never touches floating point. Composing with 0 is an identity and
// composing with 255 saturates.
func CompositeOver(dst, src uint8) uint8 {
	p := uint32(255-dst) * uint32(255-src)
	p = (p + (p >> 8) + 0x80) >> 8
	return uint8(255 - p)
}
