package mandel

// DefaultIterationLimit bounds the escape-time search when no explicit
// limit is configured. 255 iterations map one-to-one onto the 8-bit
// intensity range.
const DefaultIterationLimit = 255

// EscapeTime iterates z = z*z + c from z = 0 and reports how many updates
// the point c survives before |z|^2 exceeds 4, at which point the orbit is
// guaranteed to diverge. Each update is followed by the divergence check,
// so a point outside the radius-2 disk diverges on the very first update
// and reports 0 iterations survived.
//
// The second return value is false when the orbit stays bounded for limit
// updates; such a point is presumed to belong to the set and the count is
// meaningless. EscapeTime is pure and performs at most limit updates.
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if re, im := real(z), imag(z); re*re+im*im > 4 {
			return i, true
		}
	}
	return 0, false
}

// Shade converts an escape-time result into the intensity byte written for
// its pixel. Points inside the set render black; escaped points render
// brighter the sooner they diverge. Counts of 255 and above saturate to
// black, which can only happen when the iteration limit exceeds 255.
func Shade(n int, escaped bool) uint8 {
	if !escaped || n >= 255 {
		return 0
	}
	return uint8(255 - n)
}
