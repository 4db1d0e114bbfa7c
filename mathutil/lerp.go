// Package mathutil provides small numeric helpers.
package mathutil

// Float is satisfied by the floating-point types and types defined over them.
type Float interface {
	~float32 | ~float64
}

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b. t is not clamped, so values outside
// [0, 1] extrapolate.
//
// When a == b the result is a exactly, for any t.
func Lerp[T Float](a, b T, t float64) T {
	if a == b {
		return a
	}
	return T(float64(a)*(1-t) + float64(b)*t)
}
