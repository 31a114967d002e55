package goscalar

import "math"

// IsClose reports whether s and other are approximately equal.
//
// Two floats are close when |s - other| <= atol + rtol*|other|, with atol the
// float64 machine epsilon and rtol 1e-8; the band scales with other only.
// When either side is symbolic the canonical texts must match exactly, so
// Float(2).IsClose(Symbol("2e0")) holds but Float(2).IsClose(Symbol("2")) does
// not.
func (s Scalar) IsClose(other Scalar) bool {
	if s.IsFloat() && other.IsFloat() {
		return math.Abs(s.num-other.num) <= atol+rtol*math.Abs(other.num)
	}
	return s.String() == other.String()
}
