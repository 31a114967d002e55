package goscalar

import "math"

// ============================================================
// Functions — sqrt, exp, sin, cos, acos, abs, sign, atan2, pow
// ============================================================

// apply evaluates fn on a float or wraps symbolic text as "name(text)".
func (s Scalar) apply(name string, fn func(float64) float64) Scalar {
	if s.IsFloat() {
		return Float(fn(s.num))
	}
	return Symbol(name + "(" + s.text + ")")
}

func (s Scalar) Sqrt() Scalar   { return s.apply("sqrt", math.Sqrt) }
func (s Scalar) Exp() Scalar    { return s.apply("exp", math.Exp) }
func (s Scalar) Sin() Scalar    { return s.apply("sin", math.Sin) }
func (s Scalar) Cos() Scalar    { return s.apply("cos", math.Cos) }
func (s Scalar) Acos() Scalar   { return s.apply("acos", math.Acos) }
func (s Scalar) Abs() Scalar    { return s.apply("abs", math.Abs) }
func (s Scalar) Signum() Scalar { return s.apply("sign", signum) }

// signum is 1 for +0 and positives, -1 for -0 and negatives, NaN for NaN.
func signum(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}
	return math.Copysign(1, f)
}

// Atan2 returns atan2(s, other). No simplification is applied.
func (s Scalar) Atan2(other Scalar) Scalar {
	if s.IsFloat() && other.IsFloat() {
		return Float(math.Atan2(s.num, other.num))
	}
	return Symbol("atan2(" + s.String() + ", " + other.String() + ")")
}

// Pow returns s^other. No simplification is applied.
func (s Scalar) Pow(other Scalar) Scalar {
	if s.IsFloat() && other.IsFloat() {
		return Float(math.Pow(s.num, other.num))
	}
	return wrap(s, "^", other)
}
