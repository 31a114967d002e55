package goscalar

import "math"

// ============================================================
// Arithmetic
// ============================================================

func isZero(f float64) bool { return math.Abs(f) <= atol }
func isOne(f float64) bool  { return math.Abs(f-1) < atol }

// wrap builds "(a op b)" with floats in canonical scientific notation.
func wrap(a Scalar, op string, b Scalar) Scalar {
	return Symbol("(" + a.String() + " " + op + " " + b.String() + ")")
}

// Add returns s + other. A zero float operand drops out of a symbolic sum.
func (s Scalar) Add(other Scalar) Scalar {
	switch {
	case s.IsFloat() && other.IsFloat():
		return Float(s.num + other.num)
	case s.IsFloat() && isZero(s.num):
		return other
	case other.IsFloat() && isZero(other.num):
		return s
	}
	return wrap(s, "+", other)
}

// Sub returns s - other. 0 - x becomes "(-x)" and x - 0 is x.
func (s Scalar) Sub(other Scalar) Scalar {
	switch {
	case s.IsFloat() && other.IsFloat():
		return Float(s.num - other.num)
	case s.IsFloat() && isZero(s.num):
		return other.Neg()
	case other.IsFloat() && isZero(other.num):
		return s
	}
	return wrap(s, "-", other)
}

// Mul returns s * other. A zero float operand absorbs a symbolic one and a
// float one leaves it unchanged.
func (s Scalar) Mul(other Scalar) Scalar {
	switch {
	case s.IsFloat() && other.IsFloat():
		return Float(s.num * other.num)
	case s.IsFloat() && isZero(s.num), other.IsFloat() && isZero(other.num):
		return Float(0)
	case s.IsFloat() && isOne(s.num):
		return other
	case other.IsFloat() && isOne(other.num):
		return s
	}
	return wrap(s, "*", other)
}

// Div returns s / other. It panics with ErrDivisionByZero when other is a
// float equal to zero; a symbolic divisor is never checked.
func (s Scalar) Div(other Scalar) Scalar {
	if other.IsFloat() && other.num == 0 {
		panic(ErrDivisionByZero)
	}
	switch {
	case s.IsFloat() && other.IsFloat():
		return Float(s.num / other.num)
	case s.IsFloat() && isZero(s.num):
		return Float(0)
	case other.IsFloat() && isOne(other.num):
		return s
	}
	return wrap(s, "/", other)
}

func (s Scalar) Neg() Scalar {
	if s.IsFloat() {
		return Float(-s.num)
	}
	return Symbol("(-" + s.text + ")")
}

// Recip returns 1/s. A float zero yields +Inf rather than panicking.
func (s Scalar) Recip() Scalar {
	if s.IsFloat() {
		return Float(1 / s.num)
	}
	return Symbol("(1 / " + s.text + ")")
}

// In-place forms. Each is exactly *s = s.Op(other); callers updating the
// same Scalar from several goroutines must serialize.

func (s *Scalar) AddAssign(other Scalar) { *s = s.Add(other) }
func (s *Scalar) SubAssign(other Scalar) { *s = s.Sub(other) }
func (s *Scalar) MulAssign(other Scalar) { *s = s.Mul(other) }
func (s *Scalar) DivAssign(other Scalar) { *s = s.Div(other) }
