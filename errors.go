package goscalar

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is the panic value raised when a Scalar is divided by a
// concrete zero. It is not returned as an error: a known-zero divisor is a
// programming mistake, unlike a symbolic value that cannot be evaluated yet.
var ErrDivisionByZero = errors.New("goscalar: division by zero")

// SymbolicNotConvertibleError is returned when a symbolic Scalar is asked for
// its concrete float value.
type SymbolicNotConvertibleError struct {
	Text string
}

func (e *SymbolicNotConvertibleError) Error() string {
	return fmt.Sprintf("goscalar: symbolic value %q is not convertible to float", e.Text)
}
