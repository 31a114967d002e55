// Package goscalar provides a hybrid numeric/symbolic scalar for Go.
//
// A Scalar is either a concrete float64 or an opaque symbolic expression
// string. Operations on two floats compute directly; as soon as one side is
// symbolic the result is a new expression string, folded through the usual
// identities (x+0, x*1, x*0, 0/x, x/1) so deferred parameters stay compact.
//
// Design goals:
//   - Value semantics: every operation returns a new Scalar
//   - Stable, deterministic expression text
//   - JSON and YAML friendly: floats encode as numbers, symbols as strings
//   - Symbolic text is never parsed back into structure
package goscalar

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// Scalar — float64 or symbolic expression
// ============================================================

// Kind reports which variant of a Scalar is active.
type Kind uint8

const (
	KindFloat Kind = iota
	KindSymbolic
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindSymbolic:
		return "symbolic"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Scalar holds exactly one of a float64 or a symbolic expression.
// The zero value is Float(0).
type Scalar struct {
	kind Kind
	num  float64
	text string
}

const (
	atol = 0x1p-52 // float64 machine epsilon
	rtol = 1e-8
)

func Float(f float64) Scalar { return Scalar{kind: KindFloat, num: f} }
func Int(n int64) Scalar     { return Scalar{kind: KindFloat, num: float64(n)} }

// Symbol wraps text as a symbolic expression without trying to parse it.
func Symbol(text string) Scalar { return Scalar{kind: KindSymbolic, text: text} }

// Parse turns text into a Scalar. Text that is a float literal becomes a
// float; anything else is kept verbatim as a symbolic expression. Parse
// never fails.
func Parse(text string) Scalar {
	if f, ok := parseFloatLiteral(text); ok {
		return Float(f)
	}
	return Symbol(text)
}

// From converts a native Go value into a Scalar. It is the single conversion
// step applied to right-hand operands. From panics on unsupported types; use
// TryFrom when the input is not under the caller's control.
func From(v any) Scalar {
	s, err := TryFrom(v)
	if err != nil {
		panic(err)
	}
	return s
}

func TryFrom(v any) (Scalar, error) {
	switch x := v.(type) {
	case Scalar:
		return x, nil
	case *Scalar:
		if x == nil {
			return Scalar{}, fmt.Errorf("goscalar: cannot convert nil *Scalar")
		}
		return *x, nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Float(float64(x)), nil
	case uint8:
		return Float(float64(x)), nil
	case uint16:
		return Float(float64(x)), nil
	case uint32:
		return Float(float64(x)), nil
	case uint64:
		return Float(float64(x)), nil
	case string:
		return Parse(x), nil
	case []byte:
		return Parse(string(x)), nil
	case json.Number:
		return Parse(x.String()), nil
	}
	return Scalar{}, fmt.Errorf("goscalar: cannot convert %T to Scalar", v)
}

func (s Scalar) Kind() Kind       { return s.kind }
func (s Scalar) IsFloat() bool    { return s.kind == KindFloat }
func (s Scalar) IsSymbolic() bool { return s.kind == KindSymbolic }

// Text returns the raw expression of a symbolic Scalar, or "" for a float.
func (s Scalar) Text() string {
	if s.kind == KindSymbolic {
		return s.text
	}
	return ""
}

// Float64 returns the concrete value. A symbolic Scalar yields a
// *SymbolicNotConvertibleError carrying the offending expression.
func (s Scalar) Float64() (float64, error) {
	if s.kind == KindSymbolic {
		return 0, &SymbolicNotConvertibleError{Text: s.text}
	}
	return s.num, nil
}

// MustFloat64 is like Float64 but panics on symbolic values.
func (s Scalar) MustFloat64() float64 {
	f, err := s.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

// String renders floats in scientific notation ("3e0", "1.5e-3") and
// returns symbolic text unchanged.
func (s Scalar) String() string {
	if s.kind == KindSymbolic {
		return s.text
	}
	return formatExp(s.num)
}

// Equal is strict structural equality: same variant, same payload.
func (s Scalar) Equal(other Scalar) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind == KindSymbolic {
		return s.text == other.text
	}
	return s.num == other.num
}

func (s Scalar) GoString() string {
	if s.kind == KindSymbolic {
		return fmt.Sprintf("goscalar.Symbol(%q)", s.text)
	}
	switch {
	case math.IsNaN(s.num):
		return "goscalar.Float(math.NaN())"
	case math.IsInf(s.num, 1):
		return "goscalar.Float(math.Inf(1))"
	case math.IsInf(s.num, -1):
		return "goscalar.Float(math.Inf(-1))"
	}
	return fmt.Sprintf("goscalar.Float(%v)", s.num)
}

// Format lets %v and %s print canonical text while %#v prints a Go
// expression and the numeric verbs apply to the float payload.
func (s Scalar) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, s.GoString())
			return
		}
		fmt.Fprint(f, s.String())
	case 's':
		fmt.Fprint(f, s.String())
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if s.kind == KindSymbolic {
			fmt.Fprint(f, s.text)
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.num)
	default:
		fmt.Fprintf(f, "%%!%c(goscalar.Scalar=%s)", verb, s.String())
	}
}
