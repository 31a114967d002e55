package goscalar_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/njchilds90/goscalar"
)

// ============================================================
// Construction
// ============================================================

func TestFrom_Int(t *testing.T) {
	x := goscalar.From(3)
	if !x.IsFloat() {
		t.Fatalf("From(3) should be a float, got %s", x.Kind())
	}
	if f, _ := x.Float64(); f != 3 {
		t.Errorf("want 3, got %v", f)
	}
}

func TestParse_FloatLiteral(t *testing.T) {
	x := goscalar.Parse("3.0")
	if !x.Equal(goscalar.Float(3)) {
		t.Errorf("want Float(3), got %#v", x)
	}
}

func TestParse_SymbolKeepsText(t *testing.T) {
	text := []byte("3t")
	x := goscalar.From(text)
	text[0] = '4'
	if !x.Equal(goscalar.Symbol("3t")) {
		t.Errorf("want Symbol(3t), got %#v", x)
	}
	if x.IsFloat() {
		t.Errorf("3t should be symbolic")
	}
}

func TestParse_Table(t *testing.T) {
	cases := []struct {
		in      string
		isFloat bool
		want    float64
	}{
		{"2", true, 2},
		{"-2.5", true, -2.5},
		{"+.5", true, 0.5},
		{"5.", true, 5},
		{"1e3", true, 1000},
		{"1E-2", true, 0.01},
		{"1e400", true, math.Inf(1)},
		{"inf", true, math.Inf(1)},
		{"-Infinity", true, math.Inf(-1)},
		{"", false, 0},
		{".", false, 0},
		{"e5", false, 0},
		{"1e", false, 0},
		{"0x10", false, 0},
		{"1_000", false, 0},
		{" 1", false, 0},
		{"theta", false, 0},
		{"test+(1/3)", false, 0},
	}
	for _, c := range cases {
		x := goscalar.Parse(c.in)
		if x.IsFloat() != c.isFloat {
			t.Errorf("Parse(%q): want float=%v, got %#v", c.in, c.isFloat, x)
			continue
		}
		if !c.isFloat {
			if x.Text() != c.in {
				t.Errorf("Parse(%q): text changed to %q", c.in, x.Text())
			}
			continue
		}
		if f, _ := x.Float64(); f != c.want {
			t.Errorf("Parse(%q): want %v, got %v", c.in, c.want, f)
		}
	}
}

func TestParse_NaN(t *testing.T) {
	f, err := goscalar.Parse("NaN").Float64()
	if err != nil || !math.IsNaN(f) {
		t.Errorf("want NaN, got %v (%v)", f, err)
	}
}

func TestFrom_ScalarPointerCopies(t *testing.T) {
	orig := goscalar.Symbol("a")
	cp := goscalar.From(&orig)
	orig.AddAssign(goscalar.Symbol("b"))
	if !cp.Equal(goscalar.Symbol("a")) {
		t.Errorf("copy should be unaffected, got %s", cp)
	}
}

func TestTryFrom_Unsupported(t *testing.T) {
	if _, err := goscalar.TryFrom(true); err == nil {
		t.Errorf("bool should not convert")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("From(struct{}) should panic")
		}
	}()
	goscalar.From(struct{}{})
}

func TestFrom_NativeTypes(t *testing.T) {
	for _, v := range []any{int8(4), int16(4), int32(4), int64(4), uint(4), uint8(4), uint16(4), uint32(4), uint64(4), float32(4), json.Number("4")} {
		if got := goscalar.From(v); !got.Equal(goscalar.Float(4)) {
			t.Errorf("From(%T): want 4e0, got %#v", v, got)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var x goscalar.Scalar
	if !x.Equal(goscalar.Float(0)) {
		t.Errorf("zero value should be Float(0), got %#v", x)
	}
}

// ============================================================
// Conversion
// ============================================================

func TestFloat64_Symbolic(t *testing.T) {
	_, err := goscalar.Symbol("abc").Float64()
	var symErr *goscalar.SymbolicNotConvertibleError
	if !errors.As(err, &symErr) {
		t.Fatalf("want SymbolicNotConvertibleError, got %v", err)
	}
	if symErr.Text != "abc" {
		t.Errorf("want offending text abc, got %q", symErr.Text)
	}
}

func TestFloat64_Float(t *testing.T) {
	f, err := goscalar.Float(2).Float64()
	if err != nil || f != 2 {
		t.Errorf("want 2, got %v (%v)", f, err)
	}
	f, err = goscalar.Parse("2").Float64()
	if err != nil || f != 2 {
		t.Errorf("want 2 from text, got %v (%v)", f, err)
	}
}

func TestMustFloat64_Panics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*goscalar.SymbolicNotConvertibleError); !ok {
			t.Errorf("want panic with SymbolicNotConvertibleError")
		}
	}()
	goscalar.Symbol("x").MustFloat64()
}

func TestString_Canonical(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3e0"},
		{0, "0e0"},
		{math.Copysign(0, -1), "-0e0"},
		{0.1, "1e-1"},
		{0.00125, "1.25e-3"},
		{-1234.5, "-1.2345e3"},
		{1e21, "1e21"},
		{123456789, "1.23456789e8"},
		{5e-324, "5e-324"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		if got := goscalar.Float(c.in).String(); got != c.want {
			t.Errorf("String(%v): want %s, got %s", c.in, c.want, got)
		}
	}
	if got := goscalar.Symbol("a + b").String(); got != "a + b" {
		t.Errorf("symbol text should be verbatim, got %s", got)
	}
}

func TestFormat_Verbs(t *testing.T) {
	x := goscalar.Float(2.5)
	if got := fmt.Sprintf("%v", x); got != "2.5e0" {
		t.Errorf("%%v: want 2.5e0, got %s", got)
	}
	if got := fmt.Sprintf("%.2f", x); got != "2.50" {
		t.Errorf("%%.2f: want 2.50, got %s", got)
	}
	if got := fmt.Sprintf("%#v", goscalar.Symbol("x")); got != `goscalar.Symbol("x")` {
		t.Errorf("%%#v: got %s", got)
	}
	if got := fmt.Sprintf("%s", goscalar.Symbol("x")); got != "x" {
		t.Errorf("%%s: got %s", got)
	}
}

// ============================================================
// Equality
// ============================================================

func TestEqual_Strict(t *testing.T) {
	if goscalar.Float(1).Equal(goscalar.Float(1 + 1e-12)) {
		t.Errorf("Equal must not use tolerance")
	}
	if goscalar.Float(2).Equal(goscalar.Symbol("2e0")) {
		t.Errorf("Equal must compare variants")
	}
	if !goscalar.Symbol("x").Equal(goscalar.Symbol("x")) {
		t.Errorf("identical symbols should be Equal")
	}
}
