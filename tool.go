package goscalar

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Kind   string      `json:"kind,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ToolParam describes one tool argument. Type is "scalar" (a number or a
// string), "string", or "array" (a list of scalars).
type ToolParam struct {
	Name string
	Type string
}

type ToolDef struct {
	Name        string
	Description string
	Params      []ToolParam
}

var (
	scalarX  = []ToolParam{{"x", "scalar"}}
	scalarAB = []ToolParam{{"a", "scalar"}, {"b", "scalar"}}
)

var toolDefs = []ToolDef{
	{"parse", "Build a scalar from a number or text; float literals become floats", scalarX},
	{"to_float", "Concrete float value; fails for symbolic scalars", scalarX},
	{"to_string", "Canonical text (floats in scientific notation)", scalarX},
	{"is_float", "Report whether the scalar is a concrete float", scalarX},
	{"add", "a + b, dropping a zero float term", scalarAB},
	{"sub", "a - b; 0 - x gives (-x), x - 0 gives x", scalarAB},
	{"mul", "a * b; a zero float absorbs, a float one is dropped", scalarAB},
	{"div", "a / b; a float zero divisor is an error", scalarAB},
	{"pow", "a ^ b", scalarAB},
	{"atan2", "atan2(a, b)", scalarAB},
	{"neg", "-x", scalarX},
	{"recip", "1 / x", scalarX},
	{"sqrt", "Square root", scalarX},
	{"exp", "Exponential", scalarX},
	{"sin", "Sine", scalarX},
	{"cos", "Cosine", scalarX},
	{"acos", "Arccosine", scalarX},
	{"abs", "Absolute value", scalarX},
	{"sign", "Sign (+1 or -1)", scalarX},
	{"isclose", "Approximate equality (atol=machine epsilon, rtol=1e-8)", scalarAB},
	{"equal", "Exact equality of variant and payload", scalarAB},
	{"fold", "Left-fold a binary operator (add, sub, mul, div, pow, atan2) over values", []ToolParam{{"op", "string"}, {"values", "array"}}},
	{"mcp_spec", "Return this tool schema", nil},
}

var binaryTools = map[string]func(Scalar, Scalar) Scalar{
	"add":   Scalar.Add,
	"sub":   Scalar.Sub,
	"mul":   Scalar.Mul,
	"div":   Scalar.Div,
	"pow":   Scalar.Pow,
	"atan2": Scalar.Atan2,
}

var unaryTools = map[string]func(Scalar) Scalar{
	"parse": func(s Scalar) Scalar { return s },
	"neg":   Scalar.Neg,
	"recip": Scalar.Recip,
	"sqrt":  Scalar.Sqrt,
	"exp":   Scalar.Exp,
	"sin":   Scalar.Sin,
	"cos":   Scalar.Cos,
	"acos":  Scalar.Acos,
	"abs":   Scalar.Abs,
	"sign":  Scalar.Signum,
}

// Tools lists the tools HandleToolCall understands.
func Tools() []ToolDef {
	out := make([]ToolDef, len(toolDefs))
	copy(out, toolDefs)
	return out
}

// LookupTool returns the definition of the named tool.
func LookupTool(name string) (ToolDef, bool) {
	for _, d := range toolDefs {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDef{}, false
}

// HandleToolCall runs one tool. Errors, including division by a concrete
// zero, are reported in ToolResponse.Error rather than returned or raised.
func HandleToolCall(req ToolRequest) (resp ToolResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok || !errors.Is(err, ErrDivisionByZero) {
				panic(rec)
			}
			resp = ToolResponse{Error: "division by zero"}
		}
	}()

	getScalar := func(key string) (Scalar, error) {
		v, ok := req.Params[key]
		if !ok {
			return Scalar{}, fmt.Errorf("missing param: %s", key)
		}
		return scalarParam(key, v)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getScalars := func(key string) ([]Scalar, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]Scalar, len(raw))
		for i, r := range raw {
			s, err := scalarParam(fmt.Sprintf("%s[%d]", key, i), r)
			if err != nil {
				return nil, err
			}
			result[i] = s
		}
		return result, nil
	}
	respond := func(s Scalar) ToolResponse {
		return ToolResponse{Result: s, String: s.String(), Kind: s.Kind().String()}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	if fn, ok := unaryTools[req.Tool]; ok {
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		return respond(fn(x))
	}
	if fn, ok := binaryTools[req.Tool]; ok {
		a, err := getScalar("a")
		if err != nil {
			return fail(err)
		}
		b, err := getScalar("b")
		if err != nil {
			return fail(err)
		}
		return respond(fn(a, b))
	}

	switch req.Tool {
	case "to_float":
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		f, err := x.Float64()
		if err != nil {
			return fail(err)
		}
		return respond(Float(f))

	case "to_string":
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: x.String(), String: x.String(), Kind: x.Kind().String()}

	case "is_float":
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: x.IsFloat(), String: fmt.Sprint(x.IsFloat())}

	case "isclose", "equal":
		a, err := getScalar("a")
		if err != nil {
			return fail(err)
		}
		b, err := getScalar("b")
		if err != nil {
			return fail(err)
		}
		same := a.IsClose(b)
		if req.Tool == "equal" {
			same = a.Equal(b)
		}
		return ToolResponse{Result: same, String: fmt.Sprint(same)}

	case "fold":
		op, err := getString("op")
		if err != nil {
			return fail(err)
		}
		fn, ok := binaryTools[op]
		if !ok {
			return fail(fmt.Errorf("fold: unknown operator: %s", op))
		}
		values, err := getScalars("values")
		if err != nil {
			return fail(err)
		}
		if len(values) == 0 {
			return fail(fmt.Errorf("fold: values must not be empty"))
		}
		acc := values[0]
		for _, v := range values[1:] {
			acc = fn(acc, v)
		}
		return respond(acc)

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// scalarParam accepts what encoding/json produces for a number or a string.
func scalarParam(key string, v interface{}) (Scalar, error) {
	switch v.(type) {
	case float64, string, json.Number, Scalar:
		return From(v), nil
	}
	return Scalar{}, fmt.Errorf("param %s: expected float or string, got %T", key, v)
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := make([]map[string]interface{}, len(toolDefs))
	for i, d := range toolDefs {
		tools[i] = ts(d)
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(d ToolDef) map[string]interface{} {
	properties := map[string]interface{}{}
	required := []string{}
	for _, p := range d.Params {
		properties[p.Name] = paramSchema(p.Type)
		required = append(required, p.Name)
	}
	return map[string]interface{}{
		"name":        d.Name,
		"description": d.Description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

func paramSchema(typ string) map[string]interface{} {
	scalar := map[string]interface{}{"type": []string{"number", "string"}}
	switch typ {
	case "scalar":
		return scalar
	case "array":
		return map[string]interface{}{"type": "array", "items": scalar}
	}
	return map[string]interface{}{"type": typ}
}
